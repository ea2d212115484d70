// Package cli implements the interactive gene lookup front-end.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/genecli/internal/gene"
)

//go:generate mockgen -source=gene_cli.go -destination=../mocks/cli/mock_resolver.go -package=mock_cli

// GeneResolver resolves a symbol into a cached normalized record.
type GeneResolver interface {
	Resolve(ctx context.Context, symbol string) (*gene.Record, error)
}

var errEnd = errors.New("end of session")

// maxCondensedSummaryLength bounds the one-line summary printed per gene.
const maxCondensedSummaryLength = 300

// GeneCLI handles user interaction only and calls the resolver for the rest.
type GeneCLI struct {
	resolver     GeneResolver
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
}

// NewGeneCLI creates a CLI reading symbols from stdin and printing to stdout.
func NewGeneCLI(resolver GeneResolver, stdin io.Reader, stdout io.Writer) *GeneCLI {
	return &GeneCLI{
		resolver:     resolver,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}

// ProcessGenes resolves and prints each symbol in turn. Lookup failures are
// reported per gene and never stop the batch.
func (cli *GeneCLI) ProcessGenes(ctx context.Context, symbols []string) {
	for _, symbol := range symbols {
		symbol = strings.TrimSpace(symbol)
		if symbol == "" {
			continue
		}

		record, err := cli.resolver.Resolve(ctx, symbol)
		if err != nil {
			if errors.Is(err, gene.ErrNotFound) {
				fmt.Fprintf(cli.stdoutWriter, "Gene not found: %s\n", symbol)
				continue
			}
			fmt.Fprintf(cli.stdoutWriter, "Error fetching %s: %v\n", symbol, err)
			continue
		}
		cli.PrintRecord(record)
	}
}

// PrintRecord prints a concise multi-field summary for one gene.
func (cli *GeneCLI) PrintRecord(record *gene.Record) {
	parts := []string{record.Symbol}
	if record.GeneID != nil {
		parts = append(parts, "Entrez:"+*record.GeneID)
	}
	if record.Chromosome != nil {
		parts = append(parts, "Chr:"+*record.Chromosome)
	}
	if record.MapLocation != nil {
		parts = append(parts, "Loc:"+*record.MapLocation)
	}
	cli.bold.Fprintln(cli.stdoutWriter, strings.Join(parts, " | "))

	if record.Summary != nil {
		fmt.Fprintf(cli.stdoutWriter, "Description: %s\n", *record.Summary)
	} else {
		fmt.Fprintf(cli.stdoutWriter, "No description available for %s\n", record.Symbol)
	}

	// one-line condensed summary, preferring the curated Entrez paragraph
	oneLine := ""
	if record.EntrezSummary != nil {
		oneLine = condense(*record.EntrezSummary)
	} else if record.Summary != nil {
		oneLine = condense(*record.Summary)
	}
	if oneLine != "" {
		fmt.Fprintf(cli.stdoutWriter, "Summary: %s\n", oneLine)
	}

	if record.NCBIURL != nil {
		cli.italic.Fprintf(cli.stdoutWriter, "NCBI: %s\n", *record.NCBIURL)
	}
	if record.GenecardsURL != nil {
		cli.italic.Fprintf(cli.stdoutWriter, "GeneCards: %s\n", *record.GenecardsURL)
	}
}

// condense normalizes whitespace and truncates to a single display line.
func condense(text string) string {
	oneLine := strings.Join(strings.Fields(text), " ")
	runes := []rune(oneLine)
	if len(runes) > maxCondensedSummaryLength {
		return string(runes[:maxCondensedSummaryLength-3]) + "..."
	}
	return oneLine
}

// Run starts the prompt loop and blocks until the user exits or interrupts.
func (cli *GeneCLI) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	fmt.Fprintln(cli.stdoutWriter, "Gene CLI interactive mode.")
	fmt.Fprintln(cli.stdoutWriter, "Enter gene symbols separated by spaces (e.g. BRCA1 TP53).")
	fmt.Fprintln(cli.stdoutWriter, "Type 'help' for usage, 'exit' or 'quit' to leave.")

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := cli.session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(cli.stdoutWriter, "\nExiting.")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

func (cli *GeneCLI) session(ctx context.Context) error {
	fmt.Fprint(cli.stdoutWriter, "genes> ")
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errEnd
		}
		return fmt.Errorf("stdinReader.ReadString > %w", err)
	}

	input := strings.TrimSpace(line)
	switch strings.ToLower(input) {
	case "":
		return nil
	case "help", "-h", "--help":
		cli.printHelp()
		return nil
	case "exit", "quit":
		fmt.Fprintln(cli.stdoutWriter, "Bye.")
		return errEnd
	}

	cli.ProcessGenes(ctx, strings.Fields(input))
	return nil
}

func (cli *GeneCLI) printHelp() {
	fmt.Fprintln(cli.stdoutWriter, `Interactive mode commands:
  GENE1 GENE2 ...     Fetch one or more genes
  help                Show this help message
  exit, quit          Exit the program
  Ctrl-C              Exit the program

Output includes:
  - Gene symbol and Entrez ID
  - Chromosome and map location
  - Summary (from NCBI Entrez, or description)
  - Links to NCBI Gene and GeneCards pages`)
}
