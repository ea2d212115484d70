// Package report renders cached gene records as a markdown document and
// optionally converts it to PDF.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mandolyte/mdtopdf"

	"github.com/at-ishikawa/genecli/internal/gene"
)

// Writer renders gene reports into an output directory.
type Writer struct {
	outputDir string
}

// NewWriter creates a report writer for outputDir.
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// WriteMarkdown renders the records into genes.md under the output directory
// and returns the written path.
func (w *Writer) WriteMarkdown(records []gene.Record) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", w.outputDir, err)
	}

	markdownPath := filepath.Join(w.outputDir, "genes.md")
	if err := os.WriteFile(markdownPath, []byte(renderMarkdown(records)), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}
	return markdownPath, nil
}

func renderMarkdown(records []gene.Record) string {
	builder := strings.Builder{}
	builder.WriteString("# Gene report\n")

	for _, record := range records {
		builder.WriteString(fmt.Sprintf("\n## %s\n\n", record.Symbol))

		facts := make([]string, 0, 4)
		if record.GeneID != nil {
			facts = append(facts, fmt.Sprintf("GeneID %s", *record.GeneID))
		}
		if record.Chromosome != nil {
			facts = append(facts, fmt.Sprintf("chromosome %s", *record.Chromosome))
		}
		if record.MapLocation != nil {
			facts = append(facts, fmt.Sprintf("location %s", *record.MapLocation))
		}
		facts = append(facts, fmt.Sprintf("source %s", record.Source))
		builder.WriteString(strings.Join(facts, ", ") + "\n")

		if record.Summary != nil {
			builder.WriteString("\n" + *record.Summary + "\n")
		}
		if record.EntrezSummary != nil {
			builder.WriteString("\n" + *record.EntrezSummary + "\n")
		}
		for _, url := range []*string{record.NCBIURL, record.GenecardsURL} {
			if url != nil {
				builder.WriteString(fmt.Sprintf("\n<%s>\n", *url))
			}
		}
		builder.WriteString(fmt.Sprintf("\nFetched at %s\n",
			time.Unix(record.FetchedAt, 0).UTC().Format(time.RFC3339)))
	}
	return builder.String()
}

// ConvertMarkdownToPDF converts a markdown file to PDF using mdtopdf package.
// The PDF file will be created in the same directory as the markdown file.
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}

	return absPath, nil
}
