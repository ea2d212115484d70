// Package datasync provides import/export orchestration between the JSON
// gene cache and other stores.
package datasync

import (
	"context"
	"fmt"
	"io"

	"github.com/at-ishikawa/genecli/internal/gene"
)

// ImportResult tracks counts for a cache import run.
type ImportResult struct {
	RecordsNew     int
	RecordsSkipped int
	RecordsUpdated int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun         bool
	UpdateExisting bool
}

// Importer reads cached gene records and writes them to a database repository.
type Importer struct {
	repository gene.Repository
	writer     io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(repository gene.Repository, writer io.Writer) *Importer {
	return &Importer{
		repository: repository,
		writer:     writer,
	}
}

// ImportRecords upserts cached records into the repository. Existing rows are
// skipped unless opts.UpdateExisting is set; opts.DryRun previews the outcome
// without touching the database.
func (imp *Importer) ImportRecords(ctx context.Context, records []gene.Record, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult

	for _, record := range records {
		existing, err := imp.repository.FindBySymbol(ctx, record.Symbol)
		if err != nil {
			return nil, fmt.Errorf("repository.FindBySymbol(%s) > %w", record.Symbol, err)
		}

		if existing != nil && !opts.UpdateExisting {
			result.RecordsSkipped++
			continue
		}

		entry := record.Entry()
		if !opts.DryRun {
			if err := imp.repository.Upsert(ctx, &entry); err != nil {
				return nil, fmt.Errorf("repository.Upsert(%s) > %w", record.Symbol, err)
			}
		}

		if existing != nil {
			result.RecordsUpdated++
			fmt.Fprintf(imp.writer, "updated %s\n", record.Symbol)
		} else {
			result.RecordsNew++
			fmt.Fprintf(imp.writer, "imported %s\n", record.Symbol)
		}
	}

	return &result, nil
}
