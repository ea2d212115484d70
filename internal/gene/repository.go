package gene

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Entry represents a gene record row in the database.
type Entry struct {
	Symbol        string    `db:"symbol"`
	Source        string    `db:"source"`
	Summary       *string   `db:"summary"`
	EntrezSummary *string   `db:"entrez_summary"`
	GeneID        *string   `db:"geneid"`
	Chromosome    *string   `db:"chromosome"`
	MapLocation   *string   `db:"map_location"`
	NCBIURL       *string   `db:"ncbi_url"`
	GenecardsURL  *string   `db:"genecards_url"`
	FetchedAt     time.Time `db:"fetched_at"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// Entry converts a cached record into its database row shape.
func (r Record) Entry() Entry {
	return Entry{
		Symbol:        r.Symbol,
		Source:        r.Source,
		Summary:       r.Summary,
		EntrezSummary: r.EntrezSummary,
		GeneID:        r.GeneID,
		Chromosome:    r.Chromosome,
		MapLocation:   r.MapLocation,
		NCBIURL:       r.NCBIURL,
		GenecardsURL:  r.GenecardsURL,
		FetchedAt:     time.Unix(r.FetchedAt, 0).UTC(),
	}
}

//go:generate mockgen -source=repository.go -destination=../mocks/gene/mock_repository.go -package=mock_gene

// Repository defines operations for managing gene record rows.
type Repository interface {
	FindAll(ctx context.Context) ([]Entry, error)
	FindBySymbol(ctx context.Context, symbol string) (*Entry, error)
	Upsert(ctx context.Context, entry *Entry) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindAll returns all gene record rows.
func (r *DBRepository) FindAll(ctx context.Context) ([]Entry, error) {
	var entries []Entry
	if err := r.db.SelectContext(ctx, &entries, "SELECT * FROM gene_records ORDER BY symbol"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(gene_records) > %w", err)
	}
	return entries, nil
}

// FindBySymbol returns a gene record row by symbol, or nil if not found.
func (r *DBRepository) FindBySymbol(ctx context.Context, symbol string) (*Entry, error) {
	var entry Entry
	err := r.db.GetContext(ctx, &entry, "SELECT * FROM gene_records WHERE symbol = ?", NormalizeSymbol(symbol))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(gene_record) > %w", err)
	}
	return &entry, nil
}

// Upsert inserts or updates a gene record row.
func (r *DBRepository) Upsert(ctx context.Context, entry *Entry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO gene_records (symbol, source, summary, entrez_summary, geneid, chromosome, map_location, ncbi_url, genecards_url, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			source = VALUES(source), summary = VALUES(summary), entrez_summary = VALUES(entrez_summary),
			geneid = VALUES(geneid), chromosome = VALUES(chromosome), map_location = VALUES(map_location),
			ncbi_url = VALUES(ncbi_url), genecards_url = VALUES(genecards_url), fetched_at = VALUES(fetched_at)`,
		entry.Symbol, entry.Source, entry.Summary, entry.EntrezSummary, entry.GeneID,
		entry.Chromosome, entry.MapLocation, entry.NCBIURL, entry.GenecardsURL, entry.FetchedAt)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert gene_record) > %w", err)
	}
	return nil
}
