package gene

import (
	"context"
	"fmt"
	"log/slog"
)

//go:generate mockgen -source=resolver.go -destination=../mocks/gene/mock_sources.go -package=mock_gene

// Portal queries the login-gated consumer portal and extracts a free-text
// summary from its payload. It returns an empty string when the portal
// answered but no summary could be extracted, and a *SourceError when the
// portal is unusable this attempt (auth required or network failure).
type Portal interface {
	GeneSummary(ctx context.Context, symbol string) (string, error)
}

// DetailSource is the first-pass structured lookup. It returns ErrNotFound
// when the symbol has no exact match; transport failures also map to
// ErrNotFound, so callers see a binary found/not-found contract.
type DetailSource interface {
	Details(ctx context.Context, symbol string) (*Details, error)
}

// FallbackSource is the second-pass identifier search. All of its failures
// degrade to an absent result.
type FallbackSource interface {
	Search(ctx context.Context, symbol string) (*Details, error)
}

// SummarySource fetches the long-form curated summary for a numeric gene
// identifier. All of its failures degrade to an absent result.
type SummarySource interface {
	Summary(ctx context.Context, geneID string) (string, error)
}

// Resolver turns a gene symbol into a cached normalized record by consulting
// the sources in priority order. Only ErrEmptySymbol and ErrNotFound cross
// its boundary; every other failure drives fallback to the next source.
type Resolver struct {
	store     *Store
	portal    Portal
	details   DetailSource
	fallback  FallbackSource
	summaries SummarySource
}

// NewResolver creates a Resolver on top of an explicit cache store.
func NewResolver(
	store *Store,
	portal Portal,
	details DetailSource,
	fallback FallbackSource,
	summaries SummarySource,
) *Resolver {
	return &Resolver{
		store:     store,
		portal:    portal,
		details:   details,
		fallback:  fallback,
		summaries: summaries,
	}
}

// Resolve returns the record for symbol, fetching and caching it on a miss.
func (r *Resolver) Resolve(ctx context.Context, symbol string) (*Record, error) {
	key := NormalizeSymbol(symbol)
	if key == "" {
		return nil, ErrEmptySymbol
	}

	if cached, ok := r.store.Get(key); ok {
		r.enrich(ctx, key, cached)
		return cached, nil
	}

	portalSummary, err := r.portal.GeneSummary(ctx, key)
	if err != nil {
		slog.Default().Debug("portal source skipped", "symbol", key, "error", err)
		portalSummary = ""
	}

	details, source := r.lookupDetails(ctx, key)
	if portalSummary != "" && source != SourceEntrez {
		source = SourceGeneCards
	}
	if portalSummary == "" && details == nil {
		return nil, fmt.Errorf("resolve %s > %w", key, ErrNotFound)
	}

	record := Record{Symbol: key, Source: source}
	if details != nil {
		if details.Symbol != "" {
			record.Symbol = details.Symbol
		}
		record.Summary = optional(details.Description)
		record.GeneID = optional(details.GeneID)
		record.Chromosome = optional(details.Chromosome)
		record.MapLocation = optional(details.MapLocation)
	}
	if portalSummary != "" {
		// the portal's own summary takes precedence over the description
		record.Summary = &portalSummary
	}
	record.DeriveURLs()

	if record.GeneID != nil {
		if summary, err := r.summaries.Summary(ctx, *record.GeneID); err == nil && summary != "" {
			record.EntrezSummary = &summary
		}
	}

	r.store.Set(key, record)
	if stored, ok := r.store.Get(key); ok {
		return stored, nil
	}
	return &record, nil
}

// lookupDetails runs the first-pass structured lookup and falls back to the
// identifier search when it reports not-found.
func (r *Resolver) lookupDetails(ctx context.Context, key string) (*Details, string) {
	details, err := r.details.Details(ctx, key)
	if err == nil && details != nil {
		return details, SourceNCBI
	}
	slog.Default().Debug("first-pass lookup missed", "symbol", key, "error", err)

	fallback, err := r.fallback.Search(ctx, key)
	if err != nil || fallback == nil {
		slog.Default().Debug("identifier search missed", "symbol", key, "error", err)
		return nil, ""
	}
	return fallback, SourceEntrez
}

// enrich lazily fills entrez_summary on a cache hit when the record has a
// geneid but no summary yet. Failures degrade silently.
func (r *Resolver) enrich(ctx context.Context, key string, record *Record) {
	if record.GeneID == nil || record.EntrezSummary != nil {
		return
	}
	summary, err := r.summaries.Summary(ctx, *record.GeneID)
	if err != nil || summary == "" {
		slog.Default().Debug("summary enrichment skipped", "symbol", key, "error", err)
		return
	}
	record.EntrezSummary = &summary
	r.store.Set(key, *record)
}
