package gene

import (
	"fmt"
	"strings"
)

// Source tags identifying which adapter produced the normalized fields.
const (
	SourceGeneCards = "genecards"
	SourceNCBI      = "ncbi"
	SourceEntrez    = "entrez"
)

const (
	ncbiGeneURLFormat      = "https://www.ncbi.nlm.nih.gov/gene/%s"
	genecardsGeneURLFormat = "https://www.genecards.org/cgi-bin/carddisp.pl?gene=%s"
)

// Record is the normalized gene entry stored in the cache, one per symbol.
// Optional fields are pointers so the persisted JSON document keeps explicit
// nulls for absent values.
type Record struct {
	Symbol        string  `json:"symbol" yaml:"symbol"`
	Summary       *string `json:"summary" yaml:"summary"`
	EntrezSummary *string `json:"entrez_summary" yaml:"entrez_summary"`
	GeneID        *string `json:"geneid" yaml:"geneid"`
	Chromosome    *string `json:"chromosome" yaml:"chromosome"`
	MapLocation   *string `json:"map_location" yaml:"map_location"`
	NCBIURL       *string `json:"ncbi_url" yaml:"ncbi_url"`
	GenecardsURL  *string `json:"genecards_url" yaml:"genecards_url"`
	Source        string  `json:"source" yaml:"source"`
	FetchedAt     int64   `json:"fetched_at" yaml:"fetched_at"`
}

// DeriveURLs fills ncbi_url from the geneid when one is present and always
// fills genecards_url from the symbol.
func (r *Record) DeriveURLs() {
	if r.GeneID != nil && *r.GeneID != "" {
		url := fmt.Sprintf(ncbiGeneURLFormat, *r.GeneID)
		r.NCBIURL = &url
	} else {
		r.NCBIURL = nil
	}
	url := fmt.Sprintf(genecardsGeneURLFormat, r.Symbol)
	r.GenecardsURL = &url
}

// Details is the partially-normalized result a lookup source returns before
// the resolver merges it into a Record. Empty strings mean the source did not
// provide the field.
type Details struct {
	Symbol      string
	Description string
	GeneID      string
	Chromosome  string
	MapLocation string
}

// NormalizeSymbol converts raw user input into a cache key.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
