// https://clinicaltables.nlm.nih.gov/ hosts the public NCBI genes search API.
// The response is an array shaped [total, codes[], ef_hash|null, displays[][]].
package clinicaltables

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/at-ishikawa/genecli/internal/gene"
)

// DefaultBaseURL is the production ClinicalTables endpoint.
const DefaultBaseURL = "https://clinicaltables.nlm.nih.gov"

const (
	searchPath     = "/api/ncbi_genes/v3/search"
	displayFields  = "Symbol,description"
	extraFields    = "GeneID,chromosome,map_location"
	candidateCount = 20
)

// Client queries the ClinicalTables NCBI genes search API.
type Client struct {
	httpClient *resty.Client
}

// NewClient creates a lookup client with a fixed per-request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)

	return &Client{httpClient: client}
}

// Close releases the underlying HTTP client.
func (client *Client) Close() error {
	return client.httpClient.Close()
}

// Details searches for an exact symbol match among up to 20 candidates and
// returns its display and extra fields. Fuzzy matches are rejected. The
// contract is binary: anything that prevents an exact match, including
// transport failures, maps to ErrNotFound.
func (client *Client) Details(ctx context.Context, symbol string) (*gene.Details, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"terms": symbol,
			"df":    displayFields,
			"ef":    extraFields,
			"count": strconv.Itoa(candidateCount),
		}).
		Get(searchPath)
	if err != nil {
		return nil, notFound(symbol, fmt.Errorf("httpClient.Get > %w", err))
	}
	if response.IsError() {
		return nil, notFound(symbol, fmt.Errorf("response error %d", response.StatusCode()))
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(response.Bytes(), &elements); err != nil {
		return nil, notFound(symbol, fmt.Errorf("json.Unmarshal > %w", err))
	}
	if len(elements) < 4 {
		return nil, notFound(symbol, fmt.Errorf("unexpected response shape with %d elements", len(elements)))
	}

	var codes []string
	_ = json.Unmarshal(elements[1], &codes)
	var efHash map[string][]json.RawMessage
	_ = json.Unmarshal(elements[2], &efHash)
	var displays [][]string
	_ = json.Unmarshal(elements[3], &displays)

	if len(displays) == 0 || len(codes) == 0 {
		return nil, notFound(symbol, nil)
	}

	for index, display := range displays {
		if len(display) == 0 || display[0] == "" {
			continue
		}
		if !strings.EqualFold(display[0], symbol) {
			continue
		}

		description := ""
		if len(display) > 1 {
			description = display[1]
		}
		return &gene.Details{
			Symbol:      display[0],
			Description: description,
			GeneID:      extraField(efHash, "GeneID", index),
			Chromosome:  extraField(efHash, "chromosome", index),
			MapLocation: extraField(efHash, "map_location", index),
		}, nil
	}

	// fuzzy search can return unrelated genes, so no exact match means the
	// symbol does not exist here
	return nil, notFound(symbol, nil)
}

// extraField returns the ef value aligned with the matched display index.
// Values arrive as strings or numbers depending on the field.
func extraField(efHash map[string][]json.RawMessage, field string, index int) string {
	values, ok := efHash[field]
	if !ok || index >= len(values) {
		return ""
	}

	var asString string
	if err := json.Unmarshal(values[index], &asString); err == nil {
		return asString
	}
	var asNumber int64
	if err := json.Unmarshal(values[index], &asNumber); err == nil {
		return strconv.FormatInt(asNumber, 10)
	}
	return ""
}

func notFound(symbol string, cause error) error {
	if cause != nil {
		return fmt.Errorf("gene %q: %v > %w", symbol, cause, gene.ErrNotFound)
	}
	return fmt.Errorf("gene %q > %w", symbol, gene.ErrNotFound)
}
