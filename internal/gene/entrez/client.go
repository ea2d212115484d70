// https://www.ncbi.nlm.nih.gov/books/NBK25501/ documents the E-utilities
// endpoints used here: esearch to find a gene id by symbol, esummary to fetch
// the document summary for an id.
package entrez

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/genecli/internal/gene"
)

// DefaultBaseURL is the production E-utilities endpoint.
const DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov"

// DefaultMaxRetryAttempts bounds retries of transient esearch/esummary failures.
const DefaultMaxRetryAttempts = 2

const (
	searchPath  = "/entrez/eutils/esearch.fcgi"
	summaryPath = "/entrez/eutils/esummary.fcgi"
)

// Client queries the NCBI Entrez E-utilities.
type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

// NewClient creates an E-utilities client with a fixed per-request timeout.
func NewClient(baseURL string, timeout time.Duration, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)

	return &Client{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

// Close releases the underlying HTTP client.
func (client *Client) Close() error {
	return client.httpClient.Close()
}

type searchResponse struct {
	ESearchResult struct {
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

type summaryResponse struct {
	Result map[string]json.RawMessage `json:"result"`
}

type docSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Chromosome  string `json:"chromosome"`
	MapLocation string `json:"maplocation"`
	Summary     string `json:"summary"`
}

// Search finds a gene id for an exact, species-qualified symbol query and
// fetches detailed fields for the first candidate. It is a best-effort
// fallback: an empty result and an error both degrade to an absent result at
// the caller.
func (client *Client) Search(ctx context.Context, symbol string) (*gene.Details, error) {
	var searched searchResponse
	if err := client.getJSON(ctx, searchPath, map[string]string{
		"db":      "gene",
		"term":    fmt.Sprintf("%q[Gene Symbol] AND human[orgn]", symbol),
		"retmode": "json",
		"retmax":  "5",
	}, &searched); err != nil {
		return nil, fmt.Errorf("client.getJSON(esearch) > %w", err)
	}

	ids := searched.ESearchResult.IDList
	if len(ids) == 0 {
		return nil, nil
	}
	geneID := ids[0]

	document, err := client.fetchDocSummary(ctx, geneID)
	if err != nil {
		return nil, fmt.Errorf("client.fetchDocSummary > %w", err)
	}

	name := document.Name
	if name == "" {
		name = symbol
	}
	return &gene.Details{
		Symbol:      name,
		Description: document.Description,
		GeneID:      geneID,
		Chromosome:  document.Chromosome,
		MapLocation: document.MapLocation,
	}, nil
}

// Summary fetches the curated long-form summary for a numeric gene id. A
// non-numeric id short-circuits without a network call. An empty string and
// an error both degrade to an absent summary at the caller.
func (client *Client) Summary(ctx context.Context, geneID string) (string, error) {
	id, err := strconv.Atoi(strings.TrimSpace(geneID))
	if err != nil {
		return "", nil
	}

	document, err := client.fetchDocSummary(ctx, strconv.Itoa(id))
	if err != nil {
		return "", fmt.Errorf("client.fetchDocSummary > %w", err)
	}
	return document.Summary, nil
}

func (client *Client) fetchDocSummary(ctx context.Context, geneID string) (*docSummary, error) {
	var summarized summaryResponse
	if err := client.getJSON(ctx, summaryPath, map[string]string{
		"db":      "gene",
		"id":      geneID,
		"retmode": "json",
	}, &summarized); err != nil {
		return nil, fmt.Errorf("client.getJSON(esummary) > %w", err)
	}

	key := geneID
	var uids []string
	if raw, ok := summarized.Result["uids"]; ok {
		_ = json.Unmarshal(raw, &uids)
	}
	if len(uids) > 0 {
		key = uids[0]
	}

	raw, ok := summarized.Result[key]
	if !ok {
		return nil, fmt.Errorf("no document for gene id %s", geneID)
	}
	var document docSummary
	if err := json.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return &document, nil
}

func (client *Client) getJSON(ctx context.Context, path string, params map[string]string, result any) error {
	return retry.Do(
		func() error {
			response, err := client.httpClient.R().
				SetContext(ctx).
				SetQueryParams(params).
				SetResult(result).
				Get(path)
			if err != nil {
				return fmt.Errorf("httpClient.Get > %w", err)
			}
			if response.IsError() {
				err := fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
				if !isRetryableStatus(response.StatusCode()) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
	)
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
