// https://genealacart.genecards.org/ requires a logged-in session for JSON
// responses; anonymous requests normally come back as an HTML login page.
package genealacart

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/net/html"
	"resty.dev/v3"

	"github.com/at-ishikawa/genecli/internal/gene"
)

// DefaultBaseURL is the production GeneALaCart endpoint.
const DefaultBaseURL = "https://genealacart.genecards.org"

// summaryFieldCandidates is the ordered list of field names checked against a
// nested candidate object. The first present string-typed value wins.
var summaryFieldCandidates = []string{"summary", "GeneCards Summary", "description", "function"}

// Client queries the GeneALaCart portal.
type Client struct {
	httpClient *resty.Client
}

// NewClient creates a portal client with a fixed per-request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")

	return &Client{httpClient: client}
}

// Close releases the underlying HTTP client.
func (client *Client) Close() error {
	return client.httpClient.Close()
}

// GeneSummary fetches the portal payload for symbol and extracts a summary
// string from it. An empty string means the portal answered with JSON that
// carries no recognizable summary. A non-JSON response means the source is
// unusable right now, never that the gene does not exist.
func (client *Client) GeneSummary(ctx context.Context, symbol string) (string, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"geneList": symbol,
			"format":   "json",
		}).
		Get("/Query")
	if err != nil {
		return "", gene.NewSourceError(gene.TransportError, gene.SourceGeneCards,
			fmt.Errorf("httpClient.Get > %w", err))
	}

	body := response.Bytes()
	contentType := strings.ToLower(response.Header().Get("Content-Type"))
	if !strings.Contains(contentType, "application/json") {
		// the server occasionally returns JSON under a wrong content type,
		// so only give up once the body fails to decode
		if payload, ok := decodePayload(body); ok {
			return extractSummary(payload, symbol), nil
		}
		if isLoginPage(body) {
			return "", gene.NewSourceError(gene.SourceUnavailable, gene.SourceGeneCards,
				errors.New("login page returned, authentication required"))
		}
		return "", gene.NewSourceError(gene.SourceUnavailable, gene.SourceGeneCards,
			fmt.Errorf("non-JSON response with content type %q", contentType))
	}

	payload, ok := decodePayload(body)
	if !ok {
		return "", gene.NewSourceError(gene.SourceUnavailable, gene.SourceGeneCards,
			errors.New("failed to decode JSON response"))
	}
	return extractSummary(payload, symbol), nil
}

// decodePayload parses the body as a JSON object. A valid non-object JSON
// value reports ok with an empty payload, matching the contract that a
// decodable response never fails the source.
func decodePayload(body []byte) (map[string]json.RawMessage, bool) {
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return nil, false
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return map[string]json.RawMessage{}, true
	}
	return payload, true
}

// extractSummary checks a top-level summary field first, then a nested
// candidate object against the ordered field name list.
func extractSummary(payload map[string]json.RawMessage, symbol string) string {
	if summary, ok := stringField(payload, "summary"); ok {
		return summary
	}

	candidate, ok := nestedCandidate(payload, symbol)
	if !ok {
		return ""
	}
	for _, field := range summaryFieldCandidates {
		if summary, ok := stringField(candidate, field); ok {
			return summary
		}
	}
	return ""
}

// nestedCandidate picks the object most likely to describe the queried gene:
// the value keyed by the symbol itself, otherwise the first value in sorted
// key order.
func nestedCandidate(payload map[string]json.RawMessage, symbol string) (map[string]json.RawMessage, bool) {
	raw, ok := payload[symbol]
	if !ok {
		keys := make([]string, 0, len(payload))
		for key := range payload {
			keys = append(keys, key)
		}
		if len(keys) == 0 {
			return nil, false
		}
		sort.Strings(keys)
		raw = payload[keys[0]]
	}

	var candidate map[string]json.RawMessage
	if err := json.Unmarshal(raw, &candidate); err != nil {
		return nil, false
	}
	return candidate, true
}

func stringField(object map[string]json.RawMessage, field string) (string, bool) {
	raw, ok := object[field]
	if !ok {
		return "", false
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}
	return value, true
}

// isLoginPage reports whether the body parses as an HTML document containing
// a password input, which is how the portal presents its login form.
func isLoginPage(body []byte) bool {
	document, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return false
	}

	var hasPasswordInput func(node *html.Node) bool
	hasPasswordInput = func(node *html.Node) bool {
		if node.Type == html.ElementNode && node.Data == "input" {
			for _, attribute := range node.Attr {
				if attribute.Key == "type" && strings.EqualFold(attribute.Val, "password") {
					return true
				}
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if hasPasswordInput(child) {
				return true
			}
		}
		return false
	}
	return hasPasswordInput(document)
}
