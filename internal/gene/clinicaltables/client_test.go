package clinicaltables

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/genecli/internal/gene"
)

func TestClient_Details(t *testing.T) {
	tests := []struct {
		name    string
		symbol  string
		handler func(t *testing.T, w http.ResponseWriter, r *http.Request)
		want    *gene.Details
		wantErr error
	}{
		{
			name:   "exact match with aligned extra fields",
			symbol: "BRCA1",
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/ncbi_genes/v3/search", r.URL.Path)
				assert.Equal(t, "BRCA1", r.URL.Query().Get("terms"))
				assert.Equal(t, "Symbol,description", r.URL.Query().Get("df"))
				assert.Equal(t, "GeneID,chromosome,map_location", r.URL.Query().Get("ef"))
				assert.Equal(t, "20", r.URL.Query().Get("count"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[2,
					["HGNC:1100","HGNC:1101"],
					{"GeneID":["672","673"],"chromosome":["17","13"],"map_location":["17q21.31","13q13.1"]},
					[["BRCA1","BRCA1 DNA repair associated"],["BRCA2","BRCA2 DNA repair associated"]]]`))
			},
			want: &gene.Details{
				Symbol:      "BRCA1",
				Description: "BRCA1 DNA repair associated",
				GeneID:      "672",
				Chromosome:  "17",
				MapLocation: "17q21.31",
			},
		},
		{
			name:   "exact match is case insensitive and index aligned",
			symbol: "brca2",
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[2,
					["HGNC:1100","HGNC:1101"],
					{"GeneID":["672","673"],"chromosome":["17","13"],"map_location":["17q21.31","13q13.1"]},
					[["BRCA1","BRCA1 DNA repair associated"],["BRCA2","BRCA2 DNA repair associated"]]]`))
			},
			want: &gene.Details{
				Symbol:      "BRCA2",
				Description: "BRCA2 DNA repair associated",
				GeneID:      "673",
				Chromosome:  "13",
				MapLocation: "13q13.1",
			},
		},
		{
			name:   "numeric extra field values",
			symbol: "TP53",
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[1,
					["HGNC:11998"],
					{"GeneID":[7157],"chromosome":["17"]},
					[["TP53","tumor protein p53"]]]`))
			},
			want: &gene.Details{
				Symbol:      "TP53",
				Description: "tumor protein p53",
				GeneID:      "7157",
				Chromosome:  "17",
			},
		},
		{
			name:   "missing extra field hash",
			symbol: "TP53",
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[1, ["HGNC:11998"], null, [["TP53","tumor protein p53"]]]`))
			},
			want: &gene.Details{
				Symbol:      "TP53",
				Description: "tumor protein p53",
			},
		},
		{
			name:   "fuzzy matches only",
			symbol: "BRCA",
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[1, ["HGNC:1100"], null, [["BRCA1","BRCA1 DNA repair associated"]]]`))
			},
			wantErr: gene.ErrNotFound,
		},
		{
			name:   "no candidates at all",
			symbol: "FAKEGENE123",
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`[0, [], null, []]`))
			},
			wantErr: gene.ErrNotFound,
		},
		{
			name:   "server error maps to not found",
			symbol: "BRCA1",
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: gene.ErrNotFound,
		},
		{
			name:   "malformed payload maps to not found",
			symbol: "BRCA1",
			handler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"unexpected": "shape"}`))
			},
			wantErr: gene.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.handler(t, w, r)
			}))
			defer server.Close()

			client := NewClient(server.URL, time.Second)
			defer func() {
				_ = client.Close()
			}()

			details, err := client.Details(context.Background(), tt.symbol)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, details)
		})
	}
}

func TestClient_Details_TransportErrorMapsToNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second)
	defer func() {
		_ = client.Close()
	}()

	_, err := client.Details(context.Background(), "BRCA1")
	assert.ErrorIs(t, err, gene.ErrNotFound)
}
