package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/genecli/internal/gene"
	mock_cli "github.com/at-ishikawa/genecli/internal/mocks/cli"
)

func init() {
	// keep assertions on plain text
	color.NoColor = true
}

func brca1Record() *gene.Record {
	summary := "BRCA1 DNA repair associated"
	entrezSummary := "This gene encodes a tumor suppressor protein."
	geneID := "672"
	chromosome := "17"
	mapLocation := "17q21.31"
	ncbiURL := "https://www.ncbi.nlm.nih.gov/gene/672"
	genecardsURL := "https://www.genecards.org/cgi-bin/carddisp.pl?gene=BRCA1"
	return &gene.Record{
		Symbol:        "BRCA1",
		Summary:       &summary,
		EntrezSummary: &entrezSummary,
		GeneID:        &geneID,
		Chromosome:    &chromosome,
		MapLocation:   &mapLocation,
		Source:        gene.SourceNCBI,
		NCBIURL:       &ncbiURL,
		GenecardsURL:  &genecardsURL,
	}
}

func TestGeneCLI_PrintRecord(t *testing.T) {
	tests := []struct {
		name      string
		record    *gene.Record
		wantLines []string
		unwanted  []string
	}{
		{
			name:   "full record",
			record: brca1Record(),
			wantLines: []string{
				"BRCA1 | Entrez:672 | Chr:17 | Loc:17q21.31",
				"Description: BRCA1 DNA repair associated",
				"Summary: This gene encodes a tumor suppressor protein.",
				"NCBI: https://www.ncbi.nlm.nih.gov/gene/672",
				"GeneCards: https://www.genecards.org/cgi-bin/carddisp.pl?gene=BRCA1",
			},
		},
		{
			name:   "sparse record",
			record: &gene.Record{Symbol: "TP53", Source: gene.SourceGeneCards},
			wantLines: []string{
				"TP53",
				"No description available for TP53",
			},
			unwanted: []string{"Entrez:", "Summary:", "NCBI:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			geneCLI := NewGeneCLI(nil, strings.NewReader(""), &out)

			geneCLI.PrintRecord(tt.record)

			for _, line := range tt.wantLines {
				assert.Contains(t, out.String(), line)
			}
			for _, fragment := range tt.unwanted {
				assert.NotContains(t, out.String(), fragment)
			}
		})
	}
}

func TestGeneCLI_ProcessGenes(t *testing.T) {
	t.Run("failures do not stop the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		resolver := mock_cli.NewMockGeneResolver(ctrl)
		resolver.EXPECT().Resolve(gomock.Any(), "FAKEGENE123").
			Return(nil, gene.ErrNotFound)
		resolver.EXPECT().Resolve(gomock.Any(), "BRCA1").
			Return(nil, errors.New("connection refused"))
		resolver.EXPECT().Resolve(gomock.Any(), "TP53").
			Return(&gene.Record{Symbol: "TP53", Source: gene.SourceNCBI}, nil)

		var out bytes.Buffer
		geneCLI := NewGeneCLI(resolver, strings.NewReader(""), &out)

		geneCLI.ProcessGenes(context.Background(), []string{"FAKEGENE123", "BRCA1", "", "TP53"})

		assert.Contains(t, out.String(), "Gene not found: FAKEGENE123")
		assert.Contains(t, out.String(), "Error fetching BRCA1: connection refused")
		assert.Contains(t, out.String(), "TP53")
	})

	t.Run("blank symbols are skipped without a lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		resolver := mock_cli.NewMockGeneResolver(ctrl)

		var out bytes.Buffer
		geneCLI := NewGeneCLI(resolver, strings.NewReader(""), &out)

		geneCLI.ProcessGenes(context.Background(), []string{"", "   "})
		assert.Empty(t, out.String())
	})
}

func TestCondense(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "whitespace is collapsed",
			text: "spans\nmultiple   lines\tand tabs",
			want: "spans multiple lines and tabs",
		},
		{
			name: "long text is truncated with an ellipsis",
			text: strings.Repeat("a", maxCondensedSummaryLength+10),
			want: strings.Repeat("a", maxCondensedSummaryLength-3) + "...",
		},
		{
			name: "short text is unchanged",
			text: "short",
			want: "short",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := condense(tt.text)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len([]rune(got)), maxCondensedSummaryLength)
		})
	}
}

func TestGeneCLI_Run(t *testing.T) {
	t.Run("symbols are resolved until exit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		resolver := mock_cli.NewMockGeneResolver(ctrl)
		resolver.EXPECT().Resolve(gomock.Any(), "BRCA1").Return(brca1Record(), nil)

		var out bytes.Buffer
		geneCLI := NewGeneCLI(resolver, strings.NewReader("BRCA1\nexit\n"), &out)

		err := geneCLI.Run(context.Background())
		require.NoError(t, err)
		assert.Contains(t, out.String(), "genes> ")
		assert.Contains(t, out.String(), "BRCA1 | Entrez:672")
		assert.Contains(t, out.String(), "Bye.")
	})

	t.Run("end of input ends the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		resolver := mock_cli.NewMockGeneResolver(ctrl)

		var out bytes.Buffer
		geneCLI := NewGeneCLI(resolver, strings.NewReader(""), &out)

		err := geneCLI.Run(context.Background())
		require.NoError(t, err)
	})

	t.Run("help and blank lines keep the loop alive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		resolver := mock_cli.NewMockGeneResolver(ctrl)

		var out bytes.Buffer
		geneCLI := NewGeneCLI(resolver, strings.NewReader("\nhelp\nquit\n"), &out)

		err := geneCLI.Run(context.Background())
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Interactive mode commands:")
		assert.Contains(t, out.String(), "Bye.")
	})
}
