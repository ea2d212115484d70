package datasync

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/genecli/internal/gene"
	mock_gene "github.com/at-ishikawa/genecli/internal/mocks/gene"
)

func TestImporter_ImportRecords(t *testing.T) {
	records := []gene.Record{
		{Symbol: "BRCA1", Source: gene.SourceNCBI, FetchedAt: 1700000000},
		{Symbol: "TP53", Source: gene.SourceEntrez, FetchedAt: 1700000000},
	}

	tests := []struct {
		name       string
		opts       ImportOptions
		setup      func(repository *mock_gene.MockRepository)
		want       ImportResult
		wantOutput []string
	}{
		{
			name: "new records are inserted",
			setup: func(repository *mock_gene.MockRepository) {
				repository.EXPECT().FindBySymbol(gomock.Any(), "BRCA1").Return(nil, nil)
				repository.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
				repository.EXPECT().FindBySymbol(gomock.Any(), "TP53").Return(nil, nil)
				repository.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
			},
			want:       ImportResult{RecordsNew: 2},
			wantOutput: []string{"imported BRCA1", "imported TP53"},
		},
		{
			name: "existing records are skipped by default",
			setup: func(repository *mock_gene.MockRepository) {
				repository.EXPECT().FindBySymbol(gomock.Any(), "BRCA1").Return(&gene.Entry{Symbol: "BRCA1"}, nil)
				repository.EXPECT().FindBySymbol(gomock.Any(), "TP53").Return(nil, nil)
				repository.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
			},
			want:       ImportResult{RecordsNew: 1, RecordsSkipped: 1},
			wantOutput: []string{"imported TP53"},
		},
		{
			name: "update existing overwrites rows",
			opts: ImportOptions{UpdateExisting: true},
			setup: func(repository *mock_gene.MockRepository) {
				repository.EXPECT().FindBySymbol(gomock.Any(), "BRCA1").Return(&gene.Entry{Symbol: "BRCA1"}, nil)
				repository.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
				repository.EXPECT().FindBySymbol(gomock.Any(), "TP53").Return(nil, nil)
				repository.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
			},
			want:       ImportResult{RecordsNew: 1, RecordsUpdated: 1},
			wantOutput: []string{"updated BRCA1", "imported TP53"},
		},
		{
			name: "dry run never writes",
			opts: ImportOptions{DryRun: true},
			setup: func(repository *mock_gene.MockRepository) {
				repository.EXPECT().FindBySymbol(gomock.Any(), "BRCA1").Return(nil, nil)
				repository.EXPECT().FindBySymbol(gomock.Any(), "TP53").Return(&gene.Entry{Symbol: "TP53"}, nil)
			},
			want:       ImportResult{RecordsNew: 1, RecordsSkipped: 1},
			wantOutput: []string{"imported BRCA1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repository := mock_gene.NewMockRepository(ctrl)
			tt.setup(repository)

			var out bytes.Buffer
			importer := NewImporter(repository, &out)

			result, err := importer.ImportRecords(context.Background(), records, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *result)
			for _, line := range tt.wantOutput {
				assert.Contains(t, out.String(), line)
			}
		})
	}
}

func TestImporter_ImportRecords_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repository := mock_gene.NewMockRepository(ctrl)
	repository.EXPECT().FindBySymbol(gomock.Any(), "BRCA1").
		Return(nil, errors.New("connection refused"))

	var out bytes.Buffer
	importer := NewImporter(repository, &out)

	_, err := importer.ImportRecords(context.Background(),
		[]gene.Record{{Symbol: "BRCA1", Source: gene.SourceNCBI}}, ImportOptions{})
	assert.ErrorContains(t, err, "connection refused")
}
