package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults without a configuration file", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
		assert.Nil(t, cfg)

		// without an explicit file, the search path miss is tolerated
		cfg, err = Load("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("genes", "cache.json"), cfg.Cache.Path)
		assert.Equal(t, 10*time.Second, cfg.Sources.Timeout())
		assert.Equal(t, "https://genealacart.genecards.org", cfg.Sources.GeneALaCart.BaseURL)
		assert.Equal(t, "https://clinicaltables.nlm.nih.gov", cfg.Sources.ClinicalTables.BaseURL)
		assert.Equal(t, "https://eutils.ncbi.nlm.nih.gov", cfg.Sources.Entrez.BaseURL)
		assert.Equal(t, uint(2), cfg.Sources.Entrez.RetryAttempts)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 3306, cfg.Database.Port)
		assert.Equal(t, "genecli", cfg.Database.Database)
		assert.Equal(t, "reports", cfg.Outputs.ReportDirectory)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := writeConfigFile(t, `
cache:
  path: /var/lib/genecli/cache.json
sources:
  timeout_seconds: 3
  entrez:
    base_url: http://localhost:8080
    retry_attempts: 0
outputs:
  report_directory: /tmp/gene-reports
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "/var/lib/genecli/cache.json", cfg.Cache.Path)
		assert.Equal(t, 3*time.Second, cfg.Sources.Timeout())
		assert.Equal(t, "http://localhost:8080", cfg.Sources.Entrez.BaseURL)
		assert.Equal(t, uint(0), cfg.Sources.Entrez.RetryAttempts)
		assert.Equal(t, "/tmp/gene-reports", cfg.Outputs.ReportDirectory)
		// untouched sections keep their defaults
		assert.Equal(t, "https://genealacart.genecards.org", cfg.Sources.GeneALaCart.BaseURL)
	})

	t.Run("database credentials come from the environment", func(t *testing.T) {
		t.Setenv("GENECLI_DB_USERNAME", "genecli_user")
		t.Setenv("GENECLI_DB_PASSWORD", "secret")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "genecli_user", cfg.Database.Username)
		assert.Equal(t, "secret", cfg.Database.Password)
	})

	t.Run("malformed yaml is rejected", func(t *testing.T) {
		path := writeConfigFile(t, "cache: [broken")

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{
			name: "empty cache path",
			contents: `
cache:
  path: ""
`,
			wantErr: "path",
		},
		{
			name: "non-positive timeout",
			contents: `
sources:
  timeout_seconds: 0
`,
			wantErr: "timeout_seconds",
		},
		{
			name: "invalid base url",
			contents: `
sources:
  genealacart:
    base_url: not-a-url
`,
			wantErr: "base_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.contents)

			_, err := Load(path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
