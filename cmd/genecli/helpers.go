package main

import (
	"fmt"

	"github.com/at-ishikawa/genecli/internal/config"
	"github.com/at-ishikawa/genecli/internal/gene"
	"github.com/at-ishikawa/genecli/internal/gene/clinicaltables"
	"github.com/at-ishikawa/genecli/internal/gene/entrez"
	"github.com/at-ishikawa/genecli/internal/gene/genealacart"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.Load > %w", err)
	}
	return cfg, nil
}

func newStore(cfg *config.Config) (*gene.Store, error) {
	store, err := gene.NewStore(cfg.Cache.Path)
	if err != nil {
		return nil, fmt.Errorf("gene.NewStore > %w", err)
	}
	return store, nil
}

func newResolver(cfg *config.Config, store *gene.Store) *gene.Resolver {
	timeout := cfg.Sources.Timeout()
	entrezClient := entrez.NewClient(cfg.Sources.Entrez.BaseURL, timeout, cfg.Sources.Entrez.RetryAttempts)

	return gene.NewResolver(
		store,
		genealacart.NewClient(cfg.Sources.GeneALaCart.BaseURL, timeout),
		clinicaltables.NewClient(cfg.Sources.ClinicalTables.BaseURL, timeout),
		entrezClient,
		entrezClient,
	)
}
