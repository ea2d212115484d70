package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/genecli/internal/cli"
)

func newFetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch [GENE...]",
		Short: "Fetch gene information, interactively when no genes are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := newStore(cfg)
			if err != nil {
				return err
			}

			geneCLI := cli.NewGeneCLI(newResolver(cfg, store), os.Stdin, os.Stdout)
			ctx := cmd.Context()
			if len(args) == 0 {
				return geneCLI.Run(ctx)
			}
			geneCLI.ProcessGenes(ctx, args)
			return nil
		},
	}
}
