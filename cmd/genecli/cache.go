package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/genecli/internal/datasync"
)

func newCacheCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "cache",
		Short: "Manage the local gene cache",
	}

	rootCommand.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "List cached gene symbols",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := newStore(cfg)
			if err != nil {
				return err
			}

			for _, symbol := range store.Symbols() {
				fmt.Println(symbol)
			}
			return nil
		},
	})

	rootCommand.AddCommand(&cobra.Command{
		Use:   "clear [GENE...]",
		Short: "Remove cached genes, or every gene when none are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := newStore(cfg)
			if err != nil {
				return err
			}

			symbols := args
			if len(symbols) == 0 {
				symbols = store.Symbols()
			}
			removed := 0
			for _, symbol := range symbols {
				if store.Delete(symbol) {
					removed++
				}
			}
			fmt.Printf("removed %d cached genes\n", removed)
			return nil
		},
	})

	var outputPath string
	exportCommand := &cobra.Command{
		Use:   "export",
		Short: "Export the cache as a YAML document",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := newStore(cfg)
			if err != nil {
				return err
			}

			if err := datasync.ExportYAML(store.Records(), outputPath); err != nil {
				return fmt.Errorf("datasync.ExportYAML > %w", err)
			}
			fmt.Printf("exported %d genes to %s\n", len(store.Symbols()), outputPath)
			return nil
		},
	}
	exportCommand.Flags().StringVar(&outputPath, "output", "genes.yml", "output file path")
	rootCommand.AddCommand(exportCommand)

	return &rootCommand
}
