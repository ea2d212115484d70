package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/genecli/internal/report"
)

func newReportCommand() *cobra.Command {
	var toPDF bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a markdown report of all cached genes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := newStore(cfg)
			if err != nil {
				return err
			}

			writer := report.NewWriter(cfg.Outputs.ReportDirectory)
			markdownPath, err := writer.WriteMarkdown(store.Records())
			if err != nil {
				return fmt.Errorf("writer.WriteMarkdown > %w", err)
			}
			fmt.Printf("wrote %s\n", markdownPath)

			if toPDF {
				pdfPath, err := report.ConvertMarkdownToPDF(markdownPath)
				if err != nil {
					return fmt.Errorf("report.ConvertMarkdownToPDF > %w", err)
				}
				fmt.Printf("wrote %s\n", pdfPath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&toPDF, "pdf", false, "Also convert the report to PDF")
	return cmd
}
