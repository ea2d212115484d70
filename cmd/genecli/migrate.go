package main

import (
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/genecli/internal/database"
	"github.com/at-ishikawa/genecli/internal/datasync"
	"github.com/at-ishikawa/genecli/internal/gene"
	"github.com/at-ishikawa/genecli/schemas"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migration commands",
	}

	migrateCmd.AddCommand(newMigrateSchemaCommand())
	migrateCmd.AddCommand(newMigrateImportDBCommand())
	return migrateCmd
}

func newMigrateSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Apply the SQL schema migrations to the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			names, err := fs.Glob(schemas.Migrations, "migrations/*.sql")
			if err != nil {
				return fmt.Errorf("fs.Glob(migrations) > %w", err)
			}
			sort.Strings(names)
			for _, name := range names {
				contents, err := schemas.Migrations.ReadFile(name)
				if err != nil {
					return fmt.Errorf("Migrations.ReadFile(%s) > %w", name, err)
				}
				if _, err := db.ExecContext(ctx, string(contents)); err != nil {
					return fmt.Errorf("db.ExecContext(%s) > %w", name, err)
				}
				fmt.Printf("applied %s\n", name)
			}
			return nil
		},
	}
}

func newMigrateImportDBCommand() *cobra.Command {
	var dryRun bool
	var updateExisting bool

	cmd := &cobra.Command{
		Use:   "import-db",
		Short: "Import the JSON gene cache into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := newStore(cfg)
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			importer := datasync.NewImporter(gene.NewDBRepository(db), os.Stdout)
			result, err := importer.ImportRecords(ctx, store.Records(), datasync.ImportOptions{
				DryRun:         dryRun,
				UpdateExisting: updateExisting,
			})
			if err != nil {
				return fmt.Errorf("importer.ImportRecords() > %w", err)
			}

			fmt.Println("\nImport Summary:")
			if dryRun {
				fmt.Println("  (dry-run mode — no changes made)")
			}
			fmt.Printf("  Gene records: %d new, %d skipped, %d updated\n",
				result.RecordsNew, result.RecordsSkipped, result.RecordsUpdated)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	cmd.Flags().BoolVar(&updateExisting, "update-existing", false, "Update existing records with new data")
	return cmd
}
