package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jask/dpselect/internal/catalog"
	"github.com/jask/dpselect/internal/database"
	"github.com/jask/dpselect/internal/logging"
	"github.com/jask/dpselect/internal/service"
	"github.com/jask/dpselect/internal/testdata"
)

func newSeedCmd() *cobra.Command {
	var (
		file    string
		replace bool
		sample  int
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import a YAML catalog into the sqlite database",
		Long: `Import domains and data products from a YAML catalog.

Entries are upserted by fully-qualified name, so seeding the same file twice is a no-op.
With --replace the existing catalog is deleted first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := seedCatalog(file, sample)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
				return fmt.Errorf("mkdir db dir: %w", err)
			}
			if err := database.RunMigrations(cfg.Database.Path); err != nil {
				return err
			}
			db, err := database.Open(cfg.Database.Path)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			ctx := cmd.Context()
			if replace {
				maintenance := &service.MaintenanceService{DB: db}
				if err := maintenance.Reset(ctx); err != nil {
					return err
				}
				logging.Info("catalog cleared", "db", cfg.Database.Path)
			}
			res, err := database.SeedFromCatalog(ctx, db, cat)
			if err != nil {
				return err
			}
			logging.Info("catalog seeded", "domains", res.Domains, "data_products", res.DataProducts)
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d domains and %d data products\n", res.Domains, res.DataProducts)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML catalog to import (default: catalog.file)")
	cmd.Flags().IntVar(&sample, "sample", 0, "import N generated data products instead of a file")
	cmd.Flags().BoolVar(&replace, "replace", false, "delete the existing catalog before importing")
	return cmd
}

func seedCatalog(file string, sample int) (catalog.Catalog, error) {
	if sample > 0 {
		return testdata.Sample(sample, 1), nil
	}
	path := file
	if path == "" {
		path = cfg.Catalog.File
	}
	if path == "" {
		return catalog.Catalog{}, fmt.Errorf("seed: --file, --sample or catalog.file is required")
	}
	return catalog.LoadFile(path)
}
