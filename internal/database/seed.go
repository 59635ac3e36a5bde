package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/dpselect/internal/catalog"
	"github.com/jask/dpselect/internal/database/repository"
)

// SeedResult counts what SeedFromCatalog wrote.
type SeedResult struct {
	Domains      int
	DataProducts int
}

// SeedFromCatalog upserts every domain and data product of cat in one transaction.
// Ids are derived from fully-qualified names, so re-running it is idempotent.
func SeedFromCatalog(ctx context.Context, db *sql.DB, cat catalog.Catalog) (SeedResult, error) {
	var res SeedResult
	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		domains := repository.NewDomainRepo(tx)
		products := repository.NewDataProductRepo(tx)
		for _, d := range cat.Domains {
			if err := domains.Upsert(ctx, d); err != nil {
				return fmt.Errorf("domain %s: %w", d.FullyQualifiedName, err)
			}
			res.Domains++
		}
		for _, p := range cat.DataProducts {
			if err := products.Upsert(ctx, p); err != nil {
				return fmt.Errorf("data product %s: %w", p.FullyQualifiedName, err)
			}
			res.DataProducts++
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}
	return res, nil
}
