package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/dpselect/internal/database"
)

// MaintenanceService houses destructive catalog actions.
type MaintenanceService struct {
	DB *sql.DB
}

// Reset deletes every data product and domain. The schema stays intact.
func (s *MaintenanceService) Reset(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	if err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		for _, t := range []string{"data_products", "domains"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
				return fmt.Errorf("reset table %s: %w", t, err)
			}
		}
		return nil
	}); err != nil {
		return err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return nil
}
