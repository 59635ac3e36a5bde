package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jask/dpselect/internal/catalog"
)

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ownerColumns flattens an owner reference into nullable columns.
func ownerColumns(o *catalog.EntityReference) (sql.NullString, sql.NullString) {
	if o == nil || strings.TrimSpace(o.Name) == "" {
		return sql.NullString{}, sql.NullString{}
	}
	return sql.NullString{String: o.Name, Valid: true},
		sql.NullString{String: o.DisplayName, Valid: o.DisplayName != ""}
}

func ownerFromColumns(name, display sql.NullString) *catalog.EntityReference {
	if !name.Valid {
		return nil
	}
	return &catalog.EntityReference{Name: name.String, DisplayName: display.String}
}

// likePattern builds a substring pattern for unicode_lower(col) LIKE ? ESCAPE '\'.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(term)) + "%"
}
