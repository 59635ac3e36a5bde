package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jask/dpselect/internal/catalog"
)

// DataProductRepo handles data products.
type DataProductRepo struct {
	db DBTX
}

func NewDataProductRepo(db DBTX) *DataProductRepo { return &DataProductRepo{db: db} }

func (r *DataProductRepo) Upsert(ctx context.Context, p catalog.DataProduct) error {
	ownerName, ownerDisplay := ownerColumns(p.Owner)
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO data_products(id, domain_id, name, display_name, fqn, description, owner_name, owner_display_name)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		domain_id=excluded.domain_id,
		name=excluded.name,
		display_name=excluded.display_name,
		fqn=excluded.fqn,
		description=excluded.description,
		owner_name=excluded.owner_name,
		owner_display_name=excluded.owner_display_name,
		updated_at=CURRENT_TIMESTAMP;
	`, p.ID, p.Domain.ID, p.Name, p.DisplayName, p.FullyQualifiedName, p.Description, ownerName, ownerDisplay)
	return err
}

const productColumns = `
	p.id, p.name, p.display_name, p.fqn, p.description, p.owner_name, p.owner_display_name,
	d.id, d.name, d.display_name, d.fqn`

func (r *DataProductRepo) ByFQN(ctx context.Context, fqn string) (*catalog.DataProduct, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+`
	FROM data_products p JOIN domains d ON d.id = p.domain_id
	WHERE p.fqn = ?`, fqn)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Search returns one page of data products whose name, display name or fully-qualified
// name contains term (case-insensitive), and the number of matches across all pages.
func (r *DataProductRepo) Search(ctx context.Context, term string, limit, offset int) ([]catalog.DataProduct, int, error) {
	where := ""
	var args []any
	if t := strings.TrimSpace(term); t != "" {
		pattern := likePattern(t)
		where = `WHERE unicode_lower(p.name) LIKE ? ESCAPE '\'
		OR unicode_lower(p.display_name) LIKE ? ESCAPE '\'
		OR unicode_lower(p.fqn) LIKE ? ESCAPE '\'`
		args = append(args, pattern, pattern, pattern)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM data_products p `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+productColumns+`
	FROM data_products p JOIN domains d ON d.id = p.domain_id
	`+where+`
	ORDER BY unicode_lower(CASE WHEN p.display_name = '' THEN p.name ELSE p.display_name END), p.fqn
	LIMIT ? OFFSET ?`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var out []catalog.DataProduct
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func scanProduct(s scanner) (catalog.DataProduct, error) {
	var (
		p                       catalog.DataProduct
		ownerName, ownerDisplay sql.NullString
	)
	err := s.Scan(
		&p.ID, &p.Name, &p.DisplayName, &p.FullyQualifiedName, &p.Description, &ownerName, &ownerDisplay,
		&p.Domain.ID, &p.Domain.Name, &p.Domain.DisplayName, &p.Domain.FullyQualifiedName,
	)
	if err != nil {
		return catalog.DataProduct{}, err
	}
	p.Domain.Type = catalog.TypeDomain
	p.Owner = ownerFromColumns(ownerName, ownerDisplay)
	return p, nil
}
