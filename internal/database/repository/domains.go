package repository

import (
	"context"
	"database/sql"

	"github.com/jask/dpselect/internal/catalog"
)

// DomainRepo handles domains.
type DomainRepo struct {
	db DBTX
}

func NewDomainRepo(db DBTX) *DomainRepo { return &DomainRepo{db: db} }

func (r *DomainRepo) Upsert(ctx context.Context, d catalog.Domain) error {
	ownerName, ownerDisplay := ownerColumns(d.Owner)
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO domains(id, name, display_name, fqn, description, owner_name, owner_display_name)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		name=excluded.name,
		display_name=excluded.display_name,
		fqn=excluded.fqn,
		description=excluded.description,
		owner_name=excluded.owner_name,
		owner_display_name=excluded.owner_display_name,
		updated_at=CURRENT_TIMESTAMP;
	`, d.ID, d.Name, d.DisplayName, d.FullyQualifiedName, d.Description, ownerName, ownerDisplay)
	return err
}

func (r *DomainRepo) ByFQN(ctx context.Context, fqn string) (*catalog.Domain, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, name, display_name, fqn, description, owner_name, owner_display_name
	FROM domains WHERE fqn = ?`, fqn)
	d, err := scanDomain(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *DomainRepo) List(ctx context.Context) ([]catalog.Domain, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, display_name, fqn, description, owner_name, owner_display_name
	FROM domains ORDER BY fqn`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []catalog.Domain
	for rows.Next() {
		d, err := scanDomain(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDomain(s scanner) (catalog.Domain, error) {
	var (
		d                       catalog.Domain
		ownerName, ownerDisplay sql.NullString
	)
	if err := s.Scan(&d.ID, &d.Name, &d.DisplayName, &d.FullyQualifiedName, &d.Description, &ownerName, &ownerDisplay); err != nil {
		return catalog.Domain{}, err
	}
	d.Owner = ownerFromColumns(ownerName, ownerDisplay)
	return d, nil
}
