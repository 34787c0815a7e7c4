// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package drama

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/opinion/internal/platform/database/schema"
	"github.com/taibuivan/opinion/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectColumns = fmt.Sprintf(`%s, %s, %s, %s, %s, %s`,
	schema.CatalogDrama.ID, schema.CatalogDrama.Title, schema.CatalogDrama.ReleaseYear,
	schema.CatalogDrama.Genre, schema.CatalogDrama.Synopsis, schema.CatalogDrama.Version,
)

func (repository *PostgresRepository) List(context context.Context) ([]*Drama, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		selectColumns, schema.CatalogDrama.Table, schema.CatalogDrama.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_dramas")
	}
	defer rows.Close()

	dramas := make([]*Drama, 0)
	for rows.Next() {
		d := &Drama{}
		if err := rows.Scan(&d.ID, &d.Title, &d.ReleaseYear, &d.Genre, &d.Synopsis, &d.Version); err != nil {
			return nil, dberr.Wrap(err, "scan_drama")
		}
		dramas = append(dramas, d)
	}

	return dramas, dberr.Wrap(rows.Err(), "list_dramas")
}

func (repository *PostgresRepository) Find(context context.Context, id int) (*Drama, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.CatalogDrama.Table, schema.CatalogDrama.ID)

	d := &Drama{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&d.ID, &d.Title, &d.ReleaseYear, &d.Genre, &d.Synopsis, &d.Version,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_drama")
	}

	return d, nil
}

func (repository *PostgresRepository) Create(context context.Context, d *Drama) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s
	`,
		schema.CatalogDrama.Table, schema.CatalogDrama.Title, schema.CatalogDrama.ReleaseYear,
		schema.CatalogDrama.Genre, schema.CatalogDrama.Synopsis,
		schema.CatalogDrama.ID, schema.CatalogDrama.Version,
	)

	err := repository.db.QueryRow(context, query, d.Title, d.ReleaseYear, d.Genre, d.Synopsis).Scan(&d.ID, &d.Version)
	return dberr.Wrap(err, "create_drama")
}

func (repository *PostgresRepository) Update(context context.Context, d *Drama) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1 AND %s = $6
	`,
		schema.CatalogDrama.Table, schema.CatalogDrama.Title, schema.CatalogDrama.ReleaseYear,
		schema.CatalogDrama.Genre, schema.CatalogDrama.Synopsis,
		schema.CatalogDrama.ID, schema.CatalogDrama.Version,
	)

	cmd, err := repository.db.Exec(context, query, d.ID, d.Title, d.ReleaseYear, d.Genre, d.Synopsis, d.Version)
	if err != nil {
		return dberr.Wrap(err, "update_drama")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrStaleVersion
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogDrama.Table, schema.CatalogDrama.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_drama")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
