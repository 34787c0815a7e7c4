// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mood

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

func (repository *PostgresRepository) List(context context.Context) ([]*Mood, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.CatalogMood.ID, schema.CatalogMood.Type, schema.CatalogMood.Version,
		schema.CatalogMood.Table, schema.CatalogMood.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_moods")
	}
	defer rows.Close()

	moods := make([]*Mood, 0)
	for rows.Next() {
		m := &Mood{}
		if err := rows.Scan(&m.ID, &m.Type, &m.Version); err != nil {
			return nil, dberr.Wrap(err, "scan_mood")
		}
		moods = append(moods, m)
	}

	return moods, dberr.Wrap(rows.Err(), "list_moods")
}

func (repository *PostgresRepository) Find(context context.Context, id int) (*Mood, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.CatalogMood.ID, schema.CatalogMood.Type, schema.CatalogMood.Version,
		schema.CatalogMood.Table, schema.CatalogMood.ID,
	)

	m := &Mood{}
	if err := repository.db.QueryRow(context, query, id).Scan(&m.ID, &m.Type, &m.Version); err != nil {
		return nil, dberr.Wrap(err, "find_mood")
	}
	return m, nil
}

func (repository *PostgresRepository) Create(context context.Context, m *Mood) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s, %s`,
		schema.CatalogMood.Table, schema.CatalogMood.Type,
		schema.CatalogMood.ID, schema.CatalogMood.Version,
	)

	err := repository.db.QueryRow(context, query, m.Type).Scan(&m.ID, &m.Version)
	return dberr.Wrap(err, "create_mood")
}

func (repository *PostgresRepository) Update(context context.Context, m *Mood) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1 AND %s = $3`,
		schema.CatalogMood.Table, schema.CatalogMood.Type,
		schema.CatalogMood.ID, schema.CatalogMood.Version,
	)

	cmd, err := repository.db.Exec(context, query, m.ID, m.Type, m.Version)
	if err != nil {
		return dberr.Wrap(err, "update_mood")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrStaleVersion
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CatalogMood.Table, schema.CatalogMood.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_mood")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
