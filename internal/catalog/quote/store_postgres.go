// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package quote

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
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

var (
	q = schema.CatalogQuote
	d = schema.CatalogDrama

	selectJoined = fmt.Sprintf(`
		SELECT q.%s, q.%s, q.%s, q.%s, q.%s, d.%s, q.%s
		FROM %s q
		JOIN %s d ON d.%s = q.%s
	`,
		q.ID, q.Content, q.Actor, q.Episode, q.DramaID, d.Title, q.Version,
		q.Table, d.Table, d.ID, q.DramaID,
	)
)

func scanQuote(row pgx.Row) (*Quote, error) {
	quote := &Quote{}
	err := row.Scan(&quote.ID, &quote.Content, &quote.Actor, &quote.Episode, &quote.DramaID, &quote.DramaTitle, &quote.Version)
	return quote, err
}

func (repository *PostgresRepository) collect(context context.Context, action, query string, args ...any) ([]*Quote, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	quotes := make([]*Quote, 0)
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_quote")
		}
		quotes = append(quotes, quote)
	}

	return quotes, dberr.Wrap(rows.Err(), action)
}

func (repository *PostgresRepository) List(context context.Context) ([]*Quote, error) {
	return repository.collect(context, "list_quotes", selectJoined+fmt.Sprintf(`ORDER BY q.%s ASC`, q.ID))
}

func (repository *PostgresRepository) ListByDrama(context context.Context, dramaID int) ([]*Quote, error) {
	query := selectJoined + fmt.Sprintf(`WHERE q.%s = $1 ORDER BY q.%s ASC`, q.DramaID, q.ID)
	return repository.collect(context, "list_quotes_by_drama", query, dramaID)
}

func (repository *PostgresRepository) Find(context context.Context, id int) (*Quote, error) {
	query := selectJoined + fmt.Sprintf(`WHERE q.%s = $1`, q.ID)

	quote, err := scanQuote(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_quote")
	}
	return quote, nil
}

func (repository *PostgresRepository) Create(context context.Context, quote *Quote) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s, (SELECT %s FROM %s WHERE %s = $4)
	`,
		q.Table, q.Content, q.Actor, q.Episode, q.DramaID,
		q.ID, q.Version, d.Title, d.Table, d.ID,
	)

	err := repository.db.QueryRow(context, query, quote.Content, quote.Actor, quote.Episode, quote.DramaID).
		Scan(&quote.ID, &quote.Version, &quote.DramaTitle)
	return dberr.Wrap(err, "create_quote")
}

func (repository *PostgresRepository) Update(context context.Context, quote *Quote) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1 AND %s = $6
	`,
		q.Table, q.Content, q.Actor, q.Episode, q.DramaID,
		q.ID, q.Version,
	)

	cmd, err := repository.db.Exec(context, query, quote.ID, quote.Content, quote.Actor, quote.Episode, quote.DramaID, quote.Version)
	if err != nil {
		return dberr.Wrap(err, "update_quote")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrStaleVersion
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, q.Table, q.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_quote")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) DramaExists(context context.Context, dramaID int) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, d.Table, d.ID)

	var exists bool
	if err := repository.db.QueryRow(context, query, dramaID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "drama_exists")
	}
	return exists, nil
}
