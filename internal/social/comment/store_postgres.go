// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

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

var selectColumns = fmt.Sprintf(`%s, %s, %s, %s, %s`,
	schema.SocialComment.ID, schema.SocialComment.QuoteID, schema.SocialComment.UserID,
	schema.SocialComment.Body, schema.SocialComment.CreatedAt,
)

func (repository *PostgresRepository) Create(context context.Context, c *Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`,
		schema.SocialComment.Table, schema.SocialComment.QuoteID, schema.SocialComment.UserID,
		schema.SocialComment.Body, schema.SocialComment.CreatedAt,
		schema.SocialComment.ID,
	)

	err := repository.db.QueryRow(context, query, c.QuoteID, c.UserID, c.Text, c.CreatedAt).Scan(&c.ID)
	return dberr.Wrap(err, "create_comment")
}

func (repository *PostgresRepository) Find(context context.Context, id int) (*Comment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.SocialComment.Table, schema.SocialComment.ID)

	c := &Comment{}
	err := repository.db.QueryRow(context, query, id).Scan(&c.ID, &c.QuoteID, &c.UserID, &c.Text, &c.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "find_comment")
	}
	return c, nil
}

func (repository *PostgresRepository) ListByQuote(context context.Context, quoteID int) ([]*Comment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC, %s DESC`,
		selectColumns, schema.SocialComment.Table, schema.SocialComment.QuoteID,
		schema.SocialComment.CreatedAt, schema.SocialComment.ID,
	)

	rows, err := repository.db.Query(context, query, quoteID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_comments")
	}
	defer rows.Close()

	comments := make([]*Comment, 0)
	for rows.Next() {
		c := &Comment{}
		if err := rows.Scan(&c.ID, &c.QuoteID, &c.UserID, &c.Text, &c.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, c)
	}

	return comments, dberr.Wrap(rows.Err(), "list_comments")
}

func (repository *PostgresRepository) UpdateText(context context.Context, id int, text string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.SocialComment.Table, schema.SocialComment.Body, schema.SocialComment.ID)

	cmd, err := repository.db.Exec(context, query, id, text)
	if err != nil {
		return dberr.Wrap(err, "update_comment")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.SocialComment.Table, schema.SocialComment.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_comment")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// FindQuote reads the parent quote with its drama title.
func (repository *PostgresRepository) FindQuote(context context.Context, quoteID int) (*QuoteSummary, error) {
	q, d := schema.CatalogQuote, schema.CatalogDrama
	query := fmt.Sprintf(`
		SELECT q.%s, q.%s, q.%s, q.%s, q.%s, d.%s
		FROM %s q
		JOIN %s d ON d.%s = q.%s
		WHERE q.%s = $1
	`,
		q.ID, q.Content, q.Actor, q.Episode, q.DramaID, d.Title,
		q.Table, d.Table, d.ID, q.DramaID, q.ID,
	)

	s := &QuoteSummary{}
	err := repository.db.QueryRow(context, query, quoteID).Scan(&s.QuoteID, &s.Content, &s.Actor, &s.Episode, &s.DramaID, &s.DramaTitle)
	if err != nil {
		return nil, dberr.Wrap(err, "find_comment_quote")
	}
	return s, nil
}
