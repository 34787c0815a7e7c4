// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package quotemood

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/opinion/internal/platform/database/schema"
	"github.com/taibuivan/opinion/internal/platform/dberr"
	"github.com/taibuivan/opinion/internal/platform/postgres"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	qt = schema.CatalogQuote
	qm = schema.CatalogQuoteMood
	mt = schema.CatalogMood
	dt = schema.CatalogDrama
)

func (repository *PostgresRepository) QuotesForMood(context context.Context, label string) ([]QuoteOnMood, error) {
	query := fmt.Sprintf(`
		SELECT q.%s, q.%s, q.%s, m.%s, d.%s
		FROM %s q
		JOIN %s qm ON qm.%s = q.%s
		JOIN %s m ON m.%s = qm.%s
		JOIN %s d ON d.%s = q.%s
		WHERE m.%s = $1
		ORDER BY q.%s ASC
	`,
		qt.ID, qt.Content, qt.Actor, mt.Type, dt.Title,
		qt.Table,
		qm.Table, qm.QuoteID, qt.ID,
		mt.Table, mt.ID, qm.MoodID,
		dt.Table, dt.ID, qt.DramaID,
		mt.Type,
		qt.ID,
	)

	rows, err := repository.db.Query(context, query, label)
	if err != nil {
		return nil, dberr.Wrap(err, "quotes_for_mood")
	}
	defer rows.Close()

	quotes := make([]QuoteOnMood, 0)
	for rows.Next() {
		var item QuoteOnMood
		if err := rows.Scan(&item.QuoteID, &item.Content, &item.Actor, &item.Type, &item.Title); err != nil {
			return nil, dberr.Wrap(err, "scan_quote_on_mood")
		}
		quotes = append(quotes, item)
	}

	return quotes, dberr.Wrap(rows.Err(), "quotes_for_mood")
}

func (repository *PostgresRepository) MoodsForQuote(context context.Context, quoteID int) ([]MoodTag, error) {
	exists, err := rowExists(context, repository.db, qt.Table, qt.ID, quoteID, false)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, dberr.ErrNotFound
	}

	query := fmt.Sprintf(`
		SELECT m.%s, m.%s
		FROM %s qm
		JOIN %s m ON m.%s = qm.%s
		WHERE qm.%s = $1
		ORDER BY m.%s ASC
	`,
		mt.ID, mt.Type,
		qm.Table,
		mt.Table, mt.ID, qm.MoodID,
		qm.QuoteID,
		mt.Type,
	)

	rows, err := repository.db.Query(context, query, quoteID)
	if err != nil {
		return nil, dberr.Wrap(err, "moods_for_quote")
	}
	defer rows.Close()

	moods := make([]MoodTag, 0)
	for rows.Next() {
		var item MoodTag
		if err := rows.Scan(&item.MoodID, &item.Type); err != nil {
			return nil, dberr.Wrap(err, "scan_mood_tag")
		}
		moods = append(moods, item)
	}

	return moods, dberr.Wrap(rows.Err(), "moods_for_quote")
}

// Tag locks both parents with FOR KEY SHARE so neither can be deleted between
// the check and the insert.
func (repository *PostgresRepository) Tag(context context.Context, tag Tag) error {
	return postgres.WithTx(context, repository.db, func(tx pgx.Tx) error {
		quoteExists, err := rowExists(context, tx, qt.Table, qt.ID, tag.QuoteID, true)
		if err != nil {
			return err
		}
		if !quoteExists {
			return ErrQuoteMissing
		}

		moodExists, err := rowExists(context, tx, mt.Table, mt.ID, tag.MoodID, true)
		if err != nil {
			return err
		}
		if !moodExists {
			return ErrMoodMissing
		}

		query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			qm.Table, qm.QuoteID, qm.MoodID)

		cmd, err := tx.Exec(context, query, tag.QuoteID, tag.MoodID)
		if err != nil {
			return dberr.Wrap(err, "tag_quote")
		}
		if cmd.RowsAffected() == 0 {
			return ErrDuplicateTag
		}
		return nil
	})
}

func (repository *PostgresRepository) Untag(context context.Context, tag Tag) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`, qm.Table, qm.QuoteID, qm.MoodID)

	cmd, err := repository.db.Exec(context, query, tag.QuoteID, tag.MoodID)
	if err != nil {
		return dberr.Wrap(err, "untag_quote")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	QueryRow(context context.Context, sql string, args ...any) pgx.Row
}

func rowExists(context context.Context, db querier, table, idColumn string, id int, lock bool) (bool, error) {
	query := fmt.Sprintf(`SELECT 1 FROM %s WHERE %s = $1`, table, idColumn)
	if lock {
		query += ` FOR KEY SHARE`
	}

	var one int
	err := db.QueryRow(context, query, id).Scan(&one)
	if dberr.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, dberr.Wrap(err, "row_exists")
	}
	return true, nil
}
