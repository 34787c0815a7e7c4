// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/opinion/internal/platform/dberr"
)

/*
TestWrap_NoRows maps pgx.ErrNoRows to the NotFound sentinel.
*/
func TestWrap_NoRows(t *testing.T) {
	err := dberr.Wrap(pgx.ErrNoRows, "find_drama")

	assert.ErrorIs(t, err, dberr.ErrNotFound)
	assert.True(t, dberr.IsNotFound(err))
	assert.Nil(t, dberr.Wrap(nil, "noop"))
}

/*
TestWrap_KeepsDriverChain checks classification and detail extraction
survive wrapping.
*/
func TestWrap_KeepsDriverChain(t *testing.T) {
	tests := []struct {
		name       string
		pgError    *pgconn.PgError
		unique     bool
		foreignKey bool
		detail     string
	}{
		{
			name:    "unique_violation",
			pgError: &pgconn.PgError{Code: "23505", Message: "duplicate key value", Detail: "Key (type)=(witty) already exists."},
			unique:  true,
			detail:  "Key (type)=(witty) already exists.",
		},
		{
			name:       "foreign_key_violation",
			pgError:    &pgconn.PgError{Code: "23503", Message: "insert or update violates foreign key constraint"},
			foreignKey: true,
			detail:     "insert or update violates foreign key constraint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dberr.Wrap(tt.pgError, "create_row")

			assert.Equal(t, tt.unique, dberr.IsUniqueViolation(err))
			assert.Equal(t, tt.foreignKey, dberr.IsForeignKeyViolation(err))
			assert.Equal(t, tt.detail, dberr.Detail(err))
			assert.False(t, dberr.IsNotFound(err))
		})
	}
}

/*
TestDetail_PlainError falls back to the error text.
*/
func TestDetail_PlainError(t *testing.T) {
	assert.Equal(t, "connection refused", dberr.Detail(errors.New("connection refused")))
	assert.Empty(t, dberr.Detail(nil))
}
