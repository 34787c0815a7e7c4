// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr classifies pgx errors for the repositories and services.
//
// Repositories call [Wrap] on every driver error. Services then branch on the
// sentinels with [errors.Is] and use [Detail] to surface the driver message
// inside an Error outcome.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/opinion/internal/platform/apperr"
)

// PostgreSQL SQLSTATE codes the repositories care about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

var (
	// ErrNotFound is returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")

	// ErrStaleVersion is returned when an optimistic update matched no row
	// because the row version changed since it was read.
	ErrStaleVersion = errors.New("dberr: row version changed since read")
)

// Wrap annotates a database error with the repository action that produced it.
// [pgx.ErrNoRows] becomes [ErrNotFound]; everything else keeps its chain so
// that [IsUniqueViolation], [IsForeignKeyViolation] and [Detail] still work.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	return fmt.Errorf("%s: %w", action, err)
}

// IsNotFound reports whether err is [ErrNotFound] or a raw [pgx.ErrNoRows].
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, pgx.ErrNoRows)
}

// IsUniqueViolation reports whether err carries SQLSTATE 23505.
func IsUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

// IsForeignKeyViolation reports whether err carries SQLSTATE 23503.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

// Detail returns the most useful human-readable part of a driver error: the
// PostgreSQL DETAIL line when present, else the server message, else err.Error().
func Detail(err error) string {
	if err == nil {
		return ""
	}

	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		if pgError.Detail != "" {
			return pgError.Detail
		}
		return pgError.Message
	}

	return err.Error()
}

func hasCode(err error, code string) bool {
	var pgError *pgconn.PgError
	return errors.As(err, &pgError) && pgError.Code == code
}
