// Copyright (c) 2026 Opinion. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package outcome defines the uniform result envelope returned by every catalog,
tagging and comment operation.

A [Result] is a tagged value: the [Status] says what happened, Messages carry
human-readable diagnostics, and Data holds the typed payload. Only the
success constructors ([Found], [Success], [Created], [Updated]) can attach a
payload, so a NotFound or Forbidden result never carries stale data.

JSON shape:

	{"status":"Created","createdId":7,"messages":["..."],"data":{...}}
*/
package outcome

import (
	"net/http"
	"strings"
)

// Status is the discriminator of a [Result].
type Status string

const (
	StatusFound     Status = "Found"
	StatusNotFound  Status = "NotFound"
	StatusCreated   Status = "Created"
	StatusUpdated   Status = "Updated"
	StatusDeleted   Status = "Deleted"
	StatusError     Status = "Error"
	StatusSuccess   Status = "Success"
	StatusForbidden Status = "Forbidden"
)

// HTTPStatus maps a status onto the response code used by the JSON API and the pages.
func (s Status) HTTPStatus() int {
	switch s {
	case StatusNotFound:
		return http.StatusNotFound
	case StatusForbidden:
		return http.StatusForbidden
	case StatusError:
		return http.StatusInternalServerError
	case StatusCreated:
		return http.StatusCreated
	default:
		return http.StatusOK
	}
}

// Result is the envelope for an operation producing a T.
type Result[T any] struct {
	Status    Status   `json:"status"`
	CreatedID *int     `json:"createdId,omitempty"`
	Messages  []string `json:"messages"`
	Data      *T       `json:"data,omitempty"`
}

// # Success Constructors

// Found wraps a read hit.
func Found[T any](data T, messages ...string) Result[T] {
	return Result[T]{Status: StatusFound, Messages: normalize(messages), Data: &data}
}

// Success wraps a filtered read that matched at least one row.
func Success[T any](data T, messages ...string) Result[T] {
	return Result[T]{Status: StatusSuccess, Messages: normalize(messages), Data: &data}
}

// Created wraps an insert and records the new primary key.
func Created[T any](id int, data T, messages ...string) Result[T] {
	return Result[T]{Status: StatusCreated, CreatedID: &id, Messages: normalize(messages), Data: &data}
}

// Updated wraps a completed update.
func Updated[T any](data T, messages ...string) Result[T] {
	return Result[T]{Status: StatusUpdated, Messages: normalize(messages), Data: &data}
}

// Deleted reports a completed delete. It never carries a payload.
func Deleted[T any](messages ...string) Result[T] {
	return Result[T]{Status: StatusDeleted, Messages: normalize(messages)}
}

// # Failure Constructors

// NotFound reports a missing target or parent row.
func NotFound[T any](messages ...string) Result[T] {
	return Result[T]{Status: StatusNotFound, Messages: normalize(messages)}
}

// Forbidden reports a caller that may not perform the operation.
func Forbidden[T any](messages ...string) Result[T] {
	return Result[T]{Status: StatusForbidden, Messages: normalize(messages)}
}

// Fail reports a storage or concurrency failure. Empty messages are dropped,
// so callers can pass an optional driver detail unconditionally.
func Fail[T any](messages ...string) Result[T] {
	return Result[T]{Status: StatusError, Messages: normalize(messages)}
}

// # Accessors

// HTTPStatus is shorthand for r.Status.HTTPStatus().
func (r Result[T]) HTTPStatus() int {
	return r.Status.HTTPStatus()
}

// Succeeded reports whether the status is one of the non-failure variants.
func (r Result[T]) Succeeded() bool {
	switch r.Status {
	case StatusNotFound, StatusForbidden, StatusError:
		return false
	default:
		return true
	}
}

// Value returns the payload, or the zero T when the result carries none.
func (r Result[T]) Value() T {
	if r.Data == nil {
		var zero T
		return zero
	}
	return *r.Data
}

// Message joins all messages into one line for logs and flash text.
func (r Result[T]) Message() string {
	return strings.Join(r.Messages, " ")
}

func normalize(messages []string) []string {
	out := make([]string, 0, len(messages))
	for _, message := range messages {
		if message != "" {
			out = append(out, message)
		}
	}
	return out
}
