// Package sqlstream provides a pullstreams source backed by a database/sql query.
package sqlstream

import (
	"context"
	"database/sql"
	"errors"

	"github.com/deadlyengineer/pullstreams"
)

// Scanner scans the current row of rows into a value.
type Scanner[T any] func(rows *sql.Rows) (T, error)

// Option configures Query.
type Option func(*config)

type config struct {
	args []any
}

// WithArgs sets the arguments for the placeholder parameters of the query.
func WithArgs(args ...any) Option {
	return func(c *config) {
		c.args = append(c.args, args...)
	}
}

// Query returns a stream that produces one element per row returned by query, scanned with scan.
//
// The query is executed by the first pull, using that pull's context, which then also bounds the
// lifetime of the rows. The rows are closed once they are exhausted, when scanning fails, or when the
// stream is terminated or an error is injected into it.
func Query[T any](db *sql.DB, query string, scan Scanner[T], opts ...Option) *pullstreams.Stream[T] {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return pullstreams.New[T](&rowsSource[T]{
		db:    db,
		query: query,
		args:  cfg.args,
		scan:  scan,
	})
}

type rowsSource[T any] struct {
	db    *sql.DB
	query string
	args  []any
	scan  Scanner[T]

	rows   *sql.Rows
	closed bool
}

// Next implements pullstreams.Source.
func (s *rowsSource[T]) Next(ctx context.Context) (pullstreams.Result[T], error) {
	var zero T

	if s.closed {
		return pullstreams.Done(zero), nil
	}

	if s.rows == nil {
		rows, err := s.db.QueryContext(ctx, s.query, s.args...)
		if err != nil {
			s.closed = true
			return pullstreams.Result[T]{}, err
		}

		s.rows = rows
	}

	if !s.rows.Next() {
		if err := errors.Join(s.rows.Err(), s.close()); err != nil {
			return pullstreams.Result[T]{}, err
		}

		return pullstreams.Done(zero), nil
	}

	elem, err := s.scan(s.rows)
	if err != nil {
		_ = s.close()
		return pullstreams.Result[T]{}, err
	}

	return pullstreams.Item(elem), nil
}

// Return implements pullstreams.Returner.
func (s *rowsSource[T]) Return(_ context.Context, value T) (pullstreams.Result[T], error) {
	if err := s.close(); err != nil {
		return pullstreams.Result[T]{}, err
	}

	return pullstreams.Done(value), nil
}

// Throw implements pullstreams.Thrower.
func (s *rowsSource[T]) Throw(_ context.Context, err error) (pullstreams.Result[T], error) {
	_ = s.close()
	return pullstreams.Result[T]{}, err
}

func (s *rowsSource[T]) close() error {
	if s.closed {
		return nil
	}

	s.closed = true

	if s.rows == nil {
		return nil
	}

	return s.rows.Close()
}
