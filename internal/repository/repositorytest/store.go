// Package repositorytest provides an in-memory repository.Store for service
// and handler tests.
package repositorytest

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"invoice-dashboard-backend/internal/repository"
)

type Call struct {
	Name   string
	Params repository.Params
}

// Store answers Select by table name and RPC by procedure name with canned
// rows, counts and errors. It records every query and call it receives.
type Store struct {
	mu      sync.Mutex
	rows    map[string]any
	counts  map[string]int64
	errs    map[string]error
	pingErr error

	queries []repository.Query
	calls   []Call
}

func New() *Store {
	return &Store{
		rows:   make(map[string]any),
		counts: make(map[string]int64),
		errs:   make(map[string]error),
	}
}

// SetRows sets the slice returned for a table or procedure. rows must have
// the type the caller scans into, e.g. []models.Revenue.
func (s *Store) SetRows(name string, rows any) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[name] = rows
	return s
}

func (s *Store) SetCount(table string, n int64) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[table] = n
	return s
}

// Fail makes every read of the table or procedure return err.
func (s *Store) Fail(name string, err error) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[name] = err
	return s
}

func (s *Store) FailPing(err error) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pingErr = err
	return s
}

func (s *Store) Queries() []repository.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]repository.Query(nil), s.queries...)
}

func (s *Store) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

func (s *Store) Select(ctx context.Context, q repository.Query, dest any) (repository.Result, error) {
	if err := ctx.Err(); err != nil {
		return repository.Result{}, err
	}
	if err := q.Validate(); err != nil {
		return repository.Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, q)
	if err := s.errs[q.Table]; err != nil {
		return repository.Result{}, err
	}

	var res repository.Result
	if q.CountMode == repository.CountExact {
		n := s.counts[q.Table]
		res.Count = &n
	}
	if q.HeadOnly {
		return res, nil
	}
	return res, fill(dest, s.rows[q.Table])
}

func (s *Store) RPC(ctx context.Context, name string, params repository.Params, dest any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{Name: name, Params: params})
	if err := s.errs[name]; err != nil {
		return err
	}
	return fill(dest, s.rows[name])
}

func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pingErr
}

// fill copies rows into *dest. Missing rows leave dest untouched.
func fill(dest, rows any) error {
	if rows == nil {
		return nil
	}
	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Pointer || dv.IsNil() {
		return fmt.Errorf("repositorytest: dest must be a non-nil pointer, got %T", dest)
	}
	rv := reflect.ValueOf(rows)
	if !rv.Type().AssignableTo(dv.Elem().Type()) {
		return fmt.Errorf("repositorytest: cannot scan %T into %T", rows, dest)
	}
	dv.Elem().Set(rv)
	return nil
}

var _ repository.Store = (*Store)(nil)
