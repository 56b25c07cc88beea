package repository

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"gorm.io/gorm"
)

type GormStore struct {
	db              *gorm.DB
	registry        *Registry
	remoteFunctions bool
}

type Option func(*GormStore)

// WithRegistry replaces the default procedure registry.
func WithRegistry(r *Registry) Option {
	return func(s *GormStore) { s.registry = r }
}

// WithRemoteFunctions lets RPC call database functions for names that are
// not registered.
func WithRemoteFunctions(enabled bool) Option {
	return func(s *GormStore) { s.remoteFunctions = enabled }
}

func NewGormStore(db *gorm.DB, opts ...Option) *GormStore {
	s := &GormStore{db: db, registry: DefaultRegistry()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Expose DB if needed
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func (s *GormStore) Select(ctx context.Context, q Query, dest any) (Result, error) {
	if err := q.Validate(); err != nil {
		return Result{}, err
	}

	var res Result
	if q.CountMode == CountExact {
		var n int64
		if err := s.countStatement(s.db.WithContext(ctx), q).Count(&n).Error; err != nil {
			return Result{}, err
		}
		res.Count = &n
	}
	if q.HeadOnly {
		return res, nil
	}

	if err := s.rowsStatement(s.db.WithContext(ctx), q).Find(dest).Error; err != nil {
		return Result{}, err
	}
	return res, nil
}

// countStatement holds the FROM, JOIN and WHERE parts of q.
func (s *GormStore) countStatement(tx *gorm.DB, q Query) *gorm.DB {
	tx = tx.Table(q.Table)
	for _, j := range q.Joins {
		kind := "JOIN"
		if j.Left {
			kind = "LEFT JOIN"
		}
		tx = tx.Joins(fmt.Sprintf("%s %s ON %s = %s",
			kind, j.Table, qualify(q.Table, j.LocalColumn), qualify(j.Table, j.ForeignColumn)))
	}
	for _, f := range q.Filters {
		tx = tx.Where(fmt.Sprintf("%s %s ?", f.Column, f.Op), f.Value)
	}
	return tx
}

func (s *GormStore) rowsStatement(tx *gorm.DB, q Query) *gorm.DB {
	tx = s.countStatement(tx, q)
	if len(q.Columns) > 0 {
		tx = tx.Select(strings.Join(q.Columns, ", "))
	}
	for _, o := range q.Orders {
		dir := "ASC"
		if o.Direction == Descending {
			dir = "DESC"
		}
		tx = tx.Order(o.Column + " " + dir)
	}
	if q.RowLimit > 0 {
		tx = tx.Limit(q.RowLimit)
	}
	return tx
}

func (s *GormStore) RPC(ctx context.Context, name string, params Params, dest any) error {
	tx, err := s.call(s.db.WithContext(ctx), name, params)
	if err != nil {
		return err
	}
	return tx.Scan(dest).Error
}

func (s *GormStore) call(tx *gorm.DB, name string, params Params) (*gorm.DB, error) {
	if !ValidIdentifier(name) || strings.Contains(name, ".") {
		return nil, fmt.Errorf("%w: procedure %q", ErrInvalidIdentifier, name)
	}
	if proc, ok := s.registry.Lookup(name); ok {
		return proc(tx, params)
	}
	if !s.remoteFunctions {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProcedure, name)
	}

	// SELECT * FROM name(a => @a, b => @b)
	keys := slices.Sorted(maps.Keys(params))
	args := make([]string, 0, len(keys))
	for _, k := range keys {
		if !ValidIdentifier(k) || strings.Contains(k, ".") {
			return nil, fmt.Errorf("%w: parameter %q", ErrInvalidIdentifier, k)
		}
		args = append(args, k+" => @"+k)
	}
	stmt := fmt.Sprintf("SELECT * FROM %s(%s)", name, strings.Join(args, ", "))
	if len(params) == 0 {
		return tx.Raw(stmt), nil
	}
	return tx.Raw(stmt, map[string]any(params)), nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
