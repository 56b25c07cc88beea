// Package repository is the client for the remote data store. Reads are
// described with Query, named server-side procedures are called through RPC.
package repository

import (
	"context"
	"fmt"
)

// Store is the handle every data access function is given.
type Store interface {
	// Select scans the rows matched by q into dest, a pointer to a slice.
	// With CountExact the total number of matching rows is returned as well.
	Select(ctx context.Context, q Query, dest any) (Result, error)
	// RPC calls a named procedure and scans its rows into dest.
	RPC(ctx context.Context, name string, params Params, dest any) error
	Ping(ctx context.Context) error
}

type Result struct {
	// Count is only set when the query asked for CountExact.
	Count *int64
}

// CountOrZero treats a missing count as zero.
func (r Result) CountOrZero() int64 {
	if r.Count == nil {
		return 0
	}
	return *r.Count
}

// Params are the named arguments of a procedure call.
type Params map[string]any

func (p Params) String(name string) (string, error) {
	v, ok := p[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingParam, name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, want string", ErrParamType, name, v)
	}
	return s, nil
}

func (p Params) Int(name string) (int, error) {
	v, ok := p[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingParam, name)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, fmt.Errorf("%w: %s is %T, want integer", ErrParamType, name, v)
}
