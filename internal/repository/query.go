package repository

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

type CountMode int

const (
	CountNone CountMode = iota
	CountExact
)

type FilterOp string

const (
	OpEq    FilterOp = "="
	OpILike FilterOp = "ILIKE"
)

type Join struct {
	Table         string
	LocalColumn   string
	ForeignColumn string
	Left          bool
}

type Filter struct {
	Column string
	Op     FilterOp
	Value  any
}

type Order struct {
	Column    string
	Direction Direction
}

// Query describes a read against one table. Builder methods return a copy, so
// a base query can be shared and extended.
type Query struct {
	Table     string
	Columns   []string
	Joins     []Join
	Filters   []Filter
	Orders    []Order
	RowLimit  int
	CountMode CountMode
	HeadOnly  bool
}

func From(table string) Query {
	return Query{Table: table}
}

// Select replaces the selected columns. No columns means "*".
func (q Query) Select(columns ...string) Query {
	q.Columns = slices.Clone(columns)
	return q
}

// Join adds an inner join on q.Table.localColumn = table.foreignColumn.
func (q Query) Join(table, localColumn, foreignColumn string) Query {
	q.Joins = append(slices.Clone(q.Joins), Join{Table: table, LocalColumn: localColumn, ForeignColumn: foreignColumn})
	return q
}

func (q Query) LeftJoin(table, localColumn, foreignColumn string) Query {
	q.Joins = append(slices.Clone(q.Joins), Join{Table: table, LocalColumn: localColumn, ForeignColumn: foreignColumn, Left: true})
	return q
}

func (q Query) Eq(column string, value any) Query {
	q.Filters = append(slices.Clone(q.Filters), Filter{Column: column, Op: OpEq, Value: value})
	return q
}

func (q Query) ILike(column, pattern string) Query {
	q.Filters = append(slices.Clone(q.Filters), Filter{Column: column, Op: OpILike, Value: pattern})
	return q
}

func (q Query) Order(column string, dir Direction) Query {
	q.Orders = append(slices.Clone(q.Orders), Order{Column: column, Direction: dir})
	return q
}

func (q Query) Limit(n int) Query {
	q.RowLimit = n
	return q
}

func (q Query) Count(mode CountMode) Query {
	q.CountMode = mode
	return q
}

// Head asks for the count only; no rows are read.
func (q Query) Head() Query {
	q.HeadOnly = true
	return q
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.([A-Za-z_][A-Za-z0-9_]*|\*))?$`)

// ValidIdentifier reports whether name can be placed into SQL unquoted.
func ValidIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}

func validColumn(name string) bool {
	return name == "*" || ValidIdentifier(name)
}

// Validate checks every identifier in the query.
func (q Query) Validate() error {
	if q.Table == "" || strings.Contains(q.Table, ".") || !ValidIdentifier(q.Table) {
		return fmt.Errorf("%w: table %q", ErrInvalidIdentifier, q.Table)
	}
	for _, c := range q.Columns {
		if !validColumn(c) {
			return fmt.Errorf("%w: column %q", ErrInvalidIdentifier, c)
		}
	}
	for _, j := range q.Joins {
		if strings.Contains(j.Table, ".") || !ValidIdentifier(j.Table) {
			return fmt.Errorf("%w: join table %q", ErrInvalidIdentifier, j.Table)
		}
		if !ValidIdentifier(j.LocalColumn) || !ValidIdentifier(j.ForeignColumn) {
			return fmt.Errorf("%w: join on %q = %q", ErrInvalidIdentifier, j.LocalColumn, j.ForeignColumn)
		}
	}
	for _, f := range q.Filters {
		if !ValidIdentifier(f.Column) {
			return fmt.Errorf("%w: filter column %q", ErrInvalidIdentifier, f.Column)
		}
		if f.Op != OpEq && f.Op != OpILike {
			return fmt.Errorf("repository: unsupported filter operator %q", f.Op)
		}
	}
	for _, o := range q.Orders {
		if !ValidIdentifier(o.Column) {
			return fmt.Errorf("%w: order column %q", ErrInvalidIdentifier, o.Column)
		}
	}
	if q.RowLimit < 0 {
		return fmt.Errorf("repository: negative limit %d", q.RowLimit)
	}
	return nil
}

func qualify(table, column string) string {
	if strings.Contains(column, ".") {
		return column
	}
	return table + "." + column
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds an ILIKE pattern that matches text anywhere, with
// wildcard characters in text matched literally.
func ContainsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}
