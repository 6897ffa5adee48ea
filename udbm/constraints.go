// File: constraints.go
// Role: parses a conjunction of literal difference constraints into a DBM.
// This is a one-way door: it builds zones from constraints a caller already
// has in hand (tests, examples, a config file) and is never used to parse
// this library's own printed output.

package udbm

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/zonelib/udbm/bound"
	"github.com/zonelib/udbm/dbm"
)

// ErrSyntax indicates a term did not match the supported grammar.
var ErrSyntax = errors.New("udbm: constraint syntax error")

// ErrUnknownClock indicates a term named a clock absent from the Names
// table passed to NewConstraints.
var ErrUnknownClock = errors.New("udbm: unknown clock name")

// Constraints parses and holds a conjunction of difference constraints over
// a fixed, named set of clocks. The grammar is a "&&"-separated list of
// terms, each one of:
//
//	x - y < 3      // xi - xj strictly less than 3
//	x - y <= 3     // xi - xj at most 3
//	x < 3, x <= 3  // upper bound on a single clock (x - 0 ≺ b)
//	x > 3, x >= 3  // lower bound on a single clock (0 - x ≺ -b)
type Constraints struct {
	names Names
	index map[string]int
}

var termPattern = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*)\s*(?:-\s*([A-Za-z_][A-Za-z0-9_]*)\s*)?(<=|<|>=|>)\s*(-?\d+)\s*$`)

// NewConstraints builds a Constraints parser over the given clock names;
// names[0] is conventionally the reference clock and need not be named.
func NewConstraints(names Names) *Constraints {
	index := make(map[string]int, len(names))
	for i, n := range names {
		if n != "" {
			index[n] = i
		}
	}
	return &Constraints{names: names, index: index}
}

// Parse reads a "&&"-separated conjunction and returns the equivalent
// dbm.Constraint list, ready for dbm.ConstrainMany.
func (c *Constraints) Parse(expr string) ([]dbm.Constraint, error) {
	var out []dbm.Constraint
	for _, term := range strings.Split(expr, "&&") {
		if strings.TrimSpace(term) == "" {
			continue
		}
		cs, err := c.parseTerm(term)
		if err != nil {
			return nil, err
		}
		out = append(out, cs)
	}
	return out, nil
}

// Build parses expr and constrains a fresh unconstrained DBM of the
// receiver's dimension (len(names)) with the result.
func (c *Constraints) Build(expr string) (*dbm.DBM, error) {
	cs, err := c.Parse(expr)
	if err != nil {
		return nil, err
	}
	d := dbm.New(len(c.names))
	d.ConstrainMany(cs)
	return d, nil
}

func (c *Constraints) parseTerm(term string) (dbm.Constraint, error) {
	m := termPattern.FindStringSubmatch(term)
	if m == nil {
		return dbm.Constraint{}, fmt.Errorf("%w: %q", ErrSyntax, strings.TrimSpace(term))
	}
	left, right, op, numLit := m[1], m[2], m[3], m[4]

	i, err := c.resolve(left)
	if err != nil {
		return dbm.Constraint{}, err
	}
	j := 0
	if right != "" {
		j, err = c.resolve(right)
		if err != nil {
			return dbm.Constraint{}, err
		}
	}

	n, err := strconv.ParseInt(numLit, 10, 32)
	if err != nil {
		return dbm.Constraint{}, fmt.Errorf("%w: %q", ErrSyntax, term)
	}
	value := int32(n)

	switch op {
	case "<":
		return dbm.Constraint{I: i, J: j, Bound: bound.Encode(value, true)}, nil
	case "<=":
		return dbm.Constraint{I: i, J: j, Bound: bound.Encode(value, false)}, nil
	case ">":
		return dbm.Constraint{I: j, J: i, Bound: bound.Encode(-value, true)}, nil
	case ">=":
		return dbm.Constraint{I: j, J: i, Bound: bound.Encode(-value, false)}, nil
	default:
		return dbm.Constraint{}, fmt.Errorf("%w: %q", ErrSyntax, term)
	}
}

func (c *Constraints) resolve(name string) (int, error) {
	i, ok := c.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownClock, name)
	}
	return i, nil
}
