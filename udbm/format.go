// File: format.go
// Role: renders a zone or federation as a conjunction of literal difference
// constraints. Every term is printed as a difference "xi - xj ≺ b", with the
// reference clock written as the literal "0", so single-clock bounds read
// "x - 0 <= 10"; Constraints.Parse does not accept that form.

package udbm

import (
	"strconv"
	"strings"

	"github.com/zonelib/udbm/bound"
	"github.com/zonelib/udbm/dbm"
	"github.com/zonelib/udbm/federation"
)

// FormatDBM renders d's finite, non-trivial constraints as a conjunction
// "x - y < 3 && x - 0 <= 10", using namer for clock names and omitting the
// reference clock's own name (it always prints as the literal "0"). Returns
// "false" for an empty zone and "true" for the unconstrained zone.
func FormatDBM(d *dbm.DBM, namer ClockNamer) string {
	if d.IsEmpty() {
		return "false"
	}
	var terms []string
	dim := d.Dim()
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if i == j {
				continue
			}
			b := d.At(i, j)
			if b.IsInfinity() {
				continue
			}
			if i == 0 && b == bound.LEZero {
				continue // 0 - xj <= 0 is implicit (every clock is non-negative)
			}
			terms = append(terms, formatTerm(namer, i, j, b))
		}
	}
	if len(terms) == 0 {
		return "true"
	}
	return strings.Join(terms, " && ")
}

func formatTerm(namer ClockNamer, i, j int, b bound.Bound) string {
	var sb strings.Builder
	sb.WriteString(clockLabel(namer, i))
	sb.WriteString(" - ")
	sb.WriteString(clockLabel(namer, j))
	if b.IsStrict() {
		sb.WriteString(" < ")
	} else {
		sb.WriteString(" <= ")
	}
	sb.WriteString(strconv.FormatInt(int64(b.Value()), 10))
	return sb.String()
}

func clockLabel(namer ClockNamer, i int) string {
	if i == 0 {
		return "0"
	}
	return namer.ClockName(i)
}

// FormatFederation renders every member zone of f in parentheses, joined on
// one line by " || ", or "false" for an empty federation.
func FormatFederation(f *federation.Federation, namer ClockNamer) string {
	members := f.Members()
	if len(members) == 0 {
		return "false"
	}
	parts := make([]string, len(members))
	for i, h := range members {
		parts[i] = "(" + FormatDBM(h.Matrix(), namer) + ")"
	}
	return strings.Join(parts, " || ")
}
