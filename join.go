package sqrrl

import (
	"strings"
)

/*
One join condition: a column pair matched by name. An empty `.Right` defaults
to `.Left`, meaning both sides share the column name.
*/
type Cond struct {
	Left  string
	Right string
}

func (self Cond) right() string {
	if self.Right != `` {
		return self.Right
	}
	return self.Left
}

/*
Join specification: a left table, one or more right tables, and a condition
mapping. Conditions are provided either as a single shared set (`.On`,
broadcast to every right table) or as one set per right table (`.OnEach`,
matched positionally). Renders:

	[TYPE] JOIN <right-tables> <USING|ON clause>[ AND cond]

Rules:

	* `.OnEach` length must equal the right-table count, otherwise the build
	  fails with a `ConditionCountMismatch` error.
	* With a single right table, a name-symmetric condition set, and
	  `.PreferUsing`, renders `USING (col1, col2, ...)`. This requires
	  identical column names on both sides.
	* Otherwise renders `ON` equality clauses `left.col=right.col`;
	  multi-column sets and multi-table joins are parenthesized and
	  ` AND `-joined.
	* More than one right table renders as a parenthesized comma list.
	* `.Cond`, if set, is ` AND `-appended to the whole clause.
*/
type Join struct {
	Type        string
	Left        Table
	Rights      []Table
	On          []Cond
	OnEach      [][]Cond
	PreferUsing bool
	Cond        string
}

// Implement `fmt.Stringer`. Panics on invalid input; see `Fragment` for the
// error-returning variant.
func (self Join) String() string {
	return bytesToMutableString(self.appendTo(nil))
}

// Builds the join fragment, converting panics to errors.
func (self Join) Fragment() (_ string, err error) {
	defer rec(&err)
	return self.String(), nil
}

func (self Join) appendTo(buf []byte) []byte {
	condSets := self.condSets()

	typ := strings.ToUpper(strings.TrimSpace(self.Type))
	if typ != `` {
		buf = append(buf, typ...)
		buf = append(buf, ' ')
	}
	buf = append(buf, `JOIN `...)
	buf = self.appendRights(buf)

	if self.wantUsing(condSets) {
		buf = self.appendUsing(buf, condSets[0])
	} else if len(condSets) > 0 {
		buf = self.appendOn(buf, condSets)
	}

	if self.Cond != `` {
		buf = append(buf, ` AND `...)
		buf = append(buf, self.Cond...)
	}
	return buf
}

/*
Normalizes `.On`/`.OnEach` into one condition set per right table. A single
`.On` set broadcasts to every right table; `.OnEach` must match the
right-table count exactly.
*/
func (self Join) condSets() [][]Cond {
	if len(self.On) > 0 && len(self.OnEach) > 0 {
		panic(ErrInvalidInput.while(`building join`).because(
			errf(`provide either .On or .OnEach, not both`),
		))
	}

	if len(self.OnEach) > 0 {
		if len(self.OnEach) != len(self.Rights) {
			panic(ErrConditionCountMismatch.while(`building join`).because(
				errf(
					`condition list length %v does not match right table count %v`,
					len(self.OnEach), len(self.Rights),
				),
			))
		}
		return self.OnEach
	}

	if len(self.On) == 0 {
		return nil
	}

	out := make([][]Cond, len(self.Rights))
	for ind := range out {
		out[ind] = self.On
	}
	return out
}

func (self Join) appendRights(buf []byte) []byte {
	if len(self.Rights) > 1 {
		buf = append(buf, '(')
		for ind, table := range self.Rights {
			if ind > 0 {
				buf = append(buf, `, `...)
			}
			buf = table.appendTo(buf)
		}
		return append(buf, ')')
	}
	for _, table := range self.Rights {
		buf = table.appendTo(buf)
	}
	return buf
}

func (self Join) wantUsing(condSets [][]Cond) bool {
	if !self.PreferUsing || len(self.Rights) != 1 || len(condSets) == 0 {
		return false
	}
	for _, cond := range condSets[0] {
		if cond.Right != `` {
			return false
		}
	}
	return true
}

func (self Join) appendUsing(buf []byte, conds []Cond) []byte {
	buf = append(buf, ` USING (`...)
	for ind, cond := range conds {
		if ind > 0 {
			buf = append(buf, `, `...)
		}
		buf = append(buf, cond.Left...)
	}
	return append(buf, ')')
}

func (self Join) appendOn(buf []byte, condSets [][]Cond) []byte {
	buf = append(buf, ` ON `...)

	// Parens are needed whenever more than one equality appears.
	parens := len(condSets) > 1
	for _, conds := range condSets {
		if len(conds) > 1 {
			parens = true
		}
	}

	for ind, conds := range condSets {
		if ind > 0 {
			buf = append(buf, ` AND `...)
		}
		if parens {
			buf = append(buf, '(')
		}
		buf = self.appendCondSet(buf, self.Rights[ind], conds)
		if parens {
			buf = append(buf, ')')
		}
	}
	return buf
}

func (self Join) appendCondSet(buf []byte, right Table, conds []Cond) []byte {
	for ind, cond := range conds {
		if ind > 0 {
			buf = append(buf, ` AND `...)
		}
		buf = append(buf, self.Left.ref()...)
		buf = append(buf, '.')
		buf = append(buf, cond.Left...)
		buf = append(buf, '=')
		buf = append(buf, right.ref()...)
		buf = append(buf, '.')
		buf = append(buf, cond.right()...)
	}
	return buf
}

func typedJoin(typ string, left Table, right Table, on []Cond) string {
	return Join{Type: typ, Left: left, Rights: []Table{right}, On: on}.String()
}

// `INNER JOIN` with a single right table.
func InnerJoin(left Table, right Table, on ...Cond) string {
	return typedJoin(`inner`, left, right, on)
}

// `LEFT JOIN` with a single right table.
func LeftJoin(left Table, right Table, on ...Cond) string {
	return typedJoin(`left`, left, right, on)
}

// `RIGHT JOIN` with a single right table.
func RightJoin(left Table, right Table, on ...Cond) string {
	return typedJoin(`right`, left, right, on)
}

// `OUTER JOIN` with a single right table.
func OuterJoin(left Table, right Table, on ...Cond) string {
	return typedJoin(`outer`, left, right, on)
}

// `NATURAL JOIN`; takes no conditions.
func NaturalJoin(left Table, right Table) string {
	return typedJoin(`natural`, left, right, nil)
}
