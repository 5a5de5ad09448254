package sqrrl

import (
	"strconv"
)

/*
A table reference with an optional alias. Renders space-separated:
`name alias`.
*/
type Table struct {
	Name string
	As   string
}

// Alias if present, otherwise the table name. Used for qualifying columns in
// join conditions.
func (self Table) ref() string {
	if self.As != `` {
		return self.As
	}
	return self.Name
}

func (self Table) appendTo(buf []byte) []byte {
	buf = append(buf, self.Name...)
	if self.As != `` {
		buf = append(buf, ' ')
		buf = append(buf, self.As...)
	}
	return buf
}

// Implement `fmt.Stringer` for debug purposes.
func (self Table) String() string { return bytesToMutableString(self.appendTo(nil)) }

// Shortcut converting bare names to a `Table` slice.
func Tables(names ...string) []Table {
	out := make([]Table, 0, len(names))
	for _, name := range names {
		out = append(out, Table{Name: name})
	}
	return out
}

/*
A named value, the building block of comparisons, SET clauses, and row
sources. The value is rendered via `Literal`; use `Raw` to bypass quoting.
*/
type Assign struct {
	Col string
	Val interface{}
}

// Implement `fmt.Stringer` for debug purposes. Renders `col=value`, the SET
// clause form.
func (self Assign) String() string {
	return bytesToMutableString(self.appendSet(nil))
}

func (self Assign) appendSet(buf []byte) []byte {
	buf = append(buf, self.Col...)
	buf = append(buf, '=')
	return appendLiteral(buf, self.Val)
}

func (self Assign) appendCmp(buf []byte, op string) []byte {
	buf = append(buf, self.Col...)
	buf = append(buf, ' ')
	buf = append(buf, op...)
	buf = append(buf, ' ')
	return appendLiteral(buf, self.Val)
}

// `SELECT <cols>`; zero specs produce `SELECT *`.
func Select(cols ...ColSpec) string {
	return bytesToMutableString(appendColSpecs([]byte(`SELECT `), cols))
}

// `SELECT DISTINCT <cols>`; zero specs produce `SELECT DISTINCT *`.
func SelectDistinct(cols ...ColSpec) string {
	return bytesToMutableString(appendColSpecs([]byte(`SELECT DISTINCT `), cols))
}

// `FROM <tables>`, comma-joined, each table with its optional alias. Zero
// tables produce an empty fragment.
func From(tables ...Table) string {
	if len(tables) == 0 {
		return ``
	}
	buf := []byte(`FROM `)
	for ind, table := range tables {
		if ind > 0 {
			buf = append(buf, `, `...)
		}
		buf = table.appendTo(buf)
	}
	return bytesToMutableString(buf)
}

/*
Conditionally emits `WHERE <AND-joined conditions>`. When `cond` is false,
returns an empty fragment regardless of the conditions. Empty condition
strings are skipped. `Where(true)` with zero conditions renders a bare
`WHERE`.
*/
func Where(cond bool, conds ...string) string {
	if !cond {
		return ``
	}
	if countNonEmptyStrings(conds) == 0 {
		return `WHERE`
	}
	return bytesToMutableString(appendJoined([]byte(`WHERE `), ` AND `, conds))
}

// `GROUP BY <cols>`, comma-joined. Zero columns produce an empty fragment.
func GroupBy(cols ...string) string {
	if countNonEmptyStrings(cols) == 0 {
		return ``
	}
	return bytesToMutableString(appendJoined([]byte(`GROUP BY `), `, `, cols))
}

const (
	DirNone Dir = 0
	DirAsc  Dir = 1
	DirDesc Dir = 2
)

// Short for "direction". Enum for ordering direction: none, "ASC", "DESC".
type Dir byte

// Implement `fmt.Stringer` for debug purposes.
func (self Dir) String() string {
	switch self {
	case DirAsc:
		return `ASC`
	case DirDesc:
		return `DESC`
	default:
		return ``
	}
}

// One entry of an `OrderBy` list: a column with an optional direction suffix.
type OrderCol struct {
	Col string
	Dir Dir
}

func (self OrderCol) appendTo(buf []byte) []byte {
	buf = append(buf, self.Col...)
	dir := self.Dir.String()
	if dir != `` {
		buf = append(buf, ' ')
		buf = append(buf, dir...)
	}
	return buf
}

// Implement `fmt.Stringer` for debug purposes.
func (self OrderCol) String() string { return bytesToMutableString(self.appendTo(nil)) }

// Ordering entry without a direction suffix.
func Ord(col string) OrderCol { return OrderCol{Col: col} }

// Ordering entry with the `ASC` suffix.
func Asc(col string) OrderCol { return OrderCol{Col: col, Dir: DirAsc} }

// Ordering entry with the `DESC` suffix.
func Desc(col string) OrderCol { return OrderCol{Col: col, Dir: DirDesc} }

// `ORDER BY <cols>`, comma-joined, with per-column direction suffixes. Zero
// columns produce an empty fragment.
func OrderBy(cols ...OrderCol) string {
	if len(cols) == 0 {
		return ``
	}
	buf := []byte(`ORDER BY `)
	for ind, col := range cols {
		if ind > 0 {
			buf = append(buf, `, `...)
		}
		buf = col.appendTo(buf)
	}
	return bytesToMutableString(buf)
}

// `LIMIT n` for positive n; silently empty otherwise.
func Limit(num int) string {
	if num <= 0 {
		return ``
	}
	return `LIMIT ` + strconv.Itoa(num)
}

func cmp(op string, assigns []Assign) string {
	var buf []byte
	for ind, assign := range assigns {
		if ind > 0 {
			buf = append(buf, ` AND `...)
		}
		buf = assign.appendCmp(buf, op)
	}
	return bytesToMutableString(buf)
}

// `col = value`; multiple assigns combine with ` AND `.
func Eq(assigns ...Assign) string { return cmp(`=`, assigns) }

// `col != value`; multiple assigns combine with ` AND `.
func Neq(assigns ...Assign) string { return cmp(`!=`, assigns) }

// `col < value`; multiple assigns combine with ` AND `.
func Lt(assigns ...Assign) string { return cmp(`<`, assigns) }

// `col <= value`; multiple assigns combine with ` AND `.
func Leq(assigns ...Assign) string { return cmp(`<=`, assigns) }

// `col > value`; multiple assigns combine with ` AND `.
func Gt(assigns ...Assign) string { return cmp(`>`, assigns) }

// `col >= value`; multiple assigns combine with ` AND `.
func Geq(assigns ...Assign) string { return cmp(`>=`, assigns) }

/*
Joins non-empty fragments with ` AND `. No parenthesization is added; wrap
operands in `Parens` when nesting precedence matters.
*/
func And(frags ...string) string {
	return bytesToMutableString(appendJoined(nil, ` AND `, frags))
}

// Joins non-empty fragments with ` OR `. See the note on `And` about parens.
func Or(frags ...string) string {
	return bytesToMutableString(appendJoined(nil, ` OR `, frags))
}

// Wraps a fragment in parens.
func Parens(frag string) string { return `(` + frag + `)` }

/*
`IN` membership operator. The right-hand side is always a parenthesized
comma list of literals. With more than one value, the left operand is quoted
as an identifier; with a single value it stays unquoted, supporting subquery
use via `Raw`:

	sqrrl.In(`id`, 1, 2)                          // `"id" IN (1, 2)`
	sqrrl.In(`id`, sqrrl.Raw(`SELECT id FROM t`)) // `id IN (SELECT id FROM t)`
*/
func In(lhs string, vals ...interface{}) string {
	return membership(lhs, ` IN (`, vals)
}

// Negated counterpart to `In`.
func NotIn(lhs string, vals ...interface{}) string {
	return membership(lhs, ` NOT IN (`, vals)
}

func membership(lhs string, infix string, vals []interface{}) string {
	var buf []byte
	if len(vals) == 1 {
		buf = append(buf, lhs...)
	} else {
		buf = Ident(lhs).AppendTo(buf)
	}
	buf = append(buf, infix...)
	for ind, val := range vals {
		if ind > 0 {
			buf = append(buf, `, `...)
		}
		buf = appendLiteral(buf, val)
	}
	buf = append(buf, ')')
	return bytesToMutableString(buf)
}

/*
`LIKE` pattern operator. The pattern is quoted as a literal and the left
operand is quoted as an identifier, except when the pattern is `Raw`, in
which case both sides are emitted verbatim:

	sqrrl.Like(`name`, `a%`)                    // `"name" LIKE 'a%'`
	sqrrl.Like(`name`, sqrrl.Raw(`lower(pat)`)) // `name LIKE lower(pat)`
*/
func Like(lhs string, pattern interface{}) string {
	return likeOp(lhs, ` LIKE `, pattern)
}

// Negated counterpart to `Like`.
func NotLike(lhs string, pattern interface{}) string {
	return likeOp(lhs, ` NOT LIKE `, pattern)
}

func likeOp(lhs string, infix string, pattern interface{}) string {
	var buf []byte
	if _, ok := pattern.(Raw); ok {
		buf = append(buf, lhs...)
	} else {
		buf = Ident(lhs).AppendTo(buf)
	}
	buf = append(buf, infix...)
	buf = appendLiteral(buf, pattern)
	return bytesToMutableString(buf)
}

// `"col" BETWEEN lo AND hi`, bounds rendered as literals.
func Between(col string, lo, hi interface{}) string {
	buf := Ident(col).AppendTo(nil)
	buf = append(buf, ` BETWEEN `...)
	buf = appendLiteral(buf, lo)
	buf = append(buf, ` AND `...)
	buf = appendLiteral(buf, hi)
	return bytesToMutableString(buf)
}

// `"col" IS NULL`.
func IsNull(col string) string {
	return bytesToMutableString(append(Ident(col).AppendTo(nil), ` IS NULL`...))
}

// `"col" IS NOT NULL`.
func IsNotNull(col string) string {
	return bytesToMutableString(append(Ident(col).AppendTo(nil), ` IS NOT NULL`...))
}
