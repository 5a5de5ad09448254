package sqrrl

import (
	"strings"
)

/*
Column specification for `Select`-like builders. This is a closed set of
variants:

	* `Col`       -> bare column name
	* `ColAs`     -> single aliased column, `col AS alias`
	* `TableCols` -> table grouping, every column qualified with `table.`

Resolution flattens a sequence of specs into ordered column expressions,
preserving argument order, then within-group order. Names that already
contain a `.` are considered pre-qualified and pass through untouched.
*/
type ColSpec interface {
	appendColExprs([]byte) []byte
}

// Bare column name, used verbatim.
type Col string

func (self Col) appendColExprs(buf []byte) []byte {
	return append(buf, self...)
}

// Implement `fmt.Stringer` for debug purposes.
func (self Col) String() string { return string(self) }

// Single aliased column: `col AS alias`. An empty alias renders a bare column.
type ColAs struct {
	Col string
	As  string
}

func (self ColAs) appendColExprs(buf []byte) []byte {
	buf = append(buf, self.Col...)
	if self.As != `` {
		buf = append(buf, ` AS `...)
		buf = append(buf, self.As...)
	}
	return buf
}

// Implement `fmt.Stringer` for debug purposes.
func (self ColAs) String() string { return bytesToMutableString(self.appendColExprs(nil)) }

/*
Table grouping: each inner column is qualified with `Table.` unless its name
already contains a `.`. Inner specs must be `Col` or `ColAs`; aliased inner
columns render `table.col AS alias`. Nesting another `TableCols` is invalid.
*/
type TableCols struct {
	Table string
	Cols  []ColSpec
}

func (self TableCols) appendColExprs(buf []byte) []byte {
	for ind, spec := range self.Cols {
		if ind > 0 {
			buf = append(buf, `, `...)
		}

		switch spec := spec.(type) {
		case Col:
			buf = self.appendQualified(buf, string(spec))
		case ColAs:
			buf = self.appendQualified(buf, spec.Col)
			if spec.As != `` {
				buf = append(buf, ` AS `...)
				buf = append(buf, spec.As...)
			}
		default:
			panic(ErrInvalidInput.while(`resolving table column group`).because(
				errf(`unexpected nested %T in table grouping %q`, spec, self.Table),
			))
		}
	}
	return buf
}

func (self TableCols) appendQualified(buf []byte, name string) []byte {
	if self.Table != `` && !strings.ContainsRune(name, '.') {
		buf = append(buf, self.Table...)
		buf = append(buf, '.')
	}
	return append(buf, name...)
}

// Implement `fmt.Stringer` for debug purposes.
func (self TableCols) String() string { return bytesToMutableString(self.appendColExprs(nil)) }

// Shortcut converting bare names to a `ColSpec` slice, handy for `TableCols`.
func Cols(names ...string) []ColSpec {
	out := make([]ColSpec, 0, len(names))
	for _, name := range names {
		out = append(out, Col(name))
	}
	return out
}

// Zero specs produce the `*` wildcard; this is the terminal policy for
// `Select`-like builders.
func appendColSpecs(buf []byte, specs []ColSpec) []byte {
	if len(specs) == 0 {
		return append(buf, `*`...)
	}
	for ind, spec := range specs {
		if ind > 0 {
			buf = append(buf, `, `...)
		}
		buf = spec.appendColExprs(buf)
	}
	return buf
}
