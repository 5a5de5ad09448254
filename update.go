package sqrrl

import (
	"reflect"
)

/*
A non-fatal diagnostic surfaced alongside a built fragment. Callers choose
whether to treat diagnostics as errors.
*/
type Diag struct {
	Col string
	Msg string
}

// Implement `fmt.Stringer` for debug purposes.
func (self Diag) String() string { return self.Col + `: ` + self.Msg }

/*
Update statement builder:

	UPDATE [IGNORE] <tables> SET col=val[, col=val...] [WHERE ...]

SET rules:

	* every assign must be named, otherwise the build fails with an
	  `UnnamedArgument` error;
	* a repeated column name fails with a `DuplicateColumn` error;
	* values are quoted via `Literal`; `Raw` values are emitted verbatim,
	  which is how a SET clause references other columns or expressions
	  (`col1 = col2 * 1.25`);
	* a multi-valued (slice/array) value degrades gracefully: the first
	  element is taken and a `Diag` is returned, without failing the call.

Multiple target tables render comma-separated, each with its optional alias.
`.Where` conditions are ` AND `-joined and appended inline. Trailing
whitespace is trimmed from the final output.
*/
type Update struct {
	Ignore bool
	Tables []Table
	Set    []Assign
	Where  []string
}

/*
Builds the update fragment. Returns any non-fatal diagnostics alongside the
text; malformed SET arguments are returned as errors.
*/
func (self Update) Fragment() (_ string, _ []Diag, err error) {
	defer rec(&err)
	text, diags := self.build()
	return text, diags, nil
}

// Implement `fmt.Stringer`. Panics on malformed input and discards
// diagnostics; see `Fragment` for the full-fidelity variant.
func (self Update) String() string {
	text, _ := self.build()
	return text
}

func (self Update) build() (string, []Diag) {
	var buf []byte
	buf = append(buf, `UPDATE `...)
	if self.Ignore {
		buf = append(buf, `IGNORE `...)
	}

	for ind, table := range self.Tables {
		if ind > 0 {
			buf = append(buf, `, `...)
		}
		buf = table.appendTo(buf)
	}

	buf = append(buf, ` SET `...)
	buf, diags := appendSetClause(buf, self.Set)

	where := Where(len(self.Where) > 0, self.Where...)
	if where != `` {
		buf = append(buf, ' ')
		buf = append(buf, where...)
	}

	return bytesToMutableString(trimTrailingWhitespace(buf)), diags
}

func appendSetClause(buf []byte, assigns []Assign) ([]byte, []Diag) {
	var diags []Diag
	seen := make(map[string]bool, len(assigns))

	for ind, assign := range assigns {
		if assign.Col == `` {
			panic(ErrUnnamedArgument.while(`building set clause`).because(
				errf(`assignment at index %v has no column name`, ind),
			))
		}
		if seen[assign.Col] {
			panic(ErrDuplicateColumn.while(`building set clause`).because(
				errf(`column %q repeats`, assign.Col),
			))
		}
		seen[assign.Col] = true

		val, diag := normSetVal(assign.Col, assign.Val)
		if diag != nil {
			diags = append(diags, *diag)
		}

		if ind > 0 {
			buf = append(buf, `, `...)
		}
		buf = Assign{Col: assign.Col, Val: val}.appendSet(buf)
	}
	return buf, diags
}

/*
Multi-valued assigns are not supported in SET clauses; the first element is
taken and the caller is warned via `Diag`. `Raw` and strings are scalars,
not vectors.
*/
func normSetVal(col string, val interface{}) (interface{}, *Diag) {
	switch val.(type) {
	case nil, Raw, string, []byte:
		return val, nil
	}

	rval := reflect.ValueOf(val)
	if rval.Kind() != reflect.Slice && rval.Kind() != reflect.Array {
		return val, nil
	}

	if rval.Len() == 0 {
		return nil, &Diag{Col: col, Msg: `multi-valued assignment is empty, using NULL`}
	}
	return rval.Index(0).Interface(), &Diag{
		Col: col,
		Msg: `multi-valued assignment, using only the first element`,
	}
}
