package sqrrl

/*
Insert statement builder:

	INSERT INTO <table> [(cols)] VALUES (row1), (row2), ...

`.Src` is a row source: a `Row` (single named row), `Rows` (tabular data), a
`Values` (bare positional vector, inserted in given order with no column
list), or a "db"-tagged struct / slice of structs.

When `.Cols` is empty, the column list is inferred from the source's own
field names. An explicit `.Cols` restricts and reorders which fields are
taken; a source with fewer fields than requested columns fails with a
`ColumnCountMismatch` error. Scalar values are quoted via `Literal`; `Raw`
values pass through. An empty source produces an empty fragment.
*/
type Insert struct {
	Table string
	Src   interface{}
	Cols  []string
}

// Implement `fmt.Stringer`. Panics on invalid input; see `Fragment` for the
// error-returning variant.
func (self Insert) String() string {
	return bytesToMutableString(self.appendTo(nil))
}

// Builds the insert fragment, converting panics to errors.
func (self Insert) Fragment() (_ string, err error) {
	defer rec(&err)
	return self.String(), nil
}

func (self Insert) appendTo(buf []byte) []byte {
	rows, positional := normRows(self.Src)
	if len(rows) == 0 {
		return buf
	}

	if positional {
		return self.appendPositional(buf, rows[0])
	}

	cols := self.Cols
	if len(cols) == 0 {
		cols = rows[0].names()
	}

	buf = append(buf, `INSERT INTO `...)
	buf = append(buf, self.Table...)
	buf = append(buf, ` (`...)
	buf = appendJoined(buf, `, `, cols)
	buf = append(buf, `) VALUES `...)

	for ind, row := range rows {
		if ind > 0 {
			buf = append(buf, `, `...)
		}
		buf = self.appendRow(buf, row, cols)
	}
	return buf
}

func (self Insert) appendRow(buf []byte, row Row, cols []string) []byte {
	buf = append(buf, '(')
	for ind, col := range cols {
		if ind > 0 {
			buf = append(buf, `, `...)
		}
		val, ok := row.get(col)
		if !ok {
			panic(ErrColumnCountMismatch.while(`building insert`).because(
				errf(`row has %v fields, missing requested column %q`, len(row), col),
			))
		}
		buf = appendLiteral(buf, val)
	}
	return append(buf, ')')
}

/*
A bare positional vector has no names to subset by; an explicit column list
takes the first values positionally and must not exceed the value count.
*/
func (self Insert) appendPositional(buf []byte, row Row) []byte {
	vals := row
	if len(self.Cols) > 0 {
		if len(row) < len(self.Cols) {
			panic(ErrColumnCountMismatch.while(`building insert`).because(
				errf(`%v values for %v requested columns`, len(row), len(self.Cols)),
			))
		}
		vals = row[:len(self.Cols)]
	}

	buf = append(buf, `INSERT INTO `...)
	buf = append(buf, self.Table...)

	if len(self.Cols) > 0 {
		buf = append(buf, ` (`...)
		buf = appendJoined(buf, `, `, self.Cols)
		buf = append(buf, ')')
	}

	buf = append(buf, ` VALUES (`...)
	for ind, assign := range vals {
		if ind > 0 {
			buf = append(buf, `, `...)
		}
		buf = appendLiteral(buf, assign.Val)
	}
	return append(buf, ')')
}

// Shortcut for `Insert{...}.String()`.
func InsertIntoValues(table string, src interface{}, cols ...string) string {
	return Insert{Table: table, Src: src, Cols: cols}.String()
}
