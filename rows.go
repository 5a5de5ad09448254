package sqrrl

import (
	"reflect"

	"github.com/mitranim/refut"
)

/*
An ordered named row: the value source for single-row inserts and the SET
clause. Order is significant; it determines the rendered column order.
*/
type Row []Assign

func (self Row) names() []string {
	out := make([]string, 0, len(self))
	for _, assign := range self {
		out = append(out, assign.Col)
	}
	return out
}

func (self Row) get(col string) (interface{}, bool) {
	for _, assign := range self {
		if assign.Col == col {
			return assign.Val, true
		}
	}
	return nil, false
}

// Tabular data: an ordered sequence of named rows, for multi-row inserts.
type Rows []Row

// A bare positional row: literal values in given order, with no column names.
type Values []interface{}

/*
Converts a struct with "db"-tagged fields into a `Row`, preserving field
order. Fields without a "db" name are skipped. Pointers are dereferenced; a
nil input produces a nil row.
*/
func StructRow(input interface{}) Row {
	if input == nil {
		return nil
	}

	rval := reflect.ValueOf(input)
	rtype := refut.RtypeDeref(rval.Type())

	if rtype.Kind() != reflect.Struct {
		panic(ErrInvalidInput.while(`converting struct to row`).because(
			errf(`expected struct, got %q`, rtype),
		))
	}
	if refut.IsRvalNil(rval) {
		return nil
	}

	var out Row
	err := refut.TraverseStructRval(rval, func(rval reflect.Value, sfield reflect.StructField, _ []int) error {
		colName := refut.TagIdent(sfield.Tag.Get(`db`))
		if colName == `` {
			return nil
		}
		out = append(out, Assign{Col: colName, Val: rval.Interface()})
		return nil
	})
	must(err)
	return out
}

// Converts a slice of "db"-tagged structs into `Rows` via `StructRow`.
func StructRows(input interface{}) Rows {
	if input == nil {
		return nil
	}

	rval := reflect.ValueOf(input)
	for rval.Kind() == reflect.Ptr {
		if rval.IsNil() {
			return nil
		}
		rval = rval.Elem()
	}

	if rval.Kind() != reflect.Slice {
		panic(ErrInvalidInput.while(`converting structs to rows`).because(
			errf(`expected slice of structs, got %q`, rval.Type()),
		))
	}

	out := make(Rows, 0, rval.Len())
	for ind := 0; ind < rval.Len(); ind++ {
		out = append(out, StructRow(rval.Index(ind).Interface()))
	}
	return out
}

/*
Normalizes an arbitrary row source into `Rows` plus a flag for positional
(column-less) sources. Accepted inputs: nil, `Row`, `Rows`, `[]Row`,
`Values`, `[]interface{}`, a "db"-tagged struct, or a slice of such structs.
*/
func normRows(src interface{}) (Rows, bool) {
	switch src := src.(type) {
	case nil:
		return nil, false
	case Row:
		if len(src) == 0 {
			return nil, false
		}
		return Rows{src}, false
	case Rows:
		return src, false
	case []Row:
		return Rows(src), false
	case Values:
		return positionalRows(src), true
	case []interface{}:
		return positionalRows(src), true
	default:
		return reflectRows(src)
	}
}

func positionalRows(vals []interface{}) Rows {
	if len(vals) == 0 {
		return nil
	}
	row := make(Row, 0, len(vals))
	for _, val := range vals {
		row = append(row, Assign{Val: val})
	}
	return Rows{row}
}

func reflectRows(src interface{}) (Rows, bool) {
	rval := reflect.ValueOf(src)
	for rval.Kind() == reflect.Ptr {
		if rval.IsNil() {
			return nil, false
		}
		rval = rval.Elem()
	}

	switch rval.Kind() {
	case reflect.Struct:
		row := StructRow(rval.Interface())
		if len(row) == 0 {
			return nil, false
		}
		return Rows{row}, false
	case reflect.Slice:
		return StructRows(rval.Interface()), false
	}

	panic(ErrInvalidInput.while(`normalizing row source`).because(
		errf(`unsupported row source type %T`, src),
	))
}
