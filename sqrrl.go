package sqrrl

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

/*
Verbatim SQL text. Wherever builders quote values as SQL literals, a `Raw`
value is emitted unchanged. This is the mechanism for referencing other
columns, calling functions, or embedding subqueries:

	sqrrl.Eq(sqrrl.Assign{Col: `updated_at`, Val: sqrrl.Raw(`NOW()`)})
	// `updated_at = NOW()`
*/
type Raw string

// Implement `fmt.Stringer` for debug purposes.
func (self Raw) String() string { return string(self) }

/*
An SQL identifier such as a column name. Encoded double-quoted, unless the
name contains a `.`, which marks it as pre-qualified; pre-qualified names
pass through untouched everywhere in this package. Panics if the name
contains a double quote.
*/
type Ident string

// Implement `fmt.Stringer` for debug purposes.
func (self Ident) String() string { return bytesToMutableString(self.AppendTo(nil)) }

func (self Ident) AppendTo(buf []byte) []byte {
	val := string(self)
	if strings.ContainsRune(val, '"') {
		panic(ErrInvalidInput.while(`encoding identifier`).because(
			errf(`unexpected '"' in SQL identifier %q`, val),
		))
	}
	if strings.ContainsRune(val, '.') {
		return append(buf, val...)
	}
	buf = append(buf, '"')
	buf = append(buf, val...)
	buf = append(buf, '"')
	return buf
}

const sqlTimeLayout = `2006-01-02 15:04:05`

/*
Returns the SQL literal representation of an arbitrary scalar value:

	* `Raw`            -> verbatim text
	* nil              -> `NULL`
	* strings          -> single-quoted, internal quotes doubled
	* bools            -> `TRUE` / `FALSE`
	* ints, floats     -> plain decimal
	* `time.Time`      -> quoted `2006-01-02 15:04:05`
	* `fmt.Stringer`   -> quoted string representation

Panics for other types. Used by every builder that renders values.
*/
func Literal(val interface{}) string {
	return bytesToMutableString(appendLiteral(nil, val))
}

func appendLiteral(buf []byte, val interface{}) []byte {
	if val == nil {
		return append(buf, `NULL`...)
	}

	switch val := val.(type) {
	case Raw:
		return append(buf, val...)
	case string:
		return appendQuoted(buf, val)
	case []byte:
		return appendQuoted(buf, string(val))
	case time.Time:
		return appendQuoted(buf, val.Format(sqlTimeLayout))
	}

	rval := reflect.ValueOf(val)
	for rval.Kind() == reflect.Ptr {
		if rval.IsNil() {
			return append(buf, `NULL`...)
		}
		rval = rval.Elem()
	}

	switch rval.Kind() {
	case reflect.Bool:
		if rval.Bool() {
			return append(buf, `TRUE`...)
		}
		return append(buf, `FALSE`...)

	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		return strconv.AppendInt(buf, rval.Int(), 10)

	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		return strconv.AppendUint(buf, rval.Uint(), 10)

	case reflect.Float32, reflect.Float64:
		return strconv.AppendFloat(buf, rval.Float(), 'f', -1, 64)

	case reflect.String:
		return appendQuoted(buf, rval.String())
	}

	stringer, _ := val.(fmt.Stringer)
	if stringer != nil {
		return appendQuoted(buf, stringer.String())
	}

	panic(ErrInvalidInput.while(`encoding SQL literal`).because(
		errf(`unsupported type %T`, val),
	))
}

// Single-quotes a string, doubling internal single quotes.
func appendQuoted(buf []byte, val string) []byte {
	buf = append(buf, '\'')
	for i := 0; i < len(val); i++ {
		if val[i] == '\'' {
			buf = append(buf, '\'')
		}
		buf = append(buf, val[i])
	}
	return append(buf, '\'')
}

/*
Concatenates fragments with single-space separation, skipping empties. This
is the canonical way to assemble a full statement from clause fragments:

	sqrrl.ConcatFragments(
		sqrrl.Select(),
		sqrrl.From(sqrrl.Table{Name: `users`}),
		sqrrl.Where(false),
		sqrrl.Limit(10),
	)
	// `SELECT * FROM users LIMIT 10`
*/
func ConcatFragments(frags ...string) string {
	return bytesToMutableString(appendJoined(nil, ` `, frags))
}
