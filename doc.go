/*
Package sqrrl is a small toolkit for composing SQL text from named building
blocks. Each builder (`Select`, `From`, `Where`, `Join`, `InsertIntoValues`,
`Update`, the comparison and logical operators) takes structured arguments
and returns a string fragment. Fragments compose by plain string
concatenation, so the assembled Go code visually mirrors the final SQL
statement:

	sqrrl.Select(sqrrl.Col(`id`), sqrrl.Col(`name`)) + ` ` +
		sqrrl.From(sqrrl.Table{Name: `users`}) + ` ` +
		sqrrl.Where(true, sqrrl.Eq(sqrrl.Assign{Col: `id`, Val: 9}))

	// `SELECT id, name FROM users WHERE id = 9`

This package does NOT parse, validate, or execute SQL, does not connect to a
database, and has no schema knowledge. Values are rendered as literal SQL
text with single-quote escaping; this is NOT a substitute for parametrized
queries when handling untrusted input. For parametrized composition, see
`Query`, which renumbers `$N` and `:named` parameters when appending
fragments.

Verbatim SQL, such as column references, function calls, and subqueries, is
expressed with the `Raw` type, which bypasses literal quoting:

	sqrrl.Update{
		Tables: sqrrl.Tables(`prices`),
		Set:    []sqrrl.Assign{{Col: `amount`, Val: sqrrl.Raw(`amount * 1.25`)}},
	}

Builders with failure modes (join condition matching, insert column subsets,
SET clause construction) panic with an `Err` carrying an `ErrCode`; each such
type also provides a `Fragment` method that recovers panics into returned
errors.
*/
package sqrrl
