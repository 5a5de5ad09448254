package sqrrl

import (
	"github.com/mitranim/sqlp"
)

/*
If true (default), unused arguments cause panics in `Query.Append` and
`Query.AppendNamed`. Turning this off can be convenient in development, when
changing fragments rapidly.
*/
var CheckUnused = true

/*
Interface that allows compatibility between different query variants.
Sub-query interpolation in `Query.Append` and `Query.AppendNamed` detects
instances of this interface rather than the concrete `Query` type, so
external code can wrap `Query` or provide its own variants.
*/
type SubQuery interface{ QueryAppend(*Query) }

/*
Accumulator for parametrized fragments. While the clause builders in this
package render values inline as literal text, `Query` is the composition
vehicle for code that keeps values out of the SQL text: appended fragments
use ordinal parameters such as `$1`, which are renumbered against the
combined argument list, so each fragment always counts from `$1`:

	var query Query
	query.Append(sqrrl.Select() + ` ` + sqrrl.From(sqrrl.Table{Name: `t`}))
	query.Append(`WHERE one = $1`, 10)
	query.Append(`AND two = $1`, 20) // Note the $1.

	query.String() // `SELECT * FROM t WHERE one = $1 AND two = $2`
	query.Args     // []interface{}{10, 20}

Composable: arguments implementing `SubQuery` are interpolated in place of
their parameter, combining argument lists and renumbering as appropriate.
Fragments are separated by a single space when appended.
*/
type Query struct {
	Text []byte
	Args []interface{}
}

// Implement `fmt.Stringer`.
func (self Query) String() string {
	return bytesToMutableString(self.Text)
}

/*
Implement `SubQuery`, allowing this query to be interpolated into another
via an argument.
*/
func (self Query) QueryAppend(out *Query) {
	out.Append(bytesToMutableString(self.Text), self.Args...)
}

/*
Appends a fragment and its arguments. Ordinal parameters in the fragment
always count from `$1` and are renumbered by the previous argument count.
Arguments implementing `SubQuery` are interpolated in place of their
parameter.

Panics when: the fragment has named parameters; a parameter has no
corresponding argument; an argument has no corresponding parameter (unless
`CheckUnused` is disabled).
*/
func (self *Query) Append(src string, args ...interface{}) {
	tokenizer := sqlp.Tokenizer{Source: src}
	startOffset := len(self.Args)
	appendNonQueryArgs(&self.Args, args)
	used := make([]bool, len(args))

	appendSpaceIfNeeded(&self.Text)

	for {
		node := tokenizer.Next()
		if node == nil {
			break
		}

		switch node := node.(type) {
		case sqlp.NodeOrdinalParam:
			index := node.Index()
			if index >= len(args) {
				panic(ErrOrdinalOutOfBounds.while(`appending to query`).because(
					errf(`ordinal parameter %v exceeds argument count %v`, node, len(args)),
				))
			}
			used[index] = true

			sub, ok := args[index].(SubQuery)
			if ok {
				sub.QueryAppend(self)
			} else {
				ord := sqlp.NodeOrdinalParam(int(node) + startOffset - subQueryArgsBefore(args, index))
				ord.Append(&self.Text)
			}

		case sqlp.NodeNamedParam:
			panic(ErrUnexpectedParameter.while(`appending to query`).because(
				errf(`expected only ordinal params, got named param %q`, node),
			))

		default:
			node.Append(&self.Text)
		}
	}

	if CheckUnused {
		for ind, arg := range args {
			if !used[ind] {
				panic(ErrUnusedArgument.while(`appending to query`).because(
					errf(`unused argument %#v at index %v`, arg, ind),
				))
			}
		}
	}
}

/*
Appends a fragment with named parameters of the form ":identifier". The keys
in the argument map must have the form "identifier", without a leading ":".
Named parameters are converted to ordinal parameters of the form `$N`, the
same ones used by `Append`.

Panics when: the fragment has ordinal parameters; a parameter has no
corresponding argument; an argument has no corresponding parameter (unless
`CheckUnused` is disabled).
*/
func (self *Query) AppendNamed(src string, args map[string]interface{}) {
	tokenizer := sqlp.Tokenizer{Source: src}
	namedToOrd := make(map[sqlp.NodeNamedParam]sqlp.NodeOrdinalParam, len(args))
	appendSpaceIfNeeded(&self.Text)

	for {
		node := tokenizer.Next()
		if node == nil {
			break
		}

		switch node := node.(type) {
		case sqlp.NodeOrdinalParam:
			panic(ErrUnexpectedParameter.while(`appending to query`).because(
				errf(`expected only named params, got ordinal param %q`, node),
			))

		case sqlp.NodeNamedParam:
			arg, found := args[string(node)]
			if !found {
				panic(ErrMissingArgument.while(`appending to query`).because(
					errf(`missing named argument %q`, node),
				))
			}

			sub, ok := arg.(SubQuery)
			if ok {
				// Value doesn't matter, only the key's presence; this allows
				// detection of unused arguments.
				namedToOrd[node] = 0
				sub.QueryAppend(self)
				continue
			}

			ord, ok := namedToOrd[node]
			if !ok {
				self.Args = append(self.Args, arg)
				ord = sqlp.NodeOrdinalParam(len(self.Args))
				namedToOrd[node] = ord
			}
			ord.Append(&self.Text)

		default:
			node.Append(&self.Text)
		}
	}

	if CheckUnused {
		for key := range args {
			_, ok := namedToOrd[sqlp.NodeNamedParam(key)]
			if !ok {
				panic(ErrUnusedArgument.while(`appending to query`).because(
					errf(`unused named argument %q`, key),
				))
			}
		}
	}
}

/*
Convenience method, inverse of `SubQuery.QueryAppend`. Appends the other
query to this one, combining the arguments and renumbering the ordinal
parameters as appropriate.
*/
func (self *Query) AppendQuery(query SubQuery) {
	if query != nil {
		query.QueryAppend(self)
	}
}

/*
"Zeroes" the query, keeping any already-allocated capacity for subsequent
query building.
*/
func (self *Query) Clear() {
	self.Text = self.Text[:0]
	self.Args = self.Args[:0]
}

func appendNonQueryArgs(out *[]interface{}, args []interface{}) {
	for _, arg := range args {
		if !isSubQuery(arg) {
			*out = append(*out, arg)
		}
	}
}

// Counts sub-query arguments among `args[:index]`. Sub-queries contribute
// their own arguments and don't occupy an ordinal position of their own.
func subQueryArgsBefore(args []interface{}, index int) (count int) {
	for _, arg := range args[:index] {
		if isSubQuery(arg) {
			count++
		}
	}
	return
}

func isSubQuery(val interface{}) bool {
	_, ok := val.(SubQuery)
	return ok
}
