package sqrrl

import "testing"

func Test_Update(t *testing.T) {
	t.Run(`basic`, func(t *testing.T) {
		eq(t,
			`UPDATE t1 SET col1='a', col2=42`,
			Update{
				Tables: Tables(`t1`),
				Set: []Assign{
					{Col: `col1`, Val: `a`},
					{Col: `col2`, Val: 42},
				},
			}.String(),
		)
	})

	t.Run(`ignore`, func(t *testing.T) {
		eq(t,
			`UPDATE IGNORE t SET a=1`,
			Update{
				Ignore: true,
				Tables: Tables(`t`),
				Set:    []Assign{{Col: `a`, Val: 1}},
			}.String(),
		)
	})

	t.Run(`multiple_tables_with_aliases`, func(t *testing.T) {
		eq(t,
			`UPDATE t1 a, t2 SET a.x=1`,
			Update{
				Tables: []Table{{Name: `t1`, As: `a`}, {Name: `t2`}},
				Set:    []Assign{{Col: `a.x`, Val: 1}},
			}.String(),
		)
	})

	t.Run(`raw_expression_value`, func(t *testing.T) {
		eq(t,
			`UPDATE prices SET amount=amount * 1.25`,
			Update{
				Tables: Tables(`prices`),
				Set:    []Assign{{Col: `amount`, Val: Raw(`amount * 1.25`)}},
			}.String(),
		)
	})

	t.Run(`inline_where`, func(t *testing.T) {
		eq(t,
			`UPDATE t SET a=1 WHERE id = 5 AND ok = TRUE`,
			Update{
				Tables: Tables(`t`),
				Set:    []Assign{{Col: `a`, Val: 1}},
				Where: []string{
					Eq(Assign{Col: `id`, Val: 5}),
					Eq(Assign{Col: `ok`, Val: true}),
				},
			}.String(),
		)
	})

	t.Run(`unnamed_argument`, func(t *testing.T) {
		update := Update{
			Tables: Tables(`t`),
			Set:    []Assign{{Val: 1}},
		}

		panics(t, `UnnamedArgument`, func() { _ = update.String() })

		_, _, err := update.Fragment()
		errIs(t, ErrUnnamedArgument, err)
	})

	t.Run(`duplicate_column`, func(t *testing.T) {
		_, _, err := Update{
			Tables: Tables(`t`),
			Set: []Assign{
				{Col: `a`, Val: 1},
				{Col: `a`, Val: 2},
			},
		}.Fragment()
		errIs(t, ErrDuplicateColumn, err)
	})

	t.Run(`multi_valued_degrades_with_diag`, func(t *testing.T) {
		text, diags, err := Update{
			Tables: Tables(`t`),
			Set:    []Assign{{Col: `a`, Val: []int{1, 2}}},
		}.Fragment()

		eq(t, nil, err)
		eq(t, `UPDATE t SET a=1`, text)
		eq(t, 1, len(diags))
		eq(t, `a`, diags[0].Col)
	})

	t.Run(`empty_multi_valued_uses_null`, func(t *testing.T) {
		text, diags, err := Update{
			Tables: Tables(`t`),
			Set:    []Assign{{Col: `a`, Val: []int{}}},
		}.Fragment()

		eq(t, nil, err)
		eq(t, `UPDATE t SET a=NULL`, text)
		eq(t, 1, len(diags))
	})

	t.Run(`no_trailing_whitespace`, func(t *testing.T) {
		text := Update{
			Tables: Tables(`t1`),
			Set:    []Assign{{Col: `col1`, Val: `a`}},
		}.String()
		eq(t, `UPDATE t1 SET col1='a'`, text)
	})
}
