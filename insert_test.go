package sqrrl

import "testing"

func Test_InsertIntoValues(t *testing.T) {
	t.Run(`named_row`, func(t *testing.T) {
		eq(t,
			`INSERT INTO t (a, b) VALUES (1, 2)`,
			InsertIntoValues(`t`, Row{
				{Col: `a`, Val: 1},
				{Col: `b`, Val: 2},
			}),
		)
	})

	t.Run(`tabular_rows`, func(t *testing.T) {
		eq(t,
			`INSERT INTO t (a, b) VALUES (1, 'x'), (2, 'y')`,
			InsertIntoValues(`t`, Rows{
				{{Col: `a`, Val: 1}, {Col: `b`, Val: `x`}},
				{{Col: `a`, Val: 2}, {Col: `b`, Val: `y`}},
			}),
		)
	})

	t.Run(`positional_values`, func(t *testing.T) {
		eq(t,
			`INSERT INTO t VALUES (1, 'x')`,
			InsertIntoValues(`t`, Values{1, `x`}),
		)
	})

	t.Run(`positional_with_columns`, func(t *testing.T) {
		eq(t,
			`INSERT INTO t (a, b) VALUES (1, 'x')`,
			InsertIntoValues(`t`, Values{1, `x`}, `a`, `b`),
		)
	})

	t.Run(`column_subset_reorders`, func(t *testing.T) {
		eq(t,
			`INSERT INTO t (c, a) VALUES (3, 1)`,
			InsertIntoValues(`t`, Row{
				{Col: `a`, Val: 1},
				{Col: `b`, Val: 2},
				{Col: `c`, Val: 3},
			}, `c`, `a`),
		)
	})

	t.Run(`column_count_mismatch`, func(t *testing.T) {
		insert := Insert{
			Table: `t`,
			Src:   Row{{Col: `a`, Val: 1}},
			Cols:  []string{`a`, `b`},
		}

		panics(t, `ColumnCountMismatch`, func() { _ = insert.String() })

		_, err := insert.Fragment()
		errIs(t, ErrColumnCountMismatch, err)
	})

	t.Run(`positional_count_mismatch`, func(t *testing.T) {
		_, err := Insert{
			Table: `t`,
			Src:   Values{1},
			Cols:  []string{`a`, `b`},
		}.Fragment()
		errIs(t, ErrColumnCountMismatch, err)
	})

	t.Run(`empty_source`, func(t *testing.T) {
		eq(t, ``, InsertIntoValues(`t`, nil))
		eq(t, ``, InsertIntoValues(`t`, Row{}))
		eq(t, ``, InsertIntoValues(`t`, Rows{}))
		eq(t, ``, InsertIntoValues(`t`, Values{}))
	})

	t.Run(`raw_value`, func(t *testing.T) {
		eq(t,
			`INSERT INTO t (a, at) VALUES (1, NOW())`,
			InsertIntoValues(`t`, Row{
				{Col: `a`, Val: 1},
				{Col: `at`, Val: Raw(`NOW()`)},
			}),
		)
	})
}

func Test_InsertIntoValues_structs(t *testing.T) {
	t.Run(`single_struct`, func(t *testing.T) {
		eq(t,
			`INSERT INTO t (id, name) VALUES (1, 'Mira')`,
			InsertIntoValues(`t`, testRow{Id: 1, Name: `Mira`}),
		)
	})

	t.Run(`struct_slice`, func(t *testing.T) {
		eq(t,
			`INSERT INTO t (id, name) VALUES (1, 'Mira'), (2, 'Kara')`,
			InsertIntoValues(`t`, []testRow{
				{Id: 1, Name: `Mira`},
				{Id: 2, Name: `Kara`},
			}),
		)
	})

	t.Run(`untagged_fields_skipped`, func(t *testing.T) {
		eq(t,
			`INSERT INTO t (id) VALUES (1)`,
			InsertIntoValues(`t`, testRowUntagged{Id: 1, Hidden: `x`, Junk: `y`}),
		)
	})

	t.Run(`struct_subset`, func(t *testing.T) {
		eq(t,
			`INSERT INTO t (name) VALUES ('Mira')`,
			InsertIntoValues(`t`, testRow{Id: 1, Name: `Mira`}, `name`),
		)
	})
}

func Test_StructRow(t *testing.T) {
	eq(t,
		Row{{Col: `id`, Val: int64(1)}, {Col: `name`, Val: `Mira`}},
		StructRow(testRow{Id: 1, Name: `Mira`}),
	)
	eq(t, Row(nil), StructRow(nil))

	panics(t, `InvalidInput`, func() { StructRow(`not a struct`) })
}
