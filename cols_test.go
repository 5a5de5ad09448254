package sqrrl

import "testing"

func Test_Select(t *testing.T) {
	t.Run(`empty`, func(t *testing.T) {
		eq(t, `SELECT *`, Select())
	})

	t.Run(`bare_columns`, func(t *testing.T) {
		eq(t, `SELECT a`, Select(Col(`a`)))
		eq(t, `SELECT a, b`, Select(Col(`a`), Col(`b`)))
	})

	t.Run(`aliased_column`, func(t *testing.T) {
		eq(t, `SELECT n AS name`, Select(ColAs{Col: `n`, As: `name`}))
		eq(t, `SELECT n`, Select(ColAs{Col: `n`}))
	})

	t.Run(`table_grouping`, func(t *testing.T) {
		eq(t,
			`SELECT t.a, t.b`,
			Select(TableCols{Table: `t`, Cols: Cols(`a`, `b`)}),
		)
		eq(t,
			`SELECT t.a AS first, t.b`,
			Select(TableCols{Table: `t`, Cols: []ColSpec{
				ColAs{Col: `a`, As: `first`},
				Col(`b`),
			}}),
		)
	})

	t.Run(`prequalified_passthrough`, func(t *testing.T) {
		eq(t,
			`SELECT t.a, u.x`,
			Select(TableCols{Table: `t`, Cols: Cols(`a`, `u.x`)}),
		)
		eq(t, `SELECT u.x`, Select(Col(`u.x`)))
	})

	t.Run(`order_preserved`, func(t *testing.T) {
		eq(t,
			`SELECT x, t.a, t.b, y AS why`,
			Select(
				Col(`x`),
				TableCols{Table: `t`, Cols: Cols(`a`, `b`)},
				ColAs{Col: `y`, As: `why`},
			),
		)
	})

	t.Run(`nested_grouping_invalid`, func(t *testing.T) {
		panics(t, `InvalidInput`, func() {
			Select(TableCols{Table: `t`, Cols: []ColSpec{
				TableCols{Table: `u`, Cols: Cols(`a`)},
			}})
		})
	})
}

func Test_SelectDistinct(t *testing.T) {
	eq(t, `SELECT DISTINCT *`, SelectDistinct())
	eq(t, `SELECT DISTINCT a, b`, SelectDistinct(Col(`a`), Col(`b`)))
}
