package sqrrl

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"testing"
)

type list = []interface{}

type testRow struct {
	Id   int64  `db:"id"`
	Name string `db:"name"`
}

type testRowUntagged struct {
	Id     int64  `db:"id"`
	Hidden string ``
	Junk   string `db:"-"`
}

func eq(t testing.TB, exp, act interface{}) {
	t.Helper()
	if !reflect.DeepEqual(exp, act) {
		t.Fatalf(`
expected (detailed):
	%#[1]v
actual (detailed):
	%#[2]v
expected (simple):
	%[1]v
actual (simple):
	%[2]v
`, exp, act)
	}
}

func catchAny(fun func()) (val interface{}) {
	defer func() { val = recover() }()
	fun()
	return
}

func panics(t testing.TB, msg string, fun func()) {
	t.Helper()
	val := catchAny(fun)

	if val == nil {
		t.Fatalf(`expected %v to panic, found no panic`, funcName(fun))
	}

	str := fmt.Sprint(val)
	if !strings.Contains(str, msg) {
		t.Fatalf(`
expected a panic message containing:
	%v
actual panic message:
	%v
`, msg, str)
	}
}

func funcName(val interface{}) string {
	return runtime.FuncForPC(reflect.ValueOf(val).Pointer()).Name()
}

func errIs(t testing.TB, exp, act error) {
	t.Helper()
	if !errors.Is(act, exp) {
		t.Fatalf(`
expected error matching:
	%v
actual error:
	%v
`, exp, act)
	}
}
