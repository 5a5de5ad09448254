package sqrrl

import (
	"unsafe"
)

/*
Allocation-free conversion. Reinterprets a byte slice as a string. Borrowed
from the standard library. Reasonably safe here: every buffer converted this
way is newly built and never mutated afterwards.
*/
func bytesToMutableString(bytes []byte) string {
	return *(*string)(unsafe.Pointer(&bytes))
}

func isWhitespaceChar(char byte) bool {
	switch char {
	case ' ', '\n', '\r', '\t', '\v':
		return true
	default:
		return false
	}
}

/*
Appends a single space if the buffer is non-empty and doesn't already end with
whitespace. Fragments in this package compose with single-space separation.
*/
func appendSpaceIfNeeded(buf *[]byte) {
	text := *buf
	if len(text) > 0 && !isWhitespaceChar(text[len(text)-1]) {
		*buf = append(text, ` `...)
	}
}

func trimTrailingWhitespace(text []byte) []byte {
	for len(text) > 0 && isWhitespaceChar(text[len(text)-1]) {
		text = text[:len(text)-1]
	}
	return text
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must be deferred.
func rec(ptr *error) {
	val := recover()
	if val == nil {
		return
	}

	err, _ := val.(error)
	if err != nil {
		*ptr = err
		return
	}

	panic(val)
}

func countNonEmptyStrings(vals []string) (count int) {
	for _, val := range vals {
		if val != `` {
			count++
		}
	}
	return
}

/*
Joins non-empty fragments with the given delimiter. Empty fragments are
skipped so that degenerate builders (a false `Where`, a non-positive `Limit`)
compose silently.
*/
func appendJoined(buf []byte, delim string, vals []string) []byte {
	var found bool
	for _, val := range vals {
		if val == `` {
			continue
		}
		if found {
			buf = append(buf, delim...)
		}
		buf = append(buf, val...)
		found = true
	}
	return buf
}
