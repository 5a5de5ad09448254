package sqrrl

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"
)

/*
Name of, or path to, the external pretty-printer executable used by `Format`.
The default is the `sqlformat` CLI from the Python "sqlparse" distribution.
*/
var FormatCmd = `sqlformat`

// Cosmetic options for `Format`, passed to the external tool.
type FormatOpts struct {
	// `upper`, `lower`, or `capitalize`.
	KeywordCase string
	// `upper` or `lower`.
	IdentCase string
	// Reindent the statement.
	Reindent bool
	// Indent width when reindenting; the tool's default when zero.
	IndentWidth int
	// Strip comments.
	StripComments bool
}

func (self FormatOpts) args() []string {
	var out []string
	if self.KeywordCase != `` {
		out = append(out, `--keywords`, self.KeywordCase)
	}
	if self.IdentCase != `` {
		out = append(out, `--identifiers`, self.IdentCase)
	}
	if self.Reindent {
		out = append(out, `--reindent`)
	}
	if self.IndentWidth > 0 {
		out = append(out, `--indent_width`, strconv.Itoa(self.IndentWidth))
	}
	if self.StripComments {
		out = append(out, `--strip-comments`)
	}
	return out
}

/*
Reformats SQL text by piping it through the external pretty-printer. Purely
cosmetic; the input is not parsed or validated by this package. Requires the
tool (see `FormatCmd`) on PATH; a missing or failing tool is reported as an
`ErrExternal` error, never a panic.
*/
func Format(ctx context.Context, src string, opts FormatOpts) (string, error) {
	args := append(opts.args(), `-`)
	cmd := exec.CommandContext(ctx, FormatCmd, args...)
	cmd.Stdin = strings.NewReader(src)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == `` {
			detail = err.Error()
		}
		return ``, ErrExternal.while(`reformatting SQL`).because(
			errf(`%v: %v`, FormatCmd, detail),
		)
	}

	return strings.TrimRight(stdout.String(), "\r\n"), nil
}
