package txtio

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrLengthMismatch = errors.New("columns differ in length")
	ErrFormatCount    = errors.New("format has wrong number of directives")
	ErrBadVerb        = errors.New("format does not match values")
)

// Write renders cols as column-formatted text on w. The header is
// emitted first, then one line per row with the scalar fields of all
// columns substituted into the row template in column order, then the
// footer. The caller retains ownership of w; Write never closes it.
//
// A template whose directive count differs from the total field count
// fails with [ErrFormatCount], and columns of differing length fail
// with [ErrLengthMismatch]. Both checks run after the header has been
// emitted and before any data row is written.
func Write(w io.Writer, cols []Column, opts ...Option) error {
	o := newOptions(opts)

	if err := writeCommented(w, o.header, o.comments); err != nil {
		return err
	}

	rowFmt := rowFormat(cols, o)
	want := 0
	for _, c := range cols {
		want += c.fields()
	}
	if got := countVerbs(rowFmt); got != want {
		return fmt.Errorf("%w: %d in %q, need %d", ErrFormatCount, got, rowFmt, want)
	}

	rows := 0
	for i, c := range cols {
		if i == 0 {
			rows = c.Len()
			continue
		}
		if c.Len() != rows {
			return fmt.Errorf("%w: column %d has %d rows, want %d", ErrLengthMismatch, i, c.Len(), rows)
		}
	}

	vals := make([]any, 0, want)
	for i := range rows {
		vals = vals[:0]
		for _, c := range cols {
			vals = c.appendRow(vals, i)
		}
		line := fmt.Sprintf(rowFmt, vals...)
		// fmt reports substitution failures inline with "%!" markers.
		if strings.Contains(line, "%!") {
			return fmt.Errorf("%w: %q", ErrBadVerb, line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return writeCommented(w, o.footer, o.comments)
}

// WriteFile writes cols to the file at path, creating or truncating it.
// A path ending in ".gz" is transparently gzip-compressed. The file is
// closed on every return path, including validation failures, so a
// failed call may leave a partial file behind but never an open handle.
func WriteFile(path string, cols []Column, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	var w io.Writer = f
	var zw *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		zw = gzip.NewWriter(f)
		w = zw
	}
	werr := Write(w, cols, opts...)
	if zw != nil {
		if err := zw.Close(); err != nil && werr == nil {
			werr = err
		}
	}
	if err := f.Close(); err != nil && werr == nil {
		werr = err
	}
	return werr
}

// Marshal renders cols and returns the bytes.
func Marshal(cols []Column, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, cols, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// rowFormat assembles the template one row is rendered with. An
// explicit token list is joined with the delimiter; a single token with
// more than one directive is a complete literal template; otherwise the
// token is repeated once per scalar field with the delimiter between
// fields.
func rowFormat(cols []Column, o options) string {
	if len(o.formats) > 0 {
		return strings.Join(o.formats, o.delimiter)
	}
	if countVerbs(o.format) > 1 {
		return o.format
	}
	var b strings.Builder
	for _, c := range cols {
		for range c.fields() {
			b.WriteString(o.format)
			b.WriteString(o.delimiter)
		}
	}
	return strings.TrimSuffix(b.String(), o.delimiter)
}

// countVerbs counts formatting directives in f. "%%" is a literal
// percent sign, not a directive.
func countVerbs(f string) int {
	n := 0
	for i := 0; i < len(f); i++ {
		if f[i] != '%' {
			continue
		}
		if i+1 < len(f) && f[i+1] == '%' {
			i++
			continue
		}
		n++
	}
	return n
}
