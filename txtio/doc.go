// Package txtio writes numeric data as column-formatted text.
//
// [Write] renders one or more equal-length numeric sequences as aligned
// columns, one row per line, framed by comment-prefixed header and
// footer lines. The output is readable by any whitespace- or
// delimiter-aware tabular parser that skips comment lines.
//
// # Columns
//
// Each [Column] wraps either a real or a complex sequence. A real
// column renders one scalar field per row; a complex column renders
// two, the real part followed by the imaginary part:
//
//	x := txtio.Real([]float64{1.0, 2.0})
//	y := txtio.Complex([]complex128{3 + 4i, 5 + 6i})
//	txtio.Write(os.Stdout, []txtio.Column{x, y},
//		txtio.Format("%.1f"), txtio.Delimiter(" "),
//		txtio.Header("time [s]"))
//
// writes
//
//	# time [s]
//	1.0 3.0 4.0
//	2.0 5.0 6.0
//
// # Formats
//
// The format may be a single printf token applied to every field
// (default "%.18e"), one token per field via [Formats], or a complete
// row template: a [Format] string containing more than one formatting
// directive is used verbatim and [Delimiter] is ignored, e.g.
// "iteration %.0f -- %10.5f". The assembled template must carry exactly
// one directive per scalar field; a mismatch fails with [ErrFormatCount]
// before any data row is written.
//
// # Headers and footers
//
// Header and footer lines are marked with the comment prefix (default
// "# "). A line that already starts with the prefix passes through
// unchanged. A line starting with at least as many spaces as the prefix
// is long has those spaces overwritten by the prefix, so pre-aligned
// headers keep their length: the header "   time [ns]" becomes
// "#  time [ns]", not "#    time [ns]". Any other line grows by the
// prefix.
//
// # Files
//
// [WriteFile] owns the destination file and closes it on every return
// path; a path ending in ".gz" is transparently gzip-compressed.
// [Write] never closes the writer it is given.
//
// Validation happens in emission order: the header cannot be rolled
// back once a later check fails, and a failed write leaves a partial
// file behind. Callers needing atomicity should write to a temporary
// path and rename.
package txtio
