package txtio

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writeCommented writes a header or footer block, one physical line per
// logical line, marking each with the comment prefix. A line already
// carrying the prefix passes through unchanged. A line starting with at
// least len(prefix) spaces has those spaces overwritten by the prefix,
// preserving the line length. Any other line grows by the prefix. An
// empty block writes nothing.
func writeCommented(w io.Writer, block []string, prefix string) error {
	if len(block) == 0 {
		return nil
	}
	text := strings.Join(block, "\n")
	if text == "" {
		return nil
	}
	pad := strings.Repeat(" ", len(prefix))
	for line := range strings.SplitSeq(text, "\n") {
		if !strings.HasPrefix(line, prefix) {
			if strings.HasPrefix(line, pad) {
				line = prefix + line[len(prefix):]
			} else {
				line = prefix + line
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// AlignHeader builds a header line for fixed-width numeric columns.
// Each label is padded on the left to width display cells, matching
// fields rendered with a same-width format such as "%15.8e", and the
// padded labels are joined with the delimiter. Widths are measured in
// display cells so wide characters stay aligned.
func AlignHeader(labels []string, width int, delimiter string) string {
	padded := make([]string, len(labels))
	for i, l := range labels {
		padded[i] = runewidth.FillLeft(l, width)
	}
	return strings.Join(padded, delimiter)
}
