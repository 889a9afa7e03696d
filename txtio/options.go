package txtio

const (
	defaultFormat   = "%.18e"
	defaultComments = "# "
)

type options struct {
	format    string
	formats   []string
	delimiter string
	header    []string
	footer    []string
	comments  string
}

// Option configures a single write call.
type Option func(*options)

// Format sets the printf token applied to every scalar field, e.g.
// "%10.5f". A token containing more than one formatting directive is
// used verbatim as the template for an entire row, and the delimiter is
// ignored. Defaults to "%.18e".
func Format(f string) Option {
	return func(o *options) { o.format = f }
}

// Formats sets one format token per scalar field. The tokens are joined
// with the delimiter to form the row template. A complex column spans
// two fields, so it needs an explicit pair of tokens (real, then
// imaginary); tokens are not doubled automatically.
func Formats(fs ...string) Option {
	return func(o *options) { o.formats = fs }
}

// Delimiter sets the string inserted between field format tokens.
// Defaults to "".
func Delimiter(d string) Option {
	return func(o *options) { o.delimiter = d }
}

// Header sets the lines written before the data, each marked with the
// comment prefix. A single entry may itself contain newlines.
func Header(lines ...string) Option {
	return func(o *options) { o.header = lines }
}

// Footer sets the lines written after the data, marked like the header.
func Footer(lines ...string) Option {
	return func(o *options) { o.footer = lines }
}

// Comments sets the prefix that marks header and footer lines as
// non-data. Defaults to "# ".
func Comments(prefix string) Option {
	return func(o *options) { o.comments = prefix }
}

func newOptions(opts []Option) options {
	o := options{format: defaultFormat, comments: defaultComments}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
