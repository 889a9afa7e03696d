package txtio

// Column is one logical data column: a real-valued or complex-valued
// sequence. All columns passed to a single write must have the same
// length.
type Column struct {
	re []float64
	im []float64 // nil for real columns
}

// Real returns a Column over a real-valued sequence. It renders one
// scalar field per row.
func Real(v []float64) Column { return Column{re: v} }

// Complex returns a Column over a complex-valued sequence. It renders
// two scalar fields per row, the real part followed by the imaginary
// part.
func Complex(v []complex128) Column {
	re := make([]float64, len(v))
	im := make([]float64, len(v))
	for i, z := range v {
		re[i] = real(z)
		im[i] = imag(z)
	}
	return Column{re: re, im: im}
}

// Len returns the number of rows in the column.
func (c Column) Len() int { return len(c.re) }

// IsComplex reports whether the column renders two scalar fields per row.
func (c Column) IsComplex() bool { return c.im != nil }

// fields returns the number of scalar fields the column contributes to
// each row: 1 for real columns, 2 for complex ones.
func (c Column) fields() int {
	if c.im != nil {
		return 2
	}
	return 1
}

// appendRow appends the column's scalar values for row i to vals.
func (c Column) appendRow(vals []any, i int) []any {
	vals = append(vals, c.re[i])
	if c.im != nil {
		vals = append(vals, c.im[i])
	}
	return vals
}
