package city

// EntropyField holds a volatility value in [0, 1] for every grid cell.
type EntropyField struct {
	rows, cols int
	data       []float64
}

// NewEntropyField allocates a field filled with DefaultEntropy.
func NewEntropyField(rows, cols int) *EntropyField {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	f := &EntropyField{rows: rows, cols: cols, data: make([]float64, rows*cols)}
	f.Fill(DefaultEntropy)
	return f
}

// Rows returns the number of rows.
func (f *EntropyField) Rows() int { return f.rows }

// Cols returns the number of columns.
func (f *EntropyField) Cols() int { return f.cols }

// InBounds reports whether (row, col) addresses a cell of the field.
func (f *EntropyField) InBounds(row, col int) bool {
	return row >= 0 && row < f.rows && col >= 0 && col < f.cols
}

// At returns the entropy at (row, col), or 0 when out of bounds.
func (f *EntropyField) At(row, col int) float64 {
	if !f.InBounds(row, col) {
		return 0
	}
	return f.data[row*f.cols+col]
}

// Set stores v clamped to [0, 1]. Out-of-bounds coordinates are ignored.
func (f *EntropyField) Set(row, col int, v float64) {
	if !f.InBounds(row, col) {
		return
	}
	f.data[row*f.cols+col] = clamp01(v)
}

// Add increments the value at (row, col) by delta and clamps the result.
func (f *EntropyField) Add(row, col int, delta float64) {
	if !f.InBounds(row, col) {
		return
	}
	i := row*f.cols + col
	f.data[i] = clamp01(f.data[i] + delta)
}

// Fill sets every value to v clamped to [0, 1].
func (f *EntropyField) Fill(v float64) {
	v = clamp01(v)
	for i := range f.data {
		f.data[i] = v
	}
}

// Clone returns an independent copy of the field.
func (f *EntropyField) Clone() *EntropyField {
	out := &EntropyField{rows: f.rows, cols: f.cols, data: make([]float64, len(f.data))}
	copy(out.data, f.data)
	return out
}

// Values exposes the backing slice in row-major order. Callers must not
// write values outside [0, 1].
func (f *EntropyField) Values() []float64 { return f.data }

// Mean returns the average entropy across the field.
func (f *EntropyField) Mean() float64 {
	if len(f.data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range f.data {
		sum += v
	}
	return sum / float64(len(f.data))
}

// AdjustEntropy adds value to every in-bounds Moore neighbour of (row, col),
// clamping each to [0, 1]. The cell itself is left untouched.
func AdjustEntropy(f *EntropyField, row, col int, value float64) {
	for _, o := range mooreOffsets {
		f.Add(row+o[0], col+o[1], value)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
