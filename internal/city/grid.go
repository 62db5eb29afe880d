package city

// Grid stores module types for a rows x cols city in row-major order.
type Grid struct {
	rows, cols int
	data       []ModuleType
}

// NewGrid allocates an all-Empty grid. Non-positive dimensions are raised to 1.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{rows: rows, cols: cols, data: make([]ModuleType, rows*cols)}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// At returns the module at (row, col), or Empty when out of bounds.
func (g *Grid) At(row, col int) ModuleType {
	if !g.InBounds(row, col) {
		return Empty
	}
	return g.data[g.Index(row, col)]
}

// Set writes t at (row, col). Out-of-bounds coordinates are ignored and
// unknown types are stored as Empty.
func (g *Grid) Set(row, col int, t ModuleType) {
	if !g.InBounds(row, col) {
		return
	}
	g.data[g.Index(row, col)] = t.Normalize()
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{rows: g.rows, cols: g.cols, data: make([]ModuleType, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Clear sets every cell to Empty.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Empty
	}
}

// Equal reports whether both grids have the same shape and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// AppendCells appends the grid contents as raw bytes to dst.
func (g *Grid) AppendCells(dst []uint8) []uint8 {
	for _, v := range g.data {
		dst = append(dst, uint8(v))
	}
	return dst
}

// SetCell writes t into g at (row, col); out-of-bounds edits are a no-op.
func SetCell(g *Grid, row, col int, t ModuleType) {
	g.Set(row, col, t)
}

// ResetGrid clears the grid to Empty and, when a field is supplied, fills it
// with DefaultEntropy.
func ResetGrid(g *Grid, f *EntropyField) {
	g.Clear()
	if f != nil {
		f.Fill(DefaultEntropy)
	}
}
