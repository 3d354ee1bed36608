package hexgrid

// Cells lists every on-map position of size, row by row, in increasing Index order.
// Even rows contribute Width cells, odd rows Width-1.
func Cells(size MapSize) []Pos {
	if size.Width <= 0 || size.Height <= 0 {
		return nil
	}
	out := make([]Pos, 0, size.Width*size.Height)
	for row := 0; row < size.Height; row++ {
		for col := 0; col < RowLen(size, row); col++ {
			out = append(out, FromOffset(col, row))
		}
	}
	return out
}

// RowLen is the number of cells on the given offset row.
func RowLen(size MapSize, row int) int {
	if row < 0 || row >= size.Height {
		return 0
	}
	if row%2 == 1 {
		return size.Width - 1
	}
	return size.Width
}
