package course

// Тайлы, принадлежащие поверхности паттинга на greens:
// плоский $B0, тёмные склоны $30-$47, светлые склоны $88-$A7.
func isPuttingSurface(v uint16) bool {
	switch {
	case v == 0xB0:
		return true
	case v >= 0x30 && v <= 0x47:
		return true
	case v >= 0x88 && v <= 0xA7:
		return true
	}
	return false
}

// CountPuttingSurface считает тайлы поверхности паттинга на greens-сетке
func CountPuttingSurface(greens *Grid) int {
	count := 0
	for _, v := range greens.Cells {
		if isPuttingSurface(v) {
			count++
		}
	}
	return count
}
