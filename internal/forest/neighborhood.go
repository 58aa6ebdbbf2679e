package forest

import "github.com/annel0/golf-editor/internal/vec"

// Pattern — занятость 8-окрестности клетки: 4 ортогональных и 4
// диагональных соседа.
type Pattern struct {
	Ortho [DirectionCount]bool
	Diag  [DiagonalCount]bool
}

// Sample снимает 8-окрестность клетки с поля. Чистая функция поля,
// ничего не изменяет; координаты вне поля читаются как незанятые.
func Sample(f Field, pos vec.Vec2) Pattern {
	var p Pattern
	for d := Direction(0); d < DirectionCount; d++ {
		p.Ortho[d] = f.Occupied(pos.Add(d.Delta()))
	}
	for g := Diagonal(0); g < DiagonalCount; g++ {
		p.Diag[g] = f.Occupied(pos.Add(g.Delta()))
	}
	return p
}

// FullOrtho возвращает true, если заняты все четыре ортогональных соседа
func (p Pattern) FullOrtho() bool {
	return p.Ortho[North] && p.Ortho[East] && p.Ortho[South] && p.Ortho[West]
}

// String форматирует паттерн для диагностики, например "NESW+ne,sw"
func (p Pattern) String() string {
	out := make([]byte, 0, 12)
	for d := Direction(0); d < DirectionCount; d++ {
		if p.Ortho[d] {
			out = append(out, d.String()...)
		}
	}
	out = append(out, '+')
	first := true
	for g := Diagonal(0); g < DiagonalCount; g++ {
		if p.Diag[g] {
			if !first {
				out = append(out, ',')
			}
			a, b := g.Flanks()
			out = append(out, a.String()[0]|0x20, b.String()[0]|0x20)
			first = false
		}
	}
	return string(out)
}
