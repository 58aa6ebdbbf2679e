package forest

import "github.com/annel0/golf-editor/internal/vec"

// Direction представляет одно из четырёх ортогональных направлений на сетке.
// Замкнутый набор: North, East, South, West.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// DirectionCount — количество ортогональных направлений
const DirectionCount = 4

// Opposite возвращает противоположное направление
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// Delta возвращает смещение соседа в этом направлении (X — столбец, Y — строка)
func (d Direction) Delta() vec.Vec2 {
	switch d {
	case North:
		return vec.Vec2{X: 0, Y: -1}
	case East:
		return vec.Vec2{X: 1, Y: 0}
	case South:
		return vec.Vec2{X: 0, Y: 1}
	default:
		return vec.Vec2{X: -1, Y: 0}
	}
}

// String возвращает строковое представление направления
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	default:
		return "W"
	}
}

// Diagonal представляет одно из четырёх диагональных направлений 8-окрестности
type Diagonal uint8

const (
	NorthEast Diagonal = iota
	SouthEast
	SouthWest
	NorthWest
)

// DiagonalCount — количество диагональных направлений
const DiagonalCount = 4

// Flanks возвращает два ортогональных направления, примыкающих к диагонали
func (g Diagonal) Flanks() (Direction, Direction) {
	switch g {
	case NorthEast:
		return North, East
	case SouthEast:
		return South, East
	case SouthWest:
		return South, West
	default:
		return North, West
	}
}

// Delta возвращает смещение диагонального соседа
func (g Diagonal) Delta() vec.Vec2 {
	a, b := g.Flanks()
	return a.Delta().Add(b.Delta())
}

// String возвращает строковое представление диагонали
func (g Diagonal) String() string {
	a, b := g.Flanks()
	return a.String() + b.String()
}
