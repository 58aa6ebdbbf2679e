package vec

import "math"

// Vec2 представляет целочисленные 2D координаты на тайловой сетке.
// X — столбец, Y — строка (в порядке экранных координат NES).
type Vec2 struct {
	X, Y int
}

// Add возвращает сумму двух векторов
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// ToSupertile преобразует тайловые координаты в координаты супертайла 2x2
// (атрибуты NES задаются на супертайл)
func (v Vec2) ToSupertile() Vec2 {
	return Vec2{X: v.X >> 1, Y: v.Y >> 1}
}

// InBounds проверяет, что координаты лежат в прямоугольнике [0,w) x [0,h)
func (v Vec2) InBounds(w, h int) bool {
	return v.X >= 0 && v.X < w && v.Y >= 0 && v.Y < h
}

// DistanceTo вычисляет евклидово расстояние до другой точки
func (v Vec2) DistanceTo(other Vec2) float64 {
	dx := float64(v.X - other.X)
	dy := float64(v.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
