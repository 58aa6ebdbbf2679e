package forest

import "github.com/annel0/golf-editor/internal/vec"

// Field — булево 2D-поле занятости. Координаты вне поля считаются
// незанятыми. Ядро только читает поле, владеет им вызывающая сторона.
type Field interface {
	Occupied(pos vec.Vec2) bool
}

// Mask — плотная прямоугольная реализация Field поверх одного массива.
type Mask struct {
	w, h  int
	cells []bool
}

// NewMask создаёт пустую маску указанных размеров
func NewMask(w, h int) *Mask {
	return &Mask{w: w, h: h, cells: make([]bool, w*h)}
}

// Width возвращает ширину маски в клетках
func (m *Mask) Width() int { return m.w }

// Height возвращает высоту маски в клетках
func (m *Mask) Height() int { return m.h }

// Set отмечает клетку занятой или свободной; вне поля — no-op
func (m *Mask) Set(pos vec.Vec2, occupied bool) {
	if !pos.InBounds(m.w, m.h) {
		return
	}
	m.cells[pos.Y*m.w+pos.X] = occupied
}

// SetRect отмечает прямоугольник клеток занятым
func (m *Mask) SetRect(row, col, rows, cols int) {
	for r := row; r < row+rows; r++ {
		for c := col; c < col+cols; c++ {
			m.Set(vec.Vec2{X: c, Y: r}, true)
		}
	}
}

// Occupied сообщает, занята ли клетка; вне поля всегда false
func (m *Mask) Occupied(pos vec.Vec2) bool {
	if !pos.InBounds(m.w, m.h) {
		return false
	}
	return m.cells[pos.Y*m.w+pos.X]
}

// Count возвращает количество занятых клеток
func (m *Mask) Count() int {
	n := 0
	for _, c := range m.cells {
		if c {
			n++
		}
	}
	return n
}

// Resolved — результат тайлинга: тайл для каждой занятой клетки входной
// маски. Создаётся заново на каждый вызов TileRegion.
type Resolved struct {
	w, h  int
	tiles []*TileType
}

func newResolved(w, h int) *Resolved {
	return &Resolved{w: w, h: h, tiles: make([]*TileType, w*h)}
}

// Width возвращает ширину результата в клетках
func (r *Resolved) Width() int { return r.w }

// Height возвращает высоту результата в клетках
func (r *Resolved) Height() int { return r.h }

// At возвращает тайл клетки; ok=false для клеток вне области
func (r *Resolved) At(pos vec.Vec2) (*TileType, bool) {
	if !pos.InBounds(r.w, r.h) {
		return nil, false
	}
	t := r.tiles[pos.Y*r.w+pos.X]
	return t, t != nil
}

func (r *Resolved) set(pos vec.Vec2, t *TileType) {
	r.tiles[pos.Y*r.w+pos.X] = t
}

// Each вызывает fn для каждой занятой клетки (построчно)
func (r *Resolved) Each(fn func(pos vec.Vec2, tile *TileType)) {
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			if t := r.tiles[y*r.w+x]; t != nil {
				fn(vec.Vec2{X: x, Y: y}, t)
			}
		}
	}
}
