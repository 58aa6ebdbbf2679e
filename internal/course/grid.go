package course

import (
	"fmt"
	"strings"

	"github.com/annel0/golf-editor/internal/vec"
)

// Размеры сеток NES-поля
const (
	TerrainRowWidth = 22 // ширина строки terrain в тайлах
	GreensSize      = 24 // сетка greens всегда 24x24
)

// Базовые значения terrain-тайлов
const (
	TileEmpty   uint16 = 0x00
	TileFairway uint16 = 0x25
	TileRough   uint16 = 0x27
	TileBunker  uint16 = 0x2A
	TileWater   uint16 = 0x2C

	// TilePlaceholder — внутренняя метка редактора для клетки,
	// ожидающей разрешения (вне байтового диапазона NES)
	TilePlaceholder uint16 = 0x100
)

// Grid — плотная прямоугольная сетка тайлов, индексируемая (строка, столбец)
type Grid struct {
	Width  int
	Height int
	Cells  []uint16
}

// NewGrid создаёт сетку указанных размеров, заполненную нулями
func NewGrid(width, height int) *Grid {
	return &Grid{Width: width, Height: height, Cells: make([]uint16, width*height)}
}

// At возвращает значение тайла; вне сетки — TileEmpty
func (g *Grid) At(pos vec.Vec2) uint16 {
	if !pos.InBounds(g.Width, g.Height) {
		return TileEmpty
	}
	return g.Cells[pos.Y*g.Width+pos.X]
}

// Set устанавливает значение тайла; вне сетки — no-op
func (g *Grid) Set(pos vec.Vec2, v uint16) {
	if !pos.InBounds(g.Width, g.Height) {
		return
	}
	g.Cells[pos.Y*g.Width+pos.X] = v
}

// Fill заполняет всю сетку одним значением
func (g *Grid) Fill(v uint16) {
	for i := range g.Cells {
		g.Cells[i] = v
	}
}

// Clone возвращает глубокую копию сетки
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.Width, g.Height)
	copy(c.Cells, g.Cells)
	return c
}

// hexRows кодирует сетку в строки шестнадцатеричных значений,
// разделённых пробелами — формат hole_NN.json оригинального дампа.
func (g *Grid) hexRows() []string {
	rows := make([]string, g.Height)
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		sb.Reset()
		for x := 0; x < g.Width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%02X", g.Cells[y*g.Width+x])
		}
		rows[y] = sb.String()
	}
	return rows
}

// gridFromHexRows разбирает строки шестнадцатеричных значений в сетку
func gridFromHexRows(rows []string, wantWidth int) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("пустая сетка")
	}
	g := NewGrid(wantWidth, len(rows))
	for y, row := range rows {
		fields := strings.Fields(row)
		if len(fields) != wantWidth {
			return nil, fmt.Errorf("строка %d: %d тайлов, ожидалось %d", y, len(fields), wantWidth)
		}
		for x, f := range fields {
			var v uint16
			if _, err := fmt.Sscanf(f, "%X", &v); err != nil {
				return nil, fmt.Errorf("строка %d, тайл %d: %w", y, x, err)
			}
			g.Cells[y*wantWidth+x] = v
		}
	}
	return g, nil
}
