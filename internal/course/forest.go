package course

import (
	"github.com/annel0/golf-editor/internal/forest"
	"github.com/annel0/golf-editor/internal/vec"
)

// IsForestTile сообщает, принадлежит ли значение terrain-тайла лесному
// каталогу ($90-$AB) либо метке клетки, ожидающей разрешения.
func IsForestTile(v uint16) bool {
	if v == TilePlaceholder {
		return true
	}
	id := forest.TileID(v)
	return id >= forest.ForestTileMin && id <= forest.ForestTileMax
}

// ForestMask строит маску занятости лесного региона по terrain-сетке.
// Какие клетки принадлежат лесу — решение автора поля; ядро леса это
// поле только читает.
func ForestMask(terrain *Grid) *forest.Mask {
	m := forest.NewMask(terrain.Width, terrain.Height)
	for y := 0; y < terrain.Height; y++ {
		for x := 0; x < terrain.Width; x++ {
			pos := vec.Vec2{X: x, Y: y}
			if IsForestTile(terrain.At(pos)) {
				m.Set(pos, true)
			}
		}
	}
	return m
}

// ApplyResolved записывает разрешённые лесные тайлы обратно в terrain-сетку
func ApplyResolved(terrain *Grid, resolved *forest.Resolved) {
	resolved.Each(func(pos vec.Vec2, tile *forest.TileType) {
		terrain.Set(pos, uint16(tile.ID))
	})
}
