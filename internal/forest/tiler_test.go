package forest

import (
	"errors"
	"testing"

	"github.com/annel0/golf-editor/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dominoMask размечает горизонтальные домино F2-F3 — минимальные
// формы, целиком разрешимые каталогом по умолчанию.
func dominoMask() *Mask {
	m := NewMask(8, 6)
	m.SetRect(0, 2, 1, 2) // (0,2)-(0,3): F2,F3
	m.SetRect(2, 2, 1, 2) // (2,2)-(2,3): (4+2)%4=2 -> F2,F3
	m.SetRect(4, 6, 1, 2) // (4,6)-(4,7): (8+6)%4=2 -> F2,F3
	return m
}

func TestTileRegionDominoes(t *testing.T) {
	tiler := NewTiler(MustDefaultCatalog())

	out, err := tiler.TileRegion(dominoMask())
	require.NoError(t, err)

	count := 0
	out.Each(func(pos vec.Vec2, tile *TileType) {
		count++
		assert.Equal(t, FamilyFor(pos.Y, pos.X), tile.Family,
			"семейство клетки (%d,%d)", pos.Y, pos.X)
	})
	assert.Equal(t, 6, count, "тайл на каждую занятую клетку")

	left, ok := out.At(vec.Vec2{X: 2, Y: 0})
	require.True(t, ok)
	assert.Equal(t, TileID(0xA1), left.ID)
	right, ok := out.At(vec.Vec2{X: 3, Y: 0})
	require.True(t, ok)
	assert.Equal(t, TileID(0xA8), right.ID)
}

func TestTileRegionDeterministic(t *testing.T) {
	tiler := NewTiler(MustDefaultCatalog())
	m := dominoMask()

	first, err := tiler.TileRegion(m)
	require.NoError(t, err)
	second, err := tiler.TileRegion(m)
	require.NoError(t, err)

	first.Each(func(pos vec.Vec2, tile *TileType) {
		other, ok := second.At(pos)
		require.True(t, ok, "клетка (%d,%d) отсутствует во втором результате", pos.Y, pos.X)
		assert.Equal(t, tile.ID, other.ID)
	})
}

func TestTileRegionWorkerCountIrrelevant(t *testing.T) {
	m := dominoMask()

	serial := NewTiler(MustDefaultCatalog())
	serial.SetWorkers(1)
	parallel := NewTiler(MustDefaultCatalog())
	parallel.SetWorkers(8)

	a, err := serial.TileRegion(m)
	require.NoError(t, err)
	b, err := parallel.TileRegion(m)
	require.NoError(t, err)

	a.Each(func(pos vec.Vec2, tile *TileType) {
		other, ok := b.At(pos)
		require.True(t, ok)
		assert.Equal(t, tile.ID, other.ID)
	})
}

func TestTileRegionEdgeLaws(t *testing.T) {
	tiler := NewTiler(MustDefaultCatalog())
	m := dominoMask()

	out, err := tiler.TileRegion(m)
	require.NoError(t, err)

	out.Each(func(pos vec.Vec2, tile *TileType) {
		for d := Direction(0); d < DirectionCount; d++ {
			npos := pos.Add(d.Delta())
			if m.Occupied(npos) {
				neighbor, ok := out.At(npos)
				require.True(t, ok)
				assert.Equal(t, tile.Vector.Get(d), neighbor.Vector.Get(d.Opposite()),
					"флаги ребра %s клетки (%d,%d)", d, pos.Y, pos.X)
			} else {
				assert.False(t, tile.Vector.Get(d).any(),
					"флаги в пустоту: клетка (%d,%d), направление %s", pos.Y, pos.X, d)
			}
		}
	})
}

func TestTileRegionIsolatedCell(t *testing.T) {
	tiler := NewTiler(MustDefaultCatalog())
	m := NewMask(5, 5)
	m.Set(vec.Vec2{X: 2, Y: 2}, true)

	_, err := tiler.TileRegion(m)
	var unreal *UnrealizableShapeError
	require.ErrorAs(t, err, &unreal)
	assert.Equal(t, vec.Vec2{X: 2, Y: 2}, unreal.Pos)
}

func TestTileRegionRectangleFailsOnBorder(t *testing.T) {
	// Полный прямоугольник содержит клетки F0/F1 на прямой границе,
	// для которых ортогональный вектор не находится в каталоге.
	tiler := NewTiler(MustDefaultCatalog())
	m := NewMask(6, 4)
	m.SetRect(0, 0, 4, 6)

	_, err := tiler.TileRegion(m)
	require.Error(t, err)

	var unreal *UnrealizableShapeError
	var amb *CornerAmbiguityError
	if !errors.As(err, &unreal) && !errors.As(err, &amb) {
		t.Fatalf("Ожидался отказ разрешения формы, получено %v", err)
	}
}

// TestGoldenGridInterior — эталонная сетка 4x6: полностью занятый
// прямоугольник, внутренние клетки которого обязаны дать точную
// последовательность fill-тайлов независимо от нерешённого
// диагонального случая на границе.
func TestGoldenGridInterior(t *testing.T) {
	r := NewResolver(MustDefaultCatalog())
	m := NewMask(6, 4)
	m.SetRect(0, 0, 4, 6)

	golden := [2][4]TileID{
		{0xA5, 0x90, 0x97, 0x9E}, // строка 1, столбцы 1-4: F3 F0 F1 F2
		{0x97, 0x9E, 0xA5, 0x90}, // строка 2, столбцы 1-4: F1 F2 F3 F0
	}

	for i, rowIDs := range golden {
		y := i + 1
		for j, want := range rowIDs {
			x := j + 1
			tile, err := r.Resolve(vec.Vec2{X: x, Y: y}, m)
			require.NoError(t, err, "внутренняя клетка (%d,%d)", y, x)
			assert.Equal(t, want, tile.ID, "клетка (%d,%d)", y, x)
			assert.True(t, tile.IsFill())
		}
	}
}

func TestTileRegionFreshResult(t *testing.T) {
	tiler := NewTiler(MustDefaultCatalog())
	m := dominoMask()

	first, err := tiler.TileRegion(m)
	require.NoError(t, err)
	second, err := tiler.TileRegion(m)
	require.NoError(t, err)
	assert.NotSame(t, first, second, "каждый вызов возвращает свежий результат")
}
