package course

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/annel0/golf-editor/internal/forest"
	"github.com/annel0/golf-editor/internal/vec"
)

func TestHoleJSONRoundTrip(t *testing.T) {
	h := NewHole(4)
	h.Terrain.Fill(TileRough)
	h.Terrain.Set(vec.Vec2{X: 3, Y: 1}, TileFairway)
	h.Greens.Fill(0xB0)
	h.Green = Position{X: 40, Y: 16}
	h.Meta = Metadata{
		Par:      4,
		Distance: 390,
		Tee:      Position{X: 80, Y: 280},
		Flags:    []FlagOffset{{XOffset: 4, YOffset: 8}},
	}

	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("Сериализация лунки: %v", err)
	}

	var back HoleData
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Разбор лунки: %v", err)
	}

	if back.Terrain.Width != TerrainRowWidth || back.Terrain.Height != 4 {
		t.Errorf("Размеры terrain: %dx%d", back.Terrain.Width, back.Terrain.Height)
	}
	if got := back.Terrain.At(vec.Vec2{X: 3, Y: 1}); got != TileFairway {
		t.Errorf("Тайл (1,3): $%02X, ожидался $%02X", got, TileFairway)
	}
	if got := back.Terrain.At(vec.Vec2{X: 0, Y: 0}); got != TileRough {
		t.Errorf("Тайл (0,0): $%02X, ожидался $%02X", got, TileRough)
	}
	if back.Meta.Par != 4 || back.Meta.Distance != 390 {
		t.Errorf("Метаданные потеряны: %+v", back.Meta)
	}
	if back.Green != (Position{X: 40, Y: 16}) {
		t.Errorf("Позиция green потеряна: %+v", back.Green)
	}
}

func TestHoleFileRoundTrip(t *testing.T) {
	h := NewHole(2)
	h.Terrain.Fill(TileFairway)

	path := filepath.Join(t.TempDir(), "hole_01.json")
	if err := SaveHole(path, h); err != nil {
		t.Fatalf("Запись файла: %v", err)
	}
	back, err := LoadHole(path)
	if err != nil {
		t.Fatalf("Чтение файла: %v", err)
	}
	if back.Terrain.At(vec.Vec2{X: 5, Y: 1}) != TileFairway {
		t.Error("Данные terrain потеряны при записи в файл")
	}
}

func TestUnmarshalRejectsRaggedRows(t *testing.T) {
	raw := `{"terrain":{"width":22,"height":1,"rows":["27 27"]},"greens":{"rows":[]},"attributes":{"rows":[]}}`
	var h HoleData
	if err := json.Unmarshal([]byte(raw), &h); err == nil {
		t.Error("Строка неверной ширины обязана отклоняться")
	}
}

func TestForestMaskFromTerrain(t *testing.T) {
	g := NewGrid(6, 4)
	g.Fill(TileRough)
	g.Set(vec.Vec2{X: 2, Y: 0}, TilePlaceholder)
	g.Set(vec.Vec2{X: 3, Y: 0}, uint16(forest.TileFillF3))

	m := ForestMask(g)
	if m.Count() != 2 {
		t.Errorf("Маска: %d занятых клеток, ожидалось 2", m.Count())
	}
	if !m.Occupied(vec.Vec2{X: 2, Y: 0}) || !m.Occupied(vec.Vec2{X: 3, Y: 0}) {
		t.Error("Лесные клетки не попали в маску")
	}
	if m.Occupied(vec.Vec2{X: 0, Y: 0}) {
		t.Error("Rough не должен попадать в маску")
	}
}

func TestApplyResolvedWritesTiles(t *testing.T) {
	g := NewGrid(6, 4)
	g.Fill(TileRough)
	g.Set(vec.Vec2{X: 2, Y: 0}, TilePlaceholder)
	g.Set(vec.Vec2{X: 3, Y: 0}, TilePlaceholder)

	tiler := forest.NewTiler(forest.MustDefaultCatalog())
	resolved, err := tiler.TileRegion(ForestMask(g))
	if err != nil {
		t.Fatalf("Тайлинг домино: %v", err)
	}

	ApplyResolved(g, resolved)
	if got := g.At(vec.Vec2{X: 2, Y: 0}); got != 0xA1 {
		t.Errorf("Клетка (0,2): $%02X, ожидался $A1", got)
	}
	if got := g.At(vec.Vec2{X: 3, Y: 0}); got != 0xA8 {
		t.Errorf("Клетка (0,3): $%02X, ожидался $A8", got)
	}
	if got := g.At(vec.Vec2{X: 0, Y: 0}); got != TileRough {
		t.Error("Клетки вне региона должны остаться нетронутыми")
	}
}

func TestCountPuttingSurface(t *testing.T) {
	g := NewGrid(GreensSize, GreensSize)
	g.Fill(0x00)
	g.Set(vec.Vec2{X: 0, Y: 0}, 0xB0) // плоский
	g.Set(vec.Vec2{X: 1, Y: 0}, 0x30) // тёмный склон
	g.Set(vec.Vec2{X: 2, Y: 0}, 0x88) // светлый склон
	g.Set(vec.Vec2{X: 3, Y: 0}, 0x48) // вне поверхности (greens fringe)

	if got := CountPuttingSurface(g); got != 3 {
		t.Errorf("Насчитано %d тайлов поверхности, ожидалось 3", got)
	}
}
