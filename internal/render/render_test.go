package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/annel0/golf-editor/internal/course"
	"github.com/annel0/golf-editor/internal/vec"
)

// solidTile возвращает CHR-байты тайла, целиком залитого одним
// двухбитным значением.
func solidTile(pixel uint8) []byte {
	tile := make([]byte, BytesPerTile)
	var p0, p1 byte
	if pixel&1 != 0 {
		p0 = 0xFF
	}
	if pixel&2 != 0 {
		p1 = 0xFF
	}
	for i := 0; i < 8; i++ {
		tile[i] = p0
		tile[i+8] = p1
	}
	return tile
}

func testTileset(t *testing.T) *Tileset {
	t.Helper()

	// Четыре тайла: по одному на каждое двухбитное значение.
	data := make([]byte, 0, 4*BytesPerTile)
	for p := uint8(0); p < 4; p++ {
		data = append(data, solidTile(p)...)
	}
	ts, err := NewTileset(data)
	if err != nil {
		t.Fatalf("Создание тайлсета: %v", err)
	}
	return ts
}

func TestDecodeTilePlanes(t *testing.T) {
	ts := testTileset(t)

	for p := uint8(0); p < 4; p++ {
		pixels := ts.DecodeTile(int(p))
		for row := 0; row < TileSize; row++ {
			for col := 0; col < TileSize; col++ {
				if pixels[row][col] != p {
					t.Fatalf("Тайл %d, пиксель (%d,%d) = %d", p, row, col, pixels[row][col])
				}
			}
		}
	}
}

func TestDecodeTileOutOfRange(t *testing.T) {
	ts := testTileset(t)

	pixels := ts.DecodeTile(99)
	for row := range pixels {
		for col := range pixels[row] {
			if pixels[row][col] != 0 {
				t.Fatal("Тайл вне тайлсета обязан быть пустым")
			}
		}
	}
}

func TestNewTilesetRejectsPartialTile(t *testing.T) {
	if _, err := NewTileset(make([]byte, BytesPerTile+3)); err == nil {
		t.Error("Неполный тайл обязан отклоняться")
	}
}

func TestRenderHoleDimensions(t *testing.T) {
	r := NewRenderer(testTileset(t), 1)

	hole := course.NewHole(4)
	img := r.RenderHole(hole)

	wantW := course.TerrainRowWidth * TileSize
	wantH := 4 * TileSize
	if img.Bounds().Dx() != wantW || img.Bounds().Dy() != wantH {
		t.Errorf("Размер %dx%d, ожидалось %dx%d", img.Bounds().Dx(), img.Bounds().Dy(), wantW, wantH)
	}
}

func TestRenderHoleScaled(t *testing.T) {
	r := NewRenderer(testTileset(t), 3)

	hole := course.NewHole(2)
	img := r.RenderHole(hole)

	if img.Bounds().Dx() != course.TerrainRowWidth*TileSize*3 {
		t.Errorf("Масштабированная ширина: %d", img.Bounds().Dx())
	}
}

func TestRenderUsesAttributePalette(t *testing.T) {
	r := NewRenderer(testTileset(t), 1)

	hole := course.NewHole(2)
	// Тайл 3 рисуется третьим цветом палитры. Палитра воды
	// даёт голубой, палитра фервея - салатовый.
	hole.Terrain.Fill(3)
	hole.Attributes = [][]int{{3, 1}}

	img := r.RenderHole(hole)
	water := img.RGBAAt(0, 0)
	grass := img.RGBAAt(2*TileSize, 0)

	if water != rgb(0x64, 0xB0, 0xFF) {
		t.Errorf("Супертайл воды: %v", water)
	}
	if grass != rgb(0x5C, 0xE4, 0x30) {
		t.Errorf("Супертайл фервея: %v", grass)
	}
}

func TestGreensOverlay(t *testing.T) {
	r := NewRenderer(testTileset(t), 1)

	hole := course.NewHole(4)
	hole.Green = course.Position{X: 10, Y: 5}
	hole.Greens.Set(vec.Vec2{X: 0, Y: 0}, 0xB0)
	hole.Greens.Set(vec.Vec2{X: 1, Y: 0}, 0x2F) // ниже порога, прозрачен

	img := r.RenderHole(hole)
	if img.RGBAAt(10, 5) != greenColor {
		t.Error("Пиксель грина не наложен")
	}
	if img.RGBAAt(11, 5) == greenColor {
		t.Error("Тайл ниже $30 не должен накладываться")
	}
}

func TestRenderPNGEncodes(t *testing.T) {
	r := NewRenderer(testTileset(t), 2)

	var buf bytes.Buffer
	if err := r.RenderPNG(&buf, course.NewHole(2)); err != nil {
		t.Fatalf("Рендер PNG: %v", err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("Разбор PNG: %v", err)
	}
	if cfg.Width != course.TerrainRowWidth*TileSize*2 {
		t.Errorf("Ширина PNG: %d", cfg.Width)
	}
}
