package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/annel0/golf-editor/internal/course"
	"github.com/annel0/golf-editor/internal/vec"
	"golang.org/x/image/draw"
)

// Палитры NES: HUD, фервей/раф, бункер, вода
var palettes = [4][4]color.RGBA{
	{rgb(0x00, 0x00, 0x00), rgb(0x0C, 0x93, 0x00), rgb(0xFF, 0xFF, 0xFF), rgb(0x64, 0xB0, 0xFF)},
	{rgb(0x00, 0x00, 0x00), rgb(0x0C, 0x93, 0x00), rgb(0x00, 0x52, 0x00), rgb(0x5C, 0xE4, 0x30)},
	{rgb(0x00, 0x00, 0x00), rgb(0x0C, 0x93, 0x00), rgb(0x00, 0x52, 0x00), rgb(0xBC, 0xBE, 0x00)},
	{rgb(0x00, 0x00, 0x00), rgb(0x0C, 0x93, 0x00), rgb(0x00, 0x52, 0x00), rgb(0x64, 0xB0, 0xFF)},
}

// Цвет поверхности грина в оверлее
var greenColor = rgb(0x00, 0x52, 0x00)

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Renderer рисует лунки по тайлсету
type Renderer struct {
	tileset *Tileset
	scale   int
}

// NewRenderer создаёт рендерер. Масштаб меньше единицы трактуется
// как единица.
func NewRenderer(tileset *Tileset, scale int) *Renderer {
	if scale < 1 {
		scale = 1
	}
	return &Renderer{tileset: tileset, scale: scale}
}

// RenderHole рисует лунку в RGBA-изображение
func (r *Renderer) RenderHole(hole *course.HoleData) *image.RGBA {
	terrain := hole.Terrain
	imgW := terrain.Width * TileSize
	imgH := terrain.Height * TileSize
	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))

	for row := 0; row < terrain.Height; row++ {
		for col := 0; col < terrain.Width; col++ {
			tile := terrain.At(vec.Vec2{X: col, Y: row})
			palette := r.paletteFor(hole, row, col)
			r.drawTile(img, int(tile), col*TileSize, row*TileSize, palette)
		}
	}

	r.overlayGreens(img, hole)

	if r.scale == 1 {
		return img
	}
	scaled := image.NewRGBA(image.Rect(0, 0, imgW*r.scale, imgH*r.scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
	return scaled
}

// RenderPNG рисует лунку и кодирует результат в PNG
func (r *Renderer) RenderPNG(w io.Writer, hole *course.HoleData) error {
	if err := png.Encode(w, r.RenderHole(hole)); err != nil {
		return fmt.Errorf("кодирование PNG: %w", err)
	}
	return nil
}

// paletteFor выбирает палитру по атрибутам супертайла.
// Вне таблицы атрибутов используется палитра фервея.
func (r *Renderer) paletteFor(hole *course.HoleData, row, col int) [4]color.RGBA {
	attrRow := row / 2
	attrCol := col / 2

	idx := 1
	if attrRow < len(hole.Attributes) && attrCol < len(hole.Attributes[attrRow]) {
		if v := hole.Attributes[attrRow][attrCol]; v >= 0 && v < len(palettes) {
			idx = v
		}
	}
	return palettes[idx]
}

// drawTile рисует один декодированный тайл в изображение
func (r *Renderer) drawTile(img *image.RGBA, tileIdx, baseX, baseY int, palette [4]color.RGBA) {
	pixels := r.tileset.DecodeTile(tileIdx)
	for py := 0; py < TileSize; py++ {
		for px := 0; px < TileSize; px++ {
			img.SetRGBA(baseX+px, baseY+py, palette[pixels[py][px]])
		}
	}
}

// overlayGreens накладывает пиксели грина поверх местности.
// Тайлы со значением ниже $30 прозрачны для оверлея.
func (r *Renderer) overlayGreens(img *image.RGBA, hole *course.HoleData) {
	if hole.Greens == nil {
		return
	}
	bounds := img.Bounds()

	for gy := 0; gy < hole.Greens.Height; gy++ {
		for gx := 0; gx < hole.Greens.Width; gx++ {
			if hole.Greens.At(vec.Vec2{X: gx, Y: gy}) < 0x30 {
				continue
			}
			px := hole.Green.X + gx
			py := hole.Green.Y + gy
			if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
				img.SetRGBA(px, py, greenColor)
			}
		}
	}
}
