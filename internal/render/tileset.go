package render

import (
	"fmt"
	"os"
)

// Формат CHR: 16 байт на тайл 8x8, две битовые плоскости.
const (
	TileSize     = 8
	BytesPerTile = 16
)

// Tileset хранит декодированные CHR-тайлы
type Tileset struct {
	data      []byte
	numTiles  int
	emptyTile [TileSize][TileSize]uint8
}

// LoadTileset читает CHR-данные из файла
func LoadTileset(path string) (*Tileset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение тайлсета %s: %w", path, err)
	}
	return NewTileset(data)
}

// NewTileset создаёт тайлсет из сырых CHR-байтов
func NewTileset(data []byte) (*Tileset, error) {
	if len(data)%BytesPerTile != 0 {
		return nil, fmt.Errorf("размер CHR-данных %d не кратен %d", len(data), BytesPerTile)
	}
	return &Tileset{
		data:     data,
		numTiles: len(data) / BytesPerTile,
	}, nil
}

// NumTiles возвращает число тайлов в тайлсете
func (ts *Tileset) NumTiles() int { return ts.numTiles }

// DecodeTile декодирует тайл в матрицу 8x8 двухбитных пикселей.
// Индекс вне тайлсета даёт пустой тайл.
func (ts *Tileset) DecodeTile(tileIdx int) [TileSize][TileSize]uint8 {
	if tileIdx < 0 || tileIdx >= ts.numTiles {
		return ts.emptyTile
	}

	var pixels [TileSize][TileSize]uint8
	offset := tileIdx * BytesPerTile
	plane0 := ts.data[offset : offset+8]
	plane1 := ts.data[offset+8 : offset+16]

	for row := 0; row < TileSize; row++ {
		for col := 0; col < TileSize; col++ {
			mask := byte(0x80) >> col
			var pixel uint8
			if plane0[row]&mask != 0 {
				pixel |= 1
			}
			if plane1[row]&mask != 0 {
				pixel |= 2
			}
			pixels[row][col] = pixel
		}
	}
	return pixels
}
