package course

import (
	"encoding/json"
	"fmt"
	"os"
)

// Position — пиксельные координаты спрайта на поле
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// FlagOffset — смещение флага относительно позиции green
type FlagOffset struct {
	XOffset int `json:"x_offset"`
	YOffset int `json:"y_offset"`
}

// Metadata — снятые с ROM данные лунки: пар, дистанция, позиции спрайтов
type Metadata struct {
	Par      int          `json:"par"`
	Distance int          `json:"distance"`
	Tee      Position     `json:"tee"`
	Flags    []FlagOffset `json:"flag_positions"`
}

// HoleData — полные данные одной лунки: terrain-сетка (ширина 22),
// greens-сетка 24x24, атрибуты палитр по супертайлам и метаданные.
type HoleData struct {
	Terrain    *Grid
	Greens     *Grid
	Attributes [][]int
	Green      Position
	Meta       Metadata
}

// holeJSON — представление JSON-формата hole_NN.json (hex-строки для сеток)
type holeJSON struct {
	Terrain struct {
		Width  int      `json:"width"`
		Height int      `json:"height"`
		Rows   []string `json:"rows"`
	} `json:"terrain"`
	Attributes struct {
		Rows [][]int `json:"rows"`
	} `json:"attributes"`
	Greens struct {
		Rows []string `json:"rows"`
	} `json:"greens"`
	Green Position `json:"green"`
	Meta  Metadata `json:"metadata"`
}

// NewHole создаёт пустую лунку указанной высоты terrain
func NewHole(terrainHeight int) *HoleData {
	h := &HoleData{
		Terrain: NewGrid(TerrainRowWidth, terrainHeight),
		Greens:  NewGrid(GreensSize, GreensSize),
	}
	rows := (terrainHeight + 1) / 2
	h.Attributes = make([][]int, rows)
	for i := range h.Attributes {
		h.Attributes[i] = make([]int, 11)
	}
	return h
}

// MarshalJSON сериализует лунку в формат hole_NN.json
func (h *HoleData) MarshalJSON() ([]byte, error) {
	var out holeJSON
	out.Terrain.Width = h.Terrain.Width
	out.Terrain.Height = h.Terrain.Height
	out.Terrain.Rows = h.Terrain.hexRows()
	out.Attributes.Rows = h.Attributes
	out.Greens.Rows = h.Greens.hexRows()
	out.Green = h.Green
	out.Meta = h.Meta
	return json.Marshal(&out)
}

// UnmarshalJSON разбирает лунку из формата hole_NN.json
func (h *HoleData) UnmarshalJSON(data []byte) error {
	var in holeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	terrain, err := gridFromHexRows(in.Terrain.Rows, in.Terrain.Width)
	if err != nil {
		return fmt.Errorf("terrain: %w", err)
	}
	if in.Terrain.Height != 0 && in.Terrain.Height != terrain.Height {
		return fmt.Errorf("terrain: заявлено %d строк, в данных %d", in.Terrain.Height, terrain.Height)
	}

	greens, err := gridFromHexRows(in.Greens.Rows, GreensSize)
	if err != nil {
		return fmt.Errorf("greens: %w", err)
	}
	if greens.Height != GreensSize {
		return fmt.Errorf("greens: %d строк, ожидалось %d", greens.Height, GreensSize)
	}

	h.Terrain = terrain
	h.Greens = greens
	h.Attributes = in.Attributes.Rows
	h.Green = in.Green
	h.Meta = in.Meta
	return nil
}

// LoadHole читает лунку из JSON-файла
func LoadHole(path string) (*HoleData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var h HoleData
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("разбор %s: %w", path, err)
	}
	return &h, nil
}

// SaveHole записывает лунку в JSON-файл
func SaveHole(path string, h *HoleData) error {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
