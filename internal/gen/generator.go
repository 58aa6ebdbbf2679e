package gen

import (
	"math/rand"

	"github.com/annel0/golf-editor/internal/course"
	"github.com/annel0/golf-editor/internal/forest"
	"github.com/annel0/golf-editor/internal/vec"
	"github.com/aquilax/go-perlin"
)

// Пороги высот для типов местности
const (
	WaterMax    = 0.24 // Ниже - вода
	BunkerMax   = 0.32 // Ниже - бункер
	FairwayMin  = 0.58 // Выше - фервей
	ForestMin   = 0.66 // Выше по лесному шуму - кандидат на лес
	GreenRadius = 7.5  // Радиус грина в тайлах
)

// HoleGenerator генерирует лунки на основе шума Перлина
type HoleGenerator struct {
	Seed        int64   // Сид для генерации шума
	NoiseScale  float64 // Масштаб основного шума (местность)
	ForestScale float64 // Масштаб лесного шума

	terrain *perlin.Perlin
	woods   *perlin.Perlin
}

// NewHoleGenerator создаёт новый генератор лунок
func NewHoleGenerator(seed int64) *HoleGenerator {
	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав

	return &HoleGenerator{
		Seed:        seed,
		NoiseScale:  0.09,
		ForestScale: 0.15,
		terrain:     perlin.NewPerlin(alpha, beta, n, seed),
		woods:       perlin.NewPerlin(alpha, beta, n, seed+42),
	}
}

// noise2D возвращает значение шума в диапазоне от 0 до 1
func noise2D(p *perlin.Perlin, x, y float64) float64 {
	return (p.Noise2D(x, y) + 1.0) / 2.0
}

// GenerateHole генерирует лунку заданной высоты. Для каждого номера
// лунки создаётся уникальный сид на основе глобального сида.
func (hg *HoleGenerator) GenerateHole(holeNum, height int) *course.HoleData {
	hole := course.NewHole(height)
	holeSeed := hg.Seed + int64(holeNum*31)
	rng := rand.New(rand.NewSource(holeSeed))

	// Смещение шума по номеру лунки, чтобы лунки различались.
	offX := float64(holeNum) * 64.0

	for y := 0; y < height; y++ {
		for x := 0; x < course.TerrainRowWidth; x++ {
			nx := (float64(x) + offX) * hg.NoiseScale
			ny := float64(y) * hg.NoiseScale
			h := noise2D(hg.terrain, nx, ny)

			var tile uint16
			switch {
			case h < WaterMax:
				tile = course.TileWater
			case h < BunkerMax:
				tile = course.TileBunker
			case h > FairwayMin:
				tile = course.TileFairway
			default:
				tile = course.TileRough
			}
			hole.Terrain.Set(vec.Vec2{X: x, Y: y}, tile)
		}
	}

	hg.placeForest(hole, offX)
	hg.fillGreens(hole, rng)

	hole.Green = course.Position{
		X: 8 * (2 + rng.Intn(8)),
		Y: 8 * (2 + rng.Intn(3)),
	}
	hole.Meta = course.Metadata{
		Par:      parForHeight(height),
		Distance: height * 11,
		Tee: course.Position{
			X: 8 * (4 + rng.Intn(14)),
			Y: 8 * (height - 3),
		},
		Flags: []course.FlagOffset{
			{XOffset: 4 + rng.Intn(8), YOffset: 4 + rng.Intn(8)},
		},
	}
	return hole
}

// placeForest расставляет лесные заглушки горизонтальными парами
// клеток с изолированной окрестностью. Такие пары всегда проходят
// разбор каталога, поэтому сгенерированная лунка тайлится без ошибок.
func (hg *HoleGenerator) placeForest(hole *course.HoleData, offX float64) {
	terrain := hole.Terrain
	placed := forest.NewMask(terrain.Width, terrain.Height)

	for y := 0; y < terrain.Height; y++ {
		for x := 0; x+1 < terrain.Width; x++ {
			// Пара начинается в клетке третьего семейства.
			if forest.FamilyFor(y, x) != forest.F2 {
				continue
			}
			left := vec.Vec2{X: x, Y: y}
			right := vec.Vec2{X: x + 1, Y: y}
			if terrain.At(left) != course.TileRough || terrain.At(right) != course.TileRough {
				continue
			}

			nx := (float64(x) + offX) * hg.ForestScale
			ny := float64(y) * hg.ForestScale
			if noise2D(hg.woods, nx, ny) < ForestMin {
				continue
			}
			if !hg.isolated(placed, left, right) {
				continue
			}

			terrain.Set(left, course.TilePlaceholder)
			terrain.Set(right, course.TilePlaceholder)
			placed.Set(left, true)
			placed.Set(right, true)
		}
	}
}

// isolated проверяет, что вокруг пары клеток нет уже размещённого леса.
func (hg *HoleGenerator) isolated(placed *forest.Mask, left, right vec.Vec2) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 2; dx++ {
			p := vec.Vec2{X: left.X + dx, Y: left.Y + dy}
			if p == left || p == right {
				continue
			}
			if placed.Occupied(p) {
				return false
			}
		}
	}
	return true
}

// fillGreens рисует округлый грин с плоской поверхностью в центре
// сетки 24x24, слегка возмущая край шумом.
func (hg *HoleGenerator) fillGreens(hole *course.HoleData, rng *rand.Rand) {
	center := float64(course.GreensSize) / 2.0
	wobble := rng.Float64() * 1.5

	for y := 0; y < course.GreensSize; y++ {
		for x := 0; x < course.GreensSize; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			dist := dx*dx + dy*dy

			r := GreenRadius + wobble*noise2D(hg.woods, float64(x)*0.3, float64(y)*0.3)
			if dist <= r*r {
				hole.Greens.Set(vec.Vec2{X: x, Y: y}, 0xB0)
			}
		}
	}
}

// parForHeight подбирает пар по длине лунки
func parForHeight(height int) int {
	switch {
	case height < 20:
		return 3
	case height < 34:
		return 4
	default:
		return 5
	}
}
