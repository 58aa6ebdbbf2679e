package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/annel0/golf-editor/internal/codec"
	"github.com/annel0/golf-editor/internal/course"
	"github.com/annel0/golf-editor/internal/forest"
	"github.com/annel0/golf-editor/internal/gen"
	"github.com/annel0/golf-editor/internal/render"
	"github.com/annel0/golf-editor/internal/vec"
)

func main() {
	var (
		command = flag.String("cmd", "tile", "Command: tile, validate, gen, render, pack, unpack")
		inPath  = flag.String("in", "", "Input hole JSON (or compressed data for unpack)")
		outPath = flag.String("out", "", "Output file")
		tileset = flag.String("tileset", "chr-ram.bin", "CHR tileset for render")
		tables  = flag.String("tables", "compression_tables.json", "Compression tables JSON")
		scale   = flag.Int("scale", 2, "Render scale")
		seed    = flag.Int64("seed", 1, "Generation seed")
		holeNum = flag.Int("hole", 1, "Hole number for generation")
		height  = flag.Int("height", 32, "Terrain height for generation")
		greens  = flag.Bool("greens", false, "Pack/unpack greens instead of terrain")
	)
	flag.Parse()

	var err error
	switch *command {
	case "tile":
		err = runTile(*inPath, *outPath)
	case "validate":
		err = runValidate(*inPath)
	case "gen":
		err = runGen(*seed, *holeNum, *height, *outPath)
	case "render":
		err = runRender(*inPath, *outPath, *tileset, *scale)
	case "pack":
		err = runPack(*inPath, *outPath, *tables, *greens)
	case "unpack":
		err = runUnpack(*inPath, *outPath, *tables, *greens)
	default:
		err = fmt.Errorf("неизвестная команда: %s", *command)
	}
	if err != nil {
		log.Fatalf("Ошибка: %v", err)
	}
}

// runTile разбирает лесной регион лунки и пишет результат
func runTile(inPath, outPath string) error {
	hole, err := course.LoadHole(inPath)
	if err != nil {
		return err
	}

	mask := course.ForestMask(hole.Terrain)
	tiler := forest.NewTiler(forest.MustDefaultCatalog())
	resolved, err := tiler.TileRegion(mask)
	if err != nil {
		return fmt.Errorf("регион не разбирается: %w", err)
	}
	course.ApplyResolved(hole.Terrain, resolved)

	fmt.Printf("Разобрано клеток леса: %d\n", mask.Count())
	if outPath == "" {
		outPath = inPath
	}
	return course.SaveHole(outPath, hole)
}

// runValidate проверяет разрешимость лесного региона без записи
func runValidate(inPath string) error {
	hole, err := course.LoadHole(inPath)
	if err != nil {
		return err
	}

	mask := course.ForestMask(hole.Terrain)
	tiler := forest.NewTiler(forest.MustDefaultCatalog())
	if _, err := tiler.TileRegion(mask); err != nil {
		return fmt.Errorf("регион не разбирается: %w", err)
	}
	fmt.Printf("Регион корректен: %d клеток леса\n", mask.Count())
	return nil
}

// runGen генерирует лунку и пишет её в JSON
func runGen(seed int64, holeNum, height int, outPath string) error {
	if outPath == "" {
		return fmt.Errorf("команда gen требует -out")
	}

	hole := gen.NewHoleGenerator(seed).GenerateHole(holeNum, height)

	tiler := forest.NewTiler(forest.MustDefaultCatalog())
	resolved, err := tiler.TileRegion(course.ForestMask(hole.Terrain))
	if err != nil {
		return fmt.Errorf("сгенерированный лес не разбирается: %w", err)
	}
	course.ApplyResolved(hole.Terrain, resolved)

	fmt.Printf("Сгенерирована лунка %d: пар %d, %d ярдов\n", holeNum, hole.Meta.Par, hole.Meta.Distance)
	return course.SaveHole(outPath, hole)
}

// runRender рисует лунку в PNG
func runRender(inPath, outPath, tilesetPath string, scale int) error {
	if outPath == "" {
		return fmt.Errorf("команда render требует -out")
	}

	hole, err := course.LoadHole(inPath)
	if err != nil {
		return err
	}
	ts, err := render.LoadTileset(tilesetPath)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	renderer := render.NewRenderer(ts, scale)
	if err := renderer.RenderPNG(out, hole); err != nil {
		return err
	}
	fmt.Printf("Записан %s\n", outPath)
	return nil
}

// runPack сжимает местность или грин лунки в формат картриджа
func runPack(inPath, outPath, tablesPath string, packGreens bool) error {
	if outPath == "" {
		return fmt.Errorf("команда pack требует -out")
	}

	hole, err := course.LoadHole(inPath)
	if err != nil {
		return err
	}
	tableSet, err := codec.LoadTableSet(tablesPath)
	if err != nil {
		return err
	}

	var compressed []byte
	if packGreens {
		compressed, err = codec.CompressGreens(tableSet.Greens, gridRows(hole.Greens))
	} else {
		compressed, err = codec.CompressTerrain(tableSet.Terrain, gridRows(hole.Terrain))
	}
	if err != nil {
		return err
	}

	fmt.Printf("Сжато в %d байт\n", len(compressed))
	return os.WriteFile(outPath, compressed, 0o644)
}

// runUnpack разворачивает сжатые данные и пишет их как JSON лунки
func runUnpack(inPath, outPath, tablesPath string, unpackGreens bool) error {
	if outPath == "" {
		return fmt.Errorf("команда unpack требует -out")
	}

	compressed, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	tableSet, err := codec.LoadTableSet(tablesPath)
	if err != nil {
		return err
	}

	var rows [][]byte
	hole := course.NewHole(1)
	if unpackGreens {
		rows = codec.DecompressGreens(tableSet.Greens, compressed)
		fillGrid(hole.Greens, rows)
	} else {
		rows = codec.DecompressTerrain(tableSet.Terrain, compressed)
		hole = course.NewHole(len(rows))
		fillGrid(hole.Terrain, rows)
	}

	fmt.Printf("Развёрнуто строк: %d\n", len(rows))
	return course.SaveHole(outPath, hole)
}

// gridRows переводит сетку в байтовые строки формата картриджа
func gridRows(g *course.Grid) [][]byte {
	rows := make([][]byte, g.Height)
	for y := 0; y < g.Height; y++ {
		rows[y] = make([]byte, g.Width)
		for x := 0; x < g.Width; x++ {
			rows[y][x] = byte(g.At(vec.Vec2{X: x, Y: y}))
		}
	}
	return rows
}

// fillGrid заполняет сетку из байтовых строк
func fillGrid(g *course.Grid, rows [][]byte) {
	for y, row := range rows {
		for x, v := range row {
			g.Set(vec.Vec2{X: x, Y: y}, uint16(v))
		}
	}
}
