package forest

import (
	"fmt"
)

// Family — одно из четырёх базовых повторяющихся семейств лесного узора.
// Семейство владеет одним fill-тайлом и шестью border-тайлами.
type Family uint8

const (
	F0 Family = iota
	F1
	F2
	F3
)

// FamilyCount — количество семейств (жёсткий инвариант каталога)
const FamilyCount = 4

// CatalogSize — общее количество тайлов каталога: 4 fill + 24 border
const CatalogSize = 28

// String возвращает строковое представление семейства
func (f Family) String() string { return fmt.Sprintf("F%d", uint8(f)) }

// TileID — идентификатор тайла в пространстве terrain-тайлов NES
type TileID uint16

// fullSubset — маска всех трёх деревьев семейства
const fullSubset uint8 = 0b111

// TileType — неизменяемое описание варианта тайла: идентификатор,
// семейство, подмножество деревьев и производный вектор требований.
type TileType struct {
	ID     TileID
	Family Family
	Trees  uint8 // битовая маска присутствующих деревьев (бит i = дерево i)
	Vector ReqVector
}

// IsFill возвращает true для fill-тайла (все три дерева присутствуют)
func (t *TileType) IsFill() bool { return t.Trees == fullSubset }

// CatalogEntry — одна строка декларативной таблицы каталога.
// Таблица задаётся литерально и не выводится во время выполнения;
// конструктор каталога проверяет её согласованность с деревьями семейства.
type CatalogEntry struct {
	ID     TileID
	Family Family
	Trees  uint8
	Vector ReqVector
}

// FamilyDef — деревья одного семейства
type FamilyDef struct {
	Family Family
	Trees  [3]TreeRequirement
}

// Catalog — закрытый набор из 28 тайлов, построенный один раз и
// неизменяемый после загрузки. Передаётся в resolver/tiler явно.
type Catalog struct {
	families [FamilyCount][3]TreeRequirement
	fill     [FamilyCount]*TileType
	tiles    []*TileType
	byVector map[catalogKey]*TileType
	byID     map[TileID]*TileType
	widths   [FamilyCount][DirectionCount]uint8
}

type catalogKey struct {
	family Family
	packed uint8
}

// NewCatalog строит каталог из определений семейств и декларативной
// таблицы тайлов. Любое нарушение структуры данных — фатальная порча
// данных времени загрузки, а не ошибка времени выполнения.
func NewCatalog(defs []FamilyDef, entries []CatalogEntry) (*Catalog, error) {
	if len(defs) != FamilyCount {
		return nil, fmt.Errorf("каталог: ожидалось %d семейств, получено %d", FamilyCount, len(defs))
	}
	if len(entries) != CatalogSize {
		return nil, fmt.Errorf("каталог: ожидалось %d тайлов, получено %d", CatalogSize, len(entries))
	}

	c := &Catalog{
		byVector: make(map[catalogKey]*TileType, CatalogSize),
		byID:     make(map[TileID]*TileType, CatalogSize),
		tiles:    make([]*TileType, 0, CatalogSize),
	}

	seen := [FamilyCount]bool{}
	for _, def := range defs {
		if int(def.Family) >= FamilyCount {
			return nil, fmt.Errorf("каталог: неизвестное семейство %d", def.Family)
		}
		if seen[def.Family] {
			return nil, fmt.Errorf("каталог: семейство %s задано дважды", def.Family)
		}
		seen[def.Family] = true
		if err := validateTrees(def.Family, def.Trees); err != nil {
			return nil, err
		}
		c.families[def.Family] = def.Trees
		c.widths[def.Family] = treeWidths(def.Trees)
	}

	// Считаем варианты по семействам: бит subset -> встречено
	var variants [FamilyCount]map[uint8]bool
	for f := 0; f < FamilyCount; f++ {
		variants[f] = make(map[uint8]bool, 7)
	}

	for _, e := range entries {
		if int(e.Family) >= FamilyCount {
			return nil, fmt.Errorf("каталог: тайл $%02X ссылается на неизвестное семейство %d", e.ID, e.Family)
		}
		size := subsetSize(e.Trees)
		if size == 0 {
			return nil, fmt.Errorf("каталог: тайл $%02X без деревьев недопустим", e.ID)
		}
		if variants[e.Family][e.Trees] {
			return nil, fmt.Errorf("каталог: дубликат варианта %s/%03b", e.Family, e.Trees)
		}
		variants[e.Family][e.Trees] = true

		// Вектор каждого варианта обязан совпадать с проекцией fill-вектора
		// на его подмножество деревьев: флаги отсутствующих деревьев
		// сброшены, других отличий не допускается.
		expect := vectorFor(c.families[e.Family], e.Trees)
		if expect != e.Vector {
			return nil, fmt.Errorf("каталог: вектор тайла $%02X (%s) не совпадает с проекцией деревьев: ожидалось %s, задано %s",
				e.ID, e.Family, expect.String(), e.Vector.String())
		}
		if err := checkWidths(e, c.widths[e.Family]); err != nil {
			return nil, err
		}

		tile := &TileType{ID: e.ID, Family: e.Family, Trees: e.Trees, Vector: e.Vector}
		if _, dup := c.byID[tile.ID]; dup {
			return nil, fmt.Errorf("каталог: дубликат идентификатора $%02X", tile.ID)
		}
		key := catalogKey{family: tile.Family, packed: tile.Vector.Pack()}
		if _, dup := c.byVector[key]; dup {
			return nil, fmt.Errorf("каталог: неоднозначный вектор %s в семействе %s", tile.Vector.String(), tile.Family)
		}

		c.byID[tile.ID] = tile
		c.byVector[key] = tile
		c.tiles = append(c.tiles, tile)
		if tile.IsFill() {
			c.fill[tile.Family] = tile
		}
	}

	// Полнота: у каждого семейства fill + все 6 непустых неполных
	// подмножеств размера 1-2, без пропусков.
	for f := Family(0); f < FamilyCount; f++ {
		if c.fill[f] == nil {
			return nil, fmt.Errorf("каталог: у семейства %s нет fill-тайла", f)
		}
		for subset := uint8(1); subset < fullSubset; subset++ {
			if !variants[f][subset] {
				return nil, fmt.Errorf("каталог: у семейства %s нет варианта %03b", f, subset)
			}
		}
	}

	if err := c.validateEdgeWidths(); err != nil {
		return nil, err
	}

	return c, nil
}

// validateTrees проверяет деревья одного семейства: ровно одно или два
// направления у дерева, смежность углов, покрытие всех четырёх направлений
// fill-вектором и наличие хотя бы одного углового дерева.
func validateTrees(f Family, trees [3]TreeRequirement) error {
	hasCorner := false
	for i, t := range trees {
		if t.Corner {
			hasCorner = true
			if !adjacentDirs(t.Exerts[0].Dir, t.Exerts[1].Dir) {
				return fmt.Errorf("каталог: угловое дерево %s/%d направлено в несмежные стороны", f, i)
			}
		}
		for _, e := range t.Exertions() {
			if e.Slot > 1 {
				return fmt.Errorf("каталог: дерево %s/%d использует слот %d (ширина не более 2)", f, i, e.Slot)
			}
		}
	}
	if !hasCorner {
		return fmt.Errorf("каталог: у семейства %s нет углового дерева", f)
	}
	full := vectorFor(trees, fullSubset)
	for d := Direction(0); d < DirectionCount; d++ {
		if !full.Get(d).any() {
			return fmt.Errorf("каталог: fill-вектор семейства %s не предъявляет требований в направлении %s", f, d)
		}
	}
	return nil
}

// treeWidths вычисляет ширину флагов по направлениям из деревьев семейства
func treeWidths(trees [3]TreeRequirement) [DirectionCount]uint8 {
	var w [DirectionCount]uint8
	for _, t := range trees {
		for _, e := range t.Exertions() {
			if e.Slot+1 > w[e.Dir] {
				w[e.Dir] = e.Slot + 1
			}
		}
	}
	return w
}

// checkWidths гарантирует, что у варианта не установлен флаг за пределами
// ширины направления его семейства.
func checkWidths(e CatalogEntry, widths [DirectionCount]uint8) error {
	for d := Direction(0); d < DirectionCount; d++ {
		p := e.Vector.Get(d)
		if p.B && widths[d] < 2 {
			return fmt.Errorf("каталог: тайл $%02X устанавливает второй слот в направлении %s ширины %d", e.ID, d, widths[d])
		}
	}
	return nil
}

// validateEdgeWidths проверяет согласованность ширин на общих рёбрах:
// правило размещения стыкует восточное ребро f с западным ребром f+1,
// а северное/южное — с семейством f+2.
func (c *Catalog) validateEdgeWidths() error {
	for f := Family(0); f < FamilyCount; f++ {
		east := (f + 1) % FamilyCount
		if c.widths[f][East] != c.widths[east][West] {
			return fmt.Errorf("каталог: ширина восточного ребра %s (%d) не совпадает с западным ребром %s (%d)",
				f, c.widths[f][East], east, c.widths[east][West])
		}
		south := (f + 2) % FamilyCount
		if c.widths[f][South] != c.widths[south][North] {
			return fmt.Errorf("каталог: ширина южного ребра %s (%d) не совпадает с северным ребром %s (%d)",
				f, c.widths[f][South], south, c.widths[south][North])
		}
	}
	return nil
}

// Fill возвращает fill-тайл семейства
func (c *Catalog) Fill(f Family) *TileType { return c.fill[f] }

// Resolve ищет единственный тайл семейства с заданным вектором требований
func (c *Catalog) Resolve(f Family, target ReqVector) (*TileType, bool) {
	tile, ok := c.byVector[catalogKey{family: f, packed: target.Pack()}]
	return tile, ok
}

// ByID возвращает тайл по идентификатору
func (c *Catalog) ByID(id TileID) (*TileType, bool) {
	tile, ok := c.byID[id]
	return tile, ok
}

// Tiles возвращает все тайлы каталога (в порядке объявления)
func (c *Catalog) Tiles() []*TileType { return c.tiles }

// Width возвращает ширину флагов семейства в направлении
func (c *Catalog) Width(f Family, d Direction) uint8 { return c.widths[f][d] }
