package forest

// Декларативная таблица лесного каталога: восстановленные константные
// данные, 28 тайлов в диапазоне $90-$AB terrain-пространства.
// Таблица литеральна и проверяется конструктором, а не выводится заново.

// Идентификаторы fill-тайлов семейств
const (
	TileFillF0 TileID = 0x90
	TileFillF1 TileID = 0x97
	TileFillF2 TileID = 0x9E
	TileFillF3 TileID = 0xA5
)

// ForestTileMin и ForestTileMax ограничивают диапазон лесных тайлов
const (
	ForestTileMin TileID = 0x90
	ForestTileMax TileID = 0xAB
)

// DefaultFamilies описывает деревья четырёх семейств.
// F0/F1 несут по два угловых дерева (восточное/западное ребро ширины 2),
// F2/F3 — по одному угловому и двум рёберным.
func DefaultFamilies() []FamilyDef {
	return []FamilyDef{
		{Family: F0, Trees: [3]TreeRequirement{
			{Name: "pine_ne", Corner: true, Exerts: [2]Exertion{{Dir: North, Slot: 0}, {Dir: East, Slot: 0}}},
			{Name: "pine_se", Corner: true, Exerts: [2]Exertion{{Dir: South, Slot: 0}, {Dir: East, Slot: 1}}},
			{Name: "thicket_w", Exerts: [2]Exertion{{Dir: West, Slot: 0}}},
		}},
		{Family: F1, Trees: [3]TreeRequirement{
			{Name: "pine_nw", Corner: true, Exerts: [2]Exertion{{Dir: North, Slot: 0}, {Dir: West, Slot: 0}}},
			{Name: "pine_sw", Corner: true, Exerts: [2]Exertion{{Dir: South, Slot: 0}, {Dir: West, Slot: 1}}},
			{Name: "thicket_e", Exerts: [2]Exertion{{Dir: East, Slot: 0}}},
		}},
		{Family: F2, Trees: [3]TreeRequirement{
			{Name: "pine_sw", Corner: true, Exerts: [2]Exertion{{Dir: South, Slot: 0}, {Dir: West, Slot: 0}}},
			{Name: "thicket_n", Exerts: [2]Exertion{{Dir: North, Slot: 0}}},
			{Name: "thicket_e", Exerts: [2]Exertion{{Dir: East, Slot: 0}}},
		}},
		{Family: F3, Trees: [3]TreeRequirement{
			{Name: "pine_se", Corner: true, Exerts: [2]Exertion{{Dir: South, Slot: 0}, {Dir: East, Slot: 0}}},
			{Name: "thicket_n", Exerts: [2]Exertion{{Dir: North, Slot: 0}}},
			{Name: "thicket_w", Exerts: [2]Exertion{{Dir: West, Slot: 0}}},
		}},
	}
}

// вспомогательные конструкторы флагов для литеральной таблицы
func f1(a bool) FlagPair     { return FlagPair{A: a} }
func f2(a, b bool) FlagPair  { return FlagPair{A: a, B: b} }
func rv(n, e, s, w FlagPair) ReqVector { return ReqVector{N: n, E: e, S: s, W: w} }

// DefaultEntries возвращает литеральную таблицу 28 тайлов.
// Порядок вариантов внутри блока семейства: fill, {t0}, {t1}, {t2},
// {t0,t1}, {t0,t2}, {t1,t2}.
func DefaultEntries() []CatalogEntry {
	t := true
	f := false
	return []CatalogEntry{
		// F0: E ширины 2 (слот 0 — pine_ne, слот 1 — pine_se)
		{ID: 0x90, Family: F0, Trees: 0b111, Vector: rv(f1(t), f2(t, t), f1(t), f1(t))},
		{ID: 0x91, Family: F0, Trees: 0b001, Vector: rv(f1(t), f2(t, f), f1(f), f1(f))},
		{ID: 0x92, Family: F0, Trees: 0b010, Vector: rv(f1(f), f2(f, t), f1(t), f1(f))},
		{ID: 0x93, Family: F0, Trees: 0b100, Vector: rv(f1(f), f2(f, f), f1(f), f1(t))},
		{ID: 0x94, Family: F0, Trees: 0b011, Vector: rv(f1(t), f2(t, t), f1(t), f1(f))},
		{ID: 0x95, Family: F0, Trees: 0b101, Vector: rv(f1(t), f2(t, f), f1(f), f1(t))},
		{ID: 0x96, Family: F0, Trees: 0b110, Vector: rv(f1(f), f2(f, t), f1(t), f1(t))},

		// F1: W ширины 2 (слот 0 — pine_nw, слот 1 — pine_sw)
		{ID: 0x97, Family: F1, Trees: 0b111, Vector: rv(f1(t), f1(t), f1(t), f2(t, t))},
		{ID: 0x98, Family: F1, Trees: 0b001, Vector: rv(f1(t), f1(f), f1(f), f2(t, f))},
		{ID: 0x99, Family: F1, Trees: 0b010, Vector: rv(f1(f), f1(f), f1(t), f2(f, t))},
		{ID: 0x9A, Family: F1, Trees: 0b100, Vector: rv(f1(f), f1(t), f1(f), f2(f, f))},
		{ID: 0x9B, Family: F1, Trees: 0b011, Vector: rv(f1(t), f1(f), f1(t), f2(t, t))},
		{ID: 0x9C, Family: F1, Trees: 0b101, Vector: rv(f1(t), f1(t), f1(f), f2(t, f))},
		{ID: 0x9D, Family: F1, Trees: 0b110, Vector: rv(f1(f), f1(t), f1(t), f2(f, t))},

		// F2: все направления ширины 1
		{ID: 0x9E, Family: F2, Trees: 0b111, Vector: rv(f1(t), f1(t), f1(t), f1(t))},
		{ID: 0x9F, Family: F2, Trees: 0b001, Vector: rv(f1(f), f1(f), f1(t), f1(t))},
		{ID: 0xA0, Family: F2, Trees: 0b010, Vector: rv(f1(t), f1(f), f1(f), f1(f))},
		{ID: 0xA1, Family: F2, Trees: 0b100, Vector: rv(f1(f), f1(t), f1(f), f1(f))},
		{ID: 0xA2, Family: F2, Trees: 0b011, Vector: rv(f1(t), f1(f), f1(t), f1(t))},
		{ID: 0xA3, Family: F2, Trees: 0b101, Vector: rv(f1(f), f1(t), f1(t), f1(t))},
		{ID: 0xA4, Family: F2, Trees: 0b110, Vector: rv(f1(t), f1(t), f1(f), f1(f))},

		// F3: все направления ширины 1
		{ID: 0xA5, Family: F3, Trees: 0b111, Vector: rv(f1(t), f1(t), f1(t), f1(t))},
		{ID: 0xA6, Family: F3, Trees: 0b001, Vector: rv(f1(f), f1(t), f1(t), f1(f))},
		{ID: 0xA7, Family: F3, Trees: 0b010, Vector: rv(f1(t), f1(f), f1(f), f1(f))},
		{ID: 0xA8, Family: F3, Trees: 0b100, Vector: rv(f1(f), f1(f), f1(f), f1(t))},
		{ID: 0xA9, Family: F3, Trees: 0b011, Vector: rv(f1(t), f1(t), f1(t), f1(f))},
		{ID: 0xAA, Family: F3, Trees: 0b101, Vector: rv(f1(f), f1(t), f1(t), f1(t))},
		{ID: 0xAB, Family: F3, Trees: 0b110, Vector: rv(f1(t), f1(f), f1(f), f1(t))},
	}
}

// DefaultCatalog строит каталог из восстановленных таблиц
func DefaultCatalog() (*Catalog, error) {
	return NewCatalog(DefaultFamilies(), DefaultEntries())
}

// MustDefaultCatalog строит каталог или паникует: порча литеральных
// данных — дефект сборки, а не условие времени выполнения.
func MustDefaultCatalog() *Catalog {
	c, err := DefaultCatalog()
	if err != nil {
		panic(err)
	}
	return c
}
