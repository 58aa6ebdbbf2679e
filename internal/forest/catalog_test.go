package forest

import (
	"testing"
)

func TestDefaultCatalogBuilds(t *testing.T) {
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("Каталог по умолчанию не построился: %v", err)
	}

	if len(c.Tiles()) != CatalogSize {
		t.Errorf("Ожидалось %d тайлов, получено %d", CatalogSize, len(c.Tiles()))
	}

	// У каждого семейства ровно один fill и шесть border-вариантов
	for f := Family(0); f < FamilyCount; f++ {
		fill := c.Fill(f)
		if fill == nil {
			t.Fatalf("У семейства %s нет fill-тайла", f)
		}
		if !fill.IsFill() {
			t.Errorf("Fill-тайл %s не содержит все три дерева", f)
		}
		borders := 0
		for _, tile := range c.Tiles() {
			if tile.Family == f && !tile.IsFill() {
				borders++
				if n := subsetSize(tile.Trees); n != 1 && n != 2 {
					t.Errorf("Border-тайл $%02X содержит %d деревьев", tile.ID, n)
				}
			}
		}
		if borders != 6 {
			t.Errorf("У семейства %s %d border-тайлов, ожидалось 6", f, borders)
		}
	}
}

func TestDefaultCatalogFillIDs(t *testing.T) {
	c := MustDefaultCatalog()

	want := map[Family]TileID{F0: TileFillF0, F1: TileFillF1, F2: TileFillF2, F3: TileFillF3}
	for f, id := range want {
		if got := c.Fill(f).ID; got != id {
			t.Errorf("Fill-тайл %s: ожидался $%02X, получен $%02X", f, id, got)
		}
	}
}

func TestCatalogEdgeWidths(t *testing.T) {
	c := MustDefaultCatalog()

	// Восточное ребро F0 и западное F1 несут два независимых ограничения
	if c.Width(F0, East) != 2 || c.Width(F1, West) != 2 {
		t.Errorf("Ожидалась ширина 2 на ребре F0-F1, получено %d/%d",
			c.Width(F0, East), c.Width(F1, West))
	}

	// Остальные рёбра — одно
	if c.Width(F2, East) != 1 || c.Width(F3, West) != 1 {
		t.Errorf("Ожидалась ширина 1 на ребре F2-F3")
	}
	for f := Family(0); f < FamilyCount; f++ {
		if c.Width(f, North) != 1 || c.Width(f, South) != 1 {
			t.Errorf("Вертикальные рёбра %s должны иметь ширину 1", f)
		}
	}
}

func TestCatalogRejectsMissingVariant(t *testing.T) {
	entries := DefaultEntries()[:CatalogSize-1] // теряем последний border F3
	if _, err := NewCatalog(DefaultFamilies(), entries); err == nil {
		t.Error("Каталог без одного варианта обязан не построиться")
	}
}

func TestCatalogRejectsDuplicateVariant(t *testing.T) {
	entries := DefaultEntries()
	entries[CatalogSize-1] = entries[CatalogSize-2] // дубликат вместо последнего
	if _, err := NewCatalog(DefaultFamilies(), entries); err == nil {
		t.Error("Каталог с дубликатом варианта обязан не построиться")
	}
}

func TestCatalogRejectsNonProjectionVector(t *testing.T) {
	entries := DefaultEntries()
	// Портим вектор border-тайла: добавляем флаг отсутствующего дерева
	entries[1].Vector.S = FlagPair{A: true}
	if _, err := NewCatalog(DefaultFamilies(), entries); err == nil {
		t.Error("Вектор, не являющийся проекцией fill-вектора, обязан отклоняться")
	}
}

func TestCatalogRejectsFamilyWithoutCorner(t *testing.T) {
	defs := DefaultFamilies()
	// Переделываем единственное угловое дерево F2 в рёберное
	defs[2].Trees[0] = TreeRequirement{Name: "broken", Exerts: [2]Exertion{{Dir: South, Slot: 0}}}
	if _, err := NewCatalog(defs, DefaultEntries()); err == nil {
		t.Error("Семейство без углового дерева обязано отклоняться")
	}
}

func TestCatalogRejectsOppositeCorner(t *testing.T) {
	defs := DefaultFamilies()
	defs[0].Trees[0].Exerts[1].Dir = South // north+south — не смежные
	if _, err := NewCatalog(defs, DefaultEntries()); err == nil {
		t.Error("Угловое дерево с противоположными направлениями обязано отклоняться")
	}
}

func TestCatalogResolveUnique(t *testing.T) {
	c := MustDefaultCatalog()
	for _, tile := range c.Tiles() {
		got, ok := c.Resolve(tile.Family, tile.Vector)
		if !ok {
			t.Fatalf("Тайл $%02X не находится по собственному вектору", tile.ID)
		}
		if got.ID != tile.ID {
			t.Errorf("Вектор %s разрешился в $%02X вместо $%02X", tile.Vector.String(), got.ID, tile.ID)
		}
	}

	// Пустой вектор не соответствует ни одному варианту
	for f := Family(0); f < FamilyCount; f++ {
		if _, ok := c.Resolve(f, ReqVector{}); ok {
			t.Errorf("Пустой вектор не должен находиться в семействе %s", f)
		}
	}
}
