package forest

import (
	"errors"
	"testing"

	"github.com/annel0/golf-editor/internal/vec"
)

func TestFamilyForPlacement(t *testing.T) {
	// families[(2r+c) mod 4]: строка 0 — F0 F1 F2 F3, строка 1 — F2 F3 F0 F1
	cases := []struct {
		row, col int
		want     Family
	}{
		{0, 0, F0}, {0, 1, F1}, {0, 2, F2}, {0, 3, F3},
		{1, 0, F2}, {1, 1, F3}, {1, 2, F0}, {1, 3, F1},
		{2, 0, F0}, {2, 4, F0},
		{-1, 0, F2}, {0, -1, F3},
	}
	for _, c := range cases {
		if got := FamilyFor(c.row, c.col); got != c.want {
			t.Errorf("FamilyFor(%d,%d) = %s, ожидалось %s", c.row, c.col, got, c.want)
		}
	}
}

func TestSampleNeighborhood(t *testing.T) {
	m := NewMask(4, 4)
	m.SetRect(0, 0, 2, 2) // квадрат 2x2 в левом верхнем углу

	p := Sample(m, vec.Vec2{X: 0, Y: 0})
	if p.Ortho[North] || p.Ortho[West] {
		t.Error("Соседи за пределами поля должны читаться как незанятые")
	}
	if !p.Ortho[East] || !p.Ortho[South] {
		t.Error("Ожидались занятые соседи E и S")
	}
	if !p.Diag[SouthEast] {
		t.Error("Ожидался занятый диагональный сосед SE")
	}
	if p.Diag[NorthEast] || p.Diag[SouthWest] || p.Diag[NorthWest] {
		t.Error("Прочие диагонали должны быть свободны")
	}
}

func TestResolveInteriorIsFill(t *testing.T) {
	c := MustDefaultCatalog()
	r := NewResolver(c)

	m := NewMask(8, 8)
	m.SetRect(0, 0, 8, 8)

	// Клетка с полной ортогональной окрестностью обязана получить
	// fill-тайл своего семейства, никогда — border-вариант.
	for y := 1; y < 7; y++ {
		for x := 1; x < 7; x++ {
			tile, err := r.Resolve(vec.Vec2{X: x, Y: y}, m)
			if err != nil {
				t.Fatalf("Внутренняя клетка (%d,%d): %v", y, x, err)
			}
			if !tile.IsFill() {
				t.Errorf("Внутренняя клетка (%d,%d) получила border-тайл $%02X", y, x, tile.ID)
			}
			if want := FamilyFor(y, x); tile.Family != want {
				t.Errorf("Клетка (%d,%d): семейство %s вместо %s", y, x, tile.Family, want)
			}
		}
	}
}

func TestResolveIsolatedCellFails(t *testing.T) {
	c := MustDefaultCatalog()
	r := NewResolver(c)

	m := NewMask(5, 5)
	m.Set(vec.Vec2{X: 2, Y: 2}, true)

	_, err := r.Resolve(vec.Vec2{X: 2, Y: 2}, m)
	var unreal *UnrealizableShapeError
	if !errors.As(err, &unreal) {
		t.Fatalf("Одиночная клетка: ожидался UnrealizableShapeError, получено %v", err)
	}
	if unreal.Pos != (vec.Vec2{X: 2, Y: 2}) {
		t.Errorf("Ошибка несёт неверную координату: %+v", unreal.Pos)
	}
	if !unreal.Target.IsZero() {
		t.Errorf("Целевой вектор одиночной клетки должен быть пустым, получен %s", unreal.Target.String())
	}
}

func TestResolveStraightBorders(t *testing.T) {
	c := MustDefaultCatalog()
	r := NewResolver(c)

	// Семейства F2/F3 с одним угловым деревом разрешают прямые границы:
	// горизонтальное домино F2-F3 в строке 0 (столбцы 2,3).
	m := NewMask(8, 8)
	m.Set(vec.Vec2{X: 2, Y: 0}, true)
	m.Set(vec.Vec2{X: 3, Y: 0}, true)

	left, err := r.Resolve(vec.Vec2{X: 2, Y: 0}, m)
	if err != nil {
		t.Fatalf("Западная клетка домино: %v", err)
	}
	if left.ID != 0xA1 { // F2/{thicket_e}
		t.Errorf("Западная клетка: ожидался $A1, получен $%02X", left.ID)
	}

	right, err := r.Resolve(vec.Vec2{X: 3, Y: 0}, m)
	if err != nil {
		t.Fatalf("Восточная клетка домино: %v", err)
	}
	if right.ID != 0xA8 { // F3/{thicket_w}
		t.Errorf("Восточная клетка: ожидался $A8, получен $%02X", right.ID)
	}

	// Флаги общего ребра согласованы
	if left.Vector.Get(East) != right.Vector.Get(West) {
		t.Error("Рассогласование флагов общего ребра домино")
	}
}

func TestResolveWestEdgeOfF0(t *testing.T) {
	c := MustDefaultCatalog()
	r := NewResolver(c)

	// F0 допускает сброс только западного рёберного дерева: клетка (1,2)
	// с занятыми N, E, S и свободным W.
	m := NewMask(6, 6)
	m.Set(vec.Vec2{X: 2, Y: 0}, true)
	m.Set(vec.Vec2{X: 2, Y: 1}, true)
	m.Set(vec.Vec2{X: 3, Y: 1}, true)
	m.Set(vec.Vec2{X: 2, Y: 2}, true)

	tile, err := r.Resolve(vec.Vec2{X: 2, Y: 1}, m)
	if err != nil {
		t.Fatalf("Клетка F0 с западной границей: %v", err)
	}
	if tile.ID != 0x94 { // F0/{pine_ne,pine_se}
		t.Errorf("Ожидался $94, получен $%02X", tile.ID)
	}
}

func TestResolveCornerAmbiguity(t *testing.T) {
	c := MustDefaultCatalog()
	r := NewResolver(c)

	// Клетка F0 (1,2): заняты N, E, W, свободен S. Угловое дерево pine_se
	// теряет южный флаг, но сохраняет восточный — в каталоге такого
	// вектора нет. Свободная диагональ NE при занятых N и E делает отказ
	// различимым диагональным случаем.
	m := NewMask(6, 6)
	m.Set(vec.Vec2{X: 2, Y: 1}, true)
	m.Set(vec.Vec2{X: 2, Y: 0}, true) // N
	m.Set(vec.Vec2{X: 3, Y: 1}, true) // E
	m.Set(vec.Vec2{X: 1, Y: 1}, true) // W
	m.Set(vec.Vec2{X: 1, Y: 0}, true) // NW занята, NE свободна

	_, err := r.Resolve(vec.Vec2{X: 2, Y: 1}, m)
	var amb *CornerAmbiguityError
	if !errors.As(err, &amb) {
		t.Fatalf("Ожидался CornerAmbiguityError, получено %v", err)
	}
	if amb.Missing != NorthEast {
		t.Errorf("Ожидалась отсутствующая диагональ NE, получена %s", amb.Missing)
	}

	// Та же форма с занятыми обеими северными диагоналями — обычный
	// неразрешимый отказ, а не диагональный случай.
	m.Set(vec.Vec2{X: 3, Y: 0}, true) // NE
	_, err = r.Resolve(vec.Vec2{X: 2, Y: 1}, m)
	var unreal *UnrealizableShapeError
	if !errors.As(err, &unreal) {
		t.Fatalf("Ожидался UnrealizableShapeError, получено %v", err)
	}
}
