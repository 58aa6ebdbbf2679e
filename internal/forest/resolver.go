package forest

import "github.com/annel0/golf-editor/internal/vec"

// Resolver выбирает конкретный тайл для занятой клетки по локальной
// 8-окрестности. Правило выбора зависит только от четырёх ортогональных
// соседей, поэтому клетки региона разрешаются независимо друг от друга
// и в любом порядке.
type Resolver struct {
	catalog *Catalog
}

// NewResolver создаёт resolver поверх готового каталога
func NewResolver(catalog *Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// TargetVector вычисляет целевой вектор клетки: fill-вектор её семейства,
// в котором сброшены все флаги в направлениях с отсутствующим соседом.
// Флаг углового дерева сбрасывается в каждом из двух его направлений
// независимо, по собственному соседу этого направления.
func (r *Resolver) TargetVector(family Family, pat Pattern) ReqVector {
	target := r.catalog.Fill(family).Vector
	for d := Direction(0); d < DirectionCount; d++ {
		if !pat.Ortho[d] {
			target = target.ClearDirection(d)
		}
	}
	return target
}

// Resolve возвращает тайл для занятой клетки pos поля f.
// Каталог — единственный авторитет шага поиска: если ортогональный
// целевой вектор не найден, диагонали используются только для
// классификации отказа (CornerAmbiguityError или UnrealizableShapeError).
func (r *Resolver) Resolve(pos vec.Vec2, f Field) (*TileType, error) {
	family := FamilyFor(pos.Y, pos.X)
	pat := Sample(f, pos)
	target := r.TargetVector(family, pat)

	if tile, ok := r.catalog.Resolve(family, target); ok {
		return tile, nil
	}

	for g := Diagonal(0); g < DiagonalCount; g++ {
		if pat.Diag[g] {
			continue
		}
		a, b := g.Flanks()
		if pat.Ortho[a] && pat.Ortho[b] {
			return nil, &CornerAmbiguityError{
				Pos:          pos,
				Family:       family,
				Target:       target,
				Neighborhood: pat,
				Missing:      g,
			}
		}
	}

	return nil, &UnrealizableShapeError{Pos: pos, Family: family, Target: target}
}
