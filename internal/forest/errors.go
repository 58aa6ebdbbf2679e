package forest

import (
	"fmt"

	"github.com/annel0/golf-editor/internal/vec"
)

// UnrealizableShapeError — форма занятости в клетке не имеет
// подходящего тайла: вычисленный целевой вектор не совпадает ни с одним
// вариантом семейства. Ошибка входных данных; resolver не подбирает
// приближение и сообщает координату и вектор, который пытался найти.
type UnrealizableShapeError struct {
	Pos    vec.Vec2
	Family Family
	Target ReqVector
}

func (e *UnrealizableShapeError) Error() string {
	return fmt.Sprintf("нет тайла для формы в клетке (%d,%d): семейство %s, целевой вектор %s",
		e.Pos.Y, e.Pos.X, e.Family, e.Target.String())
}

// CornerAmbiguityError — ортогональный целевой вектор не нашёлся в
// каталоге, при этом отсутствует диагональный сосед, оба фланговых
// ортогональных соседа которого заняты. Точное правило выбора тайла для
// этого случая источниками не установлено, поэтому он выделен в
// отдельный, различимый отказ вместо подстановки наугад.
type CornerAmbiguityError struct {
	Pos          vec.Vec2
	Family       Family
	Target       ReqVector
	Neighborhood Pattern
	Missing      Diagonal
}

func (e *CornerAmbiguityError) Error() string {
	return fmt.Sprintf("неразрешённый диагональный случай в клетке (%d,%d): семейство %s, вектор %s, отсутствует диагональ %s (окрестность %s)",
		e.Pos.Y, e.Pos.X, e.Family, e.Target.String(), e.Missing, e.Neighborhood.String())
}

// ConsistencyError — итоговая проверка региона обнаружила нарушение
// инварианта, не объяснимое формой входа. Дефект каталога или
// resolver'а; невосстановимо.
type ConsistencyError struct {
	Pos    vec.Vec2
	Detail string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("нарушение согласованности в клетке (%d,%d): %s", e.Pos.Y, e.Pos.X, e.Detail)
}
