package forest

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/annel0/golf-editor/internal/vec"
)

// Tiler разрешает весь регион занятости: по тайлу на занятую клетку,
// затем глобальная проверка инвариантов. Разрешение клеток не зависит от
// чужих результатов, поэтому строки обрабатываются параллельно и пишутся
// в непересекающиеся ячейки результата; проверка начинается только после
// полного заполнения (барьер).
type Tiler struct {
	resolver *Resolver
	workers  int
}

// NewTiler создаёт tiler поверх каталога
func NewTiler(catalog *Catalog) *Tiler {
	return &Tiler{
		resolver: NewResolver(catalog),
		workers:  runtime.NumCPU(),
	}
}

// SetWorkers задаёт число параллельных обработчиков (минимум 1)
func (t *Tiler) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	t.workers = n
}

// TileRegion разрешает все занятые клетки маски и валидирует результат.
// Возвращает первую ошибку разрешения (по порядку строк) либо
// ConsistencyError, если итог нарушает инварианты каталога.
func (t *Tiler) TileRegion(m *Mask) (*Resolved, error) {
	out := newResolved(m.Width(), m.Height())

	type rowErr struct {
		row int
		err error
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		firstE  *rowErr
		rowChan = make(chan int)
	)

	workers := t.workers
	if workers > m.Height() && m.Height() > 0 {
		workers = m.Height()
	}
	if workers < 1 {
		workers = 1
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rowChan {
				if err := t.resolveRow(m, out, y); err != nil {
					mu.Lock()
					if firstE == nil || y < firstE.row {
						firstE = &rowErr{row: y, err: err}
					}
					mu.Unlock()
				}
			}
		}()
	}

	for y := 0; y < m.Height(); y++ {
		rowChan <- y
	}
	close(rowChan)
	wg.Wait()

	if firstE != nil {
		return nil, firstE.err
	}

	if err := t.validate(m, out); err != nil {
		return nil, err
	}
	return out, nil
}

// resolveRow разрешает одну строку; результат пишется в ячейки этой строки
func (t *Tiler) resolveRow(m *Mask, out *Resolved, y int) error {
	for x := 0; x < m.Width(); x++ {
		pos := vec.Vec2{X: x, Y: y}
		if !m.Occupied(pos) {
			continue
		}
		tile, err := t.resolver.Resolve(pos, m)
		if err != nil {
			return err
		}
		out.set(pos, tile)
	}
	return nil
}

// validate перепроверяет инварианты результата по всему региону:
// (1) семейство клетки задано правилом размещения;
// (2) флаги общего ребра совпадают с обеих сторон;
// (3) флаги в сторону незанятого или внешнего соседа сброшены.
// Нарушение — дефект каталога или resolver'а, не условие входа.
func (t *Tiler) validate(m *Mask, out *Resolved) error {
	var err error
	out.Each(func(pos vec.Vec2, tile *TileType) {
		if err != nil {
			return
		}
		if want := FamilyFor(pos.Y, pos.X); tile.Family != want {
			err = &ConsistencyError{Pos: pos, Detail: fmt.Sprintf(
				"тайл $%02X семейства %s на позиции семейства %s", tile.ID, tile.Family, want)}
			return
		}
		for d := Direction(0); d < DirectionCount; d++ {
			npos := pos.Add(d.Delta())
			if !m.Occupied(npos) {
				if tile.Vector.Get(d).any() {
					err = &ConsistencyError{Pos: pos, Detail: fmt.Sprintf(
						"флаги в направлении %s при отсутствующем соседе", d)}
					return
				}
				continue
			}
			neighbor, ok := out.At(npos)
			if !ok {
				err = &ConsistencyError{Pos: npos, Detail: "занятая клетка без тайла в результате"}
				return
			}
			if tile.Vector.Get(d) != neighbor.Vector.Get(d.Opposite()) {
				err = &ConsistencyError{Pos: pos, Detail: fmt.Sprintf(
					"рассогласование ребра %s с клеткой (%d,%d): %s против %s",
					d, npos.Y, npos.X, tile.Vector.String(), neighbor.Vector.String())}
				return
			}
		}
	})
	return err
}
