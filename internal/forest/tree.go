package forest

// Exertion — один флаг, который дерево предъявляет соседу:
// направление и номер слота внутри направления.
type Exertion struct {
	Dir  Direction
	Slot uint8
}

// TreeRequirement описывает одно из трёх незавершённых декоративных
// деревьев семейства. Рёберное дерево предъявляет требование в одном
// направлении, угловое — одновременно в двух смежных.
// Деревья неизменяемы и определяются один раз в данных каталога.
type TreeRequirement struct {
	Name   string
	Corner bool
	// Exerts[0] всегда задан; Exerts[1] используется только у угловых деревьев
	Exerts [2]Exertion
}

// Exertions возвращает действующие флаги дерева (1 для рёберного, 2 для углового)
func (t TreeRequirement) Exertions() []Exertion {
	if t.Corner {
		return t.Exerts[:2]
	}
	return t.Exerts[:1]
}

// adjacentDirs проверяет, что два направления смежны (не противоположны и не равны)
func adjacentDirs(a, b Direction) bool {
	return a != b && a != b.Opposite()
}

// vectorFor строит вектор требований для подмножества деревьев семейства.
// subset — битовая маска: бит i установлен, если дерево i присутствует.
func vectorFor(trees [3]TreeRequirement, subset uint8) ReqVector {
	var v ReqVector
	for i, t := range trees {
		if subset&(1<<uint(i)) == 0 {
			continue
		}
		for _, e := range t.Exertions() {
			v.setSlot(e.Dir, e.Slot)
		}
	}
	return v
}

// subsetSize возвращает количество деревьев в подмножестве
func subsetSize(subset uint8) int {
	n := 0
	for i := 0; i < 3; i++ {
		if subset&(1<<uint(i)) != 0 {
			n++
		}
	}
	return n
}
