package forest

// FamilyFor возвращает семейство, обязанное занимать клетку (row, col):
// families[(2*row + col) mod 4]. Единственный источник истины о
// назначении семейства; выводить семейство из соседей запрещено.
func FamilyFor(row, col int) Family {
	m := (2*row + col) % FamilyCount
	if m < 0 {
		m += FamilyCount
	}
	return Family(m)
}
