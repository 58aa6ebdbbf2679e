package codec

// Размеры сеток формата лунки.
const (
	TerrainRowWidth  = 22
	GreensRowWidth   = 24
	GreensTotalTiles = GreensRowWidth * GreensRowWidth
)

// DecompressTerrain разворачивает сжатые данные terrain в строки
// шириной 22 тайла. Высота определяется длиной потока.
func DecompressTerrain(t *Tables, compressed []byte) [][]byte {
	flat := expandStream(t, compressed, 0)
	rows := splitRows(flat, TerrainRowWidth)
	verticalFill(t, rows)
	return rows
}

// DecompressGreens разворачивает сжатые данные greens. Сетка
// фиксированная, 24x24; лишний хвост потока отбрасывается.
func DecompressGreens(t *Tables, compressed []byte) [][]byte {
	flat := expandStream(t, compressed, GreensTotalTiles)
	if len(flat) > GreensTotalTiles {
		flat = flat[:GreensTotalTiles]
	}
	rows := splitRows(flat, GreensRowWidth)
	verticalFill(t, rows)
	return rows
}

// expandStream - первый проход: словарь, повторы и литералы.
// maxTiles > 0 ограничивает размер выхода.
func expandStream(t *Tables, compressed []byte, maxTiles int) []byte {
	out := make([]byte, 0, len(compressed)*4)

	for _, b := range compressed {
		if maxTiles > 0 && len(out) >= maxTiles {
			break
		}

		switch {
		case b >= DictCodeBase:
			// Словарный код: первый байт плюс цепочка переходов.
			out = append(out, t.DictSequence(b)...)

		case b == 0x00:
			// Ноль пишется как есть: маркер вертикальной заливки.
			out = append(out, 0)

		case b <= RepeatMax:
			// Код повтора: цепочка переходов от последнего байта.
			for i := 0; i < int(b); i++ {
				if len(out) == 0 {
					out = append(out, 0)
					continue
				}
				out = append(out, t.HorizNext(out[len(out)-1]))
			}

		default:
			out = append(out, b)
		}
	}
	return out
}

// splitRows нарезает плоский поток на строки фиксированной ширины,
// дополняя неполную последнюю строку нулями.
func splitRows(flat []byte, rowWidth int) [][]byte {
	rows := make([][]byte, 0, (len(flat)+rowWidth-1)/rowWidth)
	for i := 0; i < len(flat); i += rowWidth {
		row := make([]byte, rowWidth)
		copy(row, flat[i:min(i+rowWidth, len(flat))])
		rows = append(rows, row)
	}
	return rows
}

// verticalFill - второй проход: нули заменяются значением,
// выведенным из тайла сверху.
func verticalFill(t *Tables, rows [][]byte) {
	for r := 1; r < len(rows); r++ {
		for c := range rows[r] {
			if rows[r][c] != 0 {
				continue
			}
			if v, ok := t.VertFill(rows[r-1][c]); ok {
				rows[r][c] = v
			}
		}
	}
}
