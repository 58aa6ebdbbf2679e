package codec

import "fmt"

// CompressTerrain сжимает строки terrain шириной 22 тайла.
func CompressTerrain(t *Tables, rows [][]byte) ([]byte, error) {
	return compressRows(t, rows, TerrainRowWidth)
}

// CompressGreens сжимает сетку greens 24x24.
func CompressGreens(t *Tables, rows [][]byte) ([]byte, error) {
	if len(rows) != GreensRowWidth {
		return nil, fmt.Errorf("greens: %d строк, ожидалось %d", len(rows), GreensRowWidth)
	}
	return compressRows(t, rows, GreensRowWidth)
}

// compressRows выполняет два прохода сжатия: пометку вертикальной
// заливки нулями и жадное кодирование словарём, повторами и литералами.
func compressRows(t *Tables, rows [][]byte, rowWidth int) ([]byte, error) {
	for i, row := range rows {
		if len(row) != rowWidth {
			return nil, fmt.Errorf("строка %d: ширина %d, ожидалось %d", i, len(row), rowWidth)
		}
	}

	stream, err := markVerticalFills(t, rows)
	if err != nil {
		return nil, err
	}
	return encodeStream(t, stream)
}

// markVerticalFills заменяет нулями тайлы, которые распаковщик
// восстановит вертикальной заливкой, и возвращает плоский поток.
func markVerticalFills(t *Tables, rows [][]byte) ([]byte, error) {
	stream := make([]byte, 0, len(rows)*len(rows[0]))
	for r, row := range rows {
		for c, tile := range row {
			if r == 0 {
				stream = append(stream, tile)
				continue
			}
			above := rows[r-1][c]
			filled, ok := t.VertFill(above)
			switch {
			case ok && tile == filled:
				stream = append(stream, 0)
			case tile == 0 && ok && filled != 0:
				// Настоящий ноль под заполняемым тайлом восстановить
				// нельзя: распаковщик перезапишет его заливкой.
				return nil, fmt.Errorf("строка %d, колонка %d: нулевой тайл под $%02X не кодируется", r, c, above)
			default:
				stream = append(stream, tile)
			}
		}
	}
	return stream, nil
}

// encodeStream жадно кодирует поток: сначала самая длинная словарная
// последовательность, затем код повтора, затем литерал.
func encodeStream(t *Tables, stream []byte) ([]byte, error) {
	out := make([]byte, 0, len(stream)/2)
	reverse := t.reverseLookup()

	i := 0
	for i < len(stream) {
		if code, n := matchDict(reverse, stream, i); n > 0 {
			out = append(out, code)
			i += n
			continue
		}

		if i > 0 {
			if n := matchRepeat(t, stream, i); n > 0 {
				out = append(out, byte(n))
				i += n
				continue
			}
		}

		b := stream[i]
		if b != 0x00 && (b < LiteralMin || b > LiteralMax) {
			return nil, fmt.Errorf("позиция %d: байт $%02X не кодируется литералом", i, b)
		}
		out = append(out, b)
		i++
	}
	return out, nil
}

// matchDict ищет самую длинную словарную последовательность,
// совпадающую с потоком начиная с pos. Индекс отсортирован по
// убыванию длины, поэтому первое совпадение и есть жадный выбор.
func matchDict(reverse []dictSeq, stream []byte, pos int) (byte, int) {
	for _, ds := range reverse {
		if len(ds.seq) > len(stream)-pos {
			continue
		}
		match := true
		for j, b := range ds.seq {
			if stream[pos+j] != b {
				match = false
				break
			}
		}
		if match {
			return ds.code, len(ds.seq)
		}
	}
	return 0, 0
}

// matchRepeat считает длину цепочки горизонтальных переходов от
// предыдущего байта потока, не длиннее максимального счётчика.
// Цепочка из одного нуля не считается: ноль дешевле записать как есть.
func matchRepeat(t *Tables, stream []byte, pos int) int {
	n := 0
	prev := stream[pos-1]
	for pos+n < len(stream) && n < RepeatMax {
		next := t.HorizNext(prev)
		if stream[pos+n] != next {
			break
		}
		prev = next
		n++
	}
	if n == 1 && stream[pos] == 0x00 {
		return 0
	}
	return n
}
