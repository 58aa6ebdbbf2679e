package codec

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Границы кодов в сжатом потоке.
const (
	DictCodeBase = 0xE0 // первый словарный код
	DictCodes    = 32   // словарных кодов всего ($E0-$FF)
	RepeatMax    = 0x1F // максимальный счётчик повтора ($01-$1F)
	LiteralMin   = 0x20 // минимальный литерал
	LiteralMax   = 0xDF // максимальный литерал
)

// Tables содержит таблицы переходов одного формата сжатия.
// Terrain и greens используют один алгоритм, но разные таблицы.
type Tables struct {
	Horiz []byte // prev -> next при горизонтальном повторе
	Vert  []byte // above -> filled при вертикальной заливке
	Dict  []byte // 32 пары (первый байт, счётчик повторов)

	// Обратный индекс словаря: последовательности, отсортированные
	// по убыванию длины. Строится лениво при первом сжатии.
	reverse []dictSeq
}

// dictSeq - развёрнутая словарная последовательность и её код.
type dictSeq struct {
	code byte
	seq  []byte
}

// tablesJSON - представление таблиц в JSON-файле.
type tablesJSON struct {
	Horizontal []int `json:"horizontal"`
	Vertical   []int `json:"vertical"`
	Dictionary []int `json:"dictionary"`
}

// tableSetJSON - файл с таблицами для обоих форматов.
type tableSetJSON struct {
	Terrain tablesJSON `json:"terrain"`
	Greens  tablesJSON `json:"greens"`
}

// NewTables создаёт таблицы и проверяет их согласованность.
func NewTables(horiz, vert, dict []byte) (*Tables, error) {
	t := &Tables{Horiz: horiz, Vert: vert, Dict: dict}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tables) validate() error {
	if len(t.Horiz) == 0 || len(t.Horiz) > 256 {
		return fmt.Errorf("горизонтальная таблица: недопустимая длина %d", len(t.Horiz))
	}
	if len(t.Vert) == 0 || len(t.Vert) > 256 {
		return fmt.Errorf("вертикальная таблица: недопустимая длина %d", len(t.Vert))
	}
	if len(t.Dict) != DictCodes*2 {
		return fmt.Errorf("словарь: %d байт, ожидалось %d", len(t.Dict), DictCodes*2)
	}
	return nil
}

// HorizNext возвращает следующий байт горизонтального перехода.
// За пределами таблицы переход даёт ноль, как в оригинальном формате.
func (t *Tables) HorizNext(prev byte) byte {
	if int(prev) < len(t.Horiz) {
		return t.Horiz[prev]
	}
	return 0
}

// VertFill возвращает байт вертикальной заливки для байта сверху.
// Для значений вне таблицы заливка не определена, ноль остаётся нулём.
func (t *Tables) VertFill(above byte) (byte, bool) {
	if int(above) < len(t.Vert) {
		return t.Vert[above], true
	}
	return 0, false
}

// DictSequence разворачивает словарный код в последовательность байтов.
func (t *Tables) DictSequence(code byte) []byte {
	if code < DictCodeBase {
		return nil
	}
	idx := int(code-DictCodeBase) * 2
	first := t.Dict[idx]
	repeat := int(t.Dict[idx+1])

	seq := make([]byte, 0, repeat+1)
	seq = append(seq, first)
	for i := 0; i < repeat; i++ {
		seq = append(seq, t.HorizNext(seq[len(seq)-1]))
	}
	return seq
}

// reverseLookup строит индекс словаря для жадного поиска
// самой длинной последовательности.
func (t *Tables) reverseLookup() []dictSeq {
	if t.reverse != nil {
		return t.reverse
	}
	seqs := make([]dictSeq, 0, DictCodes)
	for i := 0; i < DictCodes; i++ {
		code := byte(DictCodeBase + i)
		seqs = append(seqs, dictSeq{code: code, seq: t.DictSequence(code)})
	}
	// Длинные последовательности первыми, при равной длине меньший код.
	sort.SliceStable(seqs, func(i, j int) bool {
		if len(seqs[i].seq) != len(seqs[j].seq) {
			return len(seqs[i].seq) > len(seqs[j].seq)
		}
		return seqs[i].code < seqs[j].code
	})
	t.reverse = seqs
	return seqs
}

// TableSet - таблицы для обеих частей лунки.
type TableSet struct {
	Terrain *Tables
	Greens  *Tables
}

// LoadTableSet читает таблицы сжатия из JSON-файла.
func LoadTableSet(path string) (*TableSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение таблиц %s: %w", path, err)
	}

	var raw tableSetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("разбор таблиц %s: %w", path, err)
	}

	terrain, err := tablesFromJSON(raw.Terrain)
	if err != nil {
		return nil, fmt.Errorf("таблицы terrain: %w", err)
	}
	greens, err := tablesFromJSON(raw.Greens)
	if err != nil {
		return nil, fmt.Errorf("таблицы greens: %w", err)
	}
	return &TableSet{Terrain: terrain, Greens: greens}, nil
}

func tablesFromJSON(raw tablesJSON) (*Tables, error) {
	toBytes := func(vals []int, name string) ([]byte, error) {
		out := make([]byte, len(vals))
		for i, v := range vals {
			if v < 0 || v > 0xFF {
				return nil, fmt.Errorf("%s[%d]: значение %d вне диапазона байта", name, i, v)
			}
			out[i] = byte(v)
		}
		return out, nil
	}

	horiz, err := toBytes(raw.Horizontal, "horizontal")
	if err != nil {
		return nil, err
	}
	vert, err := toBytes(raw.Vertical, "vertical")
	if err != nil {
		return nil, err
	}
	dict, err := toBytes(raw.Dictionary, "dictionary")
	if err != nil {
		return nil, err
	}
	return NewTables(horiz, vert, dict)
}
