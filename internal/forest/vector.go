package forest

import "strings"

// FlagPair содержит флаги требований, предъявляемых тайлом в одном
// направлении. Ширина направления фиксирована семейством (1 или 2);
// у направления ширины 1 слот B всегда false.
type FlagPair struct {
	A, B bool
}

// any возвращает true, если установлен хотя бы один флаг
func (p FlagPair) any() bool { return p.A || p.B }

// ReqVector — вектор требований тайла: флаги по каждому из четырёх
// направлений. Равенство векторов сравнивается послотно, ширина
// направлений при этом одинакова внутри семейства.
type ReqVector struct {
	N, E, S, W FlagPair
}

// Get возвращает флаги в указанном направлении
func (v ReqVector) Get(d Direction) FlagPair {
	switch d {
	case North:
		return v.N
	case East:
		return v.E
	case South:
		return v.S
	default:
		return v.W
	}
}

// setSlot устанавливает флаг слота в указанном направлении
func (v *ReqVector) setSlot(d Direction, slot uint8) {
	p := v.Get(d)
	if slot == 0 {
		p.A = true
	} else {
		p.B = true
	}
	switch d {
	case North:
		v.N = p
	case East:
		v.E = p
	case South:
		v.S = p
	default:
		v.W = p
	}
}

// ClearDirection сбрасывает все флаги в указанном направлении.
// Используется правилом сброса: сосед в направлении отсутствует.
func (v ReqVector) ClearDirection(d Direction) ReqVector {
	switch d {
	case North:
		v.N = FlagPair{}
	case East:
		v.E = FlagPair{}
	case South:
		v.S = FlagPair{}
	default:
		v.W = FlagPair{}
	}
	return v
}

// IsZero возвращает true, если ни один флаг не установлен
func (v ReqVector) IsZero() bool {
	return !v.N.any() && !v.E.any() && !v.S.any() && !v.W.any()
}

// Pack упаковывает вектор в один байт для поиска по каталогу.
// Раскладка бит: N.A, N.B, E.A, E.B, S.A, S.B, W.A, W.B (от младшего).
func (v ReqVector) Pack() uint8 {
	var b uint8
	pairs := [4]FlagPair{v.N, v.E, v.S, v.W}
	for i, p := range pairs {
		if p.A {
			b |= 1 << (uint(i) * 2)
		}
		if p.B {
			b |= 1 << (uint(i)*2 + 1)
		}
	}
	return b
}

// String форматирует вектор для сообщений об ошибках, например "N[1] E[11] S[0] W[0]"
func (v ReqVector) String() string {
	var sb strings.Builder
	dirs := [4]Direction{North, East, South, West}
	for i, d := range dirs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(d.String())
		sb.WriteByte('[')
		p := v.Get(d)
		sb.WriteByte(flagChar(p.A))
		if p.B {
			sb.WriteByte(flagChar(p.B))
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

func flagChar(b bool) byte {
	if b {
		return '1'
	}
	return '0'
}
