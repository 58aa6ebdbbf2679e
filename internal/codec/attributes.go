package codec

// Раскладка NES-атрибутов: один байт покрывает мегатайл 4x4 тайла,
// то есть четыре супертайла 2x2. Строка атрибутов - 6 байт, она
// покрывает 12 колонок супертайлов, из которых первая занята HUD.
const (
	attrMegaCols   = 6
	attrCourseCols = 11
)

// UnpackAttributes распаковывает байты атрибутов в индексы палитр
// по супертайлам. Колонка HUD пропускается, остаются 11 колонок поля.
func UnpackAttributes(attrBytes []byte, numRows int) [][]int {
	rows := make([][]int, 0, numRows)
	idx := 0

	for mega := 0; mega < numRows/2; mega++ {
		top := make([]int, 0, attrMegaCols*2)
		bottom := make([]int, 0, attrMegaCols*2)

		for col := 0; col < attrMegaCols && idx < len(attrBytes); col++ {
			attr := attrBytes[idx]
			idx++

			top = append(top, int(attr&0x03), int(attr>>2&0x03))
			bottom = append(bottom, int(attr>>4&0x03), int(attr>>6&0x03))
		}

		rows = append(rows, trimCourseCols(top), trimCourseCols(bottom))
	}

	if len(rows) > numRows {
		rows = rows[:numRows]
	}
	return rows
}

// PackAttributes собирает индексы палитр обратно в байты атрибутов.
// Колонка HUD получает индекс 0.
func PackAttributes(rows [][]int) []byte {
	out := make([]byte, 0, (len(rows)+1)/2*attrMegaCols)

	for mega := 0; mega*2 < len(rows); mega++ {
		top := padHUDColumn(rows[mega*2])
		bottom := top
		if mega*2+1 < len(rows) {
			bottom = padHUDColumn(rows[mega*2+1])
		}

		for col := 0; col < attrMegaCols; col++ {
			attr := byte(top[col*2] & 0x03)
			attr |= byte(top[col*2+1]&0x03) << 2
			attr |= byte(bottom[col*2]&0x03) << 4
			attr |= byte(bottom[col*2+1]&0x03) << 6
			out = append(out, attr)
		}
	}
	return out
}

// trimCourseCols отбрасывает колонку HUD и оставляет 11 колонок поля.
func trimCourseCols(cols []int) []int {
	if len(cols) <= 1 {
		return nil
	}
	end := min(len(cols), 1+attrCourseCols)
	out := make([]int, end-1)
	copy(out, cols[1:end])
	return out
}

// padHUDColumn возвращает строку из 12 колонок с нулевым HUD слева.
func padHUDColumn(course []int) []int {
	full := make([]int, attrMegaCols*2)
	copy(full[1:], course)
	return full
}

// BCDToInt переводит три BCD-байта дистанции в число ярдов.
func BCDToInt(hundreds, tens, ones byte) int {
	h := (int(hundreds>>4)*10 + int(hundreds&0x0F)) * 100
	t := (int(tens>>4)*10 + int(tens&0x0F)) * 10
	o := int(ones>>4)*10 + int(ones&0x0F)
	return h + t + o
}

// IntToBCD раскладывает число ярдов обратно на три BCD-байта.
// Средний байт остаётся нулевым, остаток дистанции кодируется
// двумя BCD-цифрами младшего байта.
func IntToBCD(v int) (hundreds, tens, ones byte) {
	toBCD := func(n int) byte {
		return byte(n/10<<4 | n%10)
	}
	return toBCD(v / 100 % 100), 0, toBCD(v % 100)
}
