package sprites

// Glyphs for the scrolling-text animations. Column-major like the classic
// 5x7 matrix fonts: each byte is one column, bit 0 the top row. The set
// covers what the arcade actually scrolls (titles and scores); unknown runes
// render as a blank column.
var glyphs = map[rune][]byte{
	'0': {0x3e, 0x51, 0x49, 0x45, 0x3e},
	'1': {0x00, 0x42, 0x7f, 0x40, 0x00},
	'2': {0x42, 0x61, 0x51, 0x49, 0x46},
	'3': {0x21, 0x41, 0x45, 0x4b, 0x31},
	'4': {0x18, 0x14, 0x12, 0x7f, 0x10},
	'5': {0x27, 0x45, 0x45, 0x45, 0x39},
	'6': {0x3c, 0x4a, 0x49, 0x49, 0x30},
	'7': {0x01, 0x71, 0x09, 0x05, 0x03},
	'8': {0x36, 0x49, 0x49, 0x49, 0x36},
	'9': {0x06, 0x49, 0x49, 0x29, 0x1e},
	'A': {0x7e, 0x11, 0x11, 0x11, 0x7e},
	'C': {0x3e, 0x41, 0x41, 0x41, 0x22},
	'E': {0x7f, 0x49, 0x49, 0x49, 0x41},
	'G': {0x3e, 0x41, 0x49, 0x49, 0x3a},
	'K': {0x7f, 0x08, 0x14, 0x22, 0x41},
	'L': {0x7f, 0x40, 0x40, 0x40, 0x40},
	'M': {0x7f, 0x02, 0x04, 0x02, 0x7f},
	'N': {0x7f, 0x04, 0x08, 0x10, 0x7f},
	'O': {0x3e, 0x41, 0x41, 0x41, 0x3e},
	'R': {0x7f, 0x09, 0x19, 0x29, 0x46},
	'S': {0x46, 0x49, 0x49, 0x49, 0x31},
	'V': {0x1f, 0x20, 0x40, 0x20, 0x1f},
	'!': {0x5f},
}

// Glyph returns the column bytes for a single rune, and whether the font
// covers it.
func Glyph(r rune) ([]byte, bool) {
	g, ok := glyphs[r]
	return g, ok
}

// TextColumns lays the message out as a strip of column bytes with one blank
// column between glyphs and two for a space, padded with a full frame width
// on both ends so the text scrolls in from the right and out to the left.
func TextColumns(text string) []byte {
	cols := make([]byte, 0, len(text)*6+16)
	cols = append(cols, make([]byte, 8)...)

	for _, r := range text {
		if r == ' ' {
			cols = append(cols, 0x00, 0x00)
			continue
		}
		glyph, ok := glyphs[r]
		if !ok {
			cols = append(cols, 0x00)
			continue
		}
		cols = append(cols, glyph...)
		cols = append(cols, 0x00)
	}

	cols = append(cols, make([]byte, 8)...)
	return cols
}
