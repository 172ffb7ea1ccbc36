package czech6x10

// glyphData holds glyphCount glyphs of glyphRows rows each, in glyphOrder.
// Bits are stored as 0b000xxxxx (bit4 = leftmost pixel).
var glyphData = [glyphCount * glyphRows]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // ' '
	0x00, 0x00, 0x04, 0x04, 0x04, 0x04, 0x04, 0x00, 0x04, 0x00, // '!'
	0x00, 0x00, 0x0a, 0x0a, 0x0a, 0x00, 0x00, 0x00, 0x00, 0x00, // '"'
	0x00, 0x00, 0x0a, 0x0a, 0x1f, 0x0a, 0x1f, 0x0a, 0x0a, 0x00, // '#'
	0x00, 0x00, 0x04, 0x0f, 0x14, 0x0e, 0x05, 0x1e, 0x04, 0x00, // '$'
	0x00, 0x00, 0x18, 0x19, 0x02, 0x04, 0x08, 0x13, 0x03, 0x00, // '%'
	0x00, 0x00, 0x0c, 0x12, 0x14, 0x08, 0x15, 0x12, 0x0d, 0x00, // '&'
	0x00, 0x00, 0x04, 0x04, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, // '\''
	0x00, 0x00, 0x02, 0x04, 0x08, 0x08, 0x08, 0x04, 0x02, 0x00, // '('
	0x00, 0x00, 0x08, 0x04, 0x02, 0x02, 0x02, 0x04, 0x08, 0x00, // ')'
	0x00, 0x00, 0x00, 0x04, 0x15, 0x0e, 0x15, 0x04, 0x00, 0x00, // '*'
	0x00, 0x00, 0x00, 0x04, 0x04, 0x1f, 0x04, 0x04, 0x00, 0x00, // '+'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0c, 0x04, 0x08, // ','
	0x00, 0x00, 0x00, 0x00, 0x00, 0x1f, 0x00, 0x00, 0x00, 0x00, // '-'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0c, 0x0c, 0x00, // '.'
	0x00, 0x00, 0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x00, 0x00, // '/'
	0x00, 0x00, 0x0e, 0x11, 0x13, 0x15, 0x19, 0x11, 0x0e, 0x00, // '0'
	0x00, 0x00, 0x04, 0x0c, 0x04, 0x04, 0x04, 0x04, 0x0e, 0x00, // '1'
	0x00, 0x00, 0x0e, 0x11, 0x01, 0x02, 0x04, 0x08, 0x1f, 0x00, // '2'
	0x00, 0x00, 0x1f, 0x02, 0x04, 0x02, 0x01, 0x11, 0x0e, 0x00, // '3'
	0x00, 0x00, 0x02, 0x06, 0x0a, 0x12, 0x1f, 0x02, 0x02, 0x00, // '4'
	0x00, 0x00, 0x1f, 0x10, 0x1e, 0x01, 0x01, 0x11, 0x0e, 0x00, // '5'
	0x00, 0x00, 0x06, 0x08, 0x10, 0x1e, 0x11, 0x11, 0x0e, 0x00, // '6'
	0x00, 0x00, 0x1f, 0x01, 0x02, 0x04, 0x08, 0x08, 0x08, 0x00, // '7'
	0x00, 0x00, 0x0e, 0x11, 0x11, 0x0e, 0x11, 0x11, 0x0e, 0x00, // '8'
	0x00, 0x00, 0x0e, 0x11, 0x11, 0x0f, 0x01, 0x02, 0x0c, 0x00, // '9'
	0x00, 0x00, 0x00, 0x0c, 0x0c, 0x00, 0x0c, 0x0c, 0x00, 0x00, // ':'
	0x00, 0x00, 0x00, 0x0c, 0x0c, 0x00, 0x0c, 0x04, 0x08, 0x00, // ';'
	0x00, 0x00, 0x02, 0x04, 0x08, 0x10, 0x08, 0x04, 0x02, 0x00, // '<'
	0x00, 0x00, 0x00, 0x00, 0x1f, 0x00, 0x1f, 0x00, 0x00, 0x00, // '='
	0x00, 0x00, 0x08, 0x04, 0x02, 0x01, 0x02, 0x04, 0x08, 0x00, // '>'
	0x00, 0x00, 0x0e, 0x11, 0x01, 0x02, 0x04, 0x00, 0x04, 0x00, // '?'
	0x00, 0x00, 0x0e, 0x11, 0x01, 0x0d, 0x15, 0x15, 0x0e, 0x00, // '@'
	0x00, 0x00, 0x0e, 0x11, 0x11, 0x1f, 0x11, 0x11, 0x11, 0x00, // 'A'
	0x00, 0x00, 0x1e, 0x11, 0x11, 0x1e, 0x11, 0x11, 0x1e, 0x00, // 'B'
	0x00, 0x00, 0x0e, 0x11, 0x10, 0x10, 0x10, 0x11, 0x0e, 0x00, // 'C'
	0x00, 0x00, 0x1c, 0x12, 0x11, 0x11, 0x11, 0x12, 0x1c, 0x00, // 'D'
	0x00, 0x00, 0x1f, 0x10, 0x10, 0x1e, 0x10, 0x10, 0x1f, 0x00, // 'E'
	0x00, 0x00, 0x1f, 0x10, 0x10, 0x1e, 0x10, 0x10, 0x10, 0x00, // 'F'
	0x00, 0x00, 0x0e, 0x11, 0x10, 0x17, 0x11, 0x11, 0x0f, 0x00, // 'G'
	0x00, 0x00, 0x11, 0x11, 0x11, 0x1f, 0x11, 0x11, 0x11, 0x00, // 'H'
	0x00, 0x00, 0x0e, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0e, 0x00, // 'I'
	0x00, 0x00, 0x07, 0x02, 0x02, 0x02, 0x02, 0x12, 0x0c, 0x00, // 'J'
	0x00, 0x00, 0x11, 0x12, 0x14, 0x18, 0x14, 0x12, 0x11, 0x00, // 'K'
	0x00, 0x00, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x1f, 0x00, // 'L'
	0x00, 0x00, 0x11, 0x1b, 0x15, 0x15, 0x11, 0x11, 0x11, 0x00, // 'M'
	0x00, 0x00, 0x11, 0x11, 0x19, 0x15, 0x13, 0x11, 0x11, 0x00, // 'N'
	0x00, 0x00, 0x0e, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0e, 0x00, // 'O'
	0x00, 0x00, 0x1e, 0x11, 0x11, 0x1e, 0x10, 0x10, 0x10, 0x00, // 'P'
	0x00, 0x00, 0x0e, 0x11, 0x11, 0x11, 0x15, 0x12, 0x0d, 0x00, // 'Q'
	0x00, 0x00, 0x1e, 0x11, 0x11, 0x1e, 0x14, 0x12, 0x11, 0x00, // 'R'
	0x00, 0x00, 0x0f, 0x10, 0x10, 0x0e, 0x01, 0x01, 0x1e, 0x00, // 'S'
	0x00, 0x00, 0x1f, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x00, // 'T'
	0x00, 0x00, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0e, 0x00, // 'U'
	0x00, 0x00, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0a, 0x04, 0x00, // 'V'
	0x00, 0x00, 0x11, 0x11, 0x11, 0x15, 0x15, 0x15, 0x0a, 0x00, // 'W'
	0x00, 0x00, 0x11, 0x11, 0x0a, 0x04, 0x0a, 0x11, 0x11, 0x00, // 'X'
	0x00, 0x00, 0x11, 0x11, 0x0a, 0x04, 0x04, 0x04, 0x04, 0x00, // 'Y'
	0x00, 0x00, 0x1f, 0x01, 0x02, 0x04, 0x08, 0x10, 0x1f, 0x00, // 'Z'
	0x00, 0x00, 0x0e, 0x08, 0x08, 0x08, 0x08, 0x08, 0x0e, 0x00, // '['
	0x00, 0x00, 0x00, 0x10, 0x08, 0x04, 0x02, 0x01, 0x00, 0x00, // '\\'
	0x00, 0x00, 0x0e, 0x02, 0x02, 0x02, 0x02, 0x02, 0x0e, 0x00, // ']'
	0x00, 0x00, 0x04, 0x0a, 0x11, 0x00, 0x00, 0x00, 0x00, 0x00, // '^'
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1f, 0x00, // '_'
	0x00, 0x00, 0x08, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // '`'
	0x00, 0x00, 0x00, 0x00, 0x0e, 0x01, 0x0f, 0x11, 0x0f, 0x00, // 'a'
	0x00, 0x00, 0x10, 0x10, 0x16, 0x19, 0x11, 0x11, 0x1e, 0x00, // 'b'
	0x00, 0x00, 0x00, 0x00, 0x0e, 0x10, 0x10, 0x11, 0x0e, 0x00, // 'c'
	0x00, 0x00, 0x01, 0x01, 0x0d, 0x13, 0x11, 0x11, 0x0f, 0x00, // 'd'
	0x00, 0x00, 0x00, 0x00, 0x0e, 0x11, 0x1f, 0x10, 0x0e, 0x00, // 'e'
	0x00, 0x00, 0x06, 0x09, 0x08, 0x1c, 0x08, 0x08, 0x08, 0x00, // 'f'
	0x00, 0x00, 0x00, 0x00, 0x0f, 0x11, 0x11, 0x0f, 0x01, 0x0e, // 'g'
	0x00, 0x00, 0x10, 0x10, 0x16, 0x19, 0x11, 0x11, 0x11, 0x00, // 'h'
	0x00, 0x00, 0x04, 0x00, 0x0c, 0x04, 0x04, 0x04, 0x0e, 0x00, // 'i'
	0x00, 0x00, 0x02, 0x00, 0x06, 0x02, 0x02, 0x02, 0x12, 0x0c, // 'j'
	0x00, 0x00, 0x10, 0x10, 0x12, 0x14, 0x18, 0x14, 0x12, 0x00, // 'k'
	0x00, 0x00, 0x0c, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0e, 0x00, // 'l'
	0x00, 0x00, 0x00, 0x00, 0x1a, 0x15, 0x15, 0x11, 0x11, 0x00, // 'm'
	0x00, 0x00, 0x00, 0x00, 0x16, 0x19, 0x11, 0x11, 0x11, 0x00, // 'n'
	0x00, 0x00, 0x00, 0x00, 0x0e, 0x11, 0x11, 0x11, 0x0e, 0x00, // 'o'
	0x00, 0x00, 0x00, 0x00, 0x1e, 0x11, 0x11, 0x1e, 0x10, 0x10, // 'p'
	0x00, 0x00, 0x00, 0x00, 0x0f, 0x11, 0x11, 0x0f, 0x01, 0x01, // 'q'
	0x00, 0x00, 0x00, 0x00, 0x16, 0x19, 0x10, 0x10, 0x10, 0x00, // 'r'
	0x00, 0x00, 0x00, 0x00, 0x0e, 0x10, 0x0e, 0x01, 0x1e, 0x00, // 's'
	0x00, 0x00, 0x08, 0x08, 0x1c, 0x08, 0x08, 0x09, 0x06, 0x00, // 't'
	0x00, 0x00, 0x00, 0x00, 0x11, 0x11, 0x11, 0x13, 0x0d, 0x00, // 'u'
	0x00, 0x00, 0x00, 0x00, 0x11, 0x11, 0x11, 0x0a, 0x04, 0x00, // 'v'
	0x00, 0x00, 0x00, 0x00, 0x11, 0x11, 0x15, 0x15, 0x0a, 0x00, // 'w'
	0x00, 0x00, 0x00, 0x00, 0x11, 0x0a, 0x04, 0x0a, 0x11, 0x00, // 'x'
	0x00, 0x00, 0x00, 0x00, 0x11, 0x11, 0x11, 0x0f, 0x01, 0x0e, // 'y'
	0x00, 0x00, 0x00, 0x00, 0x1f, 0x02, 0x04, 0x08, 0x1f, 0x00, // 'z'
	0x00, 0x00, 0x02, 0x04, 0x04, 0x08, 0x04, 0x04, 0x02, 0x00, // '{'
	0x00, 0x00, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x00, // '|'
	0x00, 0x00, 0x08, 0x04, 0x04, 0x02, 0x04, 0x04, 0x08, 0x00, // '}'
	0x00, 0x00, 0x00, 0x00, 0x08, 0x15, 0x02, 0x00, 0x00, 0x00, // '~'
	0x00, 0x00, 0x0c, 0x12, 0x12, 0x0c, 0x00, 0x00, 0x00, 0x00, // '°'
	0x02, 0x04, 0x0e, 0x11, 0x11, 0x1f, 0x11, 0x11, 0x11, 0x00, // 'Á'
	0x02, 0x04, 0x1f, 0x10, 0x10, 0x1e, 0x10, 0x10, 0x1f, 0x00, // 'É'
	0x02, 0x04, 0x0e, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0e, 0x00, // 'Í'
	0x02, 0x04, 0x0e, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0e, 0x00, // 'Ó'
	0x02, 0x04, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0e, 0x00, // 'Ú'
	0x02, 0x04, 0x11, 0x11, 0x0a, 0x04, 0x04, 0x04, 0x04, 0x00, // 'Ý'
	0x00, 0x00, 0x02, 0x04, 0x0e, 0x01, 0x0f, 0x11, 0x0f, 0x00, // 'á'
	0x00, 0x00, 0x02, 0x04, 0x0e, 0x11, 0x1f, 0x10, 0x0e, 0x00, // 'é'
	0x00, 0x00, 0x02, 0x04, 0x0c, 0x04, 0x04, 0x04, 0x0e, 0x00, // 'í'
	0x00, 0x00, 0x02, 0x04, 0x0e, 0x11, 0x11, 0x11, 0x0e, 0x00, // 'ó'
	0x00, 0x00, 0x02, 0x04, 0x11, 0x11, 0x11, 0x13, 0x0d, 0x00, // 'ú'
	0x00, 0x00, 0x02, 0x04, 0x11, 0x11, 0x11, 0x0f, 0x01, 0x0e, // 'ý'
	0x0a, 0x04, 0x0e, 0x11, 0x10, 0x10, 0x10, 0x11, 0x0e, 0x00, // 'Č'
	0x00, 0x00, 0x0a, 0x04, 0x0e, 0x10, 0x10, 0x11, 0x0e, 0x00, // 'č'
	0x0a, 0x04, 0x1c, 0x12, 0x11, 0x11, 0x11, 0x12, 0x1c, 0x00, // 'Ď'
	0x00, 0x01, 0x03, 0x01, 0x0d, 0x13, 0x11, 0x11, 0x0f, 0x00, // 'ď'
	0x0a, 0x04, 0x1f, 0x10, 0x10, 0x1e, 0x10, 0x10, 0x1f, 0x00, // 'Ě'
	0x00, 0x00, 0x0a, 0x04, 0x0e, 0x11, 0x1f, 0x10, 0x0e, 0x00, // 'ě'
	0x0a, 0x04, 0x11, 0x11, 0x19, 0x15, 0x13, 0x11, 0x11, 0x00, // 'Ň'
	0x00, 0x00, 0x0a, 0x04, 0x16, 0x19, 0x11, 0x11, 0x11, 0x00, // 'ň'
	0x0a, 0x04, 0x1e, 0x11, 0x11, 0x1e, 0x14, 0x12, 0x11, 0x00, // 'Ř'
	0x00, 0x00, 0x0a, 0x04, 0x16, 0x19, 0x10, 0x10, 0x10, 0x00, // 'ř'
	0x0a, 0x04, 0x0f, 0x10, 0x10, 0x0e, 0x01, 0x01, 0x1e, 0x00, // 'Š'
	0x00, 0x00, 0x0a, 0x04, 0x0e, 0x10, 0x0e, 0x01, 0x1e, 0x00, // 'š'
	0x0a, 0x04, 0x1f, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04, 0x00, // 'Ť'
	0x00, 0x02, 0x0a, 0x08, 0x1c, 0x08, 0x08, 0x09, 0x06, 0x00, // 'ť'
	0x04, 0x0a, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0e, 0x00, // 'Ů'
	0x00, 0x00, 0x04, 0x0a, 0x11, 0x11, 0x11, 0x13, 0x0d, 0x00, // 'ů'
	0x0a, 0x04, 0x1f, 0x01, 0x02, 0x04, 0x08, 0x10, 0x1f, 0x00, // 'Ž'
	0x00, 0x00, 0x0a, 0x04, 0x1f, 0x02, 0x04, 0x08, 0x1f, 0x00, // 'ž'
	0x00, 0x00, 0x1f, 0x11, 0x11, 0x11, 0x11, 0x11, 0x1f, 0x00, // fallback box
}
