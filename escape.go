package luna

// Three fixed, read-only maps from 1-, 2-, and 3-letter escape mnemonics to
// character codes. Small closed tables, so a linear/map scan is fine; Go's
// built-in map is the idiomatic read-only-lookup-table choice, so no
// third-party perfect-hash library is warranted here.

var escape1 = map[string]rune{
	"a": '\a', "b": '\b', "f": '\f', "n": '\n', "r": '\r',
	"t": '\t', "v": '\v', "'": '\'', "\"": '"',
}

var escape2 = map[string]rune{
	"BS": 0x08, "HT": 0x09, "LF": 0x0A, "VT": 0x0B, "FF": 0x0C, "CR": 0x0D,
	"SO": 0x0E, "SI": 0x0F, "EM": 0x19, "FS": 0x1C, "GS": 0x1D, "RS": 0x1E,
	"US": 0x1F, "SP": 0x20,
}

var escape3 = map[string]rune{
	"NUL": 0x00, "SOH": 0x01, "STX": 0x02, "ETX": 0x03, "EOT": 0x04,
	"ENQ": 0x05, "ACK": 0x06, "BEL": 0x07, "DLE": 0x10, "DC1": 0x11,
	"DC2": 0x12, "DC3": 0x13, "DC4": 0x14, "NAK": 0x15, "SYN": 0x16,
	"ETB": 0x17, "CAN": 0x18, "SUB": 0x1A, "ESC": 0x1B, "DEL": 0x7F,
}
