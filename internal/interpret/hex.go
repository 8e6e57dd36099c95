package interpret

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Hex shows the raw byte encoding of the content. It applies to every input,
// including the empty string.
type Hex struct{}

func (Hex) Name() string { return "Hex Dump" }

func (Hex) Interpret(content string) *Result {
	b := []byte(content)

	spaced := make([]string, len(b))
	for i, c := range b {
		spaced[i] = fmt.Sprintf("%02x", c)
	}

	return &Result{Items: []Item{
		textItem("Bytes", strconv.Itoa(len(b))),
		// Rune count is computed by decoding; for multi-byte encodings it is
		// smaller than the byte count.
		textItem("Chars (UTF-8)", strconv.Itoa(utf8.RuneCountInString(content))),
		textItem("Hex bytes", strings.Join(spaced, " ")),
		textItem("Compact hex", hex.EncodeToString(b)),
		textItem("Dump", dump(b)),
	}}
}

// dump renders the classic offset / hex / ASCII layout, 16 bytes per row.
func dump(b []byte) string {
	var rows []string
	for off := 0; off < len(b); off += 16 {
		chunk := b[off:min(off+16, len(b))]

		hexCols := make([]string, len(chunk))
		ascii := make([]byte, len(chunk))
		for i, c := range chunk {
			hexCols[i] = fmt.Sprintf("%02x", c)
			if c >= 0x20 && c < 0x7f {
				ascii[i] = c
			} else {
				ascii[i] = '.'
			}
		}
		rows = append(rows, fmt.Sprintf("%04x  %-47s  %s", off, strings.Join(hexCols, " "), ascii))
	}
	return strings.Join(rows, "\n")
}
