package textutil

import "strings"

// formattingRuneLabels names bidi and zero-width runes. They are shown as
// visible labels so a document cannot reorder or hide text on screen.
var formattingRuneLabels = map[rune]string{
	0x00AD: "⟪SHY⟫",
	0x061C: "⟪ALM⟫",
	0x180E: "⟪MVS⟫",
	0x200B: "⟪ZWSP⟫",
	0x200C: "⟪ZWNJ⟫",
	0x200E: "⟪LRM⟫",
	0x200F: "⟪RLM⟫",
	0x2028: "⟪LSEP⟫",
	0x2029: "⟪PSEP⟫",
	0x202A: "⟪LRE⟫",
	0x202B: "⟪RLE⟫",
	0x202C: "⟪PDF⟫",
	0x202D: "⟪LRO⟫",
	0x202E: "⟪RLO⟫",
	0x2060: "⟪WJ⟫",
	0x2066: "⟪LRI⟫",
	0x2067: "⟪RLI⟫",
	0x2068: "⟪FSI⟫",
	0x2069: "⟪PDI⟫",
	0xFEFF: "⟪BOM⟫",
}

// SanitizeTerminalText makes document text safe to write to a terminal.
// Control characters (including ESC) become '?', line breaks and tabs
// become spaces, and formatting runes become visible labels. ZWJ is kept
// because emoji sequences depend on it.
func SanitizeTerminalText(text string) string {
	for _, r := range text {
		if needsSanitizing(r) {
			return sanitize(text)
		}
	}
	return text
}

// HasFormattingRunes reports whether text contains bidi or zero-width
// formatting runes.
func HasFormattingRunes(text string) bool {
	for _, r := range text {
		if _, ok := formattingRuneLabels[r]; ok {
			return true
		}
	}
	return false
}

func needsSanitizing(r rune) bool {
	if _, ok := formattingRuneLabels[r]; ok {
		return true
	}
	return r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0)
}

func sanitize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if label, ok := formattingRuneLabels[r]; ok {
			b.WriteString(label)
			continue
		}
		switch {
		case r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		case r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0):
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
