package cpu

import (
	"fmt"
)

// LINE_WIDTH is the minimum width of a reformatted line.
const LINE_WIDTH = 41

// FormatLine regenerates the comment of a line of TOY code, padding the
// result to LINE_WIDTH. Any other text is returned unchanged.
func FormatLine(text string) string {
	return FormatLineWidth(text, LINE_WIDTH)
}

// FormatLineWidth is FormatLine with an explicit minimum width.
func FormatLineWidth(text string, width int) string {
	line, err := Decode(text)
	if err != nil {
		return text
	}

	formatted := fmt.Sprintf("%02X: %v   %v", line.Address, line.Code, line.Describe())
	return fmt.Sprintf("%-*s", width, formatted)
}

// Reformat formats every line of a source file.
func Reformat(lines []string) []string {
	return ReformatWidth(lines, LINE_WIDTH)
}

// ReformatWidth is Reformat with an explicit minimum width.
func ReformatWidth(lines []string, width int) (out []string) {
	out = make([]string, len(lines))
	for n, text := range lines {
		out[n] = FormatLineWidth(text, width)
	}

	return
}
