package engine

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// AbsentCell marks a missing value in table output. A country with no
// data renders this, never a zero.
const AbsentCell = "—"

var printer = message.NewPrinter(language.English)

// FormatCount renders a numeric value as a thousands-grouped integer.
func FormatCount(v float64) string {
	return printer.Sprintf("%d", int64(v))
}
