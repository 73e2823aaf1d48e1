package style

import (
	"github.com/jedib0t/go-pretty/v6/text"
)

var ReportedMark = "✔"

// SpreadColors colors a spread cell: green when the tick reported it,
// red when it is too wide to be used.
func SpreadColors(reported bool, spread, maxSpread float64) text.Colors {
	if reported {
		return text.Colors{text.FgHiGreen}
	}

	if spread >= maxSpread {
		return text.Colors{text.FgHiRed}
	}

	return nil
}

func ReportedString(reported bool) string {
	if reported {
		return ReportedMark
	}
	return ""
}
