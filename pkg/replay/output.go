package replay

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/c9s/peaktrack/pkg/indicator/peakbidask"
	"github.com/c9s/peaktrack/pkg/style"
)

// PrintSnapshots renders the snapshots as a table. A nil tableStyle falls
// back to the plain style without colored cells.
func PrintSnapshots(w io.Writer, title string, snapshots []Snapshot, tableStyle *table.Style) {
	withColor := tableStyle != nil
	if tableStyle == nil {
		tableStyle = style.NewPlainTableStyle()
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*tableStyle)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"#", "round", "price", "peak bid", "peak ask", "peak mid", "spread", "rep", "smoothed", "exit bid", "exit ask"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
		{Number: 9, Align: text.AlignRight},
		{Number: 10, Align: text.AlignRight},
		{Number: 11, Align: text.AlignRight},
	})

	for _, s := range snapshots {
		spread := fmt.Sprintf("%.6f", s.PeakSpread)
		if withColor {
			spread = style.SpreadColors(s.Reported, s.PeakSpread, peakbidask.MaxActionableSpread).Sprint(spread)
		}

		smoothed := "-"
		if s.Ready {
			smoothed = fmt.Sprintf("%.6f", s.Smoothed)
		}

		t.AppendRow(table.Row{
			s.Index,
			s.Round,
			s.Price,
			s.PeakBid,
			s.PeakAsk,
			s.PeakMid,
			spread,
			style.ReportedString(s.Reported),
			smoothed,
			s.ExitBid.StringFixed(8),
			s.ExitAsk.StringFixed(8),
		})
	}

	t.Render()
}
