package pretty

import (
	"fmt"
	"strings"

	"github.com/dreandnought/TreeWatcher/pkg/loader"
)

// FormatStatsOneLine formats load statistics as a single line.
// Example: "214 entries (37 folders, 177 files), depth 6".
func (s *Styles) FormatStatsOneLine(stats loader.Stats) string {
	entries := stats.Folders + stats.Leaves

	entryWord := "entries"
	if entries == 1 {
		entryWord = "entry"
	}

	breakdown := fmt.Sprintf("%s, %s",
		s.SummaryValue.Render(fmt.Sprintf("%d folders", stats.Folders)),
		s.SummaryValue.Render(fmt.Sprintf("%d files", stats.Leaves)),
	)

	return fmt.Sprintf("%d %s (%s), depth %d",
		entries, entryWord, breakdown, stats.MaxDepth)
}

// FormatStatsBlock formats load statistics as an aligned block.
func (s *Styles) FormatStatsBlock(stats loader.Stats) string {
	var b strings.Builder

	b.WriteString(s.SummaryTitle.Render("Listing") + "\n")
	writeStat(&b, s, "lines read", stats.LinesRead)
	writeStat(&b, s, "banner lines", stats.BannerLines)
	writeStat(&b, s, "spacer lines", stats.SpacerLines)
	writeStat(&b, s, "items parsed", stats.ItemsParsed)

	b.WriteString(s.SummaryTitle.Render("Tree") + "\n")
	writeStat(&b, s, "folders", stats.Folders)
	writeStat(&b, s, "files", stats.Leaves)
	writeStat(&b, s, "max depth", stats.MaxDepth)

	return b.String()
}

func writeStat(b *strings.Builder, s *Styles, label string, value int) {
	fmt.Fprintf(b, "  %-14s %s\n", label, s.SummaryValue.Render(fmt.Sprintf("%d", value)))
}
