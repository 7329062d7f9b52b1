package tui

import (
	"fmt"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
	"github.com/idilsaglam/packlist/internal/ui"
)

const statsBarWidth = 28

// renderStats is the footer: progress message plus a bar.
func renderStats(t ui.Theme, items []model.Item, width int) string {
	s := packing.ComputeStats(items)

	msg := t.Pending.Italic(true).Render(s.Message())
	if s.Complete() {
		msg = t.Success.Italic(true).Render(s.Message())
	}

	barWidth := statsBarWidth
	if width > 0 && width-6 < barWidth {
		barWidth = width - 6
	}
	bar := ui.ProgressBar(t, s.Packed, s.Total, barWidth) + " " +
		t.Muted.Render(fmt.Sprintf("%3d%%", s.Percentage))
	return msg + "\n" + bar
}
