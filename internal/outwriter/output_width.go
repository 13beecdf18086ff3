package outwriter

import (
	"os"

	"github.com/huangsam/healthdash/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableLabelWidth calculates the maximum width for free-text cells in table
// output (country names and point lists) based on terminal width.
func GetMaxTableLabelWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Series + Mode + Points columns with borders/padding
	baseWidth := 40

	// Remaining space is split between the X and Y columns
	available := (termWidth - baseWidth) / 2
	if available < 12 {
		return 12
	}
	if available > 60 {
		return 60
	}
	return available
}
