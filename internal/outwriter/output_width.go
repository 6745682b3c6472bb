package outwriter

import (
	"os"

	"github.com/sawamura/equisight/internal/contract"
	"golang.org/x/term"
)

// GetMaxCommentWidth calculates the wrap width for the narrative comment
// based on terminal width and table configuration.
func GetMaxCommentWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for table borders and padding
	available := termWidth - 10
	if available < 30 {
		return 30
	}
	if available > 100 {
		return 100
	}
	return available
}
