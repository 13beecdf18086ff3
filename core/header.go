package core

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huangsam/healthdash/internal/contract"
)

// headerOut is where run headers go; stdout is reserved for results.
var headerOut io.Writer = os.Stderr

// logNormalizeHeader prints a concise, 2-line header for a normalize run.
func logNormalizeHeader(cfg *contract.Config) {
	_, _ = fmt.Fprintf(headerOut, "📄 Dataset: %s (Format: %s)\n", cfg.InputPath, cfg.Format)
	_, _ = fmt.Fprintf(headerOut, "🧹 Columns: %s → %d countries\n", strings.Join(cfg.ValueColumns, ", "), len(cfg.Countries))
}

// logFiguresHeader prints a concise, 2-line header for a figures run.
func logFiguresHeader(cfg *contract.Config) {
	_, _ = fmt.Fprintf(headerOut, "📄 Cholesterol: %s | BMI: %s\n", cfg.CholesterolPath, cfg.BMIPath)
	_, _ = fmt.Fprintf(headerOut, "📊 Columns: %s → %d countries\n", strings.Join(cfg.ValueColumns, ", "), len(cfg.Countries))
}
