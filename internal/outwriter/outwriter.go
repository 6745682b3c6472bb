// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/sawamura/equisight/internal/contract"
	"github.com/sawamura/equisight/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for
// the command layer.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints an evaluation report using the configured output format.
func (ow *OutWriter) WriteReport(report *schema.Report, cfg *contract.Config, duration time.Duration) error {
	return PrintReport(report, cfg, duration)
}

// WriteMarket prints a market estimate using the configured output format.
func (ow *OutWriter) WriteMarket(est schema.MarketEstimate, cfg *contract.Config) error {
	return PrintMarketEstimate(est, cfg)
}

// WriteHistory prints persisted run records using the configured output format.
func (ow *OutWriter) WriteHistory(records []schema.RunRecord, cfg *contract.Config) error {
	return PrintHistory(records, cfg)
}

// WriteFormula prints the locked formula definitions using the configured
// output format.
func (ow *OutWriter) WriteFormula(cfg *contract.Config) error {
	return PrintFormulaDefinitions(cfg)
}
