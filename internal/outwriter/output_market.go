package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/sawamura/equisight/internal/contract"
	"github.com/sawamura/equisight/schema"
)

// PrintMarketEstimate outputs a market estimate, dispatching based on the
// output format configured.
func PrintMarketEstimate(est schema.MarketEstimate, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, est)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMarketCSV(w, est)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMarketText(w, est)
		}, "Wrote text")
	}
}

// writeMarketText renders the estimate as a short human-readable block.
func writeMarketText(w io.Writer, est schema.MarketEstimate) error {
	if _, err := fmt.Fprintf(w, "💰 推定価格帯: %s 〜 %s\n", fmtYen(est.YenLow), fmtYen(est.YenHigh)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "   種牡馬アンカー: %s\n", fmtYen(est.Anchor)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "   %s\n   %s\n", est.Source.JA, est.Source.EN); err != nil {
		return err
	}
	return nil
}

// writeMarketCSV writes the estimate as a single CSV record.
func writeMarketCSV(w io.Writer, est schema.MarketEstimate) error {
	header := []string{"yen_low", "yen_high", "anchor", "source"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		rec := []string{
			strconv.FormatInt(est.YenLow, 10),
			strconv.FormatInt(est.YenHigh, 10),
			strconv.FormatInt(est.Anchor, 10),
			est.Source.EN,
		}
		return cw.Write(rec)
	})
}
