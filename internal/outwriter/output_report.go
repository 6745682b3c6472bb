package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/sawamura/equisight/internal/contract"
	"github.com/sawamura/equisight/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintReport outputs an evaluation report, dispatching based on the output
// format configured.
func PrintReport(report *schema.Report, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportCSV(w, report)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(report, cfg, duration, w)
		}, "Wrote table")
	}
}

// writeReportTable generates and writes the human-readable report.
func writeReportTable(report *schema.Report, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	// 1. Headline: total, rank, stars, confidence
	if _, err := fmt.Fprintf(writer, "🐎 総合評価 %d点  ランク %s  %s  (信頼度 %.2f)\n",
		report.Total, contract.GetColorRank(report.Rank), report.Stars, report.Confidence); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "想定距離: %.0fm (%s)  算定: %s\n\n",
		report.Debug.DistanceM, report.Bucket, report.AlgoVersion); err != nil {
		return err
	}

	// 2. Trait table
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Trait", "能力", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, row := range report.Display {
		data = append(data, []string{row.LabelEN, row.LabelJA, strconv.Itoa(row.Value)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// 3. Narrative
	width := GetMaxCommentWidth(cfg)
	if _, err := fmt.Fprintf(writer, "\n%s\n%s\n", wrapText(report.Comment.JA, width), wrapText(report.Comment.EN, width)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "\n適性: %s / %s\n根拠: %s\n", report.Surface.JA, report.Surface.EN, report.Reason.JA); err != nil {
		return err
	}

	// 4. Diagnostic notes
	if err := writeNotes(writer, report.Notes); err != nil {
		return err
	}

	// 5. Explain block: intermediate indices
	if cfg.Explain {
		idx := report.Debug.Indices
		if _, err := fmt.Fprintf(writer,
			"\n中間指標: body=%.2f photo=%.2f motion=%.2f speed=%.2f accel=%.2f stability=%.2f pedigree=%.2f\n",
			idx.Body, idx.Photo, idx.Motion, idx.Speed, idx.Accel, idx.Stability, idx.Pedigree); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(writer, "alpha=%.3f turfiness=%.3f speed*=%.2f risk*=%.2f\n",
			report.Ability.Alpha, report.Ability.Turfiness, report.Ability.SpeedStar, report.Ability.RiskStar); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "\nEvaluation completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeNotes prints the per-category diagnostic notes.
func writeNotes(w io.Writer, notes schema.Notes) error {
	categories := []struct {
		label string
		items []string
	}{
		{"馬体", notes.Body},
		{"写真", notes.Photo},
		{"動画", notes.Video},
		{"血統", notes.Pedigree},
	}
	for _, c := range categories {
		for _, item := range c.items {
			if _, err := fmt.Fprintf(w, "  [%s] %s\n", c.label, item); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeReportCSV writes the report as one flat record per trait plus a
// summary record, suitable for spreadsheet import.
func writeReportCSV(w io.Writer, report *schema.Report) error {
	header := []string{
		"algo_version", "total", "rank", "stars", "confidence",
		"ability", "alpha", "turfiness", "bucket", "pattern",
		"speed", "power", "stamina", "durability", "risk", "acceleration", "stability",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		t := report.Traits
		rec := []string{
			report.AlgoVersion,
			strconv.Itoa(report.Total),
			string(report.Rank),
			strconv.Itoa(report.StarCount),
			fmtFloat2(report.Confidence),
			fmtFloat2(report.Ability.Ability),
			fmt.Sprintf("%.3f", report.Ability.Alpha),
			fmt.Sprintf("%.3f", report.Ability.Turfiness),
			string(report.Bucket),
			string(report.Pattern),
			fmtFloat2(t.Speed), fmtFloat2(t.Power), fmtFloat2(t.Stamina),
			fmtFloat2(t.Durability), fmtFloat2(t.Risk), fmtFloat2(t.Acceleration), fmtFloat2(t.Stability),
		}
		return cw.Write(rec)
	})
}

// wrapText soft-wraps s at width runes, breaking on rune boundaries so
// Japanese text wraps cleanly.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	var out []rune
	count := 0
	for _, r := range runes {
		out = append(out, r)
		count++
		if count >= width && r != '\n' {
			out = append(out, '\n')
			count = 0
		}
	}
	return string(out)
}
