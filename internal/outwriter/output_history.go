package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/sawamura/equisight/internal/contract"
	"github.com/sawamura/equisight/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintHistory outputs persisted run records, dispatching based on the
// output format configured.
func PrintHistory(records []schema.RunRecord, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, records)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryCSV(w, records)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryTable(w, records)
		}, "Wrote table")
	}
}

// writeHistoryTable generates and writes the human-readable run table.
func writeHistoryTable(w io.Writer, records []schema.RunRecord) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Time", "Sire", "Dist", "Ability", "Rank", "Stars", "Conf", "Pattern"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range records {
		data = append(data, []string{
			strconv.FormatInt(r.RunID, 10),
			r.RunTime,
			r.Sire,
			fmt.Sprintf("%.0f", r.DistanceM),
			fmtFloat2(r.Ability),
			contract.GetColorRank(schema.Rank(r.Rank)),
			strconv.Itoa(r.Stars),
			fmtFloat2(r.Confidence),
			r.Pattern,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d stored runs\n", len(records))
	return err
}

// writeHistoryCSV writes the run records in CSV format.
func writeHistoryCSV(w io.Writer, records []schema.RunRecord) error {
	header := []string{
		"run_id", "run_time", "sire", "damsire", "distance_m",
		"ability", "rank", "stars", "confidence", "pattern", "turfiness",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range records {
			rec := []string{
				strconv.FormatInt(r.RunID, 10),
				r.RunTime,
				r.Sire,
				r.Damsire,
				fmt.Sprintf("%.0f", r.DistanceM),
				fmtFloat2(r.Ability),
				r.Rank,
				strconv.Itoa(r.Stars),
				fmtFloat2(r.Confidence),
				r.Pattern,
				fmt.Sprintf("%.3f", r.Turfiness),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
