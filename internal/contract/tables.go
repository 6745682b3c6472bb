package contract

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sawamura/equisight/core"
)

// hintsFile is the on-disk shape of the pedigree hint tables. Keys are
// horse names (case-sensitive, JA or EN spellings both appear), values are
// the bias each name adds to the pedigree index.
type hintsFile struct {
	SpeedLines map[string]float64 `json:"speed_lines"`
	PowerLines map[string]float64 `json:"power_lines"`
}

// LoadHints returns the pedigree hint tables. An empty path returns the
// built-in defaults; a present but malformed file is an error, since a
// silently ignored hint table would shift locked scores.
func LoadHints(path string) (core.Hints, error) {
	if path == "" {
		return core.DefaultHints(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return core.Hints{}, err
	}
	var hf hintsFile
	if err := json.Unmarshal(raw, &hf); err != nil {
		return core.Hints{}, fmt.Errorf("invalid hints JSON: %w", err)
	}
	h := core.Hints{SpeedLines: hf.SpeedLines, PowerLines: hf.PowerLines}
	if h.SpeedLines == nil {
		h.SpeedLines = map[string]float64{}
	}
	if h.PowerLines == nil {
		h.PowerLines = map[string]float64{}
	}
	return h, nil
}

// LoadMedians reads the sire name -> median price table. An empty path or a
// missing file yields an empty table; the market estimator then falls back
// to its per-name default anchors.
func LoadMedians(path string) (map[string]float64, error) {
	if path == "" {
		return map[string]float64{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]float64{}, nil
		}
		return nil, err
	}
	medians := map[string]float64{}
	if err := json.Unmarshal(raw, &medians); err != nil {
		return nil, fmt.Errorf("invalid medians JSON: %w", err)
	}
	return medians, nil
}
