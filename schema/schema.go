// Package schema defines the value objects shared across the evaluation
// pipeline, the market estimator, output writers and the run store.
//
// Every type here is a plain value object: created fresh per evaluation,
// never mutated afterwards, never retained across calls.
package schema

// EvaluationInput carries the raw per-horse form fields. No field is
// required. Numeric fields use 0 to mean "absent"; a measurement of zero
// is not a valid observation, so absence and zero collapse safely.
type EvaluationInput struct {
	Sire    string `json:"sire"`
	Dam     string `json:"dam"`
	Damsire string `json:"damsire"`
	Sex     string `json:"sex"`  // free text; 牝/牡 or english equivalents
	Coat    string `json:"coat"` // free text coat color, used by the growth preview

	BodyWeight float64 `json:"body_weight"` // kg
	Height     float64 `json:"height"`      // cm
	Girth      float64 `json:"girth"`       // cm
	Cannon     float64 `json:"cannon"`      // cm, cannon bone circumference

	DistanceM float64 `json:"distance_m"` // intended race distance; 0 -> default 1600
}

// MeasurementCount returns how many of the four body measurements are present.
func (in *EvaluationInput) MeasurementCount() int {
	n := 0
	for _, v := range []float64{in.BodyWeight, in.Height, in.Girth, in.Cannon} {
		if v > 0 {
			n++
		}
	}
	return n
}

// IndexSet holds the intermediate 0-100 evidence indices. Each index is
// defined even when its source data is absent (neutral substitution).
type IndexSet struct {
	Body      float64 `json:"body_index"`
	Photo     float64 `json:"photo_index"`
	Motion    float64 `json:"motion_index"`
	Speed     float64 `json:"speed_index"`
	Accel     float64 `json:"accel_index"`
	Stability float64 `json:"stability_index"`
	Pedigree  float64 `json:"pedigree_index"`
}

// TraitVector holds the seven derived trait scores. All traits live in
// [35,90] except Risk, which lives in [10,80].
type TraitVector struct {
	Speed        float64 `json:"Speed"`
	Power        float64 `json:"Power"`
	Stamina      float64 `json:"Stamina"`
	Durability   float64 `json:"Durability"`
	Risk         float64 `json:"Risk"`
	Acceleration float64 `json:"Acceleration"`
	Stability    float64 `json:"Stability"`
}

// AbilityResult is the output of the locked ability formula.
type AbilityResult struct {
	Ability   float64 `json:"Ability"`   // [1,99], 2 decimals
	Alpha     float64 `json:"alpha"`     // [0.30,0.90] blend weight, 3 decimals
	Turfiness float64 `json:"turfiness"` // [0,1] surface tendency, 3 decimals
	SpeedStar float64 `json:"speed_star"`
	RiskStar  float64 `json:"risk_star"`
}

// PhotoFeature is the photo extractor output: a score in [35,90] (or the
// neutral 50 on failure) plus a human-readable note.
type PhotoFeature struct {
	Score float64 `json:"score"`
	Note  string  `json:"note_ja"`
}

// VideoFeature is the video extractor output. Volatility is an auxiliary
// diagnostic in [0,100]; the four scores live in [35,90].
type VideoFeature struct {
	Motion     float64 `json:"motion_score"`
	Speed      float64 `json:"speed_score"`
	Accel      float64 `json:"accel_score"`
	Stability  float64 `json:"stability_score"`
	Volatility float64 `json:"volatility"`
	Note       string  `json:"note_ja"`
}

// Bilingual is a fixed-template text pair (Japanese main, English small).
type Bilingual struct {
	JA string `json:"ja"`
	EN string `json:"en"`
}

// TraitRow is a display row for one trait, as rendered by the table writer
// and returned over MCP.
type TraitRow struct {
	Key     string `json:"key"`
	LabelJA string `json:"label_ja"`
	LabelEN string `json:"label_en"`
	Value   int    `json:"value"`
}

// Notes collects the per-category diagnostic notes. Every category is
// always populated, including on full-default evaluations.
type Notes struct {
	Body     []string `json:"body"`
	Photo    []string `json:"photo"`
	Video    []string `json:"video"`
	Pedigree []string `json:"pedigree"`
}

// Debug carries the intermediate indices for explain output.
type Debug struct {
	DistanceM float64  `json:"distance_m"`
	Indices   IndexSet `json:"indices"`
}

// Report is the full evaluation result returned by core.Evaluate.
type Report struct {
	AlgoVersion string        `json:"algo_version"`
	Total       int           `json:"total"` // round(Ability)
	Rank        Rank          `json:"rank"`
	Stars       string        `json:"stars"` // e.g. ★★★☆☆
	StarCount   int           `json:"star_count"`
	Confidence  float64       `json:"confidence"` // [0.30,0.95], 2 decimals
	Ability     AbilityResult `json:"ability"`
	Surface     Bilingual     `json:"surface"`
	Reason      Bilingual     `json:"reason"`
	Comment     Bilingual     `json:"comment"`
	Pattern     Pattern       `json:"pattern"`
	Bucket      Bucket        `json:"bucket"`
	Traits      TraitVector   `json:"traits"`
	Display     []TraitRow    `json:"traits_display"`
	Notes       Notes         `json:"notes"`
	Debug       Debug         `json:"debug"`
}

// MarketOverrides are the optional market-specific numeric inputs. A nil
// field means "not supplied"; zero is a legal supplied value.
type MarketOverrides struct {
	SireFeeMedian  *float64 `json:"sire_fee_median"`
	DamValue       *float64 `json:"dam_value"`
	BlacktypeCount *float64 `json:"blacktype_count"`
	NearbyGSW      *float64 `json:"nearby_gsw"`
}

// MarketEstimate is the market pipeline output. Bounds are yen rounded to
// the nearest 10,000 with YenHigh >= YenLow >= 0.
type MarketEstimate struct {
	YenLow  int64     `json:"yen_low"`
	YenHigh int64     `json:"yen_high"`
	Anchor  int64     `json:"anchor"` // sire-fee anchor, rounded to 10,000
	Source  Bilingual `json:"source"`
}

// RunRecord is one persisted evaluation run, as stored by evalstore and
// exported to Parquet/CSV.
type RunRecord struct {
	RunID      int64       `json:"run_id"`
	RunTime    string      `json:"run_time"` // RFC3339Nano
	Sire       string      `json:"sire"`
	Damsire    string      `json:"damsire"`
	DistanceM  float64     `json:"distance_m"`
	Ability    float64     `json:"ability"`
	Rank       string      `json:"rank"`
	Stars      int         `json:"stars"`
	Confidence float64     `json:"confidence"`
	Pattern    string      `json:"pattern"`
	Turfiness  float64     `json:"turfiness"`
	Traits     TraitVector `json:"traits"`
}
