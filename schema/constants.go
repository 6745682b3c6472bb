package schema

// AlgoVersion tags every report so persisted results can be traced back to
// the formula revision that produced them. The formula is locked: changing
// any coefficient requires a new version string.
const AlgoVersion = "EQS-Ability-v1.0-Locked"

// Neutral index defaults, substituted whenever an evidence source is absent
// or unreadable. Centralized so the locked formula stays auditable.
const (
	NeutralIndex    = 50.0 // body, photo, motion, speed, accel, stability
	NeutralPedigree = 50.0 // pedigree starts here before hint bias
)

// Index clamp bounds.
const (
	IndexMin    = 35.0
	IndexMax    = 90.0
	PedigreeMin = 40.0
	PedigreeMax = 75.0
	RiskMin     = 10.0
	RiskMax     = 80.0
	AbilityMin  = 1.0
	AbilityMax  = 99.0
)

// Rank is the ordinal ability category.
type Rank string

// Rank values, from best to worst.
const (
	RankA Rank = "A"
	RankB Rank = "B"
	RankC Rank = "C"
	RankD Rank = "D"
)

// Bucket is the distance category derived from the intended race distance.
type Bucket string

// Distance buckets.
const (
	Sprint Bucket = "Sprint" // <= 1400m
	Mile   Bucket = "Mile"   // <= 2000m
	Stayer Bucket = "Stayer" // > 2000m
)

// Pattern is the narrative archetype chosen by the comment generator.
type Pattern string

// Narrative archetypes, checked in order; first match wins.
const (
	PatternSpeed    Pattern = "C" // speed/acceleration type
	PatternPower    Pattern = "P" // power type
	PatternStamina  Pattern = "S" // stamina type
	PatternBalanced Pattern = "B" // balanced
)

// DatabaseBackend identifies the run-store backend.
type DatabaseBackend string

// Supported run-store backends.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgres"
	NoneBackend       DatabaseBackend = "none"
)

// Output format identifiers.
const (
	TextOut = "text"
	JSONOut = "json"
	CSVOut  = "csv"
)

// TraitLabels lists the seven traits in display order with their bilingual
// labels. Used by the table writer and the MCP tool output.
var TraitLabels = []struct {
	Key     string
	LabelJA string
	LabelEN string
}{
	{"Speed", "スピード", "Speed"},
	{"Power", "パワー", "Power"},
	{"Stamina", "スタミナ", "Stamina"},
	{"Durability", "耐久", "Durability"},
	{"Risk", "リスク", "Risk"},
	{"Acceleration", "瞬発力", "Acceleration"},
	{"Stability", "安定性", "Stability"},
}

// DisplayRows builds the bilingual display rows for a trait vector.
func DisplayRows(t TraitVector) []TraitRow {
	values := map[string]float64{
		"Speed":        t.Speed,
		"Power":        t.Power,
		"Stamina":      t.Stamina,
		"Durability":   t.Durability,
		"Risk":         t.Risk,
		"Acceleration": t.Acceleration,
		"Stability":    t.Stability,
	}
	rows := make([]TraitRow, 0, len(TraitLabels))
	for _, l := range TraitLabels {
		rows = append(rows, TraitRow{Key: l.Key, LabelJA: l.LabelJA, LabelEN: l.LabelEN, Value: int(values[l.Key])})
	}
	return rows
}
