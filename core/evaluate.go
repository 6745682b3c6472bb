package core

import "github.com/sawamura/equisight/schema"

// Evidence-absence notes used when no media path is supplied at all.
const (
	notePhotoMissing = "側面写真が未添付のため平均補完"
	noteVideoMissing = "動画が未添付のため平均補完"
)

// Evaluator wires the pure formula code to the media extractors. The
// extractors are interfaces so the formula code never knows how (or
// whether) a file was decoded.
type Evaluator struct {
	Photo PhotoExtractor
	Video VideoExtractor
	Hints Hints
}

// NewEvaluator builds an Evaluator with the given extractors and hint
// tables.
func NewEvaluator(photo PhotoExtractor, video VideoExtractor, hints Hints) *Evaluator {
	return &Evaluator{Photo: photo, Video: video, Hints: hints}
}

// Confidence scores how much real (non-default) input was available.
// Bounded to [0.30,0.95], 2 decimals.
func Confidence(photoPresent, videoPresent bool, measurements int) float64 {
	conf := 0.45
	if photoPresent {
		conf += 0.20
	}
	if videoPresent {
		conf += 0.20
	}
	conf += min(0.15, 0.05*float64(measurements))
	return roundTo(clamp(conf, 0.30, 0.95), 2)
}

// Evaluate runs the full assessment pipeline. It never fails: missing or
// unreadable media degrades to neutral indices with diagnostic notes, and
// the returned report is always fully populated.
//
// photoPath and videoPath are optional; empty means "not supplied".
func (e *Evaluator) Evaluate(in schema.EvaluationInput, photoPath, videoPath string) *schema.Report {
	distanceM := in.DistanceM
	if distanceM <= 0 {
		distanceM = 1600.0
	}

	// --- Intermediate indices: each evidence source runs independently ---

	bodyIdx, bodyNote := MeasurementIndex(in)

	photoIdx := schema.NeutralIndex
	photoNote := notePhotoMissing
	if photoPath != "" {
		ph := e.Photo.ExtractPhotoFeature(photoPath)
		photoIdx = ph.Score
		photoNote = ph.Note
	}

	idx := schema.IndexSet{
		Motion:    schema.NeutralIndex,
		Speed:     schema.NeutralIndex,
		Accel:     schema.NeutralIndex,
		Stability: schema.NeutralIndex,
	}
	videoNote := noteVideoMissing
	if videoPath != "" {
		vf := e.Video.ExtractVideoFeature(videoPath)
		idx.Motion = vf.Motion
		idx.Speed = vf.Speed
		idx.Accel = vf.Accel
		idx.Stability = vf.Stability
		videoNote = vf.Note
	}

	pedIdx, pedNote := PedigreeIndex(in.Sire, in.Damsire, e.Hints)

	idx.Body = bodyIdx
	idx.Photo = photoIdx
	idx.Pedigree = pedIdx

	// --- Traits & ability ---

	traits := DeriveTraits(idx, distanceM)
	ability := AbilityFromTraits(traits, distanceM)
	rank := RankFromAbility(ability.Ability)
	starCount, stars := StarsFromAbility(ability.Ability)
	bucket, _ := DistanceBucket(distanceM)

	n := commentBlocks(traits, ability.Turfiness)

	conf := Confidence(photoPath != "", videoPath != "", in.MeasurementCount())

	return &schema.Report{
		AlgoVersion: schema.AlgoVersion,
		Total:       TotalFromAbility(ability.Ability),
		Rank:        rank,
		Stars:       stars,
		StarCount:   starCount,
		Confidence:  conf,
		Ability:     ability,
		Surface:     n.surface,
		Reason:      n.reason,
		Comment:     n.comment,
		Pattern:     n.pattern,
		Bucket:      bucket,
		Traits:      traits,
		Display:     schema.DisplayRows(traits),
		Notes: schema.Notes{
			Body:     []string{bodyNote},
			Photo:    []string{photoNote},
			Video:    []string{videoNote},
			Pedigree: []string{pedNote},
		},
		Debug: schema.Debug{
			DistanceM: distanceM,
			Indices: schema.IndexSet{
				Body:      roundTo(idx.Body, 2),
				Photo:     roundTo(idx.Photo, 2),
				Motion:    roundTo(idx.Motion, 2),
				Speed:     roundTo(idx.Speed, 2),
				Accel:     roundTo(idx.Accel, 2),
				Stability: roundTo(idx.Stability, 2),
				Pedigree:  roundTo(idx.Pedigree, 2),
			},
		},
	}
}
