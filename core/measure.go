package core

import "github.com/sawamura/equisight/schema"

// Breed-typical center points for a yearling, around which each
// measurement is rescaled before blending.
const (
	centerWeightKG = 380.0
	centerHeightCM = 150.0
	centerGirthCM  = 170.0
	centerCannonCM = 19.0
)

// Measurement blend weights. These are locked coefficients.
const (
	wWeight = 0.45
	wHeight = 0.20
	wGirth  = 0.20
	wCannon = 0.15
)

// Measurement notes.
const (
	noteBodyMissing = "測尺が未入力のため平均補完"
	noteBodyPartial = "馬体重/測尺から骨格とパワー要素を補正"
)

// MeasurementIndex normalizes the present body measurements into a single
// body index in [35,90], rounded to 2 decimals. Absent fields contribute
// the neutral 50 to their term; when no field is present the weighted
// combination is skipped entirely and the flat neutral value is returned
// with a note distinguishing "no measurements" from "partial measurements".
func MeasurementIndex(in schema.EvaluationInput) (float64, string) {
	if in.MeasurementCount() == 0 {
		return schema.NeutralIndex, noteBodyMissing
	}

	bw := schema.NeutralIndex
	if in.BodyWeight > 0 {
		bw = clamp((in.BodyWeight-centerWeightKG)/2.0+50.0, schema.IndexMin, schema.IndexMax)
	}
	ht := schema.NeutralIndex
	if in.Height > 0 {
		ht = clamp((in.Height-centerHeightCM)*2.0+50.0, schema.IndexMin, schema.IndexMax)
	}
	gi := schema.NeutralIndex
	if in.Girth > 0 {
		gi = clamp((in.Girth-centerGirthCM)*1.5+50.0, schema.IndexMin, schema.IndexMax)
	}
	ca := schema.NeutralIndex
	if in.Cannon > 0 {
		ca = clamp((in.Cannon-centerCannonCM)*6.0+50.0, schema.IndexMin, schema.IndexMax)
	}

	idx := roundTo(wWeight*bw+wHeight*ht+wGirth*gi+wCannon*ca, 2)
	return idx, noteBodyPartial
}
