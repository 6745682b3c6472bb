package core

import (
	"testing"

	"github.com/sawamura/equisight/schema"
	"github.com/stretchr/testify/assert"
)

// TestMeasurementIndex checks the per-field rescaling, the neutral
// substitution for absent fields, and the note selection.
func TestMeasurementIndex(t *testing.T) {
	tests := []struct {
		name     string
		in       schema.EvaluationInput
		expected float64
		note     string
	}{
		{
			name:     "no measurements",
			in:       schema.EvaluationInput{},
			expected: 50.0,
			note:     noteBodyMissing,
		},
		{
			name:     "all centered",
			in:       schema.EvaluationInput{BodyWeight: 380, Height: 150, Girth: 170, Cannon: 19},
			expected: 50.0,
			note:     noteBodyPartial,
		},
		{
			name: "heavy tall frame",
			// weight 420 -> 70, height 155 -> 60, girth 180 -> 65, cannon 20 -> 56
			// 0.45*70 + 0.20*60 + 0.20*65 + 0.15*56 = 64.9
			in:       schema.EvaluationInput{BodyWeight: 420, Height: 155, Girth: 180, Cannon: 20},
			expected: 64.9,
			note:     noteBodyPartial,
		},
		{
			name: "weight only, others neutral",
			// weight 400 -> 60; rest contribute 50
			// 0.45*60 + 0.55*50 = 54.5
			in:       schema.EvaluationInput{BodyWeight: 400},
			expected: 54.5,
			note:     noteBodyPartial,
		},
		{
			name: "extreme values clamp per field",
			// every field pins to 90: index is 90
			in:       schema.EvaluationInput{BodyWeight: 900, Height: 200, Girth: 250, Cannon: 40},
			expected: 90.0,
			note:     noteBodyPartial,
		},
		{
			name: "tiny values clamp to floor per field",
			in:       schema.EvaluationInput{BodyWeight: 100, Height: 100, Girth: 100, Cannon: 10},
			expected: 35.0,
			note:     noteBodyPartial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, note := MeasurementIndex(tt.in)
			assert.Equal(t, tt.expected, idx)
			assert.Equal(t, tt.note, note)
		})
	}
}
