package core

import "github.com/sawamura/equisight/schema"

// Surface tendency thresholds on turfiness, and the Speed-Power differential
// that justifies a one-sided rationale.
const (
	turfLean   = 0.68
	dirtLean   = 0.42
	diffStrong = 12.0
)

// narrative holds the classified comment output.
type narrative struct {
	pattern schema.Pattern
	comment schema.Bilingual
	surface schema.Bilingual
	reason  schema.Bilingual
}

// surfaceText never hard-asserts turf/dirt; it reports a tendency with a
// one-line rationale from the sign and magnitude of Speed-Power.
func surfaceText(turfiness, speed, power float64) (schema.Bilingual, schema.Bilingual) {
	var surface schema.Bilingual
	switch {
	case turfiness >= turfLean:
		surface = schema.Bilingual{
			JA: "芝寄り（軽い走り・スピード優位）",
			EN: "Turf-leaning (light, speed-first)",
		}
	case turfiness <= dirtLean:
		surface = schema.Bilingual{
			JA: "ダート寄り（パワー優位・重い走り）",
			EN: "Dirt-leaning (power-first)",
		}
	default:
		surface = schema.Bilingual{
			JA: "中間（条件次第で両対応）",
			EN: "Neutral (condition-dependent)",
		}
	}

	var reason schema.Bilingual
	diff := speed - power
	switch {
	case diff >= diffStrong:
		reason = schema.Bilingual{
			JA: "Speed > Power が大きく、軽い走りの傾向",
			EN: "Speed exceeds Power → lighter action",
		}
	case diff <= -diffStrong:
		reason = schema.Bilingual{
			JA: "Power > Speed が大きく、押しの強い走りの傾向",
			EN: "Power exceeds Speed → stronger pushing action",
		}
	default:
		reason = schema.Bilingual{
			JA: "Speed と Power が拮抗し、馬場適性は調教/条件で振れる",
			EN: "Speed and Power are close → surface can swing with setup",
		}
	}

	return surface, reason
}

// commentBlocks classifies the trait vector into one of four archetypes and
// renders the fixed bilingual templates. Patterns are checked in order
// (C, P, S, B); the first match wins. The caution and confidence clauses
// are appended independently of the base pattern.
func commentBlocks(t schema.TraitVector, turfiness float64) narrative {
	var n narrative

	switch {
	case t.Speed >= 78 && t.Acceleration >= 75 && t.Power < 72:
		n.pattern = schema.PatternSpeed
		n.comment = schema.Bilingual{
			JA: "スピードと瞬発力が強く、反応が速いタイプ。短〜マイルで前進気勢を活かすと良い。",
			EN: "Speed/accel type; best used where quick response matters.",
		}
	case t.Power >= 78 && t.Stability >= 70 && t.Speed < 74:
		n.pattern = schema.PatternPower
		n.comment = schema.Bilingual{
			JA: "パワーで押し切る走りが武器。砂や重い馬場で性能が出やすい。",
			EN: "Power type; tends to show on heavier surfaces.",
		}
	case t.Stamina >= 78 && t.Durability >= 72:
		n.pattern = schema.PatternStamina
		n.comment = schema.Bilingual{
			JA: "持続力と体の強さが目立つ。距離を延ばして良さが出る可能性。",
			EN: "Stamina/durability type; can improve with distance.",
		}
	default:
		n.pattern = schema.PatternBalanced
		n.comment = schema.Bilingual{
			JA: "バランス型。条件（馬場/距離/展開）で上振れしやすく、調整次第で伸びしろ。",
			EN: "Balanced; performance can swing with setup and conditioning.",
		}
	}

	// Risk/stability clause
	if t.Risk >= 65 || t.Stability <= 55 {
		n.comment.JA += " ただし安定性に課題が出やすいので、調教負荷とケアの管理が重要。"
		n.comment.EN += " Watch stability/risk; manage load and care."
	} else if t.Stability >= 75 && t.Risk <= 40 {
		n.comment.JA += " 安定性が高く、再現性のある走りが期待できる。"
		n.comment.EN += " High stability; repeatable performance likely."
	}

	// Surface tendency clause
	n.surface, n.reason = surfaceText(turfiness, t.Speed, t.Power)
	n.comment.JA += "（適性傾向：" + n.surface.JA + "）"
	n.comment.EN += " (" + n.surface.EN + ")"

	return n
}
