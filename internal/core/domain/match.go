package domain

// FlagCode marks a visual discrepancy between the listing and the
// reference product imagery.
type FlagCode string

const (
	FlagLogoMismatch        FlagCode = "logo_mismatch"
	FlagColorVariation      FlagCode = "color_variation"
	FlagPackagingDifference FlagCode = "packaging_difference"
	FlagFontInconsistency   FlagCode = "font_inconsistency"
)

type MatchVerdict string

const (
	VerdictMatch       MatchVerdict = "MATCH"
	VerdictLikelyMatch MatchVerdict = "LIKELY_MATCH"
	VerdictMismatch    MatchVerdict = "MISMATCH"
)

// MatchResult is a visual-similarity comparison. Absent flags are
// omitted, never reported as false entries.
type MatchResult struct {
	Similarity float64    `json:"similarity"`
	Flags      []FlagCode `json:"flags"`
}

// Verdict derives the match outcome. The 0.85 and 0.70 bounds are
// exclusive: a similarity of exactly 0.85 is LIKELY_MATCH, exactly
// 0.70 is MISMATCH.
func (r MatchResult) Verdict() MatchVerdict {
	switch {
	case r.Similarity > 0.85:
		return VerdictMatch
	case r.Similarity > 0.7:
		return VerdictLikelyMatch
	default:
		return VerdictMismatch
	}
}
