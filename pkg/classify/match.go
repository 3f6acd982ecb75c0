package classify

import (
	"regexp"
	"strconv"

	"github.com/pluginradar/paramswap/pkg/curve"
	"github.com/pluginradar/paramswap/pkg/semantic"
)

// Name patterns, checked in order. The first that applies wins, so the
// more specific patterns (and their exclusions) come first.
var (
	reBypass = regexp.MustCompile(`(?i)\bbypass\b`)

	reFreq      = regexp.MustCompile(`(?i)\b(freq|frequency)\b`)
	reGain      = regexp.MustCompile(`(?i)\b(gain|boost|cut)\b`)
	reGainNot   = regexp.MustCompile(`(?i)\b(input|output|makeup|make.?up|volume|level|drive)\b`)
	reQ         = regexp.MustCompile(`(?i)\b(q|bandwidth|width|resonance)\b`)
	reQNot      = regexp.MustCompile(`(?i)\b(freq|frequency|equal)\b`)
	reShape     = regexp.MustCompile(`(?i)\b(type|shape|mode|filter)\b`)
	reShapeNot  = regexp.MustCompile(`(?i)\b(freq|frequency|gain|comp|attack|release|ratio|thresh)\b`)
	reThreshold = regexp.MustCompile(`(?i)\b(thresh|threshold)\b`)
	reRatio     = regexp.MustCompile(`(?i)\bratio\b`)
	reAttack    = regexp.MustCompile(`(?i)\battack\b`)
	reRelease   = regexp.MustCompile(`(?i)\brelease\b`)
	reKnee      = regexp.MustCompile(`(?i)\bknee\b`)
	reMakeup    = regexp.MustCompile(`(?i)\b(makeup|make.?up)\b`)
	reLookahead = regexp.MustCompile(`(?i)\b(lookahead|look.?ahead)\b`)
	reMix       = regexp.MustCompile(`(?i)\b(mix|dry.?wet|blend|parallel)\b`)
	reMixComp   = regexp.MustCompile(`(?i)\b(comp|dyn|limit)\b`)
	reInput     = regexp.MustCompile(`(?i)\b(input|drive)\b`)
	reOutput    = regexp.MustCompile(`(?i)\b(output|volume|level)\b`)
	reGeneralNo = regexp.MustCompile(`(?i)\b(freq|frequency|type|mode)\b`)
	reOutputNo  = regexp.MustCompile(`(?i)\b(freq|frequency|type|mode|meter)\b`)

	reBandNum     = regexp.MustCompile(`(?i)(?:band|b)\s*(\d+)`)
	reTrailingNum = regexp.MustCompile(`\s+(\d+)\s*$`)
	reBandLow     = regexp.MustCompile(`(?i)\b(low|lf|sub)\b`)
	reBandLowMid  = regexp.MustCompile(`(?i)\b(low.?mid|lmf)\b`)
	reBandMid     = regexp.MustCompile(`(?i)\b(mid|mf)\b`)
	reBandHighMid = regexp.MustCompile(`(?i)\b(high.?mid|hmf)\b`)
	reBandHigh    = regexp.MustCompile(`(?i)\b(high|hf|air)\b`)
)

// nameMatch is the outcome of pattern-matching one parameter name.
type nameMatch struct {
	semantic string
	unit     semantic.Unit
	kind     curve.Kind
	band     int
}

// extractBandNumber finds an EQ band number in a parameter name: explicit
// ("Band 3", "B3"), trailing ("HF 2"), or named sections (LF..HF map to
// bands 1..5).
func extractBandNumber(name string) int {
	if m := reBandNum.FindStringSubmatch(name); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	if m := reTrailingNum.FindStringSubmatch(name); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	// Compound section names before their single-word components, so
	// "Low Mid" does not resolve as "Low".
	switch {
	case reBandLowMid.MatchString(name):
		return 2
	case reBandHighMid.MatchString(name):
		return 4
	case reBandLow.MatchString(name):
		return 1
	case reBandMid.MatchString(name):
		return 3
	case reBandHigh.MatchString(name):
		return 5
	}
	return 0
}

// matchName classifies a parameter name into a semantic role. Bypass
// parameters are deliberately skipped: the slot model owns bypass state.
func matchName(name string) (nameMatch, bool) {
	if reBypass.MatchString(name) {
		return nameMatch{}, false
	}

	band := extractBandNumber(name)
	bandOr1 := band
	if bandOr1 < 1 {
		bandOr1 = 1
	}

	// EQ section.
	if reFreq.MatchString(name) {
		return nameMatch{
			semantic: semantic.BandID(bandOr1, "freq"),
			unit:     semantic.UnitHz,
			kind:     curve.KindLogarithmic,
			band:     bandOr1,
		}, true
	}
	if reGain.MatchString(name) && !reGainNot.MatchString(name) {
		return nameMatch{
			semantic: semantic.BandID(bandOr1, "gain"),
			unit:     semantic.UnitDB,
			kind:     curve.KindLinear,
			band:     bandOr1,
		}, true
	}
	if reQ.MatchString(name) && !reQNot.MatchString(name) {
		return nameMatch{
			semantic: semantic.BandID(bandOr1, "q"),
			unit:     semantic.UnitRatio,
			kind:     curve.KindLogarithmic,
			band:     bandOr1,
		}, true
	}
	if reShape.MatchString(name) && !reShapeNot.MatchString(name) {
		return nameMatch{
			semantic: semantic.BandID(bandOr1, "type"),
			unit:     semantic.UnitStepped,
			kind:     curve.KindStepped,
			band:     bandOr1,
		}, true
	}

	// Compressor section.
	if reThreshold.MatchString(name) {
		return nameMatch{semantic: "comp_threshold", unit: semantic.UnitDB, kind: curve.KindLinear}, true
	}
	if reRatio.MatchString(name) {
		return nameMatch{semantic: "comp_ratio", unit: semantic.UnitRatio, kind: curve.KindLogarithmic}, true
	}
	if reAttack.MatchString(name) {
		return nameMatch{semantic: "comp_attack", unit: semantic.UnitMS, kind: curve.KindLogarithmic}, true
	}
	if reRelease.MatchString(name) {
		return nameMatch{semantic: "comp_release", unit: semantic.UnitMS, kind: curve.KindLogarithmic}, true
	}
	if reKnee.MatchString(name) {
		return nameMatch{semantic: "comp_knee", unit: semantic.UnitDB, kind: curve.KindLinear}, true
	}
	if reMakeup.MatchString(name) {
		return nameMatch{semantic: "comp_makeup", unit: semantic.UnitDB, kind: curve.KindLinear}, true
	}
	if reLookahead.MatchString(name) {
		return nameMatch{semantic: "comp_lookahead", unit: semantic.UnitMS, kind: curve.KindLinear}, true
	}
	if reMix.MatchString(name) && reMixComp.MatchString(name) {
		return nameMatch{semantic: "comp_mix", unit: semantic.UnitPercent, kind: curve.KindLinear}, true
	}

	// General section.
	if reInput.MatchString(name) && !reGeneralNo.MatchString(name) {
		return nameMatch{semantic: "input_gain", unit: semantic.UnitDB, kind: curve.KindLinear}, true
	}
	if reOutput.MatchString(name) && !reOutputNo.MatchString(name) {
		return nameMatch{semantic: "output_gain", unit: semantic.UnitDB, kind: curve.KindLinear}, true
	}
	if reMix.MatchString(name) {
		return nameMatch{semantic: "dry_wet_mix", unit: semantic.UnitPercent, kind: curve.KindLinear}, true
	}

	return nameMatch{}, false
}
