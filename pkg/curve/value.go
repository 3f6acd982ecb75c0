package curve

import "strconv"

// Value is a resolved physical value. Continuous curves produce numbers;
// stepped curves produce symbolic vendor text.
type Value struct {
	num      float64
	sym      string
	symbolic bool
}

// Number wraps a numeric physical value.
func Number(f float64) Value {
	return Value{num: f}
}

// Symbol wraps a symbolic physical value.
func Symbol(s string) Value {
	return Value{sym: s, symbolic: true}
}

// IsSymbol reports whether the value is symbolic.
func (v Value) IsSymbol() bool { return v.symbolic }

// Numeric returns the numeric interpretation of the value. Symbolic values
// are parsed leniently: a leading numeric prefix counts ("3000 Hz" -> 3000).
func (v Value) Numeric() (float64, bool) {
	if !v.symbolic {
		return v.num, true
	}
	return parseNumericPrefix(v.sym)
}

// String returns the display form: the symbol verbatim, or the number in
// compact notation.
func (v Value) String() string {
	if v.symbolic {
		return v.sym
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}

// parseNumericPrefix extracts the first signed decimal from vendor text.
// Surrounding units and labels are ignored; text with no digits fails.
func parseNumericPrefix(s string) (float64, bool) {
	var num []byte
	hasDigit := false
	hasDecimal := false
scan:
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '-' && len(num) == 0:
			num = append(num, c)
		case c == '.' && !hasDecimal:
			num = append(num, c)
			hasDecimal = true
		case c >= '0' && c <= '9':
			num = append(num, c)
			hasDigit = true
		default:
			if hasDigit {
				break scan
			}
		}
	}
	if !hasDigit {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(num), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
