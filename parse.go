// Copyright 2024 The stringdecimal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringdecimal

// Textual number grammar: sign, a run of digits, an optional point plus
// more digits, an optional exponent, then alternate digit systems,
// thousands grouping, vulgar fractions, and SI/IEC magnitude suffixes
// layered on top. Leading zeros never need special-casing during the
// scan itself — Mag.norm strips them once the digits are loaded.

var asciiDigitMap = map[rune]uint8{'0': 0, '1': 1, '2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9}
var superDigitMap = map[rune]uint8{'⁰': 0, '¹': 1, '²': 2, '³': 3, '⁴': 4, '⁵': 5, '⁶': 6, '⁷': 7, '⁸': 8, '⁹': 9}
var subDigitMap = map[rune]uint8{'₀': 0, '₁': 1, '₂': 2, '₃': 3, '₄': 4, '₅': 5, '₆': 6, '₇': 7, '₈': 8, '₉': 9}
var circledDigitMap = map[rune]uint8{'⓪': 0, '①': 1, '②': 2, '③': 3, '④': 4, '⑤': 5, '⑥': 6, '⑦': 7, '⑧': 8, '⑨': 9}
var dingbatDigitMap = map[rune]uint8{'⓿': 0, '❶': 1, '❷': 2, '❸': 3, '❹': 4, '❺': 5, '❻': 6, '❼': 7, '❽': 8, '❾': 9}

var digitFamilies = []map[rune]uint8{asciiDigitMap, superDigitMap, subDigitMap, circledDigitMap, dingbatDigitMap}

var binarySuffixExp = map[string]int{"Ki": 1, "Mi": 2, "Gi": 3, "Ti": 4, "Pi": 5, "Ei": 6}

var siSuffixExp = map[rune]int{
	'Y': 24, 'Z': 21, 'E': 18, 'P': 15, 'T': 12, 'G': 9, 'M': 6, 'k': 3, 'h': 2,
	'd': -1, 'c': -2, 'm': -3, 'μ': -6, 'µ': -6, 'u': -6,
	'n': -9, 'p': -12, 'f': -15, 'a': -18, 'z': -21, 'y': -24,
	'%': -2, '‰': -3, '‱': -4,
}

var vulgarFractions = map[rune][2]int{
	'½': {1, 2}, '⅓': {1, 3}, '⅔': {2, 3}, '¼': {1, 4}, '¾': {3, 4},
	'⅕': {1, 5}, '⅖': {2, 5}, '⅗': {3, 5}, '⅘': {4, 5},
	'⅙': {1, 6}, '⅚': {5, 6}, '⅐': {1, 7}, '⅛': {1, 8}, '⅜': {3, 8}, '⅝': {5, 8}, '⅞': {7, 8},
	'⅑': {1, 9}, '⅒': {1, 10},
}

// scanner walks a rune slice, remembering which digit family (ASCII,
// superscript, subscript, or one of two circled-digit sets) the number
// in progress committed to on its first digit.
type scanner struct {
	r      []rune
	i      int
	family int
}

func (sc *scanner) peek() rune {
	if sc.i >= len(sc.r) {
		return 0
	}
	return sc.r[sc.i]
}

// digitAt reports the digit value at rune index i without advancing sc.i,
// enforcing that it belongs to the family already committed to (if any).
func (sc *scanner) digitAt(i int) (uint8, bool) {
	if i < 0 || i >= len(sc.r) {
		return 0, false
	}
	for fi, m := range digitFamilies {
		if v, ok := m[sc.r[i]]; ok {
			if sc.family == -1 {
				sc.family = fi
			} else if sc.family != fi {
				return 0, false
			}
			return v, true
		}
	}
	return 0, false
}

func (sc *scanner) scanDigits() []uint8 {
	var out []uint8
	for {
		v, ok := sc.digitAt(sc.i)
		if !ok {
			break
		}
		out = append(out, v)
		sc.i++
	}
	return out
}

func matchBinary(sc *scanner) (int, bool) {
	if sc.i+1 >= len(sc.r) {
		return 0, false
	}
	if n, ok := binarySuffixExp[string(sc.r[sc.i:sc.i+2])]; ok {
		sc.i += 2
		return n, true
	}
	return 0, false
}

func matchSI(sc *scanner) (int, bool) {
	if sc.i+1 < len(sc.r) {
		switch string(sc.r[sc.i : sc.i+2]) {
		case "da":
			sc.i += 2
			return 1, true
		case "mc":
			sc.i += 2
			return -6, true
		}
	}
	if exp, ok := siSuffixExp[sc.peek()]; ok {
		sc.i++
		return exp, true
	}
	return 0, false
}

func matchFraction(sc *scanner) (int, int, bool) {
	if f, ok := vulgarFractions[sc.peek()]; ok {
		sc.i++
		return f[0], f[1], true
	}
	return 0, 0, false
}

func pow1024(n int) int64 {
	v := int64(1)
	for i := 0; i < n; i++ {
		v *= 1024
	}
	return v
}

// applySuffix consumes at most one of the three suffix kinds (binary
// magnitude, SI magnitude, vulgar fraction) and folds it into result,
// reporting whether it matched anything.
func applySuffix(sc *scanner, result *Sd, cfg *Config) bool {
	if !cfg.noIEEE() {
		if n, ok := matchBinary(sc); ok {
			*result = *result.Mul(NewInt(pow1024(n)))
			return true
		}
	}
	if !cfg.noSI() {
		if exp, ok := matchSI(sc); ok {
			result.Shift10I(exp)
			return true
		}
	}
	if !cfg.noFrac() {
		if num, den, ok := matchFraction(sc); ok {
			frac := &Sd{num: signed(uintToMag(uint64(num)), false), den: denPtr(uintToMag(uint64(den)))}
			frac.tidy()
			*result = *result.Add(frac)
			return true
		}
	}
	return false
}

// Parse reads one number from the front of text and returns the value,
// the unconsumed remainder, and an error if no number could be read at
// all. A trailing tail that doesn't parse is never an error — the
// grammar records but does not raise on it — callers that
// want a strict parse should check that rest == "".
func Parse(text string, cfg *Config) (*Sd, string, error) {
	sc := &scanner{r: []rune(text), family: -1}
	origStart := sc.i

	neg := false
	switch sc.peek() {
	case '+', '⁺', '₊':
		sc.i++
	case '-', '⁻', '₋':
		neg = true
		sc.i++
	}

	intDigits := sc.scanDigits()
	for !cfg.noComma() {
		if sc.peek() != cfg.comma() {
			break
		}
		d0, ok0 := sc.digitAt(sc.i + 1)
		d1, ok1 := sc.digitAt(sc.i + 2)
		d2, ok2 := sc.digitAt(sc.i + 3)
		_, ok3 := sc.digitAt(sc.i + 4)
		if !ok0 || !ok1 || !ok2 || ok3 {
			break
		}
		sc.i += 4
		intDigits = append(intDigits, d0, d1, d2)
	}

	var fracDigits []uint8
	literalPlaces := 0
	if sc.peek() == cfg.point() {
		sc.i++
		fracStart := sc.i
		fracDigits = sc.scanDigits()
		literalPlaces = sc.i - fracStart
	}

	found := len(intDigits) > 0 || len(fracDigits) > 0

	if max := cfg.maxLength(); max > 0 && len(intDigits)+len(fracDigits) > max {
		return &Sd{failure: ErrNumberTooLong}, string(sc.r[sc.i:]), ErrNumberTooLong
	}

	rawMag := -1
	if len(intDigits) > 0 {
		rawMag = len(intDigits) - 1
	}
	digits := append(append([]uint8{}, intDigits...), fracDigits...)
	val := Mag{mag: rawMag, digits: digits}.norm()

	if r := sc.peek(); r == 'e' || r == 'E' {
		sc.i++
		esign := 1
		switch sc.peek() {
		case '+':
			sc.i++
		case '-':
			esign = -1
			sc.i++
		}
		e := 0
		for {
			r := sc.peek()
			if r < '0' || r > '9' {
				break
			}
			e = e*10 + int(r-'0')
			sc.i++
		}
		val = val.shift(e * esign)
	}

	// Without any digits, only a vulgar fraction can stand as a number.
	if !found {
		if _, ok := vulgarFractions[sc.peek()]; !ok || cfg.noFrac() {
			return &Sd{failure: ErrMissingOperand}, string(sc.r[origStart:]), ErrMissingOperand
		}
	}

	result := &Sd{num: signed(val, neg), places: literalPlaces}
	applySuffix(sc, result, cfg)

	return result, string(sc.r[sc.i:]), nil
}
