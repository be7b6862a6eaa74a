// Copyright 2024 The stringdecimal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringdecimal

import (
	"strconv"
	"strings"
)

// splitDigits renders m's integer and fractional digit runs as plain
// ASCII, with no sign, grouping, or configured point character. places
// pins the fractional digit count; -1 means "natural" (m.places(),
// floored at 0). This is the shared core behind formatUnsigned (used by
// Mag.String for debugging) and formatSigned (used by Sd's formatter).
func splitDigits(m Mag, places int) (intPart, fracPart string) {
	fracWant := places
	if fracWant < 0 {
		if fracWant = m.places(); fracWant < 0 {
			fracWant = 0
		}
	}
	if m.isZero() {
		if fracWant > 0 {
			return "0", strings.Repeat("0", fracWant)
		}
		return "0", ""
	}

	intDigits := m.mag + 1
	sig := m.sig()

	var ib strings.Builder
	if intDigits <= 0 {
		ib.WriteByte('0')
	} else {
		for i := 0; i < intDigits; i++ {
			if i < sig {
				ib.WriteByte('0' + m.digit(i))
			} else {
				ib.WriteByte('0')
			}
		}
	}

	var fb strings.Builder
	for i := 0; i < fracWant; i++ {
		if idx := intDigits + i; idx >= 0 && idx < sig {
			fb.WriteByte('0' + m.digit(idx))
		} else {
			fb.WriteByte('0')
		}
	}
	return ib.String(), fb.String()
}

// formatUnsigned renders m with a literal '.' separator and no grouping,
// used for debug text (Mag.String, Sd.debugNum/debugDen) that must not
// depend on a Config, and for the denominator of RATIONAL output.
func formatUnsigned(m Mag, places int) string {
	ip, fp := splitDigits(m, places)
	if fp == "" {
		return ip
	}
	return ip + "." + fp
}

// groupInt inserts comma every three digits from the right, skipping
// groups entirely when grouping is disabled or there is nothing to
// group.
func groupInt(ip string, comma rune, grouping bool) string {
	if !grouping || len(ip) <= 3 {
		return ip
	}
	lead := len(ip) % 3
	if lead == 0 {
		lead = 3
	}
	var b []byte
	b = append(b, ip[:lead]...)
	for i := lead; i < len(ip); i += 3 {
		b = append(b, string(comma)...)
		b = append(b, ip[i:i+3]...)
	}
	return string(b)
}

// formatSigned renders x with the sign, grouping, and configured point
// character. places pins the fractional digit count; -1 means x's own
// natural width (x.places()).
func formatSigned(x SignedMag, places int, cfg *Config) string {
	ip, fp := splitDigits(x.Mag, places)
	s := groupInt(ip, cfg.comma(), !cfg.noComma())
	if fp != "" {
		s += string(cfg.point()) + fp
	}
	if x.neg && !x.isZero() {
		s = "-" + s
	}
	return s
}

// Format renders s according to cfg's Format policy. A recorded
// failure takes priority over any formatting and is rendered with the
// "!!" prefix.
func (s *Sd) Format(cfg *Config) string {
	if s.failure != nil {
		return FailureString(s.failure)
	}
	switch cfg.format() {
	case FormatRational:
		return s.formatRational(cfg)
	case FormatExp:
		return s.formatExp(cfg)
	}

	places, round := cfg.places(), cfg.round()
	var disp SignedMag

	switch cfg.format() {
	case FormatExact:
		if s.den == nil {
			disp = srnd(s.num, places, round)
			break
		}
		q, _, err := sdiv(s.num, signed(*s.den, false), places, round, false)
		if err != nil {
			return FailureString(err)
		}
		disp = padPlaces(q, places)

	case FormatInput, FormatMax:
		wide := s.places + places
		if s.den == nil {
			disp = srnd(s.num, places, round)
			break
		}
		q, _, err := sdiv(s.num, signed(*s.den, false), wide, round, false)
		if err != nil {
			return FailureString(err)
		}
		if cfg.format() == FormatInput {
			disp = srnd(q, places, round)
		} else {
			disp = padPlaces(q, wide)
		}

	case FormatLimit:
		if s.den == nil {
			disp = s.num.clone()
			break
		}
		q, _, err := sdiv(s.num, signed(*s.den, false), places, round, false)
		if err != nil {
			return FailureString(err)
		}
		disp = q

	default: // FormatExtra
		if s.den == nil {
			disp = s.num.clone()
			break
		}
		extra := s.den.sig() + places
		q, _, err := sdiv(s.num, signed(*s.den, false), extra, round, false)
		if err != nil {
			return FailureString(err)
		}
		disp = q
	}

	width := -1
	if cfg.format() == FormatExact {
		width = places
	}
	return formatSigned(disp, width, cfg)
}

// FormatPlaces renders s to exactly places fractional digits, skipping
// the format-policy dispatch above for callers that just want a fixed
// number of decimals.
func (s *Sd) FormatPlaces(places int, cfg *Config) string {
	if s.failure != nil {
		return FailureString(s.failure)
	}
	if s.den == nil {
		return formatSigned(srnd(s.num, places, cfg.round()), places, cfg)
	}
	q, _, err := sdiv(s.num, signed(*s.den, false), places, cfg.round(), false)
	if err != nil {
		return FailureString(err)
	}
	return formatSigned(padPlaces(q, places), places, cfg)
}

// formatRational implements Format's RATIONAL policy: the integer when
// the pending division (if any) is exact, else "num/den".
func (s *Sd) formatRational(cfg *Config) string {
	if s.den == nil {
		return formatSigned(s.num, -1, cfg)
	}
	_, rem, err := sdiv(s.num, signed(*s.den, false), 0, RoundTruncate, true)
	if err != nil {
		return FailureString(err)
	}
	if rem.isZero() {
		q, _, _ := sdiv(s.num, signed(*s.den, false), 0, RoundTruncate, false)
		return formatSigned(q, -1, cfg)
	}
	return formatSigned(s.num, -1, cfg) + "/" + formatUnsigned(*s.den, -1)
}

// formatExp implements Format's EXP policy: scientific notation with a
// single leading digit, cfg.places() fractional digits, and a decimal
// exponent. If rounding the mantissa carries into a new leading digit
// (e.g. 9.96 rounding to one place becomes 10.0), the exponent absorbs
// the shift rather than re-running the division.
func (s *Sd) formatExp(cfg *Config) string {
	places, round := cfg.places(), cfg.round()
	var mag SignedMag
	switch {
	case s.den == nil:
		mag = s.num.clone()
	default:
		q, _, err := sdiv(s.num, signed(*s.den, false), s.den.sig()+places+2, round, false)
		if err != nil {
			return FailureString(err)
		}
		mag = q
	}
	if mag.isZero() {
		return formatSigned(mag, -1, cfg)
	}

	exp := mag.mag
	centred := SignedMag{Mag: Mag{mag: 0, digits: mag.digits}, neg: mag.neg}
	rounded := srnd(centred, places, round)
	exp += rounded.mag

	// rounded was rounded to places relative to centred's own mag (0);
	// resetting mag again below to rebuild the single-leading-digit
	// mantissa does not change how many fractional digits it should
	// show, so the explicit places (not rounded's own natural width) is
	// passed through to formatSigned.
	mantissa := SignedMag{Mag: Mag{mag: 0, digits: rounded.digits}, neg: rounded.neg}
	expStr := strconv.Itoa(exp)
	if exp >= 0 {
		expStr = "+" + expStr
	}
	return formatSigned(mantissa, places, cfg) + "e" + expStr
}
