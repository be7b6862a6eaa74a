// Copyright 2024 The stringdecimal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringdecimal

// SignedMag is a Mag with a sign bit. Invariant: neg is
// always false when the magnitude is zero.
type SignedMag struct {
	Mag
	neg bool
}

func signed(m Mag, neg bool) SignedMag {
	if m.isZero() {
		neg = false
	}
	return SignedMag{Mag: m, neg: neg}
}

func (x SignedMag) clone() SignedMag {
	return SignedMag{Mag: x.Mag.clone(), neg: x.neg}
}

// scmp compares signed magnitudes: negative sorts below non-negative,
// same-sign reduces to ucmp (inverted when both negative).
func scmp(a, b SignedMag) int {
	if a.neg && !b.neg {
		return -1
	}
	if !a.neg && b.neg {
		return 1
	}
	if a.neg && b.neg {
		return -ucmp(a.Mag, b.Mag, 0)
	}
	return ucmp(a.Mag, b.Mag, 0)
}

// sadd returns a + b, reducing to uadd/usub by reconciling signs: equal
// signs add magnitudes and keep the sign; opposite signs subtract the
// smaller magnitude from the larger and take the larger's sign.
func sadd(a, b SignedMag) SignedMag {
	if a.neg && !b.neg {
		a, b = b, a
	}
	if !a.neg && b.neg {
		if ucmp(a.Mag, b.Mag, 0) < 0 {
			return signed(usub(b.Mag, a.Mag, 0), true)
		}
		return signed(usub(a.Mag, b.Mag, 0), false)
	}
	return signed(uadd(a.Mag, b.Mag, 0), a.neg && b.neg)
}

// ssub returns a - b.
func ssub(a, b SignedMag) SignedMag {
	return sadd(a, signed(b.Mag, !b.neg))
}

// smul returns a * b.
func smul(a, b SignedMag) SignedMag {
	return signed(umul(a.Mag, b.Mag), a.neg != b.neg)
}

// sdiv returns a / b rounded to places digits using round, plus the
// remainder a - q*b when wantRem is set. The remainder carries b's sign,
// flipped if the quotient's sign (a.neg XOR b.neg) is negative, and
// flipped again when rounding bumped |q*b| above |a|.
func sdiv(a, b SignedMag, places int, round RoundMode, wantRem bool) (q, rem SignedMag, err error) {
	neg := a.neg != b.neg
	qm, rm, err := udiv(a.Mag, b.Mag, places, round, neg, wantRem)
	if err != nil {
		return SignedMag{}, SignedMag{}, err
	}
	q = signed(qm, neg)
	if wantRem {
		remNeg := b.neg
		if neg {
			remNeg = !remNeg
		}
		if ucmp(umul(qm, b.Mag), a.Mag, 0) > 0 {
			remNeg = !remNeg
		}
		rem = signed(rm, remNeg)
	}
	return q, rem, nil
}

// srnd rounds a to places fractional digits using round.
//
// Truncates to the requested width, inspects the discarded tail to
// decide whether to bump the kept digits by one, then re-pads if the
// bump shortened the result below the requested width. Floor/Ceiling
// are swapped under a's sign
// before the half-logic runs, so the table below only has to special-
// case Ceiling/Up (round away from zero) — Floor and Truncate fall
// through unchanged, which is correct because Floor-on-a-negative was
// already remapped to Ceiling above.
func srnd(a SignedMag, places int, round RoundMode) SignedMag {
	if a.isZero() {
		return SignedMag{}
	}

	mode := round
	if mode == 0 {
		mode = RoundBanking
	}
	if a.neg {
		switch mode {
		case RoundFloor:
			mode = RoundCeiling
		case RoundCeiling:
			mode = RoundFloor
		}
	}

	cur := a.Mag.places()
	if cur == places {
		return a.clone()
	}

	if cur > places {
		sig := a.mag + 1 + places
		// With sig < 0 the first discarded digit is an implicit zero
		// above every stored digit.
		firstZero := sig < 0
		if sig < 0 {
			sig = 0
		}
		full := a.sig()

		up := false
		if sig < full {
			switch {
			case mode == RoundCeiling || mode == RoundUp:
				for _, d := range a.digits[sig:] {
					if d != 0 {
						up = true
						break
					}
				}
			case mode == RoundRound:
				up = !firstZero && a.digits[sig] >= 5
			case mode == RoundBanking && !firstZero:
				switch {
				case a.digits[sig] > 5:
					up = true
				case a.digits[sig] == 5:
					for _, d := range a.digits[sig+1:] {
						if d != 0 {
							up = true
							break
						}
					}
					if !up && sig > 0 && a.digits[sig-1]&1 == 1 {
						up = true
					}
				}
			}
		}

		kept := append([]uint8(nil), a.digits[:min(sig, full)]...)
		r := signed(Mag{mag: a.mag, digits: kept}, a.neg)
		if up {
			r = signed(uadd(r.Mag, magOne, -places), r.neg)
		}
		return padPlaces(r, places)
	}

	// cur < places: zero-pad a non-normalised tail out to the requested width.
	return padPlaces(a.clone(), places)
}

// padPlaces extends r's digit slice with trailing zeros, non-normalised
// (the one exception N1 allows, for rounding/formatting buffers), until
// it represents exactly places fractional digits. A true zero value has
// no digits to pad regardless of places: its display width comes from
// the places argument the formatter passes to formatSigned.
func padPlaces(r SignedMag, places int) SignedMag {
	if r.isZero() {
		return r
	}
	want := r.mag + 1 + places
	if want <= r.sig() {
		return r
	}
	d := make([]uint8, want)
	copy(d, r.digits)
	return SignedMag{Mag: Mag{mag: r.mag, digits: d}, neg: r.neg}
}
