// Copyright 2024 The stringdecimal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringdecimal

import "testing"

func mustSd(t *testing.T, text string) *Sd {
	t.Helper()
	v, rest, err := Parse(text, nil)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", text, err)
	}
	if rest != "" {
		t.Fatalf("Parse(%q) left unconsumed tail %q", text, rest)
	}
	return v
}

func fmtSd(s *Sd) string {
	return s.Format(&Config{Format: FormatLimit})
}

func TestSdAddSub(t *testing.T) {
	a, b := mustSd(t, "1.1"), mustSd(t, "2.22")
	if got := fmtSd(a.Add(b)); got != "3.32" {
		t.Errorf("1.1 + 2.22 = %s, want 3.32", got)
	}
	if got := fmtSd(a.Sub(b)); got != "-1.12" {
		t.Errorf("1.1 - 2.22 = %s, want -1.12", got)
	}
}

func TestSdMulCancellation(t *testing.T) {
	// (1/3) * 3 should cancel the denominator exactly rather than
	// round-tripping through long division.
	third := NewInt(1).Div(NewInt(3))
	got := fmtSd(third.Mul(NewInt(3)))
	if got != "1" {
		t.Errorf("(1/3)*3 = %s, want 1", got)
	}
}

func TestSdDivDeferred(t *testing.T) {
	a, b := NewInt(1), NewInt(3)
	r := a.Div(b)
	if r.den == nil {
		t.Fatalf("Div of non-dividing integers should defer via a denominator")
	}
	if got := r.Format(&Config{Format: FormatExact, Places: 4}); got != "0.3333" {
		t.Errorf("1/3 to 4 places = %s, want 0.3333", got)
	}
}

func TestSdDivByZero(t *testing.T) {
	r := NewInt(1).Div(NewInt(0))
	if r.Err() != ErrDivisionByZero {
		t.Errorf("1/0 err = %v, want ErrDivisionByZero", r.Err())
	}
}

func TestSdStickyFailure(t *testing.T) {
	bad := NewInt(1).Div(NewInt(0))
	r := bad.Add(NewInt(5))
	if r.Err() != ErrDivisionByZero {
		t.Errorf("failure did not stick through Add: %v", r.Err())
	}
}

func TestSdPow(t *testing.T) {
	cases := []struct {
		base, exp string
		want      string
	}{
		{"2", "10", "1024"},
		{"5", "0", "1"},
		{"2", "-1", ""}, // negative exponent fails
	}
	for _, c := range cases {
		a := mustSd(t, c.base)
		e := mustSd(t, c.exp)
		r := a.Pow(e)
		if c.want == "" {
			if r.Err() != ErrPowerNotPosInt {
				t.Errorf("%s^%s err = %v, want ErrPowerNotPosInt", c.base, c.exp, r.Err())
			}
			continue
		}
		if got := fmtSd(r); got != c.want {
			t.Errorf("%s^%s = %s, want %s", c.base, c.exp, got, c.want)
		}
	}
}

func TestSdCmp(t *testing.T) {
	half := NewInt(1).Div(NewInt(2))
	if half.Cmp(mustSd(t, "0.5")) != 0 {
		t.Errorf("1/2 should compare equal to 0.5")
	}
	if half.Cmp(NewInt(1)) >= 0 {
		t.Errorf("1/2 should be less than 1")
	}
}

func TestSdNegAbsInv(t *testing.T) {
	a := mustSd(t, "-3.5")
	if got := fmtSd(a.Abs()); got != "3.5" {
		t.Errorf("abs(-3.5) = %s, want 3.5", got)
	}
	if got := fmtSd(a.Neg()); got != "3.5" {
		t.Errorf("neg(-3.5) = %s, want 3.5", got)
	}
	inv := NewInt(4).Inv()
	if got := inv.Format(&Config{Format: FormatExact, Places: 2}); got != "0.25" {
		t.Errorf("inv(4) = %s, want 0.25", got)
	}
}

func TestSdShift10(t *testing.T) {
	a := mustSd(t, "1.5")
	if got := fmtSd(a.Shift10(2)); got != "150" {
		t.Errorf("1.5 shift10(2) = %s, want 150", got)
	}
}

func TestSdTidyAbsorbsPowerOfTenDenominator(t *testing.T) {
	r := NewInt(15).Div(NewInt(10))
	if r.den != nil {
		t.Errorf("15/10 should tidy its power-of-ten denominator away, got den=%v", r.den)
	}
	if got := fmtSd(r); got != "1.5" {
		t.Errorf("15/10 = %s, want 1.5", got)
	}
}

func TestSdIsZeroNegPos(t *testing.T) {
	z := NewInt(0)
	if !z.IsZero() || z.IsNeg() || z.IsPos() {
		t.Errorf("0 should be zero, not neg or pos")
	}
	n := NewInt(-3)
	if !n.IsNeg() || n.IsPos() || n.IsZero() {
		t.Errorf("-3 should be neg only")
	}
}
