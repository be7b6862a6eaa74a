package stringdecimal

import "testing"

func mustMag(t *testing.T, text string) Mag {
	t.Helper()
	v, rest, err := Parse(text, nil)
	if err != nil || rest != "" {
		t.Fatalf("Parse(%q) = %v, rest %q, err %v", text, v, rest, err)
	}
	if v.num.neg {
		t.Fatalf("Parse(%q) produced a negative magnitude", text)
	}
	return v.num.Mag
}

func TestMagNorm(t *testing.T) {
	cases := []struct {
		in       Mag
		wantMag  int
		wantSig  int
		wantZero bool
	}{
		{Mag{mag: 2, digits: []uint8{0, 1, 2, 0}}, 1, 2, false},
		{Mag{mag: 5, digits: []uint8{0, 0, 0}}, 0, 0, true},
		{Mag{mag: 0, digits: []uint8{5}}, 0, 1, false},
	}
	for _, c := range cases {
		got := c.in.norm()
		if got.isZero() != c.wantZero {
			t.Errorf("norm(%v).isZero() = %v, want %v", c.in, got.isZero(), c.wantZero)
			continue
		}
		if c.wantZero {
			continue
		}
		if got.mag != c.wantMag || got.sig() != c.wantSig {
			t.Errorf("norm(%v) = {mag:%d sig:%d}, want {mag:%d sig:%d}", c.in, got.mag, got.sig(), c.wantMag, c.wantSig)
		}
	}
}

func TestMagPlaces(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"123", 0},
		{"123.45", 2},
		{"0.001", 3},
		{"0", 0},
	}
	for _, c := range cases {
		m := mustMag(t, c.text)
		if got := m.places(); got != c.want {
			t.Errorf("Parse(%q).places() = %d, want %d", c.text, got, c.want)
		}
	}
}

func TestMagShift(t *testing.T) {
	m := mustMag(t, "1.5")
	if got := m.shift(2).String(); got != "150" {
		t.Errorf("1.5 shift 2 = %s, want 150", got)
	}
	if got := m.shift(-2).String(); got != "0.015" {
		t.Errorf("1.5 shift -2 = %s, want 0.015", got)
	}
	if !magZero.shift(5).isZero() {
		t.Errorf("shift of zero must stay zero")
	}
}

func TestMagString(t *testing.T) {
	cases := []struct{ text, want string }{
		{"123.45", "123.45"},
		{"0", "0"},
		{"0.5", "0.5"},
		{"100", "100"},
	}
	for _, c := range cases {
		if got := mustMag(t, c.text).String(); got != c.want {
			t.Errorf("Parse(%q).String() = %s, want %s", c.text, got, c.want)
		}
	}
}
