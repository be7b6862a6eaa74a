package stringdecimal

import "testing"

func TestUcmp(t *testing.T) {
	a := mustMag(t, "123")
	b := mustMag(t, "45")
	if ucmp(a, b, 0) <= 0 {
		t.Errorf("ucmp(123, 45) should be > 0")
	}
	if ucmp(b, a, 0) >= 0 {
		t.Errorf("ucmp(45, 123) should be < 0")
	}
	if ucmp(a, a, 0) != 0 {
		t.Errorf("ucmp(123, 123) should be 0")
	}
	// 45 shifted left 1 place (450) now exceeds 123.
	if ucmp(a, b, 1) >= 0 {
		t.Errorf("ucmp(123, 45<<1=450) should be < 0")
	}
}

func TestUaddUsub(t *testing.T) {
	a := mustMag(t, "123.4")
	b := mustMag(t, "6.78")
	if got := uadd(a, b, 0).String(); got != "130.18" {
		t.Errorf("123.4 + 6.78 = %s, want 130.18", got)
	}
	if got := usub(a, b, 0).String(); got != "116.62" {
		t.Errorf("123.4 - 6.78 = %s, want 116.62", got)
	}
	// boff shifts b left by one decimal place before combining.
	if got := uadd(a, b, 1).String(); got != "191.2" {
		t.Errorf("123.4 + shift(6.78,1)=67.8 = %s, want 191.2", got)
	}
}

func TestUmul(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"12", "12", "144"},
		{"1.5", "2", "3"},
		{"0", "99", "0"},
		{"999", "999", "998001"},
	}
	for _, c := range cases {
		got := umul(mustMag(t, c.a), mustMag(t, c.b)).String()
		if got != c.want {
			t.Errorf("umul(%s,%s) = %s, want %s", c.a, c.b, got, c.want)
		}
	}
}

func TestUdivExact(t *testing.T) {
	q, rem, err := udiv(mustMag(t, "10"), mustMag(t, "4"), 2, RoundTruncate, false, true)
	if err != nil {
		t.Fatalf("udiv error: %v", err)
	}
	if got := q.String(); got != "2.5" {
		t.Errorf("10/4 to 2 places = %s, want 2.5", got)
	}
	if !rem.isZero() {
		t.Errorf("10/4 to 2 places should have a zero remainder, got %s", rem.String())
	}
}

func TestUdivRounding(t *testing.T) {
	cases := []struct {
		a, b   string
		places int
		mode   RoundMode
		want   string
	}{
		{"1", "3", 2, RoundTruncate, "0.33"},
		{"1", "3", 2, RoundUp, "0.34"},
		{"2", "4", 1, RoundBanking, "0.5"},
		{"1", "8", 2, RoundBanking, "0.12"}, // 0.125 banks to even (0.12)
		{"3", "8", 2, RoundBanking, "0.38"}, // 0.375 banks to even (0.38)
	}
	for _, c := range cases {
		q, _, err := udiv(mustMag(t, c.a), mustMag(t, c.b), c.places, c.mode, false, false)
		if err != nil {
			t.Fatalf("udiv(%s,%s) error: %v", c.a, c.b, err)
		}
		if got := q.String(); got != c.want {
			t.Errorf("udiv(%s/%s, places=%d, mode=%c) = %s, want %s", c.a, c.b, c.places, c.mode, got, c.want)
		}
	}
}

func TestUdivByZero(t *testing.T) {
	_, _, err := udiv(mustMag(t, "1"), magZero, 2, RoundTruncate, false, false)
	if err != ErrDivisionByZero {
		t.Errorf("udiv by zero = %v, want ErrDivisionByZero", err)
	}
}
