// Copyright 2024 The stringdecimal Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringdecimal

import "testing"

func mustSigned(t *testing.T, text string) SignedMag {
	t.Helper()
	v, rest, err := Parse(text, nil)
	if err != nil || rest != "" {
		t.Fatalf("Parse(%q) = %v, rest %q, err %v", text, v, rest, err)
	}
	return v.num
}

func signedString(x SignedMag) string {
	if x.neg {
		return "-" + x.Mag.String()
	}
	return x.Mag.String()
}

func TestScmp(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1", "2", -1},
		{"-1", "1", -1},
		{"-5", "-2", -1},
		{"3", "3", 0},
		{"0", "-0", 0},
	}
	for _, c := range cases {
		if got := scmp(mustSigned(t, c.a), mustSigned(t, c.b)); got != c.want {
			t.Errorf("scmp(%s,%s) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestSadd(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"5", "3", "8"},
		{"-5", "3", "-2"},
		{"5", "-3", "2"},
		{"-5", "-3", "-8"},
		{"5", "-5", "0"},
	}
	for _, c := range cases {
		got := signedString(sadd(mustSigned(t, c.a), mustSigned(t, c.b)))
		if got != c.want {
			t.Errorf("sadd(%s,%s) = %s, want %s", c.a, c.b, got, c.want)
		}
	}
}

func TestSsub(t *testing.T) {
	got := signedString(ssub(mustSigned(t, "5"), mustSigned(t, "8")))
	if got != "-3" {
		t.Errorf("5 - 8 = %s, want -3", got)
	}
}

func TestSmul(t *testing.T) {
	got := signedString(smul(mustSigned(t, "-4"), mustSigned(t, "5")))
	if got != "-20" {
		t.Errorf("-4 * 5 = %s, want -20", got)
	}
}

func TestSdivSignOfRemainder(t *testing.T) {
	q, rem, err := sdiv(mustSigned(t, "-7"), mustSigned(t, "2"), 0, RoundTruncate, true)
	if err != nil {
		t.Fatalf("sdiv error: %v", err)
	}
	if signedString(q) != "-3" {
		t.Errorf("-7 / 2 truncated = %s, want -3", signedString(q))
	}
	if signedString(rem) != "-1" {
		t.Errorf("-7 / 2 remainder = %s, want -1", signedString(rem))
	}
}

func TestSrndModes(t *testing.T) {
	cases := []struct {
		text   string
		places int
		mode   RoundMode
		want   string
	}{
		{"1.25", 1, RoundTruncate, "1.2"},
		{"1.25", 1, RoundUp, "1.3"},
		{"-1.25", 1, RoundUp, "-1.3"},
		{"1.5", 0, RoundFloor, "1"},
		{"-1.5", 0, RoundFloor, "-2"},
		{"1.5", 0, RoundCeiling, "2"},
		{"-1.5", 0, RoundCeiling, "-1"},
		{"2.5", 0, RoundRound, "3"},
		{"1.5", 0, RoundBanking, "2"},
		{"2.5", 0, RoundBanking, "2"},
		{"1.200", 3, RoundTruncate, "1.200"},
		{"-0.5", 0, RoundCeiling, "0"},
	}
	for _, c := range cases {
		got := signedString(srnd(mustSigned(t, c.text), c.places, c.mode))
		if got != c.want {
			t.Errorf("srnd(%s, %d, %c) = %s, want %s", c.text, c.places, c.mode, got, c.want)
		}
	}
}

func TestPadPlaces(t *testing.T) {
	got := signedString(padPlaces(mustSigned(t, "1.2"), 4))
	if got != "1.2000" {
		t.Errorf("padPlaces(1.2, 4) = %s, want 1.2000", got)
	}
	if got := signedString(padPlaces(mustSigned(t, "0"), 4)); got != "0" {
		t.Errorf("padPlaces(0, 4) = %s, want 0", got)
	}
}
