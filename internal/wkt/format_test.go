package wkt

import (
	"errors"
	"math"
	"testing"
)

func TestFormatCoord_FixedSixDigits(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.000000"},
		{1.5, "1.500000"},
		{-2.25, "-2.250000"},
		{123456.789, "123456.789000"},
		{-0.5, "-0.500000"},
		{1e-7, "0.000000"},
		{0.1234564, "0.123456"},
		{0.1234566, "0.123457"},
		{1e21, "1000000000000000000000.000000"}, // no scientific notation
	}
	for _, c := range cases {
		got, err := FormatCoord(c.in)
		if err != nil {
			t.Fatalf("FormatCoord(%v): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("FormatCoord(%v)=%q want %q", c.in, got, c.want)
		}
	}
}

func TestFormatCoord_NegativeNearZeroKeepsSign(t *testing.T) {
	got, err := FormatCoord(-0.0000004)
	if err != nil {
		t.Fatalf("FormatCoord: %v", err)
	}
	if got != "-0.000000" {
		t.Fatalf("FormatCoord(-0.0000004)=%q want %q", got, "-0.000000")
	}
}

func TestFormatCoord_NonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FormatCoord(v)
		if !errors.Is(err, ErrNonFiniteCoordinate) {
			t.Fatalf("FormatCoord(%v): err=%v want ErrNonFiniteCoordinate", v, err)
		}
	}
}

func TestAppendCoord_LeavesPrefixIntact(t *testing.T) {
	out, err := AppendCoord([]byte("x="), 4)
	if err != nil {
		t.Fatalf("AppendCoord: %v", err)
	}
	if string(out) != "x=4.000000" {
		t.Fatalf("AppendCoord prefix broken: %q", out)
	}
}
