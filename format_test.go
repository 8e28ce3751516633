package main

import "testing"

func TestFormatElapsed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{3661, "1:01:01"},
		{3600, "1:00:00"},
		{61, "1:01"},
		{60, "1:00"},
		{59.94, "59.94s"},
		{1.5, "1.50s"},
		{1, "1.00s"},
		{0.9995, "1.00s"},
		{0.9994, "0.999s"},
		{0.25, "0.250s"},
		{0, "0.000s"},
		{-3, "0.000s"},
	}
	for _, c := range cases {
		if got := formatElapsed(c.in); got != c.want {
			t.Fatalf("formatElapsed(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	if got := formatValue(Value{Raw: "P0301"}); got != "P0301" {
		t.Fatalf("raw cells pass through, got %q", got)
	}
	if got := formatValue(Value{Num: 1234.5, Numeric: true}); got != "1234.5" {
		t.Fatalf("numeric formatting changed: %q", got)
	}
}
