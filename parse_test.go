package main

import (
	"strings"
	"testing"
)

func TestParseDelimiterFollowsHeader(t *testing.T) {
	t.Parallel()

	// A ';' in the header selects ';' for the whole document, so a comma
	// inside a cell is data, not a separator.
	raw := "time;rpm\n0;1,5\n1;2000\n"
	parsed, err := ParseLog(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(parsed.Columns) != 1 {
		t.Fatalf("expected 1 column, got %d", len(parsed.Columns))
	}
	v := parsed.Data[0].Values["rpm"]
	if v.Numeric || v.Raw != "1,5" {
		t.Fatalf("expected raw cell %q, got %+v", "1,5", v)
	}

	// No ';' in the header means ',' everywhere.
	parsed, err = ParseLog("time,rpm\n0,1000\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !parsed.Data[0].Values["rpm"].Numeric {
		t.Fatalf("expected numeric rpm cell, got %+v", parsed.Data[0].Values["rpm"])
	}
}

func TestParseColumnKeysAreUnique(t *testing.T) {
	t.Parallel()

	parsed, err := ParseLog("Time,RPM,rpm!\n0,1,2\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(parsed.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(parsed.Columns))
	}
	if parsed.Columns[0].Key != "rpm" || parsed.Columns[1].Key != "rpm_1" {
		t.Fatalf("expected keys rpm, rpm_1, got %q, %q", parsed.Columns[0].Key, parsed.Columns[1].Key)
	}
	if parsed.Columns[1].Name != "rpm!" {
		t.Fatalf("display name must keep the header text, got %q", parsed.Columns[1].Name)
	}
}

func TestParseKeysSurviveSuffixCollisions(t *testing.T) {
	t.Parallel()

	// "a 1" already normalizes to a_1, so the dedup suffix for the second
	// "a" must skip past it
	parsed, err := ParseLog("time,a,a 1,a!\n0,1,2,3\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []string{"a", "a_1", "a_2"}
	for i, col := range parsed.Columns {
		if col.Key != want[i] {
			t.Fatalf("column %d key = %q, want %q (all: %v)", i, col.Key, want[i], parsed.Columns)
		}
	}
	if len(parsed.Data[0].Values) != 3 {
		t.Fatalf("colliding keys lost a value cell: %v", parsed.Data[0].Values)
	}
}

func TestParseRowCountInvariant(t *testing.T) {
	t.Parallel()

	// line 3 has a cell-count mismatch, line 4 a bad time
	raw := "time,rpm\n0,1000\n1,2000,extra\nnope,3000\n2,4000\n"
	parsed, err := ParseLog(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.TotalRows != len(parsed.Data) {
		t.Fatalf("TotalRows %d != len(Data) %d", parsed.TotalRows, len(parsed.Data))
	}
	if parsed.TotalRows != 2 {
		t.Fatalf("expected 2 accepted rows, got %d", parsed.TotalRows)
	}
}

func TestParseTimeRangeOverAcceptedRows(t *testing.T) {
	t.Parallel()

	// out of order times; the malformed row's time must not count
	raw := "time,rpm\n5,1\n1,2\nbad,99\n3,4\n"
	parsed, err := ParseLog(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.TimeRange.Min != 1 || parsed.TimeRange.Max != 5 {
		t.Fatalf("expected range [1,5], got [%v,%v]", parsed.TimeRange.Min, parsed.TimeRange.Max)
	}
}

func TestParseKeepsRowsWithTextCells(t *testing.T) {
	t.Parallel()

	parsed, err := ParseLog("time,rpm,pedal\n0,1000,10\n1,bad,20\n2,3000,30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// The time cell decides row acceptance, so the bad-rpm row stays.
	if parsed.TotalRows != 3 {
		t.Fatalf("expected 3 rows, got %d", parsed.TotalRows)
	}
	if got := parsed.Data[1].Values["rpm"]; got.Numeric || got.Raw != "bad" {
		t.Fatalf("expected rpm kept as raw %q, got %+v", "bad", got)
	}
	if parsed.TimeRange.Min != 0 || parsed.TimeRange.Max != 2 {
		t.Fatalf("expected range [0,2], got [%v,%v]", parsed.TimeRange.Min, parsed.TimeRange.Max)
	}
	keys := []string{parsed.Columns[0].Key, parsed.Columns[1].Key}
	if keys[0] != "rpm" || keys[1] != "pedal" {
		t.Fatalf("unexpected column keys %v", keys)
	}
}

func TestParseRejectsHeaderOnly(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "time,rpm", "time,rpm\n\n\n"} {
		_, err := ParseLog(raw)
		if err == nil {
			t.Fatalf("expected error for input %q", raw)
		}
		if !strings.Contains(err.Error(), "header and one data row") {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}
	}
}

func TestParseRejectsAllRowsInvalid(t *testing.T) {
	t.Parallel()

	_, err := ParseLog("time,rpm\nx,1\ny,2\n")
	if err == nil || !strings.Contains(err.Error(), "no valid data rows") {
		t.Fatalf("expected no-valid-rows error, got %v", err)
	}
}

func TestParseSampleRate(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString("time,rpm\n")
	b.WriteString("0.0,1\n0.1,2\n0.2,3\n0.3,4\n")
	parsed, err := ParseLog(b.String())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !parsed.HasSampleRate {
		t.Fatalf("expected sample rate to be derived")
	}
	if parsed.SampleRate < 0.099 || parsed.SampleRate > 0.101 {
		t.Fatalf("expected mean delta ~0.1, got %v", parsed.SampleRate)
	}

	single, err := ParseLog("time,rpm\n0,1\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if single.HasSampleRate {
		t.Fatalf("one row cannot yield a sample rate")
	}
}

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want string }{
		{"Engine RPM", "engine_rpm"},
		{"  Boost (bar)  ", "boost__bar"},
		{"rpm!", "rpm"},
		{"Time", "time"},
	}
	for _, c := range cases {
		if got := normalizeKey(c.in); got != c.want {
			t.Fatalf("normalizeKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
