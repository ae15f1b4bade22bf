package utils

import "testing"

func TestFormatTaka(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Tk 0"},
		{999, "Tk 999"},
		{1000, "Tk 1,000"},
		{1234567, "Tk 1,234,567"},
		{-1000, "-Tk 1,000"},
	}
	for _, c := range cases {
		if got := FormatTaka(c.in); got != c.want {
			t.Fatalf("FormatTaka(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseTakaToInt(t *testing.T) {
	if v, err := ParseTakaToInt("Tk 1,000"); err != nil || v != 1000 {
		t.Fatalf("got %d, %v", v, err)
	}
	if v, err := ParseTakaToInt("12500"); err != nil || v != 12500 {
		t.Fatalf("got %d, %v", v, err)
	}
	if _, err := ParseTakaToInt("Tk "); err == nil {
		t.Fatalf("expected error for empty amount")
	}
}

func TestLeadingInt(t *testing.T) {
	if got := LeadingInt("3 Days / 2 Nights"); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	if got := LeadingInt("  10 Days"); got != 10 {
		t.Fatalf("got %d, want 10", got)
	}
	if got := LeadingInt("Overnight Getaway"); got != 0 {
		t.Fatalf("value without a leading digit should yield 0, got %d", got)
	}
	if got := LeadingInt(""); got != 0 {
		t.Fatalf("empty value should yield 0, got %d", got)
	}
}
