package utils

import "testing"

func TestFormatNumberBR(t *testing.T) {
	cases := []struct {
		v        float64
		decimals int
		want     string
	}{
		{1234.5, 2, "1.234,50"},
		{1234567.891, 2, "1.234.567,89"},
		{0, 2, "0,00"},
		{-42.1, 1, "-42,1"},
		{999, 2, "999,00"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.v, c.decimals, LocaleBR); got != c.want {
			t.Fatalf("FormatNumber(%v, %d): got %q want %q", c.v, c.decimals, got, c.want)
		}
	}
}

func TestFormatNumberUS(t *testing.T) {
	if got := FormatNumber(1234.5, 2, LocaleUS); got != "1,234.50" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatCurrency(t *testing.T) {
	if got := FormatCurrency(89.9, LocaleBR); got != "R$ 89,90" {
		t.Fatalf("got %q", got)
	}
	if got := FormatCurrency(89.9, LocaleUS); got != "$ 89.90" {
		t.Fatalf("got %q", got)
	}
}

func TestLocaleFor(t *testing.T) {
	if LocaleFor("en-US") != LocaleUS {
		t.Fatalf("en-US should map to the US locale")
	}
	if LocaleFor("") != LocaleBR {
		t.Fatalf("empty name should default to pt-BR")
	}
	if LocaleFor("something-else") != LocaleBR {
		t.Fatalf("unknown name should default to pt-BR")
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := map[string]string{
		"2024-06-01":  "2024-06-01",
		"01/06/2024":  "2024-06-01",
		" 2024-06-01": "2024-06-01",
		"not-a-date":  "",
		"":            "",
	}
	for in, want := range cases {
		if got := NormalizeDate(in); got != want {
			t.Fatalf("NormalizeDate(%q): got %q want %q", in, got, want)
		}
	}
}

func TestFormatDateBR(t *testing.T) {
	if got := FormatDateBR("2024-06-01"); got != "01/06/2024" {
		t.Fatalf("got %q", got)
	}
	// unparseable values pass through untouched
	if got := FormatDateBR("???"); got != "???" {
		t.Fatalf("got %q", got)
	}
}
