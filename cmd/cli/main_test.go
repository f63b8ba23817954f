package main

import "testing"

func TestPercent(t *testing.T) {
	cases := map[float64]string{
		0:          "0%",
		6.0 / 18.0: "33%",
		0.5:        "50%",
		1:          "100%",
	}
	for in, want := range cases {
		if got := percent(in); got != want {
			t.Fatalf("percent(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestLabel(t *testing.T) {
	if got := label("special-attack"); got != "Special Attack" {
		t.Fatalf("label() = %q", got)
	}
}
