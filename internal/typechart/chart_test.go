package typechart

import "testing"

func TestEveryTypeHasARow(t *testing.T) {
	if Count() != 18 {
		t.Fatalf("expected 18 types, got %d", Count())
	}
	for _, name := range Types() {
		if !Known(name) {
			t.Fatalf("type %q missing from chart", name)
		}
		for defender := range chart[name] {
			if !Known(defender) {
				t.Fatalf("row %q references unknown defender %q", name, defender)
			}
		}
	}
}

func TestMultiplierValues(t *testing.T) {
	cases := []struct {
		attacker, defender string
		want               float64
	}{
		{"fire", "water", 0.5},
		{"water", "fire", 2},
		{"fire", "grass", 2},
		{"fire", "poison", 1},
		{"normal", "ghost", 0},
		{"ghost", "normal", 0},
		{"electric", "ground", 0},
		{"ground", "electric", 2},
		{"dragon", "fairy", 0},
		{"unknown", "fire", 1},
		{"fire", "unknown", 1},
	}
	for _, tc := range cases {
		if got := Multiplier(tc.attacker, tc.defender); got != tc.want {
			t.Fatalf("Multiplier(%s, %s) = %v, want %v", tc.attacker, tc.defender, got, tc.want)
		}
	}
}

func TestValuesAreFromTheAllowedSet(t *testing.T) {
	for attacker, row := range chart {
		for defender, v := range row {
			switch v {
			case 0, 0.5, 2:
			default:
				t.Fatalf("%s -> %s has non-chart value %v", attacker, defender, v)
			}
		}
	}
}

func TestTypesReturnsCopy(t *testing.T) {
	types := Types()
	types[0] = "mutated"
	if Types()[0] != "normal" {
		t.Fatal("Types() exposed the internal order slice")
	}
	if Index("fairy") != 17 || Index("nope") != -1 {
		t.Fatalf("unexpected Index results: %d %d", Index("fairy"), Index("nope"))
	}
}
