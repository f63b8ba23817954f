package pokeapi

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildSpriteListSkipsNullsAndOddShapes(t *testing.T) {
	var sprites map[string]json.RawMessage
	raw := `{
		"front_default": "a",
		"front_shiny": "",
		"back_default": null,
		"back_shiny": "a",
		"back_female": 42,
		"other": {"home": "not-an-object", "dream_world": {"front_default": "b"}}
	}`
	if err := json.Unmarshal([]byte(raw), &sprites); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := buildSpriteList(sprites)
	if strings.Join(got, ",") != "b,a" {
		t.Fatalf("buildSpriteList() = %v, want [b a]", got)
	}
	if got := buildSpriteList(nil); len(got) != 0 {
		t.Fatalf("expected no sprites for nil input, got %v", got)
	}
}

func TestSanitizeFlavorText(t *testing.T) {
	var s speciesPayload
	raw := `{"flavor_text_entries": [
		{"flavor_text": "ignored", "language": {"name": "fr"}},
		{"flavor_text": "\fLine one\nline two\r\n", "language": {"name": "en"}}
	]}`
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := sanitizeFlavorText(s)
	if got == nil || *got != "Line one line two" {
		t.Fatalf("sanitizeFlavorText() = %v", got)
	}
	if sanitizeFlavorText(speciesPayload{}) != nil {
		t.Fatal("expected nil without an English entry")
	}
}

func TestNormalizeRejectsBadTypeCounts(t *testing.T) {
	if _, err := normalize(pokemonPayload{Name: "empty"}, speciesPayload{}); err == nil {
		t.Fatal("expected error for zero types")
	}
	if _, err := normalize(pokemonPayload{}, speciesPayload{}); err == nil {
		t.Fatal("expected error for missing name")
	}
}
