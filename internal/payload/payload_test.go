package payload

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseTargetLangs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", []string{}},
		{"blank", "   ", []string{}},
		{"only commas", ", ,,", []string{}},
		{"single", "ru", []string{"ru"}},
		{"trailing comma and spaces", "ru, uk ,", []string{"ru", "uk"}},
		{"order kept", "uk,ru,de", []string{"uk", "ru", "de"}},
		{"duplicates kept", "ru,ru", []string{"ru", "ru"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTargetLangs(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTargetLangs(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSourceLangOrDefault(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", "en"},
		{"  ", "en"},
		{"uk", "uk"},
		{" de ", "de"},
	}

	for _, tt := range tests {
		if got := SourceLangOrDefault(tt.raw); got != tt.want {
			t.Errorf("SourceLangOrDefault(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNew_JSONShape(t *testing.T) {
	req := New("", "ru,uk", "  hello \n")

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"source_lang":"en","target_langs":["ru","uk"],"text":"hello"}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestCleanLangs(t *testing.T) {
	got := CleanLangs([]string{" ru", "", "  ", "uk "})
	want := []string{"ru", "uk"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CleanLangs() = %#v, want %#v", got, want)
	}
}
