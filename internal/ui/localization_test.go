package ui

import "testing"

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		name string
		lang string
		want string
	}{
		{"english", "en", "en"},
		{"russian", "ru", "ru"},
		{"portuguese", "pt", "pt"},
		{"system falls back to english", "system", "en"},
		{"unknown keeps current", "de", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLocalization()
			l.SetLanguage(tt.lang)
			if got := l.GetCurrentLanguage(); got != tt.want {
				t.Errorf("SetLanguage(%q) = %q, want %q", tt.lang, got, tt.want)
			}
		})
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !ok {
			t.Fatalf("no texts for %s", code)
		}
		for key := range english {
			if _, found := texts[key]; !found {
				t.Errorf("%s: missing key %s", code, key)
			}
		}
	}
}

func TestLocalization_GetTextFallback(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("expected key fallback, got %q", got)
	}
	if got := l.GetText(KeySelectAtLeastOne); got == "" || got == KeySelectAtLeastOne {
		t.Errorf("expected a Russian text, got %q", got)
	}
}

func TestLocalization_Format(t *testing.T) {
	l := NewLocalization()

	if got := l.Format(KeyBatchSummary, 3, 1); got != "3 succeeded, 1 failed" {
		t.Errorf("unexpected summary %q", got)
	}
	if got := l.Format(KeyResultsFound, 7); got != "7 results" {
		t.Errorf("unexpected count %q", got)
	}
}
