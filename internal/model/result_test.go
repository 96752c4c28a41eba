package model

import (
	"strings"
	"testing"
)

func TestNewSearchResult(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		reference string
		wantTitle string
		wantRef   string
	}{
		{"plain", "Lofi Beats", "ref1", "Lofi Beats", "ref1"},
		{"empty title", "", "ref2", UntitledTitle, "ref2"},
		{"whitespace title", " \t ", "ref3", UntitledTitle, "ref3"},
		{"multiline title", "Lofi\nStudy\r\nMix", " ref4 ", "Lofi Study  Mix", "ref4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewSearchResult(tt.title, tt.reference)
			if r.Title != tt.wantTitle {
				t.Errorf("Title = %q, expected %q", r.Title, tt.wantTitle)
			}
			if r.Reference != tt.wantRef {
				t.Errorf("Reference = %q, expected %q", r.Reference, tt.wantRef)
			}
		})
	}
}

func TestSearchResult_DisplayLine(t *testing.T) {
	r := SearchResult{Title: "Lofi Beats", Reference: "https://www.youtube.com/watch?v=abc"}
	line := r.DisplayLine()

	expected := "Lofi Beats" + strings.Repeat(" ", TitleColumnWidth-len("Lofi Beats")) + " | https://www.youtube.com/watch?v=abc"
	if line != expected {
		t.Errorf("DisplayLine() = %q, expected %q", line, expected)
	}

	parts := strings.Split(line, ColumnSeparator)
	if got := parts[len(parts)-1]; got != r.Reference {
		t.Errorf("reference column = %q, expected %q", got, r.Reference)
	}
}

func TestSearchResult_DisplayLineLongTitle(t *testing.T) {
	title := strings.Repeat("x", TitleColumnWidth+15)
	r := SearchResult{Title: title, Reference: "ref"}

	if got := r.DisplayLine(); got != title+" | ref" {
		t.Errorf("long titles must not be truncated, got %q", got)
	}
}
