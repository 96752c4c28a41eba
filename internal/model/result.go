package model

import (
	"fmt"
	"strings"
)

// Display constants for result rows
const (
	TitleColumnWidth = 60
	ColumnSeparator  = " | "
	UntitledTitle    = "No title"
)

// SearchResult is a single entry returned by a search.
type SearchResult struct {
	Title     string
	Reference string // opaque locator passed back to the downloader
}

// NewSearchResult builds a result with a display-safe title.
func NewSearchResult(title, reference string) SearchResult {
	return SearchResult{
		Title:     CleanTitle(title),
		Reference: strings.TrimSpace(reference),
	}
}

// DisplayLine renders the row shown in the results list: the title padded to
// TitleColumnWidth, the separator and the reference.
func (r SearchResult) DisplayLine() string {
	return fmt.Sprintf("%-*s%s%s", TitleColumnWidth, r.Title, ColumnSeparator, r.Reference)
}

// CleanTitle flattens control whitespace so a title fits on one row.
func CleanTitle(title string) string {
	title = strings.ReplaceAll(title, "\n", " ")
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\t", " ")
	title = strings.TrimSpace(title)
	if title == "" {
		return UntitledTitle
	}
	return title
}
