package persistence

import "strings"

// ValidateSortOrder normalizes the sort direction to ASC or DESC,
// defaulting to DESC for anything unrecognized
func ValidateSortOrder(orderDir string) string {
	if strings.EqualFold(strings.TrimSpace(orderDir), "asc") {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField checks a sort column against an allowlist and falls
// back to defaultField for anything not listed. Sort columns come from
// query strings and must never reach the ORDER BY clause unchecked.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" || !allowedFields[trimmed] {
		return defaultField
	}
	return trimmed
}

// AuthorSortFields contains allowed sort columns for authors
var AuthorSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"first_name": true,
	"last_name":  true,
}

// PostSortFields contains allowed sort columns for posts
var PostSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"edited_at":  true,
	"title":      true,
	"author_id":  true,
}
