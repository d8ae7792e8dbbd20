package admin

import "strings"

// DefaultPageSize is the fixed display slice for every tab. There is no
// pagination state and no sort.
const DefaultPageSize = 20

// FilterByQuery keeps the items whose searchable strings contain query,
// case-insensitively. An empty query keeps everything. It never touches the
// network: filters run over the already-fetched collection.
func FilterByQuery[T any](items []T, query string, searchable func(T) []string) []T {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, s := range searchable(item) {
			if strings.Contains(strings.ToLower(s), query) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// FilterByEquals keeps items whose key equals want exactly. An empty want
// keeps everything, matching the "all" option of a filter dropdown.
func FilterByEquals[T any](items []T, want string, key func(T) string) []T {
	if want == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if key(item) == want {
			out = append(out, item)
		}
	}
	return out
}

// FirstPage returns the fixed leading slice shown in a tab.
func FirstPage[T any](items []T) []T {
	if len(items) <= DefaultPageSize {
		return items
	}
	return items[:DefaultPageSize]
}
