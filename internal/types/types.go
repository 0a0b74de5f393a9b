// Package types defines the data structures shared by the dirtree packages.
package types

const (
	// SortByName orders entries by the byte order of their names.
	SortByName = "name"
	// SortIgnoreCase orders entries by case-folded name, falling back to byte order on ties.
	SortIgnoreCase = "ignore-case"
)

// Request is a traversal request resolved from command line input.
// It is never modified once a traversal starts.
type Request struct {
	Root           string
	MaxDepth       *int
	ShowHidden     bool
	FollowSymlinks bool
	SortOrder      string
}

// DepthAllows reports whether a directory at currentDepth may be listed.
func (request Request) DepthAllows(currentDepth int) bool {
	return request.MaxDepth == nil || currentDepth < *request.MaxDepth
}

// Summary counts the directories and files visited by one traversal frame.
type Summary struct {
	Directories int
	Files       int
}

// Merge returns the sum of both summaries.
func (summary Summary) Merge(other Summary) Summary {
	return Summary{
		Directories: summary.Directories + other.Directories,
		Files:       summary.Files + other.Files,
	}
}
