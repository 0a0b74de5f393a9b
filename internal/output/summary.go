// Package output formats the report printed after a rendered tree.
package output

import (
	"fmt"
	"io"

	"github.com/temirov/dirtree/internal/types"
)

const (
	directorySingular = "directory"
	directoryPlural   = "directories"
	fileSingular      = "file"
	filePlural        = "files"

	summaryLineFormat = "%d %s, %d %s"
)

// FormatSummaryLine renders counts as "<N> directory|directories, <M> file|files".
func FormatSummaryLine(summary types.Summary) string {
	return fmt.Sprintf(
		summaryLineFormat,
		summary.Directories,
		pluralize(summary.Directories, directorySingular, directoryPlural),
		summary.Files,
		pluralize(summary.Files, fileSingular, filePlural),
	)
}

// WriteSummary writes a blank separator line followed by the summary line.
func WriteSummary(writer io.Writer, summary types.Summary) error {
	_, writeError := fmt.Fprintf(writer, "\n%s\n", FormatSummaryLine(summary))
	return writeError
}

func pluralize(count int, singular string, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
