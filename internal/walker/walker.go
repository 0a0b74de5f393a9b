// Package walker renders a directory hierarchy as a connector-glyph tree.
//
// The walk is depth-first and pre-order: a directory line always precedes the
// lines of its children and siblings appear in sorted order. Failures to list
// a directory below the root are reported to the diagnostics logger and the
// walk continues with the remaining siblings.
package walker

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/temirov/dirtree/internal/types"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	hiddenEntryMarker      = "."
	invalidNameReplacement = "�"
	symlinkTargetFormat    = "%s -> %s"
	treeLineFormat         = "%s%s%s\n"
	diagnosticFormat       = "%s: %s"
	symlinkCycleFormat     = "%s: symlink cycle to %s"
	errorRootStatFormat    = "%w: %s: %s"
	errorRootIsFileFormat  = "%w: %s: not a directory"
	errorRootReadFormat    = "%w: %v"
	errorWriteLineFormat   = "writing tree line: %w"
)

// ancestor is an open directory on the path from the root to the current frame.
type ancestor struct {
	path string
	info os.FileInfo
}

// Walker renders tree lines for a single traversal request.
type Walker struct {
	fileSystem FileSystem
	output     io.Writer
	logger     *zap.Logger
	request    types.Request
	folder     cases.Caser
}

// New constructs a Walker writing tree lines to output and diagnostics to logger.
func New(fileSystem FileSystem, output io.Writer, logger *zap.Logger, request types.Request) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if request.SortOrder == "" {
		request.SortOrder = types.SortByName
	}
	return &Walker{
		fileSystem: fileSystem,
		output:     output,
		logger:     logger,
		request:    request,
		folder:     cases.Fold(),
	}
}

// Tree prints the root path followed by its tree and returns the aggregate counts.
// Only a failure to inspect or list the root itself is returned as an error;
// deeper failures are reported to the diagnostics logger.
func (walker *Walker) Tree() (types.Summary, error) {
	root := walker.request.Root
	rootInfo, statError := walker.fileSystem.Stat(root)
	if statError != nil {
		return types.Summary{}, fmt.Errorf(errorRootStatFormat, ErrRootUnreadable, root, causeMessage(statError))
	}
	if !rootInfo.IsDir() {
		return types.Summary{}, fmt.Errorf(errorRootIsFileFormat, ErrRootUnreadable, root)
	}
	if _, writeError := fmt.Fprintln(walker.output, root); writeError != nil {
		return types.Summary{}, fmt.Errorf(errorWriteLineFormat, writeError)
	}
	summary, walkError := walker.walk(root, "", 0, []ancestor{{path: root, info: rootInfo}})
	var readError *DirectoryReadError
	if errors.As(walkError, &readError) {
		return summary, fmt.Errorf(errorRootReadFormat, ErrRootUnreadable, readError)
	}
	return summary, walkError
}

// walk renders the children of directoryPath below prefix and returns their counts.
// ancestors holds the open directories from the root down to directoryPath.
func (walker *Walker) walk(directoryPath string, prefix string, currentDepth int, ancestors []ancestor) (types.Summary, error) {
	var summary types.Summary
	if !walker.request.DepthAllows(currentDepth) {
		return summary, nil
	}
	directoryInfo, statError := walker.fileSystem.Stat(directoryPath)
	if statError != nil || !directoryInfo.IsDir() {
		return summary, nil
	}

	entries, readError := walker.fileSystem.ReadDir(directoryPath)
	if readError != nil {
		return summary, &DirectoryReadError{Path: directoryPath, Err: readError}
	}
	entries = walker.visibleEntries(entries)
	walker.sortEntries(entries)

	for index, entry := range entries {
		connector, padding := treeBranchConnector, treeBranchPadding
		if index == len(entries)-1 {
			connector, padding = treeLastConnector, treeLastPadding
		}
		entryPath := filepath.Join(directoryPath, entry.Name())
		isSymlink := entry.Mode()&os.ModeSymlink != 0

		displayName := strings.ToValidUTF8(entry.Name(), invalidNameReplacement)
		if isSymlink {
			displayName = walker.annotateSymlink(entryPath, displayName)
		}
		if _, writeError := fmt.Fprintf(walker.output, treeLineFormat, prefix, connector, displayName); writeError != nil {
			return summary, fmt.Errorf(errorWriteLineFormat, writeError)
		}

		targetInfo := entry
		if isSymlink {
			resolvedInfo, resolveError := walker.fileSystem.Stat(entryPath)
			if resolveError != nil {
				continue
			}
			targetInfo = resolvedInfo
		}

		switch {
		case targetInfo.IsDir():
			summary.Directories++
			if isSymlink && !walker.request.FollowSymlinks {
				continue
			}
			if cyclePath, isCycle := findAncestor(ancestors, targetInfo); isCycle {
				walker.logger.Warn(fmt.Sprintf(symlinkCycleFormat, entryPath, cyclePath))
				continue
			}
			childSummary, childError := walker.walk(entryPath, prefix+padding, currentDepth+1, appendAncestor(ancestors, entryPath, targetInfo))
			summary = summary.Merge(childSummary)
			if childError != nil {
				var childReadError *DirectoryReadError
				if !errors.As(childError, &childReadError) {
					return summary, childError
				}
				walker.logger.Warn(childReadError.Error())
			}
		case targetInfo.Mode().IsRegular():
			summary.Files++
		}
	}
	return summary, nil
}

// visibleEntries drops hidden entries unless the request shows them.
func (walker *Walker) visibleEntries(entries []os.FileInfo) []os.FileInfo {
	if walker.request.ShowHidden {
		return entries
	}
	visible := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), hiddenEntryMarker) {
			continue
		}
		visible = append(visible, entry)
	}
	return visible
}

// sortEntries orders entries deterministically; byte order breaks every tie.
func (walker *Walker) sortEntries(entries []os.FileInfo) {
	if walker.request.SortOrder != types.SortIgnoreCase {
		sort.SliceStable(entries, func(left, right int) bool {
			return entries[left].Name() < entries[right].Name()
		})
		return
	}
	foldedNames := make(map[string]string, len(entries))
	for _, entry := range entries {
		foldedNames[entry.Name()] = walker.folder.String(entry.Name())
	}
	sort.SliceStable(entries, func(left, right int) bool {
		leftName, rightName := entries[left].Name(), entries[right].Name()
		if foldedNames[leftName] != foldedNames[rightName] {
			return foldedNames[leftName] < foldedNames[rightName]
		}
		return leftName < rightName
	})
}

// annotateSymlink appends the link target to displayName. The target is not followed.
func (walker *Walker) annotateSymlink(linkPath string, displayName string) string {
	target, linkError := walker.fileSystem.ReadLink(linkPath)
	if linkError != nil {
		walker.logger.Warn(fmt.Sprintf(diagnosticFormat, linkPath, causeMessage(linkError)))
		return displayName
	}
	return fmt.Sprintf(symlinkTargetFormat, displayName, strings.ToValidUTF8(target, invalidNameReplacement))
}

// findAncestor returns the path of the open directory that candidate refers to, if any.
func findAncestor(ancestors []ancestor, candidate os.FileInfo) (string, bool) {
	for _, open := range ancestors {
		if os.SameFile(open.info, candidate) {
			return open.path, true
		}
	}
	return "", false
}

// appendAncestor copies ancestors so sibling frames never share a backing array.
func appendAncestor(ancestors []ancestor, directoryPath string, directoryInfo os.FileInfo) []ancestor {
	extended := make([]ancestor, len(ancestors), len(ancestors)+1)
	copy(extended, ancestors)
	return append(extended, ancestor{path: directoryPath, info: directoryInfo})
}
