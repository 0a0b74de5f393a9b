package walker

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrRootUnreadable is returned when the traversal root cannot be listed.
var ErrRootUnreadable = errors.New("root directory unreadable")

// DirectoryReadError reports a directory whose entries could not be listed.
type DirectoryReadError struct {
	Path string
	Err  error
}

func (readError *DirectoryReadError) Error() string {
	return fmt.Sprintf(diagnosticFormat, readError.Path, causeMessage(readError.Err))
}

func (readError *DirectoryReadError) Unwrap() error {
	return readError.Err
}

// causeMessage strips the *fs.PathError wrapper so diagnostics do not repeat the path.
func causeMessage(err error) string {
	var pathError *fs.PathError
	if errors.As(err, &pathError) && pathError.Err != nil {
		return pathError.Err.Error()
	}
	return err.Error()
}
