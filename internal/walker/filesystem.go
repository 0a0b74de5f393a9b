package walker

import (
	"os"

	"github.com/spf13/afero"
)

// FileSystem is the filesystem view the walker needs.
type FileSystem interface {
	// ReadDir lists a directory without following symbolic links in its entries.
	ReadDir(path string) ([]os.FileInfo, error)
	// Stat describes path, following symbolic links.
	Stat(path string) (os.FileInfo, error)
	// ReadLink returns the target of a symbolic link.
	ReadLink(path string) (string, error)
}

// AferoFileSystem implements FileSystem on top of an afero.Fs.
type AferoFileSystem struct {
	backend afero.Fs
}

// NewAferoFileSystem wraps the provided afero filesystem.
func NewAferoFileSystem(backend afero.Fs) *AferoFileSystem {
	return &AferoFileSystem{backend: backend}
}

// NewOSFileSystem returns a FileSystem backed by the operating system.
func NewOSFileSystem() *AferoFileSystem {
	return NewAferoFileSystem(afero.NewOsFs())
}

// ReadDir lists the directory entries of path.
func (fileSystem *AferoFileSystem) ReadDir(path string) ([]os.FileInfo, error) {
	return afero.ReadDir(fileSystem.backend, path)
}

// Stat describes path, following symbolic links.
func (fileSystem *AferoFileSystem) Stat(path string) (os.FileInfo, error) {
	return fileSystem.backend.Stat(path)
}

// ReadLink returns the link target when the backend supports symbolic links.
func (fileSystem *AferoFileSystem) ReadLink(path string) (string, error) {
	linkReader, supported := fileSystem.backend.(afero.LinkReader)
	if !supported {
		return "", &os.PathError{Op: "readlink", Path: path, Err: afero.ErrNoReadlink}
	}
	return linkReader.ReadlinkIfPossible(path)
}

var _ FileSystem = (*AferoFileSystem)(nil)
