// Package clipboard copies rendered trees to the system clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

const errorClipboardUnsupportedMessage = "system clipboard is not available"

// Copier receives the rendered tree text.
type Copier interface {
	Copy(text string) error
}

// Service copies text with github.com/atotto/clipboard.
type Service struct{}

// NewService constructs a clipboard Service.
func NewService() *Service {
	return &Service{}
}

// Copy replaces the clipboard contents with text.
func (service *Service) Copy(text string) error {
	if clipboard.Unsupported {
		return errors.New(errorClipboardUnsupportedMessage)
	}
	return clipboard.WriteAll(text)
}

var _ Copier = (*Service)(nil)
