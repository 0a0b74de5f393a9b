package utils

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewApplicationLogger(t *testing.T) {
	logger, loggerError := NewApplicationLogger()
	if loggerError != nil {
		t.Fatalf("NewApplicationLogger error: %v", loggerError)
	}
	if logger == nil {
		t.Fatalf("expected logger instance")
	}
	if !logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("expected info level to be enabled")
	}
}

func TestFindCheckoutDirectory(t *testing.T) {
	checkoutDirectory := t.TempDir()
	if err := os.Mkdir(filepath.Join(checkoutDirectory, gitDirectoryName), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	nestedDirectory := filepath.Join(checkoutDirectory, "internal", "walker")
	if err := os.MkdirAll(nestedDirectory, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	foundDirectory, findError := findCheckoutDirectory(nestedDirectory)
	if findError != nil {
		t.Fatalf("findCheckoutDirectory error: %v", findError)
	}
	expectedDirectory, _ := filepath.Abs(checkoutDirectory)
	if foundDirectory != expectedDirectory {
		t.Fatalf("expected %s, got %s", expectedDirectory, foundDirectory)
	}
}
