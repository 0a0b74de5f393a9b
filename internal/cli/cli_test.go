package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/dirtree/internal/config"
	"github.com/temirov/dirtree/internal/walker"
)

const testRoot = "/root"

type recordingCopier struct {
	copied []string
	err    error
}

func (copier *recordingCopier) Copy(text string) error {
	copier.copied = append(copier.copied, text)
	return copier.err
}

func newTestFileSystem(t *testing.T) walker.FileSystem {
	t.Helper()
	memoryFs := afero.NewMemMapFs()
	if err := memoryFs.MkdirAll(filepath.Join(testRoot, "a"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := afero.WriteFile(memoryFs, filepath.Join(testRoot, "b.txt"), []byte("b"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := afero.WriteFile(memoryFs, filepath.Join(testRoot, ".hidden"), []byte("h"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return walker.NewAferoFileSystem(memoryFs)
}

func executeCommand(t *testing.T, copier *recordingCopier, arguments ...string) (string, *observer.ObservedLogs, error) {
	t.Helper()
	observedCore, observedLogs := observer.New(zapcore.WarnLevel)
	commandDependencies := dependencies{
		logger:     zap.New(observedCore),
		fileSystem: newTestFileSystem(t),
	}
	if copier != nil {
		commandDependencies.clipboard = copier
	}
	command := createRootCommand(commandDependencies)
	var stdout bytes.Buffer
	command.SetOut(&stdout)
	command.SetErr(&bytes.Buffer{})
	command.SetArgs(arguments)
	executeError := command.Execute()
	return stdout.String(), observedLogs, executeError
}

func TestRootCommandRendersTreeAndSummary(t *testing.T) {
	testCases := []struct {
		name      string
		arguments []string
		expected  string
	}{
		{
			name:      "default",
			arguments: []string{testRoot},
			expected:  "/root\n├── a\n└── b.txt\n\n1 directory, 1 file\n",
		},
		{
			name:      "show_hidden",
			arguments: []string{"-a", testRoot},
			expected:  "/root\n├── .hidden\n├── a\n└── b.txt\n\n1 directory, 2 files\n",
		},
		{
			name:      "depth_zero",
			arguments: []string{"--depth", "0", testRoot},
			expected:  "/root\n\n0 directories, 0 files\n",
		},
		{
			name:      "summary_disabled",
			arguments: []string{"--summary=false", testRoot},
			expected:  "/root\n├── a\n└── b.txt\n",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			outputText, _, executeError := executeCommand(t, nil, testCase.arguments...)
			if executeError != nil {
				t.Fatalf("execute error: %v", executeError)
			}
			if outputText != testCase.expected {
				t.Fatalf("unexpected output:\n%q\nwant:\n%q", outputText, testCase.expected)
			}
		})
	}
}

func TestRootCommandRejectsInvalidInput(t *testing.T) {
	testCases := []struct {
		name      string
		arguments []string
		expected  error
	}{
		{name: "missing_directory", arguments: []string{}},
		{name: "extra_directory", arguments: []string{testRoot, "/other"}},
		{name: "negative_depth", arguments: []string{"--depth=-3", testRoot}, expected: config.ErrInvalidDepth},
		{name: "unknown_flag", arguments: []string{"--colour", testRoot}},
		{name: "missing_root", arguments: []string{"/absent"}, expected: walker.ErrRootUnreadable},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			outputText, _, executeError := executeCommand(t, nil, testCase.arguments...)
			if executeError == nil {
				t.Fatalf("expected error for %v", testCase.arguments)
			}
			if testCase.expected != nil && !errors.Is(executeError, testCase.expected) {
				t.Fatalf("expected %v, got %v", testCase.expected, executeError)
			}
			if outputText != "" {
				t.Fatalf("expected no output, got %q", outputText)
			}
		})
	}
}

func TestRootCommandPrintsVersion(t *testing.T) {
	outputText, _, executeError := executeCommand(t, nil, "--version")
	if executeError != nil {
		t.Fatalf("execute error: %v", executeError)
	}
	if !strings.HasPrefix(outputText, "dirtree version: ") {
		t.Fatalf("unexpected version output %q", outputText)
	}
}

func TestRootCommandCopiesRenderedTree(t *testing.T) {
	copier := &recordingCopier{}
	outputText, _, executeError := executeCommand(t, copier, "--copy", testRoot)
	if executeError != nil {
		t.Fatalf("execute error: %v", executeError)
	}
	if len(copier.copied) != 1 {
		t.Fatalf("expected one clipboard copy, got %d", len(copier.copied))
	}
	if copier.copied[0] != outputText {
		t.Fatalf("clipboard %q differs from output %q", copier.copied[0], outputText)
	}
}

func TestRootCommandReportsClipboardFailure(t *testing.T) {
	copier := &recordingCopier{err: errors.New("no display")}
	outputText, _, executeError := executeCommand(t, copier, "--copy", testRoot)
	if executeError == nil || !strings.Contains(executeError.Error(), "no display") {
		t.Fatalf("expected clipboard error, got %v", executeError)
	}
	if !strings.HasPrefix(outputText, testRoot+"\n") {
		t.Fatalf("expected tree output before clipboard failure, got %q", outputText)
	}
}

func TestRootCommandRequiresClipboardService(t *testing.T) {
	_, _, executeError := executeCommand(t, nil, "--copy", testRoot)
	if executeError == nil || executeError.Error() != clipboardServiceMissingMessage {
		t.Fatalf("expected missing clipboard error, got %v", executeError)
	}
}
