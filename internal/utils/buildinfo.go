// Package utils provides logger construction and version retrieval.
package utils

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime/debug"
	"strings"
)

// GetApplicationVersion reports the module version from build info,
// falling back to git describe when running from a checkout.
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if buildInfoAvailable && buildInfo.Main.Version != "" && buildInfo.Main.Version != develVersion {
		return buildInfo.Main.Version
	}

	checkoutDirectory, checkoutError := findCheckoutDirectory(".")
	if checkoutError != nil {
		return unknownVersion
	}
	describeArguments := [][]string{
		{"describe", "--tags", "--exact-match"},
		{"describe", "--tags", "--long", "--dirty"},
	}
	for _, arguments := range describeArguments {
		// #nosec G204
		describeCommand := exec.Command("git", arguments...)
		describeCommand.Dir = checkoutDirectory
		describeOutput, describeError := describeCommand.Output()
		if describeError == nil && len(describeOutput) > 0 {
			return strings.TrimSpace(string(describeOutput))
		}
	}
	return unknownVersion
}

// findCheckoutDirectory walks upward from startDirectory to the directory holding .git.
func findCheckoutDirectory(startDirectory string) (string, error) {
	absoluteStartDirectory, absoluteError := filepath.Abs(startDirectory)
	if absoluteError != nil {
		return "", fmt.Errorf("failed to get absolute path for %s: %w", startDirectory, absoluteError)
	}

	currentDirectory := absoluteStartDirectory
	for {
		gitInfo, statError := os.Stat(filepath.Join(currentDirectory, gitDirectoryName))
		if statError == nil && gitInfo.IsDir() {
			return currentDirectory, nil
		}
		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			break
		}
		currentDirectory = parentDirectory
	}
	return "", fmt.Errorf(".git directory not found in or above %s", absoluteStartDirectory)
}
