// Package cli provides the command line interface.
package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/dirtree/internal/config"
	"github.com/temirov/dirtree/internal/output"
	"github.com/temirov/dirtree/internal/services/clipboard"
	"github.com/temirov/dirtree/internal/utils"
	"github.com/temirov/dirtree/internal/walker"
)

const (
	versionFlagName      = "version"
	versionTemplate      = utils.ApplicationName + " version: %s\n"
	rootUse              = utils.ApplicationName + " <dir>"
	rootShortDescription = "display a directory tree"
	rootLongDescription  = `dirtree lists the contents of a directory as a tree.
Entries are sorted by name and hidden entries are skipped unless --show-hidden is set.
Use --depth to limit recursion below the root and --follow-symlinks to descend into symlinked directories.
A summary of directory and file counts follows the tree unless --summary=false is given.
Every flag can also be set through a DIRTREE_ environment variable, for example DIRTREE_SHOW_HIDDEN=true.`
	rootUsageExample = `  # Show two levels below the current directory
  dirtree --depth 2 .

  # Include dotfiles and follow symlinked directories
  dirtree -a -f ~/projects`

	versionFlagDescription        = "display application version"
	depthFlagDescription          = "levels to descend below the root (-1 for unlimited)"
	showHiddenFlagDescription     = "show entries whose names start with a dot"
	followSymlinksFlagDescription = "descend into symlinked directories"
	ignoreCaseFlagDescription     = "sort entries case-insensitively"
	summaryFlagDescription        = "print the directory and file count summary"
	copyFlagDescription           = "copy the rendered tree to the clipboard"

	depthFlagShorthand          = "d"
	showHiddenFlagShorthand     = "a"
	followSymlinksFlagShorthand = "f"
	ignoreCaseFlagShorthand     = "i"

	clipboardServiceMissingMessage = "clipboard service is not configured"
	clipboardCopyErrorFormat       = "copy to clipboard: %w"
	flushOutputErrorFormat         = "flush output: %w"
)

// dependencies are the collaborators a tree run needs besides the command itself.
type dependencies struct {
	logger     *zap.Logger
	fileSystem walker.FileSystem
	clipboard  clipboard.Copier
}

// Execute runs the dirtree application, reporting traversal diagnostics through logger.
func Execute(logger *zap.Logger) error {
	rootCommand := createRootCommand(dependencies{
		logger:     logger,
		fileSystem: walker.NewOSFileSystem(),
		clipboard:  clipboard.NewService(),
	})
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand(commandDependencies dependencies) *cobra.Command {
	var showVersion bool
	var showHidden bool
	var followSymlinks bool
	var ignoreCase bool
	var summaryEnabled bool
	var copyEnabled bool

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				return nil
			}
			return cobra.ExactArgs(1)(command, arguments)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				_, printError := fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return printError
			}
			return runTree(command, commandDependencies, arguments[0])
		},
	}

	// A directory named "completion" must not select the completion command.
	rootCommand.CompletionOptions.DisableDefaultCmd = true

	flagSet := rootCommand.Flags()
	flagSet.BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	flagSet.IntP(config.DepthKey, depthFlagShorthand, config.UnboundedDepth, depthFlagDescription)
	registerBooleanFlag(flagSet, &showHidden, config.ShowHiddenKey, showHiddenFlagShorthand, false, showHiddenFlagDescription)
	registerBooleanFlag(flagSet, &followSymlinks, config.FollowSymlinksKey, followSymlinksFlagShorthand, false, followSymlinksFlagDescription)
	registerBooleanFlag(flagSet, &ignoreCase, config.IgnoreCaseKey, ignoreCaseFlagShorthand, false, ignoreCaseFlagDescription)
	registerBooleanFlag(flagSet, &summaryEnabled, config.SummaryKey, "", true, summaryFlagDescription)
	registerBooleanFlag(flagSet, &copyEnabled, config.CopyKey, "", false, copyFlagDescription)
	return rootCommand
}

// runTree renders the tree rooted at root to the command output.
// Output is buffered and flushed once, including when the root turns out to be unreadable.
func runTree(command *cobra.Command, commandDependencies dependencies, root string) (err error) {
	settings, settingsError := config.Load(root, command.Flags())
	if settingsError != nil {
		return settingsError
	}

	bufferedOutput := bufio.NewWriter(command.OutOrStdout())
	defer func() {
		if flushError := bufferedOutput.Flush(); flushError != nil && err == nil {
			err = fmt.Errorf(flushOutputErrorFormat, flushError)
		}
	}()

	var treeOutput io.Writer = bufferedOutput
	var clipboardBuffer *bytes.Buffer
	if settings.Copy {
		if commandDependencies.clipboard == nil {
			return errors.New(clipboardServiceMissingMessage)
		}
		clipboardBuffer = &bytes.Buffer{}
		treeOutput = io.MultiWriter(bufferedOutput, clipboardBuffer)
	}

	treeWalker := walker.New(commandDependencies.fileSystem, treeOutput, commandDependencies.logger, settings.Request)
	summary, treeError := treeWalker.Tree()
	if treeError != nil {
		return treeError
	}
	if settings.Summary {
		if summaryError := output.WriteSummary(treeOutput, summary); summaryError != nil {
			return summaryError
		}
	}

	if clipboardBuffer != nil {
		if copyError := commandDependencies.clipboard.Copy(clipboardBuffer.String()); copyError != nil {
			return fmt.Errorf(clipboardCopyErrorFormat, copyError)
		}
	}
	return nil
}
