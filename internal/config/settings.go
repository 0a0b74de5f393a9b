// Package config resolves a traversal request from command line flags and the environment.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/temirov/dirtree/internal/types"
	"github.com/temirov/dirtree/internal/utils"
)

const (
	// DepthKey names the recursion limit setting.
	DepthKey = "depth"
	// ShowHiddenKey names the hidden entry visibility setting.
	ShowHiddenKey = "show-hidden"
	// FollowSymlinksKey names the symlinked directory descent setting.
	FollowSymlinksKey = "follow-symlinks"
	// IgnoreCaseKey names the case-insensitive ordering setting.
	IgnoreCaseKey = "ignore-case"
	// SummaryKey names the trailing summary setting.
	SummaryKey = "summary"
	// CopyKey names the clipboard copy setting.
	CopyKey = "copy"

	// UnboundedDepth disables the recursion limit.
	UnboundedDepth = -1

	environmentKeySeparator = "_"
	flagKeySeparator        = "-"

	errorBindFlagsFormat  = "bind flags: %w"
	errorDepthFormat      = "%w %q: expected a non-negative integer or %d"
	errorEmptyRootMessage = "root directory must not be empty"
)

// ErrInvalidDepth is returned when the depth setting is not a usable limit.
var ErrInvalidDepth = errors.New("invalid depth")

// Settings is the fully resolved configuration of one run.
type Settings struct {
	Request types.Request
	Summary bool
	Copy    bool
}

// Load resolves Settings for root. Explicitly set flags win over DIRTREE_*
// environment variables, which win over flag defaults.
func Load(root string, flagSet *pflag.FlagSet) (Settings, error) {
	if strings.TrimSpace(root) == "" {
		return Settings{}, errors.New(errorEmptyRootMessage)
	}
	reader := viper.New()
	reader.SetEnvPrefix(utils.EnvironmentPrefix)
	reader.SetEnvKeyReplacer(strings.NewReplacer(flagKeySeparator, environmentKeySeparator))
	reader.AutomaticEnv()
	reader.SetDefault(DepthKey, UnboundedDepth)
	reader.SetDefault(SummaryKey, true)
	if flagSet != nil {
		if bindError := reader.BindPFlags(flagSet); bindError != nil {
			return Settings{}, fmt.Errorf(errorBindFlagsFormat, bindError)
		}
	}

	maxDepth, depthError := resolveDepth(reader.GetString(DepthKey))
	if depthError != nil {
		return Settings{}, depthError
	}

	sortOrder := types.SortByName
	if reader.GetBool(IgnoreCaseKey) {
		sortOrder = types.SortIgnoreCase
	}

	return Settings{
		Request: types.Request{
			Root:           root,
			MaxDepth:       maxDepth,
			ShowHidden:     reader.GetBool(ShowHiddenKey),
			FollowSymlinks: reader.GetBool(FollowSymlinksKey),
			SortOrder:      sortOrder,
		},
		Summary: reader.GetBool(SummaryKey),
		Copy:    reader.GetBool(CopyKey),
	}, nil
}

// resolveDepth converts the raw depth value into an optional limit.
func resolveDepth(rawDepth string) (*int, error) {
	trimmedDepth := strings.TrimSpace(rawDepth)
	if trimmedDepth == "" {
		return nil, nil
	}
	depth, parseError := strconv.Atoi(trimmedDepth)
	if parseError != nil || depth < UnboundedDepth {
		return nil, fmt.Errorf(errorDepthFormat, ErrInvalidDepth, rawDepth, UnboundedDepth)
	}
	if depth == UnboundedDepth {
		return nil, nil
	}
	return &depth, nil
}
