// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config resolves the tool settings once at process start from
// defaults, an optional mdtools.yaml file and MDTOOLS_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/mdtools/pkg/types"
)

const (
	configName = "mdtools"
	envPrefix  = "MDTOOLS"

	// DefaultUser is recorded when no username is configured or set in
	// the environment.
	DefaultUser = "LOTUSSSB"
)

// userEnvVars are consulted in order when writer.user is not configured.
var userEnvVars = []string{"USERNAME", "USER"}

// defaults holds the value of every known key. Registering all keys also
// lets AutomaticEnv bind them during Unmarshal.
var defaults = map[string]any{
	"collector.root":         ".",
	"collector.suffix":       ".cpp",
	"writer.output_dir":      "ai_outputs",
	"writer.filename_prefix": "llm-output",
	"writer.user":            "",
	"remote.url":             "",
	"remote.auth_token":      "",
	"remote.timeout":         5 * time.Minute,
	"remote.user_agent":      "mdtools/0.1",
	"remote.work_dir":        ".",
	"remote.input_file":      "input.pdf",
	"remote.output_file":     "output.md",
	"local_save.path":        "result.md",
	"docx.binary":            "pandoc",
	"docx.input_file":        "result.md",
	"docx.output_file":       "result.docx",
	"docx.template_file":     "template.docx",
}

// New returns a viper instance with defaults and environment binding in
// place. When cfgFile is empty it looks for mdtools.yaml in the working
// directory and ~/.config/mdtools/. A missing config file is not an error.
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

// Load unmarshals v into a Config, resolves the writer user from the
// environment and validates the result.
func Load(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Writer.User == "" {
		cfg.Writer.User = resolveUser(os.LookupEnv)
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// resolveUser returns the first non-empty username variable, or DefaultUser.
func resolveUser(lookup func(string) (string, bool)) string {
	for _, key := range userEnvVars {
		if val, ok := lookup(key); ok && val != "" {
			return val
		}
	}
	return DefaultUser
}
