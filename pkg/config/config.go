// Package config loads tig settings from defaults, a YAML config file,
// TIG_* environment variables and command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/siyuan-infoblox/ts-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/ts-imports-group/pkg/grouper"
	"github.com/siyuan-infoblox/ts-imports-group/pkg/utils"
)

// Config keys, shared by the config file, env vars and flags
const (
	KeyAliases        = "aliases"
	KeyAliasPrefix    = "alias-prefix"
	KeySortByFullPath = "alphabetical-by-full-path"
	KeyInPlace        = "in-place"
	KeyJSON           = "json"
	KeyVerbose        = "verbose"

	EnvPrefix = "TIG_"
)

// Config is the resolved configuration of a run
type Config struct {
	Aliases        []string // alias prefixes, including the legacy alias-prefix option
	SortByFullPath bool     // compare full module paths when sorting
	InPlace        bool     // apply fixes to the files
	JSON           bool     // print diagnostics as JSON
	Verbose        bool     // enable debug logging
	File           string   // config file that was loaded, if any
}

// Rule returns the immutable rule configuration.
func (c *Config) Rule() grouper.Config {
	return grouper.NewConfig(c.Aliases, c.SortByFullPath)
}

// Load resolves the configuration. Precedence (highest to lowest):
// flags > env vars > config file > defaults.
// When cfgFile is empty, a config file is searched upward from target.
func Load(cfgFile, target string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		KeyAliases:        []string{},
		KeyAliasPrefix:    "",
		KeySortByFullPath: false,
		KeyInPlace:        false,
		KeyJSON:           false,
		KeyVerbose:        false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile == "" && target != "" {
		if root := utils.FindProjectRoot(target); root != "" {
			cfgFile = utils.FindConfigFile(root)
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf(errors.ErrMsgFailedToLoadConfigFile+": %w", cfgFile, err)
		}
	}

	// TIG_ALPHABETICAL_BY_FULL_PATH -> alphabetical-by-full-path
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			return f.Name, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	cfg := &Config{
		Aliases:        stringList(k.Get(KeyAliases)),
		SortByFullPath: k.Bool(KeySortByFullPath),
		InPlace:        k.Bool(KeyInPlace),
		JSON:           k.Bool(KeyJSON),
		Verbose:        k.Bool(KeyVerbose),
		File:           cfgFile,
	}
	if prefix := strings.TrimSpace(k.String(KeyAliasPrefix)); prefix != "" {
		cfg.Aliases = append(cfg.Aliases, prefix)
	}
	return cfg, nil
}

// stringList accepts a YAML list, a flag slice or a comma-separated env value
func stringList(v interface{}) []string {
	var out []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}

	switch val := v.(type) {
	case string:
		for _, s := range strings.Split(val, ",") {
			add(s)
		}
	case []string:
		for _, s := range val {
			add(s)
		}
	case []interface{}:
		for _, s := range val {
			add(fmt.Sprint(s))
		}
	}
	return out
}
