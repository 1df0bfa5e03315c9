package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/siyuan-infoblox/ts-imports-group/pkg/grouper"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("tig", pflag.ContinueOnError)
	flags.StringSlice(KeyAliases, nil, "")
	flags.String(KeyAliasPrefix, "", "")
	flags.Bool(KeySortByFullPath, false, "")
	flags.Bool(KeyInPlace, false, "")
	flags.Bool(KeyJSON, false, "")
	flags.Bool(KeyVerbose, false, "")
	return flags
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "tig.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_defaults(t *testing.T) {
	req := require.New(t)

	cfg, err := Load("", "", newFlags())
	req.NoError(err)
	req.Empty(cfg.Aliases)
	req.False(cfg.SortByFullPath)
	req.False(cfg.InPlace)
	req.False(cfg.JSON)
	req.Empty(cfg.File)
	req.Equal(grouper.ModuleGroup, cfg.Rule().Classify("@/store"))
}

func TestLoad_configFile(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	path := writeConfig(t, dir, `aliases:
  - "@/"
  - "~/"
alias-prefix: "#app/"
alphabetical-by-full-path: true
`)

	cfg, err := Load(path, "", newFlags())
	req.NoError(err)
	req.Equal(path, cfg.File)
	req.Equal([]string{"@/", "~/", "#app/"}, cfg.Aliases)
	req.True(cfg.SortByFullPath)

	rule := cfg.Rule()
	req.Equal(grouper.AliasGroup, rule.Classify("#app/store"))
	req.True(rule.SortByFullPath())
}

func TestLoad_searchesConfigFromTarget(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	path := writeConfig(t, dir, "aliases: ['@/']\n")

	src := filepath.Join(dir, "src")
	req.NoError(os.MkdirAll(src, 0755))

	cfg, err := Load("", src, nil)
	req.NoError(err)
	req.Equal(path, cfg.File)
	req.Equal([]string{"@/"}, cfg.Aliases)
}

func TestLoad_missingConfigFile(t *testing.T) {
	req := require.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "", nil)
	req.Error(err)
}

func TestLoad_precedence(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	path := writeConfig(t, dir, "aliases: ['@/']\nalphabetical-by-full-path: false\njson: false\n")

	t.Setenv("TIG_ALIASES", "~/, #/")
	t.Setenv("TIG_ALPHABETICAL_BY_FULL_PATH", "true")
	t.Setenv("TIG_JSON", "true")

	flags := newFlags()
	req.NoError(flags.Parse([]string{"--json=false", "--in-place"}))

	cfg, err := Load(path, "", flags)
	req.NoError(err)

	// env overrides the file
	req.Equal([]string{"~/", "#/"}, cfg.Aliases)
	req.True(cfg.SortByFullPath)
	// flags override env
	req.False(cfg.JSON)
	req.True(cfg.InPlace)
}

func TestLoad_aliasFlag(t *testing.T) {
	req := require.New(t)

	flags := newFlags()
	req.NoError(flags.Parse([]string{"--aliases", "@/,~/", "--alias-prefix", "src/"}))

	cfg, err := Load("", "", flags)
	req.NoError(err)
	req.Equal([]string{"@/", "~/", "src/"}, cfg.Aliases)
}

func TestStringList(t *testing.T) {
	req := require.New(t)

	req.Equal([]string{"a", "b"}, stringList("a, b,"))
	req.Equal([]string{"a"}, stringList([]string{"a", " "}))
	req.Equal([]string{"a", "1"}, stringList([]interface{}{"a", 1}))
	req.Nil(stringList(nil))
	req.Nil(stringList(true))
}
