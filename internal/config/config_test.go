package config

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/renamer/internal/naming"
)

func TestNormalizePathArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/media/photos", "/media/photos"},
		{"single trailing slash", "/media/photos/", "/media/photos"},
		{"multiple trailing slashes", "/media/photos///", "/media/photos"},
		{"root path", "/", "/"},
		{"relative path", "photos", "photos"},
		{"relative with slash", "photos/", "photos"},
		{"dot", ".", "."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePathArg(tt.in))
		})
	}
}

func TestSetPaths_DefaultsToCurrentDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetPaths(nil)
	assert.Equal(t, []string{"."}, cfg.Paths)

	cfg.SetPaths([]string{"a/", "b"})
	assert.Equal(t, []string{"a", "b"}, cfg.Paths)
}

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.Pattern = "old"
	cfg.Replacement = "new"
	cfg.SetPaths(nil)
	return cfg
}

func TestValidate_RuleSelection(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"pattern only", func(c *Config) {}, ""},
		{"case only", func(c *Config) { c.Pattern = ""; c.Case = naming.CaseLower }, ""},
		{"number only", func(c *Config) { c.Pattern = ""; c.NumberTemplate = "{n}" }, ""},
		{"no rule", func(c *Config) { c.Pattern = "" }, "no rule given"},
		{"two rules", func(c *Config) { c.Case = naming.CaseUpper }, "only one of"},
		{"regex without pattern", func(c *Config) { c.Pattern = ""; c.Case = naming.CaseLower; c.Regex = true }, "--regex requires --pattern"},
		{"bad glob", func(c *Config) { c.Match = "[" }, "invalid --match glob"},
		{"bad color", func(c *Config) { c.ColorMode = "sometimes" }, "invalid color mode"},
		{"bad output", func(c *Config) { c.Output = "yaml" }, "invalid output format"},
		{"no paths", func(c *Config) { c.Paths = nil }, "no input paths"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestMutates(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Mutates(), "default is a dry run")

	cfg.Apply = true
	assert.True(t, cfg.Mutates())

	cfg.DryRun = true
	assert.False(t, cfg.Mutates(), "--dry-run wins over --apply")
}

func TestRule(t *testing.T) {
	cfg := validConfig()
	cfg.Regex = true
	cfg.Pattern = `IMG_(\d+)`
	cfg.Replacement = "photo_$1"
	rule, err := cfg.Rule()
	require.NoError(t, err)
	assert.Equal(t, naming.KindRegex, rule.Kind())
	assert.Equal(t, "photo_1.jpg", rule.Apply("IMG_1.jpg", 0))

	cfg = validConfig()
	cfg.Pattern = ""
	cfg.NumberTemplate = "img_{n:2}"
	cfg.NumberStart = 5
	rule, err = cfg.Rule()
	require.NoError(t, err)
	assert.Equal(t, "img_06.png", rule.Apply("x.png", 1))
}

func TestBindFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("renamer", pflag.ContinueOnError)
	flags := BindFlags(fs, &cfg)

	err := fs.Parse([]string{"-x", "-p", `IMG_(\d+)`, "-r", "photo_$1", "-R", "--apply", "--no-color", "-o", "table", "photos/"})
	require.NoError(t, err)
	flags.Finalize(fs.Args())

	assert.True(t, cfg.Regex)
	assert.Equal(t, `IMG_(\d+)`, cfg.Pattern)
	assert.Equal(t, "photo_$1", cfg.Replacement)
	assert.True(t, cfg.Recursive)
	assert.True(t, cfg.Apply)
	assert.Equal(t, ColorNever, cfg.ColorMode)
	assert.Equal(t, OutputTable, cfg.Output)
	assert.Equal(t, []string{"photos"}, cfg.Paths)
	assert.False(t, flags.ShowVersion())
	assert.NoError(t, cfg.Validate())
}

func TestBindFlags_InvalidEnums(t *testing.T) {
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("renamer", pflag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	BindFlags(fs, &cfg)

	assert.Error(t, fs.Parse([]string{"--case", "sarcastic"}))
	assert.Error(t, fs.Parse([]string{"--output", "yaml"}))
}

func TestBindFlags_CaseAndColor(t *testing.T) {
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("renamer", pflag.ContinueOnError)
	flags := BindFlags(fs, &cfg)

	require.NoError(t, fs.Parse([]string{"--case", "Kebab", "--color", "-V"}))
	flags.Finalize(fs.Args())

	assert.Equal(t, naming.CaseKebab, cfg.Case)
	assert.Equal(t, ColorAlways, cfg.ColorMode)
	assert.True(t, flags.ShowVersion())
	assert.Equal(t, []string{"."}, cfg.Paths)
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	PrintUsage(&buf, "1.2.3")
	out := buf.String()
	assert.Contains(t, out, "renamer v1.2.3")
	assert.Contains(t, out, "--dry-run")
	assert.Contains(t, out, "snake")
}
