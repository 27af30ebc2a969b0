package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/utilcss"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

// resetCommands restores flag values and output writers after a test that
// executes rootCmd, since cobra keeps both between Execute calls.
func resetCommands(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)

		reset := func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		}
		for _, c := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
			c.Flags().VisitAll(reset)
			c.PersistentFlags().VisitAll(reset)
		}
	})
}

// chdirTemp switches into a fresh temporary directory for the test.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
	return dir
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".utilcss.yaml")
	configContent := `
content:
  - "web/**/*.html"
output: public/app.css
verbose: true

check:
  strict: true
  output-format: json
  max-issues: 10
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, []string{"web/**/*.html"}, k.Strings("content"))
	assert.Equal(t, "public/app.css", k.String("output"))
	assert.True(t, k.Bool("verbose"))
	assert.True(t, k.Bool("check.strict"))
	assert.Equal(t, "json", k.String("check.output-format"))
	assert.Equal(t, 10, k.Int("check.max-issues"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config, should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.utilcss.yaml"))

	config := buildConfig()
	assert.Equal(t, defaultContent, config.Content)
	assert.Equal(t, "dist/utilities.css", config.Output)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".utilcss.yaml")
	configContent := `
output: from-file.css
check:
  strict: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("UTILCSS_OUTPUT", "from-env.css")
	t.Setenv("UTILCSS_CHECK_STRICT", "true")
	t.Setenv("UTILCSS_CONTENT", "a.html  b/**/*.jsx")

	require.NoError(t, loadConfigFromPath(configPath))

	config := buildConfig()
	assert.Equal(t, "from-env.css", config.Output)
	assert.True(t, config.Strict)
	assert.Equal(t, []string{"a.html", "b/**/*.jsx"}, config.Content)
}

func TestBuildConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildConfig()
	assert.Equal(t, defaultContent, config.Content)
	assert.Equal(t, "dist/utilities.css", config.Output)
	assert.False(t, config.Verbose)
	assert.False(t, config.Strict)
	assert.Equal(t, 0, config.MaxIssues)
	assert.Equal(t, 0, config.MaxSameIssues)
	assert.True(t, config.PrintIssuedLines)
	assert.True(t, config.PrintLinterName)
	assert.False(t, config.UseColors)
	assert.False(t, config.Preflight)
	assert.Nil(t, config.Collection)
	assert.Nil(t, config.Logger)
}

func TestBuildConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".utilcss.yaml")
	configContent := `
content:
  - "src/**/*.tsx"
output: out/site.css
color: true
preflight: true
collection:
  rs: class
  txt: text
check:
  strict: true
  max-same-issues: 2
  print-lines: false
  print-linter-name: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildConfig()
	assert.Equal(t, []string{"src/**/*.tsx"}, config.Content)
	assert.Equal(t, "out/site.css", config.Output)
	assert.True(t, config.UseColors)
	assert.True(t, config.Preflight)
	assert.Equal(t, map[string]utilcss.CollectionMode{
		"rs":  utilcss.CollectClassAttributes,
		"txt": utilcss.CollectWords,
	}, config.Collection)
	assert.True(t, config.Strict)
	assert.Equal(t, 2, config.MaxSameIssues)
	assert.False(t, config.PrintIssuedLines)
	assert.False(t, config.PrintLinterName)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	resetKoanf()
	resetCommands(t)
	chdirTemp(t)

	require.NoError(t, os.WriteFile(".utilcss.yaml", []byte("check:\n  strict: true\n  max-issues: 3\n"), 0644))
	require.NoError(t, checkCmd.ParseFlags([]string{"--max-issues", "7"}))
	require.NoError(t, loadConfig(checkCmd))

	config := buildConfig()
	assert.Equal(t, 7, config.MaxIssues)
	// Unset flags do not mask the file value with their defaults
	assert.True(t, config.Strict)
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	resetCommands(t)
	chdirTemp(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"init"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(".utilcss.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "content:")
	assert.Contains(t, string(data), "output: dist/utilities.css")
	assert.Contains(t, string(data), "check:")
	assert.Contains(t, out.String(), "Created .utilcss.yaml")
}

func TestInitCommand_DefaultConfigLoads(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".utilcss.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(defaultConfig), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildConfig()
	assert.Equal(t, defaultContent, config.Content)
	assert.Equal(t, "issues", k.String("check.output-format"))
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	resetCommands(t)
	chdirTemp(t)

	require.NoError(t, os.WriteFile(".utilcss.yaml", []byte("existing"), 0644))

	rootCmd.SetArgs([]string{"init"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	resetCommands(t)
	chdirTemp(t)

	require.NoError(t, os.WriteFile(".utilcss.yaml", []byte("existing"), 0644))

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(".utilcss.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "# utilcss configuration")
}

func TestVersionCommand(t *testing.T) {
	resetCommands(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "utilcss ")
}

func TestBuildCommand(t *testing.T) {
	resetKoanf()
	resetCommands(t)
	chdirTemp(t)

	require.NoError(t, os.WriteFile("index.html", []byte(`<div class="mt-4 p-7"></div>`), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"build", "--content", "*.html", "--output", "css/out.css"})
	require.NoError(t, rootCmd.Execute())

	css, err := os.ReadFile(filepath.Join("css", "out.css"))
	require.NoError(t, err)
	assert.Equal(t, ".mt-4 {\n  margin-top: 1rem;\n}\n", string(css))

	assert.Contains(t, out.String(), "Generated css/out.css")
	assert.Contains(t, out.String(), "Rules generated: 1")
	assert.Contains(t, out.String(), "Unresolved tokens: 1")
}

func TestBuildCommand_Stdout(t *testing.T) {
	resetKoanf()
	resetCommands(t)
	chdirTemp(t)

	require.NoError(t, os.WriteFile("index.html", []byte(`<div class="-mx-2"></div>`), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"build", "--content", "*.html", "-o", "-"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, ".-mx-2 {\n  margin-inline: -0.5rem;\n}\n", out.String())
}

func TestBuildCommand_Preflight(t *testing.T) {
	resetKoanf()
	resetCommands(t)
	chdirTemp(t)

	require.NoError(t, os.WriteFile("index.html", []byte(`<div class="mt-4"></div>`), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"build", "--content", "*.html", "-o", "-", "-p"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, utilcss.Preflight+"\n.mt-4 {\n  margin-top: 1rem;\n}\n", out.String())
}

func TestBuildCommand_CollectionFromConfig(t *testing.T) {
	resetKoanf()
	resetCommands(t)
	chdirTemp(t)

	// Without the override .html files only yield class attribute values
	require.NoError(t, os.WriteFile(".utilcss.yaml", []byte("collection:\n  html: text\n"), 0644))
	require.NoError(t, os.WriteFile("index.html", []byte("mt-4 -mx-2\n"), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"build", "--content", "*.html", "-o", "-"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, ".mt-4 {\n  margin-top: 1rem;\n}\n\n.-mx-2 {\n  margin-inline: -0.5rem;\n}\n", out.String())
}

func TestCheckCommand_Strict(t *testing.T) {
	resetKoanf()
	resetCommands(t)
	chdirTemp(t)

	require.NoError(t, os.WriteFile("index.html", []byte(`<div class="mt-4 p-7"></div>`), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"check", "--content", "index.html", "--strict", "--output-format", "plain"})
	err := rootCmd.Execute()
	require.ErrorIs(t, err, errIssuesFound)

	assert.Equal(t,
		"index.html: Warning on Line: 1, Col: 18; Could not match class 'p-7', invalid argument '7', possible arguments: "+
			"'0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4, 5, 6, 8, 10, 11, 12, 14, 16, 20, 24, 28, 32, 36, 40, 44, 48, 52, 56, 60, 64, 72, 80, 96, px'\n",
		out.String())
}

func TestCheckCommand_SoftByDefault(t *testing.T) {
	resetKoanf()
	resetCommands(t)
	chdirTemp(t)

	require.NoError(t, os.WriteFile("index.html", []byte(`<div class="flex"></div>`), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"check", "--content", "index.html", "--print-lines=false"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "index.html:1:13: Could not match class 'flex' (utilcss)")
	assert.Contains(t, out.String(), "* class_not_found: 1")
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}
