package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/llehouerou/atlas/internal/config"
	"github.com/llehouerou/atlas/internal/scrub"
)

// isolate points XDG dirs and the working directory at fresh temp dirs so
// no real config file is read.
func isolate(t *testing.T) string {
	t.Helper()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()

	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSections_Text(t *testing.T) {
	isolate(t)

	out, err := run(t, "sections")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "A ("))
	assert.Contains(t, out, "  FR  France\n")
	assert.Contains(t, out, "countries in")
}

func TestSections_JSONCoversDirectory(t *testing.T) {
	isolate(t)

	out, err := run(t, "sections", "--format", "json")
	require.NoError(t, err)

	var got []sectionOut
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotEmpty(t, got)

	total := 0
	seen := map[string]bool{}
	for _, s := range got {
		assert.False(t, seen[s.Key], "duplicate section %q", s.Key)
		seen[s.Key] = true
		assert.Equal(t, s.Count, len(s.Countries))
		total += s.Count
	}
	assert.Equal(t, "A", got[0].Key)
	assert.Equal(t, 199, total)
	assert.True(t, seen["A"] && seen["Z"])
}

func TestSections_YAMLWithMatch(t *testing.T) {
	isolate(t)

	out, err := run(t, "sections", "--match", "gu*", "-f", "YAML")
	require.NoError(t, err)

	var got []sectionOut
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "G", got[0].Key)
	for _, c := range got[0].Countries {
		assert.True(t, strings.HasPrefix(c.Name, "Gu"), c.Name)
	}
}

func TestSections_NoMatch(t *testing.T) {
	isolate(t)

	out, err := run(t, "sections", "--match", "zzzz")
	require.NoError(t, err)
	assert.Equal(t, "No countries match.\n", out)
}

func TestSections_Errors(t *testing.T) {
	isolate(t)

	_, err := run(t, "sections", "--format", "xml")
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = run(t, "sections", "--match", "[a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filter directory")
}

func TestSections_ExactKeyMode(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[list]\nkey_mode = \"exact\"\n"), 0o600))

	out, err := run(t, "sections", "--match", "land", "-f", "json")
	require.NoError(t, err)

	var got []sectionOut
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	keys := make([]string, len(got))
	for i, s := range got {
		keys[i] = s.Key
	}
	assert.Contains(t, keys, "Å", "Åland keeps its own section")
}

func TestLocate(t *testing.T) {
	isolate(t)

	out, err := run(t, "locate", "2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "offset 2 -> section 2 (C)\n"), out)
	assert.Contains(t, out, "  C  weight 1.00")
}

func TestLocate_RowHeightFromConfig(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "tall.toml")
	require.NoError(t, os.WriteFile(path, []byte("[scrub]\nrow_height = 24\n"), 0o600))

	out, err := run(t, "locate", "50", "--config", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "offset 50 -> section 2 (C)\n"), out)
}

func TestLocate_Clamps(t *testing.T) {
	isolate(t)

	out, err := run(t, "locate", "--", "-5")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "offset -5 -> section 0 (A)\n"), out)

	out, err = run(t, "locate", "1e6")
	require.NoError(t, err)
	assert.Contains(t, out, "(Z)")
}

func TestLocate_Errors(t *testing.T) {
	isolate(t)

	_, err := run(t, "locate", "abc")
	require.ErrorIs(t, err, ErrInvalidOffset)

	_, err = run(t, "locate", "NaN")
	require.ErrorIs(t, err, ErrInvalidOffset)

	_, err = run(t, "locate")
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[scrub]\nrow_height = 0\n"), 0o600))
	_, err = run(t, "locate", "1", "--config", path)
	require.ErrorIs(t, err, scrub.ErrInvalidRowHeight)
}

func TestRoot_RequiresTerminal(t *testing.T) {
	isolate(t)
	if isTerminal(os.Stdout) {
		t.Skip("stdout is a terminal")
	}

	_, err := run(t)
	require.ErrorIs(t, err, ErrNotTerminal)
}

func TestLevel(t *testing.T) {
	o := &options{}
	c := config.Default()
	assert.Equal(t, "info", o.level(c))

	o.logLevel = "warn"
	assert.Equal(t, "warn", o.level(c))

	o.debug = true
	assert.Equal(t, "debug", o.level(c))
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{Use: "sections"}
	cmd.SetErr(&buf)

	o := &options{logLevel: "warn"}
	logger := o.consoleLogger(cmd, config.Default())
	logger.Info().Msg("hidden")
	logger.Warn().Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "command=")
	assert.Contains(t, out, "sections")
}
