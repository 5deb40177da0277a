package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerror "github.com/msto63/isotime/foundation/core/error"
	"github.com/msto63/isotime/pkg/core/config"
)

const testConfig = `
[general]
timezone = "UTC"

[formats]
stamp = "%Y%m%dT%H%M%S"

[durations]
retention = "P100D"
`

// execute runs the root command with fresh flag values and a test config
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cfgFile, verbose, logFormat = "", false, ""
	durationJSON, betweenJSON = false, false
	posixAt, posixTZ, posixList = "", "", false

	path := filepath.Join(t.TempDir(), "isotime.toml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))
	t.Setenv(config.EnvConfigPath, path)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err = Execute()
	return out.String(), errOut.String(), err
}

func TestDurationCommand(t *testing.T) {
	out, _, err := execute(t, "duration", "P1Y2M3DT4H5M6.78912S")
	require.NoError(t, err)

	want := "P1Y2M3DT4H5M6.78912S\n" +
		"  days:    428\n" +
		"  hours:   10276\n" +
		"  minutes: 616565\n" +
		"  seconds: 36993906.78912\n"
	assert.Equal(t, want, out)
}

func TestDurationCommandJSON(t *testing.T) {
	out, _, err := execute(t, "duration", "--json", "PT.1S", "@retention")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "PT0.1S", first["duration"])
	assert.Equal(t, 0.1, first["total_seconds"])
	assert.Equal(t, "@retention", second["input"])
	assert.Equal(t, "P100D", second["duration"])
	assert.Equal(t, float64(2400), second["total_hours"])
}

func TestDurationCommandErrors(t *testing.T) {
	_, _, err := execute(t, "duration", "P0.5Y")
	require.Error(t, err)
	assert.Equal(t, coreerror.CodeSyntaxError, coreerror.GetCode(err))
	assert.Equal(t, 2, coreerror.GetCode(err).ExitCode())

	_, _, err = execute(t, "duration", "@missing")
	assert.True(t, coreerror.HasCode(err, coreerror.CodeInvalidInput))
}

func TestBetweenCommand(t *testing.T) {
	out, _, err := execute(t, "between", "2026-01-01T23:00:00Z", "2026-01-02T01:00:00.5Z")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "PT2H0.5S\n"), out)
	assert.Contains(t, out, "seconds: 7200.5\n")

	out, _, err = execute(t, "between", "2026-01-02T01:00:00Z", "2026-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "-P1DT1H\n"), out)

	_, _, err = execute(t, "between", "yesterday", "2026-01-01T00:00:00Z")
	assert.True(t, coreerror.HasCode(err, coreerror.CodeInvalidInput))
}

func TestPosixCommand(t *testing.T) {
	out, _, err := execute(t, "posix", "%d/%m/%Y %H:%M:%S %% %b %y, %V %a %u %w, %I %p",
		"--at", "2026-02-25T18:21:42Z")
	require.NoError(t, err)

	assert.Contains(t, out, "layout: d/m/Y H:i:s % M y, W D N w, h A\n")
	assert.Contains(t, out, "shape:  dd/mm/YYYY HH:MM:SS % bbb yy, VV aaa u w, II pp\n")
	assert.Contains(t, out, "length: 47\n")
	assert.Contains(t, out, "go:     -\n")
	assert.Contains(t, out, "result: 25/02/2026 18:21:42 % Feb 26, 09 Wed 3 3, 06 PM\n")
}

func TestPosixCommandPresetsAndZones(t *testing.T) {
	out, _, err := execute(t, "posix", "@isoweek", "--at", "2023-01-01T00:00:00Z")
	require.NoError(t, err)
	assert.Contains(t, out, "result: 2022-W52-7\n")

	out, _, err = execute(t, "posix", "@stamp", "--at", "2026-02-25T18:21:42Z")
	require.NoError(t, err)
	assert.Contains(t, out, "length: 15\n")
	assert.Contains(t, out, "result: 20260225T182142\n")

	out, _, err = execute(t, "posix", "%H %Z", "--at", "2026-07-01T12:00:00Z", "--tz", "America/New_York")
	require.NoError(t, err)
	assert.Contains(t, out, "result: 08 EDT\n")
	assert.Contains(t, out, "length: variable\n")
}

func TestPosixCommandList(t *testing.T) {
	out, _, err := execute(t, "posix", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "@date")
	assert.Contains(t, out, "@stamp")
	assert.Contains(t, out, "%Y%m%dT%H%M%S")
}

func TestPosixCommandErrors(t *testing.T) {
	_, _, err := execute(t, "posix", "%j")
	require.Error(t, err)
	assert.Equal(t, `"Posix format specifier %j" not supported`, err.Error())
	assert.Equal(t, coreerror.CodeUnsupported, coreerror.GetCode(err))

	_, _, err = execute(t, "posix", "%F", "--tz", "Nowhere/City")
	assert.True(t, coreerror.HasCode(err, coreerror.CodeInvalidInput))

	_, _, err = execute(t, "posix", "@nope")
	assert.True(t, coreerror.HasCode(err, coreerror.CodeInvalidInput))
}

func TestErrorLineOnStderr(t *testing.T) {
	out, stderr, err := execute(t, "posix", "%j")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "Error: \"Posix format specifier %j\" not supported\n", stderr)

	_, stderr, err = execute(t, "version")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestPosixCommandConfiguredZone(t *testing.T) {
	out, _, err := execute(t, "posix", "%H:%M %z", "--at", "2026-07-01T12:00:00+02:00")
	require.NoError(t, err)
	assert.Contains(t, out, "result: 10:00 +0000\n")

	out, _, err = execute(t, "posix", "%H:%M %z", "--at", "2026-07-01T12:00:00+02:00", "--tz", "Asia/Tokyo")
	require.NoError(t, err)
	assert.Contains(t, out, "result: 19:00 +0900\n")
}

func TestVerboseJSONLogging(t *testing.T) {
	_, stderr, err := execute(t, "--verbose", "--log-format", "json", "duration", "P1D")
	require.NoError(t, err)

	var parsed, loaded bool
	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, "UTC", entry["timezone"])
		switch entry["message"] {
		case "parsed duration":
			parsed = true
			assert.Equal(t, "debug", entry["level"])
			assert.Equal(t, "P1D", entry["duration"])
		case "loaded config":
			loaded = true
			assert.NotEmpty(t, entry["config"])
		}
	}
	assert.True(t, parsed, stderr)
	assert.True(t, loaded, stderr)
}

func TestInvalidLogFormat(t *testing.T) {
	_, _, err := execute(t, "--log-format", "xml", "version")
	require.Error(t, err)
	assert.True(t, coreerror.HasCode(err, coreerror.CodeInvalidInput))
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.toml"), "version")
	require.Error(t, err)
	assert.Equal(t, 3, coreerror.GetCode(err).ExitCode())
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "isotime v"), out)
	assert.Contains(t, out, "Go Version:")
}
