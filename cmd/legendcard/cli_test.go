package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/require"
)

const cardYAML = `type: custom:sensor-legend-card
entity: sensor.living_room_temperature
decimals: 1
legend_items:
  - text: Cold
    color: "#3498db"
    max: 18
  - text: Comfortable
    color: "#2ecc71"
    min: 18
    max: 24
  - text: Warm
    color: "#e74c3c"
    min: 24
tap_action:
  action: navigate
  navigation_path: /lovelace/climate
`

const statesJSON = `[
  {
    "entity_id": "sensor.living_room_temperature",
    "state": "21.46",
    "attributes": {
      "friendly_name": "Living Room",
      "unit_of_measurement": "°C",
      "device_class": "temperature"
    }
  },
  {"entity_id": "switch.fan", "state": "on"}
]`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCommandErrorFormatting(t *testing.T) {
	t.Parallel()

	err := newCommandError("render", "loading states", os.ErrNotExist, "Check the path.")
	require.Contains(t, err.Error(), "Failed to render: loading states")
	require.Contains(t, err.Error(), "Suggestion: Check the path.")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateFilePath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.ErrorContains(t, validateFilePath("config", " "), "config file is required")
	require.ErrorContains(t, validateFilePath("config", filepath.Join(dir, "missing.yaml")), "does not exist")
	require.ErrorContains(t, validateFilePath("states", dir), "is a directory")
	require.NoError(t, validateFilePath("config", writeFile(t, dir, "card.yaml", cardYAML)))
}

func TestRootRejectsBadLogLevel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := writeFile(t, dir, "card.yaml", cardYAML)

	_, _, err := execute(t, "--log-level", "chatty", "validate", "-c", cfg)
	require.ErrorContains(t, err, "configuring logging")
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-03"

	output, _, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, output, "legendcard 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-03")
}

func setBuildVars(t *testing.T, v, c, d string) {
	t.Helper()
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})
	version, commit, date = v, c, d
}

func TestResolveBuildInfoFromVCS(t *testing.T) {
	setBuildVars(t, "", "", "")

	b := resolveBuildInfo(&debug.BuildInfo{
		GoVersion: "go1.25.1",
		Main:      debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		},
	})

	require.Equal(t, buildInfo{
		Version:   "dev",
		Commit:    "0123456-dirty",
		Date:      "2026-10-01T12:00:00Z",
		GoVersion: "go1.25.1",
	}, b)
}

func TestResolveBuildInfoPrefersLinkTimeValues(t *testing.T) {
	setBuildVars(t, "1.0.0", "cafe123", "")

	b := resolveBuildInfo(&debug.BuildInfo{
		Main:     debug.Module{Version: "v0.9.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "deadbeef"}},
	})
	require.Equal(t, "1.0.0", b.Version)
	require.Equal(t, "cafe123", b.Commit)
	require.Equal(t, "unknown", b.Date)

	setBuildVars(t, "", "", "")
	b = resolveBuildInfo(&debug.BuildInfo{Main: debug.Module{Version: "v0.9.0"}})
	require.Equal(t, "v0.9.0", b.Version)
	require.Equal(t, "none", b.Commit)
}

func TestVersionShortFlag(t *testing.T) {
	setBuildVars(t, "2.0.0", "abc", "today")

	output, _, err := execute(t, "version", "--short")
	require.NoError(t, err)
	require.Equal(t, "2.0.0\n", output)
}

func TestStubCommand(t *testing.T) {
	t.Parallel()

	output, _, err := execute(t, "stub")
	require.NoError(t, err)
	require.Contains(t, output, "entity: sensor.example")
	require.Contains(t, output, "decimals: 0")
	require.Contains(t, output, "legend_items: []")
	require.Contains(t, output, `unit: ""`)
}
