package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const settingsSource = `// settings page
Column({space: 8vp}) {
  Text("Wi-Fi").fontSize(16fp)
  Toggle({type: ToggleType.Switch, isOn: true}).onChange(wifiChanged)
  Slider({value: 10, max: 100, step: 1}).stepColor(#FF0000)
}
`

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

// run executes the command line in a fresh root and returns stdout and
// stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})
	version, commit, date = "1.2.3", "abcdef1", "2026-10-01"

	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fluent 1.2.3")
	assert.Contains(t, out, "abcdef1")
	assert.Contains(t, out, "2026-10-01")

	out, _, err = run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestVersionIgnoresBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "fluent.yaml", "nonsense: [")

	_, _, err := run(t, "-C", dir, "version")
	assert.NoError(t, err)

	_, _, err = run(t, "-C", dir, "components")
	assert.Error(t, err)
}

func TestCheckPasses(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "settings.fluent", settingsSource)

	out, _, err := run(t, "-C", dir, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, plainSymbols.ok+" "+path)
	assert.Contains(t, out, "(4 components)")
	assert.Contains(t, out, "1 file(s) ok")
}

func TestCheckReportsCapabilityErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "settings.fluent", settingsSource)

	out, _, err := run(t, "-C", dir, "--api-version", "9", "check", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 file(s) failed")
	assert.Contains(t, out, plainSymbols.fail+" "+path)
	assert.Contains(t, out, "settings.fluent:5:")
	assert.Contains(t, out, "Slider.stepColor: requires API 10, target is 9")
}

func TestCheckTargetFromEnvAndFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "settings.fluent", settingsSource)

	t.Run("file", func(t *testing.T) {
		writeSource(t, dir, "fluent.yaml", "api_version: \"9\"\n")
		t.Cleanup(func() { os.Remove(filepath.Join(dir, "fluent.yaml")) })

		_, _, err := run(t, "-C", dir, "check", path)
		assert.Error(t, err)

		_, _, err = run(t, "-C", dir, "--api-version", "12", "check", path)
		assert.NoError(t, err, "flag beats file")
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("FLUENT_API_VERSION", "9")
		_, _, err := run(t, "-C", dir, "check", path)
		assert.Error(t, err)
	})
}

func TestCheckSyscaps(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "a.fluent", `Text("hi")`)

	out, _, err := run(t, "-C", dir, "--syscap", "SystemCapability.Other", "check", path)
	require.Error(t, err)
	assert.Contains(t, out, "SystemCapability.ArkUI.ArkUI.Full")

	_, _, err = run(t, "-C", dir, "--syscap", "SystemCapability.ArkUI.ArkUI.Full", "check", path)
	assert.NoError(t, err)
}

func TestCheckWarnsOnDeprecation(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "blank.fluent", `Row() { Blank().color(Color.red) }`)

	out, _, err := run(t, "-C", dir, "--api-version", "12", "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, plainSymbols.warn)
	assert.Contains(t, out, "Blank.color")
	assert.Contains(t, out, "use backgroundColor")
}

func TestCheckReportsEvaluationErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "good.fluent", `Text("ok")`)
	bad := writeSource(t, dir, "bad.fluent", "Column() {\n  Slidr()\n}\n")
	missing := filepath.Join(dir, "missing.fluent")

	out, _, err := run(t, "-C", dir, "check", good, bad, missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3 file(s) failed")
	assert.Contains(t, out, plainSymbols.ok+" "+good)
	assert.Contains(t, out, plainSymbols.fail+" "+bad)
	assert.Contains(t, out, "bad.fluent:2:3")
	assert.Contains(t, out, plainSymbols.fail+" "+missing)
}

func TestCheckRequiresFiles(t *testing.T) {
	_, _, err := run(t, "-C", t.TempDir(), "check")
	assert.Error(t, err)
}

func TestDumpFormats(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "settings.fluent", settingsSource)

	out, _, err := run(t, "-C", dir, "dump", path, "--format", "json")
	require.NoError(t, err)
	var payload dumpPayload
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	require.Len(t, payload.Roots, 1)
	assert.Equal(t, "Column", payload.Roots[0]["component"])
	assert.Len(t, payload.Roots[0]["children"], 3)

	out, _, err = run(t, "-C", dir, "dump", path)
	require.NoError(t, err)
	var fromYAML dumpPayload
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	require.Len(t, fromYAML.Roots, 1)
	assert.Equal(t, "Column", fromYAML.Roots[0]["component"])

	_, _, err = run(t, "-C", dir, "dump", path, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestComponentsListsRegistry(t *testing.T) {
	out, _, err := run(t, "-C", t.TempDir(), "components")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	for _, name := range []string{"Badge", "Column", "Slider", "TextInput", "Toggle"} {
		assert.Contains(t, out, name)
	}
}

func TestDescribe(t *testing.T) {
	dir := t.TempDir()

	out, _, err := run(t, "-C", dir, "describe", "Slider")
	require.NoError(t, err)
	assert.Contains(t, out, "children: no")
	assert.Contains(t, out, "SystemCapability.ArkUI.ArkUI.Full")
	assert.Regexp(t, `stepColor\s+10`, out)
	assert.Regexp(t, `width\s+-`, out)

	out, _, err = run(t, "-C", dir, "describe", "Blank")
	require.NoError(t, err)
	assert.Contains(t, out, "deprecated in API 11, use backgroundColor")

	_, _, err = run(t, "-C", dir, "describe", "Slidr")
	assert.Error(t, err)
}

func TestCustomSchema(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "meta.toml", `
[components.Text]
since = "12"
`)
	path := writeSource(t, dir, "a.fluent", `Text("hi")`)

	out, _, err := run(t, "-C", dir, "--schema", "meta.toml", "--api-version", "11", "check", path)
	require.Error(t, err)
	assert.Contains(t, out, "requires API 12")

	writeSource(t, dir, "broken.toml", "[components.Nope]\n")
	_, _, err = run(t, "-C", dir, "--schema", "broken.toml", "components")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match the registry")
}
