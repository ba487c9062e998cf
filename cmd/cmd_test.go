package cmd

import (
	"bytes"
	"github.com/cottand/tsck/frontend/builtins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
}

func TestCheckReportsProblems(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.ts"), "const a = 1;\n\"a\" === \"b\";\n")
	writeFile(t, filepath.Join(dir, "ok.ts"), "1 === 1;\n")

	out := &bytes.Buffer{}
	CheckCmd.SetOut(out)
	defer CheckCmd.SetOut(nil)

	err := runCheck(CheckCmd, []string{dir})
	assert.Equal(t, ErrProblemsFound{Count: 1}, err)
	assert.Contains(t, out.String(), "main.ts:2:1: (E007)")
	assert.NotContains(t, out.String(), "ok.ts")
}

func TestCheckSingleFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.ts"), `"a" === "b";`)
	writeFile(t, filepath.Join(dir, "good.ts"), `NaN === 1;`)

	out := &bytes.Buffer{}
	CheckCmd.SetOut(out)
	defer CheckCmd.SetOut(nil)

	assert.NoError(t, runCheck(CheckCmd, []string{filepath.Join(dir, "good.ts")}))
	assert.Empty(t, out.String())
}

func TestCheckUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.ts"), `NaN === 1;`)
	writeFile(t, filepath.Join(dir, "tsck.yaml"), "disable_builtins: true\n")

	out := &bytes.Buffer{}
	CheckCmd.SetOut(out)
	defer CheckCmd.SetOut(nil)

	err := runCheck(CheckCmd, []string{dir})
	assert.Equal(t, ErrProblemsFound{Count: 1}, err)
	assert.Contains(t, out.String(), "cannot find name 'NaN'")

	writeFile(t, filepath.Join(dir, "tsck.yaml"), "unknown_key: 1\n")
	assert.Error(t, runCheck(CheckCmd, []string{dir}))
}

func TestCheckMissingTarget(t *testing.T) {
	err := runCheck(CheckCmd, []string{filepath.Join(t.TempDir(), "nope")})
	assert.ErrorContains(t, err, "could not stat target")
}

func TestBuiltinsGen(t *testing.T) {
	dir := t.TempDir()
	lib := filepath.Join(dir, "lib.d.ts")
	writeFile(t, lib, "declare var NaN: number;\ndeclare function isNaN(n: number): boolean;\ndeclare let skipped: keyof T;\n")

	outPath := filepath.Join(dir, "builtins.yaml")
	*genOutPath = outPath
	defer func() { *genOutPath = "" }()

	stderr := &bytes.Buffer{}
	BuiltinsGenCmd.SetErr(stderr)
	defer BuiltinsGenCmd.SetErr(nil)

	require.NoError(t, runBuiltinsGen(BuiltinsGenCmd, []string{lib}))
	assert.Contains(t, stderr.String(), "skipped: lib.d.ts:3:")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	artifact, err := builtins.Decode(data)
	require.NoError(t, err)
	ns, err := artifact.Bind()
	require.NoError(t, err)
	assert.Equal(t, []string{"NaN", "isNaN"}, ns.Names())
	isNaN, ok := ns.Lookup("isNaN")
	require.True(t, ok)
	assert.Equal(t, "(n: number) => boolean", isNaN.String())
	assert.Equal(t, "function", artifact.Globals[1].Kind)
}
