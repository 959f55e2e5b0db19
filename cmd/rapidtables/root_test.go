package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/rapidtables"
	"github.com/bjaus/rapidtables/internal/config"
)

const records = `[{"a": 1, "b": "x"}, {"a": 22, "b": "yy"}]`

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		// Cobra reads os.Args when given nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestFormatCommand(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"default": {
			args: nil,
			want: " a  b \n--  --\n 1  x \n22  yy\n",
		},
		"subcommand": {
			args: []string{"format"},
			want: " a  b \n--  --\n 1  x \n22  yy\n",
		},
		"markdown": {
			args: []string{"-f", "md"},
			want: "|  a | b  |\n|----|----|\n|  1 | x  |\n| 22 | yy |\n",
		},
		"rst with headers": {
			args: []string{"format", "--format", "rst", "--headers", "A,Bee"},
			want: "==  ===\n A  Bee\n==  ===\n 1  x  \n22  yy \n==  ===\n",
		},
		"raw no align": {
			args: []string{"-f", "raw", "--no-align"},
			want: "a   b \n------\n1   x \n22  yy\n",
		},
		"fixed width": {
			args: []string{"--width", "3"},
			want: "  a  b  \n---  ---\n  1  x  \n 22  yy \n",
		},
		"lines": {
			args: []string{"-o", "lines", "--separator", " | ", "--body-sep", "-", "--body-sep-fill", "-+-"},
			want: " a | b \n---+---\n 1 | x \n22 | yy\n",
		},
		"lines without header": {
			args: []string{"-o", "lines", "--no-header"},
			want: " 1  x \n22  yy\n",
		},
		"tuples": {
			args: []string{"-o", "tuples", "--body-sep", "="},
			want: " a\tb \n==\t==\n 1\tx \n22\tyy\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, _, err := run(t, records, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFormatCommandFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "one.yaml")
	second := filepath.Join(dir, "two.jsonl")
	require.NoError(t, os.WriteFile(first, []byte("- name: alpha\n  size: 12\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte(`{"name": "beta", "size": 1024}`+"\n"), 0o644))

	out, _, err := run(t, "", "format", first, second)
	require.NoError(t, err)
	assert.Equal(t, "name   size\n-----  ----\nalpha    12\nbeta   1024\n", out)
}

func TestFormatCommandEmptyInput(t *testing.T) {
	out, _, err := run(t, "")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFormatCommandErrors(t *testing.T) {
	tests := map[string]struct {
		stdin  string
		args   []string
		target error
	}{
		"unknown format": {stdin: records, args: []string{"-f", "grid"}, target: config.ErrInvalid},
		"bad width":      {stdin: records, args: []string{"--width", "wide"}, target: config.ErrInvalid},
		"bad output":     {stdin: records, args: []string{"-o", "csv"}, target: config.ErrInvalid},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := run(t, tt.stdin, tt.args...)
			require.ErrorIs(t, err, tt.target)
		})
	}
}

func TestFormatCommandMissingFile(t *testing.T) {
	_, _, err := run(t, "", "format", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestFormatCommandBadInput(t *testing.T) {
	_, _, err := run(t, "[1, 2]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "<stdin>")
}

func TestFormatCommandConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rt.toml")
	require.NoError(t, os.WriteFile(path, []byte("format = \"md\"\nalign = \"none\"\n"), 0o644))

	out, _, err := run(t, records, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "| a  | b  |\n|----|----|\n| 1  | x  |\n| 22 | yy |\n", out)

	// Flags win over the file.
	out, _, err = run(t, records, "--config", path, "-f", "rst")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "==  ==\na   b \n"), out)
}

func TestFormatCommandVerbose(t *testing.T) {
	_, stderr, err := run(t, records, "-vv")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Rendering table")
	assert.Contains(t, stderr, "component=render")
}

func TestFormatsCommand(t *testing.T) {
	out, _, err := run(t, "", "formats")
	require.NoError(t, err)
	var want strings.Builder
	for _, f := range rapidtables.Formats() {
		want.WriteString(f.String() + "\n")
	}
	assert.Equal(t, want.String(), out)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "rapidtables version dev")
}
