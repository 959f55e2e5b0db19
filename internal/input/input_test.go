package input_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/bjaus/rapidtables"
	"github.com/bjaus/rapidtables/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(t *testing.T, rows []rapidtables.Row) [][]rapidtables.Field {
	t.Helper()
	out := make([][]rapidtables.Field, len(rows))
	for i, r := range rows {
		out[i] = r.Fields()
	}
	return out
}

func TestDecode(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  [][]rapidtables.Field
	}{
		"json array": {
			input: `[{"name": "alpha", "size": 12}, {"name": "beta", "size": 1.5}]`,
			want: [][]rapidtables.Field{
				{{Key: "name", Value: "alpha"}, {Key: "size", Value: 12}},
				{{Key: "name", Value: "beta"}, {Key: "size", Value: 1.5}},
			},
		},
		"json object": {
			input: `{"z": true, "a": null}`,
			want: [][]rapidtables.Field{
				{{Key: "z", Value: true}, {Key: "a", Value: nil}},
			},
		},
		"json lines": {
			input: "{\"id\": 1, \"tag\": \"x\"}\n\n{\"id\": 2, \"tag\": \"y\"}\n",
			want: [][]rapidtables.Field{
				{{Key: "id", Value: 1}, {Key: "tag", Value: "x"}},
				{{Key: "id", Value: 2}, {Key: "tag", Value: "y"}},
			},
		},
		"yaml sequence": {
			input: "- host: web1\n  port: 80\n- host: db1\n  port: \"5432\"\n",
			want: [][]rapidtables.Field{
				{{Key: "host", Value: "web1"}, {Key: "port", Value: 80}},
				{{Key: "host", Value: "db1"}, {Key: "port", Value: "5432"}},
			},
		},
		"yaml documents": {
			input: "b: 1\na: 2\n---\nb: 3\na: 4\n",
			want: [][]rapidtables.Field{
				{{Key: "b", Value: 1}, {Key: "a", Value: 2}},
				{{Key: "b", Value: 3}, {Key: "a", Value: 4}},
			},
		},
		"nested values": {
			input: "- name: svc\n  ports: [80, 443]\n  meta:\n    owner: ops\n",
			want: [][]rapidtables.Field{
				{{Key: "name", Value: "svc"}, {Key: "ports", Value: "[80, 443]"}, {Key: "meta", Value: "{owner: ops}"}},
			},
		},
		"aliases": {
			input: "- &base {kind: a}\n- *base\n",
			want: [][]rapidtables.Field{
				{{Key: "kind", Value: "a"}},
				{{Key: "kind", Value: "a"}},
			},
		},
		"empty": {
			input: "",
			want:  [][]rapidtables.Field{},
		},
		"null document": {
			input: "~\n",
			want:  [][]rapidtables.Field{},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			rows, err := input.Decode(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, fields(t, rows))
		})
	}
}

func TestDecodeNotRecord(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"scalar":          "42\n",
		"scalar sequence": "[1, 2, 3]",
		"mixed sequence":  "- a: 1\n- plain\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := input.Decode(strings.NewReader(in))
			require.ErrorIs(t, err, input.ErrNotRecord)
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()
	_, err := input.Decode(strings.NewReader("a: [1, 2\nb: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document 1")
}

type failingReader struct{}

var errRead = errors.New("read failed")

func (failingReader) Read([]byte) (int, error) { return 0, errRead }

func TestDecodeReadError(t *testing.T) {
	t.Parallel()
	_, err := input.Decode(failingReader{})
	require.ErrorIs(t, err, errRead)
}

func TestDecodedRowsFormat(t *testing.T) {
	t.Parallel()
	rows, err := input.Decode(strings.NewReader(`[{"a": 1, "b": "x"}, {"a": 22, "b": "yy"}]`))
	require.NoError(t, err)
	got, err := rapidtables.MakeTable(rows, rapidtables.Simple)
	require.NoError(t, err)
	assert.Equal(t, " a  b \n--  --\n 1  x \n22  yy", got)
}
