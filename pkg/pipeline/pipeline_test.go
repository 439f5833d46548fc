package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmdgraph/cmdgraph/pkg/errors"
)

const sampleTree = `{
  "type": "root",
  "children": {
    "help": {"type": "literal", "executable": true},
    "teammsg": {
      "type": "literal",
      "children": {
        "message": {"type": "argument", "parser": "minecraft:message", "executable": true}
      }
    },
    "tm": {"type": "literal", "redirect": ["teammsg"]}
  }
}`

const sampleDOT = `strict digraph {
  0 [shape=box, label="(root)", style=filled, fillcolor=white, fontcolor=black, color=black];
  1 [shape=box, label="\"help\"", style=filled, fillcolor=palegreen, fontcolor=black, color=black];
  0 -> 1;
  2 [shape=box, label="\"teammsg\"", style=filled, fillcolor=white, fontcolor=black, color=black];
  0 -> 2;
  3 [shape=box, label="<message>\n(message)", style=filled, fillcolor=palegreen, fontcolor=black, color=black];
  2 -> 3;
  4 [shape=box, label="\"tm\"", style=filled, fillcolor=white, fontcolor=black, color=black];
  0 -> 4;
  4 -> 2 [style=dashed];
}
`

func TestConvert(t *testing.T) {
	out, stats, err := Convert([]byte(sampleTree), Options{})
	require.NoError(t, err)

	assert.Equal(t, sampleDOT, out)
	assert.Equal(t, Stats{Nodes: 5, Edges: 4, Redirects: 1}, stats)
}

func TestConvertIdempotent(t *testing.T) {
	first, _, err := Convert([]byte(sampleTree), Options{})
	require.NoError(t, err)

	second, _, err := Convert([]byte(sampleTree), Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second, "same input must produce byte-identical output")
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{name: "MalformedJSON", input: `{"type":`, code: errors.ErrCodeDecode},
		{name: "BadParserID", input: `{"type":"root","children":{"x":{"type":"argument","parser":"integer"}}}`, code: errors.ErrCodeMissingNamespace},
		{name: "UnknownRedirect", input: `{"type":"root","children":{"x":{"type":"literal","redirect":["gone"]}}}`, code: errors.ErrCodeRedirectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := Convert([]byte(tt.input), Options{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.code), "got code %v, want %v", errors.GetCode(err), tt.code)
			assert.Empty(t, out)
		})
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "commands.json")
	out := filepath.Join(dir, "commands.dot")
	require.NoError(t, os.WriteFile(in, []byte(sampleTree), 0o644))

	stats, err := ConvertFile(in, out, Options{})
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Nodes)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, sampleDOT, string(data))
}

func TestConvertFileWritesNothingOnError(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "commands.json")
	out := filepath.Join(dir, "commands.dot")
	require.NoError(t, os.WriteFile(in, []byte(`{"type":"root","children":{"x":{"type":"literal","redirect":["gone"]}}}`), 0o644))

	_, err := ConvertFile(in, out, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeRedirectNotFound))

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output may be written on a failed run")
}

func TestConvertFileMissingInput(t *testing.T) {
	dir := t.TempDir()

	_, err := ConvertFile(filepath.Join(dir, "absent.json"), filepath.Join(dir, "out.dot"), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))
}

func TestConvertFileWriteFailure(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "commands.json")
	require.NoError(t, os.WriteFile(in, []byte(sampleTree), 0o644))

	_, err := ConvertFile(in, filepath.Join(dir, "missing", "out.dot"), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeWrite))
}
