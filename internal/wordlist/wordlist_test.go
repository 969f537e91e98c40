package wordlist

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Array(t *testing.T) {
	words, skipped, err := Parse([]byte(`["crane", " Slate ", "toolong", "CRANE", "ab1de"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"CRANE", "SLATE"}, words)
	assert.Equal(t, []string{"TOOLONG", "AB1DE"}, skipped)
}

func TestParse_Object(t *testing.T) {
	words, skipped, err := Parse([]byte(`{"words":[{"word":"plane","hint":"flies"},{"word":"cat"}]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"PLANE"}, words)
	assert.Equal(t, []string{"CAT"}, skipped)
}

func TestParse_Errors(t *testing.T) {
	_, _, err := Parse([]byte(`not json`))
	assert.Error(t, err)

	_, skipped, err := Parse([]byte(`["cat", "dog"]`))
	assert.ErrorIs(t, err, ErrEmptyList)
	assert.Len(t, skipped, 2)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	require.NoError(t, os.WriteFile(path, []byte(`["robot","macaw"]`), 0o644))
	words, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ROBOT", "MACAW"}, words)

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromText(t *testing.T) {
	words, err := FromText(strings.NewReader("crane\n\n  slate \r\ntrace\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate", "trace"}, words)
}

func TestDecodeEntry(t *testing.T) {
	w, err := DecodeEntry("6782657869")
	require.NoError(t, err)
	assert.Equal(t, "CRANE", w)

	_, err = DecodeEntry("678")
	assert.Error(t, err)
	_, err = DecodeEntry("67xx")
	assert.Error(t, err)
}

func TestDecodeJSON(t *testing.T) {
	words, err := DecodeJSON([]byte(`["6782657869","8076657869"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"CRANE", "PLANE"}, words)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []string{"CRANE", "PLANE"}))
	assert.Equal(t, "[\"CRANE\",\"PLANE\"]\n", buf.String())
}
