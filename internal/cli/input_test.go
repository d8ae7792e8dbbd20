package cli

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)
}

func TestGetTextDefault(t *testing.T) {
	var out bytes.Buffer

	got, err := GetTextDefault(rdr("\n"), "Email", "amaya@example.com", &out)
	require.NoError(t, err)
	assert.Equal(t, "amaya@example.com", got, "empty line keeps the pre-filled value")

	got, err = GetTextDefault(rdr("new@example.com\n"), "Email", "amaya@example.com", &out)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", got)
}

func TestGetMultilineDoubleEnter(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\nb\n\n"), "Enter text", &out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)
}

func TestGetYesNo(t *testing.T) {
	var out bytes.Buffer
	for input, want := range map[string]bool{
		"y\n": true, "yes\n": true, "Y\n": true,
		"n\n": false, "no\n": false, "whatever\n": false,
	} {
		got, err := GetYesNo(rdr(input), "Accept?", &out)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestGetFile(t *testing.T) {
	var out bytes.Buffer

	path := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg"), 0o600))

	f, err := GetFile(rdr(path+"\n"), "Profile photo", &out)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, "photo.jpg", f.Name)
	assert.Equal(t, []byte("jpeg"), f.Content)

	f, err = GetFile(rdr("\n"), "Profile photo", &out)
	require.NoError(t, err)
	assert.Nil(t, f, "empty line means no file")

	_, err = GetFile(rdr("/no/such/file\n"), "Profile photo", &out)
	require.Error(t, err)
}

func TestGetPasswordError(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}

	var out bytes.Buffer
	_, err := GetPassword(&out)
	require.Error(t, err)
}

func TestParseAvailability(t *testing.T) {
	av := parseAvailability("mon, SAT,sunday")
	assert.True(t, av.Monday)
	assert.True(t, av.Saturday)
	assert.True(t, av.Sunday)
	assert.False(t, av.Tuesday)
}

func TestWipeBytes(t *testing.T) {
	b := []byte("secret")
	wipeBytes(b)
	assert.Equal(t, make([]byte, 6), b)
}
