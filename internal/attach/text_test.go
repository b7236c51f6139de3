package attach

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	stdout []byte
	err    error

	gotName string
	gotArgs []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.gotName = name
	s.gotArgs = args
	return s.stdout, nil, s.err
}

func TestTextPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("Quantity: 40"), 0o644))

	got, err := NewExtractor("", nil).Text(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Quantity: 40", got)
}

func TestTextUnsupportedExtension(t *testing.T) {
	got, err := NewExtractor("", nil).Text(context.Background(), "archive.zip")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTextImageGoesThroughOCR(t *testing.T) {
	runner := &stubRunner{stdout: []byte("need 5 units")}
	e := NewExtractor("tesseract", nil)
	e.Runner = runner

	got, err := e.Text(context.Background(), "/tmp/scan.png")
	require.NoError(t, err)
	assert.Equal(t, "need 5 units", got)
	assert.Equal(t, "tesseract", runner.gotName)
	assert.Equal(t, []string{"/tmp/scan.png", "stdout"}, runner.gotArgs)
}

func TestTextOCRFailure(t *testing.T) {
	runner := &stubRunner{err: errors.New("tesseract not installed")}
	e := NewExtractor("tesseract", nil)
	e.Runner = runner

	_, err := e.Text(context.Background(), "/tmp/scan.jpg")
	assert.Error(t, err)
}

func TestTextMissingFile(t *testing.T) {
	_, err := NewExtractor("", nil).Text(context.Background(), filepath.Join(t.TempDir(), "gone.txt"))
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 8))
	long := truncate("abcdefgh", 4)
	assert.Equal(t, "abcd...(truncated)", long)
}
