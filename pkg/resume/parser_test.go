package resume

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextUnsupportedFormat(t *testing.T) {
	for _, name := range []string{"resume.exe", "resume.png", "resume", "resume.doc"} {
		_, err := ExtractText(name, []byte("content"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat, "filename %s", name)
	}
}

func TestExtractTextPlain(t *testing.T) {
	text, err := ExtractText("resume.txt", []byte("John Smith\nSoftware Engineer\n"))
	require.NoError(t, err)
	assert.Equal(t, "John Smith\nSoftware Engineer", text)
}

func TestExtractTextEmptyDocument(t *testing.T) {
	_, err := ExtractText("resume.txt", []byte("   \n  \n"))
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestExtractTextLatin1Fallback(t *testing.T) {
	// "Jörg" in Latin-1, invalid as UTF-8.
	data := []byte{'J', 0xF6, 'r', 'g'}
	text, err := ExtractText("resume.txt", data)
	require.NoError(t, err)
	assert.Equal(t, "Jörg", text)
}

func TestExtractTextDocx(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<w:document><w:body>` +
		`<w:p><w:r><w:t>John Smith</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Senior Engineer</w:t></w:r></w:p>` +
		`</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	text, err := ExtractText("resume.docx", buf.Bytes())
	require.NoError(t, err)
	assert.Contains(t, text, "John Smith")
	assert.Contains(t, text, "Senior Engineer")
}

func TestExtractTextCorruptDocx(t *testing.T) {
	_, err := ExtractText("resume.docx", []byte("not a zip archive"))
	assert.ErrorIs(t, err, ErrExtraction)
}
