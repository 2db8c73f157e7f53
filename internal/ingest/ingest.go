// Package ingest turns documents into plain text for summarization.
//
// Plain-text and Markdown files are read as they are. Every other format
// (PDF, DOCX, ODT, RTF, HTML, ...) goes through docconv.
package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"code.sajari.com/docconv"
	"github.com/localrivet/textsummary/internal/errortypes"
)

var (
	// ErrEmptyDocument is returned when conversion produced no text.
	ErrEmptyDocument = errors.New("document contains no text")

	// ErrInvalidEncoding is returned for plain-text input that is not UTF-8.
	ErrInvalidEncoding = errors.New("plain-text document is not valid UTF-8")
)

// plainExtensions are read without conversion.
var plainExtensions = map[string]bool{
	"":          true,
	".txt":      true,
	".text":     true,
	".md":       true,
	".markdown": true,
}

// IsPlainText reports whether name is read without conversion.
func IsPlainText(name string) bool {
	return plainExtensions[strings.ToLower(filepath.Ext(name))]
}

// ReadFile returns the text content of the file at path.
func ReadFile(path string) (string, error) {
	if IsPlainText(path) {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errortypes.ValidationError(err, "failed to read document").
				WithField("path", path)
		}
		return plainText(data, path)
	}

	res, err := docconv.ConvertPath(path)
	if err != nil {
		return "", errortypes.ExternalError(err, "failed to convert document").
			WithField("path", path)
	}
	return converted(res, path)
}

// Extract returns the text content of a document read from r. The format
// is chosen from the extension of name.
func Extract(r io.Reader, name string) (string, error) {
	if IsPlainText(name) {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", errortypes.ValidationError(err, "failed to read document").
				WithField("name", name)
		}
		return plainText(data, name)
	}

	mimeType := docconv.MimeTypeByExtension(name)
	res, err := docconv.Convert(r, mimeType, true)
	if err != nil {
		return "", errortypes.ExternalError(err, "failed to convert document").
			WithFields(map[string]interface{}{"name": name, "mime_type": mimeType})
	}
	return converted(res, name)
}

func plainText(data []byte, name string) (string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) {
		return "", errortypes.ValidationError(ErrInvalidEncoding, "cannot read document").
			WithField("name", name)
	}
	return string(data), nil
}

func converted(res *docconv.Response, name string) (string, error) {
	if res.Error != "" {
		return "", errortypes.ExternalError(fmt.Errorf("%s", res.Error), "failed to convert document").
			WithField("name", name)
	}
	text := strings.TrimSpace(res.Body)
	if text == "" {
		return "", errortypes.ValidationError(ErrEmptyDocument, "cannot summarize document").
			WithField("name", name)
	}
	return text, nil
}
