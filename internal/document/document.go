// Package document loads resumes, job descriptions and transcripts from disk.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// MaxFileSize bounds every document read from disk.
const MaxFileSize = 20 << 20

var ErrEmpty = errors.New("document has no text content")

// Load returns the text of a .pdf or plain text file. Invalid UTF-8 is
// replaced and surrounding whitespace trimmed.
func Load(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > MaxFileSize {
		return "", fmt.Errorf("%s is too large: %d bytes, limit %d", path, info.Size(), MaxFileSize)
	}

	var text string
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err = loadPDF(path)
	} else {
		text, err = loadText(path)
	}
	if err != nil {
		return "", err
	}

	text = Clean(text)
	if text == "" {
		return "", fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return text, nil
}

func loadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func loadPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("read pdf %s page %d: %w", path, i, err)
		}
		b.WriteString(text)
		b.WriteString("\n\n")
	}

	return b.String(), nil
}

// Clean drops a UTF-8 byte order mark, replaces invalid sequences, normalizes
// line endings and trims trailing spaces on each line.
func Clean(text string) string {
	text = strings.TrimPrefix(text, "\ufeff")
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "\uFFFD")
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
