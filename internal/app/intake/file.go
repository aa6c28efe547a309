package intake

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// ReadFile loads a file from disk for validation. The size limit is checked
// before the content is read so oversized files are rejected cheaply.
func ReadFile(path string, maxBytes int64) (FileInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileInput{}, fmt.Errorf("open media file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return FileInput{}, fmt.Errorf("stat media file: %w", err)
	}

	head := make([]byte, 3072)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return FileInput{}, fmt.Errorf("read media header: %w", err)
	}
	head = head[:n]

	input := FileInput{
		Name:     filepath.Base(path),
		MimeType: DetectMimeType(filepath.Base(path), head),
		Size:     info.Size(),
	}
	if _, err := CheckFile(input, maxBytes); err != nil {
		return input, err
	}

	rest, err := io.ReadAll(f)
	if err != nil {
		return FileInput{}, fmt.Errorf("read media file: %w", err)
	}
	input.Data = append(head, rest...)
	return input, nil
}

// DetectMimeType sniffs the content and falls back to the file extension
// when the content is not recognised as audio or video.
func DetectMimeType(name string, head []byte) string {
	detected := mimetype.Detect(head).String()
	if _, ok := CategoryOf(detected); ok {
		return detected
	}
	if byExt := mime.TypeByExtension(filepath.Ext(name)); byExt != "" {
		return byExt
	}
	return detected
}
