package model

// MediaCategory is the display category derived from a MIME prefix.
type MediaCategory string

const (
	MediaAudio MediaCategory = "audio"
	MediaVideo MediaCategory = "video"
)

// PreviewHandle identifies a live preview of a selected media file.
type PreviewHandle string

// MediaSelection is a validated file ready for transcription.
type MediaSelection struct {
	FileName string
	MimeType string
	Size     int64
	Category MediaCategory
	Data     []byte
	Preview  PreviewHandle
}

// SizeMB returns the size in megabytes (MiB) for display.
func (m *MediaSelection) SizeMB() float64 {
	return float64(m.Size) / (1024 * 1024)
}
