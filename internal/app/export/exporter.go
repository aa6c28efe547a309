package export

import (
	"bytes"
	"context"
	"time"

	"go.uber.org/zap"

	"verbaflow/internal/app/metrics"
	"verbaflow/internal/app/model"
)

// Result describes a stored export.
type Result struct {
	Name     string `json:"name"`
	Format   Format `json:"format"`
	Location string `json:"location"`
	Size     int    `json:"size"`
}

// Exporter renders documents and hands them to a Sink.
type Exporter struct {
	sink    Sink
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewExporter creates an exporter. m may be nil.
func NewExporter(sink Sink, m *metrics.Metrics, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{sink: sink, metrics: m, logger: logger, now: time.Now}
}

// Now is the date stamped on exports.
func (e *Exporter) Now() time.Time {
	return e.now()
}

// Document builds the export input for text taken from fileName.
func (e *Exporter) Document(text, fileName string) Document {
	return Document{Text: text, FileName: fileName, Date: e.now()}
}

// Export renders doc as f and stores it.
func (e *Exporter) Export(ctx context.Context, f Format, doc Document) (Result, error) {
	data, err := RenderBytes(f, doc)
	if err != nil {
		e.logger.Error("export failed", zap.String("format", string(f)), zap.Error(err))
		return Result{}, err
	}
	return e.store(ctx, f, FileName(doc.FileName, string(f), doc.Date), data)
}

// ExportHistory writes entries as a spreadsheet and stores it.
func (e *Exporter) ExportHistory(ctx context.Context, entries []model.HistoryEntry) (Result, error) {
	var buf bytes.Buffer
	if err := HistoryToExcel(&buf, entries); err != nil {
		e.logger.Error("history export failed", zap.Error(err))
		return Result{}, err
	}
	return e.store(ctx, FormatXLSX, FileName("history", string(FormatXLSX), e.now()), buf.Bytes())
}

// Served records an export streamed directly to a client.
func (e *Exporter) Served(f Format) {
	e.metrics.Exported(string(f))
}

func (e *Exporter) store(ctx context.Context, f Format, name string, data []byte) (Result, error) {
	location, err := e.sink.Put(ctx, name, f.ContentType(), data)
	if err != nil {
		e.logger.Error("storing export failed", zap.String("name", name), zap.Error(err))
		return Result{}, exportFailed(f, err)
	}
	e.metrics.Exported(string(f))
	e.logger.Info("export written", zap.String("name", name), zap.String("location", location), zap.Int("bytes", len(data)))
	return Result{Name: name, Format: f, Location: location, Size: len(data)}, nil
}
