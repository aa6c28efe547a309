package app

import (
	"context"
	"fmt"

	"github.com/google/wire"
	"go.uber.org/zap"

	"verbaflow/internal/app/api"
	_ "verbaflow/internal/app/api/gemini"
	_ "verbaflow/internal/app/api/openai/whisper"
	"verbaflow/internal/app/export"
	"verbaflow/internal/app/history"
	"verbaflow/internal/app/intake"
	"verbaflow/internal/app/lifecycle"
	"verbaflow/internal/app/logger"
	"verbaflow/internal/app/metrics"
	"verbaflow/internal/app/model"
	"verbaflow/internal/config"
)

// App is everything a session-driving surface (CLI transcribe, HTTP server) needs.
type App struct {
	Config     *config.Config
	Logger     *zap.Logger
	Metrics    *metrics.Metrics
	Controller *lifecycle.Controller
	Exporter   *export.Exporter
}

// Offline serves commands that only read or edit stored history.
type Offline struct {
	Config   *config.Config
	Logger   *zap.Logger
	Store    *history.Store
	Exporter *export.Exporter
}

// baseSet provides what every injector needs.
var baseSet = wire.NewSet(
	provideLogger,
	metrics.New,
	provideSlot,
	provideStore,
	provideSink,
	export.NewExporter,
)

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.NewLogger(logger.Config{
		Development: cfg.Log.Development,
		Level:       cfg.Log.Level,
	})
}

func provideTranscriber(cfg *config.Config) (api.Transcriber, error) {
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}
	return api.NewTranscriber(cfg.Transcriber.Provider, api.Settings{
		APIKey:      cfg.APIKey(),
		Model:       cfg.Transcriber.Model,
		Temperature: cfg.Transcriber.Temperature,
		BaseURL:     cfg.Transcriber.BaseURL,
		Timeout:     cfg.Transcriber.Timeout,
	})
}

// provideSlot opens the configured history backend. The cleanup closes it.
func provideSlot(ctx context.Context, cfg *config.Config) (history.Slot, func(), error) {
	h := cfg.History
	switch h.Backend {
	case "file":
		return history.NewFileSlot(h.Path), func() {}, nil
	case "memory":
		return history.NewMemorySlot(nil), func() {}, nil
	case "sqlite":
		slot, err := history.OpenSQLite(ctx, h.SQLitePath, h.SlotName)
		if err != nil {
			return nil, nil, err
		}
		return slot, func() { slot.Close() }, nil
	case "postgres":
		slot, err := history.OpenPostgres(ctx, h.PostgresDSN, h.SlotName)
		if err != nil {
			return nil, nil, err
		}
		return slot, func() { slot.Close() }, nil
	case "redis":
		slot, err := history.OpenRedis(ctx, h.RedisAddr, h.RedisPassword, h.RedisDB, h.SlotName)
		if err != nil {
			return nil, nil, err
		}
		return slot, func() { slot.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown history backend %q", h.Backend)
	}
}

func provideStore(ctx context.Context, slot history.Slot, log *zap.Logger) (*history.Store, error) {
	store := history.NewStore(slot, log.Named("history"))
	if _, err := store.Load(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func provideSink(ctx context.Context, cfg *config.Config) (export.Sink, error) {
	if cfg.Export.Sink == "minio" {
		m := cfg.Export.Minio
		return export.NewMinioSink(ctx, export.MinioConfig{
			Endpoint:  m.Endpoint,
			AccessKey: m.AccessKey,
			SecretKey: m.SecretKey,
			Bucket:    m.Bucket,
			Prefix:    m.Prefix,
			UseSSL:    m.UseSSL,
		})
	}
	return export.DirSink{Dir: cfg.Export.Dir}, nil
}

func provideIntake(cfg *config.Config) *intake.Intake {
	return intake.New(cfg.Intake.MaxUploadBytes, intake.NewPreviews())
}

func provideLanguage(cfg *config.Config) (model.Language, error) {
	return cfg.Language()
}

func provideController(in *intake.Intake, tr api.Transcriber, store *history.Store, log *zap.Logger, m *metrics.Metrics, lang model.Language) *lifecycle.Controller {
	return lifecycle.NewController(in, tr, store, log.Named("lifecycle"),
		lifecycle.WithMetrics(m),
		lifecycle.WithLanguage(lang),
	)
}

// DirExporter writes exports to dir instead of the configured sink. m may be nil.
func DirExporter(dir string, m *metrics.Metrics, log *zap.Logger) *export.Exporter {
	return export.NewExporter(export.DirSink{Dir: dir}, m, log)
}
