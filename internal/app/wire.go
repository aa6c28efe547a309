//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"verbaflow/internal/config"
)

// InitializeApp builds the session controller and exporter from cfg.
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	wire.Build(
		baseSet,
		provideTranscriber,
		provideIntake,
		provideLanguage,
		provideController,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}

// InitializeOffline builds the history store and exporter without a transcriber,
// so history commands work without an API key.
func InitializeOffline(ctx context.Context, cfg *config.Config) (*Offline, func(), error) {
	wire.Build(
		baseSet,
		wire.Struct(new(Offline), "*"),
	)
	return nil, nil, nil
}
