package media

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/ecomlite/internal/config"
)

// Module exposes the media store to fx graph.
var Module = fx.Provide(newMediaStore)

type storeParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newMediaStore(p storeParams) (Store, error) {
	return NewS3Store(context.Background(), p.Config, p.Logger)
}
