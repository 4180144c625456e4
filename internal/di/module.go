package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/ecomlite/internal/adapter/media"
	"github.com/polkiloo/ecomlite/internal/adapter/razorpay"
	"github.com/polkiloo/ecomlite/internal/app"
	"github.com/polkiloo/ecomlite/internal/config"
	"github.com/polkiloo/ecomlite/internal/logger"
	"github.com/polkiloo/ecomlite/internal/pkg/auth"
	"github.com/polkiloo/ecomlite/internal/pkg/payment"
	"github.com/polkiloo/ecomlite/internal/server/http/router"
	"github.com/polkiloo/ecomlite/internal/storage/postgres"
	"github.com/polkiloo/ecomlite/internal/usecase"
)

// Module assembles the whole application graph. Extra options are appended last
// so callers can fx.Replace any provided dependency.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		payment.Module,
		postgres.Module,
		razorpay.Module,
		media.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
