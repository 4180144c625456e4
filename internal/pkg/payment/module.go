package payment

import (
	"github.com/polkiloo/ecomlite/internal/config"
	"go.uber.org/fx"
)

// Module provides both payment strategies.
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config) *SignatureStrategy {
		return NewSignatureStrategy(cfg.RazorpayKeySecret)
	}),
	fx.Provide(NewStatusCallbackStrategy),
)
