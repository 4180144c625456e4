package logger

import "go.uber.org/fx"

// Module wires the application slog logger for dependency injection.
var Module = fx.Provide(New)
