package tui

import (
	"log/slog"

	"github.com/apereda/gradus/internal/usecase"
)

type Deps struct {
	Converter *usecase.ConvertTemperature

	Logger *slog.Logger
}
