package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/apereda/gradus/internal/domain"
)

// ConvertTemperature validates a measurement against its scale's
// physical limits and converts it to the other scale.
type ConvertTemperature struct {
	log *slog.Logger
}

func NewConvertTemperature(log *slog.Logger) *ConvertTemperature {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &ConvertTemperature{log: log}
}

func (uc *ConvertTemperature) Execute(ctx context.Context, in domain.Temperature) (domain.Conversion, error) {
	if err := ctx.Err(); err != nil {
		return domain.Conversion{}, err
	}

	if err := in.Validate(); err != nil {
		uc.log.Warn("convert.rejected",
			"scale", in.Scale.String(),
			"value", in.Value,
			"error", err.Error(),
		)
		return domain.Conversion{}, err
	}

	conv := domain.Conversion{Input: in, Output: in.Convert()}

	uc.log.Info("convert.done",
		"from", conv.Input.String(),
		"to", conv.Output.String(),
	)
	return conv, nil
}
