package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/apereda/gradus/internal/domain"
)

func TestConvertTemperature_CelsiusToFahrenheit(t *testing.T) {
	uc := NewConvertTemperature(nil)

	conv, err := uc.Execute(context.Background(), domain.Temperature{Value: 25, Scale: domain.Celsius})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.Output.Scale != domain.Fahrenheit {
		t.Errorf("expected Fahrenheit output, got %v", conv.Output.Scale)
	}
	if math.Abs(conv.Output.Value-77) > 1e-9 {
		t.Errorf("expected 77, got %v", conv.Output.Value)
	}
}

func TestConvertTemperature_FahrenheitToCelsius(t *testing.T) {
	uc := NewConvertTemperature(nil)

	conv, err := uc.Execute(context.Background(), domain.Temperature{Value: 98.6, Scale: domain.Fahrenheit})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := conv.String(); got != "98.60°F = 37.00°C" {
		t.Errorf("unexpected result line: %q", got)
	}
}

func TestConvertTemperature_OutOfRange(t *testing.T) {
	uc := NewConvertTemperature(nil)

	_, err := uc.Execute(context.Background(), domain.Temperature{Value: -500, Scale: domain.Celsius})
	if err == nil {
		t.Fatal("expected error for sub-absolute-zero input")
	}
	if !errors.Is(err, domain.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestConvertTemperature_CanceledContext(t *testing.T) {
	uc := NewConvertTemperature(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, domain.Temperature{Value: 25, Scale: domain.Celsius})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
