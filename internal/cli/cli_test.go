package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/apereda/gradus/internal/domain"
)

var sampleConversion = domain.Conversion{
	Input:  domain.Temperature{Value: 25, Scale: domain.Celsius},
	Output: domain.Temperature{Value: 77, Scale: domain.Fahrenheit},
}

// --- printConversion ---

func TestPrintConversion_Pretty(t *testing.T) {
	var buf bytes.Buffer
	if err := printConversion(&buf, sampleConversion, "pretty"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "25.00°C = 77.00°F\n" {
		t.Errorf("unexpected pretty output: %q", got)
	}
}

func TestPrintConversion_EmptyFormat_IsPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := printConversion(&buf, sampleConversion, ""); err != nil {
		t.Fatalf("empty format should behave like pretty, got error: %v", err)
	}
	if !strings.Contains(buf.String(), "77.00°F") {
		t.Errorf("expected result in output, got %q", buf.String())
	}
}

func TestPrintConversion_JSON_ValidOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := printConversion(&buf, sampleConversion, "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload map[string]map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if payload["input"]["scale"] != "Celsius" {
		t.Errorf("expected input scale Celsius, got %v", payload["input"]["scale"])
	}
	if payload["output"]["formatted"] != "77.00°F" {
		t.Errorf("expected formatted output 77.00°F, got %v", payload["output"]["formatted"])
	}
}

func TestPrintConversion_UnknownFormat_ReturnsError(t *testing.T) {
	var buf bytes.Buffer
	err := printConversion(&buf, sampleConversion, "xml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("expected error to mention format, got: %v", err)
	}
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Use] = true
	}
	for _, expected := range []string{"convert", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	if cmd.PersistentFlags().Lookup("debug") == nil {
		t.Error("expected --debug persistent flag on root command")
	}
	if cmd.Flags().Lookup("tui") == nil {
		t.Error("expected --tui flag on root command")
	}
}

func TestConvertCmd_Flags(t *testing.T) {
	cmd := convertCmd()
	if cmd.Use != "convert" {
		t.Errorf("expected Use=convert, got %q", cmd.Use)
	}
	for _, flag := range []string{"from", "value", "format"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on convert command", flag)
		}
	}
}
