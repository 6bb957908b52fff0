package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/apereda/gradus/internal/domain"
	"github.com/apereda/gradus/internal/infra/logger"
	"github.com/apereda/gradus/internal/usecase"
)

func convertCmd() *cobra.Command {
	var from string
	var value float64
	var format string

	c := &cobra.Command{
		Use:   "convert",
		Short: "Convert a single value without the interactive menu",
		RunE: func(cmd *cobra.Command, _ []string) error {
			scale, err := domain.ParseScale(from)
			if err != nil {
				return err
			}

			uc := usecase.NewConvertTemperature(logger.L())
			conv, err := uc.Execute(cmd.Context(), domain.Temperature{
				Value: value,
				Scale: scale,
			})
			if err != nil {
				return err
			}

			return printConversion(os.Stdout, conv, format)
		},
	}

	c.Flags().StringVarP(&from, "from", "f", "", "Source scale: c|celsius|f|fahrenheit (required)")
	c.Flags().Float64VarP(&value, "value", "v", 0, "Temperature value to convert (required)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("value")
	return c
}

func printConversion(w io.Writer, conv domain.Conversion, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"input":  temperaturePayload(conv.Input),
			"output": temperaturePayload(conv.Output),
		}
		return enc.Encode(payload)
	case "pretty", "":
		fmt.Fprintln(w, conv)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func temperaturePayload(t domain.Temperature) map[string]any {
	return map[string]any{
		"value":     t.Value,
		"scale":     t.Scale.String(),
		"formatted": t.String(),
	}
}
