package app

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-model-config/internal/config"
	"github.com/MKhiriev/go-model-config/models"
)

const (
	keyWidth  = 24
	uiDivider = "────────────────────────────────────────"
)

// Renderer writes reports in one output format.
type Renderer interface {
	Render(w io.Writer, reports ...Report) error
}

// NewRenderer returns the Renderer for format ("text", "json" or "yaml").
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case config.OutputText:
		return textRenderer{}, nil
	case config.OutputJSON:
		return jsonRenderer{}, nil
	case config.OutputYAML:
		return yamlRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedOutput, format)
	}
}

type jsonRenderer struct{}

func (jsonRenderer) Render(w io.Writer, reports ...Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("error encoding json report: %w", err)
	}
	return nil
}

type yamlRenderer struct{}

func (yamlRenderer) Render(w io.Writer, reports ...Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("error encoding yaml report: %w", err)
	}
	return enc.Close()
}

// textRenderer prints one page per report, styled with lipgloss. Styles are
// bound to w so that colors are dropped when w is not a terminal.
type textRenderer struct{}

func (textRenderer) Render(w io.Writer, reports ...Report) error {
	r := lipgloss.NewRenderer(w)
	titleStyle := r.NewStyle().Bold(true)
	keyStyle := r.NewStyle().Faint(true).Width(keyWidth)
	errorStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	var b strings.Builder
	for i, rep := range reports {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(titleStyle.Render(rep.Name))
		b.WriteString("\n  ")
		b.WriteString(uiDivider)
		b.WriteString("\n")

		for _, row := range reportRows(rep) {
			b.WriteString("  ")
			b.WriteString(keyStyle.Render(row.key))
			b.WriteString(row.value)
			b.WriteString("\n")
		}

		if rep.Error != "" {
			b.WriteString("  ")
			b.WriteString(errorStyle.Render("error: " + rep.Error))
			b.WriteString("\n")
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("error writing text report: %w", err)
	}
	return nil
}

type row struct {
	key   string
	value string
}

func reportRows(rep Report) []row {
	switch {
	case rep.Resolved != nil:
		return resolvedRows(*rep.Resolved)
	case rep.Config != nil:
		return configRows(*rep.Config)
	default:
		return nil
	}
}

func configRows(cfg models.ModelConfig) []row {
	params := cfg.Parameters()
	rows := make([]row, 0, len(params))
	for _, p := range params {
		rows = append(rows, row{key: p.Kind().String(), value: formatParameter(p)})
	}
	return rows
}

func resolvedRows(r models.ResolvedModelConfig) []row {
	return []row{
		{models.KindExceptions.String(), toggle(r.Exceptions)},
		{models.KindMaxContextLength.String(), strconv.FormatUint(r.MaxContextLength, 10)},
		{models.KindMaxPromptLength.String(), strconv.FormatUint(r.MaxPromptLength, 10)},
		{models.KindMaxGenerationLength.String(), strconv.FormatUint(r.MaxGenerationLength, 10)},
		{models.KindMaxBatchSize.String(), strconv.FormatUint(r.MaxBatchSize, 10)},
		{models.KindGPUCount.String(), strconv.FormatUint(r.GPUCount, 10)},
		{models.KindGPURank.String(), strconv.FormatUint(r.GPURank, 10)},
		{models.KindBenchmark.String(), toggle(r.Benchmark)},
		{models.KindDev.String(), toggle(r.Dev)},
	}
}

// formatParameter prints toggles and the maximum sentinel as
// enabled/disabled, and any other quantity as a number.
func formatParameter(p models.Parameter) string {
	switch v := p.(type) {
	case models.Exceptions:
		return toggle(bool(v))
	case models.Benchmark:
		return toggle(bool(v))
	case models.Dev:
		return toggle(bool(v))
	case models.MaxContextLength:
		return quantity(uint64(v))
	case models.MaxPromptLength:
		return quantity(uint64(v))
	case models.MaxGenerationLength:
		return quantity(uint64(v))
	case models.MaxBatchSize:
		return quantity(uint64(v))
	case models.GPUCount:
		return quantity(uint64(v))
	case models.GPURank:
		return quantity(uint64(v))
	default:
		return "-"
	}
}

func toggle(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}

func quantity(n uint64) string {
	if n == math.MaxUint64 {
		return "enabled"
	}
	return strconv.FormatUint(n, 10)
}
