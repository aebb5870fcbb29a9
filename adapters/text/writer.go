package text

import (
	"fmt"
	"strings"

	"perfmodel/internal/modeler"
)

// FormatResult renders a modeling result for terminal output: the metric,
// the measurement points, the fitted model and its quality scores.
func FormatResult(data *ExperimentData, result *modeler.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Metric: %s\n", data.Metric.Name)
	for _, m := range data.Measurements {
		fmt.Fprintf(&sb, "Measurement point: %s mean: %.2E median: %.2E\n", m.Coordinate, m.Mean, m.Median)
	}
	sb.WriteString(FormatModel(data, result))
	return sb.String()
}

// FormatModel renders only the fitted model and its scores.
func FormatModel(data *ExperimentData, result *modeler.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Model: %s\n", result.Function.StringWith(data.ParameterNames()...))
	h := result.Hypothesis
	fmt.Fprintf(&sb, "RSS: %.6G\n", h.RSS())
	fmt.Fprintf(&sb, "Adjusted R^2: %.6G\n", h.AR2())
	fmt.Fprintf(&sb, "SMAPE: %.6G\n", h.SMAPE())
	return sb.String()
}

// FormatMeasurements renders measurements back into the experiment file
// format, one POINT/DATA pair per measurement using the aggregated mean.
func FormatMeasurements(data *ExperimentData) string {
	var sb strings.Builder
	for _, p := range data.Parameters {
		fmt.Fprintf(&sb, "PARAMETER %s\n", p.Name)
	}
	fmt.Fprintf(&sb, "METRIC %s\n", data.Metric.Name)
	for _, m := range data.Measurements {
		sb.WriteString("POINT")
		for _, v := range m.Coordinate {
			fmt.Fprintf(&sb, " %g", v)
		}
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "DATA %g\n", m.Mean)
	}
	return sb.String()
}
