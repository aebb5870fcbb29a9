package text

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfmodel/internal/modeler"
)

func TestFormatResult_EndToEnd(t *testing.T) {
	input := `PARAMETER n
METRIC time
POINT 4
DATA 11
POINT 8
DATA 19
POINT 16
DATA 35
POINT 32
DATA 67
POINT 64
DATA 131
`
	data, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	m := modeler.NewSingleParameterModeler(modeler.Options{})
	result, err := m.Model(context.Background(), data.Measurements)
	require.NoError(t, err)

	out := FormatResult(data, result)
	assert.Contains(t, out, "Metric: time")
	assert.Contains(t, out, "Measurement point: (4.00E+00)")
	assert.Contains(t, out, "Model: ")
	// The declared parameter name labels the model, not the default "p".
	assert.Contains(t, out, "n^(")
	assert.Contains(t, out, "RSS: ")
	assert.Contains(t, out, "Adjusted R^2: ")
	assert.Contains(t, out, "SMAPE: ")
}
