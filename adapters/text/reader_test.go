package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "perfmodel/internal/errors"
)

const sampleExperiment = `# weak scaling run
PARAMETER p
METRIC time

POINT 10
DATA 11.9 12.1 12.0
POINT 20
DATA 15.8 16.2
POINT 40
DATA 20.0
`

func TestRead_SampleExperiment(t *testing.T) {
	data, err := Read(strings.NewReader(sampleExperiment))
	require.NoError(t, err)

	require.Len(t, data.Parameters, 1)
	assert.Equal(t, "p", data.Parameters[0].Name)
	assert.Equal(t, "time", data.Metric.Name)

	require.Len(t, data.Measurements, 3)
	assert.Equal(t, 10.0, data.Measurements[0].Coordinate[0])
	assert.InDelta(t, 12.0, data.Measurements[0].Mean, 1e-9)
	assert.Equal(t, 16.0, data.Measurements[1].Mean)
	assert.Equal(t, []string{"p"}, data.ParameterNames())
}

func TestRead_MultiParameterPoints(t *testing.T) {
	input := `PARAMETER p
PARAMETER q
METRIC flops
POINT 10 20
DATA 1 2 3
`
	data, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, data.Measurements, 1)
	assert.Equal(t, 2, data.Measurements[0].Coordinate.Dimensions())
	assert.Equal(t, "flops", data.Metric.Name)
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"unknown keyword", "PARAMETER p\nBOGUS 1\n"},
		{"point without data", "PARAMETER p\nPOINT 10\nPOINT 20\nDATA 1\n"},
		{"data without point", "PARAMETER p\nDATA 1\n"},
		{"wrong coordinate arity", "PARAMETER p\nPOINT 10 20\nDATA 1\n"},
		{"non-numeric point", "PARAMETER p\nPOINT ten\nDATA 1\n"},
		{"empty data line", "PARAMETER p\nPOINT 10\nDATA\n"},
		{"trailing point", "PARAMETER p\nPOINT 10\nDATA 1\nPOINT 20\n"},
		{"no parameters", "METRIC time\n"},
		{"no measurements", "PARAMETER p\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Equal(t, apperrors.CodeParseError, apperrors.GetCode(err))
		})
	}
}

func TestRead_ErrorCarriesLineNumber(t *testing.T) {
	_, err := Read(strings.NewReader("PARAMETER p\nPOINT ten\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestFormatMeasurements_RoundTrip(t *testing.T) {
	data, err := Read(strings.NewReader(sampleExperiment))
	require.NoError(t, err)

	rendered := FormatMeasurements(data)
	reparsed, err := Read(strings.NewReader(rendered))
	require.NoError(t, err)

	require.Len(t, reparsed.Measurements, len(data.Measurements))
	for i := range data.Measurements {
		assert.Equal(t, data.Measurements[i].Coordinate, reparsed.Measurements[i].Coordinate)
		assert.InDelta(t, data.Measurements[i].Mean, reparsed.Measurements[i].Mean, 1e-9)
	}
}
