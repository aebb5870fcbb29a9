// Package text reads experiments from the plain-text measurement format and
// formats modeling results for terminal output. It is the CLI's input edge;
// the core packages never touch files.
package text

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	apperrors "perfmodel/internal/errors"

	"perfmodel/domain/experiment"
)

// ExperimentData bundles one parsed experiment file.
type ExperimentData struct {
	Registry     *experiment.Registry
	Parameters   []experiment.Parameter
	Metric       experiment.Metric
	Measurements []experiment.Measurement
}

// ParameterNames returns the parameter labels in coordinate order.
func (e *ExperimentData) ParameterNames() []string {
	names := make([]string, len(e.Parameters))
	for i, p := range e.Parameters {
		names[i] = p.Name
	}
	return names
}

// ReadFile reads an experiment from a file. The format is line oriented:
//
//	PARAMETER p
//	PARAMETER q
//	METRIC time
//	POINT 10 20
//	DATA 11.9 12.1 12.0
//	POINT 20 20
//	DATA 15.8 16.2
//
// Each POINT carries one coordinate value per declared parameter and must be
// followed by a DATA line with the repeated raw values observed there.
// Blank lines and lines starting with '#' are ignored.
func ReadFile(path string) (*ExperimentData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrapf(err, "cannot open experiment file %s", path)
	}
	defer f.Close()
	return Read(f)
}

// Read parses an experiment from a reader.
func Read(r io.Reader) (*ExperimentData, error) {
	data := &ExperimentData{Registry: experiment.NewRegistry()}
	data.Metric = data.Registry.NewMetric("time")

	var pendingPoint experiment.Coordinate
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keyword, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch strings.ToUpper(keyword) {
		case "PARAMETER":
			if rest == "" {
				return nil, parseErrorf(lineNo, "PARAMETER requires a name")
			}
			data.Parameters = append(data.Parameters, data.Registry.NewParameter(rest))
		case "METRIC":
			if rest == "" {
				return nil, parseErrorf(lineNo, "METRIC requires a name")
			}
			data.Metric = data.Registry.NewMetric(rest)
		case "POINT":
			if pendingPoint != nil {
				return nil, parseErrorf(lineNo, "POINT without DATA for the previous point")
			}
			values, err := parseFloats(rest)
			if err != nil {
				return nil, parseErrorf(lineNo, "invalid POINT values: %v", err)
			}
			if len(values) != len(data.Parameters) {
				return nil, parseErrorf(lineNo, "POINT has %d values for %d parameters", len(values), len(data.Parameters))
			}
			pendingPoint = experiment.NewCoordinate(values...)
		case "DATA":
			if pendingPoint == nil {
				return nil, parseErrorf(lineNo, "DATA without a preceding POINT")
			}
			values, err := parseFloats(rest)
			if err != nil {
				return nil, parseErrorf(lineNo, "invalid DATA values: %v", err)
			}
			m, err := experiment.NewMeasurement(pendingPoint, values)
			if err != nil {
				return nil, parseErrorf(lineNo, "cannot aggregate DATA: %v", err)
			}
			data.Measurements = append(data.Measurements, m)
			pendingPoint = nil
		default:
			return nil, parseErrorf(lineNo, "unknown keyword %q", keyword)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed reading experiment")
	}
	if pendingPoint != nil {
		return nil, apperrors.ParseError("experiment ends with a POINT missing its DATA line")
	}
	if len(data.Parameters) == 0 {
		return nil, apperrors.ParseError("experiment declares no parameters")
	}
	if len(data.Measurements) == 0 {
		return nil, apperrors.ParseError("experiment contains no measurements")
	}
	return data, nil
}

func parseFloats(s string) ([]float64, error) {
	fields := strings.Fields(s)
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseErrorf(line int, format string, args ...interface{}) error {
	return apperrors.ParseError(fmt.Sprintf("line %d: %s", line, fmt.Sprintf(format, args...)))
}
