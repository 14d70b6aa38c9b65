// Package history builds event schedules from tabular well production
// data, one row per well per report date.
package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/flowcal/wellobs/internal/schedule"
)

// Column names of a production data table.
const (
	colDate = "date"
	colWell = "WELL_NAME"
	colType = "TYPE"
)

// Row TYPE values.
const (
	typeProducer      = "OP"
	typeWaterInjector = "WI"
	typeGasInjector   = "GI"
)

// productionFields are the vector columns copied onto a production event.
var productionFields = []string{
	schedule.VectorOilRate, schedule.VectorGasRate, schedule.VectorWaterRate,
	schedule.VectorOilTotal, schedule.VectorGasTotal, schedule.VectorWaterTotal,
	schedule.VectorBHP, schedule.VectorTHP,
}

// injectionFields maps row TYPE to the vector columns copied onto an
// injection event.
var injectionFields = map[string][]string{
	typeWaterInjector: {
		schedule.VectorWaterInjRate, schedule.VectorWaterInjTotal,
		schedule.VectorBHP, schedule.VectorTHP,
	},
	typeGasInjector: {
		schedule.VectorGasInjRate, schedule.VectorGasInjTotal,
		schedule.VectorBHP, schedule.VectorTHP,
	},
}

// LoadCSV reads a production data CSV file into a schedule. Rows dated
// before startDate are dropped; pass the zero time to keep everything.
func LoadCSV(path string, startDate time.Time) (*schedule.Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening production data: %w", err)
	}
	defer f.Close()
	s, err := Read(f, startDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Read parses production data rows into a schedule.
//
// The first record is the header; column order is free. Empty numeric
// cells mean "not reported" and leave the field off the event, which the
// sampler later treats as a lookup miss. Unknown TYPE values are skipped:
// the table may carry well types this exporter does not observe.
func Read(r io.Reader, startDate time.Time) (*schedule.Schedule, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{colDate, colWell, colType} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	s := schedule.New()
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		line++

		date, err := parseDate(record[col[colDate]])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		if !startDate.IsZero() && date.Before(startDate) {
			continue
		}

		rowType := record[col[colType]]
		var kind schedule.Kind
		var fieldNames []string
		switch rowType {
		case typeProducer:
			kind = schedule.KindProductionHistory
			fieldNames = productionFields
		case typeWaterInjector, typeGasInjector:
			kind = schedule.KindInjectionHistory
			fieldNames = injectionFields[rowType]
		default:
			continue
		}

		fields := make(map[string]float64, len(fieldNames))
		for _, name := range fieldNames {
			i, ok := col[name]
			if !ok {
				continue
			}
			cell := record[i]
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: column %s: invalid number %q", line, name, cell)
			}
			fields[name] = v
		}

		s.Append(schedule.Event{
			Date:   date,
			Well:   record[col[colWell]],
			Kind:   kind,
			Fields: fields,
		})
	}
	return s, nil
}

// dateLayouts are the accepted date cell formats.
var dateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05"}

func parseDate(cell string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, cell, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", cell)
}
