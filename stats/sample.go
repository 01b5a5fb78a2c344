package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sample represents one row from a cache-model CSV: a category label
// ("hit", "miss", "mshr-hit", ...) and the count recorded for it.
type Sample struct {
	What  string
	Value float64
}

// ReadSamples parses a header-mapped CSV stream. The header must contain
// at least the columns "what" and "value"; their positions are free.
// Leading whitespace after delimiters is stripped, as is whitespace
// around the category label.
func ReadSamples(r io.Reader) ([]Sample, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV: %w", err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("CSV empty or missing header")
	}

	whatCol, valueCol := -1, -1
	for i, name := range records[0] {
		switch strings.TrimSpace(name) {
		case "what":
			whatCol = i
		case "value":
			valueCol = i
		}
	}
	if whatCol < 0 || valueCol < 0 {
		return nil, fmt.Errorf("CSV header missing required columns \"what\" and \"value\": %v", records[0])
	}

	var samples []Sample
	for i, record := range records[1:] { // Skip header
		if len(record) <= whatCol || len(record) <= valueCol {
			return nil, fmt.Errorf("CSV row %d: expected at least %d columns", i+2, max(whatCol, valueCol)+1)
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(record[valueCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("CSV row %d: invalid value: %w", i+2, err)
		}

		samples = append(samples, Sample{
			What:  strings.TrimSpace(record[whatCol]),
			Value: value,
		})
	}

	return samples, nil
}
