package replay

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Sample struct {
	Time  time.Time
	Price float64
}

// ReadSamples parses csv rows of either "price" or "time,price".
// The time column accepts RFC3339 or unix milliseconds. A first row whose
// price column is not a number is treated as the header.
func ReadSamples(r io.Reader) ([]Sample, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var samples []Sample
	first := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return samples, errors.Wrap(err, "unable to read samples")
		}

		line, _ := reader.FieldPos(0)

		var sample Sample
		var priceField string
		switch len(record) {
		case 1:
			priceField = record[0]
		case 2:
			priceField = record[1]
		default:
			return samples, errors.Errorf("line %d: expected 1 or 2 columns, got %d", line, len(record))
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(priceField), 64)
		if err != nil {
			if first {
				first = false
				continue
			}

			return samples, errors.Wrapf(err, "line %d: invalid price %q", line, priceField)
		}
		first = false

		sample.Price = price
		if len(record) == 2 {
			sample.Time, err = parseTime(strings.TrimSpace(record[0]))
			if err != nil {
				return samples, errors.Wrapf(err, "line %d: invalid time %q", line, record[0])
			}
		}

		samples = append(samples, sample)
	}

	return samples, nil
}

func ReadSamplesFile(filename string) ([]Sample, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadSamples(f)
}

func parseTime(s string) (time.Time, error) {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.UnixMilli(ms), nil
	}

	return time.Parse(time.RFC3339, s)
}
