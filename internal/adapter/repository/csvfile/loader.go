// Package csvfile reads average-rent tables in the `city,bedrooms,average_rent` layout.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/simaogato/homedecide-backend/internal/domain"
)

var expectedHeader = []string{"city", "bedrooms", "average_rent"}

// Load reads observations from the file at path
func Load(path string) ([]*domain.RentObservation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open rent data: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads observations from r. A header row is required.
func Parse(r io.Reader) ([]*domain.RentObservation, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(expectedHeader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("rent data is empty")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i, name := range expectedHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), name) {
			return nil, fmt.Errorf("unexpected column %q at position %d, want %q", header[i], i+1, name)
		}
	}

	observations := make([]*domain.RentObservation, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read rent data: %w", err)
		}

		line, _ := reader.FieldPos(0)
		bedrooms, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid bedrooms %q", line, record[1])
		}
		rent, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid average_rent %q", line, record[2])
		}

		obs := &domain.RentObservation{
			City:        strings.TrimSpace(record[0]),
			Bedrooms:    bedrooms,
			AverageRent: rent,
		}
		if err := obs.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		observations = append(observations, obs)
	}

	return observations, nil
}
