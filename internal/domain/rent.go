package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// RentObservation is the average monthly rent for a city and bedroom count
type RentObservation struct {
	City        string
	Bedrooms    int
	AverageRent decimal.Decimal
}

// Validate ensures the observation adheres to domain rules
func (o *RentObservation) Validate() error {
	if strings.TrimSpace(o.City) == "" {
		return errors.New("rent observation city cannot be empty")
	}
	if o.Bedrooms < 0 {
		return errors.New("rent observation bedrooms cannot be negative")
	}
	if o.AverageRent.LessThan(decimal.Zero) {
		return errors.New("rent observation average rent cannot be negative")
	}
	return nil
}

// RentSource records where the monthly rent of a projection came from
type RentSource string

const (
	RentSourceCaller  RentSource = "caller"
	RentSourceLookup  RentSource = "lookup"
	RentSourceDefault RentSource = "default"
)
