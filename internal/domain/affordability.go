package domain

import (
	"encoding/json"
	"math"
)

// AffordabilityStatus classifies a payment relative to income
type AffordabilityStatus string

const (
	AffordabilityAffordable   AffordabilityStatus = "Affordable"
	AffordabilityBorderline   AffordabilityStatus = "Borderline"
	AffordabilityUnaffordable AffordabilityStatus = "Unaffordable"
)

// Color returns the display color associated with the status
func (s AffordabilityStatus) Color() string {
	switch s {
	case AffordabilityAffordable:
		return "green"
	case AffordabilityBorderline:
		return "orange"
	default:
		return "red"
	}
}

// Affordability is a payment expressed as a share of monthly income.
// Percent is +Inf when income is zero.
type Affordability struct {
	Percent float64
	Status  AffordabilityStatus
}

// Defined reports whether the percentage is a finite number
func (a Affordability) Defined() bool {
	return !math.IsInf(a.Percent, 0) && !math.IsNaN(a.Percent)
}

type affordabilityJSON struct {
	Percent *float64            `json:"percent"`
	Status  AffordabilityStatus `json:"status"`
	Color   string              `json:"color"`
}

// MarshalJSON encodes an undefined percentage as null
func (a Affordability) MarshalJSON() ([]byte, error) {
	out := affordabilityJSON{Status: a.Status, Color: a.Status.Color()}
	if a.Defined() {
		p := a.Percent
		out.Percent = &p
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a null percentage back to +Inf
func (a *Affordability) UnmarshalJSON(data []byte) error {
	var in affordabilityJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	a.Status = in.Status
	if in.Percent == nil {
		a.Percent = math.Inf(1)
	} else {
		a.Percent = *in.Percent
	}
	return nil
}
