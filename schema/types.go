package schema

import (
	"encoding/json"
	"strconv"
)

// Decimal is a monetary amount serialized as a string, e.g. "199.00".
type Decimal string

// Float returns the amount as float64, 0 when not parsable.
func (d Decimal) Float() float64 {
	value, _ := strconv.ParseFloat(string(d), 64)
	return value
}

// NewDecimal formats value with two decimal places.
func NewDecimal(value float64) Decimal {
	return Decimal(strconv.FormatFloat(value, 'f', 2, 64))
}

// UnmarshalJSON accepts both "199.00" and 199.0.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*d = Decimal(text)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*d = Decimal(number.String())
	return nil
}

// Page is a paginated list envelope.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next,omitempty"`
	Previous *string `json:"previous,omitempty"`
	Results  []T     `json:"results"`
}

// Content is a free form document such as the home or about page payload.
type Content map[string]interface{}

// Detail is the error body returned by the API.
type Detail struct {
	Detail string `json:"detail"`
}
