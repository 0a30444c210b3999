package models

import (
	"bytes"
	"encoding/json"
)

// DefaultSource is recorded when the submission doesn't identify its origin
const DefaultSource = "Веб-сайт"

// OrderRequest represents one order form submission. All fields travel as
// text; quantity is also accepted as a JSON number since older site builds
// serialized it unquoted.
type OrderRequest struct {
	Name     string     `json:"name"`
	Phone    string     `json:"phone"`
	Email    string     `json:"email"`
	Product  string     `json:"product"`
	Quantity FlexString `json:"quantity"`
	Comment  string     `json:"comment,omitempty"`
	Source   string     `json:"source,omitempty"`
}

// OrderResponse is the envelope returned by the order endpoint
type OrderResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// FlexString unmarshals from either a JSON string or a JSON number
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}
