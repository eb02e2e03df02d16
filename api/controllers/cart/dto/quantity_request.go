package dto

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// QuantityInput is the raw content of the quantity field. Clients send either a JSON
// number or the text typed into the input; parsing and clamping happen in the cart.
type QuantityInput string

func (q *QuantityInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*q = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*q = QuantityInput(text)
		return nil
	}
	*q = QuantityInput(data)
	return nil
}

type SetQuantityRequest struct {
	Quantity *QuantityInput `json:"quantity" validate:"required"`
}
