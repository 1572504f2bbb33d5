package validation

import (
	"errors"

	"la-carta/pkg/models"
)

var ErrInvalidOrderShape = errors.New("invalid order format")

type OrderValidator struct{}

func NewOrderValidator() *OrderValidator {
	return &OrderValidator{}
}

// Validate accepts a submitted items sequence iff it is present and every
// element carries a name, a quantity and both prices. An empty sequence is
// accepted, but an absent or null items field is not a sequence and is
// rejected here; other non-array values fail JSON decoding at the boundary
// and are mapped to the same rejection.
func (v *OrderValidator) Validate(items []models.OrderItem) error {
	if items == nil {
		return ErrInvalidOrderShape
	}
	for _, item := range items {
		if item.Name == "" || item.Quantity == 0 || item.PriceLocal == 0 || item.PriceForeign == 0 {
			return ErrInvalidOrderShape
		}
	}
	return nil
}
