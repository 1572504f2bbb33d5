package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"la-carta/pkg/models"
)

func TestValidate(t *testing.T) {
	v := NewOrderValidator()

	tests := []struct {
		name    string
		items   []models.OrderItem
		wantErr bool
	}{
		{
			name: "well formed",
			items: []models.OrderItem{
				{Name: "Burger", PriceLocal: 18000, PriceForeign: 4.5, Quantity: 2},
			},
		},
		{
			name:  "empty sequence is accepted",
			items: []models.OrderItem{},
		},
		{
			name:    "absent sequence is rejected",
			items:   nil,
			wantErr: true,
		},
		{
			name: "missing name",
			items: []models.OrderItem{
				{PriceLocal: 18000, PriceForeign: 4.5, Quantity: 1},
			},
			wantErr: true,
		},
		{
			name: "zero quantity",
			items: []models.OrderItem{
				{Name: "Burger", PriceLocal: 18000, PriceForeign: 4.5},
			},
			wantErr: true,
		},
		{
			name: "zero local price",
			items: []models.OrderItem{
				{Name: "Burger", PriceForeign: 4.5, Quantity: 1},
			},
			wantErr: true,
		},
		{
			name: "zero foreign price",
			items: []models.OrderItem{
				{Name: "Burger", PriceLocal: 18000, Quantity: 1},
			},
			wantErr: true,
		},
		{
			name: "one bad element rejects the whole order",
			items: []models.OrderItem{
				{Name: "Burger", PriceLocal: 18000, PriceForeign: 4.5, Quantity: 1},
				{Name: "Fries", PriceLocal: 8000, PriceForeign: 2.0},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.items)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidOrderShape)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
