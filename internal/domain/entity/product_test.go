package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/almoxapp/almoxarifado-api/internal/domain/entity"
)

func TestProductLowStock(t *testing.T) {
	cases := []struct {
		name      string
		quantity  string
		threshold string
		want      bool
	}{
		{"acima do limiar", "10", "3", false},
		{"igual ao limiar", "3", "3", true},
		{"abaixo do limiar", "2", "3", true},
		{"zerado com limiar zero", "0", "0", true},
		{"fracionário no limite", "2.500", "2.5", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := entity.Product{
				Quantity:     decimal.RequireFromString(tc.quantity),
				MinThreshold: decimal.RequireFromString(tc.threshold),
			}
			assert.Equal(t, tc.want, p.LowStock())
		})
	}
}

func TestValidRole(t *testing.T) {
	assert.True(t, entity.ValidRole(entity.RoleAdmin))
	assert.True(t, entity.ValidRole(entity.RoleStaff))
	assert.False(t, entity.ValidRole("admin"))
	assert.False(t, entity.ValidRole(""))
}

func TestValidMovementType(t *testing.T) {
	assert.True(t, entity.ValidMovementType(entity.MovementIN))
	assert.True(t, entity.ValidMovementType(entity.MovementOUT))
	assert.False(t, entity.ValidMovementType("in"))
	assert.False(t, entity.ValidMovementType("TRANSFER"))
}
