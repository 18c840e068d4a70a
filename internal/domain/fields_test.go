package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldMap_SetDropsPlaceholders(t *testing.T) {
	f := FieldMap{}

	f.Set(FieldPolicyNumber, "")
	f.Set(FieldLocation, "   ")
	f.Set(FieldEstimatedDamage, 0.0)
	assert.Empty(t, f)

	f.Set(FieldPolicyNumber, " AUTO-1 ")
	assert.Equal(t, "AUTO-1", f.String(FieldPolicyNumber))

	f.Set(FieldEstimatedDamage, 8200.0)
	assert.Equal(t, 8200.0, f.Amount(FieldEstimatedDamage))
}

func TestFieldMap_Has(t *testing.T) {
	f := FieldMap{}
	assert.False(t, f.Has(FieldPolicyNumber))

	f[FieldDescription] = "  "
	assert.False(t, f.Has(FieldDescription))

	f[FieldEstimatedDamage] = 0.0
	assert.False(t, f.Has(FieldEstimatedDamage))

	f[FieldEstimatedDamage] = 100.0
	assert.True(t, f.Has(FieldEstimatedDamage))
}

func TestFieldMap_MergeDoesNotOverwrite(t *testing.T) {
	f := FieldMap{}
	f.Set(FieldVehicleMake, "Honda")

	f.Merge(FieldMap{
		FieldVehicleMake:  "Toyota",
		FieldVehicleModel: "Civic",
	})

	assert.Equal(t, "Honda", f.String(FieldVehicleMake))
	assert.Equal(t, "Civic", f.String(FieldVehicleModel))
}
