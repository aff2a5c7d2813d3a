package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Order items carry name/price snapshots; the product reference must stay a
// plain id so deleting a product leaves historical orders untouched.
func TestOrderItemModel_ProductReferenceHasNoForeignKey(t *testing.T) {
	field, ok := reflect.TypeOf(OrderItemModel{}).FieldByName("ProductID")
	require.True(t, ok)

	tag := field.Tag.Get("gorm")
	assert.NotContains(t, tag, "foreignKey")
	assert.NotContains(t, tag, "references")
	assert.NotContains(t, tag, "constraint")
}

func TestOrderItemModel_CarriesSnapshotColumnsInsteadOfAssociation(t *testing.T) {
	typ := reflect.TypeOf(OrderItemModel{})

	_, hasName := typ.FieldByName("ProductName")
	_, hasPrice := typ.FieldByName("Price")
	assert.True(t, hasName)
	assert.True(t, hasPrice)

	for i := 0; i < typ.NumField(); i++ {
		assert.NotEqual(t, "ProductModel", typ.Field(i).Type.Name(),
			"order items must not embed a live product association")
	}
}
