package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFavoriteItemType_IsValid(t *testing.T) {
	assert.True(t, FavoriteItemProduct.IsValid())
	assert.True(t, FavoriteItemBlog.IsValid())

	assert.False(t, FavoriteItemType("event").IsValid())
	assert.False(t, FavoriteItemType("").IsValid())
}
