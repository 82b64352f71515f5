package help

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rterry/jewelboard/internal/keys"
	"github.com/rterry/jewelboard/internal/model"
)

func TestTabLegendFollowsVariant(t *testing.T) {
	shop := New(model.VariantShop, keys.DefaultKeyMap(), 80, 24)
	assert.Contains(t, shop.View(), "3 Analytics")

	rick := New(model.VariantRick, keys.DefaultKeyMap(), 80, 24)
	assert.Contains(t, rick.View(), "3 Front Desk")
}
