package valuation

import (
	"context"
	"errors"
	"testing"

	"gw2-tracker/internal/services/gw2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPrices serves canned prices for any requested item set.
type stubPrices struct {
	prices map[int]gw2.ItemPrices
	err    error
}

func (s *stubPrices) FetchPrices(ctx context.Context, itemIDs []int) (map[int]gw2.ItemPrices, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make(map[int]gw2.ItemPrices, len(itemIDs))
	for _, id := range itemIDs {
		out[id] = s.prices[id]
	}
	return out, nil
}

func TestValuation_UnknownCraft(t *testing.T) {
	svc := NewService(&stubPrices{})
	_, err := svc.Valuation(context.Background(), "no_such_craft")
	assert.ErrorIs(t, err, ErrUnknownCraft)
}

func TestValuation_UpstreamErrorPropagates(t *testing.T) {
	upstream := errors.New("connection reset")
	svc := NewService(&stubPrices{err: upstream})
	_, err := svc.Valuation(context.Background(), "scholar_rune")
	assert.ErrorIs(t, err, upstream)
}

func TestScholarRune_PicksCheaperCraftingPath(t *testing.T) {
	svc := NewService(&stubPrices{prices: map[int]gw2.ItemPrices{
		itemEctoplasm:         {Buy: 2000},
		itemElaborateTotem:    {Buy: 500},
		itemPileLucentCrystal: {Buy: 80},
		itemCharmOfBrilliance: {Buy: 1000},
		itemLucentMote:        {Buy: 10},
		itemScholarRune:       {Sell: 42000},
	}})

	fields, err := svc.Valuation(context.Background(), "scholar_rune")
	require.NoError(t, err)

	// crystal path: 5*2000 + 5*500 + 8*80 + 2*1000 = 15140
	// mote path:    5*2000 + 5*500 + 80*10 + 2*1000 = 15300
	assert.Equal(t, 1.0, fields["crafting_cost_g"])
	assert.Equal(t, 51.0, fields["crafting_cost_s"])
	assert.Equal(t, 40.0, fields["crafting_cost_c"])

	assert.Equal(t, 4.0, fields["sell_g"])
	assert.Equal(t, 20.0, fields["sell_s"])
	assert.Equal(t, 0.0, fields["sell_c"])

	// profit = 42000*0.85 - 15140 = 20560
	assert.Equal(t, 2.0, fields["profit_g"])
	assert.Equal(t, 5.0, fields["profit_s"])
	assert.Equal(t, 60.0, fields["profit_c"])
}

func TestRelicOfFireworks_HasFlipAndProfit(t *testing.T) {
	svc := NewService(&stubPrices{prices: map[int]gw2.ItemPrices{
		itemEctoplasm:         {Buy: 2000},
		itemPileLucentCrystal: {Buy: 100},
		itemCharmOfSkill:      {Buy: 3000},
		itemLucentMote:        {Buy: 5},
		itemRelicOfFireworks:  {Buy: 40000, Sell: 60000},
	}})

	fields, err := svc.Valuation(context.Background(), "relic_of_fireworks")
	require.NoError(t, err)

	// base = 15*2000 + 3*3000 = 39000
	// crystal path: 39000 + 48*100 = 43800; mote path: 39000 + 480*5 = 41400
	assert.Equal(t, 4.0, fields["crafting_cost_g"])
	assert.Equal(t, 14.0, fields["crafting_cost_s"])
	assert.Equal(t, 0.0, fields["crafting_cost_c"])

	// flip = 60000*0.85 - 40000 = 11000
	assert.Equal(t, 1.0, fields["flip_g"])
	assert.Equal(t, 10.0, fields["flip_s"])

	// profit = 51000 - 41400 = 9600
	assert.Equal(t, 0.0, fields["profit_g"])
	assert.Equal(t, 96.0, fields["profit_s"])
}

func TestItemQuote_DerivedFields(t *testing.T) {
	svc := NewService(&stubPrices{prices: map[int]gw2.ItemPrices{
		19721: {Buy: 2000, Sell: 2200},
	}})

	data, err := svc.ItemQuote(context.Background(), 19721)
	require.NoError(t, err)

	assert.Equal(t, 2000.0, data["buy"])
	assert.Equal(t, 2200.0, data["sell"])
	// flip = 2200*0.85 - 2000 = -130, sign kept on every component
	assert.Equal(t, 0.0, data["flip_g"])
	assert.Equal(t, -1.0, data["flip_s"])
	assert.Equal(t, -30.0, data["flip_c"])
	// after tax = 1870
	assert.Equal(t, 18.0, data["sell_after_tax_s"])
	assert.Equal(t, 70.0, data["sell_after_tax_c"])
}

func TestCrafts_ContainsFullCatalog(t *testing.T) {
	svc := NewService(&stubPrices{})
	crafts := svc.Crafts()

	for _, id := range []string{
		"scholar_rune", "guardian_rune", "dragonhunter_rune",
		"relic_of_fireworks", "relic_of_thief", "relic_of_aristocracy",
		"rare_weapon_craft", "gear_salvage", "loadstone_forge",
	} {
		assert.Contains(t, crafts, id)
	}
	assert.IsIncreasing(t, crafts)
}
