package valuation

import (
	"context"
	"math"

	"gw2-tracker/internal/currency"
	"gw2-tracker/internal/services/gw2"
)

// Elonian wine is vendor-bought, not traded, so its price is fixed.
const elonianWineCost = 2504.0

// relicCosts derives the two crafting paths shared by every relic: 48
// lucent crystals, or 480 raw motes.
func relicCosts(base, moteBuy, crystalBuy float64) (float64, float64) {
	return base + crystalBuy*48, base + moteBuy*480
}

// relicFields assembles the common relic payload: cheapest crafting cost,
// sell price, flip margin and best-path profit.
func relicFields(relic gw2.ItemPrices, costA, costB float64) map[string]float64 {
	cheapCost := math.Min(costA, costB)
	profit := relic.Sell*taxRate - cheapCost
	flip := relic.Sell*taxRate - relic.Buy

	return merge(
		currency.Fields("crafting_cost", cheapCost),
		currency.Fields("sell", relic.Sell),
		currency.Fields("flip", flip),
		currency.Fields("profit", profit),
	)
}

func (s *Service) relicOfFireworks(ctx context.Context) (map[string]float64, error) {
	prices, err := s.prices.FetchPrices(ctx, []int{
		itemEctoplasm,
		itemPileLucentCrystal,
		itemCharmOfSkill,
		itemLucentMote,
		itemRelicOfFireworks,
	})
	if err != nil {
		return nil, err
	}

	base := prices[itemEctoplasm].Buy*15 + prices[itemCharmOfSkill].Buy*3
	costA, costB := relicCosts(base, prices[itemLucentMote].Buy, prices[itemPileLucentCrystal].Buy)
	return relicFields(prices[itemRelicOfFireworks], costA, costB), nil
}

func (s *Service) relicOfThief(ctx context.Context) (map[string]float64, error) {
	prices, err := s.prices.FetchPrices(ctx, []int{
		itemEctoplasm,
		itemPileLucentCrystal,
		itemLucentMote,
		itemCharmOfSkill,
		itemCuredHardLeather,
		itemRelicOfThief,
	})
	if err != nil {
		return nil, err
	}

	base := prices[itemEctoplasm].Buy*15 +
		prices[itemCharmOfSkill].Buy*3 +
		prices[itemCuredHardLeather].Buy*5
	costA, costB := relicCosts(base, prices[itemLucentMote].Buy, prices[itemPileLucentCrystal].Buy)
	return relicFields(prices[itemRelicOfThief], costA, costB), nil
}

func (s *Service) relicOfAristocracy(ctx context.Context) (map[string]float64, error) {
	prices, err := s.prices.FetchPrices(ctx, []int{
		itemEctoplasm,
		itemPileLucentCrystal,
		itemLucentMote,
		itemCharmOfBrilliance,
		itemRelicOfAristocracy,
	})
	if err != nil {
		return nil, err
	}

	base := prices[itemEctoplasm].Buy*15 +
		prices[itemCharmOfBrilliance].Buy*3 +
		elonianWineCost*3
	costA, costB := relicCosts(base, prices[itemLucentMote].Buy, prices[itemPileLucentCrystal].Buy)
	return relicFields(prices[itemRelicOfAristocracy], costA, costB), nil
}
