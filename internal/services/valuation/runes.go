package valuation

import (
	"context"
	"math"

	"gw2-tracker/internal/currency"
)

// scholarRune prices a Superior Rune of the Scholar. Two crafting paths
// exist (lucent crystals vs raw motes); the cheaper one wins.
func (s *Service) scholarRune(ctx context.Context) (map[string]float64, error) {
	prices, err := s.prices.FetchPrices(ctx, []int{
		itemEctoplasm,
		itemElaborateTotem,
		itemPileLucentCrystal,
		itemCharmOfBrilliance,
		itemLucentMote,
		itemScholarRune,
	})
	if err != nil {
		return nil, err
	}

	ectoBuy := prices[itemEctoplasm].Buy
	totemBuy := prices[itemElaborateTotem].Buy
	crystalBuy := prices[itemPileLucentCrystal].Buy
	charmBuy := prices[itemCharmOfBrilliance].Buy
	moteBuy := prices[itemLucentMote].Buy
	runeSell := prices[itemScholarRune].Sell

	costCrystals := ectoBuy*5 + totemBuy*5 + crystalBuy*8 + charmBuy*2
	costMotes := ectoBuy*5 + totemBuy*5 + moteBuy*80 + charmBuy*2

	cheapCost := math.Min(costCrystals, costMotes)
	profit := runeSell*taxRate - cheapCost

	return merge(
		currency.Fields("crafting_cost", cheapCost),
		currency.Fields("sell", runeSell),
		currency.Fields("profit", profit),
	), nil
}

func (s *Service) guardianRune(ctx context.Context) (map[string]float64, error) {
	prices, err := s.prices.FetchPrices(ctx, []int{
		itemGuardianRune,
		itemPileLucentCrystal,
		itemChargedLoadstone,
		itemCharmOfPotence,
		itemEctoplasm,
	})
	if err != nil {
		return nil, err
	}

	runeSell := prices[itemGuardianRune].Sell
	craftingCost := guardianRuneCost(
		prices[itemChargedLoadstone].Sell,
		prices[itemCharmOfPotence].Buy,
		prices[itemEctoplasm].Buy,
		prices[itemPileLucentCrystal].Buy,
	)
	profit := runeSell*taxRate - craftingCost

	return merge(
		currency.Fields("crafting_cost", craftingCost),
		currency.Fields("sell", runeSell),
		currency.Fields("profit", profit),
	), nil
}

// dragonhunterRune builds on a crafted guardian rune plus an evergreen
// loadstone and barbed thorns.
func (s *Service) dragonhunterRune(ctx context.Context) (map[string]float64, error) {
	prices, err := s.prices.FetchPrices(ctx, []int{
		itemDragonhunterRune,
		itemEvergreenLoadstone,
		itemBarbedThorn,
		itemPileLucentCrystal,
		itemChargedLoadstone,
		itemCharmOfPotence,
		itemEctoplasm,
	})
	if err != nil {
		return nil, err
	}

	runeSell := prices[itemDragonhunterRune].Sell
	guardianCost := guardianRuneCost(
		prices[itemChargedLoadstone].Sell,
		prices[itemCharmOfPotence].Buy,
		prices[itemEctoplasm].Buy,
		prices[itemPileLucentCrystal].Buy,
	)

	craftingCost := guardianCost +
		prices[itemEvergreenLoadstone].Buy +
		prices[itemBarbedThorn].Buy*10
	profit := runeSell*taxRate - craftingCost

	return merge(
		currency.Fields("crafting_cost", craftingCost),
		currency.Fields("sell", runeSell),
		currency.Fields("profit", profit),
	), nil
}

// guardianRuneCost is shared between the guardian and dragonhunter runes.
// The charged loadstone is valued at its sell price; buy orders for it
// rarely fill.
func guardianRuneCost(loadstoneSell, charmBuy, ectoBuy, crystalBuy float64) float64 {
	return loadstoneSell + charmBuy + ectoBuy*5 + crystalBuy*12
}
