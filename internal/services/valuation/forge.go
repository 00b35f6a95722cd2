package valuation

import (
	"context"

	"gw2-tracker/internal/currency"
)

// symbolEnhForge prices gambling three symbols of enhancement in the
// mystic forge: 20% back the same symbol, 40% each for the other two.
func (s *Service) symbolEnhForge(ctx context.Context) (map[string]float64, error) {
	prices, err := s.prices.FetchPrices(ctx, []int{
		itemSymbolOfEnh,
		itemSymbolOfPain,
		itemSymbolOfControl,
	})
	if err != nil {
		return nil, err
	}

	cost := prices[itemSymbolOfEnh].Buy * 3
	reward := prices[itemSymbolOfEnh].Sell*0.2 +
		prices[itemSymbolOfPain].Sell*0.4 +
		prices[itemSymbolOfControl].Sell*0.4
	profit := reward*taxRate - cost

	return merge(
		currency.Fields("cost", cost),
		currency.Fields("profit_per_try", profit),
		currency.Fields("profit_per_shard", profit*10),
	), nil
}

func (s *Service) charmBrillianceForge(ctx context.Context) (map[string]float64, error) {
	prices, err := s.prices.FetchPrices(ctx, []int{
		itemCharmOfBrilliance,
		itemCharmOfPotence,
		itemCharmOfSkill,
	})
	if err != nil {
		return nil, err
	}

	cost := prices[itemCharmOfBrilliance].Buy * 3
	reward := prices[itemCharmOfBrilliance].Sell*0.2 +
		prices[itemCharmOfPotence].Sell*0.4 +
		prices[itemCharmOfSkill].Sell*0.4
	profit := reward*taxRate - cost

	return merge(
		currency.Fields("cost", cost),
		currency.Fields("profit_per_try", profit),
		currency.Fields("profit_per_shard", profit*10),
	), nil
}

// loadstoneForge prices forging loadstones from two cores, crystalline
// dust and a bottle of Elonian wine.
func (s *Service) loadstoneForge(ctx context.Context) (map[string]float64, error) {
	prices, err := s.prices.FetchPrices(ctx, []int{
		itemOnyxLoadstone,
		itemChargedLoadstone,
		itemCorruptedLoadstone,
		itemDestroyerLoadstone,
		itemCrystallineDust,
		itemOnyxCore,
		itemDestroyerCore,
		itemCorruptedCore,
		itemChargedCore,
	})
	if err != nil {
		return nil, err
	}

	const wineCost = 2500.0
	dustBuy := prices[itemCrystallineDust].Buy

	forgeProfit := func(coreID, stoneID int) float64 {
		cost := prices[coreID].Buy*2 + dustBuy + wineCost
		return prices[stoneID].Sell*taxRate - cost
	}

	// Onyx is valued at its buy price; the sell side barely moves.
	onyxCost := prices[itemOnyxCore].Buy*2 + dustBuy + wineCost
	onyxProfit := prices[itemOnyxLoadstone].Buy*taxRate - onyxCost

	return merge(
		currency.Fields("onyx", onyxProfit),
		currency.Fields("charged", forgeProfit(itemChargedCore, itemChargedLoadstone)),
		currency.Fields("corrupted", forgeProfit(itemCorruptedCore, itemCorruptedLoadstone)),
		currency.Fields("destroyer", forgeProfit(itemDestroyerCore, itemDestroyerLoadstone)),
	), nil
}

// thesisOnMasterfulMalice prices crafting the thesis from writs and bulk
// materials and flipping it on the trading post.
func (s *Service) thesisOnMasterfulMalice(ctx context.Context) (map[string]float64, error) {
	prices, err := s.prices.FetchPrices(ctx, []int{
		itemThesisMasterfulMalice,
		itemWritMasterfulMalice,
		itemCrystallineDust,
		itemAncientWoodLog,
		itemHardenedLeather,
		itemOrichalcumOre,
		itemGossamerScrap,
		itemGossamerThread,
		itemPouchBlackPigments,
		itemPouchWhitePigments,
		itemJugOfWater,
	})
	if err != nil {
		return nil, err
	}

	writBuy := prices[itemWritMasterfulMalice].Buy
	craftingCost := writBuy*3 +
		prices[itemCrystallineDust].Buy*5 +
		prices[itemAncientWoodLog].Buy*48 +
		prices[itemHardenedLeather].Buy*10 +
		prices[itemOrichalcumOre].Buy*12 +
		prices[itemGossamerScrap].Buy*20 +
		prices[itemGossamerThread].Buy*10 +
		prices[itemPouchBlackPigments].Buy*3 +
		prices[itemPouchWhitePigments].Buy*3 +
		prices[itemJugOfWater].Buy*20

	sell := prices[itemThesisMasterfulMalice].Sell
	flip := sell*taxRate - writBuy
	profit := sell*taxRate - craftingCost

	return merge(
		currency.Fields("crafting_cost", craftingCost),
		currency.Fields("sell", sell),
		currency.Fields("flip", flip),
		currency.Fields("profit", profit),
	), nil
}
