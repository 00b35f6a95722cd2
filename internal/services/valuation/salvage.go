package valuation

import (
	"context"

	"gw2-tracker/internal/currency"
	"gw2-tracker/internal/services/gw2"
)

// salvageYields maps a material item id to its expected drop count per
// salvaged item. Rates are community-measured and differ per gear tier.
type salvageYields map[int]float64

var rareGearYields = salvageYields{
	itemMithrilOre:        0.4879,
	itemElderWoodLog:      0.3175,
	itemSilkScrap:         0.3367,
	itemThickLeather:      0.3457,
	itemOrichalcumOre:     0.041,
	itemAncientWoodLog:    0.0249,
	itemGossamerScrap:     0.018,
	itemHardenedLeather:   0.0162,
	itemEctoplasm:         0.87, // lowered
	itemLucentMote:        0.2387,
	itemSymbolOfControl:   0.001,
	itemSymbolOfEnh:       0.0003,
	itemSymbolOfPain:      0.0004,
	itemCharmOfBrilliance: 0.0006,
	itemCharmOfPotence:    0.0009,
	itemCharmOfSkill:      0.0009,
}

var commonGearYields = salvageYields{
	itemMithrilOre:        0.4291,
	itemElderWoodLog:      0.3884,
	itemSilkScrap:         0.3059,
	itemThickLeather:      0.25, // lowered
	itemOrichalcumOre:     0.0394,
	itemAncientWoodLog:    0.0305,
	itemGossamerScrap:     0.0153,
	itemHardenedLeather:   0.0143,
	itemEctoplasm:         0.007,  // lowered
	itemLucentMote:        0.1075, // lowered
	itemSymbolOfControl:   0.0002,
	itemSymbolOfEnh:       0.0006,
	itemSymbolOfPain:      0.0005,
	itemCharmOfBrilliance: 0.0004,
	itemCharmOfPotence:    0.0003,
	itemCharmOfSkill:      0.0003,
}

var unidGearYields = salvageYields{
	itemMithrilOre:        0.4299,
	itemElderWoodLog:      0.3564,
	itemSilkScrap:         0.3521,
	itemThickLeather:      0.2673,
	itemOrichalcumOre:     0.0387,
	itemAncientWoodLog:    0.0287,
	itemGossamerScrap:     0.018,
	itemHardenedLeather:   0.0164, // lowered
	itemEctoplasm:         0.0291, // lowered
	itemLucentMote:        0.98,
	itemSymbolOfControl:   0.0018,
	itemSymbolOfEnh:       0.001,
	itemSymbolOfPain:      0.0006,
	itemCharmOfBrilliance: 0.0042,
	itemCharmOfPotence:    0.0029,
	itemCharmOfSkill:      0.0028,
}

func (s *Service) rareGearSalvage(ctx context.Context) (map[string]float64, error) {
	return s.gearSalvageFor(ctx, itemRareUnidGear, rareGearYields, kitSilverFed*250)
}

func (s *Service) commonGearSalvage(ctx context.Context) (map[string]float64, error) {
	costs := kitCopperFed*223 + kitRunecrafter*25 + kitSilverFed*2
	return s.gearSalvageFor(ctx, itemCommonUnidGear, commonGearYields, costs)
}

func (s *Service) gearSalvage(ctx context.Context) (map[string]float64, error) {
	costs := kitRunecrafter*245 + kitSilverFed*5
	return s.gearSalvageFor(ctx, itemUnidGear, unidGearYields, costs)
}

// gearSalvageFor prices buying a full stack (250) of unidentified gear,
// salvaging it with the given kits and selling the expected materials.
func (s *Service) gearSalvageFor(ctx context.Context, gearID int, yields salvageYields, salvageCosts float64) (map[string]float64, error) {
	itemIDs := make([]int, 0, len(yields)+1)
	itemIDs = append(itemIDs, gearID)
	for id := range yields {
		itemIDs = append(itemIDs, id)
	}

	prices, err := s.prices.FetchPrices(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	stackBuy := prices[gearID].Buy * 250
	matsValueAfterTax := matsValue(prices, yields)
	profitStack := matsValueAfterTax - stackBuy - salvageCosts

	return merge(
		currency.Fields("stack_buy", stackBuy),
		currency.Fields("salvage_costs", salvageCosts),
		currency.Fields("mats_value_after_tax", matsValueAfterTax),
		currency.Fields("profit_stack", profitStack),
	), nil
}

func matsValue(prices map[int]gw2.ItemPrices, yields salvageYields) float64 {
	var total float64
	for id, rate := range yields {
		total += prices[id].Sell * (250 * rate) * taxRate
	}
	return total
}
