package valuation

import (
	"context"
	"math"

	"gw2-tracker/internal/currency"
)

// rareWeaponCraft prices forging rare weapons for ectoplasm: craft an
// inscription plus backing and boss from the cheapest refined or raw
// materials, salvage the result at an expected 0.9 ecto.
func (s *Service) rareWeaponCraft(ctx context.Context) (map[string]float64, error) {
	prices, err := s.prices.FetchPrices(ctx, []int{
		itemEctoplasm,
		itemMithrilIngot,
		itemMithrilOre,
		itemElderWoodPlank,
		itemElderWoodLog,
		itemLargeClaw,
		itemPotentBlood,
		itemLargeBone,
		itemIntricateTotem,
		itemLargeFang,
		itemPotentVenomSac,
	})
	if err != nil {
		return nil, err
	}

	ectoSellAfterTax := prices[itemEctoplasm].Sell * taxRate

	lowestT5 := math.Min(prices[itemLargeClaw].Buy,
		math.Min(prices[itemPotentBlood].Buy,
			math.Min(prices[itemLargeBone].Buy,
				math.Min(prices[itemIntricateTotem].Buy,
					math.Min(prices[itemLargeFang].Buy, prices[itemPotentVenomSac].Buy)))))

	// Refining is only worth it when the refined item costs more than its
	// raw inputs.
	ingotCost := math.Min(prices[itemMithrilIngot].Buy, prices[itemMithrilOre].Buy*2)
	plankCost := math.Min(prices[itemElderWoodPlank].Buy, prices[itemElderWoodLog].Buy*3)

	backingCost := 2 * ingotCost
	bossCost := 2 * ingotCost
	dowelCost := 2*plankCost + 3*ingotCost
	inscriptionCost := 15*lowestT5 + 2*dowelCost

	craftingCost := inscriptionCost + backingCost + bossCost
	profit := ectoSellAfterTax*0.9 - craftingCost

	return merge(
		currency.Fields("crafting_cost", craftingCost),
		currency.Fields("ecto_sell_after_tax", ectoSellAfterTax),
		currency.Fields("profit", profit),
	), nil
}

// t5MatsBuy reports current buy prices for the tier-5 fine materials.
func (s *Service) t5MatsBuy(ctx context.Context) (map[string]float64, error) {
	prices, err := s.prices.FetchPrices(ctx, []int{
		itemLargeClaw,
		itemPotentBlood,
		itemLargeBone,
		itemIntricateTotem,
		itemLargeFang,
		itemPotentVenomSac,
		itemLargeScale,
	})
	if err != nil {
		return nil, err
	}

	return merge(
		currency.Fields("large_claw", prices[itemLargeClaw].Buy),
		currency.Fields("potent_blood", prices[itemPotentBlood].Buy),
		currency.Fields("large_bone", prices[itemLargeBone].Buy),
		currency.Fields("intricate_totem", prices[itemIntricateTotem].Buy),
		currency.Fields("large_fang", prices[itemLargeFang].Buy),
		currency.Fields("potent_venom", prices[itemPotentVenomSac].Buy),
		currency.Fields("large_scale", prices[itemLargeScale].Buy),
	), nil
}

// matsCraftingCompare compares buying refined materials against refining
// them from raw inputs.
func (s *Service) matsCraftingCompare(ctx context.Context) (map[string]float64, error) {
	prices, err := s.prices.FetchPrices(ctx, []int{
		itemMithrilIngot,
		itemMithrilOre,
		itemElderWoodPlank,
		itemElderWoodLog,
		itemLucentMote,
		itemPileLucentCrystal,
	})
	if err != nil {
		return nil, err
	}

	return merge(
		currency.Fields("mithril_ore_to_ingot", prices[itemMithrilOre].Buy*2),
		currency.Fields("mithril_ingot_buy", prices[itemMithrilIngot].Buy),
		currency.Fields("elder_wood_log_to_plank", prices[itemElderWoodLog].Buy*3),
		currency.Fields("elder_wood_plank_buy", prices[itemElderWoodPlank].Buy),
		currency.Fields("lucent_mote_to_crystal", prices[itemLucentMote].Buy*10),
		currency.Fields("lucent_crystal_buy", prices[itemPileLucentCrystal].Buy),
	), nil
}
