// Package valuation computes profitability figures for the tracked craft
// catalog from current trading-post prices. Every craft returns a flat map
// of "<name>_g/_s/_c" numeric fields.
package valuation

import (
	"context"
	"errors"
	"sort"

	"gw2-tracker/internal/currency"
	"gw2-tracker/internal/services/gw2"
)

// ErrUnknownCraft is the not-found sentinel: the catalog has no such craft.
var ErrUnknownCraft = errors.New("unknown craft")

// PriceSource supplies current buy/sell unit prices for a set of items.
type PriceSource interface {
	FetchPrices(ctx context.Context, itemIDs []int) (map[int]gw2.ItemPrices, error)
}

type craftFunc func(ctx context.Context) (map[string]float64, error)

type Service struct {
	prices PriceSource
	crafts map[string]craftFunc
}

func NewService(prices PriceSource) *Service {
	s := &Service{prices: prices}
	s.crafts = map[string]craftFunc{
		"scholar_rune":               s.scholarRune,
		"guardian_rune":              s.guardianRune,
		"dragonhunter_rune":          s.dragonhunterRune,
		"relic_of_fireworks":         s.relicOfFireworks,
		"relic_of_thief":             s.relicOfThief,
		"relic_of_aristocracy":       s.relicOfAristocracy,
		"rare_weapon_craft":          s.rareWeaponCraft,
		"rare_gear_salvage":          s.rareGearSalvage,
		"common_gear_salvage":        s.commonGearSalvage,
		"gear_salvage":               s.gearSalvage,
		"t5_mats_buy":                s.t5MatsBuy,
		"mats_crafting_compare":      s.matsCraftingCompare,
		"symbol_enh_forge":           s.symbolEnhForge,
		"charm_brilliance_forge":     s.charmBrillianceForge,
		"loadstone_forge":            s.loadstoneForge,
		"thesis_on_masterful_malice": s.thesisOnMasterfulMalice,
	}
	return s
}

// Valuation computes the named craft's current figures. Returns
// ErrUnknownCraft when the craft is not in the catalog.
func (s *Service) Valuation(ctx context.Context, craftID string) (map[string]float64, error) {
	fn, ok := s.crafts[craftID]
	if !ok {
		return nil, ErrUnknownCraft
	}
	return fn(ctx)
}

// Crafts lists every craft the service can value, sorted for stable route
// registration.
func (s *Service) Crafts() []string {
	ids := make([]string, 0, len(s.crafts))
	for id := range s.crafts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ItemQuote returns the raw and derived price fields for a single item:
// buy/sell in copper and denominated, flip margin, sell after tax.
func (s *Service) ItemQuote(ctx context.Context, itemID int) (map[string]float64, error) {
	prices, err := s.prices.FetchPrices(ctx, []int{itemID})
	if err != nil {
		return nil, err
	}
	p := prices[itemID]
	flip := p.Sell*taxRate - p.Buy

	data := map[string]float64{
		"buy":  p.Buy,
		"sell": p.Sell,
	}
	mergeInto(data, currency.Fields("buy", p.Buy))
	mergeInto(data, currency.Fields("sell", p.Sell))
	mergeInto(data, currency.Fields("flip", flip))
	mergeInto(data, currency.Fields("sell_after_tax", p.Sell*taxRate))
	return data, nil
}

func mergeInto(dst map[string]float64, src map[string]float64) {
	for k, v := range src {
		dst[k] = v
	}
}

func merge(maps ...map[string]float64) map[string]float64 {
	out := map[string]float64{}
	for _, m := range maps {
		mergeInto(out, m)
	}
	return out
}
