// Package catalog is the single registry of crafts tracked by the snapshot
// pipeline. The scheduler and the API layer both consume it, so the craft
// list and the per-craft field allow-list live in exactly one place.
package catalog

// Entry describes one tracked craft: which valuation fields survive into a
// snapshot. Prefix match against field names (e.g. "sell" keeps sell_g,
// sell_s, sell_c).
type Entry struct {
	ID       string
	Prefixes []string
}

// snapshotPrefixes is what every tracked craft keeps today: the crafting
// cost and the sell price. Flip and profit fields are deliberately dropped
// at write time.
var snapshotPrefixes = []string{"crafting_cost", "sell"}

// Tracked lists the crafts snapshotted on every fetch tick, in the fixed
// order they are processed.
var Tracked = []Entry{
	{ID: "scholar_rune", Prefixes: snapshotPrefixes},
	{ID: "guardian_rune", Prefixes: snapshotPrefixes},
	{ID: "dragonhunter_rune", Prefixes: snapshotPrefixes},
	{ID: "relic_of_fireworks", Prefixes: snapshotPrefixes},
	{ID: "relic_of_thief", Prefixes: snapshotPrefixes},
	{ID: "relic_of_aristocracy", Prefixes: snapshotPrefixes},
}

// ProfitCrafts are the crafts aggregated by the /profits endpoint. The
// tracked set plus the rare weapon craft, which has a profit figure but no
// snapshot history.
var ProfitCrafts = []string{
	"scholar_rune",
	"guardian_rune",
	"dragonhunter_rune",
	"relic_of_fireworks",
	"relic_of_thief",
	"relic_of_aristocracy",
	"rare_weapon_craft",
}
