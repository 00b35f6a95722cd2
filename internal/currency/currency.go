// Package currency converts between raw copper amounts and the
// gold/silver/copper denomination used by the trading post.
package currency

import "math"

// One gold is 10,000 copper, one silver is 100 copper.
const (
	CopperPerGold   = 10_000
	CopperPerSilver = 100
)

// ToDenominated splits a copper amount into gold, silver and copper parts.
// Negative amounts keep the sign on every component, so -12345 becomes
// (-1, -23, -45) rather than a mixed-sign triple.
func ToDenominated(copper int64) (gold, silver, rest int64) {
	negative := copper < 0
	if negative {
		copper = -copper
	}

	gold = copper / CopperPerGold
	silver = (copper % CopperPerGold) / CopperPerSilver
	rest = copper % CopperPerSilver

	if negative {
		gold, silver, rest = -gold, -silver, -rest
	}
	return gold, silver, rest
}

// ToCopper is the inverse of ToDenominated.
func ToCopper(gold, silver, copper int64) int64 {
	return gold*CopperPerGold + silver*CopperPerSilver + copper
}

// Fields builds the "<name>_g", "<name>_s", "<name>_c" triple every
// valuation payload is made of. Fractional copper is truncated toward zero
// before splitting.
func Fields(name string, copper float64) map[string]float64 {
	g, s, c := ToDenominated(int64(math.Trunc(copper)))
	return map[string]float64{
		name + "_g": float64(g),
		name + "_s": float64(s),
		name + "_c": float64(c),
	}
}

// FieldsToCopper recombines a "<name>_g/_s/_c" triple from a valuation
// payload back into copper.
func FieldsToCopper(fields map[string]float64, name string) float64 {
	return fields[name+"_g"]*CopperPerGold +
		fields[name+"_s"]*CopperPerSilver +
		fields[name+"_c"]
}
