package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDenominated(t *testing.T) {
	g, s, c := ToDenominated(12345)
	assert.Equal(t, int64(1), g)
	assert.Equal(t, int64(23), s)
	assert.Equal(t, int64(45), c)

	g, s, c = ToDenominated(99)
	assert.Equal(t, int64(0), g)
	assert.Equal(t, int64(0), s)
	assert.Equal(t, int64(99), c)

	g, s, c = ToDenominated(0)
	assert.Equal(t, int64(0), g+s+c)
}

func TestToDenominated_NegativeKeepsSignOnAllComponents(t *testing.T) {
	g, s, c := ToDenominated(-12345)
	assert.Equal(t, int64(-1), g)
	assert.Equal(t, int64(-23), s)
	assert.Equal(t, int64(-45), c)

	// Component-wise negation of the positive split
	pg, ps, pc := ToDenominated(12345)
	assert.Equal(t, -pg, g)
	assert.Equal(t, -ps, s)
	assert.Equal(t, -pc, c)
}

func TestRoundTrip(t *testing.T) {
	for x := int64(-25000); x <= 25000; x++ {
		g, s, c := ToDenominated(x)
		assert.Equal(t, x, ToCopper(g, s, c), "round trip failed for %d", x)
	}
	for _, x := range []int64{1_000_000, -1_000_000, 123_456_789, -123_456_789} {
		g, s, c := ToDenominated(x)
		assert.Equal(t, x, ToCopper(g, s, c))
	}
}

func TestFields(t *testing.T) {
	fields := Fields("profit", 12345.9) // fraction truncated
	assert.Equal(t, map[string]float64{
		"profit_g": 1,
		"profit_s": 23,
		"profit_c": 45,
	}, fields)

	assert.Equal(t, 12345.0, FieldsToCopper(fields, "profit"))
}
