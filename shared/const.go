package shared

const (
	UserID = "user_id"

	RarityCommon    = "common"
	RarityUncommon  = "uncommon"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"

	PrizeTypePoints   = "points"
	PrizeTypeDiscount = "discount"
	PrizeTypeShipping = "shipping"

	EventSwipe       = "swipe"
	EventLike        = "like"
	EventAddToCart   = "addToCart"
	EventViewDetails = "viewDetails"
)

// DurabilityLevels orders chew strength / toy durability from weakest to
// strongest. Rank comparisons in the match scorer rely on this ordering.
var DurabilityLevels = []string{"gentle", "moderate", "aggressive", "destroyer"}

// DurabilityRank returns the position of level in DurabilityLevels, or -1
// when the level is unknown or empty.
func DurabilityRank(level string) int {
	for i, l := range DurabilityLevels {
		if l == level {
			return i
		}
	}
	return -1
}
