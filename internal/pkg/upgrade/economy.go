package upgrade

// FinalCost applies the gold-pass discount to a base build cost. The
// discount is 20%, rounded up: ceil(cost * 0.8).
func FinalCost(baseCost int64, goldPass bool) int64 {
	if !goldPass {
		return baseCost
	}
	return (baseCost*4 + 4) / 5
}
