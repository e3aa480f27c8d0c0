package garden

// TotalPrice sums the fence price of every region under the given pricing
// mode. An empty or nil slice totals 0.
// Complexity: O(Σn) for ByPerimeter, O(Σ n log n) for BySides.
func TotalPrice(regions []*Region, mode Pricing) int {
	total := 0
	for _, r := range regions {
		total += r.Price(mode)
	}

	return total
}

// FencePricing partitions the garden and totals the fence price in one call.
func (g *Garden) FencePricing(mode Pricing) int {
	return TotalPrice(g.Regions(), mode)
}

// GroupByPlant buckets regions by their plant label. Grouping is cosmetic:
// pricing sums are unaffected by it, but reports often want regions of one
// plant together.
func GroupByPlant(regions []*Region) map[byte][]*Region {
	groups := make(map[byte][]*Region)
	for _, r := range regions {
		groups[r.Plant] = append(groups[r.Plant], r)
	}

	return groups
}
