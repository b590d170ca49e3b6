// Package advisor implements the deterministic spending decision engine: the
// price/budget classifier for proposed expenses and the period insights
// summarizer. Both are pure functions over their inputs.
package advisor

import (
	"strings"

	"github.com/finguard/finguard/internal/model"
)

// PriceRange is the typical price band for an item or category, in rupees.
// Invariant: Min <= Max for every entry.
type PriceRange struct {
	Min float64
	Max float64
}

type itemPrice struct {
	keyword string
	rng     PriceRange
}

// itemPrices is the reference table for the price sanity check. Entries are
// matched by case-insensitive substring against the expense description, in
// declaration order; the first match wins, so more specific keywords must be
// listed before broader ones.
var itemPrices = []itemPrice{
	// Food
	{"chai", PriceRange{10, 30}},
	{"tea", PriceRange{10, 30}},
	{"coffee", PriceRange{50, 200}},
	{"snack", PriceRange{20, 80}},
	{"samosa", PriceRange{20, 80}},
	{"vada pav", PriceRange{20, 50}},
	{"burger", PriceRange{80, 300}},
	{"pizza", PriceRange{150, 600}},
	{"meal", PriceRange{100, 500}},
	{"lunch", PriceRange{100, 500}},
	{"dinner", PriceRange{100, 500}},
	{"thali", PriceRange{100, 300}},
	{"biryani", PriceRange{150, 400}},
	{"groceries", PriceRange{200, 3000}},
	{"vegetables", PriceRange{50, 1000}},
	{"fruits", PriceRange{50, 1000}},
	{"sweets", PriceRange{50, 300}},
	{"dessert", PriceRange{50, 300}},
	// Transport
	{"auto", PriceRange{30, 200}},
	{"rickshaw", PriceRange{30, 200}},
	{"cab", PriceRange{100, 800}},
	{"uber", PriceRange{100, 800}},
	{"ola", PriceRange{100, 800}},
	{"bus", PriceRange{10, 100}},
	{"metro", PriceRange{10, 60}},
	{"train", PriceRange{10, 100}},
	{"petrol", PriceRange{200, 3000}},
	{"fuel", PriceRange{200, 3000}},
	// Shopping
	{"clothes", PriceRange{300, 3000}},
	{"shirt", PriceRange{300, 2000}},
	{"pants", PriceRange{500, 3000}},
	{"shoes", PriceRange{500, 5000}},
	{"footwear", PriceRange{300, 5000}},
	{"phone", PriceRange{8000, 50000}},
	{"mobile", PriceRange{8000, 50000}},
	{"laptop", PriceRange{25000, 100000}},
	{"computer", PriceRange{25000, 100000}},
	// Entertainment
	{"movie", PriceRange{150, 500}},
	{"cinema", PriceRange{150, 500}},
	{"subscription", PriceRange{100, 700}},
	{"netflix", PriceRange{100, 700}},
	{"spotify", PriceRange{100, 200}},
	// Utilities
	{"rent", PriceRange{5000, 30000}},
	{"electricity", PriceRange{200, 3000}},
	{"water bill", PriceRange{100, 1000}},
	{"internet", PriceRange{200, 1000}},
	{"wifi", PriceRange{200, 1000}},
	{"recharge", PriceRange{100, 1000}},
	{"gym", PriceRange{500, 3000}},
	{"fitness", PriceRange{500, 3000}},
	{"medicine", PriceRange{50, 2000}},
	{"pharmacy", PriceRange{50, 2000}},
	{"doctor", PriceRange{200, 2000}},
}

// categoryPrices is the broader fallback band used when no item keyword
// matches the description.
var categoryPrices = map[model.Category]PriceRange{
	model.CategoryFood:          {20, 3000},
	model.CategoryTransport:     {10, 3000},
	model.CategoryShopping:      {100, 50000},
	model.CategoryEntertainment: {100, 2000},
	model.CategoryUtilities:     {100, 30000},
	model.CategoryOther:         {50, 50000},
}

// defaultPriceRange covers categories absent from categoryPrices.
var defaultPriceRange = PriceRange{50, 50000}

// MatchPriceRange resolves the description to the most specific known item
// range, falling back to the category band. It returns the range and the
// label of what was matched (item keyword or category name).
func MatchPriceRange(description string, category model.Category) (PriceRange, string) {
	desc := strings.ToLower(description)
	if desc != "" {
		for _, item := range itemPrices {
			if strings.Contains(desc, item.keyword) {
				return item.rng, item.keyword
			}
		}
	}
	if rng, ok := categoryPrices[category]; ok {
		return rng, string(category)
	}
	return defaultPriceRange, string(category)
}
