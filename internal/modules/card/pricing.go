package card

import "math"

// Pricing is the projected display price in integer cents. CompareAtCents
// is 0 unless strictly greater than PriceCents; DiscountPct is 0 unless
// there is a real discount (the fields are absent, not zeroed-out, in the
// JSON views).
type Pricing struct {
	PriceCents     int64
	CompareAtCents int64
	DiscountPct    int
}

// Project derives the displayed pricing. With a resolved variant the
// variant's price wins; otherwise the base product fields are the fallback.
func Project(p Product, v *Variant) Pricing {
	price := p.PriceCents
	compareAt := p.CompareAtCents
	if v != nil {
		price = v.PriceCents
		compareAt = v.CompareAtCents
	}

	out := Pricing{PriceCents: price}
	if compareAt > price {
		out.CompareAtCents = compareAt
		out.DiscountPct = discountPct(price, compareAt)
	}
	return out
}

// discountPct is round(100 * (compareAt - price) / compareAt). Callers
// guarantee compareAt > price, so the result is always >= 1 after rounding
// except for negligible differences, where it may round to 0.
func discountPct(price, compareAt int64) int {
	if compareAt <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(compareAt-price) / float64(compareAt)))
}
