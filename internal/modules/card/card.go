// Package card is the headless product-card engine: variant resolution,
// option-value availability, pricing projection and add-to-cart gating.
// Everything here is a pure function over plain values; storage and HTTP
// live in the surrounding modules.
package card

import "strings"

// Option is a named product attribute with an ordered set of allowed values.
// Swatches optionally maps a value to a CSS color string.
type Option struct {
	Name     string
	Values   []string
	Swatches map[string]string
}

// IsSwatch reports whether the option should render as color swatches.
// Convention: the option named, case-insensitively, "color" with a
// non-empty swatch map.
func (o Option) IsSwatch() bool {
	return strings.EqualFold(o.Name, "color") && len(o.Swatches) > 0
}

// Variant is a concrete purchasable combination of option values.
// Prices are integer minor units (cents). CompareAtCents of 0 means absent.
type Variant struct {
	ID             string
	Options        map[string]string
	PriceCents     int64
	CompareAtCents int64
	InStock        bool
	ImageURL       string
}

// Product is the catalog record the card works on. PriceCents and
// CompareAtCents are the base-product fallback used while no variant is
// resolved. InStock is only meaningful for option-less products.
type Product struct {
	ID             string
	Slug           string
	Title          string
	Description    string
	PriceCents     int64
	CompareAtCents int64
	Currency       string
	Images         []string
	Featured       bool
	InStock        bool
	Options        []Option
	Variants       []Variant
}

// HasOptions reports whether the product has a variant layer at all.
func (p Product) HasOptions() bool { return len(p.Options) > 0 }

// Selection holds the currently chosen value per option name. It may be
// partial. Each card instance owns its own Selection; nothing here is
// shared or global.
type Selection map[string]string

// Choose returns a copy of the selection with name set to value, so the
// previous state stays usable by the caller.
func (s Selection) Choose(name, value string) Selection {
	next := make(Selection, len(s)+1)
	for k, v := range s {
		next[k] = v
	}
	next[name] = value
	return next
}

// DefaultSelection pre-seeds the selection to the first in-stock variant's
// assignment so the card shows a concrete price immediately. Falls back to
// an empty selection when no variant is in stock.
func DefaultSelection(p Product) Selection {
	if !p.HasOptions() {
		return Selection{}
	}
	for _, v := range p.Variants {
		if !v.InStock {
			continue
		}
		if !variantCoversOptions(p, v) {
			continue
		}
		sel := make(Selection, len(p.Options))
		for _, opt := range p.Options {
			sel[opt.Name] = v.Options[opt.Name]
		}
		return sel
	}
	return Selection{}
}

// variantCoversOptions reports whether the variant supplies a value for
// every declared option. Variants that don't are a data-integrity fault and
// are skipped everywhere rather than matched.
func variantCoversOptions(p Product, v Variant) bool {
	for _, opt := range p.Options {
		if v.Options[opt.Name] == "" {
			return false
		}
	}
	return true
}
