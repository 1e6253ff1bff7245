package card

// Resolve finds the unique variant whose option assignment equals the
// current selection. The match requires the selection to be complete: a
// value chosen for every declared option. A partial selection resolves to
// nothing, so callers fall back to base pricing and keep add-to-cart
// disabled.
//
// Duplicate assignments (a data fault) resolve deterministically to the
// first variant in slice order.
func Resolve(p Product, sel Selection) (Variant, bool) {
	if !p.HasOptions() {
		return Variant{}, false
	}
	for _, opt := range p.Options {
		if sel[opt.Name] == "" {
			return Variant{}, false
		}
	}
	for _, v := range p.Variants {
		if !variantCoversOptions(p, v) {
			continue
		}
		if variantMatches(p, v, sel) {
			return v, true
		}
	}
	return Variant{}, false
}

func variantMatches(p Product, v Variant, sel Selection) bool {
	for _, opt := range p.Options {
		if v.Options[opt.Name] != sel[opt.Name] {
			return false
		}
	}
	return true
}

// IsOptionValueAvailable reports whether choosing value for option, while
// holding every other currently-selected option fixed, can still lead to an
// in-stock variant. Unset options are wildcards. Used to dim or disable
// dead-end values in the UI; it never mutates the selection.
func IsOptionValueAvailable(p Product, option, value string, sel Selection) bool {
	for _, v := range p.Variants {
		if !v.InStock {
			continue
		}
		if !variantCoversOptions(p, v) {
			continue
		}
		if v.Options[option] != value {
			continue
		}
		ok := true
		for name, chosen := range sel {
			if name == option {
				continue
			}
			if v.Options[name] != chosen {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}
