package card

// ValueState is one selectable value as the presentation layer sees it.
type ValueState struct {
	Value     string
	Selected  bool
	Available bool
	Swatch    string
}

// OptionState is one option row with its ordered value states.
type OptionState struct {
	Name     string
	IsSwatch bool
	Values   []ValueState
}

// View is everything the card needs to render, recomputed from
// (Product, Selection) on every change. Pure and idempotent: deriving twice
// from the same inputs yields identical views.
type View struct {
	Variant      *Variant
	Pricing      Pricing
	InStock      bool
	CanAddToCart bool
	ImageURL     string
	Options      []OptionState
}

// CanAddToCart is the cart-eligibility gate. Option-less products are
// addable iff the product itself is in stock. Products with options need a
// resolved variant (complete selection) that is in stock; an incomplete
// selection is never addable.
func CanAddToCart(p Product, sel Selection, v *Variant) bool {
	if !p.HasOptions() {
		return p.InStock
	}
	return v != nil && v.InStock
}

// Derive runs the full pipeline: resolve, price, availability, gate.
func Derive(p Product, sel Selection) View {
	var matched *Variant
	if v, ok := Resolve(p, sel); ok {
		matched = &v
	}

	view := View{
		Variant:      matched,
		Pricing:      Project(p, matched),
		InStock:      displayInStock(p, matched),
		CanAddToCart: CanAddToCart(p, sel, matched),
		ImageURL:     displayImage(p, matched),
		Options:      make([]OptionState, 0, len(p.Options)),
	}

	for _, opt := range p.Options {
		os := OptionState{
			Name:     opt.Name,
			IsSwatch: opt.IsSwatch(),
			Values:   make([]ValueState, 0, len(opt.Values)),
		}
		for _, val := range opt.Values {
			os.Values = append(os.Values, ValueState{
				Value:     val,
				Selected:  sel[opt.Name] == val,
				Available: IsOptionValueAvailable(p, opt.Name, val, sel),
				Swatch:    opt.Swatches[val],
			})
		}
		view.Options = append(view.Options, os)
	}

	return view
}

// displayInStock is the badge-level stock state: the resolved variant's
// flag when there is one, any in-stock variant while options are still
// unselected, the product's own flag when there is no variant layer.
func displayInStock(p Product, v *Variant) bool {
	if v != nil {
		return v.InStock
	}
	if !p.HasOptions() {
		return p.InStock
	}
	for _, vv := range p.Variants {
		if vv.InStock {
			return true
		}
	}
	return false
}

func displayImage(p Product, v *Variant) string {
	if v != nil && v.ImageURL != "" {
		return v.ImageURL
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}
