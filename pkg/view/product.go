package view

// ValueVM is one selectable option value with its UI affordances.
type ValueVM struct {
	Value     string `json:"value"`
	Selected  bool   `json:"selected"`
	Available bool   `json:"available"`
	Swatch    string `json:"swatch,omitempty"`
}

type OptionVM struct {
	Name     string    `json:"name"`
	IsSwatch bool      `json:"isSwatch"`
	Values   []ValueVM `json:"values"`
}

// ProductCardVM is the headless card state the presentation layer renders:
// pricing, stock badge, add-to-cart gate and the per-option value states.
// Cents fields stay machine-readable next to the formatted strings.
type ProductCardVM struct {
	ID             string     `json:"id"`
	Slug           string     `json:"slug"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	ImageURL       string     `json:"imageUrl,omitempty"`
	Featured       bool       `json:"featured"`
	InStock        bool       `json:"inStock"`
	CanAddToCart   bool       `json:"canAddToCart"`
	VariantID      string     `json:"variantId,omitempty"`
	Currency       string     `json:"currency"`
	PriceCents     int64      `json:"priceCents"`
	Price          string     `json:"price"`
	CompareAtCents int64      `json:"compareAtCents,omitempty"`
	CompareAt      string     `json:"compareAt,omitempty"`
	DiscountPct    int        `json:"discountPct,omitempty"`
	Options        []OptionVM `json:"options,omitempty"`
}

// ProductDetailVM adds the full gallery to the card state.
type ProductDetailVM struct {
	ProductCardVM
	Images []string `json:"images,omitempty"`
}

type ProductListVM struct {
	Products []ProductCardVM `json:"products"`
}
