package view

// CartItem is one cart line joined with its product/variant data. Base*
// fields are in the catalog currency; the unprefixed fields are converted
// to the shopper's display currency.
type CartItem struct {
	ItemID      string            `json:"itemId"`
	ProductName string            `json:"productName"`
	ProductSlug string            `json:"productSlug"`
	ImageURL    string            `json:"imageUrl,omitempty"`
	VariantID   string            `json:"variantId,omitempty"`
	Options     map[string]string `json:"options,omitempty"`
	Qty         int               `json:"qty"`

	UnitPriceCents     int64 `json:"unitPriceCents"`
	LineTotalCents     int64 `json:"lineTotalCents"`
	BaseUnitPriceCents int64 `json:"baseUnitPriceCents"`
	BaseLineTotalCents int64 `json:"baseLineTotalCents"`

	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

type CartPage struct {
	Items        []CartItem `json:"items"`
	Count        int        `json:"count"`
	Currency     string     `json:"currency"`
	BaseCurrency string     `json:"baseCurrency"`

	SubtotalCents        int64  `json:"subtotalCents"`
	DisplaySubtotalCents int64  `json:"displaySubtotalCents"`
	Subtotal             string `json:"subtotal"`
}
