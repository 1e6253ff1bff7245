package cart

import "time"

// Cart is a guest cart; its ID travels in an HMAC-signed cookie.
type Cart struct {
	ID        string `gorm:"primaryKey;size:36"`
	Status    string `gorm:"size:16;index;default:open"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []CartItem `gorm:"foreignKey:CartID"`
}

// CartItem snapshots the purchasable line at add time: the resolved
// variant (empty for option-less products), the selected option values and
// the unit price. Name/slug/image are joined from the catalog at read time.
type CartItem struct {
	ID          string `gorm:"primaryKey;size:36"`
	CartID      string `gorm:"index;size:36"`
	ProductID   string `gorm:"size:36"`
	VariantID   string `gorm:"size:36;index"`
	OptionsJSON []byte `gorm:"column:options_json"`
	Quantity    int
	PriceCents  int64
	Currency    string `gorm:"size:3"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CartItem) TableName() string { return "cart_items" }

// Line is the add-to-cart capability's input: product, resolved variant
// (optional), selected option snapshot and quantity.
type Line struct {
	ProductID  string
	VariantID  string
	Options    map[string]string
	Qty        int
	PriceCents int64
	Currency   string
}
