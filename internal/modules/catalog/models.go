package catalog

import "time"

// Product is the catalog row. OptionsJSON holds the ordered option
// definitions (see OptionDef); base price fields are the fallback shown
// while no variant is resolved. Prices are integer cents.
type Product struct {
	ID             string `gorm:"primaryKey;size:36"`
	Name           string
	Slug           string `gorm:"uniqueIndex;size:191"`
	Description    string
	Status         string `gorm:"size:16;index"`
	PriceCents     int64
	CompareAtCents int64
	Currency       string `gorm:"size:3"`
	Featured       bool
	Stock          int    `gorm:"default:0"`
	OptionsJSON    []byte `gorm:"column:options_json"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Images   []Image   `gorm:"foreignKey:ProductID"`
	Variants []Variant `gorm:"foreignKey:ProductID"`
}

// Variant is one purchasable combination. OptionsJSON is the option
// name → value assignment, e.g. {"Size":"King","Color":"White"}.
type Variant struct {
	ID             string `gorm:"primaryKey;size:36"`
	ProductID      string `gorm:"index;size:36"`
	SKU            string `gorm:"uniqueIndex;size:64"`
	OptionsJSON    []byte `gorm:"column:options_json"`
	PriceCents     int64
	CompareAtCents int64
	Currency       string `gorm:"size:3"`
	Stock          int    `gorm:"default:0"`
	ImageURL       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Variant) TableName() string { return "product_variants" }

type Image struct {
	ID         string `gorm:"primaryKey;size:36"`
	ProductID  string `gorm:"index;size:36"`
	StorageKey string
	URL        string
	Position   int
	CreatedAt  time.Time
}

func (Image) TableName() string { return "product_images" }

// OptionDef is the JSON shape stored in Product.OptionsJSON.
type OptionDef struct {
	Name     string            `json:"name"`
	Values   []string          `json:"values"`
	Swatches map[string]string `json:"swatches,omitempty"`
}
