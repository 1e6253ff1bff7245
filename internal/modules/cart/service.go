package cart

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"

	"gorm.io/gorm"

	"lunarest.com/app/internal/modules/currency"
	"lunarest.com/app/pkg/view"
)

type Service struct {
	db       *gorm.DB
	repo     *Repo
	currency *currency.Service
}

func NewService(db *gorm.DB, curr *currency.Service) *Service {
	return &Service{db: db, repo: NewRepo(db), currency: curr}
}

func (s *Service) Repo() *Repo { return s.repo }

type cartRow struct {
	ItemID      string `gorm:"column:item_id"`
	VariantID   string `gorm:"column:variant_id"`
	OptionsJSON []byte `gorm:"column:options_json"`
	Qty         int    `gorm:"column:qty"`
	PriceCents  int64  `gorm:"column:price_cents"`
	Currency    string `gorm:"column:currency"`

	ProductName string `gorm:"column:product_name"`
	ProductSlug string `gorm:"column:product_slug"`
	ImageURL    string `gorm:"column:image_url"`
}

var ErrMixedCurrency = errors.New("cart contains multiple currencies")

// BuildCartPage joins the cart's lines with their products and converts
// line prices into the requested display currency.
func (s *Service) BuildCartPage(ctx context.Context, cartID string, displayCurrency string) (view.CartPage, error) {
	base := s.baseCurrency()
	if cartID == "" {
		return view.CartPage{Items: []view.CartItem{}, Currency: displayCurrency, BaseCurrency: base}, nil
	}

	const q = `
SELECT
  ci.id           AS item_id,
  ci.variant_id   AS variant_id,
  ci.options_json AS options_json,
  ci.quantity     AS qty,
  ci.price_cents  AS price_cents,
  ci.currency     AS currency,
  p.name          AS product_name,
  p.slug          AS product_slug,
  COALESCE((SELECT pi.url FROM product_images pi WHERE pi.product_id = p.id ORDER BY pi.position ASC LIMIT 1), '') AS image_url
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.cart_id = ?
ORDER BY ci.created_at ASC;
`

	var rows []cartRow
	if err := s.db.WithContext(ctx).Raw(q, cartID).Scan(&rows).Error; err != nil {
		return view.CartPage{}, err
	}

	return s.buildCartVMFromRows(ctx, rows, displayCurrency)
}

// TotalItemCount exposes the badge count capability on the service.
func (s *Service) TotalItemCount(ctx context.Context, cartID string) (int, error) {
	return s.repo.TotalItemCount(ctx, cartID)
}

func (s *Service) buildCartVMFromRows(ctx context.Context, rows []cartRow, displayCurrency string) (view.CartPage, error) {
	vm := view.CartPage{Items: make([]view.CartItem, 0, len(rows))}

	itemCurrency := ""
	for _, r := range rows {
		if r.Currency != "" {
			itemCurrency = strings.ToUpper(strings.TrimSpace(r.Currency))
			break
		}
	}
	if itemCurrency == "" {
		itemCurrency = strings.ToUpper(strings.TrimSpace(s.baseCurrency()))
	}

	displayCurrency = strings.ToUpper(strings.TrimSpace(displayCurrency))
	rate := 1.0
	if s.currency != nil {
		base := strings.ToUpper(strings.TrimSpace(s.currency.BaseCurrency()))
		if itemCurrency != "" && base != "" && strings.EqualFold(itemCurrency, base) {
			displayCurrency = s.normalizeDisplayCurrency(displayCurrency)
			if rateInfo, err := s.currency.DisplayRate(ctx, displayCurrency); err == nil && rateInfo.Rate > 0 {
				rate = rateInfo.Rate
			}
		} else {
			// Avoid incorrect FX conversions when cart items are not in base currency.
			displayCurrency = itemCurrency
			rate = 1.0
		}
	}
	if displayCurrency == "" {
		displayCurrency = itemCurrency
	}

	var subtotalBase, subtotalDisplay int64
	count := 0

	for _, r := range rows {
		if r.Qty <= 0 {
			continue
		}
		if r.Currency != "" && !strings.EqualFold(r.Currency, itemCurrency) {
			return view.CartPage{}, ErrMixedCurrency
		}

		line := r.PriceCents * int64(r.Qty)
		subtotalBase += line
		count += r.Qty

		convertedUnit := convertAmount(r.PriceCents, rate)
		convertedLine := convertAmount(line, rate)
		subtotalDisplay += convertedLine

		var opts map[string]string
		if len(r.OptionsJSON) > 0 {
			_ = json.Unmarshal(r.OptionsJSON, &opts)
		}

		vm.Items = append(vm.Items, view.CartItem{
			ItemID:      r.ItemID,
			ProductName: r.ProductName,
			ProductSlug: r.ProductSlug,
			ImageURL:    r.ImageURL,
			VariantID:   r.VariantID,
			Options:     opts,
			Qty:         r.Qty,

			UnitPriceCents:     convertedUnit,
			LineTotalCents:     convertedLine,
			BaseUnitPriceCents: r.PriceCents,
			BaseLineTotalCents: line,

			UnitPrice: view.MoneyFromCents(convertedUnit, displayCurrency),
			LineTotal: view.MoneyFromCents(convertedLine, displayCurrency),
		})
	}

	vm.Currency = displayCurrency
	vm.BaseCurrency = itemCurrency
	vm.Count = count
	vm.SubtotalCents = subtotalBase
	vm.DisplaySubtotalCents = subtotalDisplay
	vm.Subtotal = view.MoneyFromCents(subtotalDisplay, displayCurrency)

	return vm, nil
}

func (s *Service) baseCurrency() string {
	if s.currency != nil {
		return s.currency.BaseCurrency()
	}
	return ""
}

func (s *Service) normalizeDisplayCurrency(current string) string {
	if s.currency == nil {
		if current == "" {
			return s.baseCurrency()
		}
		return current
	}
	if normalized, ok := s.currency.NormalizeDisplay(current); ok {
		return normalized
	}
	return s.currency.DefaultDisplayCurrency()
}

func convertAmount(base int64, rate float64) int64 {
	if rate == 1 {
		return base
	}
	val := float64(base) * rate
	if val >= 0 {
		return int64(math.Round(val))
	}
	return -int64(math.Round(math.Abs(val)))
}
