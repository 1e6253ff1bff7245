package cart

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// GetOrCreate loads the cart with the given ID, creating an open one when
// the ID is empty or unknown. Returns the cart actually in use, so callers
// can refresh the cookie.
func (r *Repo) GetOrCreate(ctx context.Context, cartID string) (Cart, error) {
	if cartID != "" {
		var c Cart
		err := r.db.WithContext(ctx).First(&c, "id = ? AND status = ?", cartID, "open").Error
		if err == nil {
			return c, nil
		}
		if err != gorm.ErrRecordNotFound {
			return Cart{}, err
		}
	}
	c := Cart{ID: uuid.NewString(), Status: "open"}
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return Cart{}, err
	}
	return c, nil
}

// AddItem appends a line, merging quantities when the same variant (or the
// same option-less product) is already in the cart. Runs in a retried
// transaction so concurrent adds to the same cart don't race the merge.
func (r *Repo) AddItem(ctx context.Context, cartID string, line Line) error {
	if line.Qty < 1 {
		line.Qty = 1
	}

	return withTxRetry(ctx, r.db, 3, func(tx *gorm.DB) error {
		q := tx.Where("cart_id = ? AND product_id = ?", cartID, line.ProductID)
		if line.VariantID != "" {
			q = q.Where("variant_id = ?", line.VariantID)
		} else {
			q = q.Where("variant_id = ''")
		}

		var existing CartItem
		err := q.First(&existing).Error
		if err == nil {
			return tx.Model(&CartItem{}).
				Where("id = ?", existing.ID).
				Update("quantity", gorm.Expr("quantity + ?", line.Qty)).Error
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		optionsJSON, err := json.Marshal(line.Options)
		if err != nil {
			optionsJSON = []byte("{}")
		}
		item := CartItem{
			ID:          uuid.NewString(),
			CartID:      cartID,
			ProductID:   line.ProductID,
			VariantID:   line.VariantID,
			OptionsJSON: optionsJSON,
			Quantity:    line.Qty,
			PriceCents:  line.PriceCents,
			Currency:    line.Currency,
		}
		return tx.Create(&item).Error
	})
}

func (r *Repo) UpdateItemQty(ctx context.Context, cartID, itemID string, qty int) error {
	if qty <= 0 {
		return r.db.WithContext(ctx).Where("cart_id = ? AND id = ?", cartID, itemID).Delete(&CartItem{}).Error
	}
	return r.db.WithContext(ctx).Model(&CartItem{}).
		Where("cart_id = ? AND id = ?", cartID, itemID).
		Update("quantity", qty).Error
}

func (r *Repo) RemoveItem(ctx context.Context, cartID, itemID string) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ? AND id = ?", cartID, itemID).
		Delete(&CartItem{}).Error
}

func (r *Repo) ClearCart(ctx context.Context, cartID string) error {
	return r.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&CartItem{}).Error
}

// TotalItemCount is the header-badge capability: the summed quantity of
// every line in the cart.
func (r *Repo) TotalItemCount(ctx context.Context, cartID string) (int, error) {
	if cartID == "" {
		return 0, nil
	}
	var total int64
	err := r.db.WithContext(ctx).Model(&CartItem{}).
		Where("cart_id = ?", cartID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return int(total), err
}
