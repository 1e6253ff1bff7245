package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"lunarest.com/app/internal/http/cartcookie"
	"lunarest.com/app/internal/http/flash"
	"lunarest.com/app/internal/http/middleware"
	"lunarest.com/app/internal/http/render"
	"lunarest.com/app/internal/http/validation"
	"lunarest.com/app/internal/modules/card"
	"lunarest.com/app/internal/modules/cart"
	"lunarest.com/app/internal/modules/catalog"
	"lunarest.com/app/internal/shared/apperr"
	"lunarest.com/app/pkg/view"
)

// CartHandler handles cart operations (GET /cart, POST /cart/add, ...).
// The add path re-runs the card engine's eligibility gate server-side, so
// the cart only ever receives resolvable, in-stock lines.
type CartHandler struct {
	Catalog *catalog.Service
	CartSvc *cart.Service
	Flash   *flash.Codec
	CK      *cartcookie.Codec
	Logger  *slog.Logger
}

func NewCartHandler(cat *catalog.Service, svc *cart.Service, flashCodec *flash.Codec, ck *cartcookie.Codec, logger *slog.Logger) *CartHandler {
	return &CartHandler{Catalog: cat, CartSvc: svc, Flash: flashCodec, CK: ck, Logger: logger}
}

type addToCartForm struct {
	Slug string `form:"slug" binding:"required"`
	Qty  int    `form:"qty" binding:"omitempty,min=1,max=99"`
}

// Add handles POST /cart/add - validates the selection against the card
// engine, adds the line item and redirects to /cart.
func (h *CartHandler) Add(c *gin.Context) {
	var form addToCartForm
	if err := c.ShouldBind(&form); err != nil {
		fields := validation.FromBindError(err, &form)
		middleware.Fail(c, apperr.InvalidErr("Invalid cart request.", fields))
		return
	}
	qty := form.Qty
	if qty == 0 {
		qty = 1
	}

	p, err := h.Catalog.GetBySlug(c.Request.Context(), strings.TrimSpace(form.Slug))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			render.RedirectWithFlash(c, h.Flash, "/products", view.FlashError, "Product not found.")
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	sel := selectionFromValues(p, func(name string) string { return c.PostForm(name) })
	dv := card.Derive(p, sel)
	if !dv.CanAddToCart {
		msg := "Please select all options first."
		if dv.Variant != nil || !p.HasOptions() {
			msg = "This item is out of stock."
		}
		render.RedirectWithFlash(c, h.Flash, "/products/"+p.Slug, view.FlashWarning, msg)
		return
	}

	cartID, _ := h.CK.GetCartID(c)
	userCart, err := h.CartSvc.Repo().GetOrCreate(c.Request.Context(), cartID)
	if err != nil {
		h.Logger.Error("cart_get_or_create_failed", slog.Any("err", err))
		render.RedirectWithFlash(c, h.Flash, "/products", view.FlashError, "Could not add to cart.")
		return
	}
	h.CK.Set(c, userCart.ID)

	line := cart.Line{
		ProductID:  p.ID,
		Options:    sel,
		Qty:        qty,
		PriceCents: dv.Pricing.PriceCents,
		Currency:   p.Currency,
	}
	if dv.Variant != nil {
		line.VariantID = dv.Variant.ID
	}

	if err := h.CartSvc.Repo().AddItem(c.Request.Context(), userCart.ID, line); err != nil {
		h.Logger.Error("cart_add_item_failed",
			slog.String("cart_id", userCart.ID),
			slog.String("product_id", p.ID),
			slog.Any("err", err),
		)
		render.RedirectWithFlash(c, h.Flash, "/products", view.FlashError, "Could not add to cart.")
		return
	}

	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Added to cart.")
}

// Get handles GET /cart - returns the cart page view model.
func (h *CartHandler) Get(c *gin.Context) {
	fl := middleware.GetFlash(c)

	cartID, _ := h.CK.GetCartID(c)
	page, err := h.CartSvc.BuildCartPage(c.Request.Context(), cartID, c.Query("currency"))
	if err != nil {
		h.Logger.Error("cart_page_failed", slog.String("cart_id", cartID), slog.Any("err", err))
		page = view.CartPage{Items: []view.CartItem{}}
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":  page,
		"flash": fl,
	})
}

// Update handles POST /cart/items/update - updates a line's quantity.
func (h *CartHandler) Update(c *gin.Context) {
	itemID := strings.TrimSpace(c.PostForm("item_id"))
	if itemID == "" {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Item not found.")
		return
	}
	qty := 1
	if v := strings.TrimSpace(c.PostForm("qty")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			qty = n
		}
	}
	qty = clamp(qty, 0, 99)

	cartID, ok := h.CK.GetCartID(c)
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Cart not found.")
		return
	}

	if err := h.CartSvc.Repo().UpdateItemQty(c.Request.Context(), cartID, itemID, qty); err != nil {
		h.Logger.Error("cart_update_failed", slog.String("cart_id", cartID), slog.Any("err", err))
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Could not update quantity.")
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Quantity updated.")
}

// Remove handles POST /cart/items/remove - removes a line.
func (h *CartHandler) Remove(c *gin.Context) {
	itemID := strings.TrimSpace(c.PostForm("item_id"))
	if itemID == "" {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, "Item not found.")
		return
	}

	cartID, ok := h.CK.GetCartID(c)
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Cart not found.")
		return
	}

	if err := h.CartSvc.Repo().RemoveItem(c.Request.Context(), cartID, itemID); err != nil {
		h.Logger.Error("cart_remove_failed", slog.String("cart_id", cartID), slog.Any("err", err))
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Could not remove item.")
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Item removed from cart.")
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
