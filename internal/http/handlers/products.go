package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"lunarest.com/app/internal/http/middleware"
	"lunarest.com/app/internal/http/render"
	"lunarest.com/app/internal/modules/card"
	"lunarest.com/app/internal/modules/catalog"
	"lunarest.com/app/pkg/view"
)

// ProductsHandler serves product listing, detail and the headless card
// state used by the storefront UI.
type ProductsHandler struct {
	svc          *catalog.Service
	baseCurrency string
}

func NewProductsHandler(svc *catalog.Service, baseCurrency string) *ProductsHandler {
	return &ProductsHandler{svc: svc, baseCurrency: baseCurrency}
}

// List handles GET /products
func (h *ProductsHandler) List(c *gin.Context) {
	limit := 24
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	offset := 0
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	prods, err := h.svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		render.Error(c, http.StatusInternalServerError, "Could not load products.", middleware.GetRequestID(c))
		return
	}

	vm := view.ProductListVM{Products: make([]view.ProductCardVM, 0, len(prods))}
	for _, p := range prods {
		vm.Products = append(vm.Products, h.cardVM(p, card.DefaultSelection(p)))
	}
	c.JSON(http.StatusOK, vm)
}

// Show handles GET /products/:slug
func (h *ProductsHandler) Show(c *gin.Context) {
	p, err := h.loadProduct(c)
	if err != nil {
		return
	}

	vm := view.ProductDetailVM{
		ProductCardVM: h.cardVM(p, card.DefaultSelection(p)),
		Images:        p.Images,
	}
	c.JSON(http.StatusOK, vm)
}

// CardState handles GET /products/:slug/card. Query params are the
// selection (?Size=King&Color=Blue); the response carries the recomputed
// card state: per-value availability, pricing, stock and the add-to-cart
// gate.
func (h *ProductsHandler) CardState(c *gin.Context) {
	p, err := h.loadProduct(c)
	if err != nil {
		return
	}

	sel := selectionFromValues(p, func(name string) string { return c.Query(name) })
	c.JSON(http.StatusOK, h.cardVM(p, sel))
}

func (h *ProductsHandler) loadProduct(c *gin.Context) (card.Product, error) {
	slug := c.Param("slug")
	p, err := h.svc.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			render.Error(c, http.StatusNotFound, "Product not found.", middleware.GetRequestID(c))
		} else {
			render.Error(c, http.StatusInternalServerError, "Could not load product.", middleware.GetRequestID(c))
		}
		return card.Product{}, err
	}
	return p, nil
}

func (h *ProductsHandler) cardVM(p card.Product, sel card.Selection) view.ProductCardVM {
	return cardVMFrom(p, sel, h.baseCurrency)
}

// selectionFromValues builds a selection from a value source, accepting
// only declared option names. Unknown params are ignored; unknown values
// simply resolve to no variant.
func selectionFromValues(p card.Product, get func(name string) string) card.Selection {
	sel := card.Selection{}
	for _, opt := range p.Options {
		if v := get(opt.Name); v != "" {
			sel[opt.Name] = v
		}
	}
	return sel
}

// cardVMFrom runs the card pipeline and shapes the result for rendering.
func cardVMFrom(p card.Product, sel card.Selection, baseCurrency string) view.ProductCardVM {
	dv := card.Derive(p, sel)

	currency := p.Currency
	if currency == "" {
		currency = baseCurrency
	}

	vm := view.ProductCardVM{
		ID:           p.ID,
		Slug:         p.Slug,
		Title:        p.Title,
		Description:  p.Description,
		ImageURL:     dv.ImageURL,
		Featured:     p.Featured,
		InStock:      dv.InStock,
		CanAddToCart: dv.CanAddToCart,
		Currency:     currency,
		PriceCents:   dv.Pricing.PriceCents,
		Price:        view.MoneyFromCents(dv.Pricing.PriceCents, currency),
	}
	if dv.Variant != nil {
		vm.VariantID = dv.Variant.ID
	}
	if dv.Pricing.CompareAtCents > 0 {
		vm.CompareAtCents = dv.Pricing.CompareAtCents
		vm.CompareAt = view.MoneyFromCents(dv.Pricing.CompareAtCents, currency)
		vm.DiscountPct = dv.Pricing.DiscountPct
	}

	for _, opt := range dv.Options {
		ovm := view.OptionVM{
			Name:     opt.Name,
			IsSwatch: opt.IsSwatch,
			Values:   make([]view.ValueVM, 0, len(opt.Values)),
		}
		for _, val := range opt.Values {
			ovm.Values = append(ovm.Values, view.ValueVM{
				Value:     val.Value,
				Selected:  val.Selected,
				Available: val.Available,
				Swatch:    val.Swatch,
			})
		}
		vm.Options = append(vm.Options, ovm)
	}

	return vm
}
