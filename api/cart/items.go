package cart

import (
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"

	"maizonmarie_server/lib"
)

// CreateCart handles POST /cart: opens a fresh session-scoped cart.
func (crm *CartRoutesManager) CreateCart(w http.ResponseWriter, r *http.Request) {
	cartID := crm.cartService.CreateCart()

	gecho.Success(w,
		gecho.WithData(map[string]string{"cartId": cartID}),
		gecho.Send(),
	)
}

// FetchCart handles GET /cart/{cartID}: line items plus the running subtotal.
func (crm *CartRoutesManager) FetchCart(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")

	items, err := crm.cartService.Items(cartID)
	if err != nil {
		gecho.NotFound(w,
			gecho.WithMessage("error.cart.notFound"),
			gecho.Send(),
		)
		return
	}

	subtotal, _ := crm.cartService.Subtotal(cartID)

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"items":           items,
			"count":           len(items),
			"subtotal":        subtotal,
			"subtotalDisplay": lib.FormatPrice(subtotal),
		}),
		gecho.Send(),
	)
}

type addItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	OptionID  string `json:"optionId" validate:"required"`
}

// AddItem handles POST /cart/{cartID}/items. The cart engine snapshots whatever
// pair it is handed; resolving (and guarding) the pair against the live catalog
// happens here. An option that no longer belongs to the product is a silent no-op,
// per the tolerant stale-reference policy.
func (crm *CartRoutesManager) AddItem(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")

	body, err := lib.ExtractAndValidateBody[addItemRequest](r)
	if err != nil {
		crm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the item information and try again"),
			gecho.Send(),
		)
		return
	}

	product := crm.catalogService.FindProduct(body.ProductID)
	if product == nil {
		gecho.NotFound(w,
			gecho.WithMessage("error.products.notFound"),
			gecho.Send(),
		)
		return
	}

	option := product.FindOption(body.OptionID)
	if option == nil {
		// Stale or mismatched option: nothing is added and nothing fails loudly.
		gecho.Success(w,
			gecho.WithData(map[string]any{"added": false}),
			gecho.Send(),
		)
		return
	}

	item, err := crm.cartService.AddItem(cartID, *product, *option)
	if err != nil {
		crm.respondCartError(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"added": true,
			"item":  item,
		}),
		gecho.Send(),
	)
}

type addFlashSaleItemRequest struct {
	SaleID string `json:"saleId" validate:"required"`
}

// AddFlashSaleItem handles POST /cart/{cartID}/items/flash-sale: claims the offer at
// the discounted price, labeled with the product's first size tier.
func (crm *CartRoutesManager) AddFlashSaleItem(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")

	body, err := lib.ExtractAndValidateBody[addFlashSaleItemRequest](r)
	if err != nil {
		crm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the offer information and try again"),
			gecho.Send(),
		)
		return
	}

	sale := crm.flashSaleService.FindSale(body.SaleID)
	if sale == nil {
		gecho.NotFound(w,
			gecho.WithMessage("error.flashSales.notFound"),
			gecho.Send(),
		)
		return
	}

	product := crm.catalogService.FindProduct(sale.ProductID)
	if product == nil {
		// The sale references a deleted product; claiming it is a silent no-op.
		gecho.Success(w,
			gecho.WithData(map[string]any{"added": false}),
			gecho.Send(),
		)
		return
	}

	item, err := crm.cartService.AddFromFlashSale(cartID, *sale, *product)
	if err != nil {
		crm.respondCartError(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"added": true,
			"item":  item,
		}),
		gecho.Send(),
	)
}

// RemoveItem handles DELETE /cart/{cartID}/items/{itemID}; removing an absent item
// succeeds as a no-op.
func (crm *CartRoutesManager) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")
	itemID := chi.URLParam(r, "itemID")

	if err := crm.cartService.RemoveItem(cartID, itemID); err != nil {
		crm.respondCartError(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Item removed"),
		gecho.Send(),
	)
}

type changeSizeRequest struct {
	Size string `json:"size" validate:"required"`
}

// ChangeItemSize handles PUT /cart/{cartID}/items/{itemID}/size: the one re-sync
// path from catalog truth back into a snapshot. A product that vanished or a size
// no longer offered leaves the item untouched.
func (crm *CartRoutesManager) ChangeItemSize(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")
	itemID := chi.URLParam(r, "itemID")

	body, err := lib.ExtractAndValidateBody[changeSizeRequest](r)
	if err != nil {
		crm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please choose a size and try again"),
			gecho.Send(),
		)
		return
	}

	changed, err := crm.cartService.ChangeSize(cartID, itemID, body.Size)
	if err != nil {
		crm.respondCartError(w, err)
		return
	}

	items, _ := crm.cartService.Items(cartID)
	subtotal, _ := crm.cartService.Subtotal(cartID)

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"changed":         changed,
			"items":           items,
			"subtotal":        subtotal,
			"subtotalDisplay": lib.FormatPrice(subtotal),
		}),
		gecho.Send(),
	)
}

func (crm *CartRoutesManager) respondCartError(w http.ResponseWriter, err error) {
	if errors.Is(err, lib.ErrCartNotFound) {
		gecho.NotFound(w,
			gecho.WithMessage("error.cart.notFound"),
			gecho.Send(),
		)
		return
	}
	crm.logger.Error("Cart operation failed", gecho.Field("error", err))
	gecho.InternalServerError(w,
		gecho.WithMessage("Unable to update the cart. Please try again"),
		gecho.Send(),
	)
}
