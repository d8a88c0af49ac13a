package controllers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/shopori/cart-service/api/responses"
	"github.com/shopori/cart-service/internal/catalog"
	"github.com/shopori/cart-service/pkg/logger"
)

type productLoader interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
}

// ProductDetail proxies the remote catalog's product detail for the
// storefront UI.
func ProductDetail(loader productLoader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		productID, err := productIDParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, err := loader.GetProduct(ctx, productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}
