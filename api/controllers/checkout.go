package controllers

import (
	"net/http"

	"github.com/shopori/cart-service/api/responses"
	"github.com/shopori/cart-service/api/validators"
	"github.com/shopori/cart-service/internal/checkout"
	"github.com/shopori/cart-service/pkg/logger"
)

type submitOrderPayload struct {
	Shipping     shippingFormPayload `json:"shipping" validate:"required"`
	DeliveryNote string              `json:"deliveryNote" validate:"omitempty,max=500"`
}

type shippingFormPayload struct {
	FullName string `json:"fullName" validate:"required,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,max=32"`
	Address  string `json:"address" validate:"required,max=300"`
	City     string `json:"city" validate:"required,max=80"`
	District string `json:"district" validate:"omitempty,max=80"`
	Country  string `json:"country" validate:"omitempty,max=80"`
}

// CheckoutQuote returns the totals breakdown for the buyer's cart and the
// city passed as a query parameter.
func CheckoutQuote(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := buyerID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		city := validators.SanitizeString(r.URL.Query().Get("city"), 80)
		totals, err := svc.Quote(ctx, userID, city)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, totals)
	}
}

// CheckoutSubmit places one order for the entire cart.
func CheckoutSubmit(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := buyerID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload submitOrderPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		receipt, err := svc.Submit(ctx, userID, checkout.SubmitInput{
			Shipping: checkout.ShippingForm{
				FullName: validators.SanitizeString(payload.Shipping.FullName, 120),
				Email:    validators.SanitizeString(payload.Shipping.Email, 254),
				Phone:    validators.SanitizeString(payload.Shipping.Phone, 32),
				Address:  validators.SanitizeString(payload.Shipping.Address, 300),
				City:     validators.SanitizeString(payload.Shipping.City, 80),
				District: validators.SanitizeString(payload.Shipping.District, 80),
				Country:  validators.SanitizeString(payload.Shipping.Country, 80),
			},
			DeliveryNote: validators.SanitizeString(payload.DeliveryNote, 500),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, receipt)
	}
}

// CheckoutFirstOrder reports whether the buyer has never ordered before.
func CheckoutFirstOrder(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := buyerID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		first, err := svc.IsFirstOrder(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"firstOrder": first})
	}
}
