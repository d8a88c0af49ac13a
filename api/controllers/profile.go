package controllers

import (
	"net/http"

	"github.com/shopori/cart-service/api/responses"
	"github.com/shopori/cart-service/api/validators"
	"github.com/shopori/cart-service/internal/profile"
	"github.com/shopori/cart-service/pkg/db/models"
	"github.com/shopori/cart-service/pkg/logger"
)

type upsertProfilePayload struct {
	FullName string `json:"fullName" validate:"required,max=120"`
	Phone    string `json:"phone" validate:"required,max=32"`
	Email    string `json:"email" validate:"omitempty,email"`
	Address  string `json:"address" validate:"omitempty,max=300"`
	City     string `json:"city" validate:"omitempty,max=80"`
	District string `json:"district" validate:"omitempty,max=80"`
	Country  string `json:"country" validate:"omitempty,max=80"`
}

// ProfileGet returns the cached shipping-form prefill, or an empty object
// when the buyer has never saved one.
func ProfileGet(repo profile.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := buyerID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		stored, err := repo.Get(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if stored == nil {
			responses.WriteSuccess(w, map[string]any{})
			return
		}

		responses.WriteSuccess(w, stored)
	}
}

// ProfileUpsert replaces the cached profile wholesale.
func ProfileUpsert(repo profile.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := buyerID(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload upsertProfilePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		stored := &models.BuyerProfile{
			UserID:   userID,
			FullName: validators.SanitizeString(payload.FullName, 120),
			Phone:    validators.SanitizeString(payload.Phone, 32),
			Email:    validators.SanitizeString(payload.Email, 254),
			Address:  validators.SanitizeString(payload.Address, 300),
			City:     validators.SanitizeString(payload.City, 80),
			District: validators.SanitizeString(payload.District, 80),
			Country:  validators.SanitizeString(payload.Country, 80),
		}
		if err := repo.Upsert(ctx, stored); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, stored)
	}
}
