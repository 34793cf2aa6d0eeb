package owners

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-sitting-service/internal/platform/apierr"
	"pet-sitting-service/internal/platform/patch"
	"pet-sitting-service/internal/platform/respond"
	"pet-sitting-service/internal/platform/validate"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/owners", func(or chi.Router) {
		or.Post("/", createOwnerHandler(svc))
		or.Get("/", listOwnersHandler(svc))
		or.Get("/{ownerID}", getOwnerHandler(svc))
		or.Put("/{ownerID}", updateOwnerHandler(svc))
		or.Delete("/{ownerID}", deleteOwnerHandler(svc))
	})
}

type createOwnerRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type updateOwnerRequest struct {
	// Campos presence-tagged: key ausente = no tocar.
	Name    patch.Field[string] `json:"name"`
	Email   patch.Field[string] `json:"email"`
	Phone   patch.Field[string] `json:"phone"`
	Address patch.Field[string] `json:"address"`
}

type ownerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// createOwnerHandler godoc
// @Summary Registrar un owner
// @Description Crea un owner. name y email son obligatorios; el id lo asigna el sistema.
// @Tags owners
// @Accept json
// @Produce json
// @Param payload body createOwnerRequest true "Datos del owner"
// @Success 201 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Router /owners [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, apierr.Validation("invalid json body"))
			return
		}
		if err := validate.Struct(req); err != nil {
			respond.Error(w, err)
			return
		}

		o, err := svc.Create(r.Context(), CreateInput{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
		})
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.Created(w, toOwnerResponse(o))
	}
}

// listOwnersHandler godoc
// @Summary Listar owners
// @Tags owners
// @Produce json
// @Success 200 {object} respond.Envelope
// @Router /owners [get]
func listOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}

		out := make([]ownerResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOwnerResponse(o))
		}
		respond.OK(w, out)
	}
}

func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, err := svc.GetByID(r.Context(), chi.URLParam(r, "ownerID"))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.OK(w, toOwnerResponse(o))
	}
}

// updateOwnerHandler godoc
// @Summary Actualizar un owner (patch parcial)
// @Description Solo los campos presentes en el body se aplican; los ausentes no se tocan.
// @Tags owners
// @Accept json
// @Produce json
// @Param ownerID path string true "ID del owner"
// @Param payload body updateOwnerRequest true "Campos a modificar"
// @Success 200 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /owners/{ownerID} [put]
func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateOwnerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, apierr.Validation("invalid json body"))
			return
		}

		o, err := svc.Update(r.Context(), chi.URLParam(r, "ownerID"), UpdateInput{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
		})
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.OK(w, toOwnerResponse(o))
	}
}

func deleteOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "ownerID")
		if err := svc.Delete(r.Context(), id); err != nil {
			respond.Error(w, err)
			return
		}
		respond.Deleted(w, id)
	}
}

func toOwnerResponse(o Owner) ownerResponse {
	return ownerResponse{
		ID:        o.ID,
		Name:      o.Name,
		Email:     o.Email,
		Phone:     o.Phone,
		Address:   o.Address,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
