package sitters

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
	r.Route("/sitters", func(sr chi.Router) {
		sr.Post("/", createSitterHandler(svc))
		sr.Get("/", listSittersHandler(svc))
		sr.Get("/{sitterID}", getSitterHandler(svc))
		sr.Put("/{sitterID}", updateSitterHandler(svc))
		sr.Delete("/{sitterID}", deleteSitterHandler(svc))
	})
}

type createSitterRequest struct {
	FirstName string `json:"firstname" validate:"required"`
	LastName  string `json:"lastname" validate:"required"`
	Gender    string `json:"gender" validate:"required,oneof=male female other"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type updateSitterRequest struct {
	FirstName patch.Field[string] `json:"firstname"`
	LastName  patch.Field[string] `json:"lastname"`
	Gender    patch.Field[string] `json:"gender"`
	Email     patch.Field[string] `json:"email"`
	Phone     patch.Field[string] `json:"phone"`
	Address   patch.Field[string] `json:"address"`
}

type sitterResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstname"`
	LastName  string    `json:"lastname"`
	Gender    string    `json:"gender"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// createSitterHandler godoc
// @Summary Registrar un sitter
// @Tags sitters
// @Accept json
// @Produce json
// @Param payload body createSitterRequest true "Datos del sitter; gender: male|female|other"
// @Success 201 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Router /sitters [post]
func createSitterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSitterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, apierr.Validation("invalid json body"))
			return
		}
		if err := validate.Struct(req); err != nil {
			respond.Error(w, err)
			return
		}

		st, err := svc.Create(r.Context(), CreateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Gender:    req.Gender,
			Email:     req.Email,
			Phone:     req.Phone,
			Address:   req.Address,
		})
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.Created(w, toSitterResponse(st))
	}
}

func listSittersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}

		out := make([]sitterResponse, 0, len(items))
		for _, st := range items {
			out = append(out, toSitterResponse(st))
		}
		respond.OK(w, out)
	}
}

func getSitterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.GetByID(r.Context(), chi.URLParam(r, "sitterID"))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.OK(w, toSitterResponse(st))
	}
}

func updateSitterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateSitterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, apierr.Validation("invalid json body"))
			return
		}

		st, err := svc.Update(r.Context(), chi.URLParam(r, "sitterID"), UpdateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Gender:    req.Gender,
			Email:     req.Email,
			Phone:     req.Phone,
			Address:   req.Address,
		})
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.OK(w, toSitterResponse(st))
	}
}

func deleteSitterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "sitterID")
		if err := svc.Delete(r.Context(), id); err != nil {
			respond.Error(w, err)
			return
		}
		respond.Deleted(w, id)
	}
}

func toSitterResponse(st Sitter) sitterResponse {
	return sitterResponse{
		ID:        st.ID,
		FirstName: st.FirstName,
		LastName:  st.LastName,
		Gender:    string(st.Gender),
		Email:     st.Email,
		Phone:     st.Phone,
		Address:   st.Address,
		CreatedAt: st.CreatedAt,
		UpdatedAt: st.UpdatedAt,
	}
}
