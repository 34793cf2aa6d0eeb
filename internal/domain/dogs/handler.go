package dogs

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
	r.Route("/dogs", func(dr chi.Router) {
		dr.Post("/", createDogHandler(svc))
		dr.Get("/", listDogsHandler(svc))
		dr.Get("/{dogID}", getDogHandler(svc))
		dr.Put("/{dogID}", updateDogHandler(svc))
		dr.Delete("/{dogID}", deleteDogHandler(svc))
	})
}

type createDogRequest struct {
	Owner string `json:"owner" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Age   int    `json:"age" validate:"gte=0"`
	Breed string `json:"breed"`
}

type updateDogRequest struct {
	Owner patch.Field[string] `json:"owner"`
	Name  patch.Field[string] `json:"name"`
	Age   patch.Field[int]    `json:"age"`
	Breed patch.Field[string] `json:"breed"`
}

type dogResponse struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Breed     string    `json:"breed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// createDogHandler godoc
// @Summary Registrar un dog
// @Description owner debe referenciar a un owner existente; si no resuelve, 400 con ReferenceError y nada se persiste.
// @Tags dogs
// @Accept json
// @Produce json
// @Param payload body createDogRequest true "Datos del dog"
// @Success 201 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Router /dogs [post]
func createDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, apierr.Validation("invalid json body"))
			return
		}
		if err := validate.Struct(req); err != nil {
			respond.Error(w, err)
			return
		}

		d, err := svc.Create(r.Context(), CreateInput{
			OwnerID: req.Owner,
			Name:    req.Name,
			Age:     req.Age,
			Breed:   req.Breed,
		})
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.Created(w, toDogResponse(d))
	}
}

func listDogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}

		out := make([]dogResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDogResponse(d))
		}
		respond.OK(w, out)
	}
}

func getDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetByID(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.OK(w, toDogResponse(d))
	}
}

// updateDogHandler godoc
// @Summary Actualizar un dog (patch parcial)
// @Description Campos ausentes no se tocan. owner no puede quedar vacío y debe resolver a un owner existente.
// @Tags dogs
// @Accept json
// @Produce json
// @Param dogID path string true "ID del dog"
// @Param payload body updateDogRequest true "Campos a modificar"
// @Success 200 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /dogs/{dogID} [put]
func updateDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateDogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, apierr.Validation("invalid json body"))
			return
		}

		d, err := svc.Update(r.Context(), chi.URLParam(r, "dogID"), UpdateInput{
			OwnerID: req.Owner,
			Name:    req.Name,
			Age:     req.Age,
			Breed:   req.Breed,
		})
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.OK(w, toDogResponse(d))
	}
}

func deleteDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "dogID")
		if err := svc.Delete(r.Context(), id); err != nil {
			respond.Error(w, err)
			return
		}
		respond.Deleted(w, id)
	}
}

func toDogResponse(d Dog) dogResponse {
	return dogResponse{
		ID:        d.ID,
		Owner:     d.OwnerID,
		Name:      d.Name,
		Age:       d.Age,
		Breed:     d.Breed,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
