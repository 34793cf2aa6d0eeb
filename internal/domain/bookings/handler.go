package bookings

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
	r.Route("/bookings", func(br chi.Router) {
		br.Post("/", createBookingHandler(svc))
		br.Get("/", listBookingsHandler(svc))
		br.Get("/{bookingID}", getBookingHandler(svc))
		br.Put("/{bookingID}", updateBookingHandler(svc))
		br.Delete("/{bookingID}", deleteBookingHandler(svc))
	})
}

type createBookingRequest struct {
	Owner           string `json:"owner" validate:"required"`
	StartTime       string `json:"start_time" validate:"required"` // RFC3339
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
}

type updateBookingRequest struct {
	Owner           patch.Field[string] `json:"owner"`
	StartTime       patch.Field[string] `json:"start_time"` // RFC3339
	DurationMinutes patch.Field[int]    `json:"duration_minutes"`
	Cancelled       patch.Field[bool]   `json:"cancelled"`
}

type bookingResponse struct {
	ID              string    `json:"id"`
	Owner           string    `json:"owner"`
	StartTime       string    `json:"start_time"` // RFC3339
	DurationMinutes int       `json:"duration_minutes"`
	Cancelled       bool      `json:"cancelled"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// createBookingHandler godoc
// @Summary Registrar un booking
// @Description owner debe referenciar a un owner existente. start_time en RFC3339, duration_minutes > 0. cancelled arranca en false.
// @Tags bookings
// @Accept json
// @Produce json
// @Param payload body createBookingRequest true "Datos del booking"
// @Success 201 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Router /bookings [post]
func createBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, apierr.Validation("invalid json body"))
			return
		}
		if err := validate.Struct(req); err != nil {
			respond.Error(w, err)
			return
		}

		start, err := time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			respond.Error(w, apierr.Validation("start_time must be an RFC3339 timestamp"))
			return
		}

		b, err := svc.Create(r.Context(), CreateInput{
			OwnerID:         req.Owner,
			StartTime:       start,
			DurationMinutes: req.DurationMinutes,
		})
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.Created(w, toBookingResponse(b))
	}
}

func listBookingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}

		out := make([]bookingResponse, 0, len(items))
		for _, b := range items {
			out = append(out, toBookingResponse(b))
		}
		respond.OK(w, out)
	}
}

func getBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.GetByID(r.Context(), chi.URLParam(r, "bookingID"))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.OK(w, toBookingResponse(b))
	}
}

// updateBookingHandler godoc
// @Summary Actualizar un booking (patch parcial)
// @Description Campos ausentes no se tocan. cancelled: true cancela la reserva sin borrarla.
// @Tags bookings
// @Accept json
// @Produce json
// @Param bookingID path string true "ID del booking"
// @Param payload body updateBookingRequest true "Campos a modificar"
// @Success 200 {object} respond.Envelope
// @Failure 400 {object} respond.Envelope
// @Failure 404 {object} respond.Envelope
// @Router /bookings/{bookingID} [put]
func updateBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, apierr.Validation("invalid json body"))
			return
		}

		// start_time viaja como string RFC3339; se parsea acá para que el
		// service trabaje con time.Time.
		var start patch.Field[time.Time]
		if req.StartTime.Set {
			t, err := time.Parse(time.RFC3339, req.StartTime.Value)
			if err != nil {
				respond.Error(w, apierr.Validation("start_time must be an RFC3339 timestamp"))
				return
			}
			start = patch.Field[time.Time]{Set: true, Value: t}
		}

		b, err := svc.Update(r.Context(), chi.URLParam(r, "bookingID"), UpdateInput{
			OwnerID:         req.Owner,
			StartTime:       start,
			DurationMinutes: req.DurationMinutes,
			Cancelled:       req.Cancelled,
		})
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.OK(w, toBookingResponse(b))
	}
}

func deleteBookingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "bookingID")
		if err := svc.Delete(r.Context(), id); err != nil {
			respond.Error(w, err)
			return
		}
		respond.Deleted(w, id)
	}
}

func toBookingResponse(b Booking) bookingResponse {
	return bookingResponse{
		ID:              b.ID,
		Owner:           b.OwnerID,
		StartTime:       b.StartTime.UTC().Format(time.RFC3339),
		DurationMinutes: b.DurationMinutes,
		Cancelled:       b.Cancelled,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
