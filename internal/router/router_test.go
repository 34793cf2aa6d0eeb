package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-sitting-service/internal/router"
)

type envelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  *struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestHTTP_OwnerLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Crear owner
	st, body := doReq(t, ts.URL, "POST", "/owners", map[string]any{
		"name":    "maria",
		"email":   "maria@joao.net",
		"phone":   "22222222",
		"address": "Lisboa",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create owner, got %d body=%s", st, string(body))
	}

	env := decodeEnvelope(t, body)
	if env.Status != "success" || env.Error != nil {
		t.Fatalf("expected success envelope, got %s", string(body))
	}

	var created struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	mustUnmarshal(t, env.Data, &created)
	if created.ID == "" {
		t.Fatalf("create owner: missing id body=%s", string(body))
	}
	if created.Name != "maria" {
		t.Fatalf("expected name maria, got %q", created.Name)
	}

	// 2) Patch parcial: solo address
	st, body = doReq(t, ts.URL, "PUT", "/owners/"+created.ID, map[string]any{
		"address": "Porto",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 update owner, got %d body=%s", st, string(body))
	}

	var updated struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	mustUnmarshal(t, decodeEnvelope(t, body).Data, &updated)
	if updated.Address != "Porto" {
		t.Fatalf("expected address updated, got %+v", updated)
	}
	if updated.Name != "maria" || updated.Email != "maria@joao.net" || updated.Phone != "22222222" {
		t.Fatalf("absent fields must stay untouched, got %+v", updated)
	}

	// 3) Patch vacío: no-op con 200
	st, body = doReq(t, ts.URL, "PUT", "/owners/"+created.ID, map[string]any{})
	if st != http.StatusOK {
		t.Fatalf("expected 200 for empty patch, got %d body=%s", st, string(body))
	}

	// 4) Borrar dos veces: ack y luego 404
	st, body = doReq(t, ts.URL, "DELETE", "/owners/"+created.ID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 delete owner, got %d body=%s", st, string(body))
	}
	var ack struct {
		ID string `json:"id"`
	}
	mustUnmarshal(t, decodeEnvelope(t, body).Data, &ack)
	if ack.ID != created.ID {
		t.Fatalf("expected delete ack with id %s, got %s", created.ID, ack.ID)
	}

	st, body = doReq(t, ts.URL, "DELETE", "/owners/"+created.ID, nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d body=%s", st, string(body))
	}
	env = decodeEnvelope(t, body)
	if env.Error == nil || env.Error.Kind != "NotFoundError" {
		t.Fatalf("expected NotFoundError envelope, got %s", string(body))
	}
}

func TestHTTP_DogReferenceValidation(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// dog con owner colgante => 400 ReferenceError y no persiste
	st, body := doReq(t, ts.URL, "POST", "/dogs", map[string]any{
		"owner": "no-such-owner",
		"name":  "rex",
		"age":   3,
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for dangling owner, got %d body=%s", st, string(body))
	}
	env := decodeEnvelope(t, body)
	if env.Error == nil || env.Error.Kind != "ReferenceError" {
		t.Fatalf("expected ReferenceError, got %s", string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/dogs", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list dogs, got %d", st)
	}
	var list []json.RawMessage
	mustUnmarshal(t, decodeEnvelope(t, body).Data, &list)
	if len(list) != 0 {
		t.Fatalf("rejected dog must not appear in list, got %d entries", len(list))
	}

	// con owner real, el create pasa
	ownerID := createOwner(t, ts.URL)
	st, body = doReq(t, ts.URL, "POST", "/dogs", map[string]any{
		"owner": ownerID,
		"name":  "rex",
		"age":   3,
		"breed": "mixed",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create dog, got %d body=%s", st, string(body))
	}
	var dog struct {
		ID string `json:"id"`
	}
	mustUnmarshal(t, decodeEnvelope(t, body).Data, &dog)

	// owner:"" en un patch se rechaza y el dog queda igual
	st, body = doReq(t, ts.URL, "PUT", "/dogs/"+dog.ID, map[string]any{
		"owner": "",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty owner patch, got %d body=%s", st, string(body))
	}
	env = decodeEnvelope(t, body)
	if env.Error == nil || env.Error.Kind != "ValidationError" {
		t.Fatalf("expected ValidationError, got %s", string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/dogs/"+dog.ID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get dog, got %d", st)
	}
	var stored struct {
		Owner string `json:"owner"`
		Name  string `json:"name"`
	}
	mustUnmarshal(t, decodeEnvelope(t, body).Data, &stored)
	if stored.Owner != ownerID || stored.Name != "rex" {
		t.Fatalf("dog must be unchanged after rejected patch, got %+v", stored)
	}
}

func TestHTTP_SitterPartialUpdate(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/sitters", map[string]any{
		"firstname": "ana",
		"lastname":  "silva",
		"gender":    "female",
		"email":     "ana@walkers.net",
		"phone":     "11111111",
		"address":   "Porto",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create sitter, got %d body=%s", st, string(body))
	}
	var sitter struct {
		ID string `json:"id"`
	}
	mustUnmarshal(t, decodeEnvelope(t, body).Data, &sitter)

	st, body = doReq(t, ts.URL, "PUT", "/sitters/"+sitter.ID, map[string]any{
		"phone": "0808080808",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 patch sitter, got %d body=%s", st, string(body))
	}

	var updated struct {
		FirstName string `json:"firstname"`
		LastName  string `json:"lastname"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Address   string `json:"address"`
	}
	mustUnmarshal(t, decodeEnvelope(t, body).Data, &updated)
	if updated.Phone != "0808080808" {
		t.Fatalf("expected phone updated, got %+v", updated)
	}
	if updated.FirstName != "ana" || updated.LastName != "silva" ||
		updated.Email != "ana@walkers.net" || updated.Address != "Porto" {
		t.Fatalf("untouched fields must carry over, got %+v", updated)
	}
}

func TestHTTP_BookingScenarios(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// lookup de un id desconocido => 404 con envelope de error
	st, body := doReq(t, ts.URL, "GET", "/bookings/0123456789abcdef01234567", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown booking, got %d body=%s", st, string(body))
	}
	env := decodeEnvelope(t, body)
	if env.Status != "error" || env.Error == nil || env.Error.Kind != "NotFoundError" {
		t.Fatalf("expected NotFoundError envelope, got %s", string(body))
	}

	ownerID := createOwner(t, ts.URL)

	// start_time inválido => ValidationError
	st, body = doReq(t, ts.URL, "POST", "/bookings", map[string]any{
		"owner":            ownerID,
		"start_time":       "mañana a la tarde",
		"duration_minutes": 60,
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid start_time, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "POST", "/bookings", map[string]any{
		"owner":            ownerID,
		"start_time":       "2026-09-01T12:00:00Z",
		"duration_minutes": 60,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create booking, got %d body=%s", st, string(body))
	}
	var booking struct {
		ID        string `json:"id"`
		Cancelled bool   `json:"cancelled"`
	}
	mustUnmarshal(t, decodeEnvelope(t, body).Data, &booking)
	if booking.Cancelled {
		t.Fatal("new booking must not be cancelled")
	}

	// cancelar vía patch
	st, body = doReq(t, ts.URL, "PUT", "/bookings/"+booking.ID, map[string]any{
		"cancelled": true,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 cancel booking, got %d body=%s", st, string(body))
	}
	var cancelled struct {
		Cancelled       bool   `json:"cancelled"`
		StartTime       string `json:"start_time"`
		DurationMinutes int    `json:"duration_minutes"`
	}
	mustUnmarshal(t, decodeEnvelope(t, body).Data, &cancelled)
	if !cancelled.Cancelled || cancelled.StartTime != "2026-09-01T12:00:00Z" || cancelled.DurationMinutes != 60 {
		t.Fatalf("expected cancelled with rest untouched, got %+v", cancelled)
	}
}

func TestHTTP_EveryOutcomeUsesTheEnvelope(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	ownerID := createOwner(t, ts.URL)

	cases := []struct {
		method string
		path   string
		body   map[string]any
	}{
		{"GET", "/owners", nil},
		{"GET", "/owners/" + ownerID, nil},
		{"GET", "/owners/nope", nil},
		{"POST", "/owners", map[string]any{"name": ""}},
		{"PUT", "/owners/nope", map[string]any{"name": "x"}},
		{"DELETE", "/owners/nope", nil},
		{"GET", "/dogs", nil},
		{"POST", "/dogs", map[string]any{"owner": "ghost", "name": "rex"}},
		{"GET", "/sitters", nil},
		{"POST", "/sitters", map[string]any{"gender": "robot"}},
		{"GET", "/bookings", nil},
		{"POST", "/bookings", map[string]any{"owner": ownerID, "duration_minutes": -3, "start_time": "2026-09-01T12:00:00Z"}},
	}

	for _, tc := range cases {
		_, body := doReq(t, ts.URL, tc.method, tc.path, tc.body)

		env := decodeEnvelope(t, body)
		switch env.Status {
		case "success":
			if env.Error != nil {
				t.Fatalf("%s %s: success with error body: %s", tc.method, tc.path, string(body))
			}
		case "error":
			if env.Error == nil || env.Error.Kind == "" || env.Error.Message == "" {
				t.Fatalf("%s %s: error without kind/message: %s", tc.method, tc.path, string(body))
			}
			if string(env.Data) != "null" && len(env.Data) != 0 {
				t.Fatalf("%s %s: error with data payload: %s", tc.method, tc.path, string(body))
			}
		default:
			t.Fatalf("%s %s: unexpected status %q: %s", tc.method, tc.path, env.Status, string(body))
		}
	}
}

func createOwner(t *testing.T, baseURL string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/owners", map[string]any{
		"name":  "maria",
		"email": "maria@joao.net",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create owner, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	mustUnmarshal(t, decodeEnvelope(t, body).Data, &resp)
	if resp.ID == "" {
		t.Fatalf("create owner: missing id body=%s", string(body))
	}
	return resp.ID
}

func decodeEnvelope(t *testing.T, body []byte) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("response is not an envelope: %v body=%s", err, string(body))
	}
	return env
}

func mustUnmarshal(t *testing.T, raw json.RawMessage, v any) {
	t.Helper()
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("unmarshal data: %v raw=%s", err, string(raw))
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
