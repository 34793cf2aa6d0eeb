package bookings

import (
	"context"
	"testing"
	"time"

	"pet-sitting-service/internal/platform/apierr"
	"pet-sitting-service/internal/platform/patch"
)

type testRepo struct {
	byID map[string]Booking
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Booking{}}
}

func (r *testRepo) Create(ctx context.Context, b Booking) error {
	r.byID[b.ID] = b
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return Booking{}, ErrNotFound
	}
	return b, nil
}

func (r *testRepo) List(ctx context.Context) ([]Booking, error) {
	out := make([]Booking, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, b Booking) error {
	if _, ok := r.byID[b.ID]; !ok {
		return ErrNotFound
	}
	r.byID[b.ID] = b
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubOwners struct {
	ids map[string]bool
}

func (s stubOwners) Exists(ctx context.Context, ownerID string) (bool, error) {
	return s.ids[ownerID], nil
}

func wantKind(t *testing.T, err error, kind apierr.Kind) {
	t.Helper()
	got, ok := apierr.KindOf(err)
	if !ok {
		t.Fatalf("expected apierr %s, got %v", kind, err)
	}
	if got != kind {
		t.Fatalf("expected kind %s, got %s (%v)", kind, got, err)
	}
}

func validCreate() CreateInput {
	return CreateInput{
		OwnerID:         "owner-1",
		StartTime:       time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
	}
}

func TestCreate_StartsUncancelled(t *testing.T) {
	svc := NewService(newTestRepo(), stubOwners{ids: map[string]bool{"owner-1": true}})

	b, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if b.Cancelled {
		t.Fatal("new booking must not be cancelled")
	}
	if b.ID == "" {
		t.Fatal("expected assigned id")
	}
}

func TestCreate_RejectsUnknownOwner(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, stubOwners{ids: map[string]bool{}})

	_, err := svc.Create(context.Background(), validCreate())
	wantKind(t, err, apierr.KindReference)

	if len(repo.byID) != 0 {
		t.Fatal("rejected booking must not persist")
	}
}

func TestCreate_RejectsNonPositiveDuration(t *testing.T) {
	svc := NewService(newTestRepo(), stubOwners{ids: map[string]bool{"owner-1": true}})

	in := validCreate()
	in.DurationMinutes = 0

	_, err := svc.Create(context.Background(), in)
	wantKind(t, err, apierr.KindValidation)
}

func TestUpdate_CancelIsAPatch(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, stubOwners{ids: map[string]bool{"owner-1": true}})

	b, _ := svc.Create(context.Background(), validCreate())

	updated, err := svc.Update(context.Background(), b.ID, UpdateInput{
		Cancelled: patch.Field[bool]{Set: true, Value: true},
	})
	if err != nil {
		t.Fatalf("cancel booking: %v", err)
	}
	if !updated.Cancelled {
		t.Fatal("expected booking cancelled")
	}
	if !updated.StartTime.Equal(b.StartTime) || updated.DurationMinutes != b.DurationMinutes {
		t.Fatalf("absent fields must carry over, got %+v", updated)
	}
}

func TestUpdate_DurationMustStayPositive(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, stubOwners{ids: map[string]bool{"owner-1": true}})

	b, _ := svc.Create(context.Background(), validCreate())

	_, err := svc.Update(context.Background(), b.ID, UpdateInput{
		DurationMinutes: patch.Field[int]{Set: true, Value: 0},
	})
	wantKind(t, err, apierr.KindValidation)

	if repo.byID[b.ID].DurationMinutes != 60 {
		t.Fatal("rejected patch must not change stored duration")
	}
}

func TestUpdate_EmptyOwnerIsRejected(t *testing.T) {
	svc := NewService(newTestRepo(), stubOwners{ids: map[string]bool{"owner-1": true}})

	b, _ := svc.Create(context.Background(), validCreate())

	_, err := svc.Update(context.Background(), b.ID, UpdateInput{
		OwnerID: patch.Field[string]{Set: true, Value: ""},
	})
	wantKind(t, err, apierr.KindValidation)
}

func TestGetByID_UnknownIsNotFound(t *testing.T) {
	svc := NewService(newTestRepo(), stubOwners{ids: map[string]bool{}})

	_, err := svc.GetByID(context.Background(), "nope")
	wantKind(t, err, apierr.KindNotFound)
}
