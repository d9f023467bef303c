package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pawscare/vetgate/internal/core/domain"
)

type stubPetAPI struct {
	listFn   func(ctx context.Context, query url.Values) (*domain.Page[domain.Pet], error)
	getFn    func(ctx context.Context, id string) (*domain.Pet, error)
	createFn func(ctx context.Context, in domain.PetInput) (*domain.Pet, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubPetAPI) ListPets(ctx context.Context, query url.Values) (*domain.Page[domain.Pet], error) {
	return s.listFn(ctx, query)
}

func (s *stubPetAPI) GetPet(ctx context.Context, id string) (*domain.Pet, error) {
	return s.getFn(ctx, id)
}

func (s *stubPetAPI) CreatePet(ctx context.Context, in domain.PetInput) (*domain.Pet, error) {
	return s.createFn(ctx, in)
}

func (s *stubPetAPI) UpdatePet(_ context.Context, id string, in domain.PetInput) (*domain.Pet, error) {
	return &domain.Pet{ID: id}, nil
}

func (s *stubPetAPI) DeletePet(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubPetAPI) ListMedicalRecords(context.Context, string) ([]domain.MedicalRecord, error) {
	return []domain.MedicalRecord{}, nil
}

func TestPetHandler_ListForwardsQuery(t *testing.T) {
	api := &stubPetAPI{listFn: func(_ context.Context, query url.Values) (*domain.Page[domain.Pet], error) {
		if query.Get("page") != "2" {
			t.Errorf("query not forwarded: %v", query)
		}
		return &domain.Page[domain.Pet]{Items: []domain.Pet{{ID: "p1", Name: "Buddy"}}, Total: 1, Page: 2, Size: 10, Pages: 1}, nil
	}}
	h := NewPetHandler(api)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/pets?page=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var page domain.Page[domain.Pet]
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if page.Page != 2 || len(page.Items) != 1 {
		t.Fatalf("unexpected envelope: %+v", page)
	}
}

func TestPetHandler_GetPropagatesBackendError(t *testing.T) {
	api := &stubPetAPI{getFn: func(_ context.Context, id string) (*domain.Pet, error) {
		return nil, domain.NewRequestError(http.StatusNotFound, "Pet not found")
	}}
	h := NewPetHandler(api)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/pets/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("nope")

	err := h.Get(c)
	var re *domain.RequestError
	if !errors.As(err, &re) || re.Status != http.StatusNotFound {
		t.Fatalf("expected backend 404 to pass through, got %v", err)
	}
}

func TestPetHandler_CreateValidates(t *testing.T) {
	api := &stubPetAPI{createFn: func(context.Context, domain.PetInput) (*domain.Pet, error) {
		t.Fatal("backend must not be called for an invalid payload")
		return nil, nil
	}}
	h := NewPetHandler(api)

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/pets", strings.NewReader(`{"name":"Milo"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestPetHandler_Create(t *testing.T) {
	api := &stubPetAPI{createFn: func(_ context.Context, in domain.PetInput) (*domain.Pet, error) {
		if in.Name == nil || *in.Name != "Milo" || in.Species == nil || *in.Species != "cat" {
			t.Errorf("input not forwarded: %+v", in)
		}
		return &domain.Pet{ID: "p-new", Name: "Milo", Species: "cat"}, nil
	}}
	h := NewPetHandler(api)

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/pets", strings.NewReader(`{"pet_parent_id":"parent-001","name":"Milo","species":"cat"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
}

func TestPetHandler_Delete(t *testing.T) {
	api := &stubPetAPI{deleteFn: func(_ context.Context, id string) error {
		if id != "p1" {
			t.Errorf("id = %q", id)
		}
		return nil
	}}
	h := NewPetHandler(api)

	e := newEcho()
	req := httptest.NewRequest(http.MethodDelete, "/pets/p1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}
