package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tareqferdous/foodhub-api/internal/core/domain"
	"github.com/tareqferdous/foodhub-api/internal/core/ports"
)

type stubCategoryRepo struct {
	byID map[string]*domain.Category
}

func newStubCategoryRepo(categories ...*domain.Category) *stubCategoryRepo {
	r := &stubCategoryRepo{byID: make(map[string]*domain.Category)}
	for _, c := range categories {
		r.byID[c.ID] = c
	}
	return r
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	c.ID = "cat_" + strconv.Itoa(len(r.byID)+1)
	r.byID[c.ID] = c
	return c, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	var out []*domain.Category
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.byID, id)
	return nil
}

func newMealSvc(meals *stubMealRepo, categories *stubCategoryRepo, providers *stubProviderRepo) *MealService {
	return NewMealService(meals, categories, providers, zerolog.Nop())
}

func TestMealService_CreateMeal_EnrichesDenormalisedNames(t *testing.T) {
	meals := newStubMealRepo()
	categories := newStubCategoryRepo(&domain.Category{ID: "cat_1", Name: "Burgers"})
	providers := newStubProviderRepo(&domain.Provider{ID: "prov_1", RestaurantName: "Burger House"})

	svc := newMealSvc(meals, categories, providers)
	meal, err := svc.CreateMeal(context.Background(), "prov_1", ports.MealInput{
		Title:       "Beef Burger",
		Price:       10,
		CategoryID:  "cat_1",
		IsAvailable: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meal.ProviderName != "Burger House" {
		t.Errorf("expected provider name captured, got %q", meal.ProviderName)
	}
	if meal.CategoryName != "Burgers" {
		t.Errorf("expected category name captured, got %q", meal.CategoryName)
	}
	if meal.DietaryType != domain.DietaryNone {
		t.Errorf("expected dietary default NONE, got %q", meal.DietaryType)
	}
}

func TestMealService_CreateMeal_UnknownProvider(t *testing.T) {
	svc := newMealSvc(newStubMealRepo(), newStubCategoryRepo(), newStubProviderRepo())

	_, err := svc.CreateMeal(context.Background(), "prov_missing", ports.MealInput{Title: "Beef Burger", Price: 10})
	if !errors.Is(err, domain.ErrProviderNotFound) {
		t.Errorf("expected ErrProviderNotFound, got %v", err)
	}
}

func TestMealService_CreateMeal_UnknownCategory(t *testing.T) {
	providers := newStubProviderRepo(&domain.Provider{ID: "prov_1", RestaurantName: "Burger House"})
	svc := newMealSvc(newStubMealRepo(), newStubCategoryRepo(), providers)

	_, err := svc.CreateMeal(context.Background(), "prov_1", ports.MealInput{
		Title:      "Beef Burger",
		Price:      10,
		CategoryID: "cat_missing",
	})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestMealService_UpdateMeal_OwnershipEnforced(t *testing.T) {
	meals := newStubMealRepo(availableMeal("m1", "prov_1", 10))
	providers := newStubProviderRepo(&domain.Provider{ID: "prov_1", RestaurantName: "Burger House"})
	svc := newMealSvc(meals, newStubCategoryRepo(), providers)

	_, err := svc.UpdateMeal(context.Background(), "m1", "prov_2", ports.MealInput{Title: "Hijacked", Price: 1})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden for another provider, got %v", err)
	}

	updated, err := svc.UpdateMeal(context.Background(), "m1", "prov_1", ports.MealInput{
		Title:       "Double Beef Burger",
		Price:       14,
		IsAvailable: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "Double Beef Burger" || updated.Price != 14 {
		t.Errorf("unexpected update result: %+v", updated)
	}
}

func TestMealService_UpdateMeal_AdminBypassesOwnership(t *testing.T) {
	meals := newStubMealRepo(availableMeal("m1", "prov_1", 10))
	providers := newStubProviderRepo(&domain.Provider{ID: "prov_1", RestaurantName: "Burger House"})
	svc := newMealSvc(meals, newStubCategoryRepo(), providers)

	// admins pass an empty provider ID
	_, err := svc.UpdateMeal(context.Background(), "m1", "", ports.MealInput{Title: "Renamed", Price: 9, IsAvailable: true})
	if err != nil {
		t.Fatalf("unexpected error for admin update: %v", err)
	}
}

func TestMealService_DeleteMeal_OwnershipEnforced(t *testing.T) {
	meals := newStubMealRepo(availableMeal("m1", "prov_1", 10))
	svc := newMealSvc(meals, newStubCategoryRepo(), newStubProviderRepo())

	if err := svc.DeleteMeal(context.Background(), "m1", "prov_2"); !errors.Is(err, domain.ErrMealNotFound) {
		t.Errorf("expected ErrMealNotFound for another provider, got %v", err)
	}
	if err := svc.DeleteMeal(context.Background(), "m1", "prov_1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, defaultPageLimit},
		{-5, -3, 1, defaultPageLimit},
		{2, 50, 2, 50},
		{1, 500, 1, maxPageLimit},
	}
	for _, tc := range cases {
		page, limit := normalizePage(tc.page, tc.limit)
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Errorf("normalizePage(%d, %d) = (%d, %d), want (%d, %d)",
				tc.page, tc.limit, page, limit, tc.wantPage, tc.wantLimit)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
	}
	for _, tc := range cases {
		if got := totalPages(tc.total, tc.limit); got != tc.want {
			t.Errorf("totalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}
