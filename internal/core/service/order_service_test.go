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

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubOrderRepo struct {
	byID      map[string]*domain.Order
	byIdemKey map[string]*domain.Order
	createErr error
	created   []*domain.Order
	lastList  ports.ListOrdersFilter
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{
		byID:      make(map[string]*domain.Order),
		byIdemKey: make(map[string]*domain.Order),
	}
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	o.ID = "order_" + strconv.Itoa(len(r.created)+1)
	r.created = append(r.created, o)
	r.byID[o.ID] = o
	if o.IdempotencyKey != "" {
		r.byIdemKey[o.IdempotencyKey] = o
	}
	return o, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

func (r *stubOrderRepo) FindByIdempotencyKey(_ context.Context, key string) (*domain.Order, error) {
	o, ok := r.byIdemKey[key]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

func (r *stubOrderRepo) List(_ context.Context, filter ports.ListOrdersFilter) ([]*domain.Order, int64, error) {
	r.lastList = filter
	var out []*domain.Order
	for _, o := range r.created {
		if filter.CustomerID != "" && o.CustomerID != filter.CustomerID {
			continue
		}
		if filter.ProviderID != "" && o.ProviderID != filter.ProviderID {
			continue
		}
		if filter.Status != "" && string(o.Status) != filter.Status {
			continue
		}
		out = append(out, o)
	}
	return out, int64(len(out)), nil
}

type stubMealRepo struct {
	meals map[string]*domain.Meal
}

func newStubMealRepo(meals ...*domain.Meal) *stubMealRepo {
	r := &stubMealRepo{meals: make(map[string]*domain.Meal)}
	for _, m := range meals {
		r.meals[m.ID] = m
	}
	return r
}

func (r *stubMealRepo) Create(_ context.Context, m *domain.Meal) (*domain.Meal, error) {
	m.ID = "meal_" + strconv.Itoa(len(r.meals)+1)
	r.meals[m.ID] = m
	return m, nil
}

func (r *stubMealRepo) FindByID(_ context.Context, id string) (*domain.Meal, error) {
	m, ok := r.meals[id]
	if !ok {
		return nil, domain.ErrMealNotFound
	}
	return m, nil
}

func (r *stubMealRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.Meal, error) {
	var out []*domain.Meal
	for _, id := range ids {
		if m, ok := r.meals[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubMealRepo) List(_ context.Context, _ ports.ListMealsFilter) ([]*domain.Meal, int64, error) {
	var out []*domain.Meal
	for _, m := range r.meals {
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func (r *stubMealRepo) Update(_ context.Context, m *domain.Meal, providerID string) error {
	existing, ok := r.meals[m.ID]
	if !ok || (providerID != "" && existing.ProviderID != providerID) {
		return domain.ErrMealNotFound
	}
	r.meals[m.ID] = m
	return nil
}

func (r *stubMealRepo) Delete(_ context.Context, id, providerID string) error {
	existing, ok := r.meals[id]
	if !ok || (providerID != "" && existing.ProviderID != providerID) {
		return domain.ErrMealNotFound
	}
	delete(r.meals, id)
	return nil
}

type stubProviderRepo struct {
	providers map[string]*domain.Provider
}

func newStubProviderRepo(providers ...*domain.Provider) *stubProviderRepo {
	r := &stubProviderRepo{providers: make(map[string]*domain.Provider)}
	for _, p := range providers {
		r.providers[p.ID] = p
	}
	return r
}

func (r *stubProviderRepo) Create(_ context.Context, p *domain.Provider) (*domain.Provider, error) {
	p.ID = "prov_" + strconv.Itoa(len(r.providers)+1)
	r.providers[p.ID] = p
	return p, nil
}

func (r *stubProviderRepo) FindByID(_ context.Context, id string) (*domain.Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, domain.ErrProviderNotFound
	}
	return p, nil
}

func (r *stubProviderRepo) List(_ context.Context, _, _ int) ([]*domain.Provider, int64, error) {
	var out []*domain.Provider
	for _, p := range r.providers {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func availableMeal(id, providerID string, price float64) *domain.Meal {
	return &domain.Meal{
		ID:          id,
		Title:       "Meal " + id,
		Price:       price,
		IsAvailable: true,
		ProviderID:  providerID,
	}
}

func newOrderSvc(orders *stubOrderRepo, meals *stubMealRepo, providers *stubProviderRepo) *OrderService {
	return NewOrderService(orders, meals, providers, zerolog.Nop())
}

func placedInput() ports.PlaceOrderInput {
	return ports.PlaceOrderInput{
		CustomerID:      "cust_1",
		ProviderID:      "prov_1",
		DeliveryAddress: "12 Baker Street",
		Items: []ports.OrderItemInput{
			{MealID: "m1", Quantity: 2},
			{MealID: "m2", Quantity: 1},
		},
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestOrderService_PlaceOrder_PricesFromCatalogue(t *testing.T) {
	orders := newStubOrderRepo()
	meals := newStubMealRepo(availableMeal("m1", "prov_1", 10), availableMeal("m2", "prov_1", 12))
	providers := newStubProviderRepo(&domain.Provider{ID: "prov_1", RestaurantName: "Burger House"})

	svc := newOrderSvc(orders, meals, providers)
	result, err := svc.PlaceOrder(context.Background(), placedInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalPrice != 32 {
		t.Errorf("expected server-side total 32, got %v", result.TotalPrice)
	}
	if result.Status != string(domain.StatusPlaced) {
		t.Errorf("expected status PLACED, got %s", result.Status)
	}

	created := orders.created[0]
	if created.ProviderName != "Burger House" {
		t.Errorf("expected provider name captured, got %s", created.ProviderName)
	}
	if len(created.StatusHistory) != 1 || created.StatusHistory[0].Status != domain.StatusPlaced {
		t.Errorf("expected history seeded with PLACED, got %v", created.StatusHistory)
	}
	if created.StatusHistory[0].Source != "checkout" {
		t.Errorf("expected placement history entry sourced from checkout, got %q", created.StatusHistory[0].Source)
	}
}

func TestOrderService_PlaceOrder_EmptyOrderRejected(t *testing.T) {
	svc := newOrderSvc(newStubOrderRepo(), newStubMealRepo(), newStubProviderRepo())

	_, err := svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{CustomerID: "cust_1", ProviderID: "prov_1"})
	if !errors.Is(err, domain.ErrEmptyOrder) {
		t.Errorf("expected ErrEmptyOrder, got %v", err)
	}
}

func TestOrderService_PlaceOrder_UnknownMealRejectsOrder(t *testing.T) {
	orders := newStubOrderRepo()
	meals := newStubMealRepo(availableMeal("m1", "prov_1", 10)) // m2 missing
	providers := newStubProviderRepo(&domain.Provider{ID: "prov_1", RestaurantName: "Burger House"})

	svc := newOrderSvc(orders, meals, providers)
	_, err := svc.PlaceOrder(context.Background(), placedInput())

	if !errors.Is(err, domain.ErrMealNotFound) {
		t.Errorf("expected ErrMealNotFound, got %v", err)
	}
	if len(orders.created) != 0 {
		t.Error("expected no order created when a meal is unknown")
	}
}

func TestOrderService_PlaceOrder_UnavailableMealRejected(t *testing.T) {
	m2 := availableMeal("m2", "prov_1", 12)
	m2.IsAvailable = false
	meals := newStubMealRepo(availableMeal("m1", "prov_1", 10), m2)
	providers := newStubProviderRepo(&domain.Provider{ID: "prov_1", RestaurantName: "Burger House"})

	svc := newOrderSvc(newStubOrderRepo(), meals, providers)
	_, err := svc.PlaceOrder(context.Background(), placedInput())

	if !errors.Is(err, domain.ErrMealUnavailable) {
		t.Errorf("expected ErrMealUnavailable, got %v", err)
	}
}

func TestOrderService_PlaceOrder_WrongProviderMealRejected(t *testing.T) {
	meals := newStubMealRepo(availableMeal("m1", "prov_1", 10), availableMeal("m2", "prov_2", 12))
	providers := newStubProviderRepo(&domain.Provider{ID: "prov_1", RestaurantName: "Burger House"})

	svc := newOrderSvc(newStubOrderRepo(), meals, providers)
	_, err := svc.PlaceOrder(context.Background(), placedInput())

	if !errors.Is(err, domain.ErrMealNotFound) {
		t.Errorf("expected ErrMealNotFound for another provider's meal, got %v", err)
	}
}

func TestOrderService_PlaceOrder_IdempotentReplay(t *testing.T) {
	orders := newStubOrderRepo()
	meals := newStubMealRepo(availableMeal("m1", "prov_1", 10), availableMeal("m2", "prov_1", 12))
	providers := newStubProviderRepo(&domain.Provider{ID: "prov_1", RestaurantName: "Burger House"})

	svc := newOrderSvc(orders, meals, providers)
	input := placedInput()
	input.IdempotencyKey = "key-123"

	first, err := svc.PlaceOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.PlaceOrder(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error on replay: %v", err)
	}

	if !second.AlreadyExisted {
		t.Error("expected replay to be flagged")
	}
	if second.OrderID != first.OrderID {
		t.Errorf("expected same order ID, got %s and %s", first.OrderID, second.OrderID)
	}
	if len(orders.created) != 1 {
		t.Errorf("expected exactly one order created, got %d", len(orders.created))
	}
}

func TestOrderService_GetOrder_Scoping(t *testing.T) {
	orders := newStubOrderRepo()
	meals := newStubMealRepo(availableMeal("m1", "prov_1", 10), availableMeal("m2", "prov_1", 12))
	providers := newStubProviderRepo(&domain.Provider{ID: "prov_1", RestaurantName: "Burger House"})

	svc := newOrderSvc(orders, meals, providers)
	result, err := svc.PlaceOrder(context.Background(), placedInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name    string
		input   ports.GetOrderInput
		wantErr error
	}{
		{"owner customer", ports.GetOrderInput{OrderID: result.OrderID, Role: domain.RoleCustomer, UserID: "cust_1"}, nil},
		{"other customer", ports.GetOrderInput{OrderID: result.OrderID, Role: domain.RoleCustomer, UserID: "cust_2"}, domain.ErrForbidden},
		{"owning provider", ports.GetOrderInput{OrderID: result.OrderID, Role: domain.RoleProvider, ProviderID: "prov_1"}, nil},
		{"other provider", ports.GetOrderInput{OrderID: result.OrderID, Role: domain.RoleProvider, ProviderID: "prov_2"}, domain.ErrForbidden},
		{"admin", ports.GetOrderInput{OrderID: result.OrderID, Role: domain.RoleAdmin}, nil},
	}

	for _, tc := range cases {
		_, err := svc.GetOrder(context.Background(), tc.input)
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
		}
	}
}

func TestOrderService_ListOrders_ScopesFilterByRole(t *testing.T) {
	orders := newStubOrderRepo()
	svc := newOrderSvc(orders, newStubMealRepo(), newStubProviderRepo())

	_, err := svc.ListOrders(context.Background(), ports.ListOrdersInput{
		Role:   domain.RoleCustomer,
		UserID: "cust_1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders.lastList.CustomerID != "cust_1" || orders.lastList.ProviderID != "" {
		t.Errorf("expected customer-scoped filter, got %+v", orders.lastList)
	}

	_, err = svc.ListOrders(context.Background(), ports.ListOrdersInput{
		Role:       domain.RoleProvider,
		ProviderID: "prov_1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders.lastList.ProviderID != "prov_1" || orders.lastList.CustomerID != "" {
		t.Errorf("expected provider-scoped filter, got %+v", orders.lastList)
	}

	_, err = svc.ListOrders(context.Background(), ports.ListOrdersInput{Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if orders.lastList.CustomerID != "" || orders.lastList.ProviderID != "" {
		t.Errorf("expected unscoped filter for admin, got %+v", orders.lastList)
	}
}

func TestOrderService_ListOrders_NormalizesPaging(t *testing.T) {
	orders := newStubOrderRepo()
	svc := newOrderSvc(orders, newStubMealRepo(), newStubProviderRepo())

	result, err := svc.ListOrders(context.Background(), ports.ListOrdersInput{
		Role:  domain.RoleAdmin,
		Page:  0,
		Limit: 1000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Page != 1 {
		t.Errorf("expected page normalised to 1, got %d", result.Page)
	}
	if result.Limit != 100 {
		t.Errorf("expected limit capped at 100, got %d", result.Limit)
	}
}
