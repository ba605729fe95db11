package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avelichko/mini-erp-cafe/internal/models"
	menurepo "github.com/avelichko/mini-erp-cafe/internal/server/menu/repository"
	"github.com/avelichko/mini-erp-cafe/internal/server/orders/dto"
	"github.com/avelichko/mini-erp-cafe/internal/server/orders/repository"
	userrepo "github.com/avelichko/mini-erp-cafe/internal/server/users/repository"
	"github.com/avelichko/mini-erp-cafe/pkg/logger"
)

type mockOrderRepo struct {
	orders     map[int64]*models.Order
	nextID     int64
	published  []dto.OrderEvent
	publishErr error
	totals     []repository.SummaryTotals
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[int64]*models.Order), nextID: 1}
}

func (m *mockOrderRepo) List(ctx context.Context, f repository.ListFilter) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.orders {
		if f.Status != nil && o.Status != *f.Status {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *mockOrderRepo) Create(ctx context.Context, order *models.Order) error {
	order.ID = m.nextID
	m.nextID++
	order.CreatedAt = time.Now().UTC()
	for i := range order.Items {
		order.Items[i].ID = int64(i + 1)
		order.Items[i].OrderID = order.ID
	}
	cp := *order
	m.orders[order.ID] = &cp
	return nil
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus, closedAt *time.Time) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	o.Status = status
	o.ClosedAt = closedAt
	cp := *o
	return &cp, nil
}

func (m *mockOrderRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.orders, id)
	return nil
}

func (m *mockOrderRepo) Summarize(ctx context.Context, f repository.SummaryFilter) ([]repository.SummaryTotals, error) {
	return m.totals, nil
}

func (m *mockOrderRepo) PublishOrderEvent(event dto.OrderEvent, channel string) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.published = append(m.published, event)
	return nil
}

type mockMenuRepo struct {
	items map[int64]models.MenuItem
}

func (m *mockMenuRepo) List(ctx context.Context, onlyAvailable bool) ([]models.MenuItem, error) {
	return nil, errors.New("not implemented")
}
func (m *mockMenuRepo) Create(ctx context.Context, item *models.MenuItem) error {
	return errors.New("not implemented")
}
func (m *mockMenuRepo) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, menurepo.ErrNotFound
	}
	return &item, nil
}
func (m *mockMenuRepo) GetByIDs(ctx context.Context, ids []int64) ([]models.MenuItem, error) {
	var out []models.MenuItem
	for _, id := range ids {
		if item, ok := m.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}
func (m *mockMenuRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.MenuItem, error) {
	return nil, errors.New("not implemented")
}

type mockUserRepo struct {
	users map[int64]models.User
}

func (m *mockUserRepo) List(ctx context.Context) ([]models.User, error) {
	return nil, errors.New("not implemented")
}
func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return errors.New("not implemented")
}
func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, userrepo.ErrNotFound
	}
	return &u, nil
}

func newUseCase(repo *mockOrderRepo, menu *mockMenuRepo, users *mockUserRepo) *UseCase {
	log, _ := logger.NewLoggerFromEnv("test")
	return NewUseCase(UseCase{
		Repo:          repo,
		MenuRepo:      menu,
		UserRepo:      users,
		EventsChannel: "order-events",
		Logger:        log,
	})
}

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestCreateOrderSnapshotsMenuPrice(t *testing.T) {
	repo := newMockOrderRepo()
	menu := &mockMenuRepo{items: map[int64]models.MenuItem{
		3: {ID: 3, Name: "cappuccino", Price: price("3.50"), IsAvailable: true},
	}}
	users := &mockUserRepo{users: map[int64]models.User{1: {ID: 1, Username: "cashier"}}}

	uc := newUseCase(repo, menu, users)
	res := uc.CreateOrder(context.Background(), &dto.CreateOrderRequest{
		UserID: 1,
		Items:  []dto.OrderItemRequest{{MenuItemID: 3, Quantity: 2}},
	})

	if res.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", res.Code, res.Message)
	}

	order := res.Data.(dto.OrderResponse)
	if order.Status != string(models.OrderStatusOpen) {
		t.Errorf("expected new order to be open, got %s", order.Status)
	}
	if len(order.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(order.Items))
	}
	if !order.Items[0].Price.Equal(price("3.50")) {
		t.Errorf("expected snapshotted price 3.50, got %s", order.Items[0].Price)
	}

	if len(repo.published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(repo.published))
	}
	if repo.published[0].Type != dto.EventOrderCreated {
		t.Errorf("expected %s event, got %s", dto.EventOrderCreated, repo.published[0].Type)
	}
	if repo.published[0].EventID == "" {
		t.Error("expected event id to be set")
	}
}

func TestCreateOrderRejectsUnknownMenuItem(t *testing.T) {
	repo := newMockOrderRepo()
	menu := &mockMenuRepo{items: map[int64]models.MenuItem{}}
	users := &mockUserRepo{users: map[int64]models.User{1: {ID: 1}}}

	uc := newUseCase(repo, menu, users)
	res := uc.CreateOrder(context.Background(), &dto.CreateOrderRequest{
		UserID: 1,
		Items:  []dto.OrderItemRequest{{MenuItemID: 99, Quantity: 1}},
	})

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
	if len(repo.orders) != 0 {
		t.Error("expected no order to be created")
	}
}

func TestCreateOrderRejectsUnavailableMenuItem(t *testing.T) {
	repo := newMockOrderRepo()
	menu := &mockMenuRepo{items: map[int64]models.MenuItem{
		3: {ID: 3, Name: "seasonal pie", Price: price("5.00"), IsAvailable: false},
	}}
	users := &mockUserRepo{users: map[int64]models.User{1: {ID: 1}}}

	uc := newUseCase(repo, menu, users)
	res := uc.CreateOrder(context.Background(), &dto.CreateOrderRequest{
		UserID: 1,
		Items:  []dto.OrderItemRequest{{MenuItemID: 3, Quantity: 1}},
	})

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}

func TestCreateOrderRejectsUnknownUser(t *testing.T) {
	repo := newMockOrderRepo()
	menu := &mockMenuRepo{items: map[int64]models.MenuItem{}}
	users := &mockUserRepo{users: map[int64]models.User{}}

	uc := newUseCase(repo, menu, users)
	res := uc.CreateOrder(context.Background(), &dto.CreateOrderRequest{
		UserID: 42,
		Items:  []dto.OrderItemRequest{{MenuItemID: 1, Quantity: 1}},
	})

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}

func TestCreateOrderSucceedsWhenEventPublishFails(t *testing.T) {
	repo := newMockOrderRepo()
	repo.publishErr = errors.New("redis is down")
	menu := &mockMenuRepo{items: map[int64]models.MenuItem{
		3: {ID: 3, Name: "cappuccino", Price: price("3.50"), IsAvailable: true},
	}}
	users := &mockUserRepo{users: map[int64]models.User{1: {ID: 1, Username: "cashier"}}}

	uc := newUseCase(repo, menu, users)
	res := uc.CreateOrder(context.Background(), &dto.CreateOrderRequest{
		UserID: 1,
		Items:  []dto.OrderItemRequest{{MenuItemID: 3, Quantity: 1}},
	})

	if res.Code != http.StatusCreated {
		t.Fatalf("expected 201 despite publish failure, got %d (%s)", res.Code, res.Message)
	}
	if len(repo.orders) != 1 {
		t.Errorf("expected the order to be persisted, got %d orders", len(repo.orders))
	}
}

func TestUpdateOrderSucceedsWhenEventPublishFails(t *testing.T) {
	repo := newMockOrderRepo()
	repo.publishErr = errors.New("redis is down")
	repo.orders[7] = &models.Order{ID: 7, UserID: 1, Status: models.OrderStatusOpen}

	uc := newUseCase(repo, &mockMenuRepo{}, &mockUserRepo{})

	status := string(models.OrderStatusDone)
	res := uc.UpdateOrder(context.Background(), 7, &dto.UpdateOrderRequest{Status: &status})

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 despite publish failure, got %d (%s)", res.Code, res.Message)
	}
	if repo.orders[7].Status != models.OrderStatusDone {
		t.Errorf("expected status to be updated, got %s", repo.orders[7].Status)
	}
}

func TestUpdateOrderToDoneSetsClosedAt(t *testing.T) {
	repo := newMockOrderRepo()
	repo.orders[7] = &models.Order{ID: 7, UserID: 1, Status: models.OrderStatusInProgress}
	repo.nextID = 8

	uc := newUseCase(repo, &mockMenuRepo{}, &mockUserRepo{})

	status := string(models.OrderStatusDone)
	res := uc.UpdateOrder(context.Background(), 7, &dto.UpdateOrderRequest{Status: &status})

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", res.Code, res.Message)
	}

	order := res.Data.(dto.OrderResponse)
	if order.Status != "done" {
		t.Errorf("expected done, got %s", order.Status)
	}
	if order.ClosedAt == nil {
		t.Error("expected closed_at to be set for terminal status")
	}

	if len(repo.published) != 1 || repo.published[0].Type != dto.EventOrderStatusChanged {
		t.Errorf("expected one status_changed event, got %+v", repo.published)
	}
}

func TestUpdateOrderReopeningClearsClosedAt(t *testing.T) {
	repo := newMockOrderRepo()
	closed := time.Now().UTC()
	repo.orders[7] = &models.Order{ID: 7, UserID: 1, Status: models.OrderStatusDone, ClosedAt: &closed}

	uc := newUseCase(repo, &mockMenuRepo{}, &mockUserRepo{})

	status := string(models.OrderStatusOpen)
	res := uc.UpdateOrder(context.Background(), 7, &dto.UpdateOrderRequest{Status: &status})

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	order := res.Data.(dto.OrderResponse)
	if order.ClosedAt != nil {
		t.Error("expected closed_at to be cleared when reopening")
	}
}

func TestUpdateOrderSameStatusPublishesNothing(t *testing.T) {
	repo := newMockOrderRepo()
	repo.orders[7] = &models.Order{ID: 7, UserID: 1, Status: models.OrderStatusOpen}

	uc := newUseCase(repo, &mockMenuRepo{}, &mockUserRepo{})

	status := string(models.OrderStatusOpen)
	res := uc.UpdateOrder(context.Background(), 7, &dto.UpdateOrderRequest{Status: &status})

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if len(repo.published) != 0 {
		t.Errorf("expected no events for a no-op update, got %d", len(repo.published))
	}
}

func TestUpdateOrderNotFound(t *testing.T) {
	uc := newUseCase(newMockOrderRepo(), &mockMenuRepo{}, &mockUserRepo{})

	status := string(models.OrderStatusDone)
	res := uc.UpdateOrder(context.Background(), 404, &dto.UpdateOrderRequest{Status: &status})

	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.Code)
	}
}

func TestDeleteOrderNotFound(t *testing.T) {
	uc := newUseCase(newMockOrderRepo(), &mockMenuRepo{}, &mockUserRepo{})

	res := uc.DeleteOrder(context.Background(), 404)
	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.Code)
	}
}

func TestSummaryComputesAverageCheck(t *testing.T) {
	repo := newMockOrderRepo()
	repo.totals = []repository.SummaryTotals{
		{Group: "done", CountOrders: 3, TotalRevenue: price("21.00")},
		{Group: "open", CountOrders: 2, TotalRevenue: price("7.01")},
	}

	uc := newUseCase(repo, &mockMenuRepo{}, &mockUserRepo{})

	res := uc.Summary(context.Background(), repository.SummaryFilter{GroupBy: "status"})
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	summary := res.Data.(dto.SummaryResponse)
	if summary.GroupBy != "status" {
		t.Errorf("expected group_by status, got %s", summary.GroupBy)
	}
	if len(summary.Results) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(summary.Results))
	}
	if !summary.Results[0].AverageCheck.Equal(price("7.00")) {
		t.Errorf("expected average check 7.00, got %s", summary.Results[0].AverageCheck)
	}
	if !summary.Results[1].AverageCheck.Equal(price("3.51")) {
		t.Errorf("expected average check rounded to 3.51, got %s", summary.Results[1].AverageCheck)
	}
}

func TestSummaryUngroupedEmpty(t *testing.T) {
	repo := newMockOrderRepo()
	repo.totals = []repository.SummaryTotals{{CountOrders: 0, TotalRevenue: decimal.Zero}}

	uc := newUseCase(repo, &mockMenuRepo{}, &mockUserRepo{})

	res := uc.Summary(context.Background(), repository.SummaryFilter{})
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}

	summary := res.Data.(dto.SummaryResponse)
	if summary.CountOrders != 0 {
		t.Errorf("expected 0 orders, got %d", summary.CountOrders)
	}
	if !summary.AverageCheck.Equal(decimal.Zero) {
		t.Errorf("expected zero average check, got %s", summary.AverageCheck)
	}
	if summary.Status != "all" {
		t.Errorf("expected status all, got %s", summary.Status)
	}
}
