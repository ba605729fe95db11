package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avelichko/mini-erp-cafe/internal/models"
	"github.com/avelichko/mini-erp-cafe/internal/server/menu/dto"
	"github.com/avelichko/mini-erp-cafe/internal/server/menu/repository"
	"github.com/avelichko/mini-erp-cafe/pkg/cache"
	"github.com/avelichko/mini-erp-cafe/pkg/logger"
)

type mockRepo struct {
	items     map[int64]models.MenuItem
	nextID    int64
	listCalls int
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[int64]models.MenuItem), nextID: 1}
}

func (m *mockRepo) List(ctx context.Context, onlyAvailable bool) ([]models.MenuItem, error) {
	m.listCalls++
	var out []models.MenuItem
	for _, item := range m.items {
		if onlyAvailable && !item.IsAvailable {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (m *mockRepo) Create(ctx context.Context, item *models.MenuItem) error {
	item.ID = m.nextID
	m.nextID++
	m.items[item.ID] = *item
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &item, nil
}

func (m *mockRepo) GetByIDs(ctx context.Context, ids []int64) ([]models.MenuItem, error) {
	var out []models.MenuItem
	for _, id := range ids {
		if item, ok := m.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *mockRepo) Update(ctx context.Context, id int64, updates map[string]interface{}) (*models.MenuItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if v, ok := updates["name"]; ok {
		item.Name = v.(string)
	}
	if v, ok := updates["price"]; ok {
		item.Price = v.(decimal.Decimal)
	}
	if v, ok := updates["is_available"]; ok {
		item.IsAvailable = v.(bool)
	}
	m.items[id] = item
	return &item, nil
}

// fakeCache is an in-memory cache.Cache for tests
type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	raw, ok := f.entries[key]
	if !ok {
		return cache.ErrMiss
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = raw
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

func (f *fakeCache) Close() error { return nil }

func newTestUseCase(repo repository.Repository, c cache.Cache) *UseCase {
	log, _ := logger.NewLoggerFromEnv("test")
	return NewUseCase(UseCase{
		Repo:     repo,
		Cache:    c,
		CacheTTL: time.Minute,
		Logger:   log,
	})
}

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestListMenuPopulatesAndServesCache(t *testing.T) {
	repo := newMockRepo()
	repo.items[1] = models.MenuItem{ID: 1, Name: "espresso", Price: price("2.00"), IsAvailable: true}
	c := newFakeCache()

	uc := newTestUseCase(repo, c)

	// First call misses the cache and hits the database
	res := uc.ListMenu(context.Background(), false)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected 1 repo call, got %d", repo.listCalls)
	}

	// Second call is served from the cache
	res = uc.ListMenu(context.Background(), false)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if repo.listCalls != 1 {
		t.Errorf("expected cached response, repo called %d times", repo.listCalls)
	}

	menu := res.Data.(dto.ListMenuResponse)
	if menu.Total != 1 || menu.Items[0].Name != "espresso" {
		t.Errorf("unexpected cached menu: %+v", menu)
	}
}

func TestListMenuWithoutCacheFallsBackToDatabase(t *testing.T) {
	repo := newMockRepo()
	repo.items[1] = models.MenuItem{ID: 1, Name: "espresso", Price: price("2.00"), IsAvailable: true}

	uc := newTestUseCase(repo, nil)

	res := uc.ListMenu(context.Background(), false)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if repo.listCalls != 1 {
		t.Errorf("expected 1 repo call, got %d", repo.listCalls)
	}
}

func TestCreateMenuItemInvalidatesCache(t *testing.T) {
	repo := newMockRepo()
	c := newFakeCache()
	uc := newTestUseCase(repo, c)

	// Warm the cache
	uc.ListMenu(context.Background(), false)
	if _, ok := c.entries[cacheKeyMenuAll]; !ok {
		t.Fatal("expected cache to be warm")
	}

	res := uc.CreateMenuItem(context.Background(), &dto.CreateMenuItemRequest{
		Name:        "flat white",
		Category:    "coffee",
		Price:       price("3.20"),
		IsAvailable: true,
	})
	if res.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", res.Code, res.Message)
	}

	if _, ok := c.entries[cacheKeyMenuAll]; ok {
		t.Error("expected cache to be invalidated after create")
	}
}

func TestCreateMenuItemRejectsNonPositivePrice(t *testing.T) {
	uc := newTestUseCase(newMockRepo(), nil)

	res := uc.CreateMenuItem(context.Background(), &dto.CreateMenuItemRequest{
		Name:  "free coffee",
		Price: decimal.Zero,
	})
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}

func TestUpdateMenuItemNotFound(t *testing.T) {
	uc := newTestUseCase(newMockRepo(), nil)

	name := "renamed"
	res := uc.UpdateMenuItem(context.Background(), 99, &dto.UpdateMenuItemRequest{Name: &name})
	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.Code)
	}
}

func TestUpdateMenuItemNoFields(t *testing.T) {
	uc := newTestUseCase(newMockRepo(), nil)

	res := uc.UpdateMenuItem(context.Background(), 1, &dto.UpdateMenuItemRequest{})
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}

func TestRefreshCacheWarmsBothKeys(t *testing.T) {
	repo := newMockRepo()
	repo.items[1] = models.MenuItem{ID: 1, Name: "espresso", Price: price("2.00"), IsAvailable: true}
	repo.items[2] = models.MenuItem{ID: 2, Name: "seasonal pie", Price: price("5.00"), IsAvailable: false}
	c := newFakeCache()

	uc := newTestUseCase(repo, c)

	if err := uc.RefreshCache(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var all, available dto.ListMenuResponse
	if err := c.GetJSON(context.Background(), cacheKeyMenuAll, &all); err != nil {
		t.Fatalf("expected menu:all to be warm: %v", err)
	}
	if err := c.GetJSON(context.Background(), cacheKeyMenuAvailable, &available); err != nil {
		t.Fatalf("expected menu:available to be warm: %v", err)
	}
	if all.Total != 2 {
		t.Errorf("expected 2 items in full menu, got %d", all.Total)
	}
	if available.Total != 1 {
		t.Errorf("expected 1 available item, got %d", available.Total)
	}
}
