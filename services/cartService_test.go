package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viplat/gamehub-api/apperror"
	"github.com/viplat/gamehub-api/models"
	"github.com/viplat/gamehub-api/stores"
)

type memGameStore struct {
	mu    sync.Mutex
	games map[uint]models.Game
}

func newMemGameStore(games ...models.Game) *memGameStore {
	s := &memGameStore{games: make(map[uint]models.Game)}
	for _, g := range games {
		s.games[g.ID] = g
	}
	return s
}

func (s *memGameStore) List(ctx context.Context, filter models.GameFilter) ([]models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Game, 0, len(s.games))
	for _, g := range s.games {
		out = append(out, g)
	}
	return out, nil
}

func (s *memGameStore) Get(ctx context.Context, id uint) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	return &g, nil
}

func (s *memGameStore) Create(ctx context.Context, game *models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = *game
	return nil
}

func (s *memGameStore) Update(ctx context.Context, id uint, updates map[string]any) (*models.Game, error) {
	return s.Get(ctx, id)
}

func (s *memGameStore) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return stores.ErrNotFound
	}
	delete(s.games, id)
	return nil
}

func (s *memGameStore) Search(ctx context.Context, query string) ([]models.Game, error) {
	return nil, nil
}

func (s *memGameStore) LowStock(ctx context.Context, threshold int) ([]models.Game, error) {
	return nil, nil
}

func (s *memGameStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.games)), nil
}

func (s *memGameStore) ReplaceAll(ctx context.Context, games []models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games = make(map[uint]models.Game)
	for _, g := range games {
		s.games[g.ID] = g
	}
	return nil
}

type memCartStore struct {
	mu         sync.Mutex
	nextCartID uint
	nextItemID uint
	carts      map[uint]*models.Cart
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[uint]*models.Cart)}
}

func (s *memCartStore) FindByUser(ctx context.Context, userID uint) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[userID]
	if !ok {
		return nil, stores.ErrNotFound
	}
	copied := *cart
	copied.Items = append([]models.CartItem(nil), cart.Items...)
	return &copied, nil
}

func (s *memCartStore) Create(ctx context.Context, userID uint) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.carts[userID]; ok {
		return nil, stores.ErrDuplicate
	}
	s.nextCartID++
	cart := &models.Cart{UserID: userID, Items: []models.CartItem{}}
	cart.ID = s.nextCartID
	s.carts[userID] = cart
	copied := *cart
	return &copied, nil
}

func (s *memCartStore) IncrementItem(ctx context.Context, cartID, gameID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cart := range s.carts {
		if cart.ID != cartID {
			continue
		}
		for i := range cart.Items {
			if cart.Items[i].GameID == gameID {
				cart.Items[i].Quantity++
				return true, nil
			}
		}
	}
	return false, nil
}

func (s *memCartStore) InsertItem(ctx context.Context, cartID, gameID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cart := range s.carts {
		if cart.ID != cartID {
			continue
		}
		for i := range cart.Items {
			if cart.Items[i].GameID == gameID {
				return stores.ErrDuplicate
			}
		}
		s.nextItemID++
		item := models.CartItem{CartID: cartID, GameID: gameID, Quantity: 1}
		item.ID = s.nextItemID
		cart.Items = append(cart.Items, item)
		return nil
	}
	return stores.ErrNotFound
}

func (s *memCartStore) RemoveItem(ctx context.Context, cartID, itemID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cart := range s.carts {
		if cart.ID != cartID {
			continue
		}
		for i := range cart.Items {
			if cart.Items[i].ID == itemID {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
				return true, nil
			}
		}
	}
	return false, nil
}

func (s *memCartStore) ClearItems(ctx context.Context, cartID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cart := range s.carts {
		if cart.ID == cartID {
			cart.Items = []models.CartItem{}
		}
	}
	return nil
}

func (s *memCartStore) RemoveGameFromAllCarts(ctx context.Context, gameID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cart := range s.carts {
		kept := cart.Items[:0]
		for _, item := range cart.Items {
			if item.GameID != gameID {
				kept = append(kept, item)
			}
		}
		cart.Items = kept
	}
	return nil
}

func testGame(id uint, title string) models.Game {
	g := models.Game{Title: title, Price: 49990}
	g.ID = id
	return g
}

func newTestCartService(games ...models.Game) (*CartService, *memCartStore) {
	carts := newMemCartStore()
	return NewCartService(newMemGameStore(games...), carts), carts
}

func TestGetCartWithoutAddsReturnsEmptyCart(t *testing.T) {
	svc, _ := newTestCartService()

	cart, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), cart.UserID)
	assert.Empty(t, cart.Items)
	assert.NotNil(t, cart.Items)
}

func TestAddItemCreatesCartOnFirstAdd(t *testing.T) {
	svc, _ := newTestCartService(testGame(1, "Hollow Knight"))

	cart, err := svc.AddItem(context.Background(), 7, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(1), cart.Items[0].GameID)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestAddItemMergesRepeatAddsIntoOneLine(t *testing.T) {
	svc, _ := newTestCartService(testGame(1, "Hollow Knight"))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 7, 1)
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, 7, 1)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestAddItemKeepsDistinctGamesOnDistinctLines(t *testing.T) {
	svc, _ := newTestCartService(testGame(1, "Hollow Knight"), testGame(2, "Celeste"), testGame(3, "Hades"))
	ctx := context.Background()

	for _, gameID := range []uint{1, 2, 3} {
		_, err := svc.AddItem(ctx, 7, gameID)
		require.NoError(t, err)
	}

	cart, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 3)
}

func TestAddItemUnknownGameIsNotFound(t *testing.T) {
	svc, _ := newTestCartService()

	_, err := svc.AddItem(context.Background(), 7, 99)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestConcurrentAddsOfSameGameLoseNoIncrement(t *testing.T) {
	svc, _ := newTestCartService(testGame(1, "Hollow Knight"))
	ctx := context.Background()

	const adds = 50
	var wg sync.WaitGroup
	errs := make(chan error, adds)
	for i := 0; i < adds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddItem(ctx, 7, 1)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	cart, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, adds, cart.Items[0].Quantity)
}

func TestRemoveItemDropsTheLine(t *testing.T) {
	svc, _ := newTestCartService(testGame(1, "Hollow Knight"), testGame(2, "Celeste"))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 7, 1)
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, 7, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)

	cart, err = svc.RemoveItem(ctx, 7, cart.Items[0].ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(2), cart.Items[0].GameID)
}

func TestRemoveItemUnknownItemIsNotFound(t *testing.T) {
	svc, _ := newTestCartService(testGame(1, "Hollow Knight"))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 7, 1)
	require.NoError(t, err)

	_, err = svc.RemoveItem(ctx, 7, 999)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestRemoveItemWithoutCartIsNotFound(t *testing.T) {
	svc, _ := newTestCartService()

	_, err := svc.RemoveItem(context.Background(), 7, 1)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestClearEmptiesAnExistingCart(t *testing.T) {
	svc, _ := newTestCartService(testGame(1, "Hollow Knight"))
	ctx := context.Background()

	_, err := svc.AddItem(ctx, 7, 1)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, 7))

	cart, err := svc.Get(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestClearBeforeAnyAddIsNotFound(t *testing.T) {
	svc, _ := newTestCartService()

	err := svc.Clear(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestRemoveGameEverywhereCascadesAcrossCarts(t *testing.T) {
	svc, _ := newTestCartService(testGame(1, "Hollow Knight"), testGame(2, "Celeste"))
	ctx := context.Background()

	for _, userID := range []uint{7, 8, 9} {
		_, err := svc.AddItem(ctx, userID, 1)
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, userID, 2)
		require.NoError(t, err)
	}

	require.NoError(t, svc.RemoveGameEverywhere(ctx, 1))

	for _, userID := range []uint{7, 8, 9} {
		cart, err := svc.Get(ctx, userID)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, uint(2), cart.Items[0].GameID)
	}
}
