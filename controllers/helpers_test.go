package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/viplat/gamehub-api/config"
	"github.com/viplat/gamehub-api/models"
	"github.com/viplat/gamehub-api/stores"
	"github.com/viplat/gamehub-api/webpay"
	"gorm.io/datatypes"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testAuthCfg = config.AuthConfig{
	JWTSecret:     "test-secret",
	TokenDuration: time.Hour,
}

type fakeUserStore struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]models.User
}

func newFakeUserStore(users ...models.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[uint]models.User)}
	for _, u := range users {
		s.users[u.ID] = u
		if u.ID > s.nextID {
			s.nextID = u.ID
		}
	}
	return s
}

func (s *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return stores.ErrDuplicate
		}
	}
	s.nextID++
	user.ID = s.nextID
	s.users[user.ID] = *user
	return nil
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, stores.ErrNotFound
}

func (s *fakeUserStore) FindByID(ctx context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	return &u, nil
}

func (s *fakeUserStore) List(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *fakeUserStore) ToggleAdmin(ctx context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	u.IsAdmin = !u.IsAdmin
	s.users[id] = u
	return &u, nil
}

func (s *fakeUserStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.users)), nil
}

func (s *fakeUserStore) Recent(ctx context.Context, limit int) ([]models.User, error) {
	users, _ := s.List(ctx)
	if len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

type fakeGameStore struct {
	mu          sync.Mutex
	nextID      uint
	games       map[uint]models.Game
	searchCalls int
}

func newFakeGameStore(games ...models.Game) *fakeGameStore {
	s := &fakeGameStore{games: make(map[uint]models.Game)}
	for _, g := range games {
		s.games[g.ID] = g
		if g.ID > s.nextID {
			s.nextID = g.ID
		}
	}
	return s
}

func (s *fakeGameStore) List(ctx context.Context, filter models.GameFilter) ([]models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Game, 0, len(s.games))
	for _, g := range s.games {
		if filter.Category != "" && g.Category != filter.Category {
			continue
		}
		if filter.Platform != "" && g.Platform != filter.Platform {
			continue
		}
		if filter.OnSale && !g.OnSale {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

func (s *fakeGameStore) Get(ctx context.Context, id uint) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	return &g, nil
}

func (s *fakeGameStore) Create(ctx context.Context, game *models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	game.ID = s.nextID
	s.games[game.ID] = *game
	return nil
}

func (s *fakeGameStore) Update(ctx context.Context, id uint, updates map[string]any) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	if title, ok := updates["title"].(string); ok {
		g.Title = title
	}
	if price, ok := updates["price"].(float64); ok {
		g.Price = int(price)
	}
	if gallery, ok := updates["gallery"].(datatypes.JSON); ok {
		g.Gallery = gallery
	}
	s.games[id] = g
	return &g, nil
}

func (s *fakeGameStore) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return stores.ErrNotFound
	}
	delete(s.games, id)
	return nil
}

func (s *fakeGameStore) Search(ctx context.Context, query string) ([]models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchCalls++
	return []models.Game{}, nil
}

func (s *fakeGameStore) LowStock(ctx context.Context, threshold int) ([]models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Game
	for _, g := range s.games {
		if g.Stock < threshold {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *fakeGameStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.games)), nil
}

func (s *fakeGameStore) ReplaceAll(ctx context.Context, games []models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games = make(map[uint]models.Game)
	for i := range games {
		s.nextID++
		games[i].ID = s.nextID
		s.games[games[i].ID] = games[i]
	}
	return nil
}

type fakeCartStore struct {
	mu         sync.Mutex
	nextCartID uint
	nextItemID uint
	carts      map[uint]*models.Cart
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[uint]*models.Cart)}
}

func (s *fakeCartStore) FindByUser(ctx context.Context, userID uint) (*models.Cart, error) {
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

func (s *fakeCartStore) Create(ctx context.Context, userID uint) (*models.Cart, error) {
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

func (s *fakeCartStore) IncrementItem(ctx context.Context, cartID, gameID uint) (bool, error) {
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

func (s *fakeCartStore) InsertItem(ctx context.Context, cartID, gameID uint) error {
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

func (s *fakeCartStore) RemoveItem(ctx context.Context, cartID, itemID uint) (bool, error) {
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

func (s *fakeCartStore) ClearItems(ctx context.Context, cartID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cart := range s.carts {
		if cart.ID == cartID {
			cart.Items = []models.CartItem{}
		}
	}
	return nil
}

func (s *fakeCartStore) RemoveGameFromAllCarts(ctx context.Context, gameID uint) error {
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

type fakeWebpayClient struct {
	createCalls int
	commitCalls int
	created     webpay.CreateResponse
	committed   webpay.TransactionResponse
	status      webpay.TransactionResponse
	err         error
}

func (c *fakeWebpayClient) Create(ctx context.Context, buyOrder, sessionID string, amount int, returnURL string) (*webpay.CreateResponse, error) {
	c.createCalls++
	if c.err != nil {
		return nil, c.err
	}
	created := c.created
	return &created, nil
}

func (c *fakeWebpayClient) Commit(ctx context.Context, token string) (*webpay.TransactionResponse, error) {
	c.commitCalls++
	if c.err != nil {
		return nil, c.err
	}
	committed := c.committed
	return &committed, nil
}

func (c *fakeWebpayClient) Status(ctx context.Context, token string) (*webpay.TransactionResponse, error) {
	if c.err != nil {
		return nil, c.err
	}
	status := c.status
	return &status, nil
}

func jsonBody(t *testing.T, payload any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func doRequest(router *gin.Engine, method, path, token string, body *bytes.Reader) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, body)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeJSON(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}
