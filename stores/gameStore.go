package stores

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/viplat/gamehub-api/models"
	"gorm.io/gorm"
)

const searchLimit = 10

type GameStore interface {
	List(ctx context.Context, filter models.GameFilter) ([]models.Game, error)
	Get(ctx context.Context, id uint) (*models.Game, error)
	Create(ctx context.Context, game *models.Game) error
	Update(ctx context.Context, id uint, updates map[string]any) (*models.Game, error)
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, query string) ([]models.Game, error)
	LowStock(ctx context.Context, threshold int) ([]models.Game, error)
	Count(ctx context.Context) (int64, error)
	ReplaceAll(ctx context.Context, games []models.Game) error
}

type gormGameStore struct {
	db *gorm.DB
}

func NewGameStore(db *gorm.DB) GameStore {
	return &gormGameStore{db: db}
}

func (s *gormGameStore) List(ctx context.Context, filter models.GameFilter) ([]models.Game, error) {
	query := s.db.WithContext(ctx).Order("created_at DESC")
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Platform != "" {
		query = query.Where("platform = ?", filter.Platform)
	}
	if filter.OnSale {
		query = query.Where("on_sale = ?", true)
	}

	var games []models.Game
	if err := query.Find(&games).Error; err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

func (s *gormGameStore) Get(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	if err := s.db.WithContext(ctx).First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return &game, nil
}

func (s *gormGameStore) Create(ctx context.Context, game *models.Game) error {
	if err := s.db.WithContext(ctx).Create(game).Error; err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

func (s *gormGameStore) Update(ctx context.Context, id uint, updates map[string]any) (*models.Game, error) {
	game, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(game).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}
	return game, nil
}

func (s *gormGameStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Unscoped().Delete(&models.Game{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete game: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Search matches the query case-insensitively against title, developer,
// genre, platform and description, capped at searchLimit rows.
func (s *gormGameStore) Search(ctx context.Context, query string) ([]models.Game, error) {
	like := "%" + strings.ToLower(query) + "%"

	var games []models.Game
	err := s.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(developer) LIKE ? OR LOWER(genre) LIKE ? OR LOWER(platform) LIKE ? OR LOWER(description) LIKE ?",
			like, like, like, like, like).
		Limit(searchLimit).
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search games: %w", err)
	}
	return games, nil
}

func (s *gormGameStore) LowStock(ctx context.Context, threshold int) ([]models.Game, error) {
	var games []models.Game
	err := s.db.WithContext(ctx).
		Select("id", "title", "stock", "price").
		Where("stock < ?", threshold).
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock games: %w", err)
	}
	return games, nil
}

func (s *gormGameStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Game{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count games: %w", err)
	}
	return count, nil
}

// ReplaceAll wipes the catalog and inserts the given games in one transaction.
// Only the seed endpoint calls this.
func (s *gormGameStore) ReplaceAll(ctx context.Context, games []models.Game) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&models.Game{}).Error; err != nil {
			return fmt.Errorf("failed to wipe games: %w", err)
		}
		if len(games) == 0 {
			return nil
		}
		if err := tx.Create(&games).Error; err != nil {
			return fmt.Errorf("failed to insert seed games: %w", err)
		}
		return nil
	})
}
