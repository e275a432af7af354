package stores

import (
	"context"
	"errors"
	"fmt"

	"github.com/viplat/gamehub-api/models"
	"gorm.io/gorm"
)

type BlogStore interface {
	List(ctx context.Context) ([]models.Blog, error)
	Get(ctx context.Context, id uint) (*models.Blog, error)
	ReplaceAll(ctx context.Context, blogs []models.Blog) error
}

type ContactStore interface {
	Create(ctx context.Context, contact *models.Contact) error
	Count(ctx context.Context) (int64, error)
}

type gormBlogStore struct {
	db *gorm.DB
}

func NewBlogStore(db *gorm.DB) BlogStore {
	return &gormBlogStore{db: db}
}

func (s *gormBlogStore) List(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&blogs).Error; err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return blogs, nil
}

func (s *gormBlogStore) Get(ctx context.Context, id uint) (*models.Blog, error) {
	var blog models.Blog
	if err := s.db.WithContext(ctx).First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return &blog, nil
}

func (s *gormBlogStore) ReplaceAll(ctx context.Context, blogs []models.Blog) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&models.Blog{}).Error; err != nil {
			return fmt.Errorf("failed to wipe blogs: %w", err)
		}
		if len(blogs) == 0 {
			return nil
		}
		if err := tx.Create(&blogs).Error; err != nil {
			return fmt.Errorf("failed to insert seed blogs: %w", err)
		}
		return nil
	})
}

type gormContactStore struct {
	db *gorm.DB
}

func NewContactStore(db *gorm.DB) ContactStore {
	return &gormContactStore{db: db}
}

func (s *gormContactStore) Create(ctx context.Context, contact *models.Contact) error {
	if err := s.db.WithContext(ctx).Create(contact).Error; err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	return nil
}

func (s *gormContactStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Contact{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return count, nil
}
