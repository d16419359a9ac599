package repositories

import (
	"context"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/modules/restaurant/models"
	"gorm.io/gorm"
)

type MenuItemRepo interface {
	Create(ctx context.Context, item *models.MenuItem) error
	List(ctx context.Context) ([]models.MenuItem, error)
	ListByGroup(ctx context.Context, group string) ([]models.MenuItem, error)
}

type menuItemRepo struct {
	db *gorm.DB
}

func NewMenuItemRepo(db *gorm.DB) MenuItemRepo {
	return &menuItemRepo{db: db}
}

func (r *menuItemRepo) Create(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuItemRepo) List(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.WithContext(ctx).Order("menu_group ASC").Order("name ASC").Find(&items).Error
	return items, err
}

func (r *menuItemRepo) ListByGroup(ctx context.Context, group string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.WithContext(ctx).Where("menu_group = ?", group).Order("name ASC").Find(&items).Error
	return items, err
}
