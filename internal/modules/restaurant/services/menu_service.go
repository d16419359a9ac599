package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/modules/restaurant/models"
	"github.com/MuhamadAgungGumelar/resto-analytics-be/internal/modules/restaurant/repositories"
)

type MenuService struct {
	menuItemRepo repositories.MenuItemRepo
}

func NewMenuService(menuItemRepo repositories.MenuItemRepo) *MenuService {
	return &MenuService{menuItemRepo: menuItemRepo}
}

// ListItems returns every menu item, or only one group's when group is set.
func (s *MenuService) ListItems(ctx context.Context, group string) ([]models.MenuItem, error) {
	if group != "" {
		return s.menuItemRepo.ListByGroup(ctx, group)
	}
	return s.menuItemRepo.List(ctx)
}

func (s *MenuService) CreateItem(ctx context.Context, name, group string) (*models.MenuItem, error) {
	name, group = strings.TrimSpace(name), strings.TrimSpace(group)
	if name == "" || group == "" {
		return nil, errors.New("name and menu_group are required")
	}

	item := &models.MenuItem{Name: name, MenuGroup: group}
	if err := s.menuItemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return item, nil
}
