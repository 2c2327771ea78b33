package services

import (
	"errors"
	"strings"

	"github.com/smartZeee/worker-side/entity"

	"gorm.io/gorm"
)

// MenuService จัดการ catalog ของเมนู (ฝั่ง admin)
// ความจริงเรื่อง sold out มีแหล่งเดียวคือ quantity == 0
type MenuService struct {
	menu MenuStore
	pub  Publisher
}

func NewMenuService(menu MenuStore, pub Publisher) *MenuService {
	if pub == nil {
		pub = NopPublisher{}
	}
	return &MenuService{menu: menu, pub: pub}
}

type CreateMenuItemReq struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	Tags        []string `json:"tags"`
	Quantity    int      `json:"quantity"`
}

func validTags(tags []string) bool {
	for _, t := range tags {
		if t != entity.TagVeg && t != entity.TagNonVeg {
			return false
		}
	}
	return true
}

func (s *MenuService) Create(req *CreateMenuItemReq) (*entity.MenuItem, error) {
	if req.Price < 0 || req.Quantity < 0 || !validTags(req.Tags) {
		return nil, ErrBadField
	}
	m := &entity.MenuItem{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		Category:    strings.TrimSpace(req.Category),
		ImageURL:    req.ImageURL,
		Tags:        entity.TagList(req.Tags),
		Quantity:    req.Quantity,
	}
	if err := s.menu.Create(m); err != nil {
		return nil, err
	}
	s.pub.Publish("menu", "created", m)
	return m, nil
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.menu.List()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	m, err := s.menu.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return m, nil
}

type UpdateMenuItemReq struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Category    *string   `json:"category"`
	ImageURL    *string   `json:"imageUrl"`
	Tags        *[]string `json:"tags"`
	Quantity    *int      `json:"quantity"`
}

func (s *MenuService) Update(id uint, req *UpdateMenuItemReq) (*entity.MenuItem, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrBadField
		}
		updates["price"] = *req.Price
	}
	if req.Category != nil {
		updates["category"] = strings.TrimSpace(*req.Category)
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Tags != nil {
		if !validTags(*req.Tags) {
			return nil, ErrBadField
		}
		updates["tags"] = strings.Join(*req.Tags, ",")
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, ErrBadField
		}
		updates["quantity"] = *req.Quantity
	}
	if len(updates) > 0 {
		if err := s.menu.Update(id, updates); err != nil {
			return nil, err
		}
	}

	m, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	s.pub.Publish("menu", "updated", m)
	return m, nil
}

// SetQuantity คือ quick stock control: ตั้ง quantity ตรง ๆ (0 = sold out)
func (s *MenuService) SetQuantity(id uint, quantity int) (*entity.MenuItem, error) {
	if quantity < 0 {
		return nil, ErrBadField
	}
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if err := s.menu.Update(id, map[string]any{"quantity": quantity}); err != nil {
		return nil, err
	}
	m, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	s.pub.Publish("menu", "updated", m)
	return m, nil
}

func (s *MenuService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.menu.Delete(id); err != nil {
		return err
	}
	s.pub.Publish("menu", "deleted", map[string]any{"id": id})
	return nil
}
