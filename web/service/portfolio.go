package service

import (
	"github.com/evolvo-uz/evolvo/database"
	"github.com/evolvo-uz/evolvo/database/model"
)

// PortfolioService manages the public portfolio page.
type PortfolioService struct{}

func (s *PortfolioService) GetItems() ([]*model.PortfolioItem, error) {
	db := database.GetDB()
	var items []*model.PortfolioItem
	err := db.Model(model.PortfolioItem{}).
		Order("sort_order asc, id asc").
		Find(&items).
		Error
	return items, err
}

func (s *PortfolioService) GetItem(id int) (*model.PortfolioItem, error) {
	db := database.GetDB()
	item := &model.PortfolioItem{}
	err := db.Model(model.PortfolioItem{}).First(item, id).Error
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *PortfolioService) AddItem(item *model.PortfolioItem) error {
	db := database.GetDB()
	return db.Create(item).Error
}

func (s *PortfolioService) UpdateItem(item *model.PortfolioItem) error {
	db := database.GetDB()
	return db.Save(item).Error
}

func (s *PortfolioService) DeleteItem(id int) error {
	db := database.GetDB()
	return db.Delete(&model.PortfolioItem{}, id).Error
}
