package service

import (
	"github.com/evolvo-uz/evolvo/database"
	"github.com/evolvo-uz/evolvo/database/model"
)

// CatalogService manages the public service catalog.
type CatalogService struct{}

// GetActiveServices lists catalog entries visible on the public site,
// featured entries first.
func (s *CatalogService) GetActiveServices() ([]*model.Service, error) {
	db := database.GetDB()
	var services []*model.Service
	err := db.Model(model.Service{}).
		Where("active = ?", true).
		Order("featured desc, id asc").
		Find(&services).
		Error
	return services, err
}

// GetAllServices lists every catalog entry for the back-office.
func (s *CatalogService) GetAllServices() ([]*model.Service, error) {
	db := database.GetDB()
	var services []*model.Service
	err := db.Model(model.Service{}).Order("id asc").Find(&services).Error
	return services, err
}

func (s *CatalogService) GetService(id int) (*model.Service, error) {
	db := database.GetDB()
	svc := &model.Service{}
	err := db.Model(model.Service{}).First(svc, id).Error
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// AddService stores a new catalog entry. Entries are visible by default;
// an explicit Active value, including false, is kept as given.
func (s *CatalogService) AddService(svc *model.Service) error {
	db := database.GetDB()
	if svc.Active == nil {
		active := true
		svc.Active = &active
	}
	return db.Create(svc).Error
}

// UpdateService saves changes to a catalog entry. When the update omits
// Active, the stored visibility is preserved.
func (s *CatalogService) UpdateService(svc *model.Service) error {
	db := database.GetDB()
	if svc.Active == nil {
		existing, err := s.GetService(svc.Id)
		if err != nil {
			return err
		}
		svc.Active = existing.Active
	}
	return db.Save(svc).Error
}

func (s *CatalogService) DeleteService(id int) error {
	db := database.GetDB()
	return db.Delete(&model.Service{}, id).Error
}
