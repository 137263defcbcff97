package service

import (
	"github.com/evolvo-uz/evolvo/database"
	"github.com/evolvo-uz/evolvo/database/model"
)

// ClientService manages customer records in the back-office.
type ClientService struct{}

func (s *ClientService) GetClients() ([]*model.Client, error) {
	db := database.GetDB()
	var clients []*model.Client
	err := db.Model(model.Client{}).Order("name asc").Find(&clients).Error
	return clients, err
}

func (s *ClientService) GetClient(id int) (*model.Client, error) {
	db := database.GetDB()
	client := &model.Client{}
	err := db.Model(model.Client{}).First(client, id).Error
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) AddClient(client *model.Client) error {
	db := database.GetDB()
	return db.Create(client).Error
}

func (s *ClientService) UpdateClient(client *model.Client) error {
	db := database.GetDB()
	return db.Save(client).Error
}

func (s *ClientService) DeleteClient(id int) error {
	db := database.GetDB()
	return db.Delete(&model.Client{}, id).Error
}
