package services

import (
	"github.com/wanderhub/travel-api/internal/models"
)

type ContactService struct {
	store models.Store
}

func NewContactService(store models.Store) *ContactService {
	return &ContactService{store: store}
}

func (s *ContactService) ListContacts() []models.Contact {
	return s.store.ListContacts()
}

func (s *ContactService) CreateContact(in models.InsertContact) models.Contact {
	return s.store.CreateContact(in)
}
