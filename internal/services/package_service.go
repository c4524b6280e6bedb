package services

import (
	"github.com/wanderhub/travel-api/internal/models"
)

type PackageService struct {
	store models.Store
}

func NewPackageService(store models.Store) *PackageService {
	return &PackageService{store: store}
}

func (s *PackageService) ListPackages() []models.Package {
	return s.store.ListPackages()
}

func (s *PackageService) ListFeaturedPackages() []models.Package {
	return s.store.ListFeaturedPackages()
}

func (s *PackageService) ListPackagesByCategory(category string) []models.Package {
	return s.store.ListPackagesByCategory(category)
}

func (s *PackageService) GetPackageBySlug(slug string) (models.Package, bool) {
	return s.store.GetPackageBySlug(slug)
}

func (s *PackageService) GetPackage(id int) (models.Package, bool) {
	return s.store.GetPackage(id)
}

func (s *PackageService) CreatePackage(in models.InsertPackage) models.Package {
	return s.store.CreatePackage(in)
}
