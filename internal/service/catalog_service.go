package service

import (
	"context"
	"errors"

	"smm-panel/internal/model"
	"smm-panel/internal/repository"
)

type CatalogService interface {
	ListServices(ctx context.Context) ([]model.Service, error)
	CreateService(ctx context.Context, service *model.Service) error
	DeleteService(ctx context.Context, name string) (int64, error)
}

type DefaultCatalogService struct {
	serviceRepo repository.ServiceRepository
}

func NewCatalogService(serviceRepo repository.ServiceRepository) CatalogService {
	return &DefaultCatalogService{
		serviceRepo: serviceRepo,
	}
}

// ListServices returns the catalog, degrading to an empty list when storage
// is not configured so the public storefront keeps rendering.
func (s *DefaultCatalogService) ListServices(ctx context.Context) ([]model.Service, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotConfigured) {
			return []model.Service{}, nil
		}
		return nil, err
	}
	if services == nil {
		services = []model.Service{}
	}
	return services, nil
}

// CreateService inserts the service as given. Duplicate names are allowed;
// uniqueness is an application-level convention, not a storage constraint.
func (s *DefaultCatalogService) CreateService(ctx context.Context, service *model.Service) error {
	if err := s.serviceRepo.Create(ctx, service); err != nil {
		if errors.Is(err, repository.ErrNotConfigured) {
			return ErrDatabaseNotConfigured
		}
		return err
	}
	return nil
}

// DeleteService removes all services with the given name and returns how
// many were deleted. A nonexistent name yields 0, not an error.
func (s *DefaultCatalogService) DeleteService(ctx context.Context, name string) (int64, error) {
	deleted, err := s.serviceRepo.DeleteByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotConfigured) {
			return 0, ErrDatabaseNotConfigured
		}
		return 0, err
	}
	return deleted, nil
}
