package service

import (
	"context"

	"smm-panel/internal/model"
	"smm-panel/internal/repository"
)

// In-memory repository fakes. A notConfigured fake behaves like a store
// started without MONGO_URL.

type fakeAdminRepo struct {
	notConfigured bool
	admins        map[string]*model.AdminUser
	created       []*model.AdminUser
}

func newFakeAdminRepo(admins ...*model.AdminUser) *fakeAdminRepo {
	repo := &fakeAdminRepo{admins: make(map[string]*model.AdminUser)}
	for _, admin := range admins {
		repo.admins[admin.Email] = admin
	}
	return repo
}

func (f *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*model.AdminUser, error) {
	if f.notConfigured {
		return nil, repository.ErrNotConfigured
	}
	admin, ok := f.admins[email]
	if !ok {
		return nil, nil
	}
	copied := *admin
	copied.ApplyDefaults()
	return &copied, nil
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *model.AdminUser) error {
	if f.notConfigured {
		return repository.ErrNotConfigured
	}
	f.admins[admin.Email] = admin
	f.created = append(f.created, admin)
	return nil
}

type fakeServiceRepo struct {
	notConfigured bool
	services      map[string]*model.Service
	created       []*model.Service
}

func newFakeServiceRepo(services ...*model.Service) *fakeServiceRepo {
	repo := &fakeServiceRepo{services: make(map[string]*model.Service)}
	for _, svc := range services {
		repo.services[svc.Name] = svc
	}
	return repo
}

func (f *fakeServiceRepo) GetByName(_ context.Context, name string) (*model.Service, error) {
	if f.notConfigured {
		return nil, repository.ErrNotConfigured
	}
	svc, ok := f.services[name]
	if !ok {
		return nil, nil
	}
	copied := *svc
	copied.ApplyDefaults()
	return &copied, nil
}

func (f *fakeServiceRepo) List(_ context.Context) ([]model.Service, error) {
	if f.notConfigured {
		return nil, repository.ErrNotConfigured
	}
	var services []model.Service
	for _, svc := range f.services {
		services = append(services, *svc)
	}
	return services, nil
}

func (f *fakeServiceRepo) Create(_ context.Context, svc *model.Service) error {
	if f.notConfigured {
		return repository.ErrNotConfigured
	}
	f.services[svc.Name] = svc
	f.created = append(f.created, svc)
	return nil
}

func (f *fakeServiceRepo) DeleteByName(_ context.Context, name string) (int64, error) {
	if f.notConfigured {
		return 0, repository.ErrNotConfigured
	}
	if _, ok := f.services[name]; !ok {
		return 0, nil
	}
	delete(f.services, name)
	return 1, nil
}

type fakeOrderRepo struct {
	notConfigured bool
	orders        []model.Order
	created       []*model.Order
}

func (f *fakeOrderRepo) List(_ context.Context) ([]model.Order, error) {
	if f.notConfigured {
		return nil, repository.ErrNotConfigured
	}
	return f.orders, nil
}

func (f *fakeOrderRepo) Create(_ context.Context, order *model.Order) error {
	if f.notConfigured {
		return repository.ErrNotConfigured
	}
	f.created = append(f.created, order)
	f.orders = append(f.orders, *order)
	return nil
}

type fakePaymentRepo struct {
	notConfigured bool
	payments      []model.Payment
	created       []*model.Payment
}

func (f *fakePaymentRepo) List(_ context.Context) ([]model.Payment, error) {
	if f.notConfigured {
		return nil, repository.ErrNotConfigured
	}
	return f.payments, nil
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *model.Payment) error {
	if f.notConfigured {
		return repository.ErrNotConfigured
	}
	f.created = append(f.created, payment)
	f.payments = append(f.payments, *payment)
	return nil
}

type fakeSettingsRepo struct {
	notConfigured bool
	doc           *model.PanelSettings
	replaced      []*model.PanelSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*model.PanelSettings, error) {
	if f.notConfigured {
		return nil, repository.ErrNotConfigured
	}
	if f.doc == nil {
		return nil, nil
	}
	copied := *f.doc
	copied.ApplyDefaults()
	return &copied, nil
}

func (f *fakeSettingsRepo) Replace(_ context.Context, settings *model.PanelSettings) error {
	if f.notConfigured {
		return repository.ErrNotConfigured
	}
	copied := *settings
	f.doc = &copied
	f.replaced = append(f.replaced, &copied)
	return nil
}
