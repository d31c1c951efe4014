package controller

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"smm-panel/internal/config"
	"smm-panel/internal/model"
	"smm-panel/internal/repository"
	"smm-panel/internal/service"
)

// Controller tests run the real echo router and the real service layer over
// in-memory repository fakes.

type fakeAdminRepo struct {
	admins map[string]*model.AdminUser
}

func (f *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*model.AdminUser, error) {
	admin, ok := f.admins[email]
	if !ok {
		return nil, nil
	}
	copied := *admin
	copied.ApplyDefaults()
	return &copied, nil
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *model.AdminUser) error {
	f.admins[admin.Email] = admin
	return nil
}

type fakeServiceRepo struct {
	services map[string]*model.Service
}

func (f *fakeServiceRepo) GetByName(_ context.Context, name string) (*model.Service, error) {
	svc, ok := f.services[name]
	if !ok {
		return nil, nil
	}
	copied := *svc
	copied.ApplyDefaults()
	return &copied, nil
}

func (f *fakeServiceRepo) List(_ context.Context) ([]model.Service, error) {
	var services []model.Service
	for _, svc := range f.services {
		services = append(services, *svc)
	}
	return services, nil
}

func (f *fakeServiceRepo) Create(_ context.Context, svc *model.Service) error {
	f.services[svc.Name] = svc
	return nil
}

func (f *fakeServiceRepo) DeleteByName(_ context.Context, name string) (int64, error) {
	if _, ok := f.services[name]; !ok {
		return 0, nil
	}
	delete(f.services, name)
	return 1, nil
}

type fakeOrderRepo struct {
	orders []model.Order
}

func (f *fakeOrderRepo) List(_ context.Context) ([]model.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderRepo) Create(_ context.Context, order *model.Order) error {
	f.orders = append(f.orders, *order)
	return nil
}

type fakePaymentRepo struct {
	payments []model.Payment
}

func (f *fakePaymentRepo) List(_ context.Context) ([]model.Payment, error) {
	return f.payments, nil
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *model.Payment) error {
	f.payments = append(f.payments, *payment)
	return nil
}

type fakeSettingsRepo struct {
	doc *model.PanelSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*model.PanelSettings, error) {
	if f.doc == nil {
		return nil, nil
	}
	copied := *f.doc
	copied.ApplyDefaults()
	return &copied, nil
}

func (f *fakeSettingsRepo) Replace(_ context.Context, settings *model.PanelSettings) error {
	copied := *settings
	f.doc = &copied
	return nil
}

type testApp struct {
	e            *echo.Echo
	gate         echo.MiddlewareFunc
	adminRepo    *fakeAdminRepo
	serviceRepo  *fakeServiceRepo
	orderRepo    *fakeOrderRepo
	paymentRepo  *fakePaymentRepo
	settingsRepo *fakeSettingsRepo
}

func newTestApp() *testApp {
	app := &testApp{
		e:            echo.New(),
		adminRepo:    &fakeAdminRepo{admins: make(map[string]*model.AdminUser)},
		serviceRepo:  &fakeServiceRepo{services: make(map[string]*model.Service)},
		orderRepo:    &fakeOrderRepo{},
		paymentRepo:  &fakePaymentRepo{},
		settingsRepo: &fakeSettingsRepo{},
	}

	authService := service.NewAuthService(app.adminRepo, config.AuthConfig{TokenScheme: config.TokenSchemeEmail})
	adminGate := AdminAuth(authService)
	app.gate = adminGate

	NewAuthController(authService).RegisterRoutes(app.e)
	NewCatalogController(service.NewCatalogService(app.serviceRepo)).RegisterRoutes(app.e, adminGate)
	NewOrderController(service.NewOrderService(app.orderRepo, app.serviceRepo)).RegisterRoutes(app.e, adminGate)
	NewPaymentController(service.NewPaymentService(app.paymentRepo)).RegisterRoutes(app.e, adminGate)
	NewSettingsController(service.NewSettingsService(app.settingsRepo)).RegisterRoutes(app.e, adminGate)

	// Unconfigured store so /test reports not-configured.
	store, _ := repository.NewStore(context.Background(), "", "")
	NewHealthController(store).RegisterRoutes(app.e)

	return app
}

func (app *testApp) addAdmin(email string, active bool) {
	app.adminRepo.admins[email] = &model.AdminUser{
		Name:         "Panel Owner",
		Email:        email,
		PasswordHash: "hash-1",
		Role:         model.RoleOwner,
		IsActive:     &active,
	}
}

func (app *testApp) addService(name string, rate float64) {
	svc := &model.Service{Name: name, Category: "Instagram", RatePer1KPKR: rate}
	svc.ApplyDefaults()
	app.serviceRepo.services[name] = svc
}

func (app *testApp) request(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	app.e.ServeHTTP(rec, req)
	return rec
}

func adminHeader(token string) map[string]string {
	return map[string]string{adminTokenHeader: token}
}
