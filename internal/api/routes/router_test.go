package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sorrisolabs/odonto-backend/internal/api/handlers"
	"github.com/sorrisolabs/odonto-backend/internal/api/middleware"
	"github.com/sorrisolabs/odonto-backend/internal/application/services"
	"github.com/sorrisolabs/odonto-backend/internal/domain/entities"
)

type fakeEquipmentRepo struct{}

func (fakeEquipmentRepo) List(ctx context.Context, page int) ([]*entities.Equipment, error) {
	return []*entities.Equipment{{ID: 1, Nome: "Autoclave", Unidades: 2}}, nil
}
func (fakeEquipmentRepo) Create(ctx context.Context, e *entities.Equipment) (int64, error) {
	return 1, nil
}
func (fakeEquipmentRepo) GetByID(ctx context.Context, id int64) (*entities.Equipment, error) {
	return &entities.Equipment{ID: id, Nome: "Autoclave", Unidades: 2}, nil
}
func (fakeEquipmentRepo) Update(ctx context.Context, id int64, e *entities.Equipment) error {
	return nil
}
func (fakeEquipmentRepo) Delete(ctx context.Context, id int64) error { return nil }
func (fakeEquipmentRepo) Search(ctx context.Context, text string) ([]*entities.Equipment, error) {
	return nil, nil
}

type fakeScheduleTypeRepo struct{}

func (fakeScheduleTypeRepo) ListTypes(ctx context.Context) ([]*entities.ScheduleType, error) {
	return []*entities.ScheduleType{{ID: 1, Nome: "Consulta"}}, nil
}

type fakePinger struct{}

func (fakePinger) Ping(ctx context.Context) error { return nil }

type fakeVerifier struct{}

func (fakeVerifier) Verify(token string) (int64, error) {
	if token == "valid" {
		return 4, nil
	}
	return 0, errors.New("bad token")
}

func testHandler(t *testing.T) http.Handler {
	t.Helper()

	equipmentHandler := handlers.NewCrudHandler(services.NewEquipmentService(fakeEquipmentRepo{}))
	scheduleHandler := handlers.NewScheduleHandler(services.NewScheduleService(nil, fakeScheduleTypeRepo{}))
	healthHandler := handlers.NewHealthHandler(fakePinger{})

	router := NewRouter(
		nil,
		equipmentHandler,
		nil,
		nil,
		nil,
		scheduleHandler,
		nil,
		nil,
		healthHandler,
		middleware.NewAuthMiddleware(fakeVerifier{}),
	)
	return router.SetupRoutes()
}

func TestHealthIsPublic(t *testing.T) {
	handler := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIRequiresToken(t *testing.T) {
	handler := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/equipamentos", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIAcceptsValidToken(t *testing.T) {
	handler := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/equipamentos", nil)
	req.Header.Set("Authorization", "Bearer valid")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Autoclave")
}

func TestLiteralRouteWinsOverID(t *testing.T) {
	handler := testHandler(t)

	// /api/agendas/tipos must reach the type lookup, not the {id} route
	req := httptest.NewRequest(http.MethodGet, "/api/agendas/tipos", nil)
	req.Header.Set("Authorization", "Bearer valid")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Consulta")
}

func TestPreflightSkipsAuth(t *testing.T) {
	handler := testHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/equipamentos", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}
