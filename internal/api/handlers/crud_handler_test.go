package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sorrisolabs/odonto-backend/internal/application/services"
	"github.com/sorrisolabs/odonto-backend/internal/domain/entities"
	apperrors "github.com/sorrisolabs/odonto-backend/pkg/errors"
)

// Mocks

type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) List(ctx context.Context, page int) ([]*entities.Client, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Client), args.Error(1)
}

func (m *MockClientRepo) Create(ctx context.Context, entity *entities.Client) (int64, error) {
	args := m.Called(ctx, entity)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepo) GetByID(ctx context.Context, id int64) (*entities.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Client), args.Error(1)
}

func (m *MockClientRepo) Update(ctx context.Context, id int64, entity *entities.Client) error {
	args := m.Called(ctx, id, entity)
	return args.Error(0)
}

func (m *MockClientRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientRepo) Search(ctx context.Context, text string) ([]*entities.Client, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Client), args.Error(1)
}

func newClientHandler(repo *MockClientRepo) *CrudHandler[entities.Client] {
	return NewCrudHandler(services.NewClientService(repo))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

// Tests

func TestCrudList(t *testing.T) {
	repo := new(MockClientRepo)
	handler := newClientHandler(repo)

	rows := []*entities.Client{
		{ID: 1, Nome: "Maria Souza", CPF: "12345678900", DataNascimento: "1990-05-20", Sexo: "feminino"},
	}
	repo.On("List", mock.Anything, 1).Return(rows, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/clientes", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["values"], 1)
	meta := body["meta"].(map[string]any)
	assert.Equal(t, float64(1), meta["page"])
}

func TestCrudList_TableFormat(t *testing.T) {
	repo := new(MockClientRepo)
	handler := newClientHandler(repo)

	rows := []*entities.Client{
		{ID: 1, Nome: "Maria Souza", CPF: "12345678900", DataNascimento: "1990-05-20", Sexo: "feminino"},
	}
	repo.On("List", mock.Anything, 2).Return(rows, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/clientes?page=2&format=table", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	values := body["values"].([]any)
	row := values[0].(map[string]any)
	assert.Equal(t, "20/05/1990", row["dataNascimento"])
}

func TestCrudCreate(t *testing.T) {
	repo := new(MockClientRepo)
	handler := newClientHandler(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(int64(7), nil)

	payload := `{"nome":"Maria Souza","cpf":"12345678900","dataNascimento":"1990-05-20","sexo":"feminino"}`
	req := httptest.NewRequest(http.MethodPost, "/api/clientes", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(7), body["id"])
}

func TestCrudCreate_MissingFields(t *testing.T) {
	repo := new(MockClientRepo)
	handler := newClientHandler(repo)

	payload := `{"nome":"Maria Souza"}`
	req := httptest.NewRequest(http.MethodPost, "/api/clientes", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "missing required fields: cpf, dataNascimento, sexo", body["error"])
	repo.AssertNotCalled(t, "Create")
}

func TestCrudCreate_MalformedJSON(t *testing.T) {
	repo := new(MockClientRepo)
	handler := newClientHandler(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/clientes", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "Create")
}

func TestCrudGet(t *testing.T) {
	repo := new(MockClientRepo)
	handler := newClientHandler(repo)

	client := &entities.Client{ID: 7, Nome: "Maria Souza", CPF: "12345678900", DataNascimento: "1990-05-20", Sexo: "feminino"}
	repo.On("GetByID", mock.Anything, int64(7)).Return(client, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/clientes/7", nil)
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()
	handler.Get(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	values := body["values"].(map[string]any)
	assert.Equal(t, "Maria Souza", values["nome"])
}

func TestCrudGet_NotFound(t *testing.T) {
	repo := new(MockClientRepo)
	handler := newClientHandler(repo)

	repo.On("GetByID", mock.Anything, int64(99)).
		Return(nil, apperrors.NewNotFoundError("client with id 99 not found"))

	req := httptest.NewRequest(http.MethodGet, "/api/clientes/99", nil)
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()
	handler.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "client with id 99 not found", body["error"])
}

func TestCrudGet_BadID(t *testing.T) {
	repo := new(MockClientRepo)
	handler := newClientHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/clientes/abc", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()
	handler.Get(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "GetByID")
}

func TestCrudUpdate(t *testing.T) {
	repo := new(MockClientRepo)
	handler := newClientHandler(repo)

	repo.On("Update", mock.Anything, int64(7), mock.Anything).Return(nil)

	payload := `{"nome":"Maria Souza","cpf":"12345678900","dataNascimento":"1990-05-20","sexo":"feminino"}`
	req := httptest.NewRequest(http.MethodPut, "/api/clientes/7", strings.NewReader(payload))
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()
	handler.Update(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(7), body["id"])
}

func TestCrudRemove(t *testing.T) {
	repo := new(MockClientRepo)
	handler := newClientHandler(repo)

	repo.On("Delete", mock.Anything, int64(7)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/clientes/7", nil)
	req.SetPathValue("id", "7")
	rec := httptest.NewRecorder()
	handler.Remove(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCrudSearch(t *testing.T) {
	repo := new(MockClientRepo)
	handler := newClientHandler(repo)

	rows := []*entities.Client{
		{ID: 1, Nome: "Maria Souza", CPF: "12345678900", DataNascimento: "1990-05-20", Sexo: "feminino"},
	}
	repo.On("Search", mock.Anything, "mar").Return(rows, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/clientes/busca?texto=mar", nil)
	rec := httptest.NewRecorder()
	handler.Search(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Len(t, body["values"], 1)
}

func TestCrudSearch_MissingText(t *testing.T) {
	repo := new(MockClientRepo)
	handler := newClientHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/clientes/busca", nil)
	rec := httptest.NewRecorder()
	handler.Search(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "Search")
}
