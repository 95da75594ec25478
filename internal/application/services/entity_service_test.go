package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

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

func validClient() *entities.Client {
	return &entities.Client{
		Nome:           "Maria Souza",
		CPF:            "12345678900",
		DataNascimento: "1990-05-20",
		Sexo:           "feminino",
	}
}

// Tests

func TestEntityService_Create(t *testing.T) {
	repo := new(MockClientRepo)
	service := NewClientService(repo)

	client := validClient()
	repo.On("Create", mock.Anything, client).Return(int64(7), nil)

	id, err := service.Create(context.Background(), client)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)
	repo.AssertExpectations(t)
}

func TestEntityService_Create_MissingFields(t *testing.T) {
	repo := new(MockClientRepo)
	service := NewClientService(repo)

	client := validClient()
	client.CPF = ""
	client.Sexo = ""

	_, err := service.Create(context.Background(), client)

	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	assert.Equal(t, "missing required fields: cpf, sexo", appErr.Message)
	repo.AssertNotCalled(t, "Create")
}

func TestEntityService_List(t *testing.T) {
	repo := new(MockClientRepo)
	service := NewClientService(repo)

	rows := []*entities.Client{
		{ID: 1, Nome: "Maria Souza", CPF: "12345678900", DataNascimento: "1990-05-20", Sexo: "feminino"},
	}
	repo.On("List", mock.Anything, 2).Return(rows, nil)

	result, err := service.List(context.Background(), 2, false)

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Meta.Page)
	assert.Equal(t, rows, result.Values)
}

func TestEntityService_List_DefaultsPage(t *testing.T) {
	repo := new(MockClientRepo)
	service := NewClientService(repo)

	repo.On("List", mock.Anything, 1).Return([]*entities.Client{}, nil)

	result, err := service.List(context.Background(), 0, false)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Meta.Page)
	repo.AssertExpectations(t)
}

func TestEntityService_List_Formatted(t *testing.T) {
	repo := new(MockClientRepo)
	service := NewClientService(repo)

	rows := []*entities.Client{
		{ID: 3, Nome: "Maria Souza", CPF: "12345678900", DataNascimento: "1990-05-20", Sexo: "feminino"},
	}
	repo.On("List", mock.Anything, 1).Return(rows, nil)

	result, err := service.List(context.Background(), 1, true)

	assert.NoError(t, err)
	values, ok := result.Values.([]any)
	assert.True(t, ok)
	assert.Len(t, values, 1)
	assert.Equal(t, entities.ClientRow{
		ID:             3,
		Nome:           "Maria Souza",
		CPF:            "12345678900",
		DataNascimento: "20/05/1990",
		Sexo:           "feminino",
	}, values[0])
}

func TestEntityService_Get(t *testing.T) {
	repo := new(MockClientRepo)
	service := NewClientService(repo)

	client := validClient()
	client.ID = 5
	repo.On("GetByID", mock.Anything, int64(5)).Return(client, nil)

	got, err := service.Get(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, client, got)
}

func TestEntityService_Get_InvalidID(t *testing.T) {
	repo := new(MockClientRepo)
	service := NewClientService(repo)

	_, err := service.Get(context.Background(), 0)

	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	repo.AssertNotCalled(t, "GetByID")
}

func TestEntityService_Update_MissingFields(t *testing.T) {
	repo := new(MockClientRepo)
	service := NewClientService(repo)

	client := validClient()
	client.Nome = ""

	err := service.Update(context.Background(), 5, client)

	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	repo.AssertNotCalled(t, "Update")
}

func TestEntityService_Remove(t *testing.T) {
	repo := new(MockClientRepo)
	service := NewClientService(repo)

	repo.On("Delete", mock.Anything, int64(9)).Return(nil)

	assert.NoError(t, service.Remove(context.Background(), 9))
	repo.AssertExpectations(t)
}

func TestEntityService_Search(t *testing.T) {
	repo := new(MockClientRepo)
	service := NewClientService(repo)

	rows := []*entities.Client{
		{ID: 1, Nome: "Maria Souza", CPF: "12345678900", DataNascimento: "1990-05-20", Sexo: "feminino"},
	}
	repo.On("Search", mock.Anything, "mar").Return(rows, nil)

	values, err := service.Search(context.Background(), "mar")

	assert.NoError(t, err)
	assert.Len(t, values, 1)
	row, ok := values[0].(entities.ClientRow)
	assert.True(t, ok)
	assert.Equal(t, "20/05/1990", row.DataNascimento)
}

func TestEntityService_Search_MissingText(t *testing.T) {
	repo := new(MockClientRepo)
	service := NewClientService(repo)

	_, err := service.Search(context.Background(), "")

	var appErr *apperrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	assert.Equal(t, "missing required field: texto", appErr.Message)
	repo.AssertNotCalled(t, "Search")
}
