package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inspoboard/internal/handler"
	"inspoboard/internal/model"
	"inspoboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockBoardRepository struct {
	mock.Mock
}

var _ repository.BoardRepositoryInterface = (*MockBoardRepository)(nil)

func (m *MockBoardRepository) Create(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) List(ctx context.Context, query repository.ListBoardsQuery) ([]model.Board, error) {
	args := m.Called(ctx, query)
	boards, _ := args.Get(0).([]model.Board)
	return boards, args.Error(1)
}

func (m *MockBoardRepository) GetByID(ctx context.Context, id uint) (*model.Board, error) {
	args := m.Called(ctx, id)
	board := args.Get(0)
	if board == nil {
		return nil, args.Error(1)
	}
	return board.(*model.Board), args.Error(1)
}

func (m *MockBoardRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockBoardRepository) Update(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCardRepository struct {
	mock.Mock
}

var _ repository.CardRepositoryInterface = (*MockCardRepository)(nil)

func (m *MockCardRepository) Create(ctx context.Context, card *model.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepository) List(ctx context.Context, query repository.ListCardsQuery) ([]model.Card, error) {
	args := m.Called(ctx, query)
	cards, _ := args.Get(0).([]model.Card)
	return cards, args.Error(1)
}

func (m *MockCardRepository) GetByID(ctx context.Context, id uint) (*model.Card, error) {
	args := m.Called(ctx, id)
	card := args.Get(0)
	if card == nil {
		return nil, args.Error(1)
	}
	return card.(*model.Card), args.Error(1)
}

func (m *MockCardRepository) UpdateMessage(ctx context.Context, card *model.Card, message string) error {
	args := m.Called(ctx, card, message)
	return args.Error(0)
}

func (m *MockCardRepository) Like(ctx context.Context, id uint) (*model.Card, error) {
	args := m.Called(ctx, id)
	card := args.Get(0)
	if card == nil {
		return nil, args.Error(1)
	}
	return card.(*model.Card), args.Error(1)
}

func (m *MockCardRepository) Unlike(ctx context.Context, id uint) (*model.Card, error) {
	args := m.Called(ctx, id)
	card := args.Get(0)
	if card == nil {
		return nil, args.Error(1)
	}
	return card.(*model.Card), args.Error(1)
}

func (m *MockCardRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupTest() (*gin.Engine, *MockBoardRepository, *MockCardRepository) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	boardRepo := new(MockBoardRepository)
	cardRepo := new(MockCardRepository)

	boardHandler := handler.NewBoardHandler(boardRepo, cardRepo, zap.NewNop())
	cardHandler := handler.NewCardHandler(cardRepo, boardRepo, zap.NewNop())

	r.POST("/boards", boardHandler.Create)
	r.GET("/boards", boardHandler.GetAll)
	r.GET("/boards/:id", boardHandler.GetByID)
	r.PUT("/boards/:id", boardHandler.Update)
	r.DELETE("/boards/:id", boardHandler.Delete)
	r.GET("/boards/:id/cards", boardHandler.GetCards)
	r.POST("/boards/:id/cards", boardHandler.CreateCard)

	r.POST("/cards", cardHandler.Create)
	r.GET("/cards", cardHandler.GetAll)
	r.GET("/cards/:id", cardHandler.GetByID)
	r.PUT("/cards/:id", cardHandler.Update)
	r.DELETE("/cards/:id", cardHandler.Delete)
	r.PATCH("/cards/:id/like", cardHandler.Like)
	r.DELETE("/cards/:id/like", cardHandler.Unlike)

	return r, boardRepo, cardRepo
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}

func errorMessage(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[handler.ErrorResponse](t, resp).Message
}
