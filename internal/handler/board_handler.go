package handler

import (
	"fmt"
	"net/http"

	"inspoboard/internal/model"
	"inspoboard/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BoardHandler struct {
	boardRepo repository.BoardRepositoryInterface
	cardRepo  repository.CardRepositoryInterface
	logger    *zap.Logger
}

func NewBoardHandler(boardRepo repository.BoardRepositoryInterface, cardRepo repository.CardRepositoryInterface, logger *zap.Logger) *BoardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BoardHandler{
		boardRepo: boardRepo,
		cardRepo:  cardRepo,
		logger:    logger,
	}
}

type CreateBoardRequest struct {
	Title *string `json:"title" binding:"required"`
	Owner *string `json:"owner" binding:"required"`
}

// UpdateBoardRequest only changes the fields that are present.
type UpdateBoardRequest struct {
	Title *string `json:"title"`
	Owner *string `json:"owner"`
}

// CreateBoardCardRequest carries no board_id: the board comes from the path.
type CreateBoardCardRequest struct {
	Message *string `json:"message" binding:"required"`
}

func (h *BoardHandler) board(c *gin.Context) (*model.Board, error) {
	return lookup(c, kindBoard, h.boardRepo.GetByID, repository.ErrBoardNotFound)
}

// Create godoc
// @Summary  Create a board
// @Tags     Boards
// @Accept   json
// @Produce  json
// @Param    board  body      CreateBoardRequest  true  "Board to create"
// @Success  201    {object}  BoardEnvelope
// @Failure  400    {object}  ErrorResponse
// @Failure  500    {object}  ErrorResponse
// @Router   /boards [post]
func (h *BoardHandler) Create(c *gin.Context) {
	var req CreateBoardRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	if err := requireText(textField{"title", req.Title}, textField{"owner", req.Owner}); err != nil {
		respondError(c, h.logger, err)
		return
	}

	board := &model.Board{
		Title: *req.Title,
		Owner: *req.Owner,
	}
	if err := h.boardRepo.Create(c.Request.Context(), board); err != nil {
		respondError(c, h.logger, fmt.Errorf("create board: %w", err))
		return
	}

	c.JSON(http.StatusCreated, BoardEnvelope{Board: newBoardResponse(board)})
}

// GetAll godoc
// @Summary  List boards
// @Tags     Boards
// @Produce  json
// @Param    title    query     string  false  "Case-insensitive title substring"
// @Param    sort_by  query     string  false  "id or title"  default(id)
// @Param    order    query     string  false  "asc or desc"  default(asc)
// @Success  200      {object}  BoardsEnvelope
// @Failure  400      {object}  ErrorResponse
// @Router   /boards [get]
func (h *BoardHandler) GetAll(c *gin.Context) {
	sortBy, err := repository.ParseBoardSortField(c.Query("sort_by"))
	if err != nil {
		respondError(c, h.logger, errInvalidChoice("sort_by field", repository.BoardSortFields))
		return
	}
	order, err := parseOrder(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	boards, err := h.boardRepo.List(c.Request.Context(), repository.ListBoardsQuery{
		Title:  c.Query("title"),
		SortBy: sortBy,
		Order:  order,
	})
	if err != nil {
		respondError(c, h.logger, fmt.Errorf("list boards: %w", err))
		return
	}

	c.JSON(http.StatusOK, BoardsEnvelope{Boards: newBoardResponses(boards)})
}

// GetByID godoc
// @Summary  Get a board with its cards
// @Tags     Boards
// @Produce  json
// @Param    id   path      int  true  "Board ID"
// @Success  200  {object}  BoardEnvelope
// @Failure  400  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /boards/{id} [get]
func (h *BoardHandler) GetByID(c *gin.Context) {
	board, err := h.board(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, BoardEnvelope{Board: newBoardResponse(board)})
}

// Update godoc
// @Summary  Update a board's title and/or owner
// @Tags     Boards
// @Accept   json
// @Produce  json
// @Param    id     path      int                 true  "Board ID"
// @Param    board  body      UpdateBoardRequest  true  "Fields to change"
// @Success  200    {object}  BoardEnvelope
// @Failure  400    {object}  ErrorResponse
// @Failure  404    {object}  ErrorResponse
// @Router   /boards/{id} [put]
func (h *BoardHandler) Update(c *gin.Context) {
	board, err := h.board(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req UpdateBoardRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	if err := requireText(textField{"title", req.Title}, textField{"owner", req.Owner}); err != nil {
		respondError(c, h.logger, err)
		return
	}

	if req.Title != nil {
		board.Title = *req.Title
	}
	if req.Owner != nil {
		board.Owner = *req.Owner
	}

	if err := h.boardRepo.Update(c.Request.Context(), board); err != nil {
		respondError(c, h.logger, fmt.Errorf("update board %d: %w", board.ID, err))
		return
	}

	c.JSON(http.StatusOK, BoardEnvelope{Board: newBoardResponse(board)})
}

// Delete godoc
// @Summary  Delete a board and all of its cards
// @Tags     Boards
// @Produce  json
// @Param    id   path      int  true  "Board ID"
// @Success  200  {object}  MessageResponse
// @Failure  400  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /boards/{id} [delete]
func (h *BoardHandler) Delete(c *gin.Context) {
	board, err := h.board(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.boardRepo.Delete(c.Request.Context(), board.ID); err != nil {
		respondError(c, h.logger, fmt.Errorf("delete board %d: %w", board.ID, err))
		return
	}

	h.logger.Info("board deleted", zap.Uint("board_id", board.ID), zap.Int("cards", len(board.Cards)))
	c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Board %d %q successfully deleted", board.ID, board.Title),
	})
}

// GetCards godoc
// @Summary  List the cards of a board
// @Tags     Boards
// @Produce  json
// @Param    id       path      int     true   "Board ID"
// @Param    sort_by  query     string  false  "id, message or likes_count"  default(id)
// @Param    order    query     string  false  "asc or desc"                 default(asc)
// @Success  200      {object}  CardsEnvelope
// @Failure  400      {object}  ErrorResponse
// @Failure  404      {object}  ErrorResponse
// @Router   /boards/{id}/cards [get]
func (h *BoardHandler) GetCards(c *gin.Context) {
	board, err := h.board(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	query, err := parseCardListing(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	query.BoardID = &board.ID

	cards, err := h.cardRepo.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, h.logger, fmt.Errorf("list cards of board %d: %w", board.ID, err))
		return
	}

	c.JSON(http.StatusOK, CardsEnvelope{Cards: newCardResponses(cards)})
}

// CreateCard godoc
// @Summary  Add a card to a board
// @Tags     Boards
// @Accept   json
// @Produce  json
// @Param    id    path      int                     true  "Board ID"
// @Param    card  body      CreateBoardCardRequest  true  "Card to create"
// @Success  201   {object}  CardEnvelope
// @Failure  400   {object}  ErrorResponse
// @Failure  404   {object}  ErrorResponse
// @Router   /boards/{id}/cards [post]
func (h *BoardHandler) CreateCard(c *gin.Context) {
	board, err := h.board(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req CreateBoardCardRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	if err := checkMessageLength(*req.Message); err != nil {
		respondError(c, h.logger, err)
		return
	}

	card := &model.Card{
		Message: *req.Message,
		BoardID: board.ID,
	}
	if err := h.cardRepo.Create(c.Request.Context(), card); err != nil {
		respondError(c, h.logger, fmt.Errorf("create card on board %d: %w", board.ID, err))
		return
	}

	c.JSON(http.StatusCreated, CardEnvelope{Card: newCardResponse(card)})
}
