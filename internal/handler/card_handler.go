package handler

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"inspoboard/internal/model"
	"inspoboard/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CardHandler struct {
	cardRepo  repository.CardRepositoryInterface
	boardRepo repository.BoardRepositoryInterface
	logger    *zap.Logger
}

func NewCardHandler(cardRepo repository.CardRepositoryInterface, boardRepo repository.BoardRepositoryInterface, logger *zap.Logger) *CardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CardHandler{
		cardRepo:  cardRepo,
		boardRepo: boardRepo,
		logger:    logger,
	}
}

type CreateCardRequest struct {
	Message *string `json:"message" binding:"required"`
	BoardID *uint   `json:"board_id" binding:"required"`
}

type UpdateCardRequest struct {
	Message *string `json:"message"`
}

func (h *CardHandler) card(c *gin.Context) (*model.Card, error) {
	return lookup(c, kindCard, h.cardRepo.GetByID, repository.ErrCardNotFound)
}

func checkMessageLength(message string) error {
	if utf8.RuneCountInString(message) > model.MaxMessageLength {
		return errMessageTooLong(model.MaxMessageLength)
	}
	return nil
}

// Create godoc
// @Summary  Create a card on an existing board
// @Tags     Cards
// @Accept   json
// @Produce  json
// @Param    card  body      CreateCardRequest  true  "Card to create"
// @Success  201   {object}  CardEnvelope
// @Failure  400   {object}  ErrorResponse
// @Failure  404   {object}  ErrorResponse
// @Router   /cards [post]
func (h *CardHandler) Create(c *gin.Context) {
	var req CreateCardRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	if err := checkMessageLength(*req.Message); err != nil {
		respondError(c, h.logger, err)
		return
	}

	exists, err := h.boardRepo.Exists(c.Request.Context(), *req.BoardID)
	if err != nil {
		respondError(c, h.logger, fmt.Errorf("check board %d: %w", *req.BoardID, err))
		return
	}
	if !exists {
		respondError(c, h.logger, errNotFound(kindBoard, *req.BoardID))
		return
	}

	card := &model.Card{
		Message: *req.Message,
		BoardID: *req.BoardID,
	}
	if err := h.cardRepo.Create(c.Request.Context(), card); err != nil {
		respondError(c, h.logger, fmt.Errorf("create card: %w", err))
		return
	}

	c.JSON(http.StatusCreated, CardEnvelope{Card: newCardResponse(card)})
}

// GetAll godoc
// @Summary  List cards
// @Tags     Cards
// @Produce  json
// @Param    board_id  query     int     false  "Only cards of this board"
// @Param    sort_by   query     string  false  "id, message or likes_count"  default(id)
// @Param    order     query     string  false  "asc or desc"                 default(asc)
// @Success  200       {object}  CardsEnvelope
// @Failure  400       {object}  ErrorResponse
// @Router   /cards [get]
func (h *CardHandler) GetAll(c *gin.Context) {
	var boardID *uint
	if raw := c.Query("board_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			respondError(c, h.logger, errInvalidQueryParam("board_id"))
			return
		}
		boardID = &id
	}

	query, err := parseCardListing(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	query.BoardID = boardID

	cards, err := h.cardRepo.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, h.logger, fmt.Errorf("list cards: %w", err))
		return
	}

	c.JSON(http.StatusOK, CardsEnvelope{Cards: newCardResponses(cards)})
}

// GetByID godoc
// @Summary  Get a card
// @Tags     Cards
// @Produce  json
// @Param    id   path      int  true  "Card ID"
// @Success  200  {object}  CardEnvelope
// @Failure  400  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /cards/{id} [get]
func (h *CardHandler) GetByID(c *gin.Context) {
	card, err := h.card(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, CardEnvelope{Card: newCardResponse(card)})
}

// Update godoc
// @Summary  Replace a card's message
// @Tags     Cards
// @Accept   json
// @Produce  json
// @Param    id    path      int                true  "Card ID"
// @Param    card  body      UpdateCardRequest  true  "New message"
// @Success  200   {object}  CardEnvelope
// @Failure  400   {object}  ErrorResponse
// @Failure  404   {object}  ErrorResponse
// @Router   /cards/{id} [put]
func (h *CardHandler) Update(c *gin.Context) {
	card, err := h.card(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	var req UpdateCardRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	if req.Message == nil {
		respondError(c, h.logger, &APIError{Status: http.StatusBadRequest, Message: "Missing required field: message"})
		return
	}
	if err := checkMessageLength(*req.Message); err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.cardRepo.UpdateMessage(c.Request.Context(), card, *req.Message); err != nil {
		respondError(c, h.logger, fmt.Errorf("update card %d: %w", card.ID, err))
		return
	}

	c.JSON(http.StatusOK, CardEnvelope{Card: newCardResponse(card)})
}

// Like godoc
// @Summary  Add one like to a card
// @Tags     Cards
// @Produce  json
// @Param    id   path      int  true  "Card ID"
// @Success  200  {object}  CardEnvelope
// @Failure  400  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /cards/{id}/like [patch]
// @Router   /cards/{id}/like [post]
func (h *CardHandler) Like(c *gin.Context) {
	card, err := h.card(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	updated, err := h.cardRepo.Like(c.Request.Context(), card.ID)
	if err != nil {
		respondError(c, h.logger, fmt.Errorf("like card %d: %w", card.ID, err))
		return
	}

	c.JSON(http.StatusOK, CardEnvelope{Card: newCardResponse(updated)})
}

// Unlike godoc
// @Summary  Remove one like from a card, never going below zero
// @Tags     Cards
// @Produce  json
// @Param    id   path      int  true  "Card ID"
// @Success  200  {object}  CardEnvelope
// @Failure  400  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /cards/{id}/like [delete]
func (h *CardHandler) Unlike(c *gin.Context) {
	card, err := h.card(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	updated, err := h.cardRepo.Unlike(c.Request.Context(), card.ID)
	if err != nil {
		respondError(c, h.logger, fmt.Errorf("unlike card %d: %w", card.ID, err))
		return
	}

	c.JSON(http.StatusOK, CardEnvelope{Card: newCardResponse(updated)})
}

// Delete godoc
// @Summary  Delete a card
// @Tags     Cards
// @Produce  json
// @Param    id   path      int  true  "Card ID"
// @Success  200  {object}  MessageResponse
// @Failure  400  {object}  ErrorResponse
// @Failure  404  {object}  ErrorResponse
// @Router   /cards/{id} [delete]
func (h *CardHandler) Delete(c *gin.Context) {
	card, err := h.card(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.cardRepo.Delete(c.Request.Context(), card.ID); err != nil {
		respondError(c, h.logger, fmt.Errorf("delete card %d: %w", card.ID, err))
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: fmt.Sprintf("Card %d successfully deleted", card.ID)})
}
