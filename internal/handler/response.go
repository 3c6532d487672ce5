package handler

import "inspoboard/internal/model"

type CardResponse struct {
	ID         uint   `json:"id"`
	Message    string `json:"message"`
	LikesCount int    `json:"likes_count"`
	BoardID    uint   `json:"board_id"`
}

type BoardResponse struct {
	ID    uint           `json:"id"`
	Title string         `json:"title"`
	Owner string         `json:"owner"`
	Cards []CardResponse `json:"cards"`
}

type BoardEnvelope struct {
	Board BoardResponse `json:"board"`
}

type BoardsEnvelope struct {
	Boards []BoardResponse `json:"boards"`
}

type CardEnvelope struct {
	Card CardResponse `json:"card"`
}

type CardsEnvelope struct {
	Cards []CardResponse `json:"cards"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func newCardResponse(card *model.Card) CardResponse {
	return CardResponse{
		ID:         card.ID,
		Message:    card.Message,
		LikesCount: card.LikesCount,
		BoardID:    card.BoardID,
	}
}

func newCardResponses(cards []model.Card) []CardResponse {
	response := make([]CardResponse, len(cards))
	for i := range cards {
		response[i] = newCardResponse(&cards[i])
	}
	return response
}

func newBoardResponse(board *model.Board) BoardResponse {
	return BoardResponse{
		ID:    board.ID,
		Title: board.Title,
		Owner: board.Owner,
		Cards: newCardResponses(board.Cards),
	}
}

func newBoardResponses(boards []model.Board) []BoardResponse {
	response := make([]BoardResponse, len(boards))
	for i := range boards {
		response[i] = newBoardResponse(&boards[i])
	}
	return response
}
