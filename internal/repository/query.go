package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SortOrder is the direction of a list ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder accepts "asc" or "desc" in any case. An empty value means ascending.
func ParseSortOrder(raw string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(raw))) {
	case "", SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortOrder, raw)
}

// BoardSortField is a boards column that lists can be ordered by.
type BoardSortField string

const (
	BoardSortByID    BoardSortField = "id"
	BoardSortByTitle BoardSortField = "title"
)

// BoardSortFields lists the accepted sort_by values for boards.
var BoardSortFields = []string{string(BoardSortByID), string(BoardSortByTitle)}

// ParseBoardSortField defaults to id when raw is empty.
func ParseBoardSortField(raw string) (BoardSortField, error) {
	switch BoardSortField(raw) {
	case "":
		return BoardSortByID, nil
	case BoardSortByID, BoardSortByTitle:
		return BoardSortField(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortField, raw)
}

// CardSortField is a cards column that lists can be ordered by.
type CardSortField string

const (
	CardSortByID         CardSortField = "id"
	CardSortByMessage    CardSortField = "message"
	CardSortByLikesCount CardSortField = "likes_count"
)

// CardSortFields lists the accepted sort_by values for cards.
var CardSortFields = []string{string(CardSortByID), string(CardSortByMessage), string(CardSortByLikesCount)}

// ParseCardSortField defaults to id when raw is empty.
func ParseCardSortField(raw string) (CardSortField, error) {
	switch CardSortField(raw) {
	case "":
		return CardSortByID, nil
	case CardSortByID, CardSortByMessage, CardSortByLikesCount:
		return CardSortField(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortField, raw)
}

// ListBoardsQuery filters and orders a board listing.
type ListBoardsQuery struct {
	// Title keeps boards whose title contains it, ignoring case.
	Title  string
	SortBy BoardSortField
	Order  SortOrder
}

// ListCardsQuery filters and orders a card listing.
type ListCardsQuery struct {
	// BoardID restricts the listing to one board when set.
	BoardID *uint
	SortBy  CardSortField
	Order   SortOrder
}

// orderBy sorts on column and breaks ties by id ascending.
func orderBy(db *gorm.DB, column string, order SortOrder) *gorm.DB {
	db = db.Order(clause.OrderByColumn{
		Column: clause.Column{Name: column},
		Desc:   order == SortDesc,
	})
	if column != "id" {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	}
	return db
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s anywhere, with wildcards in s escaped.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
