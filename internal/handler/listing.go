package handler

import (
	"inspoboard/internal/repository"

	"github.com/gin-gonic/gin"
)

var sortOrders = []string{string(repository.SortAsc), string(repository.SortDesc)}

func parseOrder(c *gin.Context) (repository.SortOrder, error) {
	order, err := repository.ParseSortOrder(c.Query("order"))
	if err != nil {
		return "", errInvalidChoice("order", sortOrders)
	}
	return order, nil
}

// parseCardListing reads sort_by and order for a card listing.
func parseCardListing(c *gin.Context) (repository.ListCardsQuery, error) {
	sortBy, err := repository.ParseCardSortField(c.Query("sort_by"))
	if err != nil {
		return repository.ListCardsQuery{}, errInvalidChoice("sort_by field", repository.CardSortFields)
	}
	order, err := parseOrder(c)
	if err != nil {
		return repository.ListCardsQuery{}, err
	}
	return repository.ListCardsQuery{SortBy: sortBy, Order: order}, nil
}
