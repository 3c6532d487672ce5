package repository

import (
	"context"
	"errors"

	"inspoboard/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CardRepositoryInterface interface {
	Create(ctx context.Context, card *model.Card) error
	List(ctx context.Context, query ListCardsQuery) ([]model.Card, error)
	GetByID(ctx context.Context, id uint) (*model.Card, error)
	UpdateMessage(ctx context.Context, card *model.Card, message string) error
	Like(ctx context.Context, id uint) (*model.Card, error)
	Unlike(ctx context.Context, id uint) (*model.Card, error)
	Delete(ctx context.Context, id uint) error
}

var _ CardRepositoryInterface = (*CardRepository)(nil)

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create adds a new card to the database
func (r *CardRepository) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

// List retrieves cards, optionally restricted to one board
func (r *CardRepository) List(ctx context.Context, query ListCardsQuery) ([]model.Card, error) {
	tx := r.db.WithContext(ctx)
	if query.BoardID != nil {
		tx = tx.Where("board_id = ?", *query.BoardID)
	}
	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = CardSortByID
	}
	tx = orderBy(tx, string(sortBy), query.Order)

	cards := []model.Card{}
	if err := tx.Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// GetByID retrieves a card by its ID
func (r *CardRepository) GetByID(ctx context.Context, id uint) (*model.Card, error) {
	var card model.Card
	result := r.db.WithContext(ctx).First(&card, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, result.Error
	}
	return &card, nil
}

// UpdateMessage replaces the message of an existing card
func (r *CardRepository) UpdateMessage(ctx context.Context, card *model.Card, message string) error {
	result := r.db.WithContext(ctx).Model(card).Update("message", message)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	card.Message = message
	return nil
}

// Like increments the like counter in a single statement
func (r *CardRepository) Like(ctx context.Context, id uint) (*model.Card, error) {
	return r.adjustLikes(ctx, id, gorm.Expr("likes_count + 1"))
}

// Unlike decrements the like counter, never going below zero
func (r *CardRepository) Unlike(ctx context.Context, id uint) (*model.Card, error) {
	return r.adjustLikes(ctx, id, gorm.Expr("CASE WHEN likes_count > 0 THEN likes_count - 1 ELSE 0 END"))
}

func (r *CardRepository) adjustLikes(ctx context.Context, id uint, expr clause.Expr) (*model.Card, error) {
	var card model.Card
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Card{}).Where("id = ?", id).Update("likes_count", expr)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCardNotFound
		}
		return tx.First(&card, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// Delete removes a card by its ID
func (r *CardRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Card{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}
