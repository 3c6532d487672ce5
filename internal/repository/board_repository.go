package repository

import (
	"context"
	"errors"

	"inspoboard/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BoardRepositoryInterface interface {
	Create(ctx context.Context, board *model.Board) error
	List(ctx context.Context, query ListBoardsQuery) ([]model.Board, error)
	GetByID(ctx context.Context, id uint) (*model.Board, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, board *model.Board) error
	Delete(ctx context.Context, id uint) error
}

var _ BoardRepositoryInterface = (*BoardRepository)(nil)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

// withCards preloads a board's cards in id order.
func withCards(db *gorm.DB) *gorm.DB {
	return db.Preload("Cards", func(tx *gorm.DB) *gorm.DB {
		return tx.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	})
}

func (r *BoardRepository) Create(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(board).Error
}

// List returns boards matching the query, each with its cards.
func (r *BoardRepository) List(ctx context.Context, query ListBoardsQuery) ([]model.Board, error) {
	tx := withCards(r.db.WithContext(ctx))
	if query.Title != "" {
		tx = tx.Where(`LOWER(title) LIKE ? ESCAPE '\'`, containsPattern(query.Title))
	}
	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = BoardSortByID
	}
	tx = orderBy(tx, string(sortBy), query.Order)

	boards := []model.Board{}
	if err := tx.Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// GetByID returns the board with its cards, or ErrBoardNotFound.
func (r *BoardRepository) GetByID(ctx context.Context, id uint) (*model.Board, error) {
	var board model.Board
	if err := withCards(r.db.WithContext(ctx)).First(&board, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}
	return &board, nil
}

func (r *BoardRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Board{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Update saves title and owner. Cards are left untouched.
func (r *BoardRepository) Update(ctx context.Context, board *model.Board) error {
	result := r.db.WithContext(ctx).Model(board).Select("title", "owner").Updates(model.Board{
		Title: board.Title,
		Owner: board.Owner,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBoardNotFound
	}
	return nil
}

// Delete removes a board together with all of its cards.
func (r *BoardRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("board_id = ?", id).Delete(&model.Card{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Board{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBoardNotFound
		}
		return nil
	})
}
