package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"inspoboard/internal/database"
	"inspoboard/internal/model"
	"inspoboard/internal/repository"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repository.db")
	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(path)), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedBoard(t *testing.T, repo *repository.BoardRepository, title, owner string) *model.Board {
	t.Helper()
	board := &model.Board{Title: title, Owner: owner}
	require.NoError(t, repo.Create(context.Background(), board))
	return board
}

func seedCard(t *testing.T, repo *repository.CardRepository, boardID uint, message string, likes int) *model.Card {
	t.Helper()
	card := &model.Card{Message: message, BoardID: boardID}
	require.NoError(t, repo.Create(context.Background(), card))
	for i := 0; i < likes; i++ {
		_, err := repo.Like(context.Background(), card.ID)
		require.NoError(t, err)
	}
	card.LikesCount = likes
	return card
}

func boardTitles(boards []model.Board) []string {
	titles := make([]string, len(boards))
	for i, b := range boards {
		titles[i] = b.Title
	}
	return titles
}

func cardIDs(cards []model.Card) []uint {
	ids := make([]uint, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

func TestBoardRepository_ListSortsAndFilters(t *testing.T) {
	ctx := context.Background()
	boards := repository.NewBoardRepository(setupSQLite(t))
	seedBoard(t, boards, "beta", "a")
	seedBoard(t, boards, "Alpha", "b")
	seedBoard(t, boards, "gamma", "c")

	byID, err := boards.List(ctx, repository.ListBoardsQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"beta", "Alpha", "gamma"}, boardTitles(byID))

	byTitleDesc, err := boards.List(ctx, repository.ListBoardsQuery{
		SortBy: repository.BoardSortByTitle,
		Order:  repository.SortDesc,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"gamma", "beta", "Alpha"}, boardTitles(byTitleDesc))

	filtered, err := boards.List(ctx, repository.ListBoardsQuery{Title: "ALP"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha"}, boardTitles(filtered))
}

func TestBoardRepository_TitleFilterEscapesWildcards(t *testing.T) {
	ctx := context.Background()
	boards := repository.NewBoardRepository(setupSQLite(t))
	seedBoard(t, boards, "100% done", "a")
	seedBoard(t, boards, "100 done", "b")
	seedBoard(t, boards, "snake_case", "c")
	seedBoard(t, boards, "snakeXcase", "d")

	percent, err := boards.List(ctx, repository.ListBoardsQuery{Title: "100%"})
	require.NoError(t, err)
	assert.Equal(t, []string{"100% done"}, boardTitles(percent))

	underscore, err := boards.List(ctx, repository.ListBoardsQuery{Title: "e_c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"snake_case"}, boardTitles(underscore))
}

func TestBoardRepository_GetByIDPreloadsCards(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	boards := repository.NewBoardRepository(db)
	cards := repository.NewCardRepository(db)
	board := seedBoard(t, boards, "Ideas", "Ada")
	other := seedBoard(t, boards, "Other", "Bob")
	first := seedCard(t, cards, board.ID, "first", 0)
	second := seedCard(t, cards, board.ID, "second", 2)
	seedCard(t, cards, other.ID, "elsewhere", 0)

	got, err := boards.GetByID(ctx, board.ID)

	require.NoError(t, err)
	assert.Equal(t, "Ideas", got.Title)
	assert.Equal(t, []uint{first.ID, second.ID}, cardIDs(got.Cards))
	assert.Equal(t, 2, got.Cards[1].LikesCount)
}

func TestBoardRepository_GetByIDNotFound(t *testing.T) {
	boards := repository.NewBoardRepository(setupSQLite(t))

	got, err := boards.GetByID(context.Background(), 123)

	assert.ErrorIs(t, err, repository.ErrBoardNotFound)
	assert.Nil(t, got)
}

func TestBoardRepository_UpdateAndExists(t *testing.T) {
	ctx := context.Background()
	boards := repository.NewBoardRepository(setupSQLite(t))
	board := seedBoard(t, boards, "Old", "Ada")

	board.Title = "New"
	require.NoError(t, boards.Update(ctx, board))

	reloaded, err := boards.GetByID(ctx, board.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", reloaded.Title)
	assert.Equal(t, "Ada", reloaded.Owner)

	exists, err := boards.Exists(ctx, board.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = boards.Exists(ctx, board.ID+100)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.ErrorIs(t, boards.Update(ctx, &model.Board{ID: board.ID + 100, Title: "x", Owner: "y"}), repository.ErrBoardNotFound)
}

func TestBoardRepository_DeleteCascadesCards(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	boards := repository.NewBoardRepository(db)
	cards := repository.NewCardRepository(db)
	board := seedBoard(t, boards, "Doomed", "Ada")
	keep := seedBoard(t, boards, "Kept", "Bob")
	seedCard(t, cards, board.ID, "one", 0)
	seedCard(t, cards, board.ID, "two", 0)
	kept := seedCard(t, cards, keep.ID, "three", 0)

	require.NoError(t, boards.Delete(ctx, board.ID))

	remaining, err := cards.List(ctx, repository.ListCardsQuery{})
	require.NoError(t, err)
	assert.Equal(t, []uint{kept.ID}, cardIDs(remaining))
	assert.ErrorIs(t, boards.Delete(ctx, board.ID), repository.ErrBoardNotFound)
}

func TestCardRepository_ListFiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	boards := repository.NewBoardRepository(db)
	cards := repository.NewCardRepository(db)
	board := seedBoard(t, boards, "Ideas", "Ada")
	other := seedBoard(t, boards, "Other", "Bob")
	a := seedCard(t, cards, board.ID, "banana", 1)
	b := seedCard(t, cards, board.ID, "apple", 3)
	c := seedCard(t, cards, board.ID, "cherry", 1)
	seedCard(t, cards, other.ID, "durian", 9)

	byLikes, err := cards.List(ctx, repository.ListCardsQuery{
		BoardID: &board.ID,
		SortBy:  repository.CardSortByLikesCount,
		Order:   repository.SortDesc,
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{b.ID, a.ID, c.ID}, cardIDs(byLikes))

	byMessage, err := cards.List(ctx, repository.ListCardsQuery{
		BoardID: &board.ID,
		SortBy:  repository.CardSortByMessage,
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{b.ID, a.ID, c.ID}, cardIDs(byMessage))

	all, err := cards.List(ctx, repository.ListCardsQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestCardRepository_LikeAndUnlike(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	board := seedBoard(t, repository.NewBoardRepository(db), "Ideas", "Ada")
	cards := repository.NewCardRepository(db)
	card := seedCard(t, cards, board.ID, "hi", 0)

	liked, err := cards.Like(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, liked.LikesCount)

	unliked, err := cards.Unlike(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, unliked.LikesCount)

	floored, err := cards.Unlike(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, floored.LikesCount)

	_, err = cards.Like(ctx, card.ID+50)
	assert.ErrorIs(t, err, repository.ErrCardNotFound)
}

func TestCardRepository_UpdateMessageAndDelete(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	board := seedBoard(t, repository.NewBoardRepository(db), "Ideas", "Ada")
	cards := repository.NewCardRepository(db)
	card := seedCard(t, cards, board.ID, "old", 0)

	require.NoError(t, cards.UpdateMessage(ctx, card, "new"))
	assert.Equal(t, "new", card.Message)

	reloaded, err := cards.GetByID(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", reloaded.Message)

	require.NoError(t, cards.Delete(ctx, card.ID))
	_, err = cards.GetByID(ctx, card.ID)
	assert.ErrorIs(t, err, repository.ErrCardNotFound)
	assert.ErrorIs(t, cards.Delete(ctx, card.ID), repository.ErrCardNotFound)
}
