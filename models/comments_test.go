package models

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var commentColumns = []string{"comment_id", "author", "review_id", "votes", "created_at", "edited_at", "body"}

func TestCommentListRejectsInvalidSort(t *testing.T) {
	db, _ := newTestDB(t)
	m := &CommentModel{DB: db}

	_, _, err := m.ListByReview(2, CommentQuery{SortBy: "body", Order: "desc", Limit: 10, Page: 1})
	requireAPIError(t, err, http.StatusBadRequest)
}

func TestCommentListMissingReview(t *testing.T) {
	db, mock := newTestDB(t)
	m := &CommentModel{DB: db}

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM reviews WHERE review_id = \$1\)`).
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	_, _, err := m.ListByReview(999, CommentQuery{SortBy: "created_at", Order: "desc", Limit: 10, Page: 1})
	apiErr := requireAPIError(t, err, http.StatusNotFound)
	assert.Equal(t, "Review not found", apiErr.Message)
}

func TestCommentListReturnsRowsAndTotal(t *testing.T) {
	db, mock := newTestDB(t)
	m := &CommentModel{DB: db}

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM reviews WHERE review_id = \$1\)`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	rows := sqlmock.NewRows(commentColumns).
		AddRow(1, "bainesface", 3, 16, time.Now(), nil, "I loved this game too!").
		AddRow(5, "mallionaire", 3, 1, time.Now().Add(-time.Hour), nil, "Quis duis mollit ad enim deserunt.")
	mock.ExpectQuery(`FROM comments WHERE review_id = \$1 ORDER BY created_at DESC, comment_id DESC LIMIT 10 OFFSET 0`).
		WithArgs(3).
		WillReturnRows(rows)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM comments WHERE review_id = \$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	comments, total, err := m.ListByReview(3, CommentQuery{SortBy: "created_at", Order: "desc", Limit: 10, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, comments, 2)
	assert.Equal(t, "bainesface", comments[0].Author)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentInsertRequiresBody(t *testing.T) {
	db, _ := newTestDB(t)
	m := &CommentModel{DB: db}

	_, err := m.Insert(3, "bainesface", "")
	apiErr := requireAPIError(t, err, http.StatusBadRequest)
	assert.Equal(t, "Missing required fields", apiErr.Message)
}

func TestCommentInsertReturnsCreatedRow(t *testing.T) {
	db, mock := newTestDB(t)
	m := &CommentModel{DB: db}

	mock.ExpectQuery(`INSERT INTO comments`).
		WithArgs("bainesface", 3, "EPIC board game!").
		WillReturnRows(sqlmock.NewRows(commentColumns).
			AddRow(7, "bainesface", 3, 0, time.Now(), nil, "EPIC board game!"))

	comment, err := m.Insert(3, "bainesface", "EPIC board game!")
	require.NoError(t, err)
	assert.Equal(t, 7, comment.CommentID)
	assert.Equal(t, 0, comment.Votes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentUpdateSelfVoteForbidden(t *testing.T) {
	db, mock := newTestDB(t)
	m := &CommentModel{DB: db}

	mock.ExpectQuery(`SELECT author FROM comments WHERE comment_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"author"}).AddRow("bainesface"))

	delta := 1
	_, err := m.Update(1, "bainesface", CommentUpdate{IncVotes: &delta})
	requireAPIError(t, err, http.StatusForbidden)
}

func TestCommentUpdateVoteByNonAuthor(t *testing.T) {
	db, mock := newTestDB(t)
	m := &CommentModel{DB: db}

	mock.ExpectQuery(`SELECT author FROM comments WHERE comment_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"author"}).AddRow("bainesface"))
	mock.ExpectExec(`UPDATE comments SET votes = votes \+ \$1 WHERE comment_id = \$2`).
		WithArgs(4, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM comments\s+WHERE comment_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(commentColumns).
			AddRow(1, "bainesface", 3, 20, time.Now(), nil, "I loved this game too!"))

	comment, err := m.Update(1, "mallionaire", CommentUpdate{IncVotes: intPtr(4)})
	require.NoError(t, err)
	assert.Equal(t, 20, comment.Votes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func intPtr(n int) *int { return &n }

func TestCommentUpdateEditByAuthorStampsEditedAt(t *testing.T) {
	db, mock := newTestDB(t)
	m := &CommentModel{DB: db}

	mock.ExpectQuery(`SELECT author FROM comments WHERE comment_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"author"}).AddRow("bainesface"))
	mock.ExpectExec(`UPDATE comments SET body = \$1, edited_at = NOW\(\) WHERE comment_id = \$2`).
		WithArgs("Edited", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	edited := time.Now()
	mock.ExpectQuery(`FROM comments\s+WHERE comment_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(commentColumns).
			AddRow(1, "bainesface", 3, 16, time.Now().Add(-time.Hour), edited, "Edited"))

	comment, err := m.Update(1, "bainesface", CommentUpdate{Body: strPtr("Edited")})
	require.NoError(t, err)
	assert.Equal(t, "Edited", comment.Body)
	require.NotNil(t, comment.EditedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func strPtr(s string) *string { return &s }

func TestCommentUpdateNoRecognizedFields(t *testing.T) {
	db, mock := newTestDB(t)
	m := &CommentModel{DB: db}

	mock.ExpectQuery(`SELECT author FROM comments WHERE comment_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"author"}).AddRow("bainesface"))

	_, err := m.Update(1, "bainesface", CommentUpdate{})
	requireAPIError(t, err, http.StatusBadRequest)
}

func TestCommentDeleteByAuthor(t *testing.T) {
	db, mock := newTestDB(t)
	m := &CommentModel{DB: db}

	mock.ExpectQuery(`SELECT author FROM comments WHERE comment_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"author"}).AddRow("bainesface"))
	mock.ExpectExec(`DELETE FROM comments WHERE comment_id = \$1`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, m.Delete(1, "bainesface"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentDeleteByNonAuthorForbidden(t *testing.T) {
	db, mock := newTestDB(t)
	m := &CommentModel{DB: db}

	mock.ExpectQuery(`SELECT author FROM comments WHERE comment_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"author"}).AddRow("bainesface"))

	err := m.Delete(1, "mallionaire")
	requireAPIError(t, err, http.StatusForbidden)
}
