package models

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type CommentModel struct {
	DB *sqlx.DB
}

type CommentQuery struct {
	SortBy string
	Order  string
	Limit  int
	Page   int
}

var commentSortColumns = map[string]bool{
	"comment_id": true,
	"author":     true,
	"created_at": true,
	"votes":      true,
}

func (m *CommentModel) ListByReview(reviewID int, q CommentQuery) ([]Comment, int, error) {
	if !commentSortColumns[q.SortBy] || !validOrder(q.Order) || q.Limit < 1 || q.Page < 1 {
		return nil, 0, badRequest("Bad request")
	}

	var exists bool
	if err := m.DB.Get(&exists, `SELECT EXISTS(SELECT 1 FROM reviews WHERE review_id = $1)`, reviewID); err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, notFound("Review not found")
	}

	query, args, err := squirrel.
		Select("comment_id", "author", "review_id", "votes", "created_at", "edited_at", "body").
		From("comments").
		Where(squirrel.Eq{"review_id": reviewID}).
		OrderBy(fmt.Sprintf("%s %s, comment_id DESC", q.SortBy, strings.ToUpper(q.Order))).
		Limit(uint64(q.Limit)).
		Offset(uint64((q.Page - 1) * q.Limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	var comments []Comment
	if err := fetchMany(m.DB, &comments, query, args...); err != nil {
		return nil, 0, err
	}

	var total int
	if err := m.DB.Get(&total, `SELECT COUNT(*) FROM comments WHERE review_id = $1`, reviewID); err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (m *CommentModel) Insert(reviewID int, author, body string) (*Comment, error) {
	if author == "" || body == "" {
		return nil, badRequest("Missing required fields")
	}

	var comment Comment
	err := m.DB.Get(&comment, `
		INSERT INTO comments (author, review_id, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, author, review_id, votes, created_at, edited_at, body`,
		author, reviewID, body)
	if err != nil {
		// missing reviews surface as a foreign-key violation
		return nil, err
	}
	return &comment, nil
}

func (m *CommentModel) GetByID(id int) (*Comment, error) {
	var comment Comment
	err := fetchOne(m.DB, &comment, "Comment not found", `
		SELECT comment_id, author, review_id, votes, created_at, edited_at, body
		FROM comments
		WHERE comment_id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (m *CommentModel) Update(id int, actingUser string, upd CommentUpdate) (*Comment, error) {
	var author string
	if err := fetchOne(m.DB, &author, "Comment not found",
		`SELECT author FROM comments WHERE comment_id = $1`, id); err != nil {
		return nil, err
	}

	switch {
	case upd.IncVotes != nil:
		if err := AuthorizeChange(actingUser, author, ChangeVote); err != nil {
			return nil, err
		}
		if _, err := m.DB.Exec(`UPDATE comments SET votes = votes + $1 WHERE comment_id = $2`, *upd.IncVotes, id); err != nil {
			return nil, err
		}
	case upd.Body != nil:
		if err := AuthorizeChange(actingUser, author, ChangeContent); err != nil {
			return nil, err
		}
		if _, err := m.DB.Exec(`UPDATE comments SET body = $1, edited_at = NOW() WHERE comment_id = $2`, *upd.Body, id); err != nil {
			return nil, err
		}
	default:
		return nil, badRequest("Missing required fields")
	}

	return m.GetByID(id)
}

func (m *CommentModel) Delete(id int, actingUser string) error {
	var author string
	if err := fetchOne(m.DB, &author, "Comment not found",
		`SELECT author FROM comments WHERE comment_id = $1`, id); err != nil {
		return err
	}
	if author != actingUser {
		return forbidden("Only the author can delete this comment")
	}

	_, err := m.DB.Exec(`DELETE FROM comments WHERE comment_id = $1`, id)
	return err
}
