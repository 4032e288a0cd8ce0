package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/cjpearson85/be-nc-games/utils"
)

type ReviewModel struct {
	DB *sqlx.DB
}

type ReviewQuery struct {
	SortBy   string
	Order    string
	Category string
	Title    string
	Owner    string
	// CreatedSince restricts results to reviews newer than now minus the
	// window; zero means no restriction.
	CreatedSince time.Duration
	Limit        int
	Page         int
}

type ReviewInsert struct {
	Owner        string
	Title        string
	ReviewBody   string
	Designer     string
	Category     string
	ReviewImgURL string
}

var reviewSortColumns = map[string]bool{
	"owner":          true,
	"title":          true,
	"review_id":      true,
	"category":       true,
	"review_img_url": true,
	"created_at":     true,
	"votes":          true,
	"comment_count":  true,
}

func (m *ReviewModel) List(q ReviewQuery) ([]Review, int, error) {
	if !reviewSortColumns[q.SortBy] || !validOrder(q.Order) || q.Limit < 1 || q.Page < 1 {
		return nil, 0, badRequest("Bad request")
	}

	if q.Category != "" {
		var exists bool
		if err := m.DB.Get(&exists, `SELECT EXISTS(SELECT 1 FROM categories WHERE slug = $1)`, q.Category); err != nil {
			return nil, 0, err
		}
		if !exists {
			return nil, 0, notFound("Category not found")
		}
	}

	where := squirrel.And{}
	if q.Category != "" {
		where = append(where, squirrel.Eq{"reviews.category": q.Category})
	}
	if q.Owner != "" {
		where = append(where, squirrel.Eq{"reviews.owner": q.Owner})
	}
	if q.Title != "" {
		where = append(where, squirrel.ILike{"reviews.title": "%" + q.Title + "%"})
	}
	if q.CreatedSince > 0 {
		where = append(where, squirrel.Expr("reviews.created_at > ?", time.Now().Add(-q.CreatedSince)))
	}

	sortColumn := q.SortBy
	if sortColumn != "comment_count" {
		sortColumn = "reviews." + sortColumn
	}
	orderBy := fmt.Sprintf("%s %s, reviews.review_id DESC", sortColumn, strings.ToUpper(q.Order))

	builder := squirrel.
		Select(
			"reviews.owner", "reviews.title", "reviews.review_id", "reviews.review_body",
			"reviews.designer", "reviews.review_img_url", "reviews.category",
			"reviews.created_at", "reviews.edited_at", "reviews.votes",
			"users.avatar_url",
			"COUNT(comments.comment_id)::INT AS comment_count",
		).
		From("reviews").
		LeftJoin("comments ON comments.review_id = reviews.review_id").
		LeftJoin("users ON users.username = reviews.owner").
		GroupBy("reviews.review_id", "users.avatar_url").
		OrderBy(orderBy).
		Limit(uint64(q.Limit)).
		Offset(uint64((q.Page - 1) * q.Limit)).
		PlaceholderFormat(squirrel.Dollar)
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var reviews []Review
	if err := fetchMany(m.DB, &reviews, query, args...); err != nil {
		return nil, 0, err
	}

	// Total is counted over the same predicates before LIMIT/OFFSET; the
	// joins only feed comment_count and cannot change row multiplicity here.
	countBuilder := squirrel.Select("COUNT(*)").From("reviews").PlaceholderFormat(squirrel.Dollar)
	if len(where) > 0 {
		countBuilder = countBuilder.Where(where)
	}
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := m.DB.Get(&total, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (m *ReviewModel) GetByID(id int) (*Review, error) {
	query := `
		SELECT reviews.owner, reviews.title, reviews.review_id, reviews.review_body,
			reviews.designer, reviews.review_img_url, reviews.category,
			reviews.created_at, reviews.edited_at, reviews.votes,
			COUNT(comments.comment_id)::INT AS comment_count
		FROM reviews
		LEFT JOIN comments ON comments.review_id = reviews.review_id
		WHERE reviews.review_id = $1
		GROUP BY reviews.review_id`

	var review Review
	if err := fetchOne(m.DB, &review, "Review not found", query, id); err != nil {
		return nil, err
	}
	return &review, nil
}

func (m *ReviewModel) Insert(in ReviewInsert) (*Review, error) {
	if in.Owner == "" || in.Title == "" || in.ReviewBody == "" || in.Designer == "" || in.Category == "" {
		return nil, badRequest("Missing required fields")
	}

	var id int
	err := m.DB.Get(&id, `
		INSERT INTO reviews (owner, title, review_body, designer, category, review_img_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING review_id`,
		in.Owner, in.Title, in.ReviewBody, in.Designer, in.Category,
		utils.OrDefault(in.ReviewImgURL, utils.DefaultReviewImgURL))
	if err != nil {
		// unknown categories surface as a foreign-key violation
		return nil, err
	}
	return m.GetByID(id)
}

func (m *ReviewModel) Update(id int, actingUser string, upd ReviewUpdate) (*Review, error) {
	var owner string
	if err := fetchOne(m.DB, &owner, "Review not found",
		`SELECT owner FROM reviews WHERE review_id = $1`, id); err != nil {
		return nil, err
	}

	switch {
	case upd.IncVotes != nil:
		if err := AuthorizeChange(actingUser, owner, ChangeVote); err != nil {
			return nil, err
		}
		// single statement keeps concurrent deltas race-free
		if _, err := m.DB.Exec(`UPDATE reviews SET votes = votes + $1 WHERE review_id = $2`, *upd.IncVotes, id); err != nil {
			return nil, err
		}
	case upd.Title != nil || upd.ReviewBody != nil || upd.Designer != nil || upd.Category != nil || upd.ReviewImgURL != nil:
		if err := AuthorizeChange(actingUser, owner, ChangeContent); err != nil {
			return nil, err
		}
		builder := squirrel.Update("reviews").PlaceholderFormat(squirrel.Dollar)
		if upd.Title != nil {
			builder = builder.Set("title", *upd.Title)
		}
		if upd.ReviewBody != nil {
			builder = builder.Set("review_body", *upd.ReviewBody)
		}
		if upd.Designer != nil {
			builder = builder.Set("designer", *upd.Designer)
		}
		if upd.Category != nil {
			builder = builder.Set("category", *upd.Category)
		}
		if upd.ReviewImgURL != nil {
			builder = builder.Set("review_img_url", *upd.ReviewImgURL)
		}
		query, args, err := builder.
			Set("edited_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"review_id": id}).
			ToSql()
		if err != nil {
			return nil, err
		}
		if _, err := m.DB.Exec(query, args...); err != nil {
			return nil, err
		}
	default:
		return nil, badRequest("Missing required fields")
	}

	return m.GetByID(id)
}

func (m *ReviewModel) Delete(id int, actingUser string) error {
	var owner string
	if err := fetchOne(m.DB, &owner, "Review not found",
		`SELECT owner FROM reviews WHERE review_id = $1`, id); err != nil {
		return err
	}
	if owner != actingUser {
		return forbidden("Only the owner can delete this review")
	}

	// associated comments go with it via ON DELETE CASCADE
	_, err := m.DB.Exec(`DELETE FROM reviews WHERE review_id = $1`, id)
	return err
}
