package models

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/cjpearson85/be-nc-games/utils"
)

type UserModel struct {
	DB *sqlx.DB
}

type UserQuery struct {
	SortBy string
	Order  string
	Limit  int
	Page   int
}

type RegisterInput struct {
	Username  string
	Name      string
	Password  string
	AvatarURL string
}

var userSortColumns = map[string]bool{
	"username":    true,
	"total_likes": true,
}

// likesJoin aggregates every vote a user has received across their reviews
// and comments; left-joined so inactive users still appear.
const likesJoin = `(SELECT owner AS username, votes FROM reviews
	UNION ALL
	SELECT author AS username, votes FROM comments) likes ON likes.username = users.username`

func (m *UserModel) List(q UserQuery) ([]UserWithLikes, int, error) {
	if !userSortColumns[q.SortBy] || !validOrder(q.Order) || q.Limit < 1 || q.Page < 1 {
		return nil, 0, badRequest("Bad request")
	}

	direction := strings.ToUpper(q.Order)
	orderBy := fmt.Sprintf("users.username %s", direction)
	if q.SortBy == "total_likes" {
		orderBy = fmt.Sprintf("SUM(likes.votes) %s NULLS LAST, users.username ASC", direction)
	}

	query, args, err := squirrel.
		Select("users.username", "users.name", "users.avatar_url",
			"COALESCE(SUM(likes.votes), 0)::INT AS total_likes").
		From("users").
		LeftJoin(likesJoin).
		GroupBy("users.username").
		OrderBy(orderBy).
		Limit(uint64(q.Limit)).
		Offset(uint64((q.Page - 1) * q.Limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	var users []UserWithLikes
	if err := fetchMany(m.DB, &users, query, args...); err != nil {
		return nil, 0, err
	}

	var total int
	if err := m.DB.Get(&total, `SELECT COUNT(*) FROM users`); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (m *UserModel) Get(username string) (*UserWithLikes, error) {
	query := `
		SELECT users.username, users.name, users.avatar_url,
			COALESCE(SUM(likes.votes), 0)::INT AS total_likes
		FROM users
		LEFT JOIN ` + likesJoin + `
		WHERE users.username = $1
		GROUP BY users.username`

	var user UserWithLikes
	if err := fetchOne(m.DB, &user, "User not found", query, username); err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *UserModel) Register(in RegisterInput) (*User, error) {
	if in.Username == "" || in.Name == "" || in.Password == "" {
		return nil, badRequest("Missing required fields")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var user User
	err = m.DB.Get(&user, `
		INSERT INTO users (username, name, password, avatar_url)
		VALUES ($1, $2, $3, $4)
		RETURNING username, name, avatar_url`,
		in.Username, in.Name, string(hashed), utils.OrDefault(in.AvatarURL, utils.DefaultAvatarURL))
	if err != nil {
		// taken usernames surface as a unique violation
		return nil, err
	}
	return &user, nil
}

func (m *UserModel) Update(username string, upd UserUpdate) (*User, error) {
	if upd.Name == nil && upd.AvatarURL == nil {
		return nil, badRequest("Missing required fields")
	}

	builder := squirrel.Update("users").PlaceholderFormat(squirrel.Dollar)
	if upd.Name != nil {
		builder = builder.Set("name", *upd.Name)
	}
	if upd.AvatarURL != nil {
		builder = builder.Set("avatar_url", *upd.AvatarURL)
	}

	query, args, err := builder.
		Where(squirrel.Eq{"username": username}).
		Suffix("RETURNING username, name, avatar_url").
		ToSql()
	if err != nil {
		return nil, err
	}

	var user User
	if err := fetchOne(m.DB, &user, "User not found", query, args...); err != nil {
		return nil, err
	}
	return &user, nil
}

// Credentials fetches the stored password hash for the login flow.
func (m *UserModel) Credentials(username string) (*User, error) {
	var user User
	err := fetchOne(m.DB, &user, "User not found",
		`SELECT username, password FROM users WHERE username = $1`, username)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
