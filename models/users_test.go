package models

import (
	"database/sql/driver"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cjpearson85/be-nc-games/utils"
)

// bcryptHashOf matches any argument that is a bcrypt hash of the wrapped
// plaintext, so tests can assert hashing without knowing the salt.
type bcryptHashOf string

func (b bcryptHashOf) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s), []byte(b)) == nil
}

func TestUserListRejectsInvalidSort(t *testing.T) {
	db, _ := newTestDB(t)
	m := &UserModel{DB: db}

	_, _, err := m.List(UserQuery{SortBy: "password", Order: "asc", Limit: 10, Page: 1})
	requireAPIError(t, err, http.StatusBadRequest)

	_, _, err = m.List(UserQuery{SortBy: "username", Order: "upwards", Limit: 10, Page: 1})
	requireAPIError(t, err, http.StatusBadRequest)
}

func TestUserListReturnsTotalLikes(t *testing.T) {
	db, mock := newTestDB(t)
	m := &UserModel{DB: db}

	rows := sqlmock.NewRows([]string{"username", "name", "avatar_url", "total_likes"}).
		AddRow("mallionaire", "haz", "https://example.com/a.jpg", 29).
		AddRow("dav3rid", "dave", "https://example.com/b.jpg", 0)
	mock.ExpectQuery(`SELECT users.username, users.name, users.avatar_url, COALESCE\(SUM\(likes.votes\), 0\)::INT AS total_likes FROM users LEFT JOIN`).
		WillReturnRows(rows)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	users, total, err := m.List(UserQuery{SortBy: "total_likes", Order: "desc", Limit: 10, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, users, 2)
	assert.Equal(t, 29, users[0].TotalLikes)
	assert.Equal(t, 0, users[1].TotalLikes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	m := &UserModel{DB: db}

	mock.ExpectQuery(`WHERE users.username = \$1`).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"username", "name", "avatar_url", "total_likes"}))

	_, err := m.Get("nobody")
	apiErr := requireAPIError(t, err, http.StatusNotFound)
	assert.Equal(t, "User not found", apiErr.Message)
}

func TestUserRegisterMissingFields(t *testing.T) {
	db, _ := newTestDB(t)
	m := &UserModel{DB: db}

	_, err := m.Register(RegisterInput{Username: "newuser"})
	apiErr := requireAPIError(t, err, http.StatusBadRequest)
	assert.Equal(t, "Missing required fields", apiErr.Message)
}

func TestUserRegisterHashesPasswordAndDefaultsAvatar(t *testing.T) {
	db, mock := newTestDB(t)
	m := &UserModel{DB: db}

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("newuser", "New User", bcryptHashOf("secretpass"), utils.DefaultAvatarURL).
		WillReturnRows(sqlmock.NewRows([]string{"username", "name", "avatar_url"}).
			AddRow("newuser", "New User", utils.DefaultAvatarURL))

	user, err := m.Register(RegisterInput{Username: "newuser", Name: "New User", Password: "secretpass"})
	require.NoError(t, err)
	assert.Equal(t, "newuser", user.Username)
	assert.Empty(t, user.Password)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserUpdateNoRecognizedFields(t *testing.T) {
	db, _ := newTestDB(t)
	m := &UserModel{DB: db}

	_, err := m.Update("mallionaire", UserUpdate{})
	apiErr := requireAPIError(t, err, http.StatusBadRequest)
	assert.Equal(t, "Missing required fields", apiErr.Message)
}

func TestUserUpdatePatchesSuppliedFields(t *testing.T) {
	db, mock := newTestDB(t)
	m := &UserModel{DB: db}

	mock.ExpectQuery(`UPDATE users SET name = \$1 WHERE username = \$2 RETURNING username, name, avatar_url`).
		WithArgs("Harriet", "mallionaire").
		WillReturnRows(sqlmock.NewRows([]string{"username", "name", "avatar_url"}).
			AddRow("mallionaire", "Harriet", "https://example.com/a.jpg"))

	user, err := m.Update("mallionaire", UserUpdate{Name: strPtr("Harriet")})
	require.NoError(t, err)
	assert.Equal(t, "Harriet", user.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCredentialsCarriesHash(t *testing.T) {
	db, mock := newTestDB(t)
	m := &UserModel{DB: db}

	mock.ExpectQuery(`SELECT username, password FROM users WHERE username = \$1`).
		WithArgs("mallionaire").
		WillReturnRows(sqlmock.NewRows([]string{"username", "password"}).
			AddRow("mallionaire", "$2a$10$somestoredhash"))

	user, err := m.Credentials("mallionaire")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$somestoredhash", user.Password)
}
