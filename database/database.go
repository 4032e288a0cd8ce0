package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/cjpearson85/be-nc-games/utils"
)

// Connect establishes a connection to the PostgreSQL database.
func Connect(databaseURL string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// InitializeTables creates all tables if they don't exist.
func InitializeTables(db *sqlx.DB) error {
	for _, stmt := range schemaStatements() {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize tables: %w", err)
		}
	}
	return nil
}

func schemaStatements() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS categories (
			slug VARCHAR(100) PRIMARY KEY NOT NULL,
			description TEXT
		)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS users (
			username VARCHAR(100) PRIMARY KEY NOT NULL,
			name VARCHAR(100) NOT NULL,
			password VARCHAR(100) NOT NULL,
			avatar_url TEXT DEFAULT '%s' NOT NULL
		)`, utils.DefaultAvatarURL),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS reviews (
			review_id SERIAL PRIMARY KEY,
			title VARCHAR(100) NOT NULL,
			review_body TEXT NOT NULL,
			designer VARCHAR(100) NOT NULL,
			review_img_url TEXT DEFAULT '%s' NOT NULL,
			votes INT DEFAULT 0 NOT NULL,
			category VARCHAR(100) REFERENCES categories(slug) NOT NULL,
			owner VARCHAR(100) REFERENCES users(username) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP NOT NULL,
			edited_at TIMESTAMP
		)`, utils.DefaultReviewImgURL),
		`CREATE TABLE IF NOT EXISTS comments (
			comment_id SERIAL PRIMARY KEY,
			author VARCHAR(100) REFERENCES users(username) NOT NULL,
			review_id INT REFERENCES reviews(review_id) ON DELETE CASCADE NOT NULL,
			votes INT DEFAULT 0 NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP NOT NULL,
			edited_at TIMESTAMP,
			body TEXT
		)`,
	}
}
