package database

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// Seed drops and recreates all tables, then loads a small development data
// set. Review ids are serial, so comments can reference reviews by their
// insert position.
func Seed(db *sqlx.DB) error {
	drops := []string{
		"DROP TABLE IF EXISTS comments",
		"DROP TABLE IF EXISTS reviews",
		"DROP TABLE IF EXISTS users",
		"DROP TABLE IF EXISTS categories",
	}
	for _, stmt := range drops {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to drop tables: %w", err)
		}
	}

	if err := InitializeTables(db); err != nil {
		return err
	}

	categories := [][]interface{}{
		{"euro game", "Abstact games that involve little luck"},
		{"social deduction", "Players attempt to uncover each other's hidden role"},
		{"dexterity", "Games involving physical skill"},
		{"children's games", "Games suitable for children"},
	}
	if err := seedTable(db, "categories", []string{"slug", "description"}, categories); err != nil {
		return err
	}

	users := [][]interface{}{
		{"mallionaire", "haz", "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
		{"philippaclaire9", "philippa", "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
		{"bainesface", "sarah", "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
		{"dav3rid", "dave", "http://https://upload.wikimedia.org/wikipedia/en/8/86/Avatar_Aang.png"},
	}
	userRows := make([][]interface{}, 0, len(users))
	for _, u := range users {
		hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		userRows = append(userRows, []interface{}{u[0], u[1], string(hashed), u[2]})
	}
	if err := seedTable(db, "users", []string{"username", "name", "password", "avatar_url"}, userRows); err != nil {
		return err
	}

	now := time.Now()
	reviews := [][]interface{}{
		{"Agricola", "Farmyard fun!", "Uwe Rosenberg", 1, "euro game", "mallionaire", now.Add(-10 * 24 * time.Hour)},
		{"Jenga", "Fiddly fun for all the family", "Leslie Scott", 5, "dexterity", "philippaclaire9", now.Add(-8 * 24 * time.Hour)},
		{"Ultimate Werewolf", "We couldn't find the werewolf!", "Akihisa Okui", 5, "social deduction", "bainesface", now.Add(-6 * 24 * time.Hour)},
		{"One Night Ultimate Werewolf", "We couldn't find the werewolf again!", "Akihisa Okui", 5, "social deduction", "mallionaire", now.Add(-4 * 24 * time.Hour)},
		{"A truly Quacking Game; Quacks of Quedlinburg", "Cunning quack potions", "Wolfgang Warsch", 10, "social deduction", "mallionaire", now.Add(-2 * 24 * time.Hour)},
		{"Occaecat consequat officia in quis commodo", "Laboris nisi ut aliquip ex ea commodo consequat", "Ollie Tabooger", 8, "social deduction", "mallionaire", now.Add(-24 * time.Hour)},
	}
	reviewColumns := []string{"title", "review_body", "designer", "votes", "category", "owner", "created_at"}
	if err := seedTable(db, "reviews", reviewColumns, reviews); err != nil {
		return err
	}

	comments := [][]interface{}{
		{"bainesface", 1, 16, now.Add(-5 * 24 * time.Hour), "I loved this game too!"},
		{"mallionaire", 2, 13, now.Add(-4 * 24 * time.Hour), "My dog loved this game too!"},
		{"philippaclaire9", 3, 10, now.Add(-3 * 24 * time.Hour), "I didn't know dogs could play games"},
		{"bainesface", 4, 16, now.Add(-2 * 24 * time.Hour), "EPIC board game!"},
		{"mallionaire", 3, 1, now.Add(-24 * time.Hour), "Quis duis mollit ad enim deserunt."},
	}
	commentColumns := []string{"author", "review_id", "votes", "created_at", "body"}
	return seedTable(db, "comments", commentColumns, comments)
}

func seedTable(db *sqlx.DB, table string, columns []string, rows [][]interface{}) error {
	query, args, err := InsertInto(table, columns, rows)
	if err != nil {
		return err
	}
	if _, err := db.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to seed %s: %w", table, err)
	}
	return nil
}
