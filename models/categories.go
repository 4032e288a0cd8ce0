package models

import "github.com/jmoiron/sqlx"

type CategoryModel struct {
	DB *sqlx.DB
}

func (m *CategoryModel) List() ([]Category, error) {
	var categories []Category
	err := fetchMany(m.DB, &categories, `SELECT slug, description FROM categories ORDER BY slug ASC`)
	return categories, err
}

func (m *CategoryModel) Insert(slug string, description *string) (*Category, error) {
	if slug == "" {
		return nil, badRequest("No slug on POST body")
	}

	var category Category
	err := m.DB.Get(&category, `
		INSERT INTO categories (slug, description)
		VALUES ($1, $2)
		RETURNING slug, description`,
		slug, description)
	if err != nil {
		// duplicate slugs surface as a unique violation
		return nil, err
	}
	return &category, nil
}
