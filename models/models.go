package models

import "time"

type Category struct {
	Slug        string  `db:"slug" json:"slug"`
	Description *string `db:"description" json:"description"`
}

type User struct {
	Username  string `db:"username" json:"username"`
	Name      string `db:"name" json:"name"`
	AvatarURL string `db:"avatar_url" json:"avatar_url"`
	Password  string `db:"password" json:"-"`
}

// UserWithLikes is the public projection of a user, including the computed
// sum of votes across all of their reviews and comments.
type UserWithLikes struct {
	Username   string `db:"username" json:"username"`
	Name       string `db:"name" json:"name"`
	AvatarURL  string `db:"avatar_url" json:"avatar_url"`
	TotalLikes int    `db:"total_likes" json:"total_likes"`
}

type Review struct {
	Owner        string     `db:"owner" json:"owner"`
	Title        string     `db:"title" json:"title"`
	ReviewID     int        `db:"review_id" json:"review_id"`
	ReviewBody   string     `db:"review_body" json:"review_body"`
	Designer     string     `db:"designer" json:"designer"`
	ReviewImgURL string     `db:"review_img_url" json:"review_img_url"`
	Category     string     `db:"category" json:"category"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	EditedAt     *time.Time `db:"edited_at" json:"edited_at"`
	Votes        int        `db:"votes" json:"votes"`
	CommentCount int        `db:"comment_count" json:"comment_count"`
	// AvatarURL is the owner's avatar, joined in on list queries only.
	AvatarURL *string `db:"avatar_url" json:"avatar_url,omitempty"`
}

type Comment struct {
	CommentID int        `db:"comment_id" json:"comment_id"`
	Author    string     `db:"author" json:"author"`
	ReviewID  int        `db:"review_id" json:"review_id"`
	Votes     int        `db:"votes" json:"votes"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	EditedAt  *time.Time `db:"edited_at" json:"edited_at"`
	Body      string     `db:"body" json:"body"`
}

// Update types carry patch semantics: only populated fields make it into the
// generated SET clause.

type ReviewUpdate struct {
	Title        *string `json:"title"`
	ReviewBody   *string `json:"review_body"`
	Designer     *string `json:"designer"`
	Category     *string `json:"category"`
	ReviewImgURL *string `json:"review_img_url"`
	IncVotes     *int    `json:"inc_votes"`
}

type CommentUpdate struct {
	Body     *string `json:"body"`
	IncVotes *int    `json:"inc_votes"`
}

type UserUpdate struct {
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}
