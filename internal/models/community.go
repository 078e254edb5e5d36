package models

import "time"

// Board is a discussion area that groups posts.
type Board struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null;index" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	Posts       []Post    `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"-"`
}

// Post is an entry on a board. The counters are maintained by side effects
// (detail reads, explicit like calls and comment creation) and are never
// recomputed from action logs or comment rows.
type Post struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BoardID      uint      `gorm:"not null;index" json:"board_id"`
	AuthorID     uint      `gorm:"not null;index" json:"author_id"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	Contents     string    `gorm:"type:text;not null" json:"contents"`
	LikeCount    int       `gorm:"not null;default:0" json:"like_count"`
	CommentCount int       `gorm:"not null;default:0" json:"comment_count"`
	ViewCount    int       `gorm:"not null;default:0" json:"view_count"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Author       *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Tags         []PostTag `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Comments     []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

// PostTag attaches a free-form tag to a post.
type PostTag struct {
	PostID uint   `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	Tag    string `gorm:"primaryKey;size:50" json:"tag"`
}

// Comment is a reply to a post, optionally nested under another comment.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Contents  string    `gorm:"type:text;not null" json:"contents"`
	ParentID  *uint     `gorm:"index" json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Author    *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Parent    *Comment  `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL" json:"-"`
}
