// Package testutil provides shared test doubles and fixtures for backend tests.
package testutil

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gochurch/internal/database"
	"gochurch/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Uint64

// NewTestDB returns an isolated in-memory SQLite database with the full
// schema migrated. The pool is pinned to one connection so every statement
// sees the same in-memory database.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// CreateUser inserts a user with a unique email.
func CreateUser(t testing.TB, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{
		Email:    fmt.Sprintf("%s-%d@example.com", username, dbSeq.Add(1)),
		Username: username,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

// CreateBoard inserts a board.
func CreateBoard(t testing.TB, db *gorm.DB, title string) *models.Board {
	t.Helper()
	b := &models.Board{Title: title, Description: title + " board"}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("create board: %v", err)
	}
	return b
}

// CreatePost inserts a post on boardID written by authorID.
func CreatePost(t testing.TB, db *gorm.DB, boardID, authorID uint, title string) *models.Post {
	t.Helper()
	p := &models.Post{BoardID: boardID, AuthorID: authorID, Title: title, Contents: title + " body"}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return p
}

// CreateChurch inserts a church.
func CreateChurch(t testing.TB, db *gorm.DB, name string) *models.Church {
	t.Helper()
	c := &models.Church{Name: name, Address: "1 Main St", PhoneNumber: "555-0100"}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("create church: %v", err)
	}
	return c
}

// Clock is a manually advanced time source for deterministic ordering tests.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock starts a clock at a fixed UTC instant.
func NewClock() *Clock {
	return &Clock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

// Now returns the current instant and advances the clock by one second.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(time.Second)
	return t
}
