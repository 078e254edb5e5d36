// Package main provides account management utilities for GoChurch operators.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"gochurch/internal/config"
	"gochurch/internal/database"
	"gochurch/internal/models"

	"gorm.io/gorm"
)

const usage = `Usage:
  admin promote <user_id>   - Grant admin rights
  admin demote <user_id>    - Revoke admin rights
  admin block <user_id>     - Block a user from signing in
  admin unblock <user_id>   - Lift a block
  admin list-admins         - List all admins`

// accountChange describes one boolean flip on a user row.
type accountChange struct {
	column string
	value  bool
	verb   string
}

var changes = map[string]accountChange{
	"promote": {column: "is_admin", value: true, verb: "promoted to admin"},
	"demote":  {column: "is_admin", value: false, verb: "demoted from admin"},
	"block":   {column: "is_blocked", value: true, verb: "blocked"},
	"unblock": {column: "is_blocked", value: false, verb: "unblocked"},
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	command := os.Args[1]
	if command == "list-admins" {
		listAdmins(db)
		return
	}

	change, ok := changes[command]
	if !ok {
		fmt.Printf("Unknown command: %s\n%s\n", command, usage)
		os.Exit(1)
	}
	if len(os.Args) < 3 {
		fmt.Printf("Usage: admin %s <user_id>\n", command)
		os.Exit(1)
	}
	userID, err := strconv.ParseUint(os.Args[2], 10, 32)
	if err != nil || userID == 0 {
		fmt.Printf("Invalid user ID: %s\n", os.Args[2])
		os.Exit(1)
	}

	if err := apply(db, uint(userID), change); err != nil {
		log.Fatal(err)
	}
}

func apply(db *gorm.DB, userID uint, change accountChange) error {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user with ID %d not found", userID)
		}
		return fmt.Errorf("database error: %w", err)
	}

	current := user.IsAdmin
	if change.column == "is_blocked" {
		current = user.IsBlocked
	}
	if current == change.value {
		fmt.Printf("User %s (ID: %d) is already %s\n", user.Username, user.ID, change.verb)
		return nil
	}

	if err := db.Model(&user).Update(change.column, change.value).Error; err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	fmt.Printf("User %s (ID: %d) %s\n", user.Username, user.ID, change.verb)
	return nil
}

func listAdmins(db *gorm.DB) {
	var admins []models.User
	if err := db.Where("is_admin = ?", true).Order("id").Find(&admins).Error; err != nil {
		log.Fatalf("Failed to fetch admins: %v", err)
	}

	if len(admins) == 0 {
		fmt.Println("No admins found")
		return
	}

	for _, admin := range admins {
		blocked := ""
		if admin.IsBlocked {
			blocked = " (blocked)"
		}
		fmt.Printf("ID: %d | Username: %s | Email: %s%s\n", admin.ID, admin.Username, admin.Email, blocked)
	}
}
