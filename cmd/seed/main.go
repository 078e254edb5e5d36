// Command main fills the database with sample community data.
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"gochurch/internal/config"
	"gochurch/internal/database"
	"gochurch/internal/seed"
)

func main() {
	defaults := seed.DefaultOptions()
	numChurches := flag.Int("churches", defaults.Churches, "Number of churches to create")
	numUsers := flag.Int("users", defaults.Users, "Number of users to create")
	numPosts := flag.Int("posts", defaults.Posts, "Number of posts to create")
	numComments := flag.Int("comments", defaults.Comments, "Number of comments to create")
	shouldClean := flag.Bool("clean", false, "Clear community data before seeding")
	boardsOnly := flag.Bool("boards-only", false, "Only ensure the built-in boards exist")
	randSeed := flag.Int64("seed", 0, "Random seed (0 picks one)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *boardsOnly {
		boards, err := seed.Boards(ctx, db)
		if err != nil {
			log.Fatalf("Board seeding failed: %v", err)
		}
		log.Printf("%d built-in boards present", len(boards))
		return
	}

	log.Printf("Target: %d churches, %d users, %d posts, %d comments, clean=%v",
		*numChurches, *numUsers, *numPosts, *numComments, *shouldClean)

	summary, err := seed.Seed(ctx, db, seed.Options{
		Churches: *numChurches,
		Users:    *numUsers,
		Posts:    *numPosts,
		Comments: *numComments,
		Clean:    *shouldClean,
		Seed:     *randSeed,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Created %d churches, %d users, %d posts, %d comments, %d tags, %d verifications, %d actions",
		summary.Churches, summary.Users, summary.Posts, summary.Comments,
		summary.Tags, summary.Verifications, summary.Actions)
	log.Printf("All sample users have the password: %s", seed.SamplePassword)
}
