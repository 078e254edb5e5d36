package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gochurch/internal/middleware"
	"gochurch/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SamplePassword is the password of every generated user.
const SamplePassword = "password123"

// Options configures a sample-data run. Zero counts fall back to the
// defaults below.
type Options struct {
	Churches int
	Users    int
	Posts    int
	Comments int
	Clean    bool
	// Seed fixes the random source. Zero picks a random seed.
	Seed int64
}

// DefaultOptions mirrors the sample-data task's default volume.
func DefaultOptions() Options {
	return Options{Churches: 5, Users: 20, Posts: 50, Comments: 100}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Churches <= 0 {
		o.Churches = d.Churches
	}
	if o.Users <= 0 {
		o.Users = d.Users
	}
	if o.Posts <= 0 {
		o.Posts = d.Posts
	}
	if o.Comments < 0 {
		o.Comments = 0
	} else if o.Comments == 0 {
		o.Comments = d.Comments
	}
	return o
}

// Summary reports how many rows a run created.
type Summary struct {
	Churches      int              `json:"churches"`
	Users         int              `json:"users"`
	Profiles      int              `json:"profiles"`
	Boards        int              `json:"boards"`
	Posts         int              `json:"posts"`
	Comments      int              `json:"comments"`
	Tags          int              `json:"tags"`
	Verifications int              `json:"verifications"`
	Actions       int              `json:"actions"`
	Cleared       map[string]int64 `json:"cleared,omitempty"`
}

// Seed fills the database with a connected sample community: churches,
// users with profiles, the built-in boards, posts with tags and comments,
// identity verifications and action logs. Everything is written in one
// transaction.
func Seed(ctx context.Context, db *gorm.DB, opts Options) (*Summary, error) {
	opts = opts.withDefaults()
	c, err := LoadCatalog()
	if err != nil {
		return nil, err
	}

	middleware.Logger.InfoContext(ctx, "seeding sample data",
		slog.Int("users", opts.Users),
		slog.Int("posts", opts.Posts),
		slog.Int("comments", opts.Comments),
		slog.Bool("clean", opts.Clean),
	)

	summary := &Summary{}
	if opts.Clean {
		cleared, err := ClearAll(ctx, db)
		if err != nil {
			return nil, err
		}
		summary.Cleared = cleared
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(SamplePassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash sample password: %w", err)
	}

	g := &generator{
		fake:    gofakeit.New(opts.Seed),
		catalog: c,
		hash:    string(hash),
		now:     time.Now().UTC(),
	}

	boards, err := Boards(ctx, db)
	if err != nil {
		return nil, err
	}
	summary.Boards = len(boards)

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			name string
			run  func(tx *gorm.DB) error
		}{
			{"churches", func(tx *gorm.DB) error { return g.churches(tx, opts.Churches) }},
			{"users", func(tx *gorm.DB) error { return g.users(tx, opts.Users) }},
			{"profiles", g.profiles},
			{"posts", func(tx *gorm.DB) error { return g.posts(tx, boards, opts.Posts) }},
			{"comments", func(tx *gorm.DB) error { return g.comments(tx, opts.Comments) }},
			{"tags", g.tags},
			{"verifications", g.verifications},
			{"actions", g.actions},
		}
		for _, step := range steps {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := step.run(tx); err != nil {
				return fmt.Errorf("seed %s: %w", step.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary.Churches = len(g.churchRows)
	summary.Users = len(g.userRows)
	summary.Profiles = g.profileCount
	summary.Posts = len(g.postRows)
	summary.Comments = len(g.commentRows)
	summary.Tags = g.tagCount
	summary.Verifications = g.verificationCount
	summary.Actions = g.actionCount

	middleware.Logger.InfoContext(ctx, "sample data seeded",
		slog.Int("users", summary.Users),
		slog.Int("posts", summary.Posts),
		slog.Int("comments", summary.Comments),
		slog.Int("actions", summary.Actions),
	)
	return summary, nil
}

// generator holds the rows created so far so later steps can reference them.
type generator struct {
	fake    *gofakeit.Faker
	catalog *Catalog
	hash    string
	now     time.Time

	churchRows  []models.Church
	userRows    []models.User
	activeUsers []models.User
	postRows    []models.Post
	commentRows []models.Comment

	profileCount      int
	tagCount          int
	verificationCount int
	actionCount       int
}

func (g *generator) pick(n int) int {
	return g.fake.Number(0, n-1)
}

// sample returns up to k distinct indexes in [0, n).
func (g *generator) sample(n, k int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	g.fake.ShuffleInts(idx)
	if k < n {
		idx = idx[:k]
	}
	return idx
}

func (g *generator) recent(days int) time.Time {
	return g.fake.DateRange(g.now.AddDate(0, 0, -days), g.now).UTC()
}

func (g *generator) churches(tx *gorm.DB, count int) error {
	names := g.catalog.Churches
	if count > len(names) {
		count = len(names)
	}
	g.churchRows = make([]models.Church, 0, count)
	for _, name := range names[:count] {
		g.churchRows = append(g.churchRows, models.Church{
			Name:        name,
			Address:     g.fake.Address().Address,
			PhoneNumber: g.fake.Phone(),
		})
	}
	if len(g.churchRows) == 0 {
		return nil
	}
	return tx.Create(&g.churchRows).Error
}

// users creates one admin followed by regular users, about a quarter of
// them blocked.
func (g *generator) users(tx *gorm.DB, count int) error {
	g.userRows = make([]models.User, 0, count)
	stamp := g.now.UnixNano()
	for i := 0; i < count; i++ {
		username := strings.ToLower(g.fake.Username())
		g.userRows = append(g.userRows, models.User{
			Email:        fmt.Sprintf("%s.%d.%d@example.org", username, stamp, i),
			Username:     username,
			PasswordHash: g.hash,
			IsAdmin:      i == 0,
			IsBlocked:    i > 0 && g.fake.Number(1, 4) == 1,
		})
	}
	if err := tx.Create(&g.userRows).Error; err != nil {
		return err
	}
	for _, u := range g.userRows {
		if !u.IsBlocked {
			g.activeUsers = append(g.activeUsers, u)
		}
	}
	return nil
}

func (g *generator) profiles(tx *gorm.DB) error {
	profiles := make([]models.Profile, 0, len(g.userRows))
	for _, u := range g.userRows {
		p := models.Profile{
			UserID:    u.ID,
			Nickname:  g.fake.Username(),
			Thumbnail: g.fake.ImageURL(200, 200),
		}
		if len(g.churchRows) > 0 && g.fake.Bool() {
			id := g.churchRows[g.pick(len(g.churchRows))].ID
			p.ChurchID = &id
		}
		profiles = append(profiles, p)
	}
	if len(profiles) == 0 {
		return nil
	}
	g.profileCount = len(profiles)
	return tx.Create(&profiles).Error
}

// posts writes posts by active users with pre-seeded view and like counts.
func (g *generator) posts(tx *gorm.DB, boards []models.Board, count int) error {
	if len(boards) == 0 || len(g.activeUsers) == 0 {
		return nil
	}
	g.postRows = make([]models.Post, 0, count)
	for i := 0; i < count; i++ {
		tmpl := g.catalog.Posts[g.pick(len(g.catalog.Posts))]
		created := g.recent(30)
		g.postRows = append(g.postRows, models.Post{
			BoardID:   boards[g.pick(len(boards))].ID,
			AuthorID:  g.activeUsers[g.pick(len(g.activeUsers))].ID,
			Title:     tmpl.Title,
			Contents:  tmpl.Contents,
			ViewCount: g.fake.Number(5, 100),
			LikeCount: g.fake.Number(0, 20),
			CreatedAt: created,
			UpdatedAt: created,
		})
	}
	if len(g.postRows) == 0 {
		return nil
	}
	return tx.CreateInBatches(&g.postRows, 100).Error
}

// comments writes top-level comments and bumps each post's comment_count
// by the number it received.
func (g *generator) comments(tx *gorm.DB, count int) error {
	if len(g.postRows) == 0 || count == 0 {
		return nil
	}
	perPost := make(map[uint]int)
	g.commentRows = make([]models.Comment, 0, count)
	for i := 0; i < count; i++ {
		post := g.postRows[g.pick(len(g.postRows))]
		g.commentRows = append(g.commentRows, models.Comment{
			PostID:    post.ID,
			AuthorID:  g.activeUsers[g.pick(len(g.activeUsers))].ID,
			Contents:  g.catalog.Comments[g.pick(len(g.catalog.Comments))],
			CreatedAt: g.fake.DateRange(post.CreatedAt, g.now).UTC(),
		})
		perPost[post.ID]++
	}
	if err := tx.CreateInBatches(&g.commentRows, 100).Error; err != nil {
		return err
	}
	for postID, n := range perPost {
		err := tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + ?", n)).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// tags attaches one to three distinct catalog tags to every post.
func (g *generator) tags(tx *gorm.DB) error {
	var rows []models.PostTag
	for _, post := range g.postRows {
		for _, i := range g.sample(len(g.catalog.Tags), g.fake.Number(1, 3)) {
			rows = append(rows, models.PostTag{PostID: post.ID, Tag: g.catalog.Tags[i]})
		}
	}
	if len(rows) == 0 {
		return nil
	}
	g.tagCount = len(rows)
	return tx.CreateInBatches(&rows, 200).Error
}

// verifications files requests for up to ten users. About a third are
// already reviewed by the admin.
func (g *generator) verifications(tx *gorm.DB) error {
	if len(g.userRows) == 0 {
		return nil
	}
	admin := g.userRows[0].ID
	var rows []models.IdentityVerification
	for _, i := range g.sample(len(g.userRows), 10) {
		v := models.IdentityVerification{
			UserID:    g.userRows[i].ID,
			PhotoURL:  g.fake.ImageURL(800, 600),
			Status:    models.VerificationStatusPending,
			CreatedAt: g.recent(14),
		}
		if len(g.churchRows) > 0 {
			id := g.churchRows[g.pick(len(g.churchRows))].ID
			v.ChurchID = &id
		}
		if g.fake.Number(1, 3) == 1 {
			reviewed := g.fake.DateRange(v.CreatedAt, g.now).UTC()
			v.Status = models.VerificationStatusApproved
			if g.fake.Bool() {
				v.Status = models.VerificationStatusRejected
			}
			v.ReviewedBy = &admin
			v.ReviewedAt = &reviewed
		}
		rows = append(rows, v)
	}
	g.verificationCount = len(rows)
	return tx.Create(&rows).Error
}

// actions gives each post 5-20 and each comment 1-5 action logs from
// distinct users, three quarters of them active.
func (g *generator) actions(tx *gorm.DB) error {
	postActions := []models.ActionType{
		models.ActionTypeView, models.ActionTypeLike, models.ActionTypeBookmark, models.ActionTypeReport,
	}
	commentActions := []models.ActionType{models.ActionTypeLike, models.ActionTypeReport}

	var rows []models.ActionLog
	add := func(target models.TargetType, targetID uint, kinds []models.ActionType, lo, hi int) {
		for _, i := range g.sample(len(g.userRows), g.fake.Number(lo, hi)) {
			rows = append(rows, models.ActionLog{
				UserID:     g.userRows[i].ID,
				ActionType: kinds[g.pick(len(kinds))],
				TargetType: target,
				TargetID:   targetID,
				IsOn:       g.fake.Number(1, 4) != 1,
				CreatedAt:  g.recent(30),
			})
		}
	}
	for _, p := range g.postRows {
		add(models.TargetTypePost, p.ID, postActions, 5, 20)
	}
	for _, c := range g.commentRows {
		add(models.TargetTypeComment, c.ID, commentActions, 1, 5)
	}
	if len(rows) == 0 {
		return nil
	}
	g.actionCount = len(rows)
	return tx.CreateInBatches(&rows, 200).Error
}
