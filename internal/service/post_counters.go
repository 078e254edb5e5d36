package service

import (
	"context"

	"gochurch/internal/observability"
	"gochurch/internal/repository"
)

// CounterSink receives the events that move a post's denormalized counters.
// A missing post is not an error; the event is simply dropped.
type CounterSink interface {
	OnView(ctx context.Context, postID uint) error
	OnLikeToggled(ctx context.Context, postID uint, on bool) error
	OnCommentCreated(ctx context.Context, postID uint) error
}

// PostCounters is the CounterSink backed by single-statement counter
// updates on the posts table.
type PostCounters struct {
	posts repository.PostRepository
}

// NewPostCounters returns a CounterSink writing through posts.
func NewPostCounters(posts repository.PostRepository) *PostCounters {
	return &PostCounters{posts: posts}
}

var _ CounterSink = (*PostCounters)(nil)

func (p *PostCounters) OnView(ctx context.Context, postID uint) error {
	touched, err := p.posts.IncrementViewCount(ctx, postID)
	if touched {
		observability.RecordCounterUpdate("view", 1)
	}
	return err
}

// OnLikeToggled raises like_count when on and lowers it otherwise. The
// decrement stops at zero.
func (p *PostCounters) OnLikeToggled(ctx context.Context, postID uint, on bool) error {
	var (
		touched bool
		err     error
		delta   = 1
	)
	if on {
		touched, err = p.posts.IncrementLikeCount(ctx, postID)
	} else {
		delta = -1
		touched, err = p.posts.DecrementLikeCount(ctx, postID)
	}
	if touched {
		observability.RecordCounterUpdate("like", delta)
	}
	return err
}

func (p *PostCounters) OnCommentCreated(ctx context.Context, postID uint) error {
	touched, err := p.posts.IncrementCommentCount(ctx, postID)
	if touched {
		observability.RecordCounterUpdate("comment", 1)
	}
	return err
}
