package view

import (
	"context"
	"sync"

	"quiz-runner/internal/domain"
)

type pageRequestKey struct{}

// WithPageRequest marks ctx as belonging to a page form post. Only cues
// played under such a context reach the rendered page.
func WithPageRequest(ctx context.Context) context.Context {
	return context.WithValue(ctx, pageRequestKey{}, true)
}

func fromPageRequest(ctx context.Context) bool {
	marked, _ := ctx.Value(pageRequestKey{}).(bool)
	return marked
}

// PageCues is a CuePlayer that hands the latest cue to the next rendered page,
// where the browser plays the sound or vibrates. A cue is delivered once.
// Cues caused by JSON API calls are dropped.
type PageCues struct {
	mu  sync.Mutex
	cue domain.Cue
}

func NewPageCues() *PageCues { return &PageCues{} }

func (p *PageCues) Play(ctx context.Context, cue domain.Cue) error {
	if !fromPageRequest(ctx) {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cue = cue
	return nil
}

// Take returns the pending cue and clears it.
func (p *PageCues) Take() domain.Cue {
	p.mu.Lock()
	defer p.mu.Unlock()
	cue := p.cue
	p.cue = ""
	return cue
}
