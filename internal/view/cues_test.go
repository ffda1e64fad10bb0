package view

import (
	"context"
	"testing"

	"quiz-runner/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestPageCues_DeliversOnce(t *testing.T) {
	cues := NewPageCues()
	ctx := WithPageRequest(context.Background())

	assert.NoError(t, cues.Play(ctx, domain.CueTap))
	assert.NoError(t, cues.Play(ctx, domain.CueWrong))

	assert.Equal(t, domain.CueWrong, cues.Take())
	assert.Empty(t, cues.Take())
}

func TestPageCues_IgnoresOtherRequests(t *testing.T) {
	cues := NewPageCues()

	assert.NoError(t, cues.Play(context.Background(), domain.CueCorrect))
	assert.Empty(t, cues.Take())

	detached := context.WithoutCancel(WithPageRequest(context.Background()))
	assert.NoError(t, cues.Play(detached, domain.CueCorrect))
	assert.Equal(t, domain.CueCorrect, cues.Take())
}
