package checkers

import (
	"context"

	"github.com/atslens/ats-engine/pkg/shortlist"
)

// ShortlistChecker verifies the shortlist store answers reads. Used when the
// service runs on the JSON file store instead of postgres.
type ShortlistChecker struct {
	repo shortlist.Repository
}

func NewShortlistChecker(repo shortlist.Repository) *ShortlistChecker {
	return &ShortlistChecker{repo: repo}
}

func (c *ShortlistChecker) Name() string { return "shortlist-store" }

func (c *ShortlistChecker) Check(ctx context.Context) error {
	_, err := c.repo.List(ctx)
	return err
}
