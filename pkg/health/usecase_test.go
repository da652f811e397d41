package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubChecker struct {
	name string
	err  error
}

func (c stubChecker) Name() string                  { return c.name }
func (c stubChecker) Check(_ context.Context) error { return c.err }

func TestReadyNamesFailingDependency(t *testing.T) {
	svc := NewService(
		stubChecker{name: "postgres"},
		stubChecker{name: "shortlist-store", err: errors.New("disk full")},
	)
	err := svc.Ready(context.Background())
	assert.EqualError(t, err, "shortlist-store: disk full")
}

func TestReadyAllHealthy(t *testing.T) {
	svc := NewService(stubChecker{name: "postgres"})
	assert.NoError(t, svc.Ready(context.Background()))
}
