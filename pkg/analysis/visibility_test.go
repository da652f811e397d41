package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateStrongAllMandatory(t *testing.T) {
	v := Gate(82, MatchResult{Skills: CategoryMatch{Matched: []string{"Python"}, Missing: []string{}}})
	assert.True(t, v.IsRecruiterVisible)
	assert.True(t, v.ContactDetailsUnlocked)
	assert.False(t, v.IsLimitedVisibility)
	assert.False(t, v.IsHidden)
	assert.Empty(t, v.MissingMandatory)
}

func TestGateStrongWithMissingMandatory(t *testing.T) {
	v := Gate(82, MatchResult{Skills: CategoryMatch{Missing: []string{"AWS"}}})
	assert.True(t, v.IsRecruiterVisible)
	assert.False(t, v.ContactDetailsUnlocked)
	assert.True(t, v.IsLimitedVisibility)
	assert.False(t, v.IsHidden)
	assert.Equal(t, []string{"AWS"}, v.MissingMandatory)
}

func TestGatePotentialBand(t *testing.T) {
	v := Gate(60, MatchResult{Skills: CategoryMatch{Missing: []string{}}})
	assert.True(t, v.IsRecruiterVisible)
	assert.True(t, v.IsLimitedVisibility)
	assert.False(t, v.ContactDetailsUnlocked)
	assert.False(t, v.IsHidden)
}

func TestGateHidden(t *testing.T) {
	v := Gate(40, MatchResult{Skills: CategoryMatch{Missing: []string{}}})
	assert.False(t, v.IsRecruiterVisible)
	assert.True(t, v.IsHidden)
	assert.False(t, v.ContactDetailsUnlocked)
}

func TestGateBandBoundaries(t *testing.T) {
	assert.True(t, Gate(75, MatchResult{}).ContactDetailsUnlocked)
	assert.False(t, Gate(74, MatchResult{}).ContactDetailsUnlocked)
	assert.True(t, Gate(50, MatchResult{}).IsRecruiterVisible)
	assert.True(t, Gate(49, MatchResult{}).IsHidden)
}

func TestGateNilMissingBecomesEmpty(t *testing.T) {
	v := Gate(90, MatchResult{})
	assert.NotNil(t, v.MissingMandatory)
	assert.Empty(t, v.MissingMandatory)
}
