package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompaniesGroupsAndSorts(t *testing.T) {
	jobs := []Job{
		{Company: "Likhain Studio", Remote: true},
		{Company: "Bayan Learning Center"},
		{Company: "likhain studio"},
		{Company: "  "},
	}

	got := Companies(jobs)

	assert.Equal(t, []Company{
		{Name: "Bayan Learning Center", JobCount: 1},
		{Name: "Likhain Studio", JobCount: 2, Remote: true},
	}, got)
}

func TestCompaniesOfNothingIsEmpty(t *testing.T) {
	got := Companies(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHasApplyLink(t *testing.T) {
	assert.False(t, Job{}.HasApplyLink())
	assert.True(t, Job{ApplyLink: "mailto:hr@example.ph"}.HasApplyLink())
}
