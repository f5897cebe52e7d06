package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsWordBoundaries(t *testing.T) {
	cases := []struct {
		text string
		term string
		want bool
	}{
		{"my career in retail", "r", false},
		{"my career in retail", "c", false},
		{"I use Python daily", "python", true},
		{"experience with R and SQL", "r", true},
		{"strong c++ background", "c++", true},
		{"node.js services", "node.js", true},
		{"a/b testing at scale", "a/b testing", true},
		{"javascripting", "javascript", false},
		{"JavaScript developer", "javascript", true},
		{"scala experience", "scala", true},
		{"escalation handling", "scala", false},
		{"", "go", false},
		{"go", "", false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, Contains(tc.text, tc.term), "Contains(%q, %q)", tc.text, tc.term)
	}
}

func TestContainsAny(t *testing.T) {
	assert.True(t, ContainsAny("senior data engineer", []string{"barista", "engineer"}))
	assert.False(t, ContainsAny("senior data engineer", []string{"barista", "chef"}))
	assert.False(t, ContainsAny("anything", nil))
}
