package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkillsWordBoundary(t *testing.T) {
	tax := DefaultTaxonomy()

	p := Extract("I spent my career in retail.", tax)
	assert.NotContains(t, p.Skills, "r")
	assert.NotContains(t, p.Skills, "c")
	assert.NotContains(t, p.Skills, "cv")

	p = Extract("I use Python daily and write SQL queries.", tax)
	assert.Contains(t, p.Skills, "python")
	assert.Contains(t, p.Skills, "sql")
}

func TestExtractSkillsPunctuatedTerms(t *testing.T) {
	tax := DefaultTaxonomy()
	p := Extract("Shipped c++ services behind a node.js gateway with ci/cd.", tax)
	assert.Contains(t, p.Skills, "c++")
	assert.Contains(t, p.Skills, "node.js")
	assert.Contains(t, p.Skills, "ci/cd")
}

func TestExtractSkillsIsSet(t *testing.T) {
	tax := Taxonomy{Categories: map[string][]string{
		"a": {"python", "sql"},
		"b": {"python"},
	}}
	skills := ExtractSkills("python python sql", tax)
	assert.Equal(t, []string{"python", "sql"}, skills)
}

func TestExtractYears(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"5 years of experience in marketing", 5},
		{"I worked there 2015-2020", 5},
		{"3 years experience, plus 2010-2020 at Acme", 10},
		{"experience: 7 years", 7},
		{"4+ years in data analysis", 4},
		{"no dates here at all", 0},
		{"2018-2016 is a malformed range", 0},
	}

	for _, tc := range cases {
		p := Extract(tc.text, DefaultTaxonomy())
		assert.Equalf(t, tc.want, p.YearsExperience, "text %q", tc.text)
	}
}

func TestExtractYearsSumsRanges(t *testing.T) {
	p := Extract("Acme 2010-2013, Globex 2015-2019", DefaultTaxonomy())
	assert.Equal(t, 7, p.YearsExperience)
}

func TestExtractContacts(t *testing.T) {
	p := Extract("Reach me at jane.doe@example.com or +1 (555) 123-4567.", DefaultTaxonomy())
	assert.Equal(t, "jane.doe@example.com", p.Email)
	assert.NotEqual(t, NotFound, p.Phone)
}

func TestExtractSentinels(t *testing.T) {
	p := Extract("", DefaultTaxonomy())
	assert.Equal(t, NotFound, p.Email)
	assert.Equal(t, NotFound, p.Phone)
	assert.Equal(t, 0, p.YearsExperience)
	assert.Equal(t, 0, p.SkillCount())
}

func TestHasSkill(t *testing.T) {
	p := Extract("Python and Figma every day.", DefaultTaxonomy())
	assert.True(t, p.HasSkill("python"))
	assert.True(t, p.HasSkill("Figma"))
	assert.False(t, p.HasSkill("cobol"))
}
