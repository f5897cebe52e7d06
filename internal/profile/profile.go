// Package profile turns raw résumé text into a structured profile.
//
// Extraction never fails: a field that cannot be found gets its sentinel
// value (NotFound, zero skills, zero years). The résumé document itself is
// parsed elsewhere; this package only consumes extracted plain text.
package profile

import (
	"errors"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cliffordnwanna/job-hunter/internal/match"
)

// NotFound is the sentinel for absent contact fields.
const NotFound = "Not found"

// ErrUnsupportedFormat is returned when the résumé file is not plain text.
// Document formats such as PDF or DOCX must be converted by an external
// parser before extraction.
var ErrUnsupportedFormat = errors.New("unsupported resume format: plain text expected")

// Profile is the structured, read-only view of a résumé. It is created once
// per document and consumed by the scorer and the material generator.
type Profile struct {
	Skills          []string
	YearsExperience int
	Email           string
	Phone           string
	RawText         string
}

// SkillCount returns the number of distinct skills found.
func (p *Profile) SkillCount() int { return len(p.Skills) }

// HasSkill reports whether the profile contains the given skill.
func (p *Profile) HasSkill(skill string) bool {
	skill = strings.ToLower(skill)
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`\+?\(?[0-9]{1,4}\)?[-\s.]?\(?[0-9]{1,4}\)?[-\s.]?[0-9]{2,9}`)

	yearsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*years?\s+(?:of\s+)?experience`),
		regexp.MustCompile(`experience[:\s]+(\d+)\+?\s*years?`),
		regexp.MustCompile(`(\d+)\+?\s*years?\s+(?:in|working|as)\b`),
	}

	dateRangeRe = regexp.MustCompile(`(20\d{2}|19\d{2})\s*[-–—]\s*(20\d{2}|19\d{2}|present|current)`)
)

// Extract builds a Profile from raw résumé text using the given taxonomy.
func Extract(text string, tax Taxonomy) Profile {
	return Profile{
		Skills:          ExtractSkills(text, tax),
		YearsExperience: extractYears(text),
		Email:           firstMatch(emailRe, text),
		Phone:           firstMatch(phoneRe, text),
		RawText:         text,
	}
}

// ExtractSkills returns the sorted set of taxonomy skills present in the
// text. Terms must appear delimited by word boundaries, so "career" does not
// report the language "r".
func ExtractSkills(text string, tax Taxonomy) []string {
	found := make(map[string]struct{})

	for _, skills := range tax.Categories {
		for _, skill := range skills {
			if match.Contains(text, skill) {
				found[skill] = struct{}{}
			}
		}
	}
	for _, lang := range tax.Languages {
		if match.Contains(text, lang) {
			found[lang] = struct{}{}
		}
	}

	result := make([]string, 0, len(found))
	for skill := range found {
		result = append(result, skill)
	}
	sort.Strings(result)
	return result
}

// extractYears estimates total years of experience. It takes the maximum of
// explicit "N years of experience" phrasing and the summed span of all
// YYYY-YYYY date ranges, with "present"/"current" resolved to the current
// year.
func extractYears(text string) int {
	lower := strings.ToLower(text)
	years := 0

	for _, re := range yearsPatterns {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > years {
				years = n
			}
		}
	}

	total := 0
	for _, m := range dateRangeRe.FindAllStringSubmatch(lower, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := time.Now().Year()
		if m[2] != "present" && m[2] != "current" {
			end, err = strconv.Atoi(m[2])
			if err != nil {
				continue
			}
		}
		if end > start {
			total += end - start
		}
	}
	if total > years {
		years = total
	}

	return years
}

func firstMatch(re *regexp.Regexp, text string) string {
	if m := re.FindString(text); m != "" {
		return m
	}
	return NotFound
}
