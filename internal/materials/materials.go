// Package materials drafts application documents for a chosen listing: a
// cover letter, resume bullet suggestions and a short intro email. The
// drafts are template-based starting points meant to be edited, not sent
// verbatim.
package materials

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"github.com/cliffordnwanna/job-hunter/internal/jobs"
	"github.com/cliffordnwanna/job-hunter/internal/match"
	"github.com/cliffordnwanna/job-hunter/internal/profile"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// DefaultName is used when the applicant's name is not configured.
const DefaultName = "[Your Name]"

const maxBullets = 5

// Package bundles every generated document for one listing.
type Package struct {
	CoverLetter string
	Bullets     []string
	Email       string
	JobURL      string
}

type Generator struct {
	name   string
	tmpl   *template.Template
	logger *zap.Logger
}

func NewGenerator(applicantName string, logger *zap.Logger) *Generator {
	if applicantName == "" {
		applicantName = DefaultName
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	tmpl := template.Must(template.New("materials").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templateFS, "templates/*.tmpl"))

	return &Generator{name: applicantName, tmpl: tmpl, logger: logger}
}

type templateData struct {
	Opening      string
	Title        string
	Company      string
	Name         string
	Email        string
	Phone        string
	Years        int
	Skills       []string
	Requirements []string
}

func (g *Generator) data(p profile.Profile, l *jobs.Listing) templateData {
	d := templateData{
		Opening:      opening(l),
		Title:        l.Title,
		Company:      l.Company,
		Name:         g.name,
		Years:        p.YearsExperience,
		Skills:       MatchSkills(p, l),
		Requirements: ExtractRequirements(l.Description),
	}
	if d.Title == "" {
		d.Title = "open role"
	}
	if d.Company == "" {
		d.Company = "your company"
	}
	if p.Email != profile.NotFound {
		d.Email = p.Email
	}
	if p.Phone != profile.NotFound {
		d.Phone = p.Phone
	}
	return d
}

// CoverLetter drafts a cover letter tailored to the listing.
func (g *Generator) CoverLetter(p profile.Profile, l *jobs.Listing) (string, error) {
	var b strings.Builder
	if err := g.tmpl.ExecuteTemplate(&b, "cover_letter.tmpl", g.data(p, l)); err != nil {
		return "", fmt.Errorf("rendering cover letter: %w", err)
	}
	return b.String(), nil
}

// Email drafts a short introduction email for the listing.
func (g *Generator) Email(p profile.Profile, l *jobs.Listing) (string, error) {
	var b strings.Builder
	if err := g.tmpl.ExecuteTemplate(&b, "intro_email.tmpl", g.data(p, l)); err != nil {
		return "", fmt.Errorf("rendering intro email: %w", err)
	}
	return b.String(), nil
}

// Bullets suggests resume bullet points emphasizing the skills the listing
// asks for. Without any overlap it falls back to the profile's own skills.
func (g *Generator) Bullets(p profile.Profile, l *jobs.Listing) []string {
	skills := MatchSkills(p, l)
	if len(skills) == 0 {
		skills = p.Skills
	}
	if len(skills) > maxBullets {
		skills = skills[:maxBullets]
	}

	patterns := []string{
		"Applied %s on real projects with measurable outcomes",
		"Built and maintained workflows centered on %s",
		"Used %s daily to support team goals and delivery deadlines",
	}

	bullets := make([]string, 0, len(skills))
	for i, skill := range skills {
		bullets = append(bullets, fmt.Sprintf(patterns[i%len(patterns)], skill))
	}
	return bullets
}

// Generate produces the full application package for one listing.
func (g *Generator) Generate(p profile.Profile, l *jobs.Listing) (*Package, error) {
	letter, err := g.CoverLetter(p, l)
	if err != nil {
		return nil, err
	}
	email, err := g.Email(p, l)
	if err != nil {
		return nil, err
	}

	g.logger.Info("generated application materials",
		zap.String("title", l.Title),
		zap.String("company", l.Company),
	)
	return &Package{
		CoverLetter: letter,
		Bullets:     g.Bullets(p, l),
		Email:       email,
		JobURL:      l.URL,
	}, nil
}

// Render flattens a package into one sectioned text document.
func (pkg *Package) Render() string {
	var b strings.Builder
	b.WriteString("=== COVER LETTER ===\n\n")
	b.WriteString(strings.TrimSpace(pkg.CoverLetter))
	b.WriteString("\n\n=== RESUME BULLETS ===\n\n")
	for _, bullet := range pkg.Bullets {
		b.WriteString("- " + bullet + "\n")
	}
	b.WriteString("\n=== INTRO EMAIL ===\n\n")
	b.WriteString(strings.TrimSpace(pkg.Email))
	b.WriteString("\n")
	if pkg.JobURL != "" {
		b.WriteString("\nJob URL: " + pkg.JobURL + "\n")
	}
	return b.String()
}

var (
	dataTerms   = []string{"data", "scientist", "analyst", "ai", "machine learning", "ml"}
	socialTerms = []string{"social media", "content", "community", "marketing"}
)

// opening picks the letter's first paragraph by the flavor of the role.
func opening(l *jobs.Listing) string {
	title := l.Title
	if title == "" {
		title = "open role"
	}
	company := l.Company
	if company == "" {
		company = "your company"
	}

	flavor := l.Title + " " + l.Description
	switch {
	case match.ContainsAny(flavor, dataTerms):
		return fmt.Sprintf("I'm excited to apply for the %s position at %s. "+
			"With a strong foundation in working with data and a drive to turn raw numbers into decisions, "+
			"I believe I can contribute from day one.", title, company)
	case match.ContainsAny(flavor, socialTerms):
		return fmt.Sprintf("I'm excited to apply for the %s position at %s. "+
			"I live and breathe digital content, and growing an engaged audience is exactly the kind of "+
			"challenge I look for.", title, company)
	default:
		return fmt.Sprintf("I'm writing to express my interest in the %s position at %s. "+
			"My background aligns well with this role and I'm confident I can add value quickly.", title, company)
	}
}
