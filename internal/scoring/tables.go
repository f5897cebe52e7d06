package scoring

// Static lookup configuration for the scorer. Loaded once, never mutated.

// adjacentRoles maps a profile-indicative seed term to job-title terms
// considered a reasonable career-lateral match.
var adjacentRoles = map[string][]string{
	// marketing and social media
	"social media": {"content creator", "community manager", "brand strategist",
		"digital marketer", "marketing coordinator", "influencer"},
	"content":   {"copywriter", "writer", "blogger", "editor", "content strategist"},
	"marketing": {"growth", "campaign manager", "brand coordinator", "seo"},
	// tech and engineering
	"software":   {"developer", "engineer", "programmer", "full stack", "backend", "frontend"},
	"python":     {"data scientist", "machine learning", "backend", "automation"},
	"javascript": {"frontend", "react", "node", "web developer", "full stack"},
	"data":       {"analyst", "scientist", "bi", "reporting", "insights", "analytics"},
	// design
	"design": {"ui", "ux", "graphic", "visual", "product designer", "creative"},
	"figma":  {"ui designer", "ux designer", "product designer", "visual designer"},
	// business and sales
	"sales":   {"business development", "account executive", "account manager", "bdm"},
	"account": {"customer success", "client relations", "account manager"},
	// support and admin
	"customer":          {"support", "service", "help desk", "success", "chat"},
	"admin":             {"assistant", "coordinator", "office manager", "executive assistant"},
	"virtual assistant": {"admin", "data entry", "scheduling", "bookkeeping"},
	// hr and recruiting
	"recruiting": {"talent acquisition", "hr", "sourcer", "recruiter"},
	"hr":         {"people operations", "talent", "employee relations"},
}

// skillSynonyms widens a profile skill into equivalent evidence terms.
var skillSynonyms = map[string][]string{
	"python":             {"programming", "coding", "development"},
	"javascript":         {"js", "frontend", "web development"},
	"react":              {"frontend", "ui development", "web app"},
	"sql":                {"database", "data", "queries"},
	"excel":              {"spreadsheet", "data analysis", "reporting"},
	"canva":              {"graphic design", "visual design", "design tools"},
	"figma":              {"ui design", "ux design", "prototyping"},
	"social media":       {"smm", "social marketing", "digital marketing"},
	"content creation":   {"content writing", "copywriting", "storytelling"},
	"customer service":   {"customer support", "help desk", "client support"},
	"project management": {"pm", "coordination", "planning"},
	"analytics":          {"data analysis", "reporting", "insights", "metrics"},
}

// titleKeywords are generic role and function terms that earn a bonus when
// present in both the profile and the job title.
var titleKeywords = []string{
	"manager", "coordinator", "specialist", "analyst", "developer", "engineer",
	"designer", "assistant", "associate", "consultant", "administrator",
	"marketing", "sales", "support", "content", "data", "software", "product",
}

// entryKeywords and seniorKeywords classify a title's seniority flavor.
var (
	entryKeywords  = []string{"junior", "associate", "assistant", "coordinator", "entry", "intern", "specialist"}
	seniorKeywords = []string{"senior", "lead", "head", "director", "manager", "principal"}
)
