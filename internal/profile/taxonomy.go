package profile

// Taxonomy groups known skill phrases by domain. It is static lookup data:
// loaded once, never mutated, and injectable so each category can be tested
// in isolation.
type Taxonomy struct {
	Categories map[string][]string
	Languages  []string
}

// DefaultTaxonomy returns the built-in skill taxonomy.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		Categories: skillCategories,
		Languages:  programmingLanguages,
	}
}

var programmingLanguages = []string{
	"python", "java", "javascript", "r", "sql", "scala", "c++", "c#",
}

var skillCategories = map[string][]string{
	"social_media": {
		"instagram", "facebook", "twitter", "tiktok", "linkedin", "youtube",
		"snapchat", "pinterest", "social media management", "content creation",
		"content strategy", "community management", "social media marketing",
		"social media analytics", "engagement", "brand awareness", "influencer marketing",
		"social media advertising", "paid social", "organic social", "hashtag strategy",
		"social listening", "crisis management", "brand voice", "copywriting",
		"content calendar", "scheduling", "hootsuite", "buffer", "sprout social",
		"later", "meta business suite", "facebook ads manager", "instagram insights",
		"twitter analytics", "tiktok analytics", "canva", "adobe creative suite",
		"photoshop", "illustrator", "video editing", "premiere pro", "final cut",
		"capcut", "seo", "sem", "google analytics", "social media reporting",
		"kpi tracking", "roi analysis", "a/b testing", "audience insights",
		"social media strategy", "brand management", "reputation management",
	},
	"data_science": {
		"python", "r", "sql", "java", "scala", "javascript", "c++",
		"machine learning", "deep learning", "neural networks", "ai", "artificial intelligence",
		"natural language processing", "nlp", "computer vision", "cv",
		"data analysis", "data science", "statistics", "probability",
		"tensorflow", "pytorch", "keras", "scikit-learn", "sklearn",
		"pandas", "numpy", "scipy", "matplotlib", "seaborn", "plotly",
		"jupyter", "apache spark", "hadoop", "big data", "etl",
		"aws", "azure", "gcp", "google cloud", "cloud computing",
		"docker", "kubernetes", "mlops", "model deployment",
		"tableau", "power bi", "git", "github", "agile", "scrum",
	},
	"engineering": {
		"software engineering", "web development", "frontend", "backend", "full stack",
		"react", "angular", "vue", "node.js", "express", "django", "flask", "fastapi",
		"typescript", "html", "css", "sass", "tailwind", "bootstrap",
		"mongodb", "postgresql", "mysql", "redis", "graphql", "rest api",
		"ci/cd", "jenkins", "terraform", "ansible", "linux", "devops",
		"microservices", "system design", "architecture", "testing", "unit testing",
	},
	"design": {
		"ui design", "ux design", "user research", "wireframing", "prototyping",
		"figma", "sketch", "adobe xd", "invision", "zeplin",
		"graphic design", "visual design", "branding", "typography", "color theory",
		"motion graphics", "animation", "after effects", "blender", "3d modeling",
		"product design", "design systems", "accessibility", "responsive design",
	},
	"business": {
		"sales", "business development", "account management", "client relations",
		"negotiation", "crm", "salesforce", "hubspot", "pipedrive",
		"strategy", "consulting", "market research", "competitive analysis",
		"financial analysis", "budgeting", "forecasting", "excel", "powerpoint",
		"operations", "supply chain", "logistics", "procurement", "vendor management",
	},
	"hr_admin": {
		"recruiting", "talent acquisition", "onboarding", "hr management",
		"payroll", "benefits administration", "employee relations", "performance management",
		"administrative", "executive assistant", "office management", "scheduling",
		"bookkeeping", "quickbooks", "invoicing", "data entry", "virtual assistant",
	},
	"writing": {
		"content writing", "technical writing", "blog writing", "article writing",
		"editing", "proofreading", "journalism", "storytelling", "creative writing",
		"grant writing", "proposal writing", "documentation", "translation",
	},
	"customer_service": {
		"customer support", "customer service", "help desk", "technical support",
		"live chat", "zendesk", "intercom", "freshdesk", "ticketing",
		"conflict resolution", "customer success", "account management", "retention",
	},
	"soft_skills": {
		"communication", "teamwork", "leadership", "project management",
		"problem solving", "critical thinking", "creativity", "collaboration",
		"time management", "organization", "adaptability", "remote work",
		"agile", "scrum", "cross-functional", "stakeholder management",
		"presentation", "writing", "research", "analytical", "attention to detail",
	},
}
