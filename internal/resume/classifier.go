package resume

import (
	"sort"
	"strings"
	"unicode"

	"github.com/interview-coach/backend/internal/models"
)

// domainSkills maps each interview domain to the skill keywords that
// indicate it in resume text. Matching is plain case-insensitive
// substring search; multi-word skills are listed as they appear in
// resumes.
var domainSkills = map[string][]string{
	"Web Development": {
		"html", "css", "javascript", "typescript", "react", "angular", "vue.js",
		"node.js", "express.js", "django", "flask", "fastapi", "php", "ruby on rails",
		"bootstrap", "next.js", "frontend", "backend", "web design", "responsive design",
	},
	"Data Science": {
		"python", "r", "sql", "machine learning", "deep learning", "nlp", "tensorflow",
		"pytorch", "keras", "scikit-learn", "pandas", "numpy", "matplotlib", "seaborn",
		"data analysis", "statistics", "big data", "spark", "hadoop",
	},
	"Cloud & DevOps": {
		"aws", "azure", "google cloud", "gcp", "docker", "kubernetes", "git",
		"jenkins", "ci/cd", "terraform", "ansible", "cloud computing", "serverless",
		"devops", "linux", "bash", "shell scripting", "load balancing", "nginx",
	},
	"Mobile Development": {
		"android", "ios", "flutter", "react native", "swift", "kotlin", "java",
		"mobile apps", "cross platform", "ui design", "firebase", "xcode", "gradle",
	},
	"Core Software Engineering": {
		"java", "c++", "c#", ".net", "go", "rust", "data structures", "algorithms",
		"oops", "object oriented", "design patterns", "system design", "software development",
		"problem solving", "competitive programming", "c", "dbms", "operating system",
	},
	"Frontend Development": {
		"html", "css", "javascript", "react", "angular", "vue.js", "redux", "sass",
		"tailwind", "bootstrap", "typescript", "next.js", "vite", "jquery", "ui", "ux",
		"frontend", "web design", "user interface", "user experience",
	},
	"Backend Development": {
		"node.js", "express.js", "django", "flask", "fastapi", "spring", "spring boot",
		"php", "laravel", "ruby on rails", "api", "rest api", "graphql", "mysql",
		"mongodb", "postgresql", "redis", "authentication", "authorization", "server",
	},
	"Database & SQL": {
		"sql", "mysql", "postgresql", "mongodb", "nosql", "sqlite", "oracle",
		"database", "data modeling", "joins", "queries", "stored procedure",
		"normalization", "indexing", "query optimization", "schemas",
	},
	"Machine Learning": {
		"python", "r", "machine learning", "deep learning", "nlp", "tensorflow",
		"pytorch", "keras", "scikit-learn", "pandas", "numpy", "matplotlib", "seaborn",
		"data analysis", "data visualization", "statistics", "big data", "spark",
		"hadoop", "regression", "classification", "clustering", "ai",
	},
	"Security & Networking": {
		"networking", "cybersecurity", "firewall", "vpn", "encryption", "penetration testing",
		"ethical hacking", "wireshark", "tcp/ip", "ssl", "security", "malware", "vulnerability",
		"owasp", "intrusion detection", "cloud security",
	},
	"Testing & QA": {
		"manual testing", "automation testing", "selenium", "pytest", "junit", "testng",
		"qa", "software testing", "unit testing", "integration testing", "regression testing",
		"bug tracking", "jira", "postman", "cypress", "load testing",
	},
}

// Domains returns the sorted list of known interview domains.
func Domains() []string {
	out := make([]string, 0, len(domainSkills))
	for d := range domainSkills {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// RankDomains scores every domain by how many of its skills appear in
// the resume text and returns all domains with at least one hit,
// highest score first. Ties break alphabetically so the ranking is
// deterministic. Skills of up to 3 characters match whole tokens only;
// substring search on "r" or "go" would hit almost any resume.
func RankDomains(text string) []models.DomainMatch {
	lower := strings.ToLower(text)
	tokens := tokenSet(lower)

	type scored struct {
		match models.DomainMatch
		score int
	}
	var results []scored

	for domain, skills := range domainSkills {
		var found []string
		for _, skill := range skills {
			if matchesSkill(lower, tokens, skill) {
				found = append(found, capitalize(skill))
			}
		}
		if len(found) == 0 {
			continue
		}
		sort.Strings(found)
		results = append(results, scored{
			match: models.DomainMatch{DomainName: domain, SkillsFound: found},
			score: len(found),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].match.DomainName < results[j].match.DomainName
	})

	out := make([]models.DomainMatch, len(results))
	for i, r := range results {
		out[i] = r.match
	}
	return out
}

func matchesSkill(lowerText string, tokens map[string]bool, skill string) bool {
	if len(skill) <= 3 && isAlnum(skill) {
		return tokens[skill]
	}
	return strings.Contains(lowerText, skill)
}

func tokenSet(lower string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		set[t] = true
	}
	return set
}

func isAlnum(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
