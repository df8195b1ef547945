package models

// DomainMatch is one ranked domain identified in a resume, with the
// skill keywords that matched.
type DomainMatch struct {
	DomainName  string   `json:"domain_name"`
	SkillsFound []string `json:"skills_found"`
}

type DomainRankRequest struct {
	Text string `json:"text"`
}

type DomainRankResponse struct {
	TopDomains []DomainMatch `json:"top_domains"`
}
