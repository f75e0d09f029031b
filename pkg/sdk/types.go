package pagedex

// Method is one ranked entry of the method reference.
type Method struct {
	Signature          string `json:"signature"`
	FormattedSignature string `json:"formattedSignature"`
	SignatureHTML      string `json:"signatureHtml"`
	Description        string `json:"description"`
	DescriptionHTML    string `json:"descriptionHtml"`
	SourceURL          string `json:"sourceUrl"`
	InstructionSet     string `json:"instructionSet,omitempty"`
	Since              string `json:"since"`
	Score              int    `json:"score"`
}

// MethodList is the outcome of a method search, best match first.
type MethodList struct {
	Query    string   `json:"query"`
	RawQuery string   `json:"rawQuery"`
	Standard int      `json:"standard"`
	Total    int      `json:"total"`
	Count    int      `json:"count"`
	Items    []Method `json:"items"`
}

// Post is the metadata of a blog post. Dates use the YYYY/MM/DD form.
type Post struct {
	Slug          string `json:"slug"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	PublishedAt   string `json:"publishedAt"`
	LastUpdatedAt string `json:"lastUpdatedAt,omitempty"`
}

// Article is a post with its rendered HTML body.
type Article struct {
	Post
	HTML string `json:"html"`
}

// Technology is a tool or language a project was built with.
type Technology struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	IconSrc string `json:"iconSrc"`
}

// Project is a portfolio project with its technologies resolved.
type Project struct {
	Name          string       `json:"name"`
	SiteURL       string       `json:"siteUrl,omitempty"`
	RepositoryURL string       `json:"repositoryUrl,omitempty"`
	Description   string       `json:"description"`
	Missions      []string     `json:"missions,omitempty"`
	Technologies  []Technology `json:"technologies"`
}

// Experience groups projects under an employer or a personal context.
type Experience struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link,omitempty"`
	Projects    []Project `json:"projects"`
}

// Portfolio is the projected portfolio page.
type Portfolio struct {
	Professional []Experience `json:"professionalExperiences"`
	Personal     []Experience `json:"personalExperiences"`
}

// HealthStatus represents the aggregated server health.
type HealthStatus struct {
	Status string            `json:"status"` // "ok", "degraded", "error"
	Checks map[string]string `json:"checks"` // component → "ok"/"error"
}
