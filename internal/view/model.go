package view

import (
	"html/template"

	"github.com/kailas-cloud/pagedex/internal/domain/portfolio"
)

// Layout carries the fields shared by every page.
type Layout struct {
	Title string
}

// LyahPage is the searchable method reference.
type LyahPage struct {
	Layout
	Search   string
	Versions []VersionOption
	Methods  []MethodItem
	Total    int
}

// VersionOption is one entry of the C++ version select.
type VersionOption struct {
	Value    int
	Label    string
	Selected bool
}

// MethodItem is one rendered reference entry.
type MethodItem struct {
	Signature      template.HTML
	Description    template.HTML
	SourceURL      string
	InstructionSet string
	Since          string
}

// BlogListPage lists the posts, newest first.
type BlogListPage struct {
	Layout
	Posts []PostItem
}

// PostItem is one entry of the post list.
type PostItem struct {
	Slug        string
	Title       string
	Description string
	DateLine    string
}

// BlogPostPage is a single rendered post.
type BlogPostPage struct {
	Layout
	DateLine string
	Body     template.HTML
}

// PortfolioPage is the projected portfolio.
type PortfolioPage struct {
	Layout
	portfolio.Page
}

// NotFoundPage is shown for unknown routes and posts.
type NotFoundPage struct {
	Layout
	Path string
}

// ErrorPage is shown when content cannot be loaded.
type ErrorPage struct {
	Layout
	Status  int
	Message string
}
