package folio

import (
	"time"
)

// Category tags a search result with the section it belongs to. It decides
// which icon the UI renders and which navigation branch applies.
type Category string

const (
	CategoryExperience  Category = "Experience"
	CategoryEducation   Category = "Education"
	CategoryProjects    Category = "Projects"
	CategoryPhotography Category = "Photography"
	CategoryVideography Category = "Videography"
	CategoryWriting     Category = "Writing"
	CategorySubstack    Category = "Substack"
	CategoryPage        Category = "Page"
)

// SearchResult is the normalized shape every content source projects into.
// IDs are unique within a single result set only.
type SearchResult struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    Category `json:"category"`
	Path        string   `json:"path"`
	ExternalURL string   `json:"externalUrl,omitempty"`
}

// ExperienceEntry is a single job-history record.
type ExperienceEntry struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Period       string   `json:"period"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
}

// EducationEntry is a single education record.
type EducationEntry struct {
	Degree      string   `json:"degree"`
	School      string   `json:"school"`
	Location    string   `json:"location"`
	Period      string   `json:"period"`
	Honors      string   `json:"honors,omitempty"`
	Description string   `json:"description"`
	Courses     []string `json:"courses,omitempty"`
}

// Poem is a static long-form writing entry bundled with the site.
type Poem struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
}

// Page is a top-level site section reachable by the router.
type Page struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

// Repository is the subset of the GitHub repository listing the site uses.
type Repository struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	HTMLURL     string `json:"html_url"`
}

// Photo is a gallery row stored in the database.
type Photo struct {
	ID       uint   `json:"id"`
	URL      string `json:"url"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Location string `json:"location"`
}

// Video is a videography row stored in the database.
type Video struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail"`
	Platform  string `json:"platform"`
	Category  string `json:"category"`
}

// Writing is a published long-form piece stored in the database. Pieces
// hosted elsewhere carry an ExternalURL and are surfaced as Substack results.
type Writing struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	ExternalURL string    `json:"externalUrl,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
}

// ContactMessage is an inbound contact-form submission.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Event is the envelope pushed to live search subscribers when a session's
// result set changes.
type Event struct {
	Type    string         `json:"type"`
	Session string         `json:"session,omitempty"`
	Query   string         `json:"query,omitempty"`
	Results []SearchResult `json:"results,omitempty"`
}
