package domain

// Config is the site-level configuration shared across services.
type Config struct {
	SiteName   string `yaml:"siteName"`
	BaseURL    string `yaml:"baseUrl"`
	GithubUser string `yaml:"githubUser"`
	// ContactRecipient receives contact-form submissions.
	ContactRecipient string `yaml:"contactRecipient"`
}
