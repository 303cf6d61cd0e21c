package domain

const (
	// AdminUserCtxKey carries the authenticated admin username through a
	// request context once the session token has been validated.
	AdminUserCtxKey = "folio-adminUser"

	// SearchSessionHeader lets a client pin its search session across
	// requests so remote-source fetches are triggered once per session.
	SearchSessionHeader = "x-folio-search-session"
)

// Fixed site routes the search overlay can deep-link into.
const (
	PathExperience  = "/experience"
	PathEducation   = "/education"
	PathProjects    = "/technical"
	PathPhotography = "/photography"
	PathVideography = "/videography"
	PathWriting     = "/writing"
)
