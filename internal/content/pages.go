package content

import (
	folio "github.com/niya-shroff/folio"
	"github.com/niya-shroff/folio/internal/domain"
)

var Pages = []folio.Page{
	{Name: "Experience", Description: "Work history and roles", Path: domain.PathExperience},
	{Name: "Education", Description: "Degrees and certifications", Path: domain.PathEducation},
	{Name: "Technical Projects", Description: "Open-source repositories", Path: domain.PathProjects},
	{Name: "Photography", Description: "Photo gallery", Path: domain.PathPhotography},
	{Name: "Videography", Description: "Video reel", Path: domain.PathVideography},
	{Name: "Writing", Description: "Poems and essays", Path: domain.PathWriting},
}
