package search

import (
	"context"
	"strconv"

	folio "github.com/niya-shroff/folio"
	"github.com/niya-shroff/folio/internal/content"
	"github.com/niya-shroff/folio/internal/domain"
)

// RepoLister resolves the remote repository listing.
type RepoLister interface {
	ListRepositories(ctx context.Context, user string) ([]folio.Repository, error)
}

// MediaLister resolves the database-backed media collections.
type MediaLister interface {
	ListPhotos(ctx context.Context) ([]folio.Photo, error)
	ListVideos(ctx context.Context) ([]folio.Video, error)
	ListWritings(ctx context.Context) ([]folio.Writing, error)
}

// NewCatalog builds the full source registry in display order: pages,
// experience, education, projects, photography, videography, writing.
// Static sources are projected once here; remote sources carry a fetch
// function invoked on session open.
func NewCatalog(githubUser string, repos RepoLister, media MediaLister) []Source {

	pages := make([]Record, len(content.Pages))
	for i, p := range content.Pages {
		pages[i] = Record{
			ID:          strconv.Itoa(i),
			Title:       p.Name,
			Description: p.Description,
			Fields:      []string{p.Name, p.Description},
		}
	}

	experience := make([]Record, len(content.Experiences))
	for i, exp := range content.Experiences {
		experience[i] = Record{
			ID:          strconv.Itoa(i),
			Title:       exp.Title,
			Description: exp.Company,
			Fields:      []string{exp.Title, exp.Company, exp.Description},
		}
	}

	education := make([]Record, len(content.Education))
	for i, edu := range content.Education {
		education[i] = Record{
			ID:          strconv.Itoa(i),
			Title:       edu.Degree,
			Description: edu.School,
			Fields:      []string{edu.Degree, edu.School},
		}
	}

	poems := make([]Record, len(content.Poems))
	for i, poem := range content.Poems {
		poems[i] = Record{
			ID:          strconv.Itoa(poem.ID),
			Title:       poem.Title,
			Description: poem.Excerpt,
			Fields:      []string{poem.Title, poem.Excerpt},
		}
	}

	return []Source{
		Static("page", folio.CategoryPage, "/", pages),
		Static("exp", folio.CategoryExperience, domain.PathExperience, experience),
		Static("edu", folio.CategoryEducation, domain.PathEducation, education),
		RemoteSource("proj", folio.CategoryProjects, domain.PathProjects, func(ctx context.Context) ([]Record, error) {
			listed, err := repos.ListRepositories(ctx, githubUser)
			if err != nil {
				return nil, err
			}
			records := make([]Record, len(listed))
			for i, repo := range listed {
				description := repo.Description
				if description == "" {
					description = "GitHub Repository"
				}
				records[i] = Record{
					ID:          strconv.FormatInt(repo.ID, 10),
					Title:       repo.Name,
					Description: description,
					Fields:      []string{repo.Name, repo.Description, repo.Language},
				}
			}
			return records, nil
		}),
		RemoteSource("photo", folio.CategoryPhotography, domain.PathPhotography, func(ctx context.Context) ([]Record, error) {
			photos, err := media.ListPhotos(ctx)
			if err != nil {
				return nil, err
			}
			records := make([]Record, len(photos))
			for i, photo := range photos {
				records[i] = Record{
					ID:          strconv.FormatUint(uint64(photo.ID), 10),
					Title:       photo.Title,
					Description: photo.Category,
					Fields:      []string{photo.Title, photo.Category, photo.Location},
				}
			}
			return records, nil
		}),
		RemoteSource("video", folio.CategoryVideography, domain.PathVideography, func(ctx context.Context) ([]Record, error) {
			videos, err := media.ListVideos(ctx)
			if err != nil {
				return nil, err
			}
			records := make([]Record, len(videos))
			for i, video := range videos {
				records[i] = Record{
					ID:          strconv.FormatUint(uint64(video.ID), 10),
					Title:       video.Title,
					Description: video.Platform,
					Fields:      []string{video.Title, video.Platform, video.Category},
				}
			}
			return records, nil
		}),
		Static("poem", folio.CategoryWriting, domain.PathWriting, poems),
		RemoteSource("writing", folio.CategoryWriting, domain.PathWriting, func(ctx context.Context) ([]Record, error) {
			writings, err := media.ListWritings(ctx)
			if err != nil {
				return nil, err
			}
			records := make([]Record, len(writings))
			for i, writing := range writings {
				records[i] = Record{
					ID:          strconv.FormatUint(uint64(writing.ID), 10),
					Title:       writing.Title,
					Description: writing.Category,
					ExternalURL: writing.ExternalURL,
					Fields:      []string{writing.Title, writing.Category},
				}
			}
			return records, nil
		}),
	}
}
