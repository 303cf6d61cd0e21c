package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	folio "github.com/niya-shroff/folio"
)

type mockContentRepo struct {
	photos   []folio.Photo
	videos   []folio.Video
	writings []folio.Writing
	deleted  uint
}

func (m *mockContentRepo) ListPhotos(ctx context.Context) ([]folio.Photo, error) {
	return m.photos, nil
}
func (m *mockContentRepo) CreatePhoto(ctx context.Context, photo folio.Photo) (folio.Photo, error) {
	photo.ID = uint(len(m.photos) + 1)
	m.photos = append(m.photos, photo)
	return photo, nil
}
func (m *mockContentRepo) DeletePhoto(ctx context.Context, id uint) error {
	m.deleted = id
	return nil
}
func (m *mockContentRepo) ListVideos(ctx context.Context) ([]folio.Video, error) {
	return m.videos, nil
}
func (m *mockContentRepo) CreateVideo(ctx context.Context, video folio.Video) (folio.Video, error) {
	video.ID = uint(len(m.videos) + 1)
	m.videos = append(m.videos, video)
	return video, nil
}
func (m *mockContentRepo) DeleteVideo(ctx context.Context, id uint) error {
	m.deleted = id
	return nil
}
func (m *mockContentRepo) ListWritings(ctx context.Context) ([]folio.Writing, error) {
	return m.writings, nil
}
func (m *mockContentRepo) CreateWriting(ctx context.Context, writing folio.Writing) (folio.Writing, error) {
	writing.ID = uint(len(m.writings) + 1)
	m.writings = append(m.writings, writing)
	return writing, nil
}
func (m *mockContentRepo) DeleteWriting(ctx context.Context, id uint) error {
	m.deleted = id
	return nil
}

type mockStore struct {
	key         string
	contentType string
	body        string
}

func (m *mockStore) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	buf, _ := io.ReadAll(body)
	m.key = key
	m.contentType = contentType
	m.body = string(buf)
	return "https://cdn.example.com/" + key, nil
}

func TestAddPhotoUploadsThenPersists(t *testing.T) {
	repo := &mockContentRepo{}
	store := &mockStore{}
	uc := NewContentUsecase(repo, store)

	photo, err := uc.AddPhoto(context.Background(), PhotoUpload{
		Title:       "Dusk",
		Category:    "landscape",
		Location:    "Iceland",
		Filename:    "dusk.jpg",
		ContentType: "image/jpeg",
		Body:        strings.NewReader("jpegbytes"),
	})
	if err != nil {
		t.Fatalf("add photo failed: %v", err)
	}

	if !strings.HasPrefix(store.key, "photos/") {
		t.Fatalf("expected photos/ key prefix, got %s", store.key)
	}
	if !strings.HasSuffix(store.key, ".jpg") {
		t.Fatalf("expected original extension kept, got %s", store.key)
	}
	if store.contentType != "image/jpeg" {
		t.Fatalf("expected content type forwarded, got %s", store.contentType)
	}
	if store.body != "jpegbytes" {
		t.Fatalf("expected body uploaded, got %q", store.body)
	}
	if photo.URL != "https://cdn.example.com/"+store.key {
		t.Fatalf("expected stored url on the row, got %s", photo.URL)
	}
	if photo.ID == 0 {
		t.Fatalf("expected persisted row id")
	}
}

func TestAddPhotoRequiresTitle(t *testing.T) {
	uc := NewContentUsecase(&mockContentRepo{}, &mockStore{})

	_, err := uc.AddPhoto(context.Background(), PhotoUpload{
		Filename: "x.jpg",
		Body:     strings.NewReader(""),
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestAddVideoValidation(t *testing.T) {
	repo := &mockContentRepo{}
	uc := NewContentUsecase(repo, &mockStore{})

	_, err := uc.AddVideo(context.Background(), folio.Video{Title: "clip"})
	if err == nil {
		t.Fatalf("expected error without url")
	}

	video, err := uc.AddVideo(context.Background(), folio.Video{
		Title:    "clip",
		URL:      "https://youtube.com/watch?v=abc",
		Platform: "YouTube",
	})
	if err != nil {
		t.Fatalf("add video failed: %v", err)
	}
	if video.ID == 0 {
		t.Fatalf("expected persisted row id")
	}
}

func TestAddWritingValidation(t *testing.T) {
	repo := &mockContentRepo{}
	uc := NewContentUsecase(repo, &mockStore{})

	_, err := uc.AddWriting(context.Background(), folio.Writing{})
	if err == nil {
		t.Fatalf("expected error without title")
	}

	writing, err := uc.AddWriting(context.Background(), folio.Writing{
		Title:       "On Rivers",
		ExternalURL: "https://example.substack.com/p/on-rivers",
	})
	if err != nil {
		t.Fatalf("add writing failed: %v", err)
	}
	if writing.ID == 0 {
		t.Fatalf("expected persisted row id")
	}
}

func TestDeleteForwardsID(t *testing.T) {
	repo := &mockContentRepo{}
	uc := NewContentUsecase(repo, &mockStore{})

	if err := uc.DeletePhoto(context.Background(), 42); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if repo.deleted != 42 {
		t.Fatalf("expected delete of 42, got %d", repo.deleted)
	}
}
