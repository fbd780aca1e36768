package project

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"

	"furnistore/internal/domain"
	"furnistore/internal/imagestore"

	"gorm.io/gorm"
)

// Service owns Project entities and their image galleries. Every mutation is
// ownership-checked against the acting user.
type Service struct {
	projects ProjectRepository
	users    UserReader
	images   ImageStore
}

func NewService(projects ProjectRepository, users UserReader, images ImageStore) *Service {
	return &Service{
		projects: projects,
		users:    users,
		images:   images,
	}
}

// Create uploads each file and persists the project with the collected URLs.
// The human-readable projectID is count+1 at creation time; the image cap is
// not checked here, only on later appends.
func (s *Service) Create(ctx context.Context, ownerID int64, req CreateProjectRequest, files []*multipart.FileHeader) (*domain.Project, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := s.images.Upload(ctx, f)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	count, err := s.projects.Count(ctx)
	if err != nil {
		return nil, err
	}

	p := &domain.Project{
		ProjectID:   fmt.Sprintf("project%d", count+1),
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     ownerID,
		Images:      urls,
		Note:        req.Note,
		Duration:    req.Duration,
	}

	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}

	s.resolveOwner(ctx, p)
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projects.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	owners := make(map[int64]*domain.User)
	for i := range projects {
		p := &projects[i]
		if owner, ok := owners[p.OwnerID]; ok {
			p.Owner = owner
			continue
		}
		s.resolveOwner(ctx, p)
		owners[p.OwnerID] = p.Owner
	}
	return projects, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	s.resolveOwner(ctx, p)
	return p, nil
}

// Update appends newly uploaded images to the existing gallery and replaces
// the provided scalar fields. Fails before any upload if the resulting image
// count would exceed the cap.
func (s *Service) Update(ctx context.Context, id, actorID int64, req UpdateProjectRequest, files []*multipart.FileHeader) (*domain.Project, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != actorID {
		return nil, ErrForbidden
	}

	if len(p.Images)+len(files) > domain.MaxProjectImages {
		return nil, ErrImageLimit
	}

	for _, f := range files {
		url, err := s.images.Upload(ctx, f)
		if err != nil {
			return nil, err
		}
		p.Images = append(p.Images, url)
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Note != nil {
		p.Note = *req.Note
	}
	if req.Duration != nil {
		p.Duration = *req.Duration
	}

	if err := s.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes every remaining image from the image store, then the
// project. The first failed image delete aborts the operation.
func (s *Service) Delete(ctx context.Context, id, actorID int64) error {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.OwnerID != actorID {
		return ErrForbidden
	}

	for _, img := range p.Images {
		if err := s.images.Delete(ctx, imagestore.PublicID(img)); err != nil {
			return fmt.Errorf("failed to delete image: %w", err)
		}
	}

	return s.projects.Delete(ctx, id)
}

// RemoveImage drops the exact URL from the gallery and persists the document
// before attempting the external delete: if the remote delete fails the
// reference is already gone, leaving an orphaned remote image rather than a
// dangling reference.
func (s *Service) RemoveImage(ctx context.Context, id, actorID int64, imageURL string) (*domain.Project, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != actorID {
		return nil, ErrForbidden
	}

	idx := -1
	for i, img := range p.Images {
		if img == imageURL {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrImageNotFound
	}

	p.Images = append(p.Images[:idx], p.Images[idx+1:]...)
	if err := s.projects.Update(ctx, p); err != nil {
		return nil, err
	}

	if err := s.images.Delete(ctx, imagestore.PublicID(imageURL)); err != nil {
		log.Printf("orphaned remote image %s: delete failed: %v", imageURL, err)
	}

	return p, nil
}

func (s *Service) resolveOwner(ctx context.Context, p *domain.Project) {
	owner, err := s.users.GetByID(ctx, p.OwnerID)
	if err != nil {
		return
	}
	owner.PasswordHash = ""
	p.Owner = owner
}
