package application

import (
	"context"
	"strings"

	"github.com/linskybing/support-tracker/internal/domain/tag"
	"github.com/linskybing/support-tracker/internal/repository"
)

type TagService struct {
	Repos *repository.Repos
}

func NewTagService(repos *repository.Repos) *TagService {
	return &TagService{
		Repos: repos,
	}
}

func (s *TagService) List(ctx context.Context) ([]tag.Tag, error) {
	return s.Repos.Tag.ListTags(ctx)
}

func normalizeTag(input tag.TagInput) (string, string, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return "", "", Validation("tag name is required")
	}
	color := strings.TrimSpace(input.Color)
	if color == "" {
		color = tag.DefaultColor
	}
	return name, color, nil
}

func (s *TagService) Create(ctx context.Context, input tag.TagInput) (tag.Tag, error) {
	name, color, err := normalizeTag(input)
	if err != nil {
		return tag.Tag{}, err
	}
	t := tag.Tag{Name: name, Color: color}
	if err := s.Repos.Tag.CreateTag(ctx, &t); err != nil {
		return tag.Tag{}, err
	}
	return t, nil
}

func (s *TagService) Update(ctx context.Context, id uint, input tag.TagInput) (tag.Tag, error) {
	name, color, err := normalizeTag(input)
	if err != nil {
		return tag.Tag{}, err
	}
	t, err := s.Repos.Tag.GetTagByID(ctx, id)
	if err != nil {
		return tag.Tag{}, translateNotFound(err, ErrTagNotFound)
	}
	t.Name = name
	t.Color = color
	if err := s.Repos.Tag.SaveTag(ctx, &t); err != nil {
		return tag.Tag{}, err
	}
	return t, nil
}

// Delete removes the tag from every ticket and then the tag itself.
func (s *TagService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Repos.Tag.GetTagByID(ctx, id); err != nil {
		return translateNotFound(err, ErrTagNotFound)
	}
	return s.Repos.Tag.DeleteTag(ctx, id)
}
