package application

import (
	"context"
	"errors"
	"strings"

	"github.com/linskybing/support-tracker/internal/domain/status"
	"github.com/linskybing/support-tracker/internal/repository"
	"gorm.io/gorm"
)

var ErrStatusInUse = Validation("status is used by tickets")

type StatusService struct {
	Repos *repository.Repos
}

func NewStatusService(repos *repository.Repos) *StatusService {
	return &StatusService{
		Repos: repos,
	}
}

func (s *StatusService) List(ctx context.Context) ([]status.Status, error) {
	return s.Repos.Status.ListStatuses(ctx)
}

// checkName trims name and makes sure no other status (besides exceptID) uses it.
func (s *StatusService) checkName(ctx context.Context, name string, exceptID uint) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", Validation("status name is required")
	}
	existing, err := s.Repos.Status.GetStatusByName(ctx, name)
	if err == nil && existing.ID != exceptID {
		return "", ErrStatusNameTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	return name, nil
}

func (s *StatusService) Create(ctx context.Context, input status.StatusInput) (status.Status, error) {
	name, err := s.checkName(ctx, input.Name, 0)
	if err != nil {
		return status.Status{}, err
	}
	st := status.Status{Name: name}
	if err := s.Repos.Status.CreateStatus(ctx, &st); err != nil {
		return status.Status{}, translateDuplicate(err, ErrStatusNameTaken)
	}
	return st, nil
}

func (s *StatusService) Update(ctx context.Context, id uint, input status.StatusInput) (status.Status, error) {
	st, err := s.Repos.Status.GetStatusByID(ctx, id)
	if err != nil {
		return status.Status{}, translateNotFound(err, ErrStatusNotFound)
	}
	name, err := s.checkName(ctx, input.Name, id)
	if err != nil {
		return status.Status{}, err
	}
	st.Name = name
	if err := s.Repos.Status.SaveStatus(ctx, &st); err != nil {
		return status.Status{}, translateDuplicate(err, ErrStatusNameTaken)
	}
	return st, nil
}

// Delete refuses to remove a status that tickets still point at.
func (s *StatusService) Delete(ctx context.Context, id uint) error {
	return s.Repos.ExecTx(func(repos *repository.Repos) error {
		if _, err := repos.Status.GetStatusByID(ctx, id); err != nil {
			return translateNotFound(err, ErrStatusNotFound)
		}
		n, err := repos.Status.CountTicketsWithStatus(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrStatusInUse
		}
		return repos.Status.DeleteStatus(ctx, id)
	})
}
