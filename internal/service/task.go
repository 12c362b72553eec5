package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/service/ports"
	"github.com/stpnv0/SlotBooker/internal/stats"
)

type TaskService struct {
	repo ports.TaskRepo
}

func NewTaskService(repo ports.TaskRepo) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) List(ctx context.Context) ([]*domain.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) Add(ctx context.Context, text string) (*domain.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: task text is required", domain.ErrValidation)
	}
	return s.repo.Add(ctx, text)
}

func (s *TaskService) Toggle(ctx context.Context, id int64) (*domain.Task, error) {
	return s.repo.Toggle(ctx, id)
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.repo.Remove(ctx, id)
}

func (s *TaskService) Stats(ctx context.Context) (domain.TaskStats, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return domain.TaskStats{}, err
	}
	return stats.Tasks(tasks), nil
}
