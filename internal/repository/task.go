package repository

import (
	"context"
	"fmt"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/kvstore"
	"github.com/wb-go/wbf/logger"
)

type TaskRepository struct {
	coll *collection[int64, domain.Task]
	ids  *idSource
}

func NewTaskRepo(store kvstore.Store, now Clock, log logger.Logger) *TaskRepository {
	return &TaskRepository{
		coll: newCollection(store, KeyTasks, taskID, log),
		ids:  &idSource{now: now},
	}
}

func taskID(t *domain.Task) int64 { return t.ID }

func (r *TaskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	res, err := r.coll.list(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return res, nil
}

func (r *TaskRepository) Add(ctx context.Context, text string) (*domain.Task, error) {
	var created *domain.Task
	err := r.coll.mutate(ctx, func(s *snapshot[int64, domain.Task]) (bool, error) {
		created = &domain.Task{ID: r.ids.next(maxID(s.items, taskID)), Text: text}
		s.append(created, created.ID)
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}
	return created, nil
}

func (r *TaskRepository) Toggle(ctx context.Context, id int64) (*domain.Task, error) {
	var toggled *domain.Task
	err := r.coll.mutate(ctx, func(s *snapshot[int64, domain.Task]) (bool, error) {
		t, ok := s.get(id)
		if !ok {
			return false, domain.ErrTaskNotFound
		}
		t.Completed = !t.Completed
		toggled = t
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("toggle task: %w", err)
	}
	return toggled, nil
}

func (r *TaskRepository) Remove(ctx context.Context, id int64) error {
	err := r.coll.mutate(ctx, func(s *snapshot[int64, domain.Task]) (bool, error) {
		return s.remove(id), nil
	})
	if err != nil {
		return fmt.Errorf("remove task: %w", err)
	}
	return nil
}
