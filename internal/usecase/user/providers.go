package user

import (
	"context"

	userdomain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/appointment-scheduler/internal/dto"
)

type ListProviders struct {
	repo userdomain.Repository
}

func NewListProviders(repo userdomain.Repository) *ListProviders {
	return &ListProviders{repo: repo}
}

func (uc *ListProviders) Execute(ctx context.Context) ([]dto.UserDTO, error) {
	providers, err := uc.repo.ListProviders(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserDTO, 0, len(providers))
	for i := range providers {
		out = append(out, dto.User(&providers[i]))
	}
	return out, nil
}
