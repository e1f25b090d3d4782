package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/appointment-scheduler/internal/auth"
	"github.com/BruksfildServices01/appointment-scheduler/internal/clock"
	userdomain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/appointment-scheduler/internal/dto"
	"github.com/BruksfildServices01/appointment-scheduler/internal/validators"
)

type CreateSession struct {
	repo   userdomain.Repository
	tokens *auth.Tokens
	clock  clock.Clock
}

func NewCreateSession(repo userdomain.Repository, tokens *auth.Tokens, clk clock.Clock) *CreateSession {
	return &CreateSession{repo: repo, tokens: tokens, clock: clk}
}

func (uc *CreateSession) Execute(ctx context.Context, email, password string) (*dto.SessionDTO, error) {
	u, err := uc.repo.FindUserByEmail(ctx, validators.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, userdomain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, userdomain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(u.ID, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	return &dto.SessionDTO{
		User:  dto.User(u),
		Token: token,
	}, nil
}
