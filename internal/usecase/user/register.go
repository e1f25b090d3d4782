package user

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	userdomain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
	"github.com/BruksfildServices01/appointment-scheduler/internal/validators"
)

const MinPasswordLength = 6

type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
	Provider bool
}

type RegisterUser struct {
	repo         userdomain.Repository
	verifyDomain func(email string) bool
	cost         int
}

// NewRegisterUser builds the use case. verifyDomain may be nil to skip the
// DNS check on the email domain.
func NewRegisterUser(repo userdomain.Repository, verifyDomain func(string) bool) *RegisterUser {
	return &RegisterUser{
		repo:         repo,
		verifyDomain: verifyDomain,
		cost:         bcrypt.DefaultCost,
	}
}

func (uc *RegisterUser) Execute(ctx context.Context, in RegisterUserInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := validators.NormalizeEmail(in.Email)

	if name == "" || !validators.IsEmail(email) || len(in.Password) < MinPasswordLength {
		return nil, userdomain.ErrValidation
	}
	if uc.verifyDomain != nil && !uc.verifyDomain(email) {
		return nil, userdomain.ErrInvalidEmailDomain
	}

	existing, err := uc.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, userdomain.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Provider:     in.Provider,
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}
