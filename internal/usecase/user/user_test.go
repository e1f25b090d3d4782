package user

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/appointment-scheduler/internal/auth"
	"github.com/BruksfildServices01/appointment-scheduler/internal/clock"
	userdomain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/appointment-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/appointment-scheduler/internal/storage"
)

func newRegister(store *memory.Store) *RegisterUser {
	uc := NewRegisterUser(store, nil)
	uc.cost = bcrypt.MinCost
	return uc
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	u, err := newRegister(store).Execute(ctx, RegisterUserInput{
		Name:     " Paula ",
		Email:    "Paula@Example.com",
		Password: "secret1",
		Provider: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Paula", u.Name)
	assert.Equal(t, "paula@example.com", u.Email)
	assert.True(t, u.Provider)
	assert.NotEqual(t, "secret1", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
}

func TestRegisterUserValidation(t *testing.T) {
	uc := newRegister(memory.NewStore())

	for _, in := range []RegisterUserInput{
		{Name: "", Email: "a@example.com", Password: "secret1"},
		{Name: "A", Email: "not-an-email", Password: "secret1"},
		{Name: "A", Email: "a@example.com", Password: "short"},
	} {
		_, err := uc.Execute(context.Background(), in)
		assert.ErrorIs(t, err, userdomain.ErrValidation)
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	uc := newRegister(memory.NewStore())

	_, err := uc.Execute(ctx, RegisterUserInput{Name: "A", Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, RegisterUserInput{Name: "B", Email: "A@example.com", Password: "secret2"})
	assert.ErrorIs(t, err, userdomain.ErrEmailTaken)
}

func TestRegisterUserDomainCheck(t *testing.T) {
	uc := NewRegisterUser(memory.NewStore(), func(string) bool { return false })

	_, err := uc.Execute(context.Background(), RegisterUserInput{Name: "A", Email: "a@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, userdomain.ErrInvalidEmailDomain)
}

func TestCreateSession(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	tokens := auth.NewTokens("secret", time.Hour)
	now := time.Now()

	u, err := newRegister(store).Execute(ctx, RegisterUserInput{Name: "A", Email: "a@example.com", Password: "secret1"})
	require.NoError(t, err)

	uc := NewCreateSession(store, tokens, clock.Fixed(now))

	session, err := uc.Execute(ctx, " A@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, session.User.ID)

	id, err := tokens.Parse(session.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)

	_, err = uc.Execute(ctx, "a@example.com", "wrong")
	assert.ErrorIs(t, err, userdomain.ErrInvalidCredentials)

	_, err = uc.Execute(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, userdomain.ErrInvalidCredentials)
}

func TestUploadAvatar(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	disk := storage.NewDiskStorage(t.TempDir(), "http://localhost:8080")

	u, err := newRegister(store).Execute(ctx, RegisterUserInput{Name: "A", Email: "a@example.com", Password: "secret1", Provider: true})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 32, 32))))

	f, err := NewUploadAvatar(store, disk).Execute(ctx, UploadAvatarInput{UserID: u.ID, Filename: "me.png", Data: buf.Bytes()})
	require.NoError(t, err)
	assert.Equal(t, "me.png", f.Name)
	assert.Contains(t, f.URL, "/files/avatars/")

	providers, err := NewListProviders(store).Execute(ctx)
	require.NoError(t, err)
	require.Len(t, providers, 1)
	require.NotNil(t, providers[0].Avatar)
	assert.Equal(t, f.ID, providers[0].Avatar.ID)
}

func TestUploadAvatarRejectsNonImages(t *testing.T) {
	store := memory.NewStore()
	disk := storage.NewDiskStorage(t.TempDir(), "")

	_, err := NewUploadAvatar(store, disk).Execute(context.Background(), UploadAvatarInput{UserID: 1, Data: []byte("%PDF")})
	assert.ErrorIs(t, err, userdomain.ErrInvalidAvatar)
}
