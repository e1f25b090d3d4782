package user

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	userdomain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
	"github.com/BruksfildServices01/appointment-scheduler/internal/storage"
)

type UploadAvatarInput struct {
	UserID   uint
	Filename string
	Data     []byte
}

// UploadAvatar stores a normalised copy of the image and makes it the
// user's avatar.
type UploadAvatar struct {
	repo  userdomain.Repository
	store storage.Storage
}

func NewUploadAvatar(repo userdomain.Repository, store storage.Storage) *UploadAvatar {
	return &UploadAvatar{repo: repo, store: store}
}

func (uc *UploadAvatar) Execute(ctx context.Context, in UploadAvatarInput) (*models.File, error) {
	img, err := storage.NormalizeAvatar(in.Data)
	if errors.Is(err, storage.ErrUnsupportedImage) {
		return nil, userdomain.ErrInvalidAvatar
	}
	if err != nil {
		return nil, err
	}

	key := storage.NewKey("avatars", storage.AvatarExt)
	url, err := uc.store.Put(ctx, key, storage.AvatarContentType, img)
	if err != nil {
		return nil, err
	}

	f := &models.File{
		Name: in.Filename,
		Path: key,
		URL:  url,
	}
	if err := uc.repo.CreateFile(ctx, f); err != nil {
		uc.discard(ctx, key)
		return nil, err
	}

	if err := uc.repo.SetAvatar(ctx, in.UserID, f.ID); err != nil {
		return nil, err
	}

	return f, nil
}

func (uc *UploadAvatar) discard(ctx context.Context, key string) {
	if err := uc.store.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("orphan upload not removed")
	}
}
