// Package memory holds in-process implementations of the repositories. They
// enforce the same constraints as the PostgreSQL schema.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/appointment"
	notifdomain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/notification"
	userdomain "github.com/BruksfildServices01/appointment-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/appointment-scheduler/internal/models"
)

type Store struct {
	mu sync.Mutex

	users         map[uint]models.User
	files         map[uint]models.File
	appointments  map[uint]models.Appointment
	notifications map[uint]models.Notification

	nextID uint
	now    func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:         make(map[uint]models.User),
		files:         make(map[uint]models.File),
		appointments:  make(map[uint]models.Appointment),
		notifications: make(map[uint]models.Notification),
		now:           time.Now,
	}
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (s *Store) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	s.withAvatar(&u)
	return &u, nil
}

func (s *Store) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			s.withAvatar(&u)
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return userdomain.ErrEmailTaken
		}
	}

	u.ID = s.id()
	u.CreatedAt = s.now()
	u.UpdatedAt = u.CreatedAt
	s.users[u.ID] = *u
	return nil
}

func (s *Store) ListProviders(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, 0)
	for _, u := range s.users {
		if u.Provider {
			s.withAvatar(&u)
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) CreateFile(_ context.Context, f *models.File) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.ID = s.id()
	f.CreatedAt = s.now()
	f.UpdatedAt = f.CreatedAt
	s.files[f.ID] = *f
	return nil
}

func (s *Store) SetAvatar(_ context.Context, userID uint, fileID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return userdomain.ErrNotFound
	}
	u.AvatarID = &fileID
	s.users[userID] = u
	return nil
}

func (s *Store) withAvatar(u *models.User) {
	if u.AvatarID == nil {
		return
	}
	if f, ok := s.files[*u.AvatarID]; ok {
		u.Avatar = &f
	}
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (s *Store) FindActiveByProviderAndDate(
	_ context.Context,
	providerID uint,
	date time.Time,
) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ap := range s.appointments {
		if ap.ProviderID == providerID && ap.IsActive() && ap.Date.Equal(date) {
			return &ap, nil
		}
	}
	return nil, nil
}

// CreateAppointment mirrors the partial unique index on (provider_id, date).
func (s *Store) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.appointments {
		if existing.ProviderID == ap.ProviderID && existing.IsActive() && existing.Date.Equal(ap.Date) {
			return domain.ErrSlotUnavailable
		}
	}

	ap.ID = s.id()
	ap.CreatedAt = s.now()
	ap.UpdatedAt = ap.CreatedAt
	stored := *ap
	stored.User, stored.Provider = nil, nil
	s.appointments[ap.ID] = stored
	return nil
}

func (s *Store) GetAppointmentWithParticipants(_ context.Context, id uint) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap, ok := s.appointments[id]
	if !ok {
		return nil, nil
	}
	if u, ok := s.users[ap.UserID]; ok {
		ap.User = &u
	}
	if p, ok := s.users[ap.ProviderID]; ok {
		ap.Provider = &p
	}
	return &ap, nil
}

func (s *Store) MarkCanceled(_ context.Context, appointmentID uint, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap, ok := s.appointments[appointmentID]
	if !ok {
		return domain.ErrNotFound
	}
	if !ap.IsActive() {
		return domain.ErrAlreadyCanceled
	}
	ap.CanceledAt = &at
	ap.UpdatedAt = at
	s.appointments[appointmentID] = ap
	return nil
}

func (s *Store) ListActiveByUser(_ context.Context, userID uint, limit, offset int) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var all []models.Appointment
	for _, ap := range s.appointments {
		if ap.UserID == userID && ap.IsActive() {
			if p, ok := s.users[ap.ProviderID]; ok {
				s.withAvatar(&p)
				ap.Provider = &p
			}
			all = append(all, ap)
		}
	}
	sortByDate(all)

	return page(all, limit, offset), nil
}

func (s *Store) ListActiveByProviderForPeriod(
	_ context.Context,
	providerID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Appointment
	for _, ap := range s.appointments {
		if ap.ProviderID != providerID || !ap.IsActive() {
			continue
		}
		if ap.Date.Before(start) || !ap.Date.Before(end) {
			continue
		}
		if u, ok := s.users[ap.UserID]; ok {
			ap.User = &u
		}
		out = append(out, ap)
	}
	sortByDate(out)
	return out, nil
}

// --------------------------------------------------
// Notifications
// --------------------------------------------------

func (s *Store) CreateNotification(_ context.Context, n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = s.id()
	n.CreatedAt = s.now()
	n.UpdatedAt = n.CreatedAt
	s.notifications[n.ID] = *n
	return nil
}

func (s *Store) ListForUser(_ context.Context, userID uint, limit int) ([]models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Notification, 0)
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	// ids grow with insertion order
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) GetNotification(_ context.Context, id uint) (*models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return nil, nil
	}
	return &n, nil
}

func (s *Store) UpdateNotification(_ context.Context, n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notifications[n.ID]; !ok {
		return notifdomain.ErrNotFound
	}
	n.UpdatedAt = s.now()
	s.notifications[n.ID] = *n
	return nil
}

func sortByDate(aps []models.Appointment) {
	sort.Slice(aps, func(i, j int) bool {
		if aps[i].Date.Equal(aps[j].Date) {
			return aps[i].ID < aps[j].ID
		}
		return aps[i].Date.Before(aps[j].Date)
	})
}

func page[T any](items []T, limit, offset int) []T {
	if offset < 0 || offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

var (
	_ domain.Repository      = (*Store)(nil)
	_ domain.Users           = (*Store)(nil)
	_ domain.Notifications   = (*Store)(nil)
	_ userdomain.Repository  = (*Store)(nil)
	_ notifdomain.Repository = (*Store)(nil)
)
