package identity

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/maricoIR/HengamGallery/internal/cache"
	"github.com/maricoIR/HengamGallery/internal/catalog/repository"
)

const snapshotKey = "hengam:auth"

// Latencies of the simulated auth backend.
const (
	loginDelay    = time.Second
	registerDelay = time.Second
	updateDelay   = 500 * time.Millisecond
)

// User is the authenticated identity.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// ProfileUpdate carries the fields to merge; nil fields are left untouched.
type ProfileUpdate struct {
	Name         *string
	Email        *string
	Phone        *string
	ProfileImage *string
}

// CredentialChecker decides whether a credential pair is valid and, when it
// is, supplies the identity. The state machine below doesn't care whether
// the implementation is the demo stub or a real credential store.
type CredentialChecker interface {
	Check(email, password string) (*User, bool)
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Store holds the current identity: nil while anonymous. Transitions are
// Anonymous -> Authenticated on login/register success, Authenticated ->
// Anonymous on logout. Auth failures return false, never an error; nothing
// distinguishes an unknown user from a wrong password.
type Store struct {
	mu      sync.Mutex
	user    *User
	checker CredentialChecker
	blobs   cache.BlobStore
	delayer repository.Delayer
	clock   Clock
}

func NewStore(checker CredentialChecker, blobs cache.BlobStore, delayer repository.Delayer, clock Clock) *Store {
	s := &Store{checker: checker, blobs: blobs, delayer: delayer, clock: clock}
	s.rehydrate()
	return s
}

func (s *Store) rehydrate() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	blob, err := s.blobs.Get(ctx, snapshotKey)
	if err != nil {
		if err != cache.ErrMiss {
			log.Printf("identity snapshot load error: %v", err)
		}
		return
	}

	var user User
	if err := json.Unmarshal(blob, &user); err != nil {
		log.Printf("identity snapshot unmarshal error: %v", err)
		return
	}
	s.user = &user
}

func (s *Store) Login(ctx context.Context, email, password string) bool {
	if err := s.delayer.Delay(ctx, loginDelay); err != nil {
		return false
	}

	user, ok := s.checker.Check(email, password)
	if !ok {
		return false
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	s.persist(ctx, user)
	return true
}

// Register always succeeds; the id is derived from the clock like the
// reference system's Date.now().
func (s *Store) Register(ctx context.Context, name, email, password, phone string) bool {
	_ = password // the simulated backend stores no credentials

	if err := s.delayer.Delay(ctx, registerDelay); err != nil {
		return false
	}

	user := &User{
		ID:    s.clock.Now().UnixMilli(),
		Name:  name,
		Email: email,
		Phone: phone,
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	s.persist(ctx, user)
	return true
}

func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	deleteCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
	defer cancel()
	if err := s.blobs.Delete(deleteCtx, snapshotKey); err != nil {
		log.Printf("identity snapshot delete error: %v", err)
	}
}

// UpdateProfile merges the non-nil fields into the current identity.
// Returns false while anonymous.
func (s *Store) UpdateProfile(ctx context.Context, update ProfileUpdate) bool {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return false
	}
	s.mu.Unlock()

	if err := s.delayer.Delay(ctx, updateDelay); err != nil {
		return false
	}

	s.mu.Lock()
	if s.user == nil { // logged out while the delay ran
		s.mu.Unlock()
		return false
	}
	merged := *s.user
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Email != nil {
		merged.Email = *update.Email
	}
	if update.Phone != nil {
		merged.Phone = *update.Phone
	}
	if update.ProfileImage != nil {
		merged.ProfileImage = *update.ProfileImage
	}
	s.user = &merged
	s.mu.Unlock()

	s.persist(ctx, &merged)
	return true
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// CurrentUser returns a copy of the identity, or nil while anonymous.
func (s *Store) CurrentUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) persist(ctx context.Context, user *User) {
	blob, err := json.Marshal(user)
	if err != nil {
		log.Printf("identity snapshot marshal error: %v", err)
		return
	}

	persistCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
	defer cancel()
	if err := s.blobs.Set(persistCtx, snapshotKey, blob); err != nil {
		log.Printf("identity snapshot persist error: %v", err)
	}
}
