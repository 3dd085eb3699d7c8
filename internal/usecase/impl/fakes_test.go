package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"sapzurro/internal/domain/entity"
	domainerrors "sapzurro/internal/domain/errors"
	"sapzurro/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeStore is an in-memory stand-in for the database. The transaction manager
// snapshots and restores it to emulate rollback semantics.
type fakeStore struct {
	mu          sync.Mutex
	persons     map[uuid.UUID]entity.Person
	credentials map[uuid.UUID]entity.Credential
	profiles    map[uuid.UUID]entity.Profile
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		persons:     make(map[uuid.UUID]entity.Person),
		credentials: make(map[uuid.UUID]entity.Credential),
		profiles:    make(map[uuid.UUID]entity.Profile),
	}
}

func (s *fakeStore) snapshot() *fakeStore {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := newFakeStore()
	for id, p := range s.persons {
		clone.persons[id] = p
	}
	for id, c := range s.credentials {
		clone.credentials[id] = copyCredential(c)
	}
	for id, p := range s.profiles {
		clone.profiles[id] = p
	}

	return clone
}

func (s *fakeStore) restore(from *fakeStore) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.persons = from.persons
	s.credentials = from.credentials
	s.profiles = from.profiles
}

func copyCredential(c entity.Credential) entity.Credential {
	if c.ResetTokenHash != nil {
		hash := *c.ResetTokenHash
		c.ResetTokenHash = &hash
	}
	if c.ResetTokenExpiresAt != nil {
		exp := *c.ResetTokenExpiresAt
		c.ResetTokenExpiresAt = &exp
	}

	return c
}

func (s *fakeStore) seedProfile(name string) uuid.UUID {
	id := uuid.New()
	s.profiles[id] = entity.Profile{ID: id, Name: name}

	return id
}

// --- Repositories ---

type fakePersonRepo struct{ store *fakeStore }

func (r *fakePersonRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Person, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.persons[id]
	if !ok {
		return nil, repository.ErrPersonNotFound
	}

	return &p, nil
}

func (r *fakePersonRepo) FindByEmail(_ context.Context, email string) (*entity.Person, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.persons {
		if p.Email == email && p.Status.IsActive() {
			person := p

			return &person, nil
		}
	}

	return nil, repository.ErrPersonNotFound
}

func (r *fakePersonRepo) Create(_ context.Context, person *entity.Person) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	person.ID = uuid.New()
	person.CreatedAt = time.Now()
	person.UpdatedAt = person.CreatedAt
	r.store.persons[person.ID] = *person

	return nil
}

func (r *fakePersonRepo) Update(_ context.Context, person *entity.Person) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.persons[person.ID]; !ok {
		return repository.ErrPersonNotFound
	}
	person.UpdatedAt = time.Now()
	r.store.persons[person.ID] = *person

	return nil
}

type fakeCredentialRepo struct{ store *fakeStore }

func (r *fakeCredentialRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Credential, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.credentials[id]
	if !ok {
		return nil, repository.ErrCredentialNotFound
	}
	c = copyCredential(c)

	return &c, nil
}

func (r *fakeCredentialRepo) FindByLoginName(_ context.Context, loginName string) (*entity.Credential, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, c := range r.store.credentials {
		if c.LoginName == loginName {
			cc := copyCredential(c)

			return &cc, nil
		}
	}

	return nil, repository.ErrCredentialNotFound
}

func (r *fakeCredentialRepo) FindByPersonID(_ context.Context, personID uuid.UUID) (*entity.Credential, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, c := range r.store.credentials {
		if c.PersonID == personID {
			cc := copyCredential(c)

			return &cc, nil
		}
	}

	return nil, repository.ErrCredentialNotFound
}

func (r *fakeCredentialRepo) Create(_ context.Context, credential *entity.Credential) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, c := range r.store.credentials {
		if c.LoginName == credential.LoginName {
			return domainerrors.ErrLoginNameTaken
		}
	}

	credential.ID = uuid.New()
	credential.CreatedAt = time.Now()
	credential.UpdatedAt = credential.CreatedAt
	r.store.credentials[credential.ID] = copyCredential(*credential)

	return nil
}

func (r *fakeCredentialRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.AccountStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.credentials[id]
	if !ok {
		return repository.ErrCredentialNotFound
	}
	c.Status = status
	r.store.credentials[id] = c

	return nil
}

func (r *fakeCredentialRepo) SetResetToken(_ context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.credentials[id]
	if !ok {
		return repository.ErrCredentialNotFound
	}
	c.ResetTokenHash = &tokenHash
	c.ResetTokenExpiresAt = &expiresAt
	r.store.credentials[id] = c

	return nil
}

func (r *fakeCredentialRepo) ClearResetToken(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.credentials[id]
	if !ok {
		return repository.ErrCredentialNotFound
	}
	c.ResetTokenHash = nil
	c.ResetTokenExpiresAt = nil
	r.store.credentials[id] = c

	return nil
}

func (r *fakeCredentialRepo) UpdatePasswordHash(_ context.Context, id uuid.UUID, newHash string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.credentials[id]
	if !ok {
		return repository.ErrCredentialNotFound
	}
	c.PasswordHash = newHash
	c.ResetTokenHash = nil
	c.ResetTokenExpiresAt = nil
	r.store.credentials[id] = c

	return nil
}

type fakeProfileRepo struct{ store *fakeStore }

func (r *fakeProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return &p, nil
}

func (r *fakeProfileRepo) FindByName(_ context.Context, name string) (*entity.Profile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.profiles {
		if p.Name == name {
			profile := p

			return &profile, nil
		}
	}

	return nil, repository.ErrProfileNotFound
}

func (r *fakeProfileRepo) List(_ context.Context) ([]*entity.Profile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	profiles := make([]*entity.Profile, 0, len(r.store.profiles))
	for _, p := range r.store.profiles {
		profile := p
		profiles = append(profiles, &profile)
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })

	return profiles, nil
}

// fakeTxManager emulates rollback by restoring a snapshot when the callback
// fails.
type fakeTxManager struct{ store *fakeStore }

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	snapshot := tm.store.snapshot()

	if err := fn(&fakeRepoFactory{store: tm.store}); err != nil {
		tm.store.restore(snapshot)

		return err
	}

	return nil
}

type fakeRepoFactory struct{ store *fakeStore }

func (f *fakeRepoFactory) PersonRepo() repository.PersonRepository {
	return &fakePersonRepo{store: f.store}
}

func (f *fakeRepoFactory) CredentialRepo() repository.CredentialRepository {
	return &fakeCredentialRepo{store: f.store}
}

func (f *fakeRepoFactory) ProfileRepo() repository.ProfileRepository {
	return &fakeProfileRepo{store: f.store}
}

// fakeMailer records sent recovery emails.
type fakeMailer struct {
	mu    sync.Mutex
	sent  []sentMail
	fail  error
	count int
}

type sentMail struct {
	address string
	link    string
	name    string
}

func (m *fakeMailer) SendRecoveryEmail(_ context.Context, address, link, displayName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.count++
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, sentMail{address: address, link: link, name: displayName})

	return nil
}

func (m *fakeMailer) lastSent() (sentMail, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sent) == 0 {
		return sentMail{}, false
	}

	return m.sent[len(m.sent)-1], true
}
