package impl

import (
	"context"
	"fmt"
	"time"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"

	"github.com/google/uuid"
)

// fakeStore is a shared in-memory backing store for the fake repositories,
// so transactional flows observe each other's writes like they would against
// a real database.
type fakeStore struct {
	users   map[uuid.UUID]*entity.User
	byEmail map[string]uuid.UUID
	orgs    map[uuid.UUID]*entity.Organisation
	members map[uuid.UUID]map[uuid.UUID]struct{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   make(map[uuid.UUID]*entity.User),
		byEmail: make(map[string]uuid.UUID),
		orgs:    make(map[uuid.UUID]*entity.Organisation),
		members: make(map[uuid.UUID]map[uuid.UUID]struct{}),
	}
}

type fakeUserRepo struct {
	store     *fakeStore
	createErr error
	findErr   error
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}

	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	copied := *user

	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}

	id, ok := r.store.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	copied := *r.store.users[id]

	return &copied, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, taken := r.store.byEmail[user.Email]; taken {
		return domainerrors.ErrEmailTaken
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	copied := *user
	r.store.users[user.ID] = &copied
	r.store.byEmail[user.Email] = user.ID

	return nil
}

type fakeOrgRepo struct {
	store     *fakeStore
	createErr error
}

func (r *fakeOrgRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Organisation, error) {
	org, ok := r.store.orgs[id]
	if !ok {
		return nil, repository.ErrOrganisationNotFound
	}

	copied := *org
	copied.MemberIDs = r.memberIDs(id)

	return &copied, nil
}

func (r *fakeOrgRepo) Create(_ context.Context, org *entity.Organisation) error {
	if r.createErr != nil {
		return r.createErr
	}
	if org.ID == uuid.Nil {
		org.ID = uuid.New()
	}
	org.CreatedAt = time.Now()
	org.UpdatedAt = org.CreatedAt

	copied := *org
	r.store.orgs[org.ID] = &copied
	r.store.members[org.ID] = make(map[uuid.UUID]struct{})
	for _, userID := range org.MemberIDs {
		r.store.members[org.ID][userID] = struct{}{}
	}

	return nil
}

func (r *fakeOrgRepo) AddMember(_ context.Context, orgID, userID uuid.UUID) error {
	if _, ok := r.store.orgs[orgID]; !ok {
		return repository.ErrOrganisationNotFound
	}
	r.store.members[orgID][userID] = struct{}{}

	return nil
}

func (r *fakeOrgRepo) ListByMemberOrCreator(_ context.Context, userID uuid.UUID) ([]*entity.Organisation, error) {
	var orgs []*entity.Organisation
	for id, org := range r.store.orgs {
		_, isMember := r.store.members[id][userID]
		if isMember || org.CreatorID == userID {
			copied := *org
			copied.MemberIDs = r.memberIDs(id)
			orgs = append(orgs, &copied)
		}
	}

	return orgs, nil
}

func (r *fakeOrgRepo) ListMemberOrgIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for orgID, members := range r.store.members {
		if _, ok := members[userID]; ok {
			ids = append(ids, orgID)
		}
	}

	return ids, nil
}

func (r *fakeOrgRepo) ListCreatedOrgIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id, org := range r.store.orgs {
		if org.CreatorID == userID {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

func (r *fakeOrgRepo) memberIDs(orgID uuid.UUID) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.store.members[orgID]))
	for userID := range r.store.members[orgID] {
		ids = append(ids, userID)
	}

	return ids
}

type fakeRepositoryFactory struct {
	userRepo *fakeUserRepo
	orgRepo  *fakeOrgRepo
}

func (f *fakeRepositoryFactory) NewUserRepository() repository.UserRepository { return f.userRepo }

func (f *fakeRepositoryFactory) NewOrganisationRepository() repository.OrganisationRepository {
	return f.orgRepo
}

type fakeTxManager struct {
	factory    *fakeRepositoryFactory
	executeErr error
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.executeErr != nil {
		return m.executeErr
	}

	return fn(m.factory)
}

type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenService struct {
	generateErr error
	lastOrgIDs  []uuid.UUID
}

func (s *fakeTokenService) Generate(userID uuid.UUID, orgIDs []uuid.UUID) (string, error) {
	if s.generateErr != nil {
		return "", s.generateErr
	}
	s.lastOrgIDs = orgIDs

	return "token-for-" + userID.String(), nil
}

func (s *fakeTokenService) Validate(string) (*service.Claims, error) {
	return nil, domainerrors.ErrUnauthorized
}

func (s *fakeTokenService) AccessTokenTTL() time.Duration { return 10 * time.Minute }

func testUser(id uuid.UUID, email string) *entity.User {
	return &entity.User{
		ID:           id,
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: "hashed:password123",
	}
}

type fakeQRCodeService struct {
	generateErr error
}

func (s *fakeQRCodeService) GenerateInviteQR(orgID uuid.UUID) ([]byte, error) {
	if s.generateErr != nil {
		return nil, s.generateErr
	}

	return fmt.Appendf(nil, "png:%s", orgID), nil
}
