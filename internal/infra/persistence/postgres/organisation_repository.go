package postgres

import (
	"context"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// organisationRepository implements repository.OrganisationRepository using GORM.
type organisationRepository struct {
	db *gorm.DB
}

// NewOrganisationRepository is the constructor for organisationRepository.
func NewOrganisationRepository(db *gorm.DB) repository.OrganisationRepository {
	return &organisationRepository{db: db}
}

// FindByID retrieves a single organisation with its member IDs preloaded.
func (repo *organisationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Organisation, error) {
	var orgM model.OrganisationModel
	if err := repo.db.WithContext(ctx).Preload("Members").Where("id = ?", id).First(&orgM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrganisationNotFound
		}

		return nil, errors.Wrap(err, "failed to find organisation by id")
	}

	return toOrganisationDomain(&orgM), nil
}

// Create persists a new organisation. Any MemberIDs present on the entity
// are connected in the same insert, so registration's default organisation
// plus its membership is one atomic write.
func (repo *organisationRepository) Create(ctx context.Context, org *entity.Organisation) error {
	orgM := fromOrganisationDomain(org)

	if err := repo.db.WithContext(ctx).Omit("Members.*").Create(orgM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("organisation references a missing account")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create organisation")
	}

	org.ID = orgM.ID
	org.CreatedAt = orgM.CreatedAt
	org.UpdatedAt = orgM.UpdatedAt

	return nil
}

// AddMember connects a user to an organisation. Re-adding an existing
// member is treated as success.
func (repo *organisationRepository) AddMember(ctx context.Context, orgID, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Exec("INSERT INTO organisation_members (organisation_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING", orgID, userID).
		Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return membershipReferenceError(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add organisation member")
	}

	return nil
}

// ListByMemberOrCreator returns every organisation the user belongs to or
// created, deduplicated.
func (repo *organisationRepository) ListByMemberOrCreator(ctx context.Context, userID uuid.UUID) ([]*entity.Organisation, error) {
	var orgMs []*model.OrganisationModel
	err := repo.db.WithContext(ctx).
		Preload("Members").
		Where("creator_id = ?", userID).
		Or("id IN (?)", repo.memberOrgIDsQuery(ctx, userID)).
		Order("created_at").
		Find(&orgMs).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list organisations for user")
	}

	orgs := make([]*entity.Organisation, 0, len(orgMs))
	for _, orgM := range orgMs {
		orgs = append(orgs, toOrganisationDomain(orgM))
	}

	return orgs, nil
}

// ListMemberOrgIDs returns the IDs of organisations the user belongs to.
func (repo *organisationRepository) ListMemberOrgIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := repo.memberOrgIDsQuery(ctx, userID).Scan(&ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list member organisation ids")
	}

	return ids, nil
}

// ListCreatedOrgIDs returns the IDs of organisations the user created.
func (repo *organisationRepository) ListCreatedOrgIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := repo.db.WithContext(ctx).
		Model(&model.OrganisationModel{}).
		Where("creator_id = ?", userID).
		Pluck("id", &ids).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list created organisation ids")
	}

	return ids, nil
}

func (repo *organisationRepository) memberOrgIDsQuery(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table("organisation_members").
		Select("organisation_id").
		Where("user_id = ?", userID)
}

// --- Mapper Functions ---

func toOrganisationDomain(data *model.OrganisationModel) *entity.Organisation {
	if data == nil {
		return nil
	}

	memberIDs := make([]uuid.UUID, 0, len(data.Members))
	for _, member := range data.Members {
		memberIDs = append(memberIDs, member.ID)
	}

	return &entity.Organisation{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatorID:   data.CreatorID,
		MemberIDs:   memberIDs,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromOrganisationDomain(data *entity.Organisation) *model.OrganisationModel {
	if data == nil {
		return nil
	}

	members := make([]*model.UserModel, 0, len(data.MemberIDs))
	for _, memberID := range data.MemberIDs {
		members = append(members, &model.UserModel{ID: memberID})
	}

	return &model.OrganisationModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		CreatorID:   data.CreatorID,
		Members:     members,
	}
}
