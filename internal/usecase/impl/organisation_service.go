package impl

import (
	"context"
	"log/slog"

	deliverycontext "roster/internal/delivery/context"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/policy"
	"roster/internal/domain/repository"
	"roster/internal/domain/service"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// organisationService implements the OrganisationUsecase interface.
type organisationService struct {
	txManager     repository.TransactionManager
	orgRepo       repository.OrganisationRepository
	userRepo      repository.UserRepository
	qrCodeService service.QRCodeService
	logger        *slog.Logger
}

// OrganisationServiceParams holds dependencies for organisationService, injected by Fx.
type OrganisationServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	OrgRepo       repository.OrganisationRepository
	UserRepo      repository.UserRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewOrganisationService is the constructor for organisationService.
func NewOrganisationService(params OrganisationServiceParams) usecase.OrganisationUsecase {
	return &organisationService{
		txManager:     params.TxManager,
		orgRepo:       params.OrgRepo,
		userRepo:      params.UserRepo,
		qrCodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (srv *organisationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create makes a new organisation owned by the requester. Creation records
// creatorship only; the creator is not connected as a member, and reading the
// organisation back requires an explicit membership.
func (srv *organisationService) Create(ctx context.Context, creatorID uuid.UUID, input *usecase.CreateOrganisationInput) (*usecase.OrganisationOutput, error) {
	srv.log(ctx).Info("Creating organisation", slog.Any("creatorID", creatorID), slog.String("name", input.Name))

	newOrg := &entity.Organisation{
		Name:        input.Name,
		Description: input.Description,
		CreatorID:   creatorID,
	}

	if err := srv.orgRepo.Create(ctx, newOrg); err != nil {
		srv.log(ctx).Error("Failed to create organisation", slog.Any("creatorID", creatorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create organisation")
	}

	srv.log(ctx).Debug("Organisation created", slog.Any("orgID", newOrg.ID))

	return toOrganisationOutput(newOrg), nil
}

// List returns every organisation the requester belongs to or created.
// Listing is scoped to the requester, so no policy check applies beyond
// authentication itself.
func (srv *organisationService) List(ctx context.Context, userID uuid.UUID) ([]*usecase.OrganisationOutput, error) {
	srv.log(ctx).Debug("Listing organisations", slog.Any("userID", userID))

	orgs, err := srv.orgRepo.ListByMemberOrCreator(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list organisations")
	}

	outputs := make([]*usecase.OrganisationOutput, 0, len(orgs))
	for _, org := range orgs {
		outputs = append(outputs, toOrganisationOutput(org))
	}

	return outputs, nil
}

// Get returns the organisation record when the requester is a member. The
// membership check runs against the verified token claims before the record
// itself is touched, so a non-member learns nothing about whether the
// organisation exists beyond the denial itself.
func (srv *organisationService) Get(ctx context.Context, requesterOrgIDs []uuid.UUID, orgID uuid.UUID) (*usecase.OrganisationOutput, error) {
	srv.log(ctx).Debug("Getting organisation", slog.Any("orgID", orgID))

	if !policy.CanViewOrganisation(orgID, requesterOrgIDs) {
		srv.log(ctx).Warn("Organisation access denied", slog.Any("orgID", orgID))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "organisation access denied")
	}

	org, err := srv.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, repository.ErrOrganisationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrganisationNotFound, "organisation not found")
		}

		return nil, errors.Wrap(err, "failed to find organisation")
	}

	return toOrganisationOutput(org), nil
}

// AddMember connects an account to an organisation. Both records are checked
// inside one transaction so the membership row never references a row that
// disappeared between the checks and the insert. Re-adding an existing member
// succeeds without effect.
func (srv *organisationService) AddMember(ctx context.Context, orgID, userID uuid.UUID) error {
	srv.log(ctx).Info("Adding organisation member", slog.Any("orgID", orgID), slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orgRepo := repoFactory.NewOrganisationRepository()
		userRepo := repoFactory.NewUserRepository()

		if _, err := orgRepo.FindByID(ctx, orgID); err != nil {
			if errors.Is(err, repository.ErrOrganisationNotFound) {
				return errors.Wrap(domainerrors.ErrOrganisationNotFound, "organisation not found")
			}

			return errors.Wrap(err, "failed to find organisation")
		}

		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if err := orgRepo.AddMember(ctx, orgID, userID); err != nil {
			return errors.Wrap(err, "failed to add organisation member")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute add member transaction", slog.Any("orgID", orgID), slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute add member transaction")
	}

	srv.log(ctx).Debug("Organisation member added", slog.Any("orgID", orgID), slog.Any("userID", userID))

	return nil
}

// InviteQR renders the organisation's invite QR code. The same membership
// rule as Get applies: only members may fetch the code.
func (srv *organisationService) InviteQR(ctx context.Context, requesterOrgIDs []uuid.UUID, orgID uuid.UUID) ([]byte, error) {
	srv.log(ctx).Debug("Generating organisation invite QR code", slog.Any("orgID", orgID))

	if !policy.CanViewOrganisation(orgID, requesterOrgIDs) {
		srv.log(ctx).Warn("Organisation QR access denied", slog.Any("orgID", orgID))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "organisation access denied")
	}

	if _, err := srv.orgRepo.FindByID(ctx, orgID); err != nil {
		if errors.Is(err, repository.ErrOrganisationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrganisationNotFound, "organisation not found")
		}

		return nil, errors.Wrap(err, "failed to find organisation")
	}

	png, err := srv.qrCodeService.GenerateInviteQR(orgID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate invite QR code", slog.Any("orgID", orgID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate invite QR code")
	}

	return png, nil
}

func toOrganisationOutput(org *entity.Organisation) *usecase.OrganisationOutput {
	return &usecase.OrganisationOutput{
		OrgID:       org.ID,
		Name:        org.Name,
		Description: org.Description,
	}
}
