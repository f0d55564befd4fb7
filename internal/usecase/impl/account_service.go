// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
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

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	orgRepo      repository.OrganisationRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	OrgRepo      repository.OrganisationRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		orgRepo:      params.OrgRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process: the account, its
// default organisation, and the membership row are written in one transaction,
// so a failed registration never leaves a partial account behind.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	// Hash outside the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	newUser := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Phone:        input.Phone,
	}
	var defaultOrg *entity.Organisation

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		orgRepo := repoFactory.NewOrganisationRepository()

		// The store's unique constraint on email is the duplicate guard;
		// a violation surfaces here as the domain duplicate error.
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		defaultOrg = &entity.Organisation{
			Name:      fmt.Sprintf("%s's Organisation", newUser.FirstName),
			CreatorID: newUser.ID,
			MemberIDs: []uuid.UUID{newUser.ID},
		}

		if err := orgRepo.Create(ctx, defaultOrg); err != nil {
			return errors.Wrap(err, "failed to create default organisation during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	accessToken, err := srv.tokenService.Generate(newUser.ID, []uuid.UUID{defaultOrg.ID})
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token after registration", slog.Any("userID", newUser.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID), slog.Any("orgID", defaultOrg.ID))

	return &usecase.AuthOutput{
		AccessToken: accessToken,
		User:        toUserOutput(newUser),
	}, nil
}

// Login verifies credentials and mints an access token carrying the account's
// current organisation memberships. Unknown email and wrong password collapse
// into the same credentials error so callers cannot probe for accounts.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email during login")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	orgIDs, err := srv.orgRepo.ListMemberOrgIDs(ctx, account.ID)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list organisation memberships during login")
	}

	accessToken, err := srv.tokenService.Generate(account.ID, orgIDs)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token during login")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", account.ID))

	return &usecase.AuthOutput{
		AccessToken: accessToken,
		User:        toUserOutput(account),
	}, nil
}

// GetProfile returns the target account's profile when the access policy
// allows the requester to read it. The requester's memberships come from the
// verified token; the target's memberships and the requester's created
// organisations are loaded fresh from the store.
func (srv *accountService) GetProfile(ctx context.Context, requesterID uuid.UUID, requesterOrgIDs []uuid.UUID, targetID uuid.UUID) (*usecase.UserOutput, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Any("requesterID", requesterID), slog.Any("targetID", targetID))

	target, err := srv.userRepo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "target user not found")
		}

		return nil, errors.Wrap(err, "failed to find target user")
	}

	targetOrgIDs, err := srv.orgRepo.ListMemberOrgIDs(ctx, targetID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list target organisation memberships")
	}

	createdOrgIDs, err := srv.orgRepo.ListCreatedOrgIDs(ctx, requesterID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requester created organisations")
	}

	if !policy.CanViewUser(requesterID, targetID, requesterOrgIDs, targetOrgIDs, createdOrgIDs) {
		srv.log(ctx).Warn("Profile access denied", slog.Any("requesterID", requesterID), slog.Any("targetID", targetID))

		return nil, errors.Wrap(domainerrors.ErrForbidden, "profile access denied")
	}

	return toUserOutput(target), nil
}

func toUserOutput(user *entity.User) *usecase.UserOutput {
	return &usecase.UserOutput{
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
	}
}
