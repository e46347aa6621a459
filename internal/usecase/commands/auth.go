package commands

import (
	"context"
	"log/slog"
	"strings"

	"studio-booking/internal/domain/auth"
	"studio-booking/internal/domain/user"
	reqdto "studio-booking/internal/handler/dto/request"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/pkg/jwt"
	"studio-booking/internal/pkg/password"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type UpdateAccountResult struct {
	EmailChanged    bool
	PasswordChanged bool
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	UpdateAccount(ctx context.Context, userID uuid.UUID, req reqdto.UpdateAccountRequest) (*UpdateAccountResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	notifier   shared.Notifier
	adminEmail string
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, notifier shared.Notifier, cfg config.Config) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		notifier:   notifier,
		adminEmail: cfg.Mail.AdminEmail,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	u, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	pair, err := a.issueTokens(u.ID(), u.Role())
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), u.ID())
		if updateErr != nil {
			slog.Warn("failed to update last login", "user_id", u.ID(), "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		slog.Warn("transaction failed during login", "user_id", u.ID(), "error", err.Error())
	}

	return &LoginResult{
		UserID:    u.ID(),
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTokenValidation)
	}

	snap, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !snap.User.IsActive() {
		return nil, errs.ErrUserInactive
	}

	return a.issueTokens(snap.User.ID(), snap.User.Role())
}

func (a *authCommandsImpl) UpdateAccount(ctx context.Context, userID uuid.UUID, req reqdto.UpdateAccountRequest) (*UpdateAccountResult, error) {
	if req.CurrentPassword == "" {
		return nil, errs.ErrInvalidCredentials
	}

	snap, err := a.uow.CommandReads().UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	u := snap.User
	if err := password.ComparePassword(u.PasswordHash(), req.CurrentPassword); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	result := &UpdateAccountResult{}
	currentEmail := u.Email().Value()

	newEmail := strings.TrimSpace(req.Email)
	if newEmail != "" && !strings.EqualFold(newEmail, currentEmail) {
		email, eerr := user.NewEmail(newEmail)
		if eerr != nil {
			return nil, errs.Mark(eerr, errs.ErrDomainValidation)
		}
		_, ferr := a.uow.CommandReads().UserByEmail(ctx, email.Value())
		switch {
		case ferr == nil:
			return nil, errs.ErrEmailTaken
		case !infra.IsKind(ferr, infra.KindNotFound):
			return nil, errs.Mark(ferr, errs.ErrDatabaseOperationFailed)
		}
		u.ChangeEmail(email)
		result.EmailChanged = true
	}

	if req.NewPassword != "" {
		if req.NewPassword != req.ConfirmPassword {
			return nil, errs.ErrPasswordMismatch
		}
		pw, perr := user.NewPassword(req.NewPassword)
		if perr != nil {
			return nil, errs.Mark(perr, errs.ErrDomainValidation)
		}
		hash, herr := password.HashPassword(pw.Value())
		if herr != nil {
			return nil, errs.Mark(herr, errs.ErrDatabaseOperationFailed)
		}
		u.ChangePasswordHash(hash)
		result.PasswordChanged = true
	}

	if !result.EmailChanged && !result.PasswordChanged {
		return nil, errs.ErrNothingToUpdate
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateAccount(ctx, tx.DB(), u)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, errs.ErrEmailTaken)
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	if result.PasswordChanged {
		recipient := a.adminEmail
		if recipient == "" {
			recipient = u.Email().Value()
		}
		if nerr := a.notifier.AdminPasswordChanged(ctx, shared.PasswordChangedEvent{Recipient: recipient}); nerr != nil {
			slog.Error("account updated but notification failed", "user_id", userID, "error", nerr.Error())
		}
	}

	return result, nil
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*user.User, error) {
	snap, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		return nil, errs.ErrInvalidCredentials
	}

	if !snap.User.IsActive() {
		return nil, errs.ErrUserInactive
	}

	if err := password.ComparePassword(snap.User.PasswordHash(), credentials.Password()); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	return snap.User, nil
}
