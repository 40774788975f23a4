package impl

import (
	"context"
	"log/slog"

	deliverycontext "pos/internal/delivery/context"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	"pos/internal/domain/service"
	"pos/internal/errors"
	"pos/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	cashierRepo  repository.CashierRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	cashierRepo repository.CashierRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		cashierRepo:  cashierRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the cashier's password and issues an access token.
func (srv *sessionService) Login(ctx context.Context, username, password string) (*entity.TokenPair, error) {
	cashier, err := srv.cashierRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrCashierNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", err))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find cashier")
	}

	if cashier.PasswordHash == "" || !srv.hasher.Check(password, cashier.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(cashier)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("Cashier logged in", slog.String("username", username))

	return &entity.TokenPair{
		AccessToken: accessToken,
		ExpiresIn:   int64(srv.tokenService.AccessTokenDuration().Seconds()),
	}, nil
}

// Authenticate validates an access token and returns the cashier identity.
func (srv *sessionService) Authenticate(ctx context.Context, accessToken string) (*entity.CashierClaims, error) {
	claims, err := srv.tokenService.ValidateToken(accessToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WithDetails(err.Error())
	}

	return &entity.CashierClaims{
		Username: claims.Username,
		Label:    claims.Label,
	}, nil
}
