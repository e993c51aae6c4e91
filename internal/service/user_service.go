package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/internal/transport/api/tokens"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

const JWTTokenExpire = 1 * time.Hour

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	psswd          PasswordHasher
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, hasher PasswordHasher) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		psswd:          hasher,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	UserID   string
	Password string
}

// Register создает юзера с нулевым балансом и выдает jwt токен. Повторная
// регистрация user_id возвращает ошибку domain.ErrDuplicateKey.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	password, hashErr := s.psswd.HashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering user: %s", hashErr.Error())
	}

	user, createErr := s.userRepo.CreateUser(ctx, repoargs.CreateUser{
		UserID:   args.UserID,
		Password: password,
	})
	if createErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", createErr)
	}

	token, tokenErr := tokens.GenerateUserJWT(user.UserID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", tokenErr)
	}
	return user, token, nil
}

type LoginUserArgs struct {
	UserID   string
	Password string
}

// Login аутентификация по паре user_id/пароль. Возвращает юзера и свежий
// jwt токен; неверный пароль - domain.ErrPasswordMissMatch.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, findErr := s.userRepo.FindUserByID(ctx, args.UserID)
	if findErr != nil {
		return nil, "", fmt.Errorf("logging in user: %w", findErr)
	}

	if !s.psswd.ComparePassword(args.Password, user.Password) {
		return nil, "", fmt.Errorf("logging in user `%s`: %w", args.UserID, domain.ErrPasswordMissMatch)
	}

	token, tokenErr := tokens.GenerateUserJWT(user.UserID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("logging in user: %w", tokenErr)
	}
	return user, token, nil
}

// Logout завершает сессию юзера: проверяет, что предъявленный токен валиден
// и принадлежит userID. Токены stateless (jwt), сервер их не хранит -
// инвалидация сводится к отбрасыванию токена клиентом после подтверждения.
func (s *UserService) Logout(ctx context.Context, userID, token string) error {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return fmt.Errorf("logging out user: %w", err)
	}

	parsed, parseErr := tokens.ValidateUserJWT(token, s.jwtTokenSecret)
	if parseErr != nil {
		return fmt.Errorf("logging out user `%s`: %w", userID, domain.ErrAuthorizationFail)
	}
	claims, ok := parsed.Claims.(*tokens.UserClaims)
	if !ok || claims.UserID != userID {
		return fmt.Errorf("logging out user `%s`: %w", userID, domain.ErrAuthorizationFail)
	}
	return nil
}

// checkPassword общая проверка пароля для операций, требующих его повторного
// предъявления (add_funds, смена пароля, удаление аккаунта).
func (s *UserService) checkPassword(ctx context.Context, userID, password string) (*domain.User, error) {
	user, findErr := s.userRepo.FindUserByID(ctx, userID)
	if findErr != nil {
		return nil, findErr //nolint:wrapcheck
	}
	if !s.psswd.ComparePassword(password, user.Password) {
		return nil, fmt.Errorf("user `%s`: %w", userID, domain.ErrAuthorizationFail)
	}
	return user, nil
}

// AddFunds пополняет баланс юзера. Сумма проверяется на положительность
// слоем транспорта; пароль проверяется здесь.
func (s *UserService) AddFunds(ctx context.Context, userID, password string, amount int64) error {
	if _, err := s.checkPassword(ctx, userID, password); err != nil {
		return fmt.Errorf("adding funds: %w", err)
	}

	applied, creditErr := s.userRepo.CreditBalance(ctx, userID, amount)
	if creditErr != nil {
		return fmt.Errorf("adding funds: %w", creditErr)
	}
	if !applied {
		return fmt.Errorf("adding funds: user `%s`: %w", userID, domain.ErrRecordNotFound)
	}
	return nil
}

// ChangePassword меняет пароль после проверки старого.
func (s *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if _, err := s.checkPassword(ctx, userID, oldPassword); err != nil {
		return fmt.Errorf("changing password: %w", err)
	}

	hash, hashErr := s.psswd.HashPassword(newPassword)
	if hashErr != nil {
		return fmt.Errorf("changing password: %s", hashErr.Error())
	}

	applied, updErr := s.userRepo.UpdatePassword(ctx, userID, hash)
	if updErr != nil {
		return fmt.Errorf("changing password: %w", updErr)
	}
	if !applied {
		return fmt.Errorf("changing password: user `%s`: %w", userID, domain.ErrRecordNotFound)
	}
	return nil
}

// Unregister удаляет аккаунт после проверки пароля.
func (s *UserService) Unregister(ctx context.Context, userID, password string) error {
	if _, err := s.checkPassword(ctx, userID, password); err != nil {
		return fmt.Errorf("unregistering user: %w", err)
	}

	applied, delErr := s.userRepo.DeleteUser(ctx, userID)
	if delErr != nil {
		return fmt.Errorf("unregistering user: %w", delErr)
	}
	if !applied {
		return fmt.Errorf("unregistering user `%s`: %w", userID, domain.ErrRecordNotFound)
	}
	return nil
}
