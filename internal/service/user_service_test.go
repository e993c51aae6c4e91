package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/internal/service/mocks"
	"github.com/fsdevblog/groph-market/internal/transport/api/tokens"
	"github.com/fsdevblog/groph-market/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-market/pkg/uow/mocks"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUOW      *uowmocks.MockUOW
	mockUserRepo *mocks.MockUserRepository
	mockPsswd    *mocks.MockPasswordHasher
	jwtSecret    []byte
	userService  *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockPsswd = mocks.NewMockPasswordHasher(s.mockCtrl)
	s.jwtSecret = []byte("test-secret")

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()

	userService, servErr := NewUserService(s.mockUOW, s.jwtSecret, s.mockPsswd)
	s.Require().NoError(servErr)
	s.userService = userService
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *UserServiceTestSuite) TestRegister() {
	s.mockPsswd.EXPECT().HashPassword("secret").Return("hash", nil)
	s.mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), repoargs.CreateUser{UserID: "user-1", Password: "hash"}).
		Return(&domain.User{UserID: "user-1", Password: "hash"}, nil)

	user, token, err := s.userService.Register(context.Background(), RegisterUserArgs{
		UserID:   "user-1",
		Password: "secret",
	})
	s.Require().NoError(err)
	s.Equal("user-1", user.UserID)

	// токен должен валидироваться тем же секретом.
	parsed, parseErr := tokens.ValidateUserJWT(token, s.jwtSecret)
	s.Require().NoError(parseErr)
	claims, ok := parsed.Claims.(*tokens.UserClaims)
	s.Require().True(ok)
	s.Equal("user-1", claims.UserID)
}

func (s *UserServiceTestSuite) TestRegisterDuplicate() {
	s.mockPsswd.EXPECT().HashPassword("secret").Return("hash", nil)
	s.mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)

	_, _, err := s.userService.Register(context.Background(), RegisterUserArgs{
		UserID:   "user-1",
		Password: "secret",
	})
	s.Require().ErrorIs(err, domain.ErrDuplicateKey)
}

func (s *UserServiceTestSuite) TestLogin() {
	user := domain.User{UserID: "user-1", Password: "hash", Balance: 300}

	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), "user-1").Return(&user, nil)
	s.mockPsswd.EXPECT().ComparePassword("secret", "hash").Return(true)

	loggedIn, token, err := s.userService.Login(context.Background(), LoginUserArgs{
		UserID:   "user-1",
		Password: "secret",
	})
	s.Require().NoError(err)
	s.Equal(int64(300), loggedIn.Balance)
	s.NotEmpty(token)
}

func (s *UserServiceTestSuite) TestLoginWrongPassword() {
	user := domain.User{UserID: "user-1", Password: "hash"}

	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), "user-1").Return(&user, nil)
	s.mockPsswd.EXPECT().ComparePassword("wrong", "hash").Return(false)

	_, _, err := s.userService.Login(context.Background(), LoginUserArgs{
		UserID:   "user-1",
		Password: "wrong",
	})
	s.Require().ErrorIs(err, domain.ErrPasswordMissMatch)
}

func (s *UserServiceTestSuite) TestLogout() {
	user := domain.User{UserID: "user-1", Password: "hash"}
	token, tokenErr := tokens.GenerateUserJWT("user-1", JWTTokenExpire, s.jwtSecret)
	s.Require().NoError(tokenErr)

	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), "user-1").Return(&user, nil)

	err := s.userService.Logout(context.Background(), "user-1", token)
	s.Require().NoError(err)
}

func (s *UserServiceTestSuite) TestLogoutForeignToken() {
	// токен выписан другому юзеру - завершать чужую сессию нельзя.
	user := domain.User{UserID: "user-1", Password: "hash"}
	token, tokenErr := tokens.GenerateUserJWT("user-2", JWTTokenExpire, s.jwtSecret)
	s.Require().NoError(tokenErr)

	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), "user-1").Return(&user, nil)

	err := s.userService.Logout(context.Background(), "user-1", token)
	s.Require().ErrorIs(err, domain.ErrAuthorizationFail)
}

func (s *UserServiceTestSuite) TestLogoutMalformedToken() {
	user := domain.User{UserID: "user-1", Password: "hash"}

	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), "user-1").Return(&user, nil)

	err := s.userService.Logout(context.Background(), "user-1", "not-a-jwt")
	s.Require().ErrorIs(err, domain.ErrAuthorizationFail)
}

func (s *UserServiceTestSuite) TestAddFunds() {
	user := domain.User{UserID: "user-1", Password: "hash"}

	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), "user-1").Return(&user, nil)
	s.mockPsswd.EXPECT().ComparePassword("secret", "hash").Return(true)
	s.mockUserRepo.EXPECT().CreditBalance(gomock.Any(), "user-1", int64(500)).Return(true, nil)

	err := s.userService.AddFunds(context.Background(), "user-1", "secret", 500)
	s.Require().NoError(err)
}

func (s *UserServiceTestSuite) TestAddFundsWrongPassword() {
	user := domain.User{UserID: "user-1", Password: "hash"}

	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), "user-1").Return(&user, nil)
	s.mockPsswd.EXPECT().ComparePassword("wrong", "hash").Return(false)

	err := s.userService.AddFunds(context.Background(), "user-1", "wrong", 500)
	s.Require().ErrorIs(err, domain.ErrAuthorizationFail)
}

func (s *UserServiceTestSuite) TestChangePassword() {
	user := domain.User{UserID: "user-1", Password: "old-hash"}

	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), "user-1").Return(&user, nil)
	s.mockPsswd.EXPECT().ComparePassword("old", "old-hash").Return(true)
	s.mockPsswd.EXPECT().HashPassword("new").Return("new-hash", nil)
	s.mockUserRepo.EXPECT().UpdatePassword(gomock.Any(), "user-1", "new-hash").Return(true, nil)

	err := s.userService.ChangePassword(context.Background(), "user-1", "old", "new")
	s.Require().NoError(err)
}

func (s *UserServiceTestSuite) TestUnregister() {
	user := domain.User{UserID: "user-1", Password: "hash"}

	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), "user-1").Return(&user, nil)
	s.mockPsswd.EXPECT().ComparePassword("secret", "hash").Return(true)
	s.mockUserRepo.EXPECT().DeleteUser(gomock.Any(), "user-1").Return(true, nil)

	err := s.userService.Unregister(context.Background(), "user-1", "secret")
	s.Require().NoError(err)
}

func (s *UserServiceTestSuite) TestUnregisterUnknownUser() {
	s.mockUserRepo.EXPECT().
		FindUserByID(gomock.Any(), "ghost").
		Return(nil, domain.ErrRecordNotFound)

	err := s.userService.Unregister(context.Background(), "ghost", "secret")
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}
