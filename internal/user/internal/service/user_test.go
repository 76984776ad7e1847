package service

import (
	"context"
	"testing"

	"github.com/ecodeclub/contesthub/internal/user/internal/domain"
	"github.com/ecodeclub/contesthub/internal/user/internal/repository"
	repomocks "github.com/ecodeclub/contesthub/internal/user/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	t.Run("注册成功", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockUserRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, u domain.User) (int64, error) {
				assert.Equal(t, "test@example.com", u.Email)
				assert.NotEmpty(t, u.SN)
				assert.Equal(t, u.SN[:4], u.Nickname)
				// 存储里只能有 bcrypt 哈希
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("hello#world123")))
				return int64(7), nil
			})

		svc := NewUserService(repo)
		u, err := svc.Register(context.Background(), "test@example.com", "hello#world123")
		require.NoError(t, err)
		assert.Equal(t, int64(7), u.Id)
		assert.Empty(t, u.Password)
	})

	t.Run("邮箱重复", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockUserRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(int64(0), repository.ErrDuplicateUser)

		svc := NewUserService(repo)
		_, err := svc.Register(context.Background(), "test@example.com", "hello#world123")
		assert.ErrorIs(t, err, ErrDuplicateUser)
	})
}

func TestUserService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hello#world123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	stored := domain.User{
		Id:       7,
		SN:       "sn-test",
		Email:    "test@example.com",
		Password: string(hash),
	}

	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.UserRepository
		password string
		wantErr  error
	}{
		{
			name: "登录成功",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "test@example.com").Return(stored, nil)
				return repo
			},
			password: "hello#world123",
		},
		{
			name: "密码不对",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "test@example.com").Return(stored, nil)
				return repo
			},
			password: "wrong-password",
			wantErr:  ErrInvalidCredentials,
		},
		{
			// 用户不存在和密码不对返回同一个错误，不暴露邮箱是否注册过
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "test@example.com").
					Return(domain.User{}, repository.ErrUserNotFound)
				return repo
			},
			password: "hello#world123",
			wantErr:  ErrInvalidCredentials,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl))
			u, err := svc.Login(context.Background(), "test@example.com", tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), u.Id)
			assert.Empty(t, u.Password)
		})
	}
}

func TestUserService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockUserRepository(ctrl)
	repo.EXPECT().FindById(gomock.Any(), int64(7)).Return(domain.User{
		Id:       7,
		SN:       "sn-test",
		Email:    "test@example.com",
		Nickname: "sn-t",
		Password: "should-not-leak",
	}, nil)

	svc := NewUserService(repo)
	u, err := svc.Profile(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, u.Password)
	assert.Equal(t, "test@example.com", u.Email)
}
