package repository

import (
	"context"

	"github.com/ecodeclub/contesthub/internal/user/internal/domain"
	"github.com/ecodeclub/contesthub/internal/user/internal/repository/dao"
)

var (
	ErrUserNotFound  = dao.ErrUserNotFound
	ErrDuplicateUser = dao.ErrDuplicateUser
)

//go:generate mockgen -source=./user.go -destination=./mocks/user.mock.go -package=repomocks UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
}

type userRepository struct {
	dao dao.UserDAO
}

func NewUserRepository(dao dao.UserDAO) UserRepository {
	return &userRepository{dao: dao}
}

func (r *userRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return r.dao.Insert(ctx, r.domainToEntity(u))
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	entity, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	return r.entityToDomain(entity), nil
}

func (r *userRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	entity, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return r.entityToDomain(entity), nil
}

func (r *userRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:       u.Id,
		SN:       u.SN,
		Email:    u.Email,
		Nickname: u.Nickname,
		Password: u.Password,
	}
}

func (r *userRepository) entityToDomain(u dao.User) domain.User {
	return domain.User{
		Id:       u.Id,
		SN:       u.SN,
		Email:    u.Email,
		Nickname: u.Nickname,
		Password: u.Password,
		Ctime:    u.Ctime,
		Utime:    u.Utime,
	}
}
