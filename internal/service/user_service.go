package service

import (
	"errors"

	"github.com/qs3c/subnego_go_server/internal/model"
	"github.com/qs3c/subnego_go_server/internal/store"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	store *store.Store
}

func NewUserService(st *store.Store) *UserService {
	return &UserService{store: st}
}

// Create 创建用户档案并入库
func (s *UserService) Create() *model.UserProfile {
	user := model.NewUserProfile()
	s.store.PutUser(user)
	return user
}

// Get 按 id 查询用户
func (s *UserService) Get(userID string) (*model.UserProfile, error) {
	user, ok := s.store.GetUser(userID)
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}
