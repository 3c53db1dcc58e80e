package mapper

import (
	"ai-bankassist-be/internal/entity"
	"ai-bankassist-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:             u.Id,
		Username:       u.Username,
		Email:          u.Email,
		FullName:       u.FullName,
		Phone:          u.Phone,
		HashedPassword: u.HashedPassword,
		IsVerified:     u.IsVerified,
		Status:         entity.UserStatus(u.Status),
		RiskLevel:      entity.RiskLevel(u.RiskLevel),
		LastLogin:      u.LastLogin,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:             u.Id,
		Username:       u.Username,
		Email:          u.Email,
		FullName:       u.FullName,
		Phone:          u.Phone,
		HashedPassword: u.HashedPassword,
		IsVerified:     u.IsVerified,
		Status:         string(u.Status),
		RiskLevel:      string(u.RiskLevel),
		LastLogin:      u.LastLogin,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
