package mapper

import (
	"taskforge/internal/adapter/http/dto"
	"taskforge/internal/core/domain"
)

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
