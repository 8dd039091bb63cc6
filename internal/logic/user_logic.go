package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/fractionax/marketplace/internal/model"
	"gorm.io/gorm"
)

// ErrUserNotFound 用户不存在
var ErrUserNotFound = errors.New("user not found")

// UserLogic 用户业务逻辑
type UserLogic struct {
	*RecordLogic[model.UserModel]
	db *gorm.DB
}

// NewUserLogic 创建用户业务逻辑
func NewUserLogic(db *gorm.DB) *UserLogic {
	return &UserLogic{
		RecordLogic: NewRecordLogic[model.UserModel](db),
		db:          db,
	}
}

// GetUser 获取用户
func (u *UserLogic) GetUser(ctx context.Context, id int64) (*model.UserModel, error) {
	var user model.UserModel
	if err := u.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

// IsApproved 用户是否可以直接购买该投资, 否则只能登记意向
func (u *UserLogic) IsApproved(ctx context.Context, userId, investmentId int64) (bool, error) {
	user, err := u.GetUser(ctx, userId)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsApprovedFor(investmentId), nil
}
