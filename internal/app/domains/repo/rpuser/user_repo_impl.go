package rpuser

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"fooddel/backend/internal/app/domains/entity/etuser"
	"fooddel/backend/internal/app/infra/persistence/entity"
)

// UserRepositoryImpl 用户仓储实现（MySQL）
type UserRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储实例
func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create 创建用户
func (r *UserRepositoryImpl) Create(ctx context.Context, user *etuser.User) error {
	po, err := r.toGormModel(user)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(po).Error
}

// GetByID 根据ID查询用户
func (r *UserRepositoryImpl) GetByID(ctx context.Context, userID int64) (*etuser.User, error) {
	var po entity.User
	err := r.db.WithContext(ctx).Where("id = ?", userID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomainModel(&po)
}

// GetByEmail 根据邮箱查询用户（用于检查重复）
func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*etuser.User, error) {
	var po entity.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomainModel(&po)
}

// Exists 检查用户是否存在
func (r *UserRepositoryImpl) Exists(ctx context.Context, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.User{}).Where("id = ?", userID).Count(&count).Error
	return count > 0, err
}

// UpdateCart 整体覆盖购物车数据
func (r *UserRepositoryImpl) UpdateCart(ctx context.Context, userID int64, cart map[string]int) error {
	cartJSON, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", userID).
		Update("cart_data", cartJSON).Error
}

// ClearCart 清空购物车
func (r *UserRepositoryImpl) ClearCart(ctx context.Context, userID int64) error {
	return r.UpdateCart(ctx, userID, map[string]int{})
}

// toGormModel 领域对象转换为 GORM 模型
func (r *UserRepositoryImpl) toGormModel(user *etuser.User) (*entity.User, error) {
	cart := user.CartData
	if cart == nil {
		cart = map[string]int{}
	}
	cartJSON, err := json.Marshal(cart)
	if err != nil {
		return nil, err
	}

	return &entity.User{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CartData:     cartJSON,
		CreatedAt:    user.CreatedAt,
	}, nil
}

// toDomainModel GORM 模型转换为领域对象
func (r *UserRepositoryImpl) toDomainModel(po *entity.User) (*etuser.User, error) {
	cart := map[string]int{}
	if len(po.CartData) > 0 {
		if err := json.Unmarshal(po.CartData, &cart); err != nil {
			return nil, err
		}
	}

	return &etuser.User{
		ID:           po.ID,
		Name:         po.Name,
		Email:        po.Email,
		PasswordHash: po.PasswordHash,
		CartData:     cart,
		CreatedAt:    po.CreatedAt,
	}, nil
}
