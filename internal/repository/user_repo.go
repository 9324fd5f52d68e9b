package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/studio_go_server/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetByID(id int64) (*model.User, error) {
	var user model.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByPublicID(tx *gorm.DB, publicID string) (*model.User, error) {
	var user model.User
	err := tx.Where("public_id = ?", publicID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIDForUpdate 锁定会员行后读取，计数器调整必须走这里
func (r *UserRepository) GetByIDForUpdate(tx *gorm.DB, id int64) (*model.User, error) {
	var user model.User
	err := lockForUpdate(tx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateCounters 覆写聚合计数器，只允许在持锁事务内调用
func (r *UserRepository) UpdateCounters(tx *gorm.DB, id int64, visitsCount, minutesPractice int) error {
	return tx.Model(&model.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"visits_count":     visitsCount,
		"minutes_practice": minutesPractice,
	}).Error
}

func (r *UserRepository) List(page, pageSize int) ([]*model.User, int64, error) {
	var users []*model.User
	var total int64

	if err := r.db.Model(&model.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := r.db.Order("id ASC").Offset(offset).Limit(pageSize).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *UserRepository) ListAll() ([]*model.User, error) {
	var users []*model.User
	err := r.db.Order("id ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
