package repository

import (
	"gorm.io/gorm"

	"github.com/qs3c/studio_go_server/internal/model"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Append 追加一条审计记录。必须传业务变更所在事务的句柄，
// 写入失败时整个事务一起回滚，保证一次提交恰好一条。
func (r *AuditRepository) Append(tx *gorm.DB, entry *model.AuditLog) error {
	return tx.Create(entry).Error
}

func (r *AuditRepository) CountByAction(action string) (int64, error) {
	var count int64
	err := r.db.Model(&model.AuditLog{}).Where("action = ?", action).Count(&count).Error
	return count, err
}

func (r *AuditRepository) ListByRow(tableName string, rowID int64) ([]*model.AuditLog, error) {
	var entries []*model.AuditLog
	err := r.db.Where("table_name = ? AND row_id = ?", tableName, rowID).
		Order("id ASC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
