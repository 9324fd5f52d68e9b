package model

import (
	"time"
)

// 审计动作
const (
	AuditActionAssignSubscription = "assign_subscription"
	AuditActionMarkAttendance     = "mark_attendance"
)

// AuditLog 审计日志，只追加，不更新不删除。
// 与被描述的业务变更在同一事务内写入，保证一次提交恰好一条。
// TableName 字段占用了方法名，表名依赖 gorm 默认复数规则（audit_logs）。
type AuditLog struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	ActorID   int64     `gorm:"not null;index" json:"actor_id"`
	ActorType string    `gorm:"size:20;not null" json:"actor_type"` // trainer, admin
	Action    string    `gorm:"size:50;not null;index" json:"action"`
	TableName string    `gorm:"size:50;not null" json:"table_name"`
	RowID     int64     `gorm:"not null" json:"row_id"`
	OldData   string    `gorm:"type:text" json:"old_data"`
	NewData   string    `gorm:"type:text" json:"new_data"`
	SourceIP  string    `gorm:"size:45" json:"source_ip"`
	CreatedAt time.Time `json:"created_at"`
}
