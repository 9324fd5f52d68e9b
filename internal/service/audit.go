package service

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/qs3c/studio_go_server/internal/model"
	"github.com/qs3c/studio_go_server/internal/repository"
)

// appendAudit 在业务事务内追加审计记录，失败时由调用方回滚整个事务
func appendAudit(auditRepo *repository.AuditRepository, tx *gorm.DB, actor Actor, action, tableName string, rowID int64, oldData, newData map[string]interface{}) error {
	oldJSON, err := json.Marshal(oldData)
	if err != nil {
		return err
	}
	newJSON, err := json.Marshal(newData)
	if err != nil {
		return err
	}

	return auditRepo.Append(tx, &model.AuditLog{
		ActorID:   actor.ID,
		ActorType: actor.Type,
		Action:    action,
		TableName: tableName,
		RowID:     rowID,
		OldData:   string(oldJSON),
		NewData:   string(newJSON),
		SourceIP:  actor.IP,
	})
}
