package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate 行级锁。sqlite 没有 FOR UPDATE 语法（写事务本身串行化），
// 只在 mysql 上附加锁子句，锁随事务提交或回滚释放。
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}
