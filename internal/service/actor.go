package service

// Actor 发起操作的员工身份，审计日志的必填输入
type Actor struct {
	ID   int64
	Type string // trainer, admin
	IP   string
}

// IsAdmin 是否管理员
func (a Actor) IsAdmin() bool {
	return a.Type == "admin"
}
