package service

import (
	"github.com/qs3c/studio_go_server/internal/model"
)

// resolveTransition 考勤状态机的迁移函数。
// 输入前值与新值，返回同步后的预约状态和出勤次数增量；
// 练习分钟增量 = visitsDelta * 课程时长，由调用方在锁内套用并对 0 取下界。
// 增量只由迁移决定，不由绝对状态决定：重复录入同一状态对计数器是空操作。
func resolveTransition(prev, next model.AttendanceStatus) (bookingStatus string, visitsDelta int) {
	switch next {
	case model.AttendanceAttended:
		bookingStatus = model.BookingStatusAttended
		if prev != model.AttendanceAttended {
			visitsDelta = 1
		}
	case model.AttendanceAbsent:
		bookingStatus = model.BookingStatusAbsent
		if prev == model.AttendanceAttended {
			visitsDelta = -1
		}
	case model.AttendanceLate:
		// 迟到不算缺席，预约保持 booked
		bookingStatus = model.BookingStatusBooked
		if prev == model.AttendanceAttended {
			visitsDelta = -1
		}
	}
	return bookingStatus, visitsDelta
}
