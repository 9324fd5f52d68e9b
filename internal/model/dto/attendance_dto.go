package dto

// MarkAttendanceRequest 录入考勤请求
type MarkAttendanceRequest struct {
	Status string `json:"status" binding:"required"`
}

// AttendanceItem 考勤记录返回体
type AttendanceItem struct {
	ID       int64  `json:"id"`
	Status   string `json:"status"`
	MarkedAt string `json:"marked_at"`
}

// CreateBookingRequest 创建预约请求
type CreateBookingRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// BookingItem 预约返回体
type BookingItem struct {
	BookingID string `json:"booking_id"`
	ClassID   string `json:"class_id"`
	UserID    string `json:"user_id"`
	Status    string `json:"status"`
}
