package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/qs3c/studio_go_server/config"
	"github.com/qs3c/studio_go_server/internal/model"
	"github.com/qs3c/studio_go_server/internal/model/dto"
	"github.com/qs3c/studio_go_server/internal/pkg/metrics"
	"github.com/qs3c/studio_go_server/internal/repository"
)

var (
	ErrClassNotFound           = errors.New("课程不存在")
	ErrBookingNotFound         = errors.New("预约不存在")
	ErrClassNotStarted         = errors.New("课程尚未开始，无法录入考勤")
	ErrInvalidAttendanceStatus = errors.New("无效的考勤状态")
)

type AttendanceService struct {
	db          *gorm.DB
	classRepo   *repository.ClassRepository
	bookingRepo *repository.BookingRepository
	attRepo     *repository.AttendanceRepository
	userRepo    *repository.UserRepository
	auditRepo   *repository.AuditRepository
	cfg         *config.Config
}

func NewAttendanceService(
	db *gorm.DB,
	classRepo *repository.ClassRepository,
	bookingRepo *repository.BookingRepository,
	attRepo *repository.AttendanceRepository,
	userRepo *repository.UserRepository,
	auditRepo *repository.AuditRepository,
	cfg *config.Config,
) *AttendanceService {
	return &AttendanceService{
		db:          db,
		classRepo:   classRepo,
		bookingRepo: bookingRepo,
		attRepo:     attRepo,
		userRepo:    userRepo,
		auditRepo:   auditRepo,
		cfg:         cfg,
	}
}

// Mark 录入一条考勤。单事务，预约行全程持锁：
// 校验归属和开课时间，upsert 考勤行，同步预约状态，
// 按状态迁移（而非绝对状态）调整会员聚合计数器，最后追加审计。
// 任一步失败整个事务回滚，不会留下半套状态。
func (s *AttendanceService) Mark(ctx context.Context, actor Actor, classPublicID, bookingPublicID string, status model.AttendanceStatus) (*dto.AttendanceItem, error) {
	if !status.Valid() {
		return nil, ErrInvalidAttendanceStatus
	}

	var item *dto.AttendanceItem

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		class, err := s.classRepo.GetByPublicID(tx, classPublicID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClassNotFound
			}
			return err
		}

		// 只有课程归属的教练或管理员能录入
		if !actor.IsAdmin() && class.TrainerID != actor.ID {
			return ErrClassNotFound
		}

		// 锁定预约行，同一预约的并发录入在这里排队
		booking, err := s.bookingRepo.GetByPublicIDForUpdate(tx, bookingPublicID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if booking.ClassID != class.ID {
			return ErrBookingNotFound
		}

		// 开课门槛：未开始的课不能点名
		now := time.Now()
		if !class.HasStarted(now) {
			return ErrClassNotStarted
		}

		// 前值：无考勤行即 AttendanceNone
		prev := model.AttendanceNone
		if existing, err := s.attRepo.GetByBookingID(tx, booking.ID); err == nil {
			prev = existing.Status
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		att := &model.Attendance{
			BookingID: booking.ID,
			Status:    status,
			MarkedAt:  now,
		}
		if err := s.attRepo.Upsert(tx, att); err != nil {
			return err
		}
		att, err = s.attRepo.GetByBookingID(tx, booking.ID)
		if err != nil {
			return err
		}

		bookingStatus, visitsDelta := resolveTransition(prev, status)
		if err := s.bookingRepo.UpdateStatus(tx, booking.ID, bookingStatus); err != nil {
			return err
		}

		if visitsDelta != 0 {
			// 计数器读改写必须在同一把锁内
			user, err := s.userRepo.GetByIDForUpdate(tx, booking.UserID)
			if err != nil {
				return err
			}

			visits := user.VisitsCount + visitsDelta
			if visits < 0 {
				visits = 0
			}
			minutes := user.MinutesPractice + visitsDelta*class.DurationMinutes
			if minutes < 0 {
				minutes = 0
			}
			if err := s.userRepo.UpdateCounters(tx, user.ID, visits, minutes); err != nil {
				return err
			}
		}

		oldData := map[string]interface{}{"status": string(prev)}
		newData := map[string]interface{}{"status": string(status)}
		if err := appendAudit(s.auditRepo, tx, actor, model.AuditActionMarkAttendance, "attendances", att.ID, oldData, newData); err != nil {
			return err
		}

		item = &dto.AttendanceItem{
			ID:       att.ID,
			Status:   string(att.Status),
			MarkedAt: att.MarkedAt.Format(time.RFC3339),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.AttendanceMarked.WithLabelValues(string(status)).Inc()
	return item, nil
}
