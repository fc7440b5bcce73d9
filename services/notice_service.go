package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yeremiapane/notice-board/database"
	"github.com/yeremiapane/notice-board/models"
	"github.com/yeremiapane/notice-board/utils"
)

const (
	HomeNoticeLimit      = 3
	DashboardNoticeLimit = 5
)

// NoticeInput carries the raw form values for a new notice.
type NoticeInput struct {
	Title      string
	Content    string
	Category   string
	ExpiryDate string
	OwnerID    uint
}

type NoticeService struct {
	exec *database.Executor
	now  func() time.Time
}

func NewNoticeService(exec *database.Executor) *NoticeService {
	return &NoticeService{exec: exec, now: time.Now}
}

// Today is the date used to decide whether a notice is still active.
func (s *NoticeService) Today() time.Time {
	return utils.DateOnly(s.now())
}

// ListActive returns notices with no expiry or an expiry on or after asOf, newest first.
func (s *NoticeService) ListActive(ctx context.Context, asOf time.Time) ([]models.Notice, error) {
	var notices []models.Notice
	err := s.exec.QueryMany(ctx, &notices, `
		SELECT * FROM notices
		WHERE expiry_date IS NULL OR expiry_date >= ?
		ORDER BY created_at DESC, id DESC`,
		utils.DateOnly(asOf),
	)
	if err != nil {
		return nil, err
	}
	return notices, nil
}

// ListActiveRecent is ListActive capped at limit rows.
func (s *NoticeService) ListActiveRecent(ctx context.Context, asOf time.Time, limit int) ([]models.Notice, error) {
	var notices []models.Notice
	err := s.exec.QueryMany(ctx, &notices, `
		SELECT * FROM notices
		WHERE expiry_date IS NULL OR expiry_date >= ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`,
		utils.DateOnly(asOf), limit,
	)
	if err != nil {
		return nil, err
	}
	return notices, nil
}

// Create inserts a notice owned by an admin and returns its id.
func (s *NoticeService) Create(ctx context.Context, in NoticeInput) (uint, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return 0, fmt.Errorf("%w: title and content are required", ErrValidation)
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = models.DefaultCategory
	}
	expiry, err := utils.ParseDate(strings.TrimSpace(in.ExpiryDate))
	if err != nil {
		return 0, ErrInvalidExpiryDate
	}

	// The SELECT only yields a row when the owner exists and is an admin.
	res, err := s.exec.Execute(ctx, `
		INSERT INTO notices (title, content, category, expiry_date, user_id, created_at)
		SELECT ?, ?, ?, ?, id, ? FROM users WHERE id = ? AND role = ?`,
		title, content, category, expiry, s.now().UTC(), in.OwnerID, models.RoleAdmin,
	)
	if err != nil {
		return 0, err
	}
	if res.RowsAffected == 0 {
		return 0, ErrNotAdmin
	}

	utils.InfoLogger.Printf("Notice %d published by user %d", res.LastInsertID, in.OwnerID)
	return uint(res.LastInsertID), nil
}

// GetByID returns the notice with its owner's username.
func (s *NoticeService) GetByID(ctx context.Context, id uint) (*models.NoticeWithOwner, error) {
	var notice models.NoticeWithOwner
	found, err := s.exec.QueryOne(ctx, &notice, `
		SELECT notices.*, users.username
		FROM notices
		JOIN users ON notices.user_id = users.id
		WHERE notices.id = ?
		LIMIT 1`,
		id,
	)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &notice, nil
}

func (s *NoticeService) CountAll(ctx context.Context) (int64, error) {
	var row struct {
		TotalNotices int64
	}
	if _, err := s.exec.QueryOne(ctx, &row, "SELECT COUNT(*) AS total_notices FROM notices"); err != nil {
		return 0, err
	}
	return row.TotalNotices, nil
}

// ListRecent returns the newest notices regardless of expiry, with owner usernames.
func (s *NoticeService) ListRecent(ctx context.Context, limit int) ([]models.NoticeWithOwner, error) {
	var notices []models.NoticeWithOwner
	err := s.exec.QueryMany(ctx, &notices, `
		SELECT notices.*, users.username
		FROM notices
		JOIN users ON notices.user_id = users.id
		ORDER BY notices.created_at DESC, notices.id DESC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	return notices, nil
}
