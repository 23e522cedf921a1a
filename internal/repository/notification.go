package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/nutrifyhq/nutrify/internal/model"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
)

type NotificationRepository interface {
	CreateIfAbsent(notification *model.Notification) (bool, error)
	Unread(userID string) ([]*model.Notification, error)
	MarkRead(userID, notificationID string) error
}

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// CreateIfAbsent inserts a notification unless one already exists for the
// same (user, date, category). Returns true when a row was written, so
// callers only schedule side effects (email) for first-time firings.
func (r *notificationRepository) CreateIfAbsent(notification *model.Notification) (bool, error) {
	query := `INSERT INTO notifications (id, user_id, category, message, notify_date, is_read, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT DO NOTHING`

	result, err := r.db.Exec(query,
		notification.ID,
		notification.UserID,
		notification.Category,
		notification.Message,
		notification.NotifyDate,
		notification.IsRead,
		notification.CreatedAt,
	)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

// Unread filters read notifications out in the database, newest first.
func (r *notificationRepository) Unread(userID string) ([]*model.Notification, error) {
	var notifications []*model.Notification
	query := `SELECT * FROM notifications
	          WHERE user_id = $1 AND is_read = FALSE
	          ORDER BY created_at DESC`

	err := r.db.Select(&notifications, query, userID)
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

// MarkRead flips the read flag. The user_id predicate keeps callers from
// mutating records they do not own.
func (r *notificationRepository) MarkRead(userID, notificationID string) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, notificationID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
