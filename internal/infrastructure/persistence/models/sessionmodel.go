package models

import "litreview/internal/shared/constants"

// SessionModel represents the database persistence model for sessions.
type SessionModel struct {
	ID        string `gorm:"primaryKey;size:64"`
	UserID    uint   `gorm:"not null;index:idx_user_sessions_user_id"`
	IPAddress string `gorm:"size:45"`
	UserAgent string `gorm:"size:512"`
	ExpiresAt int64  `gorm:"not null;index:idx_user_sessions_expires_at"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (SessionModel) TableName() string {
	return constants.TableSessions
}
