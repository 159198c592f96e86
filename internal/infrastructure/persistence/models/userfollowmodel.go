package models

import "litreview/internal/shared/constants"

// UserFollowModel is a directed follow edge: UserID follows FollowedUserID.
type UserFollowModel struct {
	ID             uint  `gorm:"primaryKey"`
	UserID         uint  `gorm:"not null;uniqueIndex:uk_user_follows_pair,priority:1"`
	FollowedUserID uint  `gorm:"not null;uniqueIndex:uk_user_follows_pair,priority:2;index:idx_user_follows_followed"`
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null"`
}

func (UserFollowModel) TableName() string {
	return constants.TableUserFollows
}
