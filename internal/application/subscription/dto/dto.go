package dto

import "time"

// Status is the result of a subscribe or unsubscribe request.
type Status string

const (
	StatusSubscribed       Status = "subscribed"
	StatusUnsubscribed     Status = "unsubscribed"
	StatusUserNotFound     Status = "user_not_found"
	StatusSelfReference    Status = "self_reference"
	StatusAlreadyFollowing Status = "already_following"
	StatusNotFollowing     Status = "not_following"
	StatusInvalidAction    Status = "invalid_action"
)

// OutcomeDTO is returned for every subscription request, successful or not.
// Failure classifies a rejected request and is nil on success.
type OutcomeDTO struct {
	Status  Status      `json:"status"`
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Target  *RelatedDTO `json:"target,omitempty"`
	Failure error       `json:"-"`
}

// RelatedDTO is a user on the other side of a follow edge.
type RelatedDTO struct {
	ID       uint       `json:"id"`
	Username string     `json:"username"`
	Since    *time.Time `json:"since,omitempty"`
}

type SubscriptionsDTO struct {
	Following []RelatedDTO `json:"following"`
	Followers []RelatedDTO `json:"followers"`
}

type UserListItemDTO struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	IsFollowing bool   `json:"is_following"`
}
