package models

// All lists every persistence model. Tests and the dev auto-migration use it.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&SessionModel{},
		&TicketModel{},
		&ReviewModel{},
		&UserFollowModel{},
	}
}
