package firestore

import (
	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/contract"
)

type instance struct {
	meetingRepo contract.MeetingRepo
	userRepo    contract.UserRepo
	sentRepo    contract.SentRepo
}

// NewInstance creates a DataManager over the meetings and users collections
func NewInstance(db *DB) contract.DataManager {
	return &instance{
		meetingRepo: newMeetingRepo(db.client),
		userRepo:    newUserRepo(db.client),
		sentRepo:    newSentRepo(db.client),
	}
}

func (i *instance) Meeting() contract.MeetingRepo {
	return i.meetingRepo
}

func (i *instance) User() contract.UserRepo {
	return i.userRepo
}

func (i *instance) Sent() contract.SentRepo {
	return i.sentRepo
}
