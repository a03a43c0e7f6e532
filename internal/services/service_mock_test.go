package services

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/mocks"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockMeetingRepo *mocks.MockMeetingRepo
	mockUserRepo    *mocks.MockUserRepo
	mockSentRepo    *mocks.MockSentRepo
	mockTransport   *mocks.MockTransport
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	meetingRepo := mocks.NewMockMeetingRepo(ctrl)
	dm.EXPECT().Meeting().Return(meetingRepo).AnyTimes()

	userRepo := mocks.NewMockUserRepo(ctrl)
	dm.EXPECT().User().Return(userRepo).AnyTimes()

	sentRepo := mocks.NewMockSentRepo(ctrl)
	dm.EXPECT().Sent().Return(sentRepo).AnyTimes()

	m = allMocks{
		mockDataManager: dm,
		mockMeetingRepo: meetingRepo,
		mockUserRepo:    userRepo,
		mockSentRepo:    sentRepo,
		mockTransport:   mocks.NewMockTransport(ctrl),
	}
	return
}
