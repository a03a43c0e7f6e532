package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sachaflorestadistica-commits/sachaflor-bot/internal/models"
)

func TestRoleResolver_Resolve(t *testing.T) {
	type args struct {
		meetingRoles models.RoleValue
	}
	tests := []struct {
		name      string
		args      args
		buildMock func(m allMocks)
		want      []models.Recipient
		wantErr   bool
	}{
		{
			name: "Should match accent and case insensitively but not by substring",
			args: args{meetingRoles: models.ListRole("Líder")},
			buildMock: func(m allMocks) {
				m.mockUserRepo.EXPECT().List(gomock.Any()).Return([]*models.User{
					{ID: "u1", DisplayName: "Ana", ChatID: "111", Role: models.TextRole("lider")},
					{ID: "u2", DisplayName: "Beto", ChatID: "222", Role: models.TextRole("Liderazgo")},
				}, nil).Times(1)
			},
			want: []models.Recipient{
				{UserID: "u1", DisplayName: "Ana", ChatID: "111", MatchedRole: "lider", RawRole: models.TextRole("lider")},
			},
		},
		{
			name: "Should skip users without chat id or roles",
			args: args{meetingRoles: models.TextRole("Cultivador")},
			buildMock: func(m allMocks) {
				m.mockUserRepo.EXPECT().List(gomock.Any()).Return([]*models.User{
					{ID: "u1", ChatID: "   ", Role: models.TextRole("cultivador")},
					{ID: "u2", ChatID: "222"},
					{ID: "u3", ChatID: "333", Roles: models.ListRole("", " ")},
					{ID: "u4", ChatID: " 444 ", Role: models.TextRole("CULTIVADOR")},
				}, nil).Times(1)
			},
			want: []models.Recipient{
				{UserID: "u4", DisplayName: "u4", ChatID: "444", MatchedRole: "cultivador", RawRole: models.TextRole("CULTIVADOR")},
			},
		},
		{
			name: "Should prefer roles over role and record the first match in the user's order",
			args: args{meetingRoles: models.ListRole("Músico", "Diácono")},
			buildMock: func(m allMocks) {
				m.mockUserRepo.EXPECT().List(gomock.Any()).Return([]*models.User{
					{ID: "u1", DisplayName: "Ana", ChatID: "111", Role: models.TextRole("Cultivador"), Roles: models.ListRole("Diacono", "musico")},
				}, nil).Times(1)
			},
			want: []models.Recipient{
				{UserID: "u1", DisplayName: "Ana", ChatID: "111", MatchedRole: "diacono", RawRole: models.ListRole("Diacono", "musico")},
			},
		},
		{
			name: "Should keep roster order",
			args: args{meetingRoles: models.TextRole("pastor")},
			buildMock: func(m allMocks) {
				m.mockUserRepo.EXPECT().List(gomock.Any()).Return([]*models.User{
					{ID: "z", ChatID: "1", Role: models.TextRole("Pastor")},
					{ID: "a", ChatID: "2", Role: models.TextRole("pastor")},
				}, nil).Times(1)
			},
			want: []models.Recipient{
				{UserID: "z", DisplayName: "z", ChatID: "1", MatchedRole: "pastor", RawRole: models.TextRole("Pastor")},
				{UserID: "a", DisplayName: "a", ChatID: "2", MatchedRole: "pastor", RawRole: models.TextRole("pastor")},
			},
		},
		{
			name:      "Should not scan the roster when the meeting has no roles",
			args:      args{meetingRoles: models.ListRole()},
			buildMock: func(m allMocks) {},
			want:      nil,
		},
		{
			name: "Should return error when the roster cannot be read",
			args: args{meetingRoles: models.TextRole("pastor")},
			buildMock: func(m allMocks) {
				m.mockUserRepo.EXPECT().List(gomock.Any()).Return(nil, models.NewStoreError("list users", errors.New("unavailable"))).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			r := NewRoleResolver(m.mockUserRepo)
			got, err := r.Resolve(context.Background(), tt.args.meetingRoles)

			if tt.wantErr {
				require.Error(t, err)
				var storeErr *models.StoreError
				assert.True(t, errors.As(err, &storeErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChatResolver_Resolve(t *testing.T) {
	got, err := NewChatResolver("-100").Resolve(context.Background(), models.RoleValue{})

	require.NoError(t, err)
	assert.Equal(t, []models.Recipient{{ChatID: "-100"}}, got)
}
