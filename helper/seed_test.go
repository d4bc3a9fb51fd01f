package helper_test

import (
	"context"
	"errors"
	"testing"

	"hotel/helper"
	roomMocks "hotel/internal/domains/room/mocks"
	roomDto "hotel/internal/domains/room/model/dto"
	userMocks "hotel/internal/domains/user/mocks"
	userDto "hotel/internal/domains/user/model/dto"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSeed(t *testing.T) {
	t.Run("creates accounts and rooms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := userMocks.NewMockUserService(ctrl)
		rooms := roomMocks.NewMockRoomService(ctrl)

		var usernames, roomNumbers []string

		users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req userDto.CreateUserRequest) (userDto.UserResponse, error) {
				usernames = append(usernames, req.Username)

				return userDto.UserResponse{}, nil
			}).Times(5)
		rooms.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req roomDto.CreateRoomRequest) (roomDto.CreateRoomResponse, error) {
				roomNumbers = append(roomNumbers, req.RoomNumber)

				return roomDto.CreateRoomResponse{}, nil
			}).Times(6)

		require.NoError(t, helper.Seed(context.Background(), users, rooms))
		assert.Equal(t, []string{"admin", "manager1", "waiter1", "waiter2", "receptionist1"}, usernames)
		assert.Equal(t, []string{"101", "102", "201", "202", "301", "302"}, roomNumbers)
	})

	t.Run("skips existing records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := userMocks.NewMockUserService(ctrl)
		rooms := roomMocks.NewMockRoomService(ctrl)

		users.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(userDto.UserResponse{}, failure.Duplicate("username already exists")).Times(5)
		rooms.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(roomDto.CreateRoomResponse{}, failure.Duplicate("room number already exists")).Times(6)

		assert.NoError(t, helper.Seed(context.Background(), users, rooms))
	})

	t.Run("stops on unexpected error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := userMocks.NewMockUserService(ctrl)
		rooms := roomMocks.NewMockRoomService(ctrl)

		users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(userDto.UserResponse{}, errors.New("connection refused"))

		err := helper.Seed(context.Background(), users, rooms)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "seeding user admin")
	})
}
