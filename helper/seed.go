package helper

import (
	"context"
	"fmt"
	"net/http"

	roomDto "hotel/internal/domains/room/model/dto"
	roomService "hotel/internal/domains/room/service"
	userDto "hotel/internal/domains/user/model/dto"
	userService "hotel/internal/domains/user/service"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var seedUsers = []userDto.CreateUserRequest{
	{Username: "admin", Password: "admin123", Email: "admin@hotel.com", FullName: "Administrator", Role: constant.RoleAdmin},
	{Username: "manager1", Password: "manager123", Email: "manager1@hotel.com", FullName: "John Manager", Role: constant.RoleManager, Department: "Management"},
	{Username: "waiter1", Password: "waiter123", Email: "waiter1@hotel.com", FullName: "James Smith", Role: constant.RoleEmployee, Department: "Dining"},
	{Username: "waiter2", Password: "waiter123", Email: "waiter2@hotel.com", FullName: "Sarah Johnson", Role: constant.RoleEmployee, Department: "Dining"},
	{Username: "receptionist1", Password: "recept123", Email: "recept1@hotel.com", FullName: "Emma Davis", Role: constant.RoleEmployee, Department: "Front Desk"},
}

var seedRooms = []roomDto.CreateRoomRequest{
	{RoomNumber: "101", RoomType: "Single", Capacity: 1, PricePerNight: decimal.NewFromInt(50)},
	{RoomNumber: "102", RoomType: "Double", Capacity: 2, PricePerNight: decimal.NewFromInt(75)},
	{RoomNumber: "201", RoomType: "Suite", Capacity: 4, PricePerNight: decimal.NewFromInt(150)},
	{RoomNumber: "202", RoomType: "Deluxe", Capacity: 2, PricePerNight: decimal.NewFromInt(100)},
	{RoomNumber: "301", RoomType: "Single", Capacity: 1, PricePerNight: decimal.NewFromInt(50)},
	{RoomNumber: "302", RoomType: "Double", Capacity: 2, PricePerNight: decimal.NewFromInt(75)},
}

// alreadySeeded matches the duplicate failures returned for existing usernames and room numbers.
func alreadySeeded(err error) bool {
	return failure.Is(err, http.StatusBadRequest)
}

// Seed creates the sample staff accounts and rooms. Records that already exist are skipped.
func Seed(ctx context.Context, users userService.User, rooms roomService.Room) error {
	for _, req := range seedUsers {
		if _, err := users.Create(ctx, req); err != nil {
			if alreadySeeded(err) {
				log.Info().Str("username", req.Username).Msg("user already exists, skipping")

				continue
			}

			return fmt.Errorf("seeding user %s: %w", req.Username, err)
		}

		log.Info().Str("username", req.Username).Str("role", req.Role).Msg("user seeded")
	}

	for _, req := range seedRooms {
		if _, err := rooms.Create(ctx, req); err != nil {
			if alreadySeeded(err) {
				log.Info().Str("room_number", req.RoomNumber).Msg("room already exists, skipping")

				continue
			}

			return fmt.Errorf("seeding room %s: %w", req.RoomNumber, err)
		}

		log.Info().Str("room_number", req.RoomNumber).Msg("room seeded")
	}

	return nil
}
