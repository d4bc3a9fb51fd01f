package main

import (
	"context"

	"hotel/config"
	"hotel/helper"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	userRepository "hotel/internal/domains/user/repository"
	userService "hotel/internal/domains/user/service"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.Configure(cfg)

	if err := helper.Up(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	db := postgres.New(cfg)
	defer db.Close()

	ot := otel.New(cfg)

	events := kafka.New(cfg)
	defer events.Close()

	users := userService.New(userRepository.New(db, ot), ot)
	rooms := roomService.New(
		roomRepository.New(db, ot),
		roomRepository.NewCheckIn(db, ot),
		roomRepository.NewOccupancy(db, ot),
		postgres.NewTransactor(db),
		events,
		ot,
	)

	if err := helper.Seed(context.Background(), users, rooms); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed database")
	}

	log.Info().Msg("Database seeded successfully")
}
