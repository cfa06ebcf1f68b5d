package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Salon / Artist --------
	GetSalonByID(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	GetSalonBySlug(
		ctx context.Context,
		slug string,
	) (*models.Salon, error)

	GetArtist(
		ctx context.Context,
		artistID uint,
	) (*models.User, error)

	// -------- Opening hours --------
	GetSalonHours(
		ctx context.Context,
		salonID uint,
	) (*models.OpeningHours, error)

	GetArtistHours(
		ctx context.Context,
		artistID uint,
	) (*models.OpeningHours, error)

	// -------- Blocked ranges (CRUD) --------
	CreateBlock(
		ctx context.Context,
		block *models.BlockedRange,
	) error

	GetBlockByID(
		ctx context.Context,
		id uint,
	) (*models.BlockedRange, error)

	SaveBlock(
		ctx context.Context,
		block *models.BlockedRange,
	) error

	DeleteBlock(
		ctx context.Context,
		id uint,
	) error

	ListBlocksBySalon(
		ctx context.Context,
		salonID uint,
	) ([]models.BlockedRange, error)

	ListBlocksByArtist(
		ctx context.Context,
		artistID uint,
	) ([]models.BlockedRange, error)

	// -------- Blocked ranges (availability) --------

	// ListSalonBlocksInRange retorna todo bloqueio do salão que cruza
	// [start, end), de qualquer profissional ou do salão inteiro.
	ListSalonBlocksInRange(
		ctx context.Context,
		salonID uint,
		start time.Time,
		end time.Time,
	) ([]models.BlockedRange, error)

	// ListArtistBlocksInRange retorna os bloqueios que valem para o
	// profissional: os dele mais os do salão inteiro (artist_id nulo).
	ListArtistBlocksInRange(
		ctx context.Context,
		salonID uint,
		artistID uint,
		start time.Time,
		end time.Time,
	) ([]models.BlockedRange, error)
}
