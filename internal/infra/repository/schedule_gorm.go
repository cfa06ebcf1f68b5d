package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Salon / Artist
// --------------------------------------------------

func (r *ScheduleGormRepository) GetSalonByID(
	ctx context.Context,
	id uint,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, id).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *ScheduleGormRepository) GetSalonBySlug(
	ctx context.Context,
	slug string,
) (*models.Salon, error) {

	var salon models.Salon
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&salon).Error; err != nil {
		return nil, err
	}
	return &salon, nil
}

func (r *ScheduleGormRepository) GetArtist(
	ctx context.Context,
	artistID uint,
) (*models.User, error) {

	var artist models.User
	if err := r.db.WithContext(ctx).First(&artist, artistID).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

// --------------------------------------------------
// Opening hours
// --------------------------------------------------

func (r *ScheduleGormRepository) GetSalonHours(
	ctx context.Context,
	salonID uint,
) (*models.OpeningHours, error) {

	var hours models.OpeningHours
	if err := r.db.WithContext(ctx).
		Where("salon_id = ? AND artist_id IS NULL", salonID).
		First(&hours).Error; err != nil {
		return nil, err
	}
	return &hours, nil
}

func (r *ScheduleGormRepository) GetArtistHours(
	ctx context.Context,
	artistID uint,
) (*models.OpeningHours, error) {

	var hours models.OpeningHours
	if err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		First(&hours).Error; err != nil {
		return nil, err
	}
	return &hours, nil
}

// --------------------------------------------------
// Blocked ranges (CRUD)
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateBlock(
	ctx context.Context,
	block *models.BlockedRange,
) error {
	return r.db.WithContext(ctx).Create(block).Error
}

func (r *ScheduleGormRepository) GetBlockByID(
	ctx context.Context,
	id uint,
) (*models.BlockedRange, error) {

	var block models.BlockedRange
	if err := r.db.WithContext(ctx).First(&block, id).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *ScheduleGormRepository) SaveBlock(
	ctx context.Context,
	block *models.BlockedRange,
) error {
	return r.db.WithContext(ctx).Save(block).Error
}

func (r *ScheduleGormRepository) DeleteBlock(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.BlockedRange{}, id).Error
}

func (r *ScheduleGormRepository) ListBlocksBySalon(
	ctx context.Context,
	salonID uint,
) ([]models.BlockedRange, error) {

	var blocks []models.BlockedRange
	if err := r.db.WithContext(ctx).
		Where("salon_id = ?", salonID).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *ScheduleGormRepository) ListBlocksByArtist(
	ctx context.Context,
	artistID uint,
) ([]models.BlockedRange, error) {

	var blocks []models.BlockedRange
	if err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// --------------------------------------------------
// Blocked ranges (availability)
// --------------------------------------------------

func (r *ScheduleGormRepository) ListSalonBlocksInRange(
	ctx context.Context,
	salonID uint,
	start time.Time,
	end time.Time,
) ([]models.BlockedRange, error) {

	var blocks []models.BlockedRange
	if err := r.db.WithContext(ctx).
		Where(
			"salon_id = ? AND start_time < ? AND end_time > ?",
			salonID, end, start,
		).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *ScheduleGormRepository) ListArtistBlocksInRange(
	ctx context.Context,
	salonID uint,
	artistID uint,
	start time.Time,
	end time.Time,
) ([]models.BlockedRange, error) {

	var blocks []models.BlockedRange
	if err := r.db.WithContext(ctx).
		Where(
			"salon_id = ? AND (artist_id IS NULL OR artist_id = ?) AND start_time < ? AND end_time > ?",
			salonID, artistID, end, start,
		).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// Compile-time check
var _ schedule.Repository = (*ScheduleGormRepository)(nil)
