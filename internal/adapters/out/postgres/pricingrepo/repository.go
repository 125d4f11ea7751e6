package pricingrepo

import (
	"context"
	"errors"

	"castlecare/internal/core/domain/model/kernel"
	"castlecare/internal/core/domain/model/pricing"
	"castlecare/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPricingRepository implements PricingRepository using GORM.
type GormPricingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPricingRepository creates a new GORM pricing repository.
func NewGormPricingRepository(db *gorm.DB, tracker aggregateTracker) *GormPricingRepository {
	return &GormPricingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pricing option to the database.
func (r *GormPricingRepository) Add(ctx context.Context, aggregate *pricing.PricingOption) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing pricing option to the database.
func (r *GormPricingRepository) Update(ctx context.Context, aggregate *pricing.PricingOption) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PricingOptionDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pricingOptionId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a pricing option by ID.
func (r *GormPricingRepository) Get(ctx context.Context, id kernel.UUID) (*pricing.PricingOption, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PricingOptionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pricingOptionId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByServiceType retrieves all pricing options for a service type,
// cheapest first.
func (r *GormPricingRepository) GetAllByServiceType(
	ctx context.Context,
	serviceType pricing.ServiceType,
) ([]*pricing.PricingOption, error) {
	if err := serviceType.Validate(); err != nil {
		return nil, err
	}

	var dtos []PricingOptionDTO
	err := r.db.WithContext(ctx).
		Order("price").
		Find(&dtos, "service_type = ?", serviceType.String()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByServiceTypeAndBillingPeriod retrieves pricing options for a service
// type narrowed to a single billing period, cheapest first.
func (r *GormPricingRepository) GetAllByServiceTypeAndBillingPeriod(
	ctx context.Context,
	serviceType pricing.ServiceType,
	billingPeriod pricing.BillingPeriod,
) ([]*pricing.PricingOption, error) {
	if err := serviceType.Validate(); err != nil {
		return nil, err
	}
	if err := billingPeriod.Validate(); err != nil {
		return nil, err
	}

	var dtos []PricingOptionDTO
	err := r.db.WithContext(ctx).
		Order("price").
		Find(&dtos, "service_type = ? AND billing_period = ?", serviceType.String(), billingPeriod.String()).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []PricingOptionDTO) ([]*pricing.PricingOption, error) {
	plans := make([]*pricing.PricingOption, 0, len(dtos))
	for _, dto := range dtos {
		plan, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}

	return plans, nil
}
