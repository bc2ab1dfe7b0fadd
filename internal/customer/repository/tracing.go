package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/bookmyseva/storefront/internal/customer/domain"
)

var tracer = otel.Tracer("customer-repository")

// GormCustomerRepositoryWithTracing wraps GormCustomerRepository with tracing
type GormCustomerRepositoryWithTracing struct {
	*GormCustomerRepository
}

// NewGormCustomerRepositoryWithTracing creates a new repository with tracing
func NewGormCustomerRepositoryWithTracing(db *gorm.DB) *GormCustomerRepositoryWithTracing {
	return &GormCustomerRepositoryWithTracing{
		GormCustomerRepository: NewGormCustomerRepository(db),
	}
}

// Create with tracing
func (r *GormCustomerRepositoryWithTracing) CreateWithContext(ctx context.Context, customer *domain.Customer) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("customer.mobile", customer.Mobile),
		),
	)
	defer span.End()

	err := r.GormCustomerRepository.Create(customer)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.String("customer.id", customer.ID))
	return nil
}

// FindByID with tracing
func (r *GormCustomerRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id string) (*domain.Customer, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.String("customer.id", id),
		),
	)
	defer span.End()

	customer, err := r.GormCustomerRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("customer.mobile", customer.Mobile))
	return customer, nil
}

// FindByMobile with tracing
func (r *GormCustomerRepositoryWithTracing) FindByMobileWithContext(ctx context.Context, mobile string) (*domain.Customer, error) {
	_, span := tracer.Start(ctx, "repository.FindByMobile",
		trace.WithAttributes(
			attribute.String("customer.mobile", mobile),
		),
	)
	defer span.End()

	customer, err := r.GormCustomerRepository.FindByMobile(mobile)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("customer.id", customer.ID))
	return customer, nil
}

// Update with tracing
func (r *GormCustomerRepositoryWithTracing) UpdateWithContext(ctx context.Context, customer *domain.Customer) error {
	_, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.String("customer.id", customer.ID),
		),
	)
	defer span.End()

	err := r.GormCustomerRepository.Update(customer)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// Count with tracing
func (r *GormCustomerRepositoryWithTracing) CountWithContext(ctx context.Context) (int64, error) {
	_, span := tracer.Start(ctx, "repository.Count")
	defer span.End()

	count, err := r.GormCustomerRepository.Count()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.count", count))
	return count, nil
}

// GormAddressRepositoryWithTracing wraps GormAddressRepository with tracing
type GormAddressRepositoryWithTracing struct {
	*GormAddressRepository
}

// NewGormAddressRepositoryWithTracing creates a new address repository with tracing
func NewGormAddressRepositoryWithTracing(db *gorm.DB) *GormAddressRepositoryWithTracing {
	return &GormAddressRepositoryWithTracing{
		GormAddressRepository: NewGormAddressRepository(db),
	}
}

// ListByCustomer with tracing
func (r *GormAddressRepositoryWithTracing) ListByCustomerWithContext(ctx context.Context, customerID string) ([]domain.Address, error) {
	_, span := tracer.Start(ctx, "repository.ListAddresses",
		trace.WithAttributes(
			attribute.String("customer.id", customerID),
		),
	)
	defer span.End()

	addresses, err := r.GormAddressRepository.ListByCustomer(customerID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(addresses)))
	return addresses, nil
}

// Upsert with tracing
func (r *GormAddressRepositoryWithTracing) UpsertWithContext(ctx context.Context, address *domain.Address) error {
	_, span := tracer.Start(ctx, "repository.UpsertAddress",
		trace.WithAttributes(
			attribute.String("customer.id", address.CustomerID),
			attribute.String("address.id", address.ID),
		),
	)
	defer span.End()

	err := r.GormAddressRepository.Upsert(address)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// Delete with tracing
func (r *GormAddressRepositoryWithTracing) DeleteWithContext(ctx context.Context, customerID, id string) error {
	_, span := tracer.Start(ctx, "repository.DeleteAddress",
		trace.WithAttributes(
			attribute.String("customer.id", customerID),
			attribute.String("address.id", id),
		),
	)
	defer span.End()

	err := r.GormAddressRepository.Delete(customerID, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
