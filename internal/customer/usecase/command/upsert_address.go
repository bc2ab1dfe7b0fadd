package command

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bookmyseva/storefront/internal/customer/domain"
	"github.com/bookmyseva/storefront/pkg/logger"
)

// UpsertAddressCommand represents the command to add or edit an address book
// entry. An empty ID means a new entry.
type UpsertAddressCommand struct {
	CustomerID string
	Address    domain.Address
}

// UpsertAddressHandler handles address book writes
type UpsertAddressHandler struct {
	addresses domain.AddressRepository
	customers domain.CustomerRepository
}

// NewUpsertAddressHandler creates a new upsert address handler
func NewUpsertAddressHandler(addresses domain.AddressRepository, customers domain.CustomerRepository) *UpsertAddressHandler {
	return &UpsertAddressHandler{addresses: addresses, customers: customers}
}

// Handle validates and persists the entry. A validation failure leaves the
// address book untouched. When the entry is the default (or the book's
// first), it is mirrored onto the profile record on a best-effort basis; a
// mirror failure never fails the write.
func (h *UpsertAddressHandler) Handle(ctx context.Context, cmd UpsertAddressCommand) (*domain.Address, error) {
	address := cmd.Address
	address.CustomerID = cmd.CustomerID

	if err := address.Validate(); err != nil {
		return nil, err
	}

	if address.ID == "" {
		address.ID = uuid.New().String()
	}

	count, err := h.addresses.CountByCustomer(cmd.CustomerID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		address.IsDefault = true
	}

	// Only one entry carries the default flag at a time
	if address.IsDefault {
		if err := h.addresses.ClearDefault(cmd.CustomerID); err != nil {
			return nil, err
		}
	}

	if err := h.addresses.Upsert(&address); err != nil {
		return nil, err
	}

	if address.IsDefault {
		go h.mirrorToProfile(cmd.CustomerID, address)
	}

	return &address, nil
}

func (h *UpsertAddressHandler) mirrorToProfile(customerID string, address domain.Address) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	customer, err := h.customers.FindByID(customerID)
	if err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("customer_id", customerID).
			Msg("Profile mirror skipped: customer lookup failed")
		return
	}

	customer.Address = domain.MirroredAddress{
		Name:   address.Name,
		Phone:  address.Phone,
		Street: address.Street(),
		City:   address.City,
		State:  address.State,
		Zip:    address.Pincode,
	}

	if err := h.customers.Update(customer); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("customer_id", customerID).
			Str("address_id", address.ID).
			Msg("Profile mirror failed")
	}
}
