package command

import (
	"context"

	"github.com/bookmyseva/storefront/internal/customer/domain"
)

// DeleteAddressCommand represents the command to delete an address book
// entry. Confirmed must be set for the deletion to proceed.
type DeleteAddressCommand struct {
	CustomerID string
	AddressID  string
	Confirmed  bool
}

// DeleteAddressHandler handles address deletion
type DeleteAddressHandler struct {
	addresses domain.AddressRepository
}

// NewDeleteAddressHandler creates a new delete address handler
func NewDeleteAddressHandler(addresses domain.AddressRepository) *DeleteAddressHandler {
	return &DeleteAddressHandler{addresses: addresses}
}

// Handle removes the entry. An unconfirmed request is rejected with
// ErrConfirmRequired so the client can surface its confirmation dialog; the
// entry is untouched until the confirmed retry arrives.
func (h *DeleteAddressHandler) Handle(ctx context.Context, cmd DeleteAddressCommand) error {
	if _, err := h.addresses.FindByID(cmd.CustomerID, cmd.AddressID); err != nil {
		return err
	}

	if !cmd.Confirmed {
		return domain.ErrConfirmRequired
	}

	return h.addresses.Delete(cmd.CustomerID, cmd.AddressID)
}
