package command

import (
	"context"
	"fmt"

	"github.com/bookmyseva/storefront/internal/customer/domain"
)

// UpdateProfileCommand represents the command to update a customer's profile
type UpdateProfileCommand struct {
	CustomerID string
	Name       string
	Email      string
	Address    *domain.MirroredAddress
}

// UpdateProfileHandler handles profile updates
type UpdateProfileHandler struct {
	repo domain.CustomerRepository
}

// NewUpdateProfileHandler creates a new update profile handler
func NewUpdateProfileHandler(repo domain.CustomerRepository) *UpdateProfileHandler {
	return &UpdateProfileHandler{repo: repo}
}

// Handle executes the update profile command. The mobile number is the login
// identity and cannot be changed here.
func (h *UpdateProfileHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) (*domain.Customer, error) {
	if cmd.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer id is required", domain.ErrValidation)
	}

	customer, err := h.repo.FindByID(cmd.CustomerID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != "" {
		customer.Name = cmd.Name
	}
	if cmd.Email != "" {
		customer.Email = cmd.Email
	}
	if cmd.Address != nil {
		customer.Address = *cmd.Address
	}

	if err := h.repo.Update(customer); err != nil {
		return nil, err
	}

	return customer, nil
}
