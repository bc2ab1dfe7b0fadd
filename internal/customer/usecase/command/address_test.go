package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bookmyseva/storefront/internal/customer/domain"
)

type fakeAddressRepo struct {
	entries map[string]*domain.Address
	deleted []string
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{entries: make(map[string]*domain.Address)}
}

func (r *fakeAddressRepo) ListByCustomer(customerID string) ([]domain.Address, error) {
	var out []domain.Address
	for _, a := range r.entries {
		if a.CustomerID == customerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAddressRepo) FindByID(customerID, id string) (*domain.Address, error) {
	a, ok := r.entries[id]
	if !ok || a.CustomerID != customerID {
		return nil, domain.ErrAddressNotFound
	}
	return a, nil
}

func (r *fakeAddressRepo) Upsert(address *domain.Address) error {
	copied := *address
	r.entries[address.ID] = &copied
	return nil
}

func (r *fakeAddressRepo) Delete(customerID, id string) error {
	if _, ok := r.entries[id]; !ok {
		return domain.ErrAddressNotFound
	}
	delete(r.entries, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeAddressRepo) CountByCustomer(customerID string) (int64, error) {
	var n int64
	for _, a := range r.entries {
		if a.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

func (r *fakeAddressRepo) ClearDefault(customerID string) error {
	for _, a := range r.entries {
		if a.CustomerID == customerID {
			a.IsDefault = false
		}
	}
	return nil
}

// mirrorRepo signals when the profile mirror goroutine lands its update
type mirrorRepo struct {
	fakeCustomerRepo
	updated chan *domain.Customer
}

func newMirrorRepo() *mirrorRepo {
	return &mirrorRepo{
		fakeCustomerRepo: *newFakeCustomerRepo(),
		updated:          make(chan *domain.Customer, 1),
	}
}

func (r *mirrorRepo) Update(customer *domain.Customer) error {
	if err := r.fakeCustomerRepo.Update(customer); err != nil {
		return err
	}
	r.updated <- customer
	return nil
}

func validAddress() domain.Address {
	return domain.Address{
		Name:    "Ramesh",
		HouseNo: "12-3",
		Area:    "Jubilee Hills",
		City:    "Hyderabad",
		State:   "Telangana",
		Pincode: "500033",
		Phone:   "9876543210",
	}
}

func TestUpsertAddressValidationLeavesBookUntouched(t *testing.T) {
	addresses := newFakeAddressRepo()
	customers := newFakeCustomerRepo()
	handler := NewUpsertAddressHandler(addresses, customers)

	address := validAddress()
	address.City = ""

	_, err := handler.Handle(context.Background(), UpsertAddressCommand{
		CustomerID: "cust-1",
		Address:    address,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("got %v, want ErrValidation", err)
	}
	if len(addresses.entries) != 0 {
		t.Error("address book must stay untouched on validation failure")
	}
}

func TestUpsertAddressFirstEntryBecomesDefaultAndMirrors(t *testing.T) {
	addresses := newFakeAddressRepo()
	customers := newMirrorRepo()
	customers.byMobile["9876543210"] = &domain.Customer{
		ID:     "cust-1",
		Name:   "Ramesh",
		Mobile: "9876543210",
	}
	handler := NewUpsertAddressHandler(addresses, customers)

	saved, err := handler.Handle(context.Background(), UpsertAddressCommand{
		CustomerID: "cust-1",
		Address:    validAddress(),
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if saved.ID == "" {
		t.Error("new entry should get an ID")
	}
	if !saved.IsDefault {
		t.Error("first entry must become the default")
	}

	select {
	case customer := <-customers.updated:
		if customer.Address.Street != "12-3, Jubilee Hills" {
			t.Errorf("mirrored street %q", customer.Address.Street)
		}
		if customer.Address.City != "Hyderabad" || customer.Address.Zip != "500033" {
			t.Errorf("mirrored address %+v", customer.Address)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("profile mirror never ran")
	}
}

func TestUpsertAddressSecondEntryNotDefault(t *testing.T) {
	addresses := newFakeAddressRepo()
	customers := newFakeCustomerRepo()
	handler := NewUpsertAddressHandler(addresses, customers)

	first := validAddress()
	first.ID = "addr-1"
	first.CustomerID = "cust-1"
	if err := addresses.Upsert(&first); err != nil {
		t.Fatal(err)
	}

	second := validAddress()
	second.Name = "Office"
	saved, err := handler.Handle(context.Background(), UpsertAddressCommand{
		CustomerID: "cust-1",
		Address:    second,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if saved.IsDefault {
		t.Error("second entry must not be forced default")
	}
}

func TestUpsertAddressDefaultFlagMovesBetweenEntries(t *testing.T) {
	addresses := newFakeAddressRepo()
	customers := newFakeCustomerRepo()
	handler := NewUpsertAddressHandler(addresses, customers)

	first, err := handler.Handle(context.Background(), UpsertAddressCommand{
		CustomerID: "cust-1",
		Address:    validAddress(),
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := validAddress()
	second.Name = "Office"
	second.IsDefault = true
	saved, err := handler.Handle(context.Background(), UpsertAddressCommand{
		CustomerID: "cust-1",
		Address:    second,
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if !saved.IsDefault {
		t.Fatal("the explicitly marked entry must become the default")
	}

	defaults := 0
	for _, a := range addresses.entries {
		if a.IsDefault {
			defaults++
		}
	}
	if defaults != 1 {
		t.Errorf("book has %d defaults, want exactly 1", defaults)
	}
	if addresses.entries[first.ID].IsDefault {
		t.Error("the previous default must lose the flag")
	}
}

func TestDeleteAddressRequiresConfirmation(t *testing.T) {
	addresses := newFakeAddressRepo()
	entry := validAddress()
	entry.ID = "addr-1"
	entry.CustomerID = "cust-1"
	if err := addresses.Upsert(&entry); err != nil {
		t.Fatal(err)
	}

	handler := NewDeleteAddressHandler(addresses)

	err := handler.Handle(context.Background(), DeleteAddressCommand{
		CustomerID: "cust-1",
		AddressID:  "addr-1",
	})
	if !errors.Is(err, domain.ErrConfirmRequired) {
		t.Fatalf("unconfirmed delete: got %v, want ErrConfirmRequired", err)
	}
	if len(addresses.deleted) != 0 {
		t.Fatal("entry must survive an unconfirmed delete")
	}

	err = handler.Handle(context.Background(), DeleteAddressCommand{
		CustomerID: "cust-1",
		AddressID:  "addr-1",
		Confirmed:  true,
	})
	if err != nil {
		t.Fatalf("confirmed delete: %v", err)
	}
	if len(addresses.deleted) != 1 {
		t.Fatal("confirmed delete must remove the entry")
	}
}

func TestDeleteAddressUnknownEntry(t *testing.T) {
	addresses := newFakeAddressRepo()
	handler := NewDeleteAddressHandler(addresses)

	// Not-found wins over the confirmation prompt
	err := handler.Handle(context.Background(), DeleteAddressCommand{
		CustomerID: "cust-1",
		AddressID:  "missing",
	})
	if !errors.Is(err, domain.ErrAddressNotFound) {
		t.Fatalf("got %v, want ErrAddressNotFound", err)
	}
}
