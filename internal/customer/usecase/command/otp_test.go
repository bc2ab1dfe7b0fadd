package command

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/bookmyseva/storefront/internal/customer/domain"
	"github.com/bookmyseva/storefront/pkg/auth"
	"github.com/bookmyseva/storefront/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("customer-command-test", false)
	os.Exit(m.Run())
}

type fakeOTPStore struct {
	hashes   map[string]string
	cooldown map[string]bool
	getErr   error
}

func newFakeOTPStore() *fakeOTPStore {
	return &fakeOTPStore{
		hashes:   make(map[string]string),
		cooldown: make(map[string]bool),
	}
}

func (s *fakeOTPStore) Save(_ context.Context, mobile, codeHash string) error {
	s.hashes[mobile] = codeHash
	return nil
}

func (s *fakeOTPStore) Get(_ context.Context, mobile string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	hash, ok := s.hashes[mobile]
	if !ok {
		return "", domain.ErrInvalidOTP
	}
	return hash, nil
}

func (s *fakeOTPStore) Delete(_ context.Context, mobile string) error {
	delete(s.hashes, mobile)
	return nil
}

func (s *fakeOTPStore) StartCooldown(_ context.Context, mobile string) error {
	s.cooldown[mobile] = true
	return nil
}

func (s *fakeOTPStore) CooldownActive(_ context.Context, mobile string) (bool, error) {
	return s.cooldown[mobile], nil
}

type fakeSender struct {
	sentTo   string
	sentCode string
}

func (f *fakeSender) Send(_ context.Context, mobile, code string) error {
	f.sentTo = mobile
	f.sentCode = code
	return nil
}

type fakeCustomerRepo struct {
	byMobile map[string]*domain.Customer
	created  *domain.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byMobile: make(map[string]*domain.Customer)}
}

func (r *fakeCustomerRepo) Create(customer *domain.Customer) error {
	if _, exists := r.byMobile[customer.Mobile]; exists {
		return domain.ErrMobileTaken
	}
	r.byMobile[customer.Mobile] = customer
	r.created = customer
	return nil
}

func (r *fakeCustomerRepo) FindByID(id string) (*domain.Customer, error) {
	for _, c := range r.byMobile {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrCustomerNotFound
}

func (r *fakeCustomerRepo) FindByMobile(mobile string) (*domain.Customer, error) {
	c, ok := r.byMobile[mobile]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepo) Update(customer *domain.Customer) error {
	r.byMobile[customer.Mobile] = customer
	return nil
}

func (r *fakeCustomerRepo) Count() (int64, error) {
	return int64(len(r.byMobile)), nil
}

func TestSendOTPRejectsInvalidMobile(t *testing.T) {
	store := newFakeOTPStore()
	sender := &fakeSender{}
	handler := NewSendOTPHandler(newFakeCustomerRepo(), store, sender)

	for _, mobile := range []string{"", "12345", "98765432100", "98765abcde"} {
		err := handler.Handle(context.Background(), SendOTPCommand{Mobile: mobile, IsSignup: true})
		if !errors.Is(err, domain.ErrInvalidMobile) {
			t.Errorf("mobile %q: got %v, want ErrInvalidMobile", mobile, err)
		}
	}

	if sender.sentCode != "" {
		t.Error("no code should be dispatched for invalid mobiles")
	}
}

func TestSendOTPLoginUnknownMobileHandsOverToRegistration(t *testing.T) {
	store := newFakeOTPStore()
	sender := &fakeSender{}
	handler := NewSendOTPHandler(newFakeCustomerRepo(), store, sender)

	err := handler.Handle(context.Background(), SendOTPCommand{Mobile: "9999999999"})
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("got %v, want ErrCustomerNotFound", err)
	}

	// The handoff happens before any code exists
	if sender.sentCode != "" {
		t.Error("no code should be dispatched for an unregistered login")
	}
	if len(store.hashes) != 0 {
		t.Error("no code should be stored for an unregistered login")
	}
}

func TestSendOTPSignupTakenMobile(t *testing.T) {
	store := newFakeOTPStore()
	sender := &fakeSender{}
	repo := newFakeCustomerRepo()
	repo.byMobile["9876543210"] = &domain.Customer{ID: "cust-1", Mobile: "9876543210"}
	handler := NewSendOTPHandler(repo, store, sender)

	err := handler.Handle(context.Background(), SendOTPCommand{Mobile: "9876543210", IsSignup: true})
	if !errors.Is(err, domain.ErrMobileTaken) {
		t.Fatalf("got %v, want ErrMobileTaken", err)
	}
	if sender.sentCode != "" {
		t.Error("no code should be dispatched for a taken signup mobile")
	}
}

func TestSendOTPLoginExistingCustomer(t *testing.T) {
	store := newFakeOTPStore()
	sender := &fakeSender{}
	repo := newFakeCustomerRepo()
	repo.byMobile["9876543210"] = &domain.Customer{ID: "cust-1", Mobile: "9876543210"}
	handler := NewSendOTPHandler(repo, store, sender)

	if err := handler.Handle(context.Background(), SendOTPCommand{Mobile: "9876543210"}); err != nil {
		t.Fatalf("login send: %v", err)
	}
	if sender.sentTo != "9876543210" {
		t.Errorf("sent to %q, want 9876543210", sender.sentTo)
	}
}

func TestSendOTPCooldown(t *testing.T) {
	store := newFakeOTPStore()
	sender := &fakeSender{}
	handler := NewSendOTPHandler(newFakeCustomerRepo(), store, sender)

	if err := handler.Handle(context.Background(), SendOTPCommand{Mobile: "9876543210", IsSignup: true}); err != nil {
		t.Fatalf("first send: %v", err)
	}

	err := handler.Handle(context.Background(), SendOTPCommand{Mobile: "9876543210", IsSignup: true})
	if !errors.Is(err, domain.ErrOTPCooldown) {
		t.Fatalf("resend inside cooldown: got %v, want ErrOTPCooldown", err)
	}
}

func TestSendOTPDispatchesMatchingCode(t *testing.T) {
	store := newFakeOTPStore()
	sender := &fakeSender{}
	handler := NewSendOTPHandler(newFakeCustomerRepo(), store, sender)

	if err := handler.Handle(context.Background(), SendOTPCommand{Mobile: "9876543210", IsSignup: true}); err != nil {
		t.Fatalf("send: %v", err)
	}

	if sender.sentTo != "9876543210" {
		t.Errorf("sent to %q, want 9876543210", sender.sentTo)
	}
	if len(sender.sentCode) != 4 {
		t.Errorf("code %q, want 4 digits", sender.sentCode)
	}

	hash := store.hashes["9876543210"]
	if hash == "" {
		t.Fatal("hash not stored")
	}
	if !auth.CheckOTP(hash, sender.sentCode) {
		t.Error("stored hash does not match the dispatched code")
	}
	if !store.cooldown["9876543210"] {
		t.Error("cooldown not started")
	}
}

func TestVerifyOTPWrongCode(t *testing.T) {
	store := newFakeOTPStore()
	repo := newFakeCustomerRepo()

	hash, err := auth.HashOTP("1234")
	if err != nil {
		t.Fatal(err)
	}
	store.hashes["9876543210"] = hash

	handler := NewVerifyOTPHandler(repo, store)
	_, err = handler.Handle(context.Background(), VerifyOTPCommand{Mobile: "9876543210", Code: "9999"})
	if !errors.Is(err, domain.ErrInvalidOTP) {
		t.Fatalf("got %v, want ErrInvalidOTP", err)
	}
}

func TestVerifyOTPLoginUnknownMobileHandsOverToRegistration(t *testing.T) {
	store := newFakeOTPStore()
	repo := newFakeCustomerRepo()

	hash, err := auth.HashOTP("1234")
	if err != nil {
		t.Fatal(err)
	}
	store.hashes["9876543210"] = hash

	handler := NewVerifyOTPHandler(repo, store)
	_, err = handler.Handle(context.Background(), VerifyOTPCommand{Mobile: "9876543210", Code: "1234"})
	if !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("got %v, want ErrCustomerNotFound", err)
	}

	// The code survives the handoff so the registration retry can reuse it
	if _, ok := store.hashes["9876543210"]; !ok {
		t.Error("code should not be consumed on the login handoff")
	}
}

func TestVerifyOTPRegistersWhenNamePresent(t *testing.T) {
	store := newFakeOTPStore()
	repo := newFakeCustomerRepo()

	hash, err := auth.HashOTP("1234")
	if err != nil {
		t.Fatal(err)
	}
	store.hashes["9876543210"] = hash

	handler := NewVerifyOTPHandler(repo, store)
	resp, err := handler.Handle(context.Background(), VerifyOTPCommand{
		Mobile: "9876543210",
		Code:   "1234",
		Name:   "Ramesh",
		Email:  "ramesh@example.com",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if repo.created == nil {
		t.Fatal("customer not created")
	}
	if repo.created.Name != "Ramesh" || repo.created.Mobile != "9876543210" {
		t.Errorf("created %+v", repo.created)
	}
	if repo.created.ID == "" {
		t.Error("customer ID not assigned")
	}
	if resp.Token == "" {
		t.Error("token not issued")
	}

	// One code, one session
	if _, ok := store.hashes["9876543210"]; ok {
		t.Error("consumed code should be deleted")
	}
}

func TestVerifyOTPLoginExistingCustomer(t *testing.T) {
	store := newFakeOTPStore()
	repo := newFakeCustomerRepo()
	repo.byMobile["9876543210"] = &domain.Customer{
		ID:     "cust-1",
		Name:   "Sita",
		Mobile: "9876543210",
	}

	hash, err := auth.HashOTP("4321")
	if err != nil {
		t.Fatal(err)
	}
	store.hashes["9876543210"] = hash

	handler := NewVerifyOTPHandler(repo, store)
	resp, err := handler.Handle(context.Background(), VerifyOTPCommand{Mobile: "9876543210", Code: "4321"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if resp.Customer.ID != "cust-1" {
		t.Errorf("customer ID %q, want cust-1", resp.Customer.ID)
	}
	if resp.Token == "" {
		t.Error("token not issued")
	}

	claims, err := auth.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.CustomerID != "cust-1" {
		t.Errorf("token customer ID %q, want cust-1", claims.CustomerID)
	}

	// Replay of the consumed code must fail
	_, err = handler.Handle(context.Background(), VerifyOTPCommand{Mobile: "9876543210", Code: "4321"})
	if !errors.Is(err, domain.ErrInvalidOTP) {
		t.Fatalf("replay: got %v, want ErrInvalidOTP", err)
	}
}
