package handler

import (
	"context"
	"strings"

	"github.com/stretchr/testify/mock"

	"storefront-be/internal/checkout"
	"storefront-be/internal/order"
	"storefront-be/internal/session"
	"storefront-be/internal/user"
	"storefront-be/internal/verification"
)

// MockUserService is a mock implementation of user.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, in user.RegisterInput) (string, *user.User, error) {
	args := m.Called(ctx, in)
	if args.Get(1) == nil {
		return "", nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*user.User), args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (string, *user.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return "", nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*user.User), args.Error(2)
}

func (m *MockUserService) GetByID(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, id string, in user.UpdateInput) (*user.User, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) BackfillConsumerIDs(ctx context.Context) ([]user.BackfillResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]user.BackfillResult), args.Error(1)
}

// MockOrderService is a mock implementation of order.Service
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreatePending(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) GetByOrderID(ctx context.Context, orderID string) (*order.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) Claim(ctx context.Context, orderID, paymentKey string) error {
	return m.Called(ctx, orderID, paymentKey).Error(0)
}

func (m *MockOrderService) Release(ctx context.Context, orderID string) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *MockOrderService) Complete(ctx context.Context, orderID, paymentKey string) error {
	return m.Called(ctx, orderID, paymentKey).Error(0)
}

func (m *MockOrderService) Fail(ctx context.Context, orderID string) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *MockOrderService) ListAll(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderService) ListForCustomer(ctx context.Context, email string) ([]order.Order, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderService) SendVerificationSMS(ctx context.Context, phone, code string) error {
	return m.Called(ctx, phone, code).Error(0)
}

func (m *MockOrderService) SendPaymentCompleteSMS(ctx context.Context, req order.PaymentCompleteRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockOrderService) SendTrackingSMS(ctx context.Context, req order.TrackingRequest) error {
	return m.Called(ctx, req).Error(0)
}

// MockCheckout is a mock implementation of checkout.Service
type MockCheckout struct {
	mock.Mock
}

func (m *MockCheckout) Prepare(ctx context.Context, st *session.State, customer checkout.Customer) (*checkout.Checkout, error) {
	args := m.Called(ctx, st, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.Checkout), args.Error(1)
}

func (m *MockCheckout) Confirm(ctx context.Context, paymentKey, orderID string, amount int64) (*checkout.Result, error) {
	args := m.Called(ctx, paymentKey, orderID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.Result), args.Error(1)
}

func (m *MockCheckout) Fail(ctx context.Context, orderID, code, message string) error {
	return m.Called(ctx, orderID, code, message).Error(0)
}

// fakeVerification accepts one fixed code for whichever phone asked last.
type fakeVerification struct {
	code    string
	phone   string
	sendErr error
	sent    int
}

func (f *fakeVerification) SendCode(ctx context.Context, phone string) (*verification.Verification, error) {
	if !verification.ValidatePhone(phone) {
		return nil, verification.ErrInvalidPhone
	}
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent++
	f.phone = verification.NormalizePhone(phone)
	return &verification.Verification{Phone: f.phone, Code: f.code}, nil
}

func (f *fakeVerification) VerifyCode(ctx context.Context, phone, code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", verification.ErrCodeRequired
	}
	if code != f.code || phone != f.phone {
		return "", verification.ErrCodeInvalid
	}
	return phone, nil
}
