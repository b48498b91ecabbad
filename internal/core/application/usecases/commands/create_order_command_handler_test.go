package commands_test

import (
	"context"
	"testing"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Shared order fixtures for command tests.

func testOrderItem(t testing.TB, quantity int, price int64, subtotal int64) order.Item {
	t.Helper()

	item, err := order.NewItem(
		kernel.NewUUID(), "Pho Bo", "pho.jpg", "Noodles", "Non-Veg",
		order.ShopRef{
			ID:      kernel.NewUUID(),
			Name:    "Pho Corner",
			City:    "Ho Chi Minh",
			State:   "HCM",
			Address: "12 Le Loi",
			OwnerID: kernel.NewUUID(),
		},
		quantity, price, subtotal, 0.5,
	)
	require.NoError(t, err)
	return item
}

func testDeliveryAddress(t testing.TB) order.DeliveryAddress {
	t.Helper()

	location, err := kernel.NewGeoLocation(10.762622, 106.660172)
	require.NoError(t, err)

	address, err := order.NewDeliveryAddress("123 Main St", "Ho Chi Minh", "HCM", location)
	require.NoError(t, err)
	return address
}

func testContactInfo(t testing.TB) order.ContactInfo {
	t.Helper()

	contact, err := order.NewContactInfo("Test User", "0123456789", "test@example.com")
	require.NoError(t, err)
	return contact
}

func testOrder(t testing.TB) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{testOrderItem(t, 2, 50000, 100000)},
		100000, testDeliveryAddress(t), testContactInfo(t),
	)
	require.NoError(t, err)
	return o
}

// Mock implementations for testing.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateIfStatus(
	ctx context.Context, aggregate *order.Order, expected order.Status,
) error {
	args := m.Called(ctx, aggregate, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByUser(
	ctx context.Context, userID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByStatus(
	ctx context.Context, status order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct {
	mock.Mock
}

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct {
	mock.Mock
}

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	userID := kernel.NewUUID()
	items := []order.Item{
		testOrderItem(t, 2, 50000, 100000),
		testOrderItem(t, 1, 25000, 25000),
	}

	cmd, err := commands.NewCreateOrderCommand(
		userID, items, 125000, testDeliveryAddress(t), testContactInfo(t),
	)
	require.NoError(t, err)

	var capturedOrder *order.Order
	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	// Set up expectations in order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			capturedOrder = o
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, capturedOrder)
	assert.Equal(t, cmd.OrderID(), capturedOrder.ID())
	assert.Equal(t, userID, capturedOrder.UserID())
	assert.Equal(t, int64(125000), capturedOrder.TotalAmount())
	assert.Equal(t, order.Pending, capturedOrder.Status())
	assert.Nil(t, capturedOrder.Drone())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_TotalMismatch(t *testing.T) {
	// Arrange
	ctx := t.Context()
	items := []order.Item{testOrderItem(t, 2, 50000, 100000)}

	// command construction succeeds, the aggregate rejects the total
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), items, 90000, testDeliveryAddress(t), testContactInfo(t),
	)
	require.NoError(t, err)

	mockRepo := new(MockOrderRepository)
	mockUoW := new(MockOrderUoW)
	mockFactory := new(MockOrderUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockRepo).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateOrderCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "Add")
}

func TestCreateOrderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.CreateOrderCommand // zero value command

	mockFactory := new(MockOrderUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}
