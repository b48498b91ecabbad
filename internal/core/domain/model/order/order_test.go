package order_test

import (
	"testing"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShop(t *testing.T) order.ShopRef {
	t.Helper()
	return order.ShopRef{
		ID:      kernel.NewUUID(),
		Name:    "Test Shop",
		City:    "Ho Chi Minh",
		State:   "HCM",
		Address: "123 Shop Street",
		OwnerID: kernel.NewUUID(),
	}
}

func testItem(t *testing.T, quantity int, price int64, subtotal int64) order.Item {
	t.Helper()

	item, err := order.NewItem(
		kernel.NewUUID(), "Burger", "burger.jpg", "Fast Food", "Non-Veg",
		testShop(t), quantity, price, subtotal, 0.5,
	)
	require.NoError(t, err)
	return item
}

func testAddress(t *testing.T) order.DeliveryAddress {
	t.Helper()

	location, err := kernel.NewGeoLocation(10.762622, 106.660172)
	require.NoError(t, err)

	address, err := order.NewDeliveryAddress("123 Main St", "Ho Chi Minh", "HCM", location)
	require.NoError(t, err)
	return address
}

func testContact(t *testing.T) order.ContactInfo {
	t.Helper()

	contact, err := order.NewContactInfo("Test User", "0123456789", "test@example.com")
	require.NoError(t, err)
	return contact
}

func createTestOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{testItem(t, 2, 50000, 100000)},
		100000, testAddress(t), testContact(t),
	)
	require.NoError(t, err)
	return o
}

func TestNewItem(t *testing.T) {
	t.Run("valid_item", func(t *testing.T) {
		item := testItem(t, 3, 25000, 75000)

		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, int64(25000), item.Price())
		assert.Equal(t, int64(75000), item.Subtotal())
	})

	t.Run("subtotal_mismatch_is_rejected", func(t *testing.T) {
		_, err := order.NewItem(
			kernel.NewUUID(), "Pizza", "pizza.jpg", "Italian", "Veg",
			testShop(t), 3, 25000, 70000, 0,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid_fields", func(t *testing.T) {
		testCases := []struct {
			name     string
			itemName string
			quantity int
			price    int64
		}{
			{"empty_name", "", 1, 1000},
			{"zero_quantity", "Salad", 0, 1000},
			{"negative_quantity", "Salad", -1, 1000},
			{"negative_price", "Salad", 1, -1000},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewItem(
					kernel.NewUUID(), tc.itemName, "", "", "",
					testShop(t), tc.quantity, tc.price, int64(tc.quantity)*tc.price, 0,
				)
				require.Error(t, err)
			})
		}
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_order_with_valid_data", func(t *testing.T) {
		o := createTestOrder(t)

		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, int64(100000), o.TotalAmount())
		assert.Len(t, o.Items(), 1)
		assert.Nil(t, o.Drone())
		require.NoError(t, o.Validate())
	})

	t.Run("total_must_equal_sum_of_subtotals", func(t *testing.T) {
		items := []order.Item{
			testItem(t, 2, 50000, 100000),
			testItem(t, 1, 25000, 25000),
		}

		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), items, 125000,
			testAddress(t), testContact(t),
		)

		require.NoError(t, err)
		assert.Equal(t, int64(125000), o.TotalAmount())
	})

	t.Run("total_mismatch_is_rejected", func(t *testing.T) {
		items := []order.Item{
			testItem(t, 2, 50000, 100000),
			testItem(t, 1, 25000, 25000),
		}

		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), items, 100000,
			testAddress(t), testContact(t),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("fails_without_items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil, 0,
			testAddress(t), testContact(t),
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails_without_address_or_contact", func(t *testing.T) {
		items := []order.Item{testItem(t, 1, 1000, 1000)}

		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), items, 1000,
			order.DeliveryAddress{}, testContact(t),
		)
		require.Error(t, err)

		_, err = order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), items, 1000,
			testAddress(t), order.ContactInfo{},
		)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("forward_progression", func(t *testing.T) {
		o := createTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Confirmed))
		require.NoError(t, o.ChangeStatus(order.Preparing))

		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("step_skipping_is_rejected", func(t *testing.T) {
		o := createTestOrder(t)

		err := o.ChangeStatus(order.Preparing)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("dispatch_managed_edges_are_rejected", func(t *testing.T) {
		o := createTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed))
		require.NoError(t, o.ChangeStatus(order.Preparing))

		for _, target := range []order.Status{order.OutForDelivery, order.Delivered, order.Cancelled} {
			require.ErrorIs(t, o.ChangeStatus(target), errs.ErrInvalidTransition)
		}
	})
}

func TestOrder_AssignDrone(t *testing.T) {
	t.Run("binds_drone_while_out_for_delivery", func(t *testing.T) {
		o := createTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed))
		require.NoError(t, o.ChangeStatus(order.Preparing))

		droneID := kernel.NewUUID()
		require.NoError(t, o.AssignDrone(droneID))

		assert.Equal(t, order.OutForDelivery, o.Status())
		require.NotNil(t, o.Drone())
		assert.True(t, o.Drone().IsEqual(droneID))
	})

	t.Run("rejected_before_preparing", func(t *testing.T) {
		o := createTestOrder(t)

		err := o.AssignDrone(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, o.Drone())
	})

	t.Run("invalid_drone_id_is_rejected", func(t *testing.T) {
		o := createTestOrder(t)

		err := o.AssignDrone(kernel.UUID{})

		require.Error(t, err)
	})
}

func TestOrder_CompleteDelivery(t *testing.T) {
	t.Run("clears_drone_binding", func(t *testing.T) {
		o := createTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed))
		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, o.AssignDrone(kernel.NewUUID()))

		require.NoError(t, o.CompleteDelivery())

		assert.Equal(t, order.Delivered, o.Status())
		assert.Nil(t, o.Drone())
	})

	t.Run("rejected_outside_out_for_delivery", func(t *testing.T) {
		o := createTestOrder(t)

		err := o.CompleteDelivery()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancellable_from_any_non_terminal_state", func(t *testing.T) {
		o := createTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed))

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("releases_drone_binding", func(t *testing.T) {
		o := createTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed))
		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, o.AssignDrone(kernel.NewUUID()))

		require.NoError(t, o.Cancel())

		assert.Nil(t, o.Drone())
	})

	t.Run("idempotent_on_cancelled_order", func(t *testing.T) {
		o := createTestOrder(t)
		require.NoError(t, o.Cancel())

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("rejected_on_delivered_order", func(t *testing.T) {
		o := createTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed))
		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, o.AssignDrone(kernel.NewUUID()))
		require.NoError(t, o.CompleteDelivery())

		err := o.Cancel()

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("no_regression", func(t *testing.T) {
		_, err := order.Delivered.TransitionTo(order.Confirmed)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)

		_, err = order.Preparing.TransitionTo(order.Pending)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("terminal_states_are_immutable", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Delivered, order.Cancelled} {
			for _, target := range order.AllStatuses() {
				_, err := terminal.TransitionTo(target)
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
			}
		}
	})

	t.Run("string_round_trip", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			parsed, err := order.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})
}

func TestRestoreOrder(t *testing.T) {
	items := func(t *testing.T) []order.Item { return []order.Item{testItem(t, 1, 30000, 30000)} }

	t.Run("restores_status_and_drone", func(t *testing.T) {
		droneID := kernel.NewUUID()

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), items(t), 30000,
			testAddress(t), testContact(t), order.OutForDelivery, &droneID,
		)

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, o.Status())
		require.NotNil(t, o.Drone())
	})

	t.Run("drone_outside_out_for_delivery_is_rejected", func(t *testing.T) {
		droneID := kernel.NewUUID()

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), items(t), 30000,
			testAddress(t), testContact(t), order.Pending, &droneID,
		)

		require.Error(t, err)
	})

	t.Run("out_for_delivery_without_drone_is_rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), items(t), 30000,
			testAddress(t), testContact(t), order.OutForDelivery, nil,
		)

		require.Error(t, err)
	})
}

func TestOrder_TotalWeightKg(t *testing.T) {
	items := []order.Item{
		testItem(t, 2, 50000, 100000), // 0.5 kg each
		testItem(t, 1, 25000, 25000),
	}

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), items, 125000,
		testAddress(t), testContact(t),
	)
	require.NoError(t, err)

	assert.InDelta(t, 1.5, o.TotalWeightKg(), 1e-9)
}
