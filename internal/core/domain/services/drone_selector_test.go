package services_test

import (
	"testing"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDrone(t *testing.T, serial string, batteryCurrent int, status drone.Status) *drone.Drone {
	t.Helper()

	battery, err := drone.NewBattery(batteryCurrent, 100)
	require.NoError(t, err)

	d, err := drone.RestoreDrone(
		kernel.NewUUID(), kernel.NewUUID(), "DJI Phantom 4", serial,
		drone.Capacity{WeightKg: 5, VolumeCm3: 8000},
		battery,
		drone.Specifications{MaxSpeedKmh: 72, MaxAltitudeM: 120, RangeKm: 30, FlightTimeMin: 28},
		status,
	)
	require.NoError(t, err)
	return d
}

func newTestOrder(t *testing.T, itemWeightKg float64) *order.Order {
	t.Helper()

	shop := order.ShopRef{
		ID: kernel.NewUUID(), Name: "Shop", City: "HCM", State: "HCM",
		Address: "1 Shop St", OwnerID: kernel.NewUUID(),
	}
	item, err := order.NewItem(
		kernel.NewUUID(), "Burger", "", "Fast Food", "Non-Veg",
		shop, 1, 50000, 50000, itemWeightKg,
	)
	require.NoError(t, err)

	location, err := kernel.NewGeoLocation(10.76, 106.66)
	require.NoError(t, err)
	address, err := order.NewDeliveryAddress("123 Main St", "HCM", "HCM", location)
	require.NoError(t, err)
	contact, err := order.NewContactInfo("Test User", "0123456789", "test@example.com")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item}, 50000, address, contact)
	require.NoError(t, err)
	return o
}

func TestDroneSelector_Rank_Eligibility(t *testing.T) {
	selector := services.NewDroneSelector(20)

	t.Run("highest_battery_ranks_first", func(t *testing.T) {
		drones := []*drone.Drone{
			newTestDrone(t, "SN-LOW", 40, drone.Available),
			newTestDrone(t, "SN-HIGH", 90, drone.Available),
			newTestDrone(t, "SN-MID", 60, drone.Available),
		}

		ranked, err := selector.Rank(newTestOrder(t, 0), drones)

		require.NoError(t, err)
		assert.Equal(t, "SN-HIGH", ranked[0].SerialNumber())
	})

	t.Run("serial_breaks_battery_ties", func(t *testing.T) {
		drones := []*drone.Drone{
			newTestDrone(t, "SN-B", 80, drone.Available),
			newTestDrone(t, "SN-A", 80, drone.Available),
		}

		ranked, err := selector.Rank(newTestOrder(t, 0), drones)

		require.NoError(t, err)
		assert.Equal(t, "SN-A", ranked[0].SerialNumber())
	})

	t.Run("non_available_drones_are_excluded", func(t *testing.T) {
		drones := []*drone.Drone{
			newTestDrone(t, "SN-BUSY", 100, drone.Busy),
			newTestDrone(t, "SN-MAINT", 100, drone.Maintenance),
			newTestDrone(t, "SN-FREE", 50, drone.Available),
		}

		ranked, err := selector.Rank(newTestOrder(t, 0), drones)

		require.NoError(t, err)
		require.Len(t, ranked, 1)
		assert.Equal(t, "SN-FREE", ranked[0].SerialNumber())
	})

	t.Run("drones_below_battery_floor_are_excluded", func(t *testing.T) {
		drones := []*drone.Drone{
			newTestDrone(t, "SN-DRAINED", 15, drone.Available),
			newTestDrone(t, "SN-CHARGED", 30, drone.Available),
		}

		ranked, err := selector.Rank(newTestOrder(t, 0), drones)

		require.NoError(t, err)
		require.Len(t, ranked, 1)
		assert.Equal(t, "SN-CHARGED", ranked[0].SerialNumber())
	})

	t.Run("insufficient_capacity_is_excluded", func(t *testing.T) {
		// Test drones carry up to 5 kg.
		heavy := newTestOrder(t, 8)

		_, err := selector.Rank(heavy, []*drone.Drone{
			newTestDrone(t, "SN-SMALL", 100, drone.Available),
		})

		require.ErrorIs(t, err, services.ErrNoEligibleDrone)
	})

	t.Run("untracked_weight_matches_any_drone", func(t *testing.T) {
		weightless := newTestOrder(t, 0)

		ranked, err := selector.Rank(weightless, []*drone.Drone{
			newTestDrone(t, "SN-ANY", 100, drone.Available),
		})

		require.NoError(t, err)
		require.Len(t, ranked, 1)
		assert.Equal(t, "SN-ANY", ranked[0].SerialNumber())
	})

	t.Run("no_drones_at_all", func(t *testing.T) {
		_, err := selector.Rank(newTestOrder(t, 0), nil)
		require.ErrorIs(t, err, services.ErrNoEligibleDrone)
	})
}

func TestDroneSelector_Rank_Ordering(t *testing.T) {
	selector := services.NewDroneSelector(0)

	t.Run("returns_candidates_in_preference_order", func(t *testing.T) {
		drones := []*drone.Drone{
			newTestDrone(t, "SN-1", 30, drone.Available),
			newTestDrone(t, "SN-2", 90, drone.Available),
			newTestDrone(t, "SN-3", 60, drone.Available),
		}

		ranked, err := selector.Rank(newTestOrder(t, 0), drones)

		require.NoError(t, err)
		require.Len(t, ranked, 3)
		assert.Equal(t, "SN-2", ranked[0].SerialNumber())
		assert.Equal(t, "SN-3", ranked[1].SerialNumber())
		assert.Equal(t, "SN-1", ranked[2].SerialNumber())
	})

	t.Run("invalid_order_is_rejected", func(t *testing.T) {
		var o order.Order

		_, err := selector.Rank(&o, []*drone.Drone{newTestDrone(t, "SN-1", 50, drone.Available)})

		require.Error(t, err)
	})
}
