package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarService_GetCar(t *testing.T) {
	svc := NewCarService()

	car, err := svc.GetCar("car-model-x")
	require.NoError(t, err)
	assert.Equal(t, "Model X", car.Model)

	_, err = svc.GetCar("missing")
	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestCarService_ChargingTransitions(t *testing.T) {
	svc := NewCarService()

	// Seeded as charging: starting again conflicts, stopping works.
	_, err := svc.StartCharging("car-model-x")
	assert.ErrorIs(t, err, ErrChargeState)

	car, err := svc.StopCharging("car-model-x")
	require.NoError(t, err)
	assert.False(t, car.IsCharging)

	car, err = svc.StartCharging("car-model-x")
	require.NoError(t, err)
	assert.True(t, car.IsCharging)
}

func TestCarService_UpdateControls(t *testing.T) {
	svc := NewCarService()

	climate := true
	height := 0.8
	car, err := svc.UpdateControls("car-taycan", ControlsUpdate{Climate: &climate, HeightSetting: &height})
	require.NoError(t, err)
	assert.True(t, car.Controls.Climate)
	assert.Equal(t, 0.8, car.Controls.HeightSetting)
	assert.False(t, car.Controls.Camera, "untouched toggles keep their state")
}

func TestCarService_SetTemperature(t *testing.T) {
	svc := NewCarService()

	car, err := svc.SetTemperature("car-taycan", 22.5)
	require.NoError(t, err)
	assert.Equal(t, 22.5, car.InteriorTemp)

	_, err = svc.SetTemperature("missing", 22.5)
	assert.ErrorIs(t, err, ErrCarNotFound)
}
