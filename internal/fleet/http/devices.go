package http

import (
	"encoding/json"
	"net/http"

	"github.com/fleetops/fleetcmd/internal/fleet/domain"
	"github.com/fleetops/fleetcmd/internal/fleet/service"
	"github.com/fleetops/fleetcmd/pkg/fleetsdk"
	"github.com/fleetops/fleetcmd/pkg/httpx"
)

type DevicesHandler struct {
	DeviceService *service.DeviceService
}

// HandleRegister registers a device under a user.
//
//	@Summary		Register a device
//	@Description	Creates a device owned by user_id. The user_secret field must carry the
//	@Description	device-secret token issued at registration; the bearer token alone does
//	@Description	not authorize device creation.
//	@Tags			Devices
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		fleetsdk.RegisterDeviceRequest	true	"Device details"
//	@Success		201		{object}	fleetsdk.RegisterDeviceResponse	"device_id"
//	@Failure		401		{object}	fleetsdk.APIError				"Invalid user secret"
//	@Failure		404		{object}	fleetsdk.APIError				"Owning user not found"
//	@Failure		422		{object}	fleetsdk.APIError				"Invalid device data"
//	@Failure		500		{object}	fleetsdk.APIError				"Internal server error"
//	@Router			/devices/register [post].
func (h *DevicesHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req fleetsdk.RegisterDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fleetsdk.ErrInvalidRequest.WithDetail("request body must be valid JSON").WriteError(w)
		return
	}

	deviceID, err := h.DeviceService.RegisterDevice(ctx, req.DeviceName, req.UserID, req.IssuerID, req.UserSecret)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, fleetsdk.RegisterDeviceResponse{DeviceID: deviceID})
}

// HandleGet returns a single device.
//
//	@Summary		Get a device
//	@Description	Returns the device with the given ID, command IDs included.
//	@Tags			Devices
//	@Security		BearerAuth
//	@Produce		json
//	@Param			device_id	query		string						true	"Device ID"
//	@Success		200			{object}	fleetsdk.GetDeviceResponse	"device"
//	@Failure		404			{object}	fleetsdk.APIError			"Device not found"
//	@Failure		500			{object}	fleetsdk.APIError			"Internal server error"
//	@Router			/devices/get [get].
func (h *DevicesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deviceID := r.URL.Query().Get("device_id")
	if deviceID == "" {
		fleetsdk.ErrInvalidRequest.WithDetail("device_id query parameter is required").WriteError(w)
		return
	}

	device, err := h.DeviceService.GetDeviceByID(ctx, deviceID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, fleetsdk.GetDeviceResponse{Device: mapDevice(device)})
}

// HandleGetAll returns every device owned by a user.
//
//	@Summary		List a user's devices
//	@Description	Returns all devices owned by user_id in registration order. A user
//	@Description	with no devices is a 404, not an empty list.
//	@Tags			Devices
//	@Security		BearerAuth
//	@Produce		json
//	@Param			user_id	query		string						true	"User ID"
//	@Success		200		{object}	fleetsdk.GetDevicesResponse	"devices"
//	@Failure		404		{object}	fleetsdk.APIError			"No devices for user"
//	@Failure		500		{object}	fleetsdk.APIError			"Internal server error"
//	@Router			/devices/get/all [get].
func (h *DevicesHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		fleetsdk.ErrInvalidRequest.WithDetail("user_id query parameter is required").WriteError(w)
		return
	}

	devices, err := h.DeviceService.GetDevicesByUser(ctx, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]fleetsdk.Device, len(devices))
	for i, d := range devices {
		out[i] = mapDevice(d)
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, fleetsdk.GetDevicesResponse{Devices: out})
}

func mapDevice(d domain.Device) fleetsdk.Device {
	return fleetsdk.Device{
		ID:         d.ID,
		Name:       d.Name,
		UserID:     d.UserID,
		CommandIDs: d.CommandIDs,
		Metadata:   d.Metadata,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
