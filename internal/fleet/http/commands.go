package http

import (
	"encoding/json"
	"net/http"

	"github.com/fleetops/fleetcmd/internal/fleet/domain"
	"github.com/fleetops/fleetcmd/internal/fleet/service"
	"github.com/fleetops/fleetcmd/pkg/fleetsdk"
	"github.com/fleetops/fleetcmd/pkg/httpx"
)

type CommandsHandler struct {
	CommandService *service.CommandService
}

// HandleCreate issues a command against a device.
//
//	@Summary		Create a command
//	@Description	Issues an asynchronous command against a device. Commands start PENDING
//	@Description	and are picked up by the device via the polling endpoint.
//	@Tags			Commands
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		fleetsdk.CreateCommandRequest	true	"Command details"
//	@Success		201		{object}	fleetsdk.CreateCommandResponse	"command_id"
//	@Failure		404		{object}	fleetsdk.APIError				"Device not found"
//	@Failure		422		{object}	fleetsdk.APIError				"Unknown command name"
//	@Failure		500		{object}	fleetsdk.APIError				"Internal server error"
//	@Router			/commands/create [post].
func (h *CommandsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req fleetsdk.CreateCommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fleetsdk.ErrInvalidRequest.WithDetail("request body must be valid JSON").WriteError(w)
		return
	}

	commandID, err := h.CommandService.Create(ctx, req.DeviceID, service.CreateCommandParams{
		Name:     req.Name,
		Args:     req.Args,
		IssuerID: req.IssuerID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, fleetsdk.CreateCommandResponse{CommandID: commandID})
}

// HandleBatchCreate issues one command per device, all-or-nothing.
//
//	@Summary		Create commands for many devices
//	@Description	Issues the same command against every listed device in one transaction.
//	@Description	If any device is missing, nothing is created.
//	@Tags			Commands
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		fleetsdk.BatchCreateCommandsRequest		true	"Batch details"
//	@Success		201		{object}	fleetsdk.BatchCreateCommandsResponse	"command_ids"
//	@Failure		404		{object}	fleetsdk.APIError						"A device was not found"
//	@Failure		422		{object}	fleetsdk.APIError						"Unknown command name or empty batch"
//	@Failure		500		{object}	fleetsdk.APIError						"Internal server error"
//	@Router			/commands/batch/create [post].
func (h *CommandsHandler) HandleBatchCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req fleetsdk.BatchCreateCommandsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fleetsdk.ErrInvalidRequest.WithDetail("request body must be valid JSON").WriteError(w)
		return
	}

	commandIDs, err := h.CommandService.CreateBatch(ctx, req.DeviceIDs, service.CreateCommandParams{
		Name:     req.Name,
		Args:     req.Args,
		IssuerID: req.IssuerID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, fleetsdk.BatchCreateCommandsResponse{CommandIDs: commandIDs})
}

// HandleGet returns a single command.
//
//	@Summary		Get a command
//	@Tags			Commands
//	@Security		BearerAuth
//	@Produce		json
//	@Param			command_id	query		string						true	"Command ID"
//	@Success		200			{object}	fleetsdk.GetCommandResponse	"command"
//	@Failure		404			{object}	fleetsdk.APIError			"Command not found"
//	@Failure		500			{object}	fleetsdk.APIError			"Internal server error"
//	@Router			/commands/get [get].
func (h *CommandsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	commandID := r.URL.Query().Get("command_id")
	if commandID == "" {
		fleetsdk.ErrInvalidRequest.WithDetail("command_id query parameter is required").WriteError(w)
		return
	}

	cmd, err := h.CommandService.GetByID(ctx, commandID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, fleetsdk.GetCommandResponse{Command: mapCommand(cmd)})
}

// HandleBatchGet returns the commands matching the given IDs.
//
//	@Summary		Get many commands
//	@Description	Returns all commands whose IDs appear in the request. Unknown IDs are
//	@Description	skipped; zero matches is a 404.
//	@Tags			Commands
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		fleetsdk.BatchGetCommandsRequest	true	"Command IDs"
//	@Success		200		{object}	fleetsdk.BatchGetCommandsResponse	"commands"
//	@Failure		404		{object}	fleetsdk.APIError					"No commands matched"
//	@Failure		500		{object}	fleetsdk.APIError					"Internal server error"
//	@Router			/commands/batch/get [post].
func (h *CommandsHandler) HandleBatchGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req fleetsdk.BatchGetCommandsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fleetsdk.ErrInvalidRequest.WithDetail("request body must be valid JSON").WriteError(w)
		return
	}

	commands, err := h.CommandService.GetBatch(ctx, req.CommandIDs)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]fleetsdk.Command, len(commands))
	for i, c := range commands {
		out[i] = mapCommand(c)
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, fleetsdk.BatchGetCommandsResponse{Commands: out})
}

// HandleRecent is the device polling endpoint.
//
//	@Summary		Get the newest pending command for a device
//	@Description	Devices poll this endpoint for work. Returns the most recently created
//	@Description	PENDING command, or 404 when the queue is drained. No bearer token.
//	@Tags			Commands
//	@Produce		json
//	@Param			device_id	query		string						true	"Device ID"
//	@Success		200			{object}	fleetsdk.GetCommandResponse	"command"
//	@Failure		404			{object}	fleetsdk.APIError			"Device unknown or nothing pending"
//	@Failure		500			{object}	fleetsdk.APIError			"Internal server error"
//	@Router			/commands/recent [get].
func (h *CommandsHandler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deviceID := r.URL.Query().Get("device_id")
	if deviceID == "" {
		fleetsdk.ErrInvalidRequest.WithDetail("device_id query parameter is required").WriteError(w)
		return
	}

	cmd, err := h.CommandService.GetMostRecentPending(ctx, deviceID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, fleetsdk.GetCommandResponse{Command: mapCommand(cmd)})
}

// HandleUpdateStatus sets a command's status.
//
//	@Summary		Update a command's status
//	@Description	Sets the command to any documented status value. Setting the status it
//	@Description	already has is treated as a failed write.
//	@Tags			Commands
//	@Security		BearerAuth
//	@Accept			json
//	@Param			request	body	fleetsdk.UpdateCommandStatusRequest	true	"Status update"
//	@Success		204	"No content"
//	@Failure		404	{object}	fleetsdk.APIError	"Command not found"
//	@Failure		422	{object}	fleetsdk.APIError	"Undocumented status value"
//	@Failure		500	{object}	fleetsdk.APIError	"Write acknowledged with zero effect"
//	@Router			/commands/update/status [patch].
func (h *CommandsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req fleetsdk.UpdateCommandStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fleetsdk.ErrInvalidRequest.WithDetail("request body must be valid JSON").WriteError(w)
		return
	}

	if err := h.CommandService.UpdateStatus(ctx, req.CommandID, req.Status); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func mapCommand(c domain.Command) fleetsdk.Command {
	return fleetsdk.Command{
		ID:        c.ID,
		DeviceID:  c.DeviceID,
		IssuerID:  c.IssuerID,
		Name:      string(c.Name),
		Args:      c.Args,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
