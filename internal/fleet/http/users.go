package http

import (
	"encoding/json"
	"net/http"

	"github.com/fleetops/fleetcmd/internal/fleet/domain"
	"github.com/fleetops/fleetcmd/internal/fleet/service"
	"github.com/fleetops/fleetcmd/pkg/fleetsdk"
	"github.com/fleetops/fleetcmd/pkg/httpx"
	"github.com/fleetops/fleetcmd/pkg/slogx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleRegister creates a new user account.
//
//	@Summary		Register a new user
//	@Description	Creates a user account and returns a bearer token plus the one-time
//	@Description	user secret token needed to register devices. The secret is never
//	@Description	shown again; only its fingerprint is stored.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		fleetsdk.RegisterUserRequest	true	"Registration details"
//	@Success		201		{object}	fleetsdk.RegisterUserResponse	"user_id, jwt, user_secret"
//	@Failure		409		{object}	fleetsdk.APIError				"Email already registered"
//	@Failure		422		{object}	fleetsdk.APIError				"Invalid registration data"
//	@Failure		500		{object}	fleetsdk.APIError				"Internal server error"
//	@Router			/users/register [post].
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req fleetsdk.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fleetsdk.ErrInvalidRequest.WithDetail("request body must be valid JSON").WriteError(w)
		return
	}

	res, err := h.UserService.Register(ctx, service.RegisterUserParams{
		Name:           req.Name,
		Email:          req.Email,
		RawPassword:    req.RawPassword,
		SubscriptionID: req.SubscriptionID,
		TenantID:       req.TenantID,
		RoleID:         req.RoleID,
		UserType:       req.UserType,
		Metadata:       req.Metadata,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, fleetsdk.RegisterUserResponse{
		UserID:     res.UserID,
		JWT:        res.AccessToken,
		UserSecret: res.UserSecretToken,
	})
}

// HandleLogin exchanges credentials for a bearer token.
//
//	@Summary		Log in
//	@Description	Authenticates with a user ID or email plus password and returns a fresh bearer token.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		fleetsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	fleetsdk.LoginResponse	"jwt"
//	@Failure		404		{object}	fleetsdk.APIError		"Unknown identifier"
//	@Failure		422		{object}	fleetsdk.APIError		"Wrong password"
//	@Failure		500		{object}	fleetsdk.APIError		"Internal server error"
//	@Router			/users/login [post].
func (h *UsersHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req fleetsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fleetsdk.ErrInvalidRequest.WithDetail("request body must be valid JSON").WriteError(w)
		return
	}

	token, err := h.UserService.Login(ctx, req.Identifier, req.Password)
	if err != nil {
		slogx.FromContext(ctx).Info("login failed", "err", err)
		writeServiceError(w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, fleetsdk.LoginResponse{JWT: token})
}

// HandleGet returns a redacted user.
//
//	@Summary		Get a user
//	@Description	Returns the user with the given ID. Password and secret hashes are never included.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			user_id	query		string						true	"User ID"
//	@Success		200		{object}	fleetsdk.GetUserResponse	"user"
//	@Failure		401		{object}	fleetsdk.APIError			"Invalid or missing bearer token"
//	@Failure		404		{object}	fleetsdk.APIError			"User not found"
//	@Failure		500		{object}	fleetsdk.APIError			"Internal server error"
//	@Router			/users/get [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		fleetsdk.ErrInvalidRequest.WithDetail("user_id query parameter is required").WriteError(w)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, fleetsdk.GetUserResponse{User: mapUser(user)})
}

// mapUser redacts a domain user for the wire: hashes stay inside.
func mapUser(u domain.User) fleetsdk.User {
	return fleetsdk.User{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		DeviceIDs:      u.DeviceIDs,
		SubscriptionID: u.SubscriptionID,
		TenantID:       u.TenantID,
		RoleID:         u.RoleID,
		UserType:       string(u.UserType),
		Metadata:       u.Metadata,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
