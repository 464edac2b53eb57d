package fleetsdk_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fleetops/fleetcmd/pkg/fleetsdk"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	fleetsdk.ErrNotFound.WithDetail("command not found").WriteError(rec)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "command not found", body["detail"])
}

func TestAPIErrorIs(t *testing.T) {
	err := fleetsdk.ErrConflict.WithDetail("email already registered")

	require.ErrorIs(t, err, fleetsdk.ErrConflict)
	require.NotErrorIs(t, err, fleetsdk.ErrNotFound)
}

func TestWithDetailLeavesOriginalUntouched(t *testing.T) {
	original := fleetsdk.ErrInvalidData.Detail
	_ = fleetsdk.ErrInvalidData.WithDetail("something specific")
	require.Equal(t, original, fleetsdk.ErrInvalidData.Detail)
}

func TestClientDecodesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fleetsdk.ErrNotFound.WithDetail("device not found").WriteError(w)
	}))
	defer srv.Close()

	client := fleetsdk.NewSDKClient(srv.URL)
	_, err := client.GetMostRecentPendingCommand(context.Background(), "missing")

	require.Error(t, err)
	require.ErrorIs(t, err, fleetsdk.ErrNotFound)

	var apiErr *fleetsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, "device not found", apiErr.Detail)
}

func TestClientFallsBackOnNonJSONErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := fleetsdk.NewSDKClient(srv.URL)
	_, err := client.GetLiveness(context.Background())

	var apiErr *fleetsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}
