package domain_test

import (
	"testing"

	"github.com/fleetops/fleetcmd/internal/fleet/domain"
	"github.com/stretchr/testify/require"
)

func TestParseCommandStatus(t *testing.T) {
	t.Run("accepts every documented status", func(t *testing.T) {
		for _, s := range []string{
			"PENDING", "READY", "RUNNING", "SENT",
			"BLOCKED", "RECEIVED", "TERMINATED", "FAILED",
		} {
			status, err := domain.ParseCommandStatus(s)
			require.NoError(t, err)
			require.Equal(t, domain.CommandStatus(s), status)
		}
	})

	t.Run("rejects undocumented values", func(t *testing.T) {
		for _, s := range []string{"", "pending", "DONE", "Pending ", "CANCELLED"} {
			_, err := domain.ParseCommandStatus(s)
			require.Error(t, err, "value %q should be rejected", s)
		}
	})
}

func TestCommandStatusTerminal(t *testing.T) {
	require.True(t, domain.StatusTerminated.Terminal())
	require.True(t, domain.StatusFailed.Terminal())

	for _, s := range []domain.CommandStatus{
		domain.StatusPending, domain.StatusReady, domain.StatusRunning,
		domain.StatusSent, domain.StatusBlocked, domain.StatusReceived,
	} {
		require.False(t, s.Terminal(), "status %s should not be terminal", s)
	}
}

func TestParseCommandName(t *testing.T) {
	name, err := domain.ParseCommandName("UPDATE")
	require.NoError(t, err)
	require.Equal(t, domain.CommandUpdate, name)

	_, err = domain.ParseCommandName("FORMAT_DISK")
	require.Error(t, err)
}

func TestParseUserType(t *testing.T) {
	ut, err := domain.ParseUserType("ADMIN")
	require.NoError(t, err)
	require.Equal(t, domain.UserTypeAdmin, ut)

	_, err = domain.ParseUserType("superuser")
	require.Error(t, err)
}
