package netlink_test

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_netlink "github.com/tulonga/eendjovo/internal/mocks/netlink"
	"github.com/tulonga/eendjovo/internal/netlink"
)

func TestActive(t *testing.T) {
	tests := []struct {
		name         string
		reachable    bool
		forceOffline bool
		want         bool
	}{
		{
			name:      "reachable and no override",
			reachable: true,
			want:      true,
		},
		{
			name:         "reachable but forced offline",
			reachable:    true,
			forceOffline: true,
			want:         false,
		},
		{
			name: "unreachable",
			want: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			checker := mock_netlink.NewMockChecker(ctrl)
			if !tc.forceOffline {
				checker.EXPECT().Reachable().Return(tc.reachable)
			}
			assert.Equal(t, tc.want, netlink.Active(checker, tc.forceOffline))
		})
	}
}

func TestDialChecker_Reachable(t *testing.T) {
	t.Run("listening address", func(t *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer listener.Close()

		checker := netlink.NewDialChecker(listener.Addr().String(), time.Second)
		assert.True(t, checker.Reachable())
	})

	t.Run("closed address", func(t *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		addr := listener.Addr().String()
		require.NoError(t, listener.Close())

		checker := netlink.NewDialChecker(addr, 200*time.Millisecond)
		assert.False(t, checker.Reachable())
	})
}
