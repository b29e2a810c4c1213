package types

import (
	"testing"

	sdkerrors "cosmossdk.io/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorDefinitions(t *testing.T) {
	tests := []struct {
		name string
		err  *sdkerrors.Error
		code uint32
		msg  string
	}{
		{"ErrBaseUnitZero", ErrBaseUnitZero, 2, "baseUnit must be greater than zero"},
		{"ErrAnchorRequired", ErrAnchorRequired, 3, "reported prices must have an anchor"},
		{"ErrReporterRequired", ErrReporterRequired, 4, "reported price must have a reporter"},
		{"ErrAnchorNotAllowed", ErrAnchorNotAllowed, 5, "only reported prices utilize an anchor"},
		{"ErrReporterNotAllowed", ErrReporterNotAllowed, 6, "only reported prices utilize a reporter"},
		{"ErrTokenConfigNotFound", ErrTokenConfigNotFound, 10, "token config not found"},
		{"ErrUnauthorized", ErrUnauthorized, 11, "unauthorized"},
		{"ErrOverflow", ErrOverflow, 23, "arithmetic overflow"},
		{"ErrFailoverAlreadyActive", ErrFailoverAlreadyActive, 30, "failover already active"},
		{"ErrFailoverAlreadyInactive", ErrFailoverAlreadyInactive, 31, "failover already inactive"},
		{"ErrFailoverNotActive", ErrFailoverNotActive, 32, "failover is not active"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, ModuleName, tt.err.Codespace())
			require.Equal(t, tt.code, tt.err.ABCICode())
			require.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestIsConfigError(t *testing.T) {
	require.True(t, IsConfigError(ErrBaseUnitZero))
	require.True(t, IsConfigError(sdkerrors.Wrap(ErrReporterNotAllowed, "token config 3")))
	require.False(t, IsConfigError(ErrTokenConfigNotFound))
	require.False(t, IsConfigError(nil))
}
