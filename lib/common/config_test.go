/*
	In this file, there are unittests for checking Config struct.
*/
package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

//	TestConfigDefault tests the default values.
func TestConfigDefault(t *testing.T) {
	n := NewConfig()
	require.Equal(t, InitialPollID, n.InitialPollID)
	require.Equal(t, MinPollOptions, n.MinPollOptions)
	require.IsType(t, LocalClock{}, n.Clock)
}

//	TestConfigSetAndGet tests setting fields and checking.
func TestConfigSetAndGet(t *testing.T) {
	n := NewConfig()
	n.InitialPollID = 100
	n.MinPollOptions = 3

	require.Equal(t, uint64(100), n.InitialPollID)
	require.Equal(t, 3, n.MinPollOptions)
}
