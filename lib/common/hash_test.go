package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type hashablePoll struct {
	Title   string
	Options []string
}

func TestMakeObjectHashDeterministic(t *testing.T) {
	a := hashablePoll{Title: "findme", Options: []string{"yes", "no"}}
	b := hashablePoll{Title: "findme", Options: []string{"yes", "no"}}

	ha, err := MakeObjectHash(a)
	require.Nil(t, err)
	hb, err := MakeObjectHash(b)
	require.Nil(t, err)
	require.Equal(t, ha, hb)
}

func TestMakeObjectHashDistinct(t *testing.T) {
	a := hashablePoll{Title: "findme", Options: []string{"yes", "no"}}
	b := hashablePoll{Title: "findme", Options: []string{"no", "yes"}}

	ha, err := MakeObjectHash(a)
	require.Nil(t, err)
	hb, err := MakeObjectHash(b)
	require.Nil(t, err)
	require.NotEqual(t, ha, hb)
}

func TestMakeObjectHashString(t *testing.T) {
	s, err := MakeObjectHashString(hashablePoll{Title: "findme"})
	require.Nil(t, err)
	require.True(t, len(s) > 0)
}
