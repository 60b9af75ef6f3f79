package api

import (
	"testing"

	"github.com/stretchr/testify/require"

	mb "github.com/saeidalz13/battleship-hotseat/models/battleship"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line         string
		expectedCmd  Command
		expectedArgs []string
	}{
		{line: "attack", expectedCmd: CommandAttack, expectedArgs: []string{}},
		{line: "  ATTACK 3 4 ", expectedCmd: CommandAttack, expectedArgs: []string{"3", "4"}},
		{line: "personal_board", expectedCmd: CommandPersonalBoard, expectedArgs: []string{}},
		{line: "opponent_board", expectedCmd: CommandOpponentBoard, expectedArgs: []string{}},
		{line: "quit", expectedCmd: CommandQuit, expectedArgs: []string{}},
		{line: "fire 3 4", expectedCmd: CommandInvalid, expectedArgs: []string{"fire", "3", "4"}},
		{line: "   ", expectedCmd: CommandInvalid},
	}

	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			cmd, args := parseCommand(test.line)
			require.Equal(t, test.expectedCmd, cmd)
			require.Equal(t, test.expectedArgs, args)
		})
	}
}

func TestParseCoordinates(t *testing.T) {
	coords, err := parseCoordinates([]string{"9", "9", "9", "5"}, 2)
	require.NoError(t, err)
	require.Equal(t, []mb.Coordinates{mb.NewCoordinates(9, 9), mb.NewCoordinates(9, 5)}, coords)

	// range is the board's business, not the parser's
	coords, err = parseCoordinates([]string{"-1", "12"}, 1)
	require.NoError(t, err)
	require.Equal(t, mb.NewCoordinates(-1, 12), coords[0])

	_, err = parseCoordinates([]string{"1"}, 1)
	require.Error(t, err)
	_, err = parseCoordinates([]string{"a", "1"}, 1)
	require.Error(t, err)
	_, err = parseCoordinates([]string{"1", "b"}, 1)
	require.Error(t, err)
}

func TestHostIpNet(t *testing.T) {
	ipNet := HostIpNet()
	require.NotNil(t, ipNet.IP.To4())
	ones, bits := ipNet.Mask.Size()
	require.Equal(t, 32, ones)
	require.Equal(t, 32, bits)
}
