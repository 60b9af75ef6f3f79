package api

import "strings"

type Command uint8

const (
	CommandAttack Command = iota
	CommandPersonalBoard
	CommandOpponentBoard
	CommandQuit

	// anything the prompt does not recognise
	CommandInvalid
)

const (
	keywordAttack        = "attack"
	keywordPersonalBoard = "personal_board"
	keywordOpponentBoard = "opponent_board"
	keywordQuit          = "quit"
	keywordAuto          = "auto"
	keywordYes           = "yes"
)

var commandKeywords = map[string]Command{
	keywordAttack:        CommandAttack,
	keywordPersonalBoard: CommandPersonalBoard,
	keywordOpponentBoard: CommandOpponentBoard,
	keywordQuit:          CommandQuit,
}

// parseCommand splits a prompt line into its command and the
// remaining arguments, e.g. "attack 3 4" -> CommandAttack, ["3" "4"].
func parseCommand(line string) (Command, []string) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return CommandInvalid, nil
	}

	cmd, prs := commandKeywords[fields[0]]
	if !prs {
		return CommandInvalid, fields
	}
	return cmd, fields[1:]
}
