package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound      = errors.New("player not found")
	ErrDuplicatePlayer     = errors.New("player is already in the game")
	ErrInsufficientPlayers = errors.New("insufficient players to start game")

	// Game errors
	ErrGameNotStarted   = errors.New("game has not started")
	ErrGameInProgress   = errors.New("game is in progress")
	ErrGameAlreadyOver  = errors.New("game is already over")
	ErrNotPlayerTurn    = errors.New("not this player's turn")
	ErrCorruptedHistory = errors.New("move history is inconsistent with game state")

	// Move errors
	ErrInvalidMoveShape           = errors.New("invalid move")
	ErrRackMismatch               = errors.New("tiles are not on the player's rack")
	ErrInsufficientBagForExchange = errors.New("not enough tiles in the bag to exchange")
	ErrInvalidBoardBounds         = errors.New("word does not fit on the board")
	ErrCellOccupied               = errors.New("cell is already occupied")
	ErrIllegalPlacement           = errors.New("word is not connected to the board")
	ErrIllegalWordFormed          = errors.New("play forms a word not in the dictionary")

	// Tile errors
	ErrRackFull     = errors.New("rack is full")
	ErrBagEmpty     = errors.New("bag is empty")
	ErrTileNotFound = errors.New("tile not found")

	// Scoring errors
	ErrEmptyWord   = errors.New("word has no squares")
	ErrEmptySquare = errors.New("word square has no tile")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
	ErrLexiconNotFound     = errors.New("lexicon not found")
)
