package meta

// BOARD_SIZE is the number of rows and columns of the board.
const BOARD_SIZE = 8

// DEFAULT_DEPTH is the search horizon in plies when none is configured.
const DEFAULT_DEPTH = 4

// MAX_DEPTH bounds the configurable search horizon.
const MAX_DEPTH = 8

// MAX_TURNS stops self-play games that have not been decided.
const MAX_TURNS = 300
