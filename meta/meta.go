// meta/meta.go
package meta

// HALF_EXTENT defines the default half width and height of a kingdom.
const HALF_EXTENT = 5

// DOMINOES_PER_PLAYER defines how many dominoes each player receives in a game.
const DOMINOES_PER_PLAYER = 12

const MIN_PLAYERS = 2

const MAX_PLAYERS = 4

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 8
