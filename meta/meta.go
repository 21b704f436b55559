// meta/meta.go
package meta

// ITERATIONS defines the number of MCTS iterations per move.
const ITERATIONS = 100

// EXPLORATION defines the UCT exploration constant.
const EXPLORATION = 1.41

// GAMES defines the number of games per matchup in simulation mode.
const GAMES = 1000

// RESULTS_FILE defines the CSV log simulation results are appended to.
const RESULTS_FILE = "agents_performance.csv"

// LOG_LEVEL defines the default zerolog level.
const LOG_LEVEL = "info"
