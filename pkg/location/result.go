package location

// Process exit codes produced by terminal results.
const (
	ExitQuit         = 0
	ExitDeadLocation = 1
)

// ExitCancelled is returned by Dispatcher.Run when its context ends the game.
// No handler ever produces it.
const ExitCancelled = -1

// Result is what a handler hands back to the dispatcher at the end of a turn:
// either the identifier of the next location, or a request to stop with an exit code.
type Result struct {
	next      string
	terminate bool
	code      int
}

// Continue moves the game to the location with the given identifier.
// The identifier does not need to be registered; an unknown one ends
// the game on the next turn.
func Continue(next string) Result {
	return Result{next: next}
}

// Terminate stops the dispatch loop immediately with the given exit code.
func Terminate(code int) Result {
	return Result{terminate: true, code: code}
}

// Quit is the result of a player's Quit intent.
func Quit() Result {
	return Terminate(ExitQuit)
}

// Next returns the next location identifier, or false for terminal results.
func (r Result) Next() (string, bool) {
	return r.next, !r.terminate
}

// Terminated returns the exit code, or false if the game continues.
func (r Result) Terminated() (int, bool) {
	return r.code, r.terminate
}
