package location

// Handler runs one turn at a location. Advance must write the turn's output,
// read exactly one intent from the session and return the next state.
type Handler interface {
	Advance(s *Session) Result
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(s *Session) Result

func (f HandlerFunc) Advance(s *Session) Result {
	return f(s)
}

// deadLocation is dispatched to whenever the current identifier is not registered.
type deadLocation struct{}

func (deadLocation) Advance(s *Session) Result {
	s.Say("Attempting to access a room that doesn't exist.")
	return Terminate(ExitDeadLocation)
}
