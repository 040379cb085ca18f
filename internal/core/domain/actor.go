package domain

// Actor identifies who performed a mutating operation. An empty actor is
// resolved to the system sentinel so call sites never null-check.
type Actor struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

// SystemActor is recorded when no user context is available.
var SystemActor = Actor{UserID: "system", UserName: "System"}

// OrSystem returns the actor itself, or SystemActor when the user id is
// unset.
func (a Actor) OrSystem() Actor {
	if a.UserID == "" {
		return SystemActor
	}
	return a
}
