package model

// Actor identifies who performed an operation, stamped onto transactions,
// stock adjustments, and expenses.
type Actor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// UnknownActor is the placeholder used when no auth context is present.
// Its use is never an error.
func UnknownActor() Actor {
	return Actor{Name: "Unknown", Username: "unknown"}
}
