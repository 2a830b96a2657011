package domain

// Activity is a named extracurricular offering and its signup roster.
// Participants are kept in signup order and contain no duplicate email.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}
