package entities

// Email is a single outbound HTML message.
type Email struct {
	To      string
	Subject string
	HTML    string
}
