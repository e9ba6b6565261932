package entity

// User describes the person using the client.
type User struct {
	Username string
	SignedIn bool
}

// Anonymous is the user of a request that carries no session.
var Anonymous = User{}
