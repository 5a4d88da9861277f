package models

import "time"

// User is the single local account embedded in the document.
//
// Password holds the output of auth.DemoHash. It is a non-security demo gate
// carried over for presentation parity, not a real credential store.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Password  string    `json:"password,omitempty"`
}
