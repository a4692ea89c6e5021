package model

import "time"

// LoginToken is an opaque bearer credential issued by the identity
// collaborator. The engine only reads these; issuance lives elsewhere.
type LoginToken struct {
	ID       string    `json:"id,omitempty" bson:"_id,omitempty"`
	Token    string    `json:"token" bson:"token"`
	UserID   string    `json:"user_id" bson:"user_id"`
	Validity time.Time `json:"validity" bson:"validity"`
}

func (t *LoginToken) Expired(now time.Time) bool {
	return t.Validity.Before(now)
}
