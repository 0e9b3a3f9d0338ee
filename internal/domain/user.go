/**
 * @description
 * This file defines the core domain models shared by the gateway resource
 * clients. Go field names follow the internal snake_case convention of the
 * gateway contract; JSON tags carry the camelCase wire names, so a
 * marshal/unmarshal round trip across the boundary is lossless.
 */
package domain

// User represents a gateway user. Identifiers are assigned by the remote
// service; the client never fabricates them.
type User struct {
	ID          string `json:"id" validate:"required,uuid4"`
	Email       string `json:"email" validate:"required,email"`
	LastName    string `json:"lastName" validate:"required"`
	FirstName   string `json:"firstName" validate:"required"`
	MiddleName  string `json:"middleName" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}
