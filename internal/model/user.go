package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Profile holds the user-editable profile fields
type Profile struct {
	Bio    string `json:"bio" bson:"bio"`
	Avatar string `json:"avatar" bson:"avatar"`
}

// User represents a registered player
type User struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username            string             `json:"username" bson:"username"`
	Email               string             `json:"email" bson:"email"`
	Password            string             `json:"-" bson:"password"` // bcrypt hash, never serialized
	Profile             Profile            `json:"profile" bson:"profile"`
	LeaderboardPosition *int               `json:"leaderboardPosition" bson:"leaderboardPosition"`
}

// RegisterRequest is the request body for user registration
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// RegisterResponse is returned after successful registration
type RegisterResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ProfileResponse is the public view of a user profile
type ProfileResponse struct {
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
	Email          string `json:"email"`
}

// UpdateProfileRequest carries the optional profile mutations. Nil fields
// are left untouched.
type UpdateProfileRequest struct {
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
	Password       string `json:"password"`
}
