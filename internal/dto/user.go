package dto

// RegisterRequest is the JSON body for POST /register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the JSON body for POST /login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest is the JSON body for PUT /profile. Username is not
// bound as required: an absent username simply resolves to no user.
type UpdateProfileRequest struct {
	Username  string `json:"username"`
	Portfolio string `json:"portfolio"`
}

// ProfileResponse is returned by GET /profile. Email is carried for the
// frontend's sake but no user document stores one; it is always empty.
type ProfileResponse struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Portfolio  string `json:"portfolio"`
	BlogsCount int64  `json:"blogsCount"`
}

// UserResponse is the user object echoed after a profile update. The
// password hash is deliberately not part of it.
type UserResponse struct {
	ID        string `json:"_id"`
	Username  string `json:"username"`
	Portfolio string `json:"portfolio"`
}
