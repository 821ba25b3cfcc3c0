package request

// RegisterRequest is the request body for registering a player
type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the request body for updating a player's profile
type UpdateProfileRequest struct {
	Height   int    `json:"height"`
	Weight   int    `json:"weight"`
	Position string `json:"position"`
}

// AppendStatRequest is the request body for recording one game's numbers
type AppendStatRequest struct {
	Date     string `json:"date"`
	Goals    int    `json:"goals"`
	Rebounds int    `json:"rebounds"`
	Steals   int    `json:"steals"`
	Blocks   int    `json:"blocks"`
}
