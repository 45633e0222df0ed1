package handlers

type SignupRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type UserUpdateRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

// ProductRequest uses pointers for the numeric fields so that absence in the
// request body is distinguishable from a zero value.
type ProductRequest struct {
	Pname       string   `json:"pname"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}

type MessageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
