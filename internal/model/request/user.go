package request

type CreateUser struct {
	Username string `json:"username" example:"alice"`
}
