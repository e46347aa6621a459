package response

import "studio-booking/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

type UpdateAccountResponse struct {
	Success         bool `json:"success"`
	EmailChanged    bool `json:"emailChanged"`
	PasswordChanged bool `json:"passwordChanged"`
}
