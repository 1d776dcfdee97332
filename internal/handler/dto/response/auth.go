package response

import "residence-api/internal/usecase/queries"

type LoginResponse struct {
	User *queries.AuthorizedUserView `json:"user"`
}
