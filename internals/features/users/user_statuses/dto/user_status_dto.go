package dto

import "strings"

type CreateUserStatusRequest struct {
	Name string `json:"name" validate:"required"`
}

func (r *CreateUserStatusRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}
