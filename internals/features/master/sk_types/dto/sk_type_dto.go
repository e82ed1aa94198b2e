package dto

import (
	"strings"

	"github.com/z-anah/nomor-surat/internals/features/master/sk_types/model"
)

type CreateSkTypeRequest struct {
	Name string `json:"name" validate:"required"`
}

func (r *CreateSkTypeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateSkTypeRequest) ToModel() model.SkTypeModel {
	return model.SkTypeModel{Name: strings.TrimSpace(r.Name)}
}
