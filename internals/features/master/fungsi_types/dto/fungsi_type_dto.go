package dto

import (
	"strings"

	"github.com/z-anah/nomor-surat/internals/features/master/fungsi_types/model"
)

type CreateFungsiTypeRequest struct {
	FungsiName string `json:"fungsi_name" validate:"required"`
	FungsiCode string `json:"fungsi_code" validate:"required"`
}

func (r *CreateFungsiTypeRequest) Normalize() {
	r.FungsiName = strings.TrimSpace(r.FungsiName)
	r.FungsiCode = strings.TrimSpace(r.FungsiCode)
}

func (r CreateFungsiTypeRequest) ToModel() model.FungsiTypeModel {
	return model.FungsiTypeModel{
		FungsiName: r.FungsiName,
		FungsiCode: r.FungsiCode,
	}
}
