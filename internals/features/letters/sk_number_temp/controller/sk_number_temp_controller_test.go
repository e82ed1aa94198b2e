package controller

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/z-anah/nomor-surat/internals/features/letters/sk_number_temp/dto"
	"github.com/z-anah/nomor-surat/internals/helpers/testapp"
)

type listerFunc func(ctx context.Context, skTypeID *int64) ([]dto.SkNumberTempResponse, error)

func (f listerFunc) List(ctx context.Context, skTypeID *int64) ([]dto.SkNumberTempResponse, error) {
	return f(ctx, skTypeID)
}

func TestGetSkNumberTempsFilter(t *testing.T) {
	var got *int64
	name := "SK"
	year := 2024
	ctrl := NewSkNumberTempController(listerFunc(func(_ context.Context, id *int64) ([]dto.SkNumberTempResponse, error) {
		got = id
		return []dto.SkNumberTempResponse{{ID: 1, SkTypeID: 3, LastNumber: 12, Year: &year, SkTypeName: &name}}, nil
	}))
	app := testapp.New()
	app.Get("/sk-number-temp", ctrl.GetSkNumberTemps)

	code, body := testapp.Do(t, app, "GET", "/sk-number-temp?sk_type_id=3", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.JSONEq(t, `[{"id":1,"sk_type_id":3,"last_number":12,"year":2024,"sk_type_name":"SK"}]`, body)
	if assert.NotNil(t, got) {
		assert.Equal(t, int64(3), *got)
	}

	code, _ = testapp.Do(t, app, "GET", "/sk-number-temp", "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Nil(t, got)

	code, body = testapp.Do(t, app, "GET", "/sk-number-temp?sk_type_id=x", "")
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body, "sk_type_id must be a number")
}
