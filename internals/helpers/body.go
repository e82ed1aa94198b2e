package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ParseBody: body kosong dibiarkan (struct tetap zero value) supaya
// validasi yang melaporkan field mana saja yang wajib.
func ParseBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return nil
}

// Normalizer: DTO yang merapikan input (trim, lowercase) sebelum divalidasi.
type Normalizer interface {
	Normalize()
}

// BindAndValidate = ParseBody + Normalize (kalau ada) + ValidateStruct
func BindAndValidate(c *fiber.Ctx, out interface{}) error {
	if err := ParseBody(c, out); err != nil {
		return err
	}
	if n, ok := out.(Normalizer); ok {
		n.Normalize()
	}
	return ValidateStruct(out)
}

// NullKeys: key JSON yang dikirim eksplisit sebagai null.
// Dipakai PATCH untuk membedakan "kosongkan" dari "tidak dikirim".
func NullKeys(c *fiber.Ctx) (map[string]bool, error) {
	out := map[string]bool{}
	if len(c.Body()) == 0 {
		return out, nil
	}
	var raw map[string]interface{}
	if err := c.BodyParser(&raw); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	for k, v := range raw {
		if v == nil {
			out[k] = true
		}
	}
	return out, nil
}

// ParamInt64 membaca path param numerik, kosong/bukan angka → 400.
func ParamInt64(c *fiber.Ctx, key string) (int64, error) {
	raw := strings.TrimSpace(c.Params(key))
	if raw == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, key+" is required")
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, key+" must be a positive number")
	}
	return n, nil
}

// QueryInt64 membaca query opsional; kosong → nil.
func QueryInt64(c *fiber.Ctx, key string) (*int64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, key+" must be a number")
	}
	return &n, nil
}
