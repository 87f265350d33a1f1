package helper

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachku_backend/internals/apperr"
)

type fakePGErr struct{ state string }

func (e fakePGErr) SQLState() string { return e.state }
func (e fakePGErr) Error() string    { return "pg error " + e.state }

func TestJsonAppErrorStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperr.Validation("bad input"), fiber.StatusBadRequest},
		{"not found", apperr.NotFound("missing"), fiber.StatusNotFound},
		{"conflict", apperr.Conflict("taken"), fiber.StatusConflict},
		{"storage", apperr.Storage("db down", errors.New("boom")), fiber.StatusInternalServerError},
		{"unknown error", errors.New("anything"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/x", func(c *fiber.Ctx) error {
				return JsonAppError(c, tc.err)
			})
			resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestMapPGError(t *testing.T) {
	conflict := MapPGError(fakePGErr{"23505"}, "Already exists")
	assert.True(t, apperr.IsConflict(conflict))
	assert.Equal(t, "Already exists", conflict.Error())

	exclusion := MapPGError(fakePGErr{"23P01"}, "Overlaps")
	assert.True(t, apperr.IsConflict(exclusion))

	fk := MapPGError(fakePGErr{"23503"}, "ignored")
	assert.True(t, apperr.IsValidation(fk))

	other := MapPGError(errors.New("connection reset"), "ignored")
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(other))
}
