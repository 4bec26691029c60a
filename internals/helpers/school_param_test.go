package helper

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchoolParam(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
		code int
	}{
		{"escaped", "/s/IE%20San%20Jos%C3%A9", "IE San José", 0},
		{"trimmed", "/s/%20IE%20Central%20", "IE Central", 0},
		{"blank", "/s/%20%20", "", fiber.StatusBadRequest},
		{"too long", "/s/" + strings.Repeat("x", MaxSchoolLen+1), "", fiber.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got string
				err error
			)
			app := fiber.New()
			app.Get("/s/:school", func(c *fiber.Ctx) error {
				got, err = SchoolParam(c)
				return nil
			})
			_, terr := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, terr)

			if tt.code == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			var fe *fiber.Error
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.code, fe.Code)
		})
	}
}
