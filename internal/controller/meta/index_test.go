package meta

import (
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexBanner(t *testing.T) {
	app := fiber.New()
	RegisterIndex(app)

	for _, path := range []string{"/", "/api"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Welcome to ClubDesk API v1", body["message"])
		assert.NotEmpty(t, body["version"])
	}
}
