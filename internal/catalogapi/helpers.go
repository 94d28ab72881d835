package catalogapi

import "github.com/labstack/echo/v4"

// success wraps a created or updated entity under its catalog key,
// e.g. {"success": true, "product": {...}}.
func success(c echo.Context, entityKey string, entity interface{}) error {
	body := echo.Map{"success": true}
	if entityKey != "" {
		body[entityKey] = entity
	}
	return c.JSON(200, body)
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"success": false, "error": message})
}
