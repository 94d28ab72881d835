package catalogapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/catalogd/internal/domain"
)

func (s *Server) registerBirdRoutes() {
	s.echo.GET("/api/birds", s.listBirds)
	s.echo.POST("/api/birds", s.createBird)
	s.echo.DELETE("/api/birds", s.clearBirds)
}

func (s *Server) listBirds(c echo.Context) error {
	return c.JSON(http.StatusOK, s.birds.ReadAll())
}

func (s *Server) createBird(c echo.Context) error {
	var bird domain.Bird
	if err := c.Bind(&bird); err != nil {
		return fail(c, http.StatusBadRequest, "unable to parse bird")
	}
	bird.Name = strings.TrimSpace(bird.Name)
	if bird.Name == "" {
		return fail(c, http.StatusBadRequest, "name is required")
	}
	if bird.Capabilities == nil {
		bird.Capabilities = map[domain.CapabilityKind]domain.Capability{}
	}

	if err := s.birds.Append(bird); err != nil {
		return fail(c, http.StatusInternalServerError, "failed to save bird")
	}
	return success(c, "bird", bird)
}

// clearBirds wipes the whole collection.
func (s *Server) clearBirds(c echo.Context) error {
	if err := s.birds.Clear(); err != nil {
		return fail(c, http.StatusInternalServerError, "failed to clear birds")
	}
	return success(c, "", nil)
}
