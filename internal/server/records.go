// internal/server/records.go
package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mwiater/careerpath/internal/advisor"
	"github.com/mwiater/careerpath/internal/store"
)

func (s *Server) listTerms(c echo.Context) error {
	terms, err := s.store.ListTerms(c.Request().Context())
	if err != nil {
		return err
	}
	if terms == nil {
		terms = []store.Term{}
	}
	return c.JSON(http.StatusOK, terms)
}

func (s *Server) addTerm(c echo.Context) error {
	var t store.Term
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	saved, err := s.store.AddTerm(c.Request().Context(), t)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, saved)
}

func (s *Server) listSessions(c echo.Context) error {
	sessions, err := s.store.ListSessions(c.Request().Context())
	if err != nil {
		return err
	}
	if sessions == nil {
		sessions = []advisor.SavedSession{}
	}
	return c.JSON(http.StatusOK, sessions)
}

// saveSession stores a session. A body without an id is stamped with a new id and timestamp.
func (s *Server) saveSession(c echo.Context) error {
	var sess advisor.SavedSession
	if err := c.Bind(&sess); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(sess.ID) == "" {
		sess = advisor.NewSession(sess.UserName, sess.UserInput, sess.SelectedJob, sess.GeneratedTimetable)
	}
	if err := s.store.SaveSession(c.Request().Context(), sess); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sess)
}

func (s *Server) getSession(c echo.Context) error {
	sess, err := s.store.GetSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sess)
}

func (s *Server) deleteSession(c echo.Context) error {
	if err := s.store.DeleteSession(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) clearSessions(c echo.Context) error {
	if err := s.store.ClearSessions(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
