// internal/server/generate.go
package server

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mwiater/careerpath/internal/advisor"
	"github.com/mwiater/careerpath/internal/providers"
)

// streamLine is one NDJSON line of a streamed response. Progress lines carry
// chunk/final; the last line carries result or error.
type streamLine struct {
	Chunk  *string `json:"chunk,omitempty"`
	Final  *bool   `json:"final,omitempty"`
	Result any     `json:"result,omitempty"`
	Error  string  `json:"error,omitempty"`
}

func (s *Server) careerAdvice(c echo.Context) error {
	var in advisor.UserInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()

	if !wantsStream(c) {
		advice, err := s.service.GenerateCareerAdvice(ctx, in, nil)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, advice)
	}
	return stream(c, func(progress providers.ProgressFunc) (any, error) {
		return s.service.GenerateCareerAdvice(ctx, in, progress)
	})
}

func (s *Server) timetable(c echo.Context) error {
	var req advisor.TimetableRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return err
	}
	ctx := c.Request().Context()

	if !wantsStream(c) {
		plan, err := s.service.GenerateTimetable(ctx, req, nil)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, advisor.PersonalizedTimetable{
			JobTitle:          req.JobTitle,
			UserTimeframe:     req.Timeframe,
			GeneratedSchedule: &plan,
		})
	}
	return stream(c, func(progress providers.ProgressFunc) (any, error) {
		plan, err := s.service.GenerateTimetable(ctx, req, progress)
		if err != nil {
			return nil, err
		}
		return advisor.PersonalizedTimetable{JobTitle: req.JobTitle, UserTimeframe: req.Timeframe, GeneratedSchedule: &plan}, nil
	})
}

func wantsStream(c echo.Context) bool {
	v := c.QueryParam("stream")
	return v == "1" || v == "true"
}

// stream writes progress chunks as NDJSON and terminates with a result or error line.
// The status is always 200 once streaming starts.
func stream(c echo.Context, run func(providers.ProgressFunc) (any, error)) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "application/x-ndjson")
	res.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(res)

	write := func(line streamLine) {
		_ = enc.Encode(line)
		res.Flush()
	}

	result, err := run(func(chunk providers.StreamChunk) {
		text, final := chunk.Text, chunk.IsFinal
		write(streamLine{Chunk: &text, Final: &final})
	})
	if err != nil {
		write(streamLine{Error: err.Error()})
		return nil
	}
	write(streamLine{Result: result})
	return nil
}
