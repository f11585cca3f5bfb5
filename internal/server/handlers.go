package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/abhisek/apprise/internal/assess"
	"github.com/abhisek/apprise/internal/bank"
	"github.com/abhisek/apprise/internal/feedback"
	"github.com/abhisek/apprise/internal/index"
)

// defaultNumQuestions is used when a start request omits the count.
const defaultNumQuestions = 10

// maxNumQuestions caps a single assessment's size.
const maxNumQuestions = 50

func (s *Server) handleHealth(c echo.Context) error {
	snap := s.store.Snapshot()
	return c.JSON(http.StatusOK, HealthResponse{
		Status:         "healthy",
		AvailableRoles: snap.Roles(),
		TotalQuestions: snap.TotalQuestions(),
		IndexedCount:   s.index.Size(),
	})
}

func (s *Server) handleRoles(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.Roles())
}

func (s *Server) handleStart(c echo.Context) error {
	var req StartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return s.startAssessment(c, req)
}

func (s *Server) handleQuestionsByRole(c echo.Context) error {
	req := StartRequest{Role: c.Param("role"), NumQuestions: defaultNumQuestions}
	if v := c.QueryParam("num_questions"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "num_questions must be an integer")
		}
		req.NumQuestions = n
	}
	return s.startAssessment(c, req)
}

func (s *Server) startAssessment(c echo.Context, req StartRequest) error {
	if req.Role == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "role is required")
	}
	if req.NumQuestions == 0 {
		req.NumQuestions = defaultNumQuestions
	}
	if req.NumQuestions < 1 || req.NumQuestions > maxNumQuestions {
		return echo.NewHTTPError(http.StatusBadRequest, "num_questions must be between 1 and 50")
	}

	session, err := s.sampler.Sample(req.Role, req.NumQuestions)
	if err != nil {
		return s.mapCoreError(err)
	}

	return c.JSON(http.StatusOK, StartResponse{
		SessionID:      session.ID,
		Role:           session.Role,
		Questions:      toPayload(session.Questions),
		TotalQuestions: session.Total(),
	})
}

func (s *Server) handleSubmit(c echo.Context) error {
	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Role == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "role is required")
	}
	if len(req.Questions) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "questions are required")
	}
	if _, err := s.store.QuestionsFor(req.Role); err != nil {
		return s.mapCoreError(err)
	}

	questions := toQuestions(req.Questions)
	result := assess.Score(req.Role, questions, req.Answers)

	fbReq := feedback.BuildRequest(result, questions, req.Answers)
	text, err := s.feedback.Generate(c.Request().Context(), fbReq)

	resp := SubmitResponse{
		Role:               result.Role,
		Score:              result.Score,
		TotalQuestions:     result.TotalQuestions,
		Percentage:         result.Percentage,
		PerQuestionCorrect: result.PerQuestionCorrect,
		Feedback:           text,
	}
	if err != nil {
		// Score and feedback are independently deliverable: the score
		// stands, feedback degrades to the fallback text.
		var unavailable *feedback.ErrFeedbackUnavailable
		if !errors.As(err, &unavailable) {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		s.log.Warn("feedback generation failed", "role", req.Role, "error", err)
		resp.FeedbackUnavailable = true
	}

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleRoleStats(c echo.Context) error {
	role := c.Param("role")
	questions, err := s.store.QuestionsFor(role)
	if err != nil {
		return s.mapCoreError(err)
	}

	return c.JSON(http.StatusOK, RoleStatsResponse{
		Role:          role,
		QuestionCount: len(questions),
		IndexedCount:  s.index.EntryCount(role),
		IndexFresh:    !s.index.Stale(),
	})
}

func (s *Server) handleSearch(c echo.Context) error {
	role := c.QueryParam("role")
	query := c.QueryParam("q")
	if role == "" || query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "role and q are required")
	}

	k := defaultNumQuestions
	if v := c.QueryParam("k"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "k must be a positive integer")
		}
		k = n
	}

	matches, err := s.index.Search(c.Request().Context(), role, query, k)
	if err != nil {
		return s.mapCoreError(err)
	}

	resp := SearchResponse{Role: role, Query: query, Matches: make([]SearchMatch, len(matches))}
	for i, m := range matches {
		resp.Matches[i] = SearchMatch{Question: m.Text, Ref: m.Ref, Score: m.Score}
	}
	return c.JSON(http.StatusOK, resp)
}

// mapCoreError translates core error types to HTTP status codes. All core
// errors are request-scoped and recoverable; none crash the process.
func (s *Server) mapCoreError(err error) error {
	var unknownRole *bank.ErrUnknownRole
	if errors.As(err, &unknownRole) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	var emptyIndex *index.ErrEmptyIndex
	if errors.As(err, &emptyIndex) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	var timeout *index.ErrRebuildTimeout
	if errors.As(err, &timeout) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	s.log.Error("internal error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
