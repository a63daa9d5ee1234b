package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/devmatch/internal/logger"
	"github.com/jonathan/devmatch/internal/ranking"
	"github.com/jonathan/devmatch/internal/schemas"
	"github.com/jonathan/devmatch/internal/server/middleware"
	"github.com/jonathan/devmatch/internal/types"
	schemafiles "github.com/jonathan/devmatch/schemas"
)

// maxScoreBody bounds the /match/score request body.
const maxScoreBody = 1 << 20

// JobCardsResponse is the response for GET /developers/me/jobs
type JobCardsResponse struct {
	Jobs   []types.JobCard `json:"jobs"`
	Count  int             `json:"count"`
	Scored bool            `json:"scored"`
}

// ScoreRequest is the body of POST /match/score
type ScoreRequest struct {
	Profile json.RawMessage `json:"profile"`
	Job     json.RawMessage `json:"job"`
}

// ScoreResponse is the response for POST /match/score
type ScoreResponse struct {
	Score     int                  `json:"score"`
	Breakdown types.MatchBreakdown `json:"breakdown"`
}

// SwipeRequest is the body of POST /developers/me/jobs/{job_id}/swipe
type SwipeRequest struct {
	Action types.SwipeAction `json:"action"`
}

// SwipeResponse is the response for a recorded swipe
type SwipeResponse struct {
	JobID  uuid.UUID               `json:"job_id"`
	Status types.ApplicationStatus `json:"status"`
}

// ApplicationsResponse is the response for GET /developers/me/applications.
// Every status is present, with an empty list when the developer has no jobs in it.
type ApplicationsResponse struct {
	Applications map[types.ApplicationStatus][]uuid.UUID `json:"applications"`
}

// handleHealth reports server and database health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		s.logger.Warn("health check failed", zap.Error(err))
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "database": "unavailable"})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok", "database": "ok"})
}

// handleJobCards returns the authenticated developer's eligible jobs ordered by match score
func (s *Server) handleJobCards(w http.ResponseWriter, r *http.Request) {
	developerID, err := middleware.GetDeveloperID(r)
	if err != nil {
		s.writeError(w, r, &ErrUnauthorized{})
		return
	}

	driver := s.driver
	if raw := r.URL.Query().Get("explain"); raw != "" {
		explain, err := strconv.ParseBool(raw)
		if err != nil {
			s.writeError(w, r, &ErrValidation{Field: "explain", Message: "must be a boolean"})
			return
		}
		driver = driver.WithExplain(explain)
	}

	deck, err := driver.JobCards(r.Context(), developerID, s.now())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cards := deck.Cards
	if cards == nil {
		cards = []types.JobCard{}
	}
	s.jsonResponse(w, http.StatusOK, JobCardsResponse{
		Jobs:   cards,
		Count:  len(cards),
		Scored: deck.Scored,
	})
}

// handleScore scores one profile against one job without touching the database
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxScoreBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.jsonResponse(w, http.StatusRequestEntityTooLarge, errorBody{Error: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)})
			return
		}
		s.writeError(w, r, &ErrValidation{Field: "body", Message: "could not read request body"})
		return
	}

	if err := schemas.ValidateDocument(schemafiles.MatchRequest, body); err != nil {
		s.writeError(w, r, err)
		return
	}

	var req ScoreRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, r, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}

	profile, err := types.ParseDeveloperProfile(req.Profile)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	job, err := types.ParseJobPosting(req.Job)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	breakdown, err := ranking.ScoreBreakdown(profile, job)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ScoreResponse{Score: breakdown.Total(), Breakdown: breakdown})
}

// handleSwipe records a swipe so the job leaves the developer's deck
func (s *Server) handleSwipe(w http.ResponseWriter, r *http.Request) {
	developerID, err := middleware.GetDeveloperID(r)
	if err != nil {
		s.writeError(w, r, &ErrUnauthorized{})
		return
	}

	jobID, err := uuid.Parse(r.PathValue("job_id"))
	if err != nil {
		s.writeError(w, r, &ErrValidation{Field: "job_id", Message: "must be a UUID"})
		return
	}

	var req SwipeRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 4096)).Decode(&req); err != nil {
		s.writeError(w, r, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}

	status, err := s.store.RecordSwipe(r.Context(), developerID, jobID, req.Action)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Debug("swipe recorded",
		zap.String(logger.FieldDeveloperID, developerID.String()),
		zap.String(logger.FieldJobID, jobID.String()),
		zap.String("status", string(status)),
	)
	s.jsonResponse(w, http.StatusOK, SwipeResponse{JobID: jobID, Status: status})
}

// handleApplications returns the developer's job ids grouped by application list
func (s *Server) handleApplications(w http.ResponseWriter, r *http.Request) {
	developerID, err := middleware.GetDeveloperID(r)
	if err != nil {
		s.writeError(w, r, &ErrUnauthorized{})
		return
	}

	lists, err := s.store.ListApplications(r.Context(), developerID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := ApplicationsResponse{Applications: make(map[types.ApplicationStatus][]uuid.UUID, len(types.ApplicationStatuses))}
	for _, status := range types.ApplicationStatuses {
		ids := lists[status]
		if ids == nil {
			ids = []uuid.UUID{}
		}
		resp.Applications[status] = ids
	}
	s.jsonResponse(w, http.StatusOK, resp)
}
