// Package chi serves the recommendation engine over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/LBuyana/talentflow-app/internal/domain"
	"github.com/LBuyana/talentflow-app/internal/domain/recommendation"
	logpkg "github.com/LBuyana/talentflow-app/internal/logger"
	"github.com/LBuyana/talentflow-app/internal/metrics"
	healthuc "github.com/LBuyana/talentflow-app/internal/usecase/health"
)

// errorHandler tries to handle an error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server holds the HTTP handlers.
type Server struct {
	recommender   Recommender
	catalog       Catalog
	health        HealthService
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(recommender Recommender, catalog Catalog, health HealthService, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		recommender: recommender,
		catalog:     catalog,
		health:      health,
		logger:      logger,
		errorHandlers: []errorHandler{
			paramErrorHandler,
			notFoundHandler,
		},
	}
}

// Routes builds the router with the middleware stack.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(s.logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(s.logger))
	r.Use(metrics.Middleware())

	r.Get("/", s.Root)
	r.Get("/test_db", s.TestDB)
	r.Get("/health", s.HealthCheck)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/recommendations", func(r chi.Router) {
		r.Get("/job/{job_id}", s.SeekersForJob)
		r.Get("/by-user/{user_id}", s.JobsForUser)
		r.Get("/{seeker_profile_id}", s.JobsForSeeker)
	})
	r.Route("/debug", func(r chi.Router) {
		r.Get("/seekers", s.DebugSeekers)
		r.Get("/jobs", s.DebugJobs)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
	return r
}

// Root handles GET /.
//
//	@Summary	Liveness message
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	messageResponse
//	@Router		/ [get]
func (s *Server) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "TalentFlow Engine is running"})
}

// TestDB handles GET /test_db. It always answers 200.
//
//	@Summary	Run a test query against the profiles table
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	testDBSuccess
//	@Router		/test_db [get]
func (s *Server) TestDB(w http.ResponseWriter, r *http.Request) {
	check := s.health.TestDB(r.Context())
	if check.Err != nil {
		writeJSON(w, http.StatusOK, testDBFailure{Status: "error", Message: check.Err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, testDBSuccess{Status: statusSuccess, Data: idRowsToDTO(check.IDs)})
}

// HealthCheck handles GET /health.
//
//	@Summary	Component health
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	healthResponse
//	@Failure	503	{object}	healthResponse
//	@Router		/health [get]
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, healthResponse{Status: string(report.Status), Checks: checks})
}

// JobsForSeeker handles GET /recommendations/{seeker_profile_id}.
//
//	@Summary	Recommend jobs for a seeker profile
//	@Tags		recommendations
//	@Produce	json
//	@Param		seeker_profile_id	path		string	true	"Seeker profile id"
//	@Param		limit				query		int		false	"Result count, clamped to [1,50]"	default(10)
//	@Success	200					{object}	jobRecommendationsResponse
//	@Failure	404					{object}	errorResponse
//	@Failure	422					{object}	errorResponse
//	@Failure	500					{object}	errorResponse
//	@Router		/recommendations/{seeker_profile_id} [get]
func (s *Server) JobsForSeeker(w http.ResponseWriter, r *http.Request) {
	id, limit, err := bindParams(r, "seeker_profile_id")
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	jobs, err := s.recommender.JobsForSeeker(r.Context(), id, limit)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jobRecommendationsResponse{Status: statusSuccess, Recommendations: jobsToDTO(jobs)})
}

// SeekersForJob handles GET /recommendations/job/{job_id}.
//
//	@Summary	Recommend seekers for a job posting
//	@Tags		recommendations
//	@Produce	json
//	@Param		job_id	path		string	true	"Job posting id"
//	@Param		limit	query		int		false	"Result count, clamped to [1,50]"	default(10)
//	@Success	200		{object}	seekerRecommendationsResponse
//	@Failure	404		{object}	errorResponse
//	@Failure	422		{object}	errorResponse
//	@Failure	500		{object}	errorResponse
//	@Router		/recommendations/job/{job_id} [get]
func (s *Server) SeekersForJob(w http.ResponseWriter, r *http.Request) {
	id, limit, err := bindParams(r, "job_id")
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	seekers, err := s.recommender.SeekersForJob(r.Context(), id, limit)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, seekerRecommendationsResponse{
		Status:          statusSuccess,
		Recommendations: seekersToDTO(seekers),
	})
}

// JobsForUser handles GET /recommendations/by-user/{user_id}.
//
//	@Summary	Recommend jobs for the seeker profile of an auth user
//	@Tags		recommendations
//	@Produce	json
//	@Param		user_id	path		string	true	"Auth user id"
//	@Param		limit	query		int		false	"Result count, clamped to [1,50]"	default(10)
//	@Success	200		{object}	jobRecommendationsResponse
//	@Failure	404		{object}	errorResponse
//	@Failure	422		{object}	errorResponse
//	@Failure	500		{object}	errorResponse
//	@Router		/recommendations/by-user/{user_id} [get]
func (s *Server) JobsForUser(w http.ResponseWriter, r *http.Request) {
	id, limit, err := bindParams(r, "user_id")
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	jobs, err := s.recommender.JobsForUser(r.Context(), id, limit)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, jobRecommendationsResponse{Status: statusSuccess, Recommendations: jobsToDTO(jobs)})
}

// DebugSeekers handles GET /debug/seekers.
//
//	@Summary	List stored seeker profiles
//	@Tags		debug
//	@Produce	json
//	@Success	200	{object}	debugSeekersResponse
//	@Failure	500	{object}	errorResponse
//	@Router		/debug/seekers [get]
func (s *Server) DebugSeekers(w http.ResponseWriter, r *http.Request) {
	seekers, err := s.catalog.Seekers(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, debugSeekersResponse{Count: len(seekers), Seekers: seekerRowsToDTO(seekers)})
}

// DebugJobs handles GET /debug/jobs.
//
//	@Summary	List stored job ids and titles
//	@Tags		debug
//	@Produce	json
//	@Success	200	{object}	debugJobsResponse
//	@Failure	500	{object}	errorResponse
//	@Router		/debug/jobs [get]
func (s *Server) DebugJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.catalog.Jobs(r.Context())
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, debugJobsResponse{Count: len(jobs), Jobs: jobRowsToDTO(jobs)})
}

// paramError marks a request parameter that failed to bind.
type paramError struct {
	err error
}

func (e *paramError) Error() string { return e.err.Error() }
func (e *paramError) Unwrap() error { return e.err }

// bindParams reads the named path id and the optional limit query parameter.
func bindParams(r *http.Request, idParam string) (string, int, error) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", idParam, chi.URLParam(r, idParam), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return "", 0, &paramError{err: err}
	}

	var limit *int
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &limit); err != nil {
		return "", 0, &paramError{err: err}
	}
	if limit == nil {
		return id, recommendation.DefaultLimit, nil
	}
	return id, *limit, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// paramErrorHandler answers unparsable parameters with 422.
func paramErrorHandler(w http.ResponseWriter, err error) bool {
	var pe *paramError
	if !errors.As(err, &pe) {
		return false
	}
	writeError(w, http.StatusUnprocessableEntity, pe.Error())
	return true
}

// notFoundHandler answers failed lookups with 404 and the lookup's own message.
func notFoundHandler(w http.ResponseWriter, err error) bool {
	var nfe *domain.NotFoundError
	if errors.As(err, &nfe) {
		writeError(w, http.StatusNotFound, nfe.Detail)
		return true
	}
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, domain.ErrNotFound.Error())
		return true
	}
	return false
}

// handleError maps err to a response. Unknown errors become 500 with the raw message.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	logpkg.FromContext(r.Context()).Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, err.Error())
}
