package chi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/soartv/internal/domain"
	domupload "github.com/kailas-cloud/soartv/internal/domain/upload"
	"github.com/kailas-cloud/soartv/internal/logger"
	catalogUC "github.com/kailas-cloud/soartv/internal/usecase/catalog"
	healthUC "github.com/kailas-cloud/soartv/internal/usecase/health"
	objectUC "github.com/kailas-cloud/soartv/internal/usecase/object"
	profileUC "github.com/kailas-cloud/soartv/internal/usecase/profile"
	projectUC "github.com/kailas-cloud/soartv/internal/usecase/project"
	recommendationUC "github.com/kailas-cloud/soartv/internal/usecase/recommendation"
	uploadUC "github.com/kailas-cloud/soartv/internal/usecase/upload"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// Services bundles the use cases served over HTTP.
type Services struct {
	Catalog         *catalogUC.Service
	Objects         *objectUC.Service
	Uploads         *uploadUC.Service
	Profiles        *profileUC.Service
	Projects        *projectUC.Service
	Recommendations *recommendationUC.Service
	Health          *healthUC.Service
}

// Server serves the SoarTV REST API.
type Server struct {
	svc           Services
	validate      *validator.Validate
	metrics       http.Handler
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(svc Services, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		svc:           svc,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		metrics:       promhttp.Handler(),
		logger:        logger,
		errorHandlers: defaultErrorHandlers(),
	}
}

// ListVideos handles GET /api/videos.
func (s *Server) ListVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := s.svc.Catalog.List(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, videosToResponse(videos))
}

// ListVideosByCategory handles GET /api/videos/category/{category}.
func (s *Server) ListVideosByCategory(w http.ResponseWriter, r *http.Request, category string) {
	videos, err := s.svc.Catalog.ListByCategory(r.Context(), category)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, videosToResponse(videos))
}

// GetVideo handles GET /api/videos/{id}.
func (s *Server) GetVideo(w http.ResponseWriter, r *http.Request, id int) {
	v, err := s.svc.Catalog.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, videoToResponse(v))
}

// IssueUploadURL handles POST /api/objects/upload.
func (s *Server) IssueUploadURL(w http.ResponseWriter, r *http.Request) {
	up, err := s.svc.Objects.IssueUpload(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	logger.FromContext(r.Context()).Info("upload url issued", zap.String("object_path", up.Path))
	writeJSON(w, http.StatusOK, uploadURLToResponse(up))
}

// ServeObject handles GET /objects/*.
func (s *Server) ServeObject(w http.ResponseWriter, r *http.Request) {
	obj, err := s.svc.Objects.Open(r.Context(), r.URL.Path)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	defer func() { _ = obj.Body.Close() }()

	w.Header().Set("Content-Type", obj.ContentType)
	if obj.Size >= 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(obj.Size, 10))
	}
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, obj.Body); err != nil {
		logger.FromContext(r.Context()).Warn("object stream interrupted",
			zap.String("object", obj.Name), zap.Error(err))
	}
}

// SaveUploadedProject handles PUT /api/projects/upload.
// A record is only acknowledged once it is on disk: a failed write of the
// fallback file answers 500 and the record is not kept.
func (s *Server) SaveUploadedProject(w http.ResponseWriter, r *http.Request) {
	var req UploadedProjectRequest
	if err := s.decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing required fields"})
		return
	}

	rec, err := s.svc.Uploads.Save(r.Context(), domupload.Draft{
		VideoURL:    req.VideoURL,
		Title:       req.Title,
		Description: req.Description,
		UserID:      req.UserID,
	})
	if errors.Is(err, domain.ErrInvalidInput) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing required fields"})
		return
	}
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Info("uploaded project saved",
		zap.String("project_id", rec.ID), zap.String("user_id", rec.UploadedBy))
	writeJSON(w, http.StatusOK, UploadSavedResponse{Success: true, Project: uploadToResponse(rec)})
}

// ListUploadedProjects handles GET /api/projects/user/{userId}.
func (s *Server) ListUploadedProjects(w http.ResponseWriter, r *http.Request, userID string) {
	recs, err := s.svc.Uploads.ListByUser(r.Context(), userID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	out := make([]UploadedProjectResponse, len(recs))
	for i, rec := range recs {
		out[i] = uploadToResponse(rec)
	}
	writeJSON(w, http.StatusOK, out)
}

// SaveProfile handles PUT /api/profiles/{userId}.
func (s *Server) SaveProfile(w http.ResponseWriter, r *http.Request, userID string) {
	var req ProfileRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
		return
	}

	p, err := s.svc.Profiles.Save(r.Context(), userID, profileFromRequest(req))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profileToResponse(&p))
}

// GetProfile handles GET /api/profiles/{userId}.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request, userID string) {
	p, err := s.svc.Profiles.Get(r.Context(), userID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profileToResponse(&p))
}

// PublishProject handles POST /api/projects.
func (s *Server) PublishProject(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
		return
	}

	p, err := s.svc.Projects.Publish(r.Context(), req.ID, projectFromRequest(req))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, projectToResponse(&p))
}

// GetProject handles GET /api/projects/{projectId}.
func (s *Server) GetProject(w http.ResponseWriter, r *http.Request, projectID string) {
	p, err := s.svc.Projects.Get(r.Context(), projectID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, projectToResponse(&p))
}

// ListOwnedProjects handles GET /api/users/{userId}/projects.
func (s *Server) ListOwnedProjects(w http.ResponseWriter, r *http.Request, userID string) {
	ps, err := s.svc.Projects.ListByOwner(r.Context(), userID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, projectsToResponse(ps))
}

// GetRecommendations handles GET /api/recommendations/{userId}.
// It always answers 200; an unknown user or an unavailable store yields empty lists.
func (s *Server) GetRecommendations(w http.ResponseWriter, r *http.Request, userID string) {
	ctx := logger.WithFields(r.Context(), zap.String("user_id", userID))
	recs := s.svc.Recommendations.Recommend(ctx, userID)
	writeJSON(w, http.StatusOK, recommendationsToResponse(recs))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.svc.Health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthUC.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	s.metrics.ServeHTTP(w, r)
}

// decode reads a JSON body into dst and validates it.
func (s *Server) decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := s.validate.Struct(dst); err != nil {
		return validationMessage(err)
	}
	return nil
}

// validationMessage flattens validator errors into one readable error.
func validationMessage(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validation failed: %w", err)
	}
	fe := verrs[0]
	if fe.Param() != "" {
		return fmt.Errorf("field %s failed %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Errorf("field %s failed %s", fe.Field(), fe.Tag())
}
