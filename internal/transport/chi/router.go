package chi

import (
	"net/http"

	gochi "github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"go.uber.org/zap"
)

// Mount registers every API route on r.
func (s *Server) Mount(r gochi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api", func(r gochi.Router) {
		r.Get("/videos", s.ListVideos)
		r.Get("/videos/category/{category}", withPathParam("category", s.ListVideosByCategory))
		r.Get("/videos/{id}", withPathParam("id", s.GetVideo))

		r.Post("/objects/upload", s.IssueUploadURL)

		r.Put("/projects/upload", s.SaveUploadedProject)
		r.Get("/projects/user/{userId}", withPathParam("userId", s.ListUploadedProjects))
		r.Post("/projects", s.PublishProject)
		r.Get("/projects/{projectId}", withPathParam("projectId", s.GetProject))

		r.Put("/profiles/{userId}", withPathParam("userId", s.SaveProfile))
		r.Get("/profiles/{userId}", withPathParam("userId", s.GetProfile))
		r.Get("/users/{userId}/projects", withPathParam("userId", s.ListOwnedProjects))

		r.Get("/recommendations/{userId}", withPathParam("userId", s.GetRecommendations))

		r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusNotFound, CodeNotFound, "route not found")
		})
	})

	r.Get("/objects/*", s.ServeObject)
	r.Head("/objects/*", s.ServeObject)

	s.logger.Info("API routes mounted", zap.Bool("object_storage", s.svc.Objects.Enabled()))
}

// withPathParam binds a single simple-style path parameter and passes the
// typed value to h. Binding failures answer 400.
func withPathParam[T any](name string, h func(http.ResponseWriter, *http.Request, T)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var v T
		err := runtime.BindStyledParameterWithOptions("simple", name, gochi.URLParam(r, name), &v,
			runtime.BindStyledParameterOptions{
				ParamLocation: runtime.ParamLocationPath,
				Explode:       false,
				Required:      true,
			})
		if err != nil {
			writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid path parameter "+name)
			return
		}
		h(w, r, v)
	}
}
