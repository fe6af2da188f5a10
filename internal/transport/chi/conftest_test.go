package chi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	gochi "github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/kailas-cloud/soartv/internal/bounded"
	"github.com/kailas-cloud/soartv/internal/domain"
	"github.com/kailas-cloud/soartv/internal/domain/blob"
	domprofile "github.com/kailas-cloud/soartv/internal/domain/profile"
	domproject "github.com/kailas-cloud/soartv/internal/domain/project"
	"github.com/kailas-cloud/soartv/internal/repository/catalog"
	"github.com/kailas-cloud/soartv/internal/repository/filestore"
	catalogUC "github.com/kailas-cloud/soartv/internal/usecase/catalog"
	healthUC "github.com/kailas-cloud/soartv/internal/usecase/health"
	objectUC "github.com/kailas-cloud/soartv/internal/usecase/object"
	profileUC "github.com/kailas-cloud/soartv/internal/usecase/profile"
	projectUC "github.com/kailas-cloud/soartv/internal/usecase/project"
	recommendationUC "github.com/kailas-cloud/soartv/internal/usecase/recommendation"
	uploadUC "github.com/kailas-cloud/soartv/internal/usecase/upload"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// --- in-memory stores ---

type memProfiles struct {
	mu sync.Mutex
	m  map[string]domprofile.Profile
}

func (s *memProfiles) Get(_ context.Context, id string) (domprofile.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.m[id]
	if !ok {
		return domprofile.Profile{}, domain.ErrProfileNotFound
	}
	return p, nil
}

func (s *memProfiles) List(_ context.Context) ([]domprofile.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domprofile.Profile, 0, len(s.m))
	for _, p := range s.m {
		out = append(out, p)
	}
	return out, nil
}

func (s *memProfiles) Save(_ context.Context, p domprofile.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[p.ID()] = p
	return nil
}

type memProjects struct {
	mu sync.Mutex
	m  map[string]domproject.Project
}

func (s *memProjects) Get(_ context.Context, id string) (domproject.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.m[id]
	if !ok {
		return domproject.Project{}, domain.ErrProjectNotFound
	}
	return p, nil
}

func (s *memProjects) Save(_ context.Context, p domproject.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[p.ID()] = p
	return nil
}

func (s *memProjects) ListByOwner(_ context.Context, ownerID string) ([]domproject.Project, error) {
	return s.filter(func(p *domproject.Project) bool { return p.OwnerID() == ownerID }), nil
}

func (s *memProjects) ListRecent(_ context.Context, limit int) ([]domproject.Project, error) {
	out := s.filter(func(p *domproject.Project) bool { return p.IsPublic() })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memProjects) ListByTags(_ context.Context, tags []string) ([]domproject.Project, error) {
	return s.filter(func(p *domproject.Project) bool {
		if !p.IsPublic() {
			return false
		}
		for _, t := range tags {
			if p.HasTag(t) {
				return true
			}
		}
		return false
	}), nil
}

func (s *memProjects) filter(keep func(*domproject.Project) bool) []domproject.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domproject.Project{}
	for id := range s.m {
		p := s.m[id]
		if keep(&p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().After(out[j].CreatedAt()) })
	return out
}

type stubBucket struct {
	objects map[string]string
}

func (b *stubBucket) SignedPutURL(_ context.Context, object string, _ time.Duration) (string, error) {
	return "https://storage.example/" + object + "?X-Goog-Signature=abc", nil
}

func (b *stubBucket) Open(_ context.Context, object string) (blob.Object, error) {
	body, ok := b.objects[object]
	if !ok {
		return blob.Object{}, domain.ErrObjectNotFound
	}
	return blob.Object{
		Name:        object,
		ContentType: "video/mp4",
		Size:        int64(len(body)),
		Body:        io.NopCloser(strings.NewReader(body)),
	}, nil
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

// --- fixture ---

type fixture struct {
	handler  http.Handler
	profiles *memProfiles
	projects *memProjects
	bucket   *stubBucket
}

type fixtureOption func(*fixtureConfig)

type fixtureConfig struct {
	bucket      objectUC.Bucket
	apiKeys     []string
	uploadsFile string
}

func withoutBucket() fixtureOption {
	return func(c *fixtureConfig) { c.bucket = nil }
}

func withUploadsFile(path string) fixtureOption {
	return func(c *fixtureConfig) { c.uploadsFile = path }
}

func withAPIKeys(keys ...string) fixtureOption {
	return func(c *fixtureConfig) { c.apiKeys = keys }
}

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()

	f := &fixture{
		profiles: &memProfiles{m: map[string]domprofile.Profile{}},
		projects: &memProjects{m: map[string]domproject.Project{}},
		bucket:   &stubBucket{objects: map[string]string{"uploads/clip": "video-bytes"}},
	}
	cfg := fixtureConfig{bucket: f.bucket, uploadsFile: filepath.Join(t.TempDir(), "projects.json")}
	for _, o := range opts {
		o(&cfg)
	}

	clock := func() time.Time { return fixedNow }
	guard := bounded.NewGuard(bounded.Settings{Name: t.Name(), FailureThreshold: 100}, nil)

	srv := NewServer(Services{
		Catalog:         catalogUC.New(catalog.New()),
		Objects:         objectUC.New(cfg.bucket, "uploads", time.Minute),
		Uploads:         uploadUC.New(filestore.Open(cfg.uploadsFile, nil), clock),
		Profiles:        profileUC.New(f.profiles),
		Projects:        projectUC.New(f.projects, clock),
		Recommendations: recommendationUC.New(f.profiles, f.projects, guard, clock, recommendationUC.Options{}),
		Health:          healthUC.New(okPinger{}, nil, guard),
	}, zap.NewNop())

	r := gochi.NewRouter()
	r.Use(BearerAuthMiddleware(cfg.apiKeys))
	srv.Mount(r)
	f.handler = r
	return f
}

func (f *fixture) do(t *testing.T, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader = http.NoBody
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rr.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	return v
}
