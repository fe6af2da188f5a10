package object

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/kailas-cloud/soartv/internal/domain"
	"github.com/kailas-cloud/soartv/internal/domain/blob"
)

// --- Mocks ---

type mockBucket struct {
	signedName string
	signedTTL  time.Duration
	signErr    error
	objects    map[string]string
}

func (m *mockBucket) SignedPutURL(_ context.Context, object string, ttl time.Duration) (string, error) {
	if m.signErr != nil {
		return "", m.signErr
	}
	m.signedName, m.signedTTL = object, ttl
	return "https://storage.example/" + object + "?sig=1", nil
}

func (m *mockBucket) Open(_ context.Context, object string) (blob.Object, error) {
	body, ok := m.objects[object]
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

// --- Tests ---

func TestIssueUpload(t *testing.T) {
	b := &mockBucket{}
	svc := New(b, "uploads", 0)

	up, err := svc.IssueUpload(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(b.signedName, "uploads/") {
		t.Errorf("expected name under uploads/, got %q", b.signedName)
	}
	if b.signedTTL != DefaultUploadTTL {
		t.Errorf("expected default ttl, got %v", b.signedTTL)
	}
	if up.Path != "/objects/"+b.signedName {
		t.Errorf("unexpected serving path %q", up.Path)
	}
	if !strings.Contains(up.URL, b.signedName) {
		t.Errorf("unexpected upload url %q", up.URL)
	}
}

func TestIssueUpload_UniqueNames(t *testing.T) {
	b := &mockBucket{}
	svc := New(b, "uploads", time.Minute)

	first, _ := svc.IssueUpload(context.Background())
	second, _ := svc.IssueUpload(context.Background())
	if first.Path == second.Path {
		t.Error("expected distinct object names")
	}
}

func TestIssueUpload_SignError(t *testing.T) {
	svc := New(&mockBucket{signErr: errors.New("no signer")}, "uploads", time.Minute)
	if _, err := svc.IssueUpload(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestDisabled(t *testing.T) {
	svc := New(nil, "uploads", time.Minute)
	if svc.Enabled() {
		t.Error("expected disabled service")
	}
	if _, err := svc.IssueUpload(context.Background()); !errors.Is(err, domain.ErrStorageDisabled) {
		t.Errorf("expected ErrStorageDisabled, got %v", err)
	}
	if _, err := svc.Open(context.Background(), "/objects/x"); !errors.Is(err, domain.ErrStorageDisabled) {
		t.Errorf("expected ErrStorageDisabled, got %v", err)
	}
}

func TestOpen(t *testing.T) {
	svc := New(&mockBucket{objects: map[string]string{"uploads/a": "bytes"}}, "uploads", time.Minute)

	obj, err := svc.Open(context.Background(), "/objects/uploads/a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer obj.Body.Close()
	data, _ := io.ReadAll(obj.Body)
	if string(data) != "bytes" || obj.Size != 5 {
		t.Errorf("unexpected object: %q size %d", data, obj.Size)
	}
}

func TestOpen_NotFound(t *testing.T) {
	svc := New(&mockBucket{objects: map[string]string{}}, "uploads", time.Minute)

	for _, p := range []string{"/objects/uploads/missing", "/objects/../etc/passwd", "/elsewhere/x"} {
		if _, err := svc.Open(context.Background(), p); !errors.Is(err, domain.ErrObjectNotFound) {
			t.Errorf("%s: expected ErrObjectNotFound, got %v", p, err)
		}
	}
}
