package chi

import (
	"time"

	"github.com/kailas-cloud/soartv/internal/domain/blob"
	"github.com/kailas-cloud/soartv/internal/domain/match"
	domprofile "github.com/kailas-cloud/soartv/internal/domain/profile"
	domproject "github.com/kailas-cloud/soartv/internal/domain/project"
	domupload "github.com/kailas-cloud/soartv/internal/domain/upload"
	"github.com/kailas-cloud/soartv/internal/domain/video"
)

// --- requests ---

// ProfileRequest is the body of PUT /api/profiles/{userId}.
type ProfileRequest struct {
	Name            string   `json:"name" validate:"required,max=200"`
	Roles           []string `json:"role" validate:"max=10,dive,max=64"`
	Genres          []string `json:"genres" validate:"max=20,dive,max=64"`
	Bio             string   `json:"bio"`
	ProfileImageURL string   `json:"profileImageURL" validate:"omitempty,url"`
	PortfolioLinks  []string `json:"portfolioLinks" validate:"max=20,dive,omitempty,url"`
	Location        string   `json:"location" validate:"max=200"`
}

// ProjectRequest is the body of POST /api/projects.
type ProjectRequest struct {
	ID          string     `json:"id" validate:"omitempty,max=128"`
	Title       string     `json:"title" validate:"required,max=300"`
	Genre       string     `json:"genre" validate:"max=64"`
	Tags        []string   `json:"tags" validate:"max=50,dive,max=64"`
	Description string     `json:"description"`
	PosterURL   string     `json:"posterURL"`
	VideoURL    string     `json:"videoURL"`
	UploadedBy  string     `json:"uploadedBy" validate:"required"`
	CreatedAt   *time.Time `json:"createdAt"`
	Visibility  string     `json:"visibility" validate:"omitempty,oneof=public private"`
}

// UploadedProjectRequest is the body of PUT /api/projects/upload.
type UploadedProjectRequest struct {
	VideoURL    string `json:"videoURL" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	UserID      string `json:"userId" validate:"required"`
}

// --- responses ---

// VideoResponse is a catalog entry.
type VideoResponse struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	ThumbnailURL string  `json:"thumbnailUrl"`
	VideoURL     string  `json:"videoUrl"`
	Duration     string  `json:"duration"`
	Views        string  `json:"views"`
	Category     string  `json:"category"`
	Rating       float64 `json:"rating"`
	Year         int     `json:"year"`
	Type         string  `json:"type"`
}

// ProfileResponse is a user profile.
type ProfileResponse struct {
	UID             string   `json:"uid"`
	Name            string   `json:"name"`
	Roles           []string `json:"role"`
	Genres          []string `json:"genres"`
	Bio             string   `json:"bio"`
	ProfileImageURL string   `json:"profileImageURL,omitempty"`
	PortfolioLinks  []string `json:"portfolioLinks"`
	Location        string   `json:"location,omitempty"`
}

// ProjectResponse is a film project.
type ProjectResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	PosterURL   string   `json:"posterURL,omitempty"`
	VideoURL    string   `json:"videoURL,omitempty"`
	UploadedBy  string   `json:"uploadedBy"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	Visibility  string   `json:"visibility"`
}

// UploadedProjectResponse is a project recorded by the fallback store.
type UploadedProjectResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	UploadedBy  string   `json:"uploadedBy"`
	VideoURL    string   `json:"videoURL"`
	CreatedAt   string   `json:"createdAt"`
	Visibility  string   `json:"visibility"`
	Tags        []string `json:"tags"`
	Cast        []string `json:"cast"`
	Crew        []string `json:"crew"`
	Source      string   `json:"source"`
}

// UploadSavedResponse is the body of a successful PUT /api/projects/upload.
type UploadSavedResponse struct {
	Success bool                    `json:"success"`
	Project UploadedProjectResponse `json:"project"`
}

// UploadURLResponse is the body of POST /api/objects/upload.
type UploadURLResponse struct {
	UploadURL  string `json:"uploadURL"`
	ObjectPath string `json:"objectPath"`
}

// UploaderResponse identifies a project owner.
type UploaderResponse struct {
	UID             string `json:"uid,omitempty"`
	Name            string `json:"name"`
	Role            string `json:"role"`
	ProfileImageURL string `json:"profileImageURL,omitempty"`
}

// UserRecommendation is a suggested collaborator.
type UserRecommendation struct {
	ProfileResponse
	MatchScore   int               `json:"matchScore"`
	MatchReasons []string          `json:"matchReasons"`
	Projects     []ProjectResponse `json:"projects"`
}

// ProjectRecommendation is a suggested project.
type ProjectRecommendation struct {
	ProjectResponse
	MatchScore   int              `json:"matchScore"`
	MatchReasons []string         `json:"matchReasons"`
	UploaderData UploaderResponse `json:"uploaderData"`
}

// RecommendationsResponse is the body of GET /api/recommendations/{userId}.
type RecommendationsResponse struct {
	Users    []UserRecommendation    `json:"users"`
	Projects []ProjectRecommendation `json:"projects"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// --- converters ---

func videoToResponse(v video.Video) VideoResponse {
	return VideoResponse{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		ThumbnailURL: v.ThumbnailURL,
		VideoURL:     v.VideoURL,
		Duration:     v.Duration,
		Views:        v.Views,
		Category:     v.Category,
		Rating:       v.Rating,
		Year:         v.Year,
		Type:         string(v.Type),
	}
}

func videosToResponse(vs []video.Video) []VideoResponse {
	out := make([]VideoResponse, len(vs))
	for i, v := range vs {
		out[i] = videoToResponse(v)
	}
	return out
}

func profileFromRequest(req ProfileRequest) domprofile.Fields {
	return domprofile.Fields{
		Name:            req.Name,
		Roles:           req.Roles,
		Genres:          req.Genres,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
		PortfolioLinks:  req.PortfolioLinks,
		Location:        req.Location,
	}
}

func profileToResponse(p *domprofile.Profile) ProfileResponse {
	return ProfileResponse{
		UID:             p.ID(),
		Name:            p.Name(),
		Roles:           nonNil(p.Roles()),
		Genres:          nonNil(p.Genres()),
		Bio:             p.Bio(),
		ProfileImageURL: p.ProfileImageURL(),
		PortfolioLinks:  nonNil(p.PortfolioLinks()),
		Location:        p.Location(),
	}
}

func projectFromRequest(req ProjectRequest) domproject.Fields {
	f := domproject.Fields{
		Title:       req.Title,
		Genre:       req.Genre,
		Tags:        req.Tags,
		Description: req.Description,
		PosterURL:   req.PosterURL,
		VideoURL:    req.VideoURL,
		OwnerID:     req.UploadedBy,
		Visibility:  domproject.Visibility(req.Visibility),
	}
	if req.CreatedAt != nil {
		f.CreatedAt = req.CreatedAt.UTC()
	}
	return f
}

func projectToResponse(p *domproject.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:          p.ID(),
		Title:       p.Title(),
		Genre:       p.Genre(),
		Tags:        nonNil(p.Tags()),
		Description: p.Description(),
		PosterURL:   p.PosterURL(),
		VideoURL:    p.VideoURL(),
		UploadedBy:  p.OwnerID(),
		Visibility:  string(p.Visibility()),
	}
	if !p.CreatedAt().IsZero() {
		resp.CreatedAt = p.CreatedAt().UTC().Format(time.RFC3339Nano)
	}
	return resp
}

func projectsToResponse(ps []domproject.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(ps))
	for i := range ps {
		out[i] = projectToResponse(&ps[i])
	}
	return out
}

func uploadToResponse(rec domupload.Record) UploadedProjectResponse {
	return UploadedProjectResponse{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		UploadedBy:  rec.UploadedBy,
		VideoURL:    rec.VideoURL,
		CreatedAt:   rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		Visibility:  rec.Visibility,
		Tags:        nonNil(rec.Tags),
		Cast:        nonNil(rec.Cast),
		Crew:        nonNil(rec.Crew),
		Source:      rec.Source,
	}
}

func uploadURLToResponse(up blob.Upload) UploadURLResponse {
	return UploadURLResponse{UploadURL: up.URL, ObjectPath: up.Path}
}

func recommendationsToResponse(recs match.Recommendations) RecommendationsResponse {
	resp := RecommendationsResponse{
		Users:    make([]UserRecommendation, len(recs.Users)),
		Projects: make([]ProjectRecommendation, len(recs.Projects)),
	}
	for i := range recs.Users {
		u := &recs.Users[i]
		resp.Users[i] = UserRecommendation{
			ProfileResponse: profileToResponse(&u.Profile),
			MatchScore:      u.Score,
			MatchReasons:    nonNil(u.Reasons),
			Projects:        projectsToResponse(u.Projects),
		}
	}
	for i := range recs.Projects {
		p := &recs.Projects[i]
		resp.Projects[i] = ProjectRecommendation{
			ProjectResponse: projectToResponse(&p.Project),
			MatchScore:      p.Score,
			MatchReasons:    nonNil(p.Reasons),
			UploaderData: UploaderResponse{
				UID:             p.Uploader.ID,
				Name:            p.Uploader.Name,
				Role:            p.Uploader.Role,
				ProfileImageURL: p.Uploader.ProfileImageURL,
			},
		}
	}
	return resp
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
