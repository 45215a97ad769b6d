package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"career-canvas/internal/domain/user"
	"career-canvas/internal/infrastructure/media"
	"career-canvas/internal/ingestion"
)

const placeholderImage = "https://via.placeholder.com/150"

// ResumeUpload is the optional file attached to a profile update.
type ResumeUpload struct {
	Filename string
	Content  []byte
}

type UpdateProfileInput struct {
	Headline  *string
	Portfolio *string
	Phone     *string
	Location  *string
	// SkillsRaw is either a JSON string array or a comma-separated list.
	SkillsRaw *string
	Resume    *ResumeUpload
}

// ProfileUpdateOutcome distinguishes full success from the degraded path
// where the profile saved but the résumé text could not be extracted.
type ProfileUpdateOutcome struct {
	User                user.User
	ResumeUploaded      bool
	ResumeTextExtracted bool
	DegradedReason      string
}

type ProfileUsecase interface {
	GetOrCreate(ctx context.Context, userID string) (user.User, error)
	UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (ProfileUpdateOutcome, error)
}

type Profiles struct {
	users  user.Repository
	files  media.Store
	logger *log.Logger
}

func NewProfileUsecase(users user.Repository, files media.Store, logger *log.Logger) *Profiles {
	return &Profiles{users: users, files: files, logger: logger}
}

// GetOrCreate auto-registers a profile for an identity-provider id seen for
// the first time.
func (u *Profiles) GetOrCreate(ctx context.Context, userID string) (user.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err == nil {
		return usr, nil
	}
	if !errors.Is(err, user.ErrNotFound) {
		return user.User{}, ErrInternal
	}

	suffix := userID
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	usr = user.User{
		ID:     userID,
		Name:   "User_" + suffix,
		Email:  fmt.Sprintf("pending_%s@careercanvas.com", userID),
		Image:  placeholderImage,
		Skills: []string{},
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return user.User{}, ErrInternal
	}
	if u.logger != nil {
		u.logger.Printf("profile | auto-registered user %s", userID)
	}
	return usr, nil
}

func (u *Profiles) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (ProfileUpdateOutcome, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ProfileUpdateOutcome{}, ErrUserNotFound
		}
		return ProfileUpdateOutcome{}, ErrInternal
	}

	out := ProfileUpdateOutcome{}

	if in.Resume != nil && len(in.Resume.Content) > 0 {
		url, err := u.files.Upload(ctx, in.Resume.Filename, in.Resume.Content)
		switch {
		case err == nil:
			usr.Resume = url
			out.ResumeUploaded = true
		case errors.Is(err, media.ErrUnconfigured):
			out.DegradedReason = "media host unconfigured, resume file not stored"
		default:
			return ProfileUpdateOutcome{}, ErrInternal
		}

		// extraction is best-effort: failure degrades, it never fails the update
		text, err := ingestion.ExtractText(in.Resume.Filename, in.Resume.Content)
		if err != nil {
			if u.logger != nil {
				u.logger.Printf("profile | resume extraction failed for %s: %v", userID, err)
			}
			if out.DegradedReason == "" {
				out.DegradedReason = "resume text extraction failed"
			}
		} else {
			usr.ResumeText = text
			out.ResumeTextExtracted = true
		}
	}

	if in.Headline != nil {
		usr.Headline = strings.TrimSpace(*in.Headline)
	}
	if in.Portfolio != nil {
		usr.Portfolio = strings.TrimSpace(*in.Portfolio)
	}
	if in.Phone != nil {
		usr.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Location != nil {
		usr.Location = strings.TrimSpace(*in.Location)
	}
	if in.SkillsRaw != nil {
		usr.Skills = parseSkills(*in.SkillsRaw)
	}

	if err := u.users.Update(ctx, usr); err != nil {
		return ProfileUpdateOutcome{}, ErrInternal
	}

	out.User = usr
	return out, nil
}

// parseSkills accepts a JSON string array or a comma-separated list.
func parseSkills(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
		return trimAll(parsed)
	}
	return trimAll(strings.Split(raw, ","))
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
