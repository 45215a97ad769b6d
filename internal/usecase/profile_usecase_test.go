package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"career-canvas/internal/domain/user"
	"career-canvas/internal/infrastructure/media"
)

func TestGetOrCreateAutoRegisters(t *testing.T) {
	var created user.User
	users := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id string) (user.User, error) {
			return user.User{}, user.ErrNotFound
		},
		createFn: func(ctx context.Context, u user.User) error {
			created = u
			return nil
		},
	}

	u := NewProfileUsecase(users, nil, nil)
	got, err := u.GetOrCreate(context.Background(), "provider_abcd1234")
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}

	if created.ID != "provider_abcd1234" {
		t.Fatalf("created.ID = %q", created.ID)
	}
	if created.Name != "User_1234" {
		t.Fatalf("created.Name = %q, want User_1234", created.Name)
	}
	if created.Email != "pending_provider_abcd1234@careercanvas.com" {
		t.Fatalf("created.Email = %q", created.Email)
	}
	if got.ID != created.ID {
		t.Fatalf("returned %q, created %q", got.ID, created.ID)
	}
}

func TestGetOrCreateReturnsExisting(t *testing.T) {
	users := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id string) (user.User, error) {
			return user.User{ID: id, Name: "Ada"}, nil
		},
		createFn: func(ctx context.Context, u user.User) error {
			t.Fatal("Create called for an existing profile")
			return nil
		},
	}

	u := NewProfileUsecase(users, nil, nil)
	got, err := u.GetOrCreate(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if got.Name != "Ada" {
		t.Fatalf("Name = %q", got.Name)
	}
}

func TestUpdateProfileStoresResumeAndText(t *testing.T) {
	var saved user.User
	users := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id string) (user.User, error) {
			return user.User{ID: id}, nil
		},
		updateFn: func(ctx context.Context, u user.User) error {
			saved = u
			return nil
		},
	}
	files := &mockStore{
		uploadFn: func(ctx context.Context, filename string, content []byte) (string, error) {
			return "https://media.example.com/resume.txt", nil
		},
	}

	body := "Seasoned Go engineer with extensive distributed systems experience."
	u := NewProfileUsecase(users, files, nil)
	out, err := u.UpdateProfile(context.Background(), "user-1", UpdateProfileInput{
		Resume: &ResumeUpload{Filename: "resume.txt", Content: []byte(body)},
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}

	if !out.ResumeUploaded || !out.ResumeTextExtracted {
		t.Fatalf("outcome = %+v", out)
	}
	if out.DegradedReason != "" {
		t.Fatalf("DegradedReason = %q, want empty", out.DegradedReason)
	}
	if saved.Resume != "https://media.example.com/resume.txt" {
		t.Fatalf("Resume = %q", saved.Resume)
	}
	if saved.ResumeText != body {
		t.Fatalf("ResumeText = %q", saved.ResumeText)
	}
}

// The update still saves when the media host is unconfigured; the outcome is
// flagged degraded instead of failing.
func TestUpdateProfileDegradesWithoutMediaHost(t *testing.T) {
	updated := false
	users := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id string) (user.User, error) {
			return user.User{ID: id}, nil
		},
		updateFn: func(ctx context.Context, u user.User) error {
			updated = true
			return nil
		},
	}
	files := &mockStore{
		uploadFn: func(ctx context.Context, filename string, content []byte) (string, error) {
			return "", media.ErrUnconfigured
		},
	}

	body := "Seasoned Go engineer with extensive distributed systems experience."
	u := NewProfileUsecase(users, files, nil)
	out, err := u.UpdateProfile(context.Background(), "user-1", UpdateProfileInput{
		Resume: &ResumeUpload{Filename: "resume.txt", Content: []byte(body)},
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}

	if !updated {
		t.Fatal("profile not saved")
	}
	if out.ResumeUploaded {
		t.Fatal("ResumeUploaded = true with unconfigured media host")
	}
	if out.DegradedReason == "" {
		t.Fatal("degraded outcome not reported")
	}
	if !out.ResumeTextExtracted {
		t.Fatal("text extraction should still run without a media host")
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	users := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id string) (user.User, error) {
			return user.User{}, user.ErrNotFound
		},
	}

	u := NewProfileUsecase(users, nil, nil)
	_, err := u.UpdateProfile(context.Background(), "ghost", UpdateProfileInput{})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("UpdateProfile() error = %v, want ErrUserNotFound", err)
	}
}

func TestParseSkills(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"json array", `["Go","Postgres","Redis"]`, []string{"Go", "Postgres", "Redis"}},
		{"comma separated", "Go, Postgres ,Redis", []string{"Go", "Postgres", "Redis"}},
		{"empty", "", []string{}},
		{"blank entries dropped", "Go,,  ,Redis", []string{"Go", "Redis"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseSkills(tc.raw)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("parseSkills(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}
