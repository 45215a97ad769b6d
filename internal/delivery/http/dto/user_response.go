package dto

import "career-canvas/internal/domain/user"

type UserResponse struct {
	ID         string   `json:"_id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Image      string   `json:"image,omitempty"`
	Headline   string   `json:"headline,omitempty"`
	Portfolio  string   `json:"portfolio,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	Location   string   `json:"location,omitempty"`
	Skills     []string `json:"skills"`
	Resume     string   `json:"resume,omitempty"`
	ResumeText string   `json:"resumeText,omitempty"`
}

type ProfileUpdateResponse struct {
	User                UserResponse `json:"user"`
	ResumeUploaded      bool         `json:"resumeUploaded"`
	ResumeTextExtracted bool         `json:"resumeTextExtracted"`
	Warning             string       `json:"warning,omitempty"`
}

func NewUserResponse(u user.User) UserResponse {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Image:      u.Image,
		Headline:   u.Headline,
		Portfolio:  u.Portfolio,
		Phone:      u.Phone,
		Location:   u.Location,
		Skills:     skills,
		Resume:     u.Resume,
		ResumeText: u.ResumeText,
	}
}
