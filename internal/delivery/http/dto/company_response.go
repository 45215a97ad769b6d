package dto

import "career-canvas/internal/domain/company"

type CompanyAuthResponse struct {
	Company CompanySummary `json:"company"`
	Token   string         `json:"token"`
}

func NewCompanyAuthResponse(c company.Company, token string) CompanyAuthResponse {
	return CompanyAuthResponse{Company: NewCompanySummary(c), Token: token}
}
