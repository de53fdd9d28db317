package services

import (
	"github.com/openhaul/loadboard/models"
	"github.com/openhaul/loadboard/repositories"
)

type AuditService struct {
	repos *repositories.Repos
}

func NewAuditService(repos *repositories.Repos) *AuditService {
	return &AuditService{repos: repos}
}

func (s *AuditService) GetAuditLogs(params repositories.AuditQueryParams) ([]models.AuditLog, error) {
	if params.Limit <= 0 || params.Limit > 500 {
		params.Limit = 100
	}
	return s.repos.Audit.GetAuditLogs(params)
}
