package services

import (
	"github.com/openhaul/loadboard/events"
	"github.com/openhaul/loadboard/repositories"
)

type Services struct {
	Audit    *AuditService
	Document *DocumentService
	Load     *LoadService
	User     *UserService
}

func New(repos *repositories.Repos) *Services {
	return &Services{
		Audit:    NewAuditService(repos),
		Document: NewDocumentService(repos),
		Load:     NewLoadService(repos, events.Board),
		User:     NewUserService(repos),
	}
}
