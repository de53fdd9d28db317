package handlers

import (
	"github.com/openhaul/loadboard/services"
)

type Handlers struct {
	Admin    *AdminHandler
	Audit    *AuditHandler
	Auth     *AuthHandler
	Document *DocumentHandler
	Load     *LoadHandler
	User     *UserHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		Admin:    NewAdminHandler(),
		Audit:    NewAuditHandler(svc.Audit),
		Auth:     NewAuthHandler(svc.User),
		Document: NewDocumentHandler(svc.Document),
		Load:     NewLoadHandler(svc.Load),
		User:     NewUserHandler(svc.User),
	}
}
