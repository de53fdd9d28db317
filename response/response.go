package response

import "github.com/openhaul/loadboard/models"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoadResponse struct {
	Message string      `json:"message"`
	Load    models.Load `json:"load"`
}

type DocumentResponse struct {
	Message  string              `json:"message"`
	Document models.LoadDocument `json:"document"`
}

// SchemaRevision is one applied migration as reported by the admin
// schema endpoint.
type SchemaRevision struct {
	Revision  string `json:"revision"`
	AppliedAt string `json:"applied_at"`
}

type SchemaStatusResponse struct {
	Head     string           `json:"head"`
	Applied  []SchemaRevision `json:"applied"`
	UpToDate bool             `json:"up_to_date"`
}
