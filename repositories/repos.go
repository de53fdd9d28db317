package repositories

// Repos bundles the per-entity repositories so services can take one
// dependency and tests can swap in mocks.
type Repos struct {
	User     UserRepo
	Load     LoadRepo
	Document DocumentRepo
	Audit    AuditRepo
}

func NewDBRepos() *Repos {
	return &Repos{
		User:     &DBUserRepo{},
		Load:     &DBLoadRepo{},
		Document: &DBDocumentRepo{},
		Audit:    &DBAuditRepo{},
	}
}
