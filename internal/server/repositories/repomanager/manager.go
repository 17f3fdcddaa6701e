package repomanager

import (
	"context"
	"database/sql"

	"github.com/paharpur/siteadmin/internal/dbx"
	"github.com/paharpur/siteadmin/internal/server/repositories/content"
	"github.com/paharpur/siteadmin/internal/server/repositories/enquiries"
	"github.com/paharpur/siteadmin/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Content(db dbx.DBTX) content.Repository
	Enquiries(db dbx.DBTX) enquiries.Repository
}
