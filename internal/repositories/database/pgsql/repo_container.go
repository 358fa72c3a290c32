package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/reymancasio5-bit/accountingproject/internal/core/ports/repositories"
)

// RepositoryProvider bundles the concrete repositories handed to the service
// layer.
type RepositoryProvider struct {
	AccountRepo portsrepo.AccountRepositoryFacade
	JournalRepo portsrepo.JournalRepositoryFacade
}

func NewRepositoryProvider(dbPool *pgxpool.Pool) RepositoryProvider {
	return RepositoryProvider{
		AccountRepo: newPgxAccountRepository(dbPool),
		JournalRepo: newPgxJournalRepository(dbPool),
	}
}
