package repo

import (
	"github.com/wearshop/investmart/internal/pg"
	investmentrepo "github.com/wearshop/investmart/internal/repo/investment-repo"
	newsletterrepo "github.com/wearshop/investmart/internal/repo/newsletter-repo"
	profilerepo "github.com/wearshop/investmart/internal/repo/profile-repo"
	projectrepo "github.com/wearshop/investmart/internal/repo/project-repo"
	withdrawalrepo "github.com/wearshop/investmart/internal/repo/withdrawal-repo"
)

// Repositories holds the concrete repositories. Each service narrows them to
// its own consumer interface at wiring time.
type Repositories struct {
	ProfileRepo    *profilerepo.Repository
	ProjectRepo    *projectrepo.Repository
	InvestmentRepo *investmentrepo.Repository
	WithdrawalRepo *withdrawalrepo.Repository
	NewsletterRepo *newsletterrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		ProfileRepo:    profilerepo.New(conn),
		ProjectRepo:    projectrepo.New(conn),
		InvestmentRepo: investmentrepo.New(conn),
		WithdrawalRepo: withdrawalrepo.New(conn),
		NewsletterRepo: newsletterrepo.New(conn),
	}
}
