package service

import (
	"github.com/wearshop/investmart/internal/config"
	"github.com/wearshop/investmart/internal/mailer"
	"github.com/wearshop/investmart/internal/payments"
	"github.com/wearshop/investmart/internal/pg"
	"github.com/wearshop/investmart/internal/repo"
	"github.com/wearshop/investmart/internal/service/authservice"
	"github.com/wearshop/investmart/internal/service/investmentservice"
	"github.com/wearshop/investmart/internal/service/ledgerservice"
	"github.com/wearshop/investmart/internal/service/newsletterservice"
	"github.com/wearshop/investmart/internal/service/profileservice"
	"github.com/wearshop/investmart/internal/service/projectservice"
	"github.com/wearshop/investmart/internal/service/withdrawalservice"
	pkgauth "github.com/wearshop/investmart/pkg/auth"
	"github.com/wearshop/investmart/pkg/clients"
)

type Services struct {
	AuthService       *authservice.Service
	ProfileService    *profileservice.Service
	ProjectService    *projectservice.Service
	LedgerService     *ledgerservice.Service
	InvestmentService *investmentservice.Service
	WithdrawalService *withdrawalservice.Service
	NewsletterService *newsletterservice.Service
	Mailer            *mailer.Mailer
	Stripe            *payments.StripeClient
}

func New(cfg *config.Config, repos *repo.Repositories, txManager pg.TXManager) *Services {
	httpClient := clients.NewHTTPClient()

	stripe := payments.NewStripeClient(cfg, httpClient)
	paypal := payments.NewPayPalClient(cfg, httpClient)
	mail := mailer.New(cfg, httpClient)

	authService := authservice.New(repos.ProfileRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})
	profileService := profileservice.New(repos.ProfileRepo)
	projectService := projectservice.New(repos.ProjectRepo)
	ledgerService := ledgerservice.New(repos.ProfileRepo)
	investmentService := investmentservice.New(repos.InvestmentRepo, repos.ProjectRepo, ledgerService, txManager, stripe, paypal)
	withdrawalService := withdrawalservice.New(repos.WithdrawalRepo, repos.ProfileRepo, ledgerService, txManager, mail)
	newsletterService := newsletterservice.New(repos.NewsletterRepo)

	return &Services{
		AuthService:       authService,
		ProfileService:    profileService,
		ProjectService:    projectService,
		LedgerService:     ledgerService,
		InvestmentService: investmentService,
		WithdrawalService: withdrawalService,
		NewsletterService: newsletterService,
		Mailer:            mail,
		Stripe:            stripe,
	}
}
