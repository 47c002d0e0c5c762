package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/wearshop/investmart/docs"
	adminhandlers "github.com/wearshop/investmart/internal/handlers/admin"
	authhandlers "github.com/wearshop/investmart/internal/handlers/auth"
	balancehandlers "github.com/wearshop/investmart/internal/handlers/balance"
	investmenthandlers "github.com/wearshop/investmart/internal/handlers/investments"
	newsletterhandlers "github.com/wearshop/investmart/internal/handlers/newsletter"
	projecthandlers "github.com/wearshop/investmart/internal/handlers/projects"
	withdrawalhandlers "github.com/wearshop/investmart/internal/handlers/withdrawals"
	"github.com/wearshop/investmart/internal/service"
	"github.com/wearshop/investmart/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ProjectHandler interface {
	GetInvestable(w http.ResponseWriter, r *http.Request)
	GetActive(w http.ResponseWriter, r *http.Request)
	GetProject(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type InvestmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetInvestments(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type NewsletterHandler interface {
	GetPublished(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetUsers(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
	AdjustBalance(w http.ResponseWriter, r *http.Request)
	CreateProject(w http.ResponseWriter, r *http.Request)
	UpdateProject(w http.ResponseWriter, r *http.Request)
	DeleteProject(w http.ResponseWriter, r *http.Request)
	GetInvestments(w http.ResponseWriter, r *http.Request)
	CreateInvestment(w http.ResponseWriter, r *http.Request)
	CancelInvestment(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	CancelWithdrawal(w http.ResponseWriter, r *http.Request)
	CompleteWithdrawal(w http.ResponseWriter, r *http.Request)
	SendEmail(w http.ResponseWriter, r *http.Request)
	GetArticles(w http.ResponseWriter, r *http.Request)
	CreateArticle(w http.ResponseWriter, r *http.Request)
	UpdateArticle(w http.ResponseWriter, r *http.Request)
	PublishArticle(w http.ResponseWriter, r *http.Request)
	DeleteArticle(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	ProjectHandler    ProjectHandler
	BalanceHandler    BalanceHandler
	InvestmentHandler InvestmentHandler
	WithdrawalHandler WithdrawalHandler
	NewsletterHandler NewsletterHandler
	AdminHandler      AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		ProjectHandler:    projecthandlers.New(s.ProjectService),
		BalanceHandler:    balancehandlers.New(s.LedgerService),
		InvestmentHandler: investmenthandlers.New(s.InvestmentService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
		NewsletterHandler: newsletterhandlers.New(s.NewsletterService),
		AdminHandler: adminhandlers.New(
			s.ProfileService,
			s.ProjectService,
			s.InvestmentService,
			s.WithdrawalService,
			s.LedgerService,
			s.NewsletterService,
			s.Mailer,
		),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api/projects", func(r chi.Router) {
		r.Get("/", h.ProjectHandler.GetInvestable)
		r.Get("/all", h.ProjectHandler.GetActive)
		r.Get("/{id}", h.ProjectHandler.GetProject)
	})
	r.Get("/api/newsletter", h.NewsletterHandler.GetPublished)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/balance", h.BalanceHandler.GetBalance)
			r.Route("/investments", func(r chi.Router) {
				r.Post("/", h.InvestmentHandler.Create)
				r.Get("/", h.InvestmentHandler.GetInvestments)
			})
			r.Route("/withdrawals", func(r chi.Router) {
				r.Post("/", h.WithdrawalHandler.Request)
				r.Get("/", h.WithdrawalHandler.GetWithdrawals)
			})
		})
	})

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.AdminHandler.GetUsers)
			r.Put("/{id}", h.AdminHandler.UpdateUser)
			r.Delete("/{id}", h.AdminHandler.DeleteUser)
		})
		r.Post("/adjustments", h.AdminHandler.AdjustBalance)
		r.Route("/projects", func(r chi.Router) {
			r.Post("/", h.AdminHandler.CreateProject)
			r.Put("/{id}", h.AdminHandler.UpdateProject)
			r.Delete("/{id}", h.AdminHandler.DeleteProject)
		})
		r.Route("/investments", func(r chi.Router) {
			r.Get("/", h.AdminHandler.GetInvestments)
			r.Post("/", h.AdminHandler.CreateInvestment)
			r.Post("/{id}/cancel", h.AdminHandler.CancelInvestment)
		})
		r.Route("/withdrawals", func(r chi.Router) {
			r.Get("/", h.AdminHandler.GetWithdrawals)
			r.Post("/{id}/cancel", h.AdminHandler.CancelWithdrawal)
			r.Post("/{id}/complete", h.AdminHandler.CompleteWithdrawal)
		})
		r.Post("/emails", h.AdminHandler.SendEmail)
		r.Route("/newsletter", func(r chi.Router) {
			r.Get("/", h.AdminHandler.GetArticles)
			r.Post("/", h.AdminHandler.CreateArticle)
			r.Put("/{id}", h.AdminHandler.UpdateArticle)
			r.Post("/{id}/publish", h.AdminHandler.PublishArticle)
			r.Delete("/{id}", h.AdminHandler.DeleteArticle)
		})
	})

	return r
}
