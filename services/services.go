package services

import (
	"log/slog"

	"github.com/blogem/linkedin-agent/authenticator"
	"github.com/blogem/linkedin-agent/correlator"
	"github.com/blogem/linkedin-agent/generator"
	"github.com/blogem/linkedin-agent/publisher"
	"github.com/blogem/linkedin-agent/repositories"
)

// Dependencies groups the collaborators the services are built from
type Dependencies struct {
	Repos           *repositories.Repositories
	Providers       *authenticator.Registry
	Correlator      *correlator.Correlator
	Generator       generator.Generator
	Publisher       publisher.Publisher
	FrontendURL     string
	PersistIdentity bool
	Logger          *slog.Logger
}

// Services holds all service instances
type Services struct {
	Auth  AuthService
	Posts PostService
	Users UserService
}

// NewServices creates and initializes all service instances
func NewServices(deps Dependencies) *Services {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Services{
		Auth: NewAuthService(AuthOptions{
			Providers:       deps.Providers,
			Correlator:      deps.Correlator,
			Users:           deps.Repos.Users,
			FrontendURL:     deps.FrontendURL,
			PersistIdentity: deps.PersistIdentity,
			Logger:          logger,
		}),
		Posts: NewPostService(deps.Repos.Users, deps.Generator, deps.Publisher, logger),
		Users: NewUserService(deps.Repos.Users),
	}
}
