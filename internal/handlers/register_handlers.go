package handlers

import (
	"log"

	portsrepo "github.com/SscSPs/user_account_service/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/user_account_service/internal/core/ports/services"
	"github.com/SscSPs/user_account_service/internal/middleware"
	"github.com/SscSPs/user_account_service/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up the /api/v2/user surface, wiring the per-route gates:
// rate limiting on the public endpoints, the token gate plus session attachment
// on the protected ones.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	repos *portsrepo.RepositoryContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		log.Printf("Warning: Invalid RATE_LIMIT ('%s'). Defaulting to 100-M.\n", cfg.RateLimit)
		rate, _ = limiter.NewRateFromFormatted("100-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	rateLimit := middleware.RateLimit(ipLimiter)
	tokenGate := middleware.AuthMiddleware(cfg.AuthCookieName, services.Token)
	sessionGate := middleware.SessionMiddleware(repos.Session)

	authH := newAuthHandler(services.Auth, cfg)
	userH := newUserHandler(services.Auth, services.User)
	adminH := newAdminHandler(services.Moderation)

	user := r.Group("/api/v2/user")
	{
		user.POST("/register", rateLimit, authH.register)
		user.POST("/login", rateLimit, authH.login)
		user.POST("/logout", tokenGate, sessionGate, authH.logout)

		user.POST("/verify-email", rateLimit, userH.verifyEmail)
		user.GET("/verify-token/:token", userH.verifyToken)
		user.GET("/get-all-usernames", rateLimit, userH.getAllUsernames)
		user.GET("/get-user/:id", rateLimit, userH.getUser)

		user.DELETE("/delete-user/:id", rateLimit, tokenGate, sessionGate, adminH.deleteUser)
		user.POST("/ban-user/:id", tokenGate, rateLimit, sessionGate, adminH.banUser)
		user.POST("/unban-user/:id", rateLimit, tokenGate, sessionGate, adminH.unbanUser)
	}
}
