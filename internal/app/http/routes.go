package routes

import (
	adminapi "github.com/eklipse1999/dating-platform-sub000/internal/api/admin"
	authapi "github.com/eklipse1999/dating-platform-sub000/internal/api/auth"
	"github.com/eklipse1999/dating-platform-sub000/internal/api/billing"
	discoverapi "github.com/eklipse1999/dating-platform-sub000/internal/api/discover"
	eventsapi "github.com/eklipse1999/dating-platform-sub000/internal/api/events"
	messagesapi "github.com/eklipse1999/dating-platform-sub000/internal/api/messages"
	stripewebhooks "github.com/eklipse1999/dating-platform-sub000/internal/api/stripewebhook"
	"github.com/eklipse1999/dating-platform-sub000/internal/api/users"
	"github.com/eklipse1999/dating-platform-sub000/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ✅ Apply input sanitization to public routes only
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/point-packs", billing.ListPointPacks)
	public.GET("/verify", users.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.PUT("/me/profile", users.UpdateProfile)
	auth.GET("/payments", billing.GetPaymentHistory)
	auth.POST("/create-checkout-session", billing.CreateCheckoutSession)
	auth.POST("/billing-portal", billing.CreateBillingPortal)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/events", eventsapi.ListUpcoming)
	auth.POST("/events/:id/rsvp", eventsapi.RSVP)

	// Eligibility-aware routes: user + capability flags are resolved once
	// per request and shared by every gate downstream.
	gated := auth.Group("/")
	gated.Use(middleware.LoadEligibility())

	gated.GET("/discover", discoverapi.Browse)
	gated.GET("/dashboard/profiles", discoverapi.Dashboard)

	gated.POST("/likes", messagesapi.LikeProfile)
	gated.GET("/matches", messagesapi.ListMatches)
	gated.GET("/messages/:id", messagesapi.ListConversation)

	gated.POST("/dates", messagesapi.CreateDateRequest)
	gated.POST("/dates/:id/respond", messagesapi.RespondDateRequest)

	// Messaging additionally requires the messaging capability.
	messaging := gated.Group("/")
	messaging.Use(middleware.RequireMessaging())
	messaging.POST("/messages", messagesapi.SendMessage)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/stats", adminapi.GetAdminStats)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/payments", adminapi.ListAllPayments)
	admin.GET("/user/:id", adminapi.GetUserDetails)
	admin.POST("/user/:id/points", adminapi.GrantPoints)
	admin.POST("/sync-point-packs", billing.SyncPointPacksFromStripe)
	admin.POST("/events", eventsapi.CreateEvent)
}
