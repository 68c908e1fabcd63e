// container.go
package main

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talentgate/talentgate/pkg/board/boardapi"
	"github.com/talentgate/talentgate/pkg/board/boardsrv"
	"github.com/talentgate/talentgate/pkg/config"
	"github.com/talentgate/talentgate/pkg/hrclient"
	"github.com/talentgate/talentgate/pkg/logx"
	"github.com/talentgate/talentgate/pkg/session"
	"github.com/talentgate/talentgate/pkg/session/sessioninfra"
)

// Container holds all application dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	Redis        *redis.Client
	HRClient     *hrclient.Client
	SessionStore session.Store

	// View Services
	AuthService       *boardsrv.AuthService
	AccountService    *boardsrv.AccountService
	DepartmentService *boardsrv.DepartmentService
	CampaignService   *boardsrv.CampaignService
	CandidateService  *boardsrv.CandidateService
	InterviewService  *boardsrv.InterviewService
	OnboardingService *boardsrv.OnboardingService
	TemplateService   *boardsrv.TemplateService
	DashboardService  *boardsrv.DashboardService

	// API Handlers
	AuthHandlers       *boardapi.AuthHandlers
	AccountHandlers    *boardapi.AccountHandlers
	DepartmentHandlers *boardapi.DepartmentHandlers
	CampaignHandlers   *boardapi.CampaignHandlers
	CandidateHandlers  *boardapi.CandidateHandlers
	InterviewHandlers  *boardapi.InterviewHandlers
	OnboardHandlers    *boardapi.OnboardHandlers
	TemplateHandlers   *boardapi.TemplateHandlers
	DashboardHandlers  *boardapi.DashboardHandlers

	// Middleware
	AuthGate *boardapi.AuthGate

	memoryStore *session.MemoryStore
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *config.Config) *Container {
	logx.Info("🔧 Initializing dependency container...")

	c := &Container{
		Config: cfg,
	}

	c.initInfrastructure()
	c.initServices()

	logx.Info("✅ Container initialized successfully")
	return c
}

func (c *Container) initInfrastructure() {
	logx.Info("🏗️ Initializing infrastructure...")

	// 1. Upstream HR client
	c.HRClient = hrclient.NewFromConfig(c.Config.Upstream)
	logx.Infof("✅ HR client configured (base: %s)", c.Config.Upstream.BaseURL)

	// 2. Session store (Redis in production, memory in dev)
	if c.Config.Session.StoreType == "redis" {
		c.Redis = redis.NewClient(&redis.Options{
			Addr:     c.Config.Redis.Address(),
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		})
		if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
			logx.Fatalf("Failed to connect to Redis: %v (Redis is required for the session store)", err)
		}
		c.SessionStore = sessioninfra.NewRedisStore(c.Redis, c.Config.Session.TTL)
		logx.Info("✅ Using Redis session store")
	} else {
		c.memoryStore = session.NewMemoryStore()
		c.SessionStore = c.memoryStore
		logx.Warn("⚠️  Using in-memory session store (not recommended for production)")
	}

	logx.Info("✅ Infrastructure initialized")
}

func (c *Container) initServices() {
	logx.Info("🗄️  Initializing services and handlers...")

	feedbackWindow := time.Duration(c.Config.Local.FeedbackWindowMinutes) * time.Minute

	// --- View Services ---
	c.AuthService = boardsrv.NewAuthService(c.HRClient, c.SessionStore, c.Config.Session.TTL)
	c.AccountService = boardsrv.NewAccountService(c.HRClient)
	c.DepartmentService = boardsrv.NewDepartmentService(c.HRClient)
	c.CampaignService = boardsrv.NewCampaignService(c.HRClient)
	c.CandidateService = boardsrv.NewCandidateService(c.HRClient)
	c.InterviewService = boardsrv.NewInterviewService(c.HRClient, feedbackWindow)
	c.OnboardingService = boardsrv.NewOnboardingService(c.HRClient)
	c.TemplateService = boardsrv.NewTemplateService(c.HRClient)
	c.DashboardService = boardsrv.NewDashboardService(c.HRClient)

	// --- Middleware ---
	c.AuthGate = boardapi.NewAuthGate(c.AuthService)

	// --- API Handlers ---
	c.AuthHandlers = boardapi.NewAuthHandlers(c.AuthService)
	c.AccountHandlers = boardapi.NewAccountHandlers(c.AccountService)
	c.DepartmentHandlers = boardapi.NewDepartmentHandlers(c.DepartmentService)
	c.CampaignHandlers = boardapi.NewCampaignHandlers(c.CampaignService)
	c.CandidateHandlers = boardapi.NewCandidateHandlers(c.CandidateService)
	c.InterviewHandlers = boardapi.NewInterviewHandlers(c.InterviewService)
	c.OnboardHandlers = boardapi.NewOnboardHandlers(c.OnboardingService)
	c.TemplateHandlers = boardapi.NewTemplateHandlers(c.TemplateService)
	c.DashboardHandlers = boardapi.NewDashboardHandlers(c.DashboardService)

	logx.Info("✅ All services and handlers initialized")
}

// StartBackgroundServices starts background workers
func (c *Container) StartBackgroundServices(ctx context.Context) {
	if c.memoryStore != nil {
		go c.memoryStore.StartCleanup(ctx, c.Config.Session.CleanupInterval)
		logx.Info("✅ Session cleanup started")
	}
}

// Cleanup closes all connections and stops workers
func (c *Container) Cleanup() {
	logx.Info("🧹 Cleaning up resources...")

	// Cancel in-flight dashboard loads
	if c.DashboardService != nil {
		c.DashboardService.Shutdown()
	}

	// Close Redis connection
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logx.Errorf("Error closing Redis: %v", err)
		} else {
			logx.Info("✅ Redis connection closed")
		}
	}

	logx.Info("✅ Cleanup completed")
}
