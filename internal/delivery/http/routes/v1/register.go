package v1

import (
	"mentormatch/internal/ai"
	"mentormatch/internal/database"
	"mentormatch/internal/delivery/http/handler"
	"mentormatch/internal/infrastructure/cache"
	"mentormatch/internal/repository"
	"mentormatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// Dependencies are the shared resources the v1 API is built on. Advisor and
// Redis may be nil; the usecases degrade gracefully without them.
type Dependencies struct {
	DB      database.DB
	Redis   *cache.Redis
	Advisor ai.Advisor
	Logger  *zap.Logger
}

func Register(r fiber.Router, deps Dependencies) {
	if r == nil {
		return
	}

	profileRepo := repository.NewPostgresProfileRepository(deps.DB)
	matchRepo := repository.NewPostgresMatchRepository(deps.DB)
	goalRepo := repository.NewPostgresGoalRepository(deps.DB)
	sessionRepo := repository.NewPostgresSessionRepository(deps.DB)
	insightRepo := repository.NewPostgresInsightRepository(deps.DB)

	profileUC := usecase.NewProfileUsecase(profileRepo, deps.Advisor, deps.Logger)
	matchingUC := usecase.NewMatchingUsecase(profileRepo, matchRepo, deps.Logger)
	goalUC := usecase.NewGoalUsecase(goalRepo, deps.Advisor, deps.Logger)
	sessionUC := usecase.NewSessionUsecase(sessionRepo, matchRepo, profileRepo, deps.Advisor, deps.Logger)
	insightUC := usecase.NewInsightUsecase(insightRepo, profileRepo, deps.Advisor, deps.Redis, deps.Logger)
	dashboardUC := usecase.NewDashboardUsecase(profileRepo, goalRepo, matchRepo, sessionRepo, insightRepo, deps.Logger)
	linkedinUC := usecase.NewLinkedInUsecase(profileRepo, deps.Logger)

	RegisterProfiles(r, handler.NewProfileHandler(profileUC), handler.NewLinkedInHandler(linkedinUC))
	RegisterMentorship(r, handler.NewMatchHandler(matchingUC), handler.NewGoalHandler(goalUC), handler.NewSessionHandler(sessionUC))
	RegisterInsights(r, handler.NewInsightHandler(insightUC), handler.NewDashboardHandler(dashboardUC))
}
