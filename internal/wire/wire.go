// Package wire provides dependency injection for the journey application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/journey/internal/adapters/sqlite"
	"github.com/example/journey/internal/app"
	"github.com/example/journey/internal/config"
	"github.com/example/journey/internal/db"
	"github.com/example/journey/internal/ports/primary"
)

var (
	sessionService    primary.SessionService
	stepService       primary.StepService
	featureService    primary.FeatureService
	fileChangeService primary.FileChangeService
	decisionService   primary.DecisionService
	recallService     primary.RecallService
	summaryService    primary.SummaryService
	queryService      primary.QueryService

	dbPath string
	once   sync.Once
)

// SetDBPath overrides the database location before the first service is
// requested. Later calls have no effect.
func SetDBPath(path string) {
	dbPath = path
}

// SessionService returns the singleton SessionService instance.
func SessionService() primary.SessionService {
	once.Do(initServices)
	return sessionService
}

// StepService returns the singleton StepService instance.
func StepService() primary.StepService {
	once.Do(initServices)
	return stepService
}

// FeatureService returns the singleton FeatureService instance.
func FeatureService() primary.FeatureService {
	once.Do(initServices)
	return featureService
}

// FileChangeService returns the singleton FileChangeService instance.
func FileChangeService() primary.FileChangeService {
	once.Do(initServices)
	return fileChangeService
}

// DecisionService returns the singleton DecisionService instance.
func DecisionService() primary.DecisionService {
	once.Do(initServices)
	return decisionService
}

// RecallService returns the singleton RecallService instance.
func RecallService() primary.RecallService {
	once.Do(initServices)
	return recallService
}

// SummaryService returns the singleton SummaryService instance.
func SummaryService() primary.SummaryService {
	once.Do(initServices)
	return summaryService
}

// QueryService returns the singleton QueryService instance.
func QueryService() primary.QueryService {
	once.Do(initServices)
	return queryService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfg, err := config.Load(dbPath)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	sessionRepo := sqlite.NewSessionRepository(database)
	stepRepo := sqlite.NewStepRepository(database)
	featureRepo := sqlite.NewFeatureRepository(database)
	fileChangeRepo := sqlite.NewFileChangeRepository(database)
	decisionRepo := sqlite.NewDecisionRepository(database)

	// Create services (primary ports implementation)
	sessionService = app.NewSessionService(sessionRepo)
	stepService = app.NewStepService(stepRepo, sessionRepo)
	featureService = app.NewFeatureService(featureRepo)
	fileChangeService = app.NewFileChangeService(fileChangeRepo, sessionRepo)
	decisionService = app.NewDecisionService(decisionRepo, sessionRepo)
	recallService = app.NewRecallService(sessionRepo, featureRepo, stepRepo, decisionRepo)
	summaryService = app.NewSummaryService(sessionRepo, featureRepo, stepRepo, fileChangeRepo, decisionRepo)
	queryService = app.NewQueryService(sessionRepo, stepRepo, fileChangeRepo, decisionRepo)
}
