package router

import (
	"github.com/langcamp/language-camp-api/internal/application"
	"github.com/langcamp/language-camp-api/internal/container"
	"github.com/langcamp/language-camp-api/internal/infrastructure/mongodb"
	handlers "github.com/langcamp/language-camp-api/internal/interface/http"
	"github.com/langcamp/language-camp-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	db := container.GetMongoDB()
	jwt := container.GetJWT()

	userRepo := mongodb.NewUserRepository(db)
	classRepo := mongodb.NewClassRepository(db)
	selectionRepo := mongodb.NewSelectionRepository(db)
	enrollmentRepo := mongodb.NewEnrollmentRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	instructorRepo := mongodb.NewInstructorRepository(db)

	checker := application.NewRoleChecker(userRepo)
	classSvc := application.NewClassService(classRepo, container.GetES(), cfg.ESClassesIndex, container.GetRabbitPub(), logger)
	paymentSvc := application.NewPaymentService(cfg.StripeSecretKey)

	r.Add(modules.NewTokenModule(handlers.NewTokenHandler(jwt, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userRepo, checker, logger), jwt))
	r.Add(modules.NewClassModule(handlers.NewClassHandler(classSvc, logger), jwt))
	r.Add(modules.NewSelectionModule(handlers.NewSelectionHandler(selectionRepo, logger), jwt))
	r.Add(modules.NewEnrollmentModule(handlers.NewEnrollmentHandler(enrollmentRepo, logger), jwt))
	r.Add(modules.NewPaymentModule(handlers.NewPaymentHandler(paymentRepo, paymentSvc, logger), jwt))
	r.Add(modules.NewInstructorModule(handlers.NewInstructorHandler(instructorRepo, logger)))
}
