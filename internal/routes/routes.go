// Package routes wires repositories, services and handlers onto the Fiber app.
package routes

import (
	"context"
	"log"

	"lpaflow/internal/config"
	"lpaflow/internal/handlers"
	"lpaflow/internal/middleware"
	"lpaflow/internal/repositories"
	"lpaflow/internal/services/checkout"
	"lpaflow/internal/services/dashboard"
	"lpaflow/internal/services/document"
	"lpaflow/internal/services/payment"
	"lpaflow/internal/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all API routes for the application.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	leadRepo := repositories.NewLeadRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	donorRepo := repositories.NewDonorRepository(db)
	docRepo := repositories.NewLpaDocumentRepository(db)
	attorneyRepo := repositories.NewAttorneyRepository(db)
	assessmentRepo := repositories.NewBenefitsAssessmentRepository(db)
	partyRepo := repositories.NewPartyRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	dashboardRepo := repositories.NewDashboardRepository(db)

	// A typed nil would slip past the service's nil check, so only hand the
	// cache over when it actually exists.
	var quoteCache checkout.QuoteCache
	if repositories.CacheService != nil {
		quoteCache = repositories.CacheService
	}

	stripeClient := checkout.NewStripeClient(cfg.StripeSecretKey)
	checkoutService := checkout.NewService(
		appRepo,
		docRepo,
		assessmentRepo,
		stripeClient,
		quoteCache,
		cfg.SiteURL,
	)
	paymentService := payment.NewService(paymentRepo, appRepo)
	dashboardService := dashboard.NewService(dashboardRepo)

	objectStore, err := storage.NewS3Store(context.Background(), storage.Config{
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		EndpointURL:     cfg.S3EndpointURL,
	})
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}
	documentService := document.NewService(docRepo, donorRepo, objectStore)

	leadHandler := handlers.NewLeadHandler(leadRepo, appRepo)
	appHandler := handlers.NewApplicationHandler(appRepo)
	donorHandler := handlers.NewDonorHandler(donorRepo)
	docHandler := handlers.NewLpaDocumentHandler(docRepo)
	attorneyHandler := handlers.NewAttorneyHandler(attorneyRepo)
	benefitsHandler := handlers.NewBenefitsHandler(assessmentRepo)
	partyHandler := handlers.NewPartyHandler(partyRepo)
	feeHandler := handlers.NewFeeHandler(checkoutService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	webhookHandler := handlers.NewWebhookHandler(paymentService, cfg.StripeWebhookSecret)
	documentHandler := handlers.NewDocumentHandler(documentService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	healthHandler := handlers.NewHealthHandler()

	authMiddleware := middleware.NewAuthMiddleware(cfg.AuthJWTSecret)

	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")

	// Public: signup callback and Stripe deliveries.
	api.Post("/register", leadHandler.Register)
	api.Post("/webhooks/stripe", webhookHandler.HandleStripe)

	protected := api.Use(authMiddleware.Handler)

	protected.Get("/leads", leadHandler.Get)
	protected.Patch("/leads", leadHandler.Update)

	protected.Get("/applications", appHandler.List)
	protected.Post("/applications", appHandler.Create)
	protected.Patch("/applications", appHandler.Update)

	protected.Get("/donors", donorHandler.List)
	protected.Post("/donors", donorHandler.Create)
	protected.Patch("/donors", donorHandler.Update)

	protected.Get("/lpa-documents", docHandler.Get)
	protected.Post("/lpa-documents", docHandler.Create)
	protected.Patch("/lpa-documents", docHandler.Update)

	protected.Get("/attorneys", attorneyHandler.List)
	protected.Post("/attorneys", attorneyHandler.Create)
	protected.Patch("/attorneys", attorneyHandler.Update)
	protected.Delete("/attorneys", attorneyHandler.Delete)

	protected.Post("/lpa-document-attorneys", attorneyHandler.CreateDocumentAttorney)
	protected.Patch("/lpa-document-attorneys", attorneyHandler.UpdateDocumentAttorney)
	protected.Delete("/lpa-document-attorneys", attorneyHandler.DeleteDocumentAttorney)

	protected.Post("/lpa-document-applicants", attorneyHandler.CreateApplicant)
	protected.Patch("/lpa-document-applicants", attorneyHandler.UpdateApplicant)
	protected.Delete("/lpa-document-applicants", attorneyHandler.DeleteApplicant)

	protected.Get("/benefits-assessments", benefitsHandler.Get)
	protected.Post("/benefits-assessments", benefitsHandler.Upsert)

	protected.Get("/people-to-notify", partyHandler.ListPeopleToNotify)
	protected.Post("/people-to-notify", partyHandler.CreatePersonToNotify)
	protected.Patch("/people-to-notify", partyHandler.UpdatePersonToNotify)
	protected.Delete("/people-to-notify", partyHandler.DeletePersonToNotify)

	protected.Get("/certificate-providers", partyHandler.GetCertificateProvider)
	protected.Post("/certificate-providers", partyHandler.CreateCertificateProvider)
	protected.Patch("/certificate-providers", partyHandler.UpdateCertificateProvider)
	protected.Delete("/certificate-providers", partyHandler.DeleteCertificateProvider)

	protected.Post("/calculate-fees", feeHandler.CalculateFees)
	protected.Post("/create-checkout", checkoutHandler.CreateCheckout)

	protected.Post("/generate-pdf", documentHandler.GeneratePdf)
	protected.Post("/submit-postal", documentHandler.SubmitPostal)

	protected.Get("/admin/dashboard", dashboardHandler.GetAdminDashboard)
}
