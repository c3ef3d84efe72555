package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"p9e.in/safeguard/handlers"
	"p9e.in/safeguard/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// Public routes (no authentication)
	r.HandleFunc("/register", handlers.Register).Methods("POST")
	r.HandleFunc("/login", handlers.Login).Methods("POST")

	// Protected API routes (require JWT authentication)
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.JWTMiddleware)

	// Assessment register + CRUD
	api.HandleFunc("/assessments", handlers.ListAssessments).Methods("GET")
	api.HandleFunc("/assessments", handlers.CreateAssessment).Methods("POST")
	api.HandleFunc("/assessments/export/excel", handlers.ExportAssessmentsToExcel).Methods("GET")
	api.HandleFunc("/assessments/export/csv", handlers.ExportAssessmentsToCSV).Methods("GET")
	api.HandleFunc("/assessments/{id}", handlers.GetAssessment).Methods("GET")
	api.HandleFunc("/assessments/{id}", handlers.UpdateAssessment).Methods("PUT")
	api.HandleFunc("/assessments/{id}", handlers.DeleteAssessment).Methods("DELETE")
	api.HandleFunc("/assessments/{id}/document", handlers.RenderAssessmentDocument).Methods("GET")

	// Wizard sessions
	api.HandleFunc("/wizard", handlers.StartWizardSession).Methods("POST")
	api.HandleFunc("/wizard/{sessionId}", handlers.GetWizardSession).Methods("GET")
	api.HandleFunc("/wizard/{sessionId}", handlers.CloseWizardSession).Methods("DELETE")
	api.HandleFunc("/wizard/{sessionId}/form", handlers.UpdateWizardForm).Methods("PATCH")
	api.HandleFunc("/wizard/{sessionId}/next", handlers.WizardNext).Methods("POST")
	api.HandleFunc("/wizard/{sessionId}/prev", handlers.WizardPrev).Methods("POST")
	api.HandleFunc("/wizard/{sessionId}/goto", handlers.WizardGoTo).Methods("POST")
	api.HandleFunc("/wizard/{sessionId}/reset", handlers.WizardReset).Methods("POST")
	api.HandleFunc("/wizard/{sessionId}/submit", handlers.SubmitWizard).Methods("POST")

	// Dynamic lists inside a wizard session
	api.HandleFunc("/wizard/{sessionId}/lists/{listType}/{category}/entries", handlers.WizardAddListEntry).Methods("POST")
	api.HandleFunc("/wizard/{sessionId}/lists/{listType}/{category}/entries/{entryId}", handlers.WizardRemoveListEntry).Methods("DELETE")
	api.HandleFunc("/wizard/{sessionId}/selections/{field}", handlers.WizardChangeSelection).Methods("PUT")
	api.HandleFunc("/wizard/{sessionId}/categories", handlers.WizardAddCustomCategory).Methods("POST")
	api.HandleFunc("/wizard/{sessionId}/categories", handlers.WizardRemoveCustomCategory).Methods("DELETE")

	// Fleet
	api.HandleFunc("/vehicles", handlers.GetAllVehicles).Methods("GET")
	api.HandleFunc("/vehicles", handlers.CreateVehicle).Methods("POST")
	api.HandleFunc("/vehicles/{id}", handlers.GetVehicle).Methods("GET")
	api.HandleFunc("/vehicles/{id}", handlers.UpdateVehicle).Methods("PUT")
	api.HandleFunc("/vehicles/{id}", handlers.DeleteVehicle).Methods("DELETE")
	api.HandleFunc("/vehicles/{id}/checklists", handlers.GetVehicleChecklists).Methods("GET")
	api.HandleFunc("/vehicles/{id}/checklists", handlers.CreateVehicleChecklist).Methods("POST")
	api.HandleFunc("/vehicles/{id}/inventory", handlers.GetVehicleInventory).Methods("GET")
	api.HandleFunc("/vehicles/{id}/inventory", handlers.CreateVehicleInventoryItem).Methods("POST")
	api.HandleFunc("/vehicles/{id}/inventory/{itemId}", handlers.DeleteVehicleInventoryItem).Methods("DELETE")

	api.HandleFunc("/drivers", handlers.GetAllDrivers).Methods("GET")
	api.HandleFunc("/drivers", handlers.CreateDriver).Methods("POST")
	api.HandleFunc("/drivers/{id}", handlers.UpdateDriver).Methods("PUT")
	api.HandleFunc("/drivers/{id}", handlers.DeleteDriver).Methods("DELETE")

	// Company profile
	api.HandleFunc("/company", handlers.GetCompanyProfile).Methods("GET")
	api.HandleFunc("/company", handlers.UpdateCompanyProfile).Methods("PUT")

	return r
}
