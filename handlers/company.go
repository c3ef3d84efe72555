package handlers

import (
	"encoding/json"
	"net/http"

	"p9e.in/safeguard/config"
	"p9e.in/safeguard/models"
)

// GetCompanyProfile returns the single company profile row.
func GetCompanyProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.CompanyProfile
	if err := config.DB.First(&profile).Error; err != nil {
		http.Error(w, "company profile not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// UpdateCompanyProfile overwrites the company profile.
func UpdateCompanyProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.CompanyProfile
	if err := config.DB.First(&profile).Error; err != nil {
		http.Error(w, "company profile not found", http.StatusNotFound)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := config.DB.Save(&profile).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(profile)
}
