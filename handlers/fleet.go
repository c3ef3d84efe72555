package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"p9e.in/safeguard/config"
	"p9e.in/safeguard/middleware"
	"p9e.in/safeguard/models"
)

// Fleet handlers are plain CRUD over the fleet tables; no business
// rules beyond persistence.

func GetAllVehicles(w http.ResponseWriter, r *http.Request) {
	var items []models.Vehicle
	if err := config.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var item models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

func GetVehicle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var item models.Vehicle
	if err := config.DB.Where("id = ?", id).First(&item).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(item)
}

func UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var item models.Vehicle
	if err := config.DB.Where("id = ?", id).First(&item).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	config.DB.Save(&item)
	json.NewEncoder(w).Encode(item)
}

func DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	result := config.DB.Where("id = ?", id).Delete(&models.Vehicle{})
	if result.Error != nil {
		http.Error(w, "failed to delete record", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func GetAllDrivers(w http.ResponseWriter, r *http.Request) {
	var items []models.Driver
	if err := config.DB.Order("full_name ASC").Find(&items).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func CreateDriver(w http.ResponseWriter, r *http.Request) {
	var item models.Driver
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

func UpdateDriver(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var item models.Driver
	if err := config.DB.Where("id = ?", id).First(&item).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	config.DB.Save(&item)
	json.NewEncoder(w).Encode(item)
}

func DeleteDriver(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	result := config.DB.Where("id = ?", id).Delete(&models.Driver{})
	if result.Error != nil {
		http.Error(w, "failed to delete record", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func GetVehicleChecklists(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["id"]
	var items []models.VehicleChecklist
	err := config.DB.Where("vehicle_id = ?", vehicleID).
		Order("completed_at DESC").Find(&items).Error
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func CreateVehicleChecklist(w http.ResponseWriter, r *http.Request) {
	var item models.VehicleChecklist
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if item.VehicleID == uuid.Nil {
		if vid, err := uuid.Parse(mux.Vars(r)["id"]); err == nil {
			item.VehicleID = vid
		}
	}
	if claims := middleware.GetClaims(r); claims != nil && item.CompletedBy == "" {
		item.CompletedBy = claims.Name
	}
	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

func GetVehicleInventory(w http.ResponseWriter, r *http.Request) {
	vehicleID := mux.Vars(r)["id"]
	var items []models.VehicleInventoryItem
	err := config.DB.Where("vehicle_id = ?", vehicleID).
		Order("name ASC").Find(&items).Error
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func CreateVehicleInventoryItem(w http.ResponseWriter, r *http.Request) {
	var item models.VehicleInventoryItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if item.VehicleID == uuid.Nil {
		if vid, err := uuid.Parse(mux.Vars(r)["id"]); err == nil {
			item.VehicleID = vid
		}
	}
	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

func DeleteVehicleInventoryItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["itemId"]
	result := config.DB.Where("id = ?", id).Delete(&models.VehicleInventoryItem{})
	if result.Error != nil {
		http.Error(w, "failed to delete record", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
