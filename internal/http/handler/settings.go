package handler

import (
	"encoding/json"
	"net/http"

	"educagenda/internal/settings"
	"educagenda/internal/theme"
)

type SettingsHandler struct {
	Store *settings.Store
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.Store.Get())
}

type settingsReq struct {
	FontScale    *float64 `json:"font_scale"`
	HighContrast *bool    `json:"high_contrast"`
	TTSEnabled   *bool    `json:"tts_enabled"`
}

// Update applies the provided fields. The font-scale clamp lives here,
// at the edit surface, not in the store.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req settingsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	if req.FontScale != nil {
		v := *req.FontScale
		if v < settings.MinFontScale {
			v = settings.MinFontScale
		}
		if v > settings.MaxFontScale {
			v = settings.MaxFontScale
		}
		h.Store.SetFontScale(v)
	}
	if req.HighContrast != nil {
		h.Store.SetHighContrast(*req.HighContrast)
	}
	if req.TTSEnabled != nil {
		h.Store.SetTTSEnabled(*req.TTSEnabled)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.Store.Get())
}

// Theme returns the effective palette for the current contrast setting.
func (h *SettingsHandler) Theme(w http.ResponseWriter, r *http.Request) {
	snap := h.Store.Get()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(theme.Derive(theme.Base(), snap.HighContrast))
}
