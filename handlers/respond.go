package handlers

import (
	"encoding/json"
	"net/http"

	"student-manager/logger"
)

func writeJSON(w http.ResponseWriter, log *logger.Logger, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// статус уже отправлен, остается только залогировать
		log.Error("❌ Error encoding response", err, map[string]interface{}{"status": status})
	}
}

func writeError(w http.ResponseWriter, log *logger.Logger, status int, message string) {
	writeJSON(w, log, status, map[string]string{"error": message})
}
