package admin

import (
	"fmt"
	"log"
	"net/http"
)

func (h *AdminHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Statistics().Get(r.Context())
	if err != nil {
		h.serverError(w, "GetStatistics", err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) ResetStatisticsPost(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Statistics().Reset(r.Context()); err != nil {
		h.serverError(w, "ResetStatisticsPost", err)
		return
	}
	_ = h.render.JSON(w, http.StatusOK, struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{Success: true, Message: "İstatistikler sıfırlandı"})
}

func (h *AdminHandler) ExportStatistics(w http.ResponseWriter, r *http.Request) {
	workbook, filename, err := h.export.BuildWorkbook(r.Context())
	if err != nil {
		h.serverError(w, "ExportStatistics", err)
		return
	}
	defer workbook.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if err := workbook.Write(w); err != nil {
		log.Printf("ExportStatistics: write workbook: %v", err)
	}
}
