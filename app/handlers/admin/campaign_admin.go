package admin

import (
	"errors"
	"net/http"
	"time"

	"github.com/zeylcoffee/qrmenu/app/models"
	"github.com/zeylcoffee/qrmenu/app/repositories"
	"github.com/zeylcoffee/qrmenu/app/services"
	"github.com/zeylcoffee/qrmenu/app/utils/allocator"
	"github.com/zeylcoffee/qrmenu/app/utils/form"
	"github.com/zeylcoffee/qrmenu/app/utils/format"
)

// campaignTitle accepts both the legacy "name" field and "title".
func campaignTitle(body *form.Form) (string, bool) {
	if body.Has("title") {
		return body.Get("title"), true
	}
	if body.Has("name") {
		return body.Get("name"), true
	}
	return "", false
}

func (h *AdminHandler) AddCampaignPost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "İstek gövdesi okunamadı.")
		return
	}
	title, ok := campaignTitle(body)
	if !ok || title == "" {
		h.fail(w, http.StatusBadRequest, "Kampanya adı zorunludur.")
		return
	}

	campaigns, err := h.store.Campaigns().GetAll(r.Context())
	if err != nil {
		h.serverError(w, "AddCampaignPost", err)
		return
	}
	ids := make([]int, len(campaigns))
	for i, c := range campaigns {
		ids[i] = c.ID
	}

	now := time.Now()
	var endDate *time.Time
	if raw := body.Get("end_date"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			endDate = &parsed
		}
	}

	campaign := &models.Campaign{
		ID:          allocator.NextID(ids),
		Title:       title,
		Description: body.Get("description"),
		Discount:    format.Discount(body.Price("old_price"), body.Price("new_price")),
		IsActive:    true,
		StartDate:   &now,
		EndDate:     endDate,
	}
	if err := h.store.Campaigns().Create(r.Context(), campaign); err != nil {
		h.serverError(w, "AddCampaignPost", err)
		return
	}
	h.ok(w)
}

func (h *AdminHandler) UpdateCampaignPost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "İstek gövdesi okunamadı.")
		return
	}
	id, ok := body.Int("id")
	if !ok {
		h.fail(w, http.StatusBadRequest, "Geçersiz kampanya kimliği.")
		return
	}

	var patch repositories.CampaignPatch
	if title, ok := campaignTitle(body); ok {
		patch.Title = &title
	}
	if body.Has("description") {
		description := body.Get("description")
		patch.Description = &description
	}
	if body.Has("is_active") {
		active := body.Bool("is_active")
		patch.IsActive = &active
	}
	if body.Has("old_price") || body.Has("new_price") {
		// The discount string is derived from the pair as sent; a partial
		// pair clears it.
		discount := format.Discount(body.Price("old_price"), body.Price("new_price"))
		patch.Discount = &discount
	}
	if body.Has("end_date") {
		var endDate *time.Time
		if raw := body.Get("end_date"); raw != "" {
			if parsed, err := time.Parse("2006-01-02", raw); err == nil {
				endDate = &parsed
			}
		}
		patch.EndDate = &endDate
	}

	if err := h.store.Campaigns().Update(r.Context(), id, patch); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.notFound(w, "Kampanya bulunamadı")
			return
		}
		h.serverError(w, "UpdateCampaignPost", err)
		return
	}
	h.ok(w)
}

func (h *AdminHandler) DeleteCampaignPost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "İstek gövdesi okunamadı.")
		return
	}
	id, ok := body.Int("id")
	if !ok {
		h.fail(w, http.StatusBadRequest, "Geçersiz kampanya kimliği.")
		return
	}

	campaign, err := h.store.Campaigns().GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.notFound(w, "Kampanya bulunamadı")
			return
		}
		h.serverError(w, "DeleteCampaignPost", err)
		return
	}
	h.images.Delete(campaign.Image)

	if err := h.store.Campaigns().Delete(r.Context(), id); err != nil {
		h.serverError(w, "DeleteCampaignPost", err)
		return
	}
	h.ok(w)
}

func (h *AdminHandler) UploadCampaignImagePost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "Resim yüklenemedi.")
		return
	}
	id, ok := body.Int("campaignId")
	if !ok {
		h.fail(w, http.StatusBadRequest, "Geçersiz kampanya kimliği.")
		return
	}

	campaign, err := h.store.Campaigns().GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.notFound(w, "Kampanya bulunamadı.")
			return
		}
		h.serverError(w, "UploadCampaignImagePost", err)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.fail(w, http.StatusBadRequest, "Resim yüklenemedi.")
		return
	}
	defer file.Close()

	imagePath, err := h.images.Save(file, header)
	if err != nil {
		if errors.Is(err, services.ErrInvalidImageType) || errors.Is(err, services.ErrImageTooLarge) {
			h.fail(w, http.StatusBadRequest, err.Error())
			return
		}
		h.serverError(w, "UploadCampaignImagePost", err)
		return
	}

	h.images.Delete(campaign.Image)
	if err := h.store.Campaigns().SetImage(r.Context(), id, &imagePath); err != nil {
		h.serverError(w, "UploadCampaignImagePost", err)
		return
	}
	h.okWithImage(w, imagePath)
}

func (h *AdminHandler) DeleteCampaignImagePost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "İstek gövdesi okunamadı.")
		return
	}
	id, ok := body.Int("campaignId")
	if !ok {
		h.fail(w, http.StatusBadRequest, "Geçersiz kampanya kimliği.")
		return
	}

	campaign, err := h.store.Campaigns().GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.notFound(w, "Kampanya bulunamadı")
			return
		}
		h.serverError(w, "DeleteCampaignImagePost", err)
		return
	}

	h.images.Delete(campaign.Image)
	if err := h.store.Campaigns().SetImage(r.Context(), id, nil); err != nil {
		h.serverError(w, "DeleteCampaignImagePost", err)
		return
	}
	h.ok(w)
}
