package admin

import (
	"errors"
	"net/http"

	"github.com/zeylcoffee/qrmenu/app/models"
	"github.com/zeylcoffee/qrmenu/app/repositories"
	"github.com/zeylcoffee/qrmenu/app/services"
	"github.com/zeylcoffee/qrmenu/app/utils/allocator"
	"github.com/zeylcoffee/qrmenu/app/utils/form"
)

func (h *AdminHandler) AddWeeklySpecialPost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "İstek gövdesi okunamadı.")
		return
	}
	name := body.Get("name")
	if name == "" {
		h.fail(w, http.StatusBadRequest, "Ürün adı zorunludur.")
		return
	}

	specials, err := h.store.WeeklySpecials().GetAll(r.Context())
	if err != nil {
		h.serverError(w, "AddWeeklySpecialPost", err)
		return
	}
	ids := make([]int, len(specials))
	orders := make([]int, len(specials))
	for i, s := range specials {
		ids[i] = s.ID
		orders[i] = s.DisplayOrder
	}

	special := &models.WeeklySpecial{
		ID:           allocator.NextID(ids),
		Name:         name,
		Description:  body.Get("description"),
		Price:        body.Price("price"),
		IsActive:     true,
		DisplayOrder: allocator.NextOrder(orders),
	}
	if err := h.store.WeeklySpecials().Create(r.Context(), special); err != nil {
		h.serverError(w, "AddWeeklySpecialPost", err)
		return
	}
	h.ok(w)
}

func (h *AdminHandler) UpdateWeeklySpecialPost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "İstek gövdesi okunamadı.")
		return
	}
	id, ok := body.Int("id")
	if !ok {
		h.fail(w, http.StatusBadRequest, "Geçersiz kimlik.")
		return
	}

	var patch repositories.WeeklySpecialPatch
	if body.Has("name") {
		name := body.Get("name")
		patch.Name = &name
	}
	if body.Has("description") {
		description := body.Get("description")
		patch.Description = &description
	}
	if body.Has("price") {
		price := body.Price("price")
		patch.Price = &price
	}
	if body.Has("is_active") {
		active := body.Bool("is_active")
		patch.IsActive = &active
	}

	if err := h.store.WeeklySpecials().Update(r.Context(), id, patch); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.notFound(w, "Ürün bulunamadı")
			return
		}
		h.serverError(w, "UpdateWeeklySpecialPost", err)
		return
	}
	h.ok(w)
}

func (h *AdminHandler) DeleteWeeklySpecialPost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "İstek gövdesi okunamadı.")
		return
	}
	id, ok := body.Int("id")
	if !ok {
		h.fail(w, http.StatusBadRequest, "Geçersiz kimlik.")
		return
	}

	special, err := h.store.WeeklySpecials().GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.notFound(w, "Ürün bulunamadı")
			return
		}
		h.serverError(w, "DeleteWeeklySpecialPost", err)
		return
	}
	h.images.Delete(special.Image)

	if err := h.store.WeeklySpecials().Delete(r.Context(), id); err != nil {
		h.serverError(w, "DeleteWeeklySpecialPost", err)
		return
	}
	h.ok(w)
}

func (h *AdminHandler) UploadWeeklyImagePost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "Resim yüklenemedi")
		return
	}
	id, ok := body.Int("specialId")
	if !ok {
		h.fail(w, http.StatusBadRequest, "Geçersiz kimlik.")
		return
	}

	special, err := h.store.WeeklySpecials().GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.notFound(w, "Ürün bulunamadı")
			return
		}
		h.serverError(w, "UploadWeeklyImagePost", err)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.fail(w, http.StatusBadRequest, "Resim yüklenemedi")
		return
	}
	defer file.Close()

	imagePath, err := h.images.Save(file, header)
	if err != nil {
		if errors.Is(err, services.ErrInvalidImageType) || errors.Is(err, services.ErrImageTooLarge) {
			h.fail(w, http.StatusBadRequest, err.Error())
			return
		}
		h.serverError(w, "UploadWeeklyImagePost", err)
		return
	}

	h.images.Delete(special.Image)
	if err := h.store.WeeklySpecials().SetImage(r.Context(), id, &imagePath); err != nil {
		h.serverError(w, "UploadWeeklyImagePost", err)
		return
	}
	h.okWithImage(w, imagePath)
}

func (h *AdminHandler) DeleteWeeklyImagePost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "İstek gövdesi okunamadı.")
		return
	}
	id, ok := body.Int("specialId")
	if !ok {
		h.fail(w, http.StatusBadRequest, "Geçersiz kimlik.")
		return
	}

	special, err := h.store.WeeklySpecials().GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.notFound(w, "Ürün bulunamadı")
			return
		}
		h.serverError(w, "DeleteWeeklyImagePost", err)
		return
	}

	h.images.Delete(special.Image)
	if err := h.store.WeeklySpecials().SetImage(r.Context(), id, nil); err != nil {
		h.serverError(w, "DeleteWeeklyImagePost", err)
		return
	}
	h.ok(w)
}
