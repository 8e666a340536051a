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

func (h *AdminHandler) AddItemPost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "İstek gövdesi okunamadı.")
		return
	}
	categoryID, ok := body.Int("category_id")
	if !ok {
		h.fail(w, http.StatusBadRequest, "Geçersiz kategori kimliği.")
		return
	}
	name := body.Get("name")
	if name == "" {
		h.fail(w, http.StatusBadRequest, "Ürün adı zorunludur.")
		return
	}

	all, err := h.store.MenuItems().GetAll(r.Context())
	if err != nil {
		h.serverError(w, "AddItemPost", err)
		return
	}
	ids := make([]int, len(all))
	for i, item := range all {
		ids[i] = item.ID
	}

	// Display order is scoped to the item's category.
	siblings, err := h.store.MenuItems().GetByCategory(r.Context(), categoryID)
	if err != nil {
		h.serverError(w, "AddItemPost", err)
		return
	}
	orders := make([]int, len(siblings))
	for i, item := range siblings {
		orders[i] = item.DisplayOrder
	}

	item := &models.MenuItem{
		ID:           allocator.NextID(ids),
		CategoryID:   categoryID,
		Name:         name,
		Description:  body.Get("description"),
		Price:        body.Price("price"),
		IsAvailable:  true,
		DisplayOrder: allocator.NextOrder(orders),
	}
	if err := h.store.MenuItems().Create(r.Context(), item); err != nil {
		h.serverError(w, "AddItemPost", err)
		return
	}
	h.ok(w)
}

func (h *AdminHandler) UpdateItemPost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "İstek gövdesi okunamadı.")
		return
	}
	id, ok := body.Int("id")
	if !ok {
		h.fail(w, http.StatusBadRequest, "Geçersiz ürün kimliği.")
		return
	}

	// Only fields present in the request are written.
	var patch repositories.MenuItemPatch
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
	if body.Has("is_available") {
		available := body.Bool("is_available")
		patch.IsAvailable = &available
	}

	if err := h.store.MenuItems().Update(r.Context(), id, patch); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.notFound(w, "Ürün bulunamadı")
			return
		}
		h.serverError(w, "UpdateItemPost", err)
		return
	}
	h.ok(w)
}

func (h *AdminHandler) DeleteItemPost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "İstek gövdesi okunamadı.")
		return
	}
	id, ok := body.Int("id")
	if !ok {
		h.fail(w, http.StatusBadRequest, "Geçersiz ürün kimliği.")
		return
	}

	item, err := h.store.MenuItems().GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.notFound(w, "Ürün bulunamadı")
			return
		}
		h.serverError(w, "DeleteItemPost", err)
		return
	}
	h.images.Delete(item.Image)

	if err := h.store.MenuItems().Delete(r.Context(), id); err != nil {
		h.serverError(w, "DeleteItemPost", err)
		return
	}
	h.ok(w)
}

func (h *AdminHandler) UploadItemImagePost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "Resim yüklenemedi")
		return
	}
	id, ok := body.Int("itemId")
	if !ok {
		h.fail(w, http.StatusBadRequest, "Geçersiz ürün kimliği.")
		return
	}

	item, err := h.store.MenuItems().GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.notFound(w, "Ürün bulunamadı")
			return
		}
		h.serverError(w, "UploadItemImagePost", err)
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
		h.serverError(w, "UploadItemImagePost", err)
		return
	}

	// The record owns at most one live file; drop the old one first.
	h.images.Delete(item.Image)

	if err := h.store.MenuItems().SetImage(r.Context(), id, &imagePath); err != nil {
		h.serverError(w, "UploadItemImagePost", err)
		return
	}
	h.okWithImage(w, imagePath)
}

func (h *AdminHandler) DeleteItemImagePost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "İstek gövdesi okunamadı.")
		return
	}
	id, ok := body.Int("itemId")
	if !ok {
		h.fail(w, http.StatusBadRequest, "Geçersiz ürün kimliği.")
		return
	}

	item, err := h.store.MenuItems().GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.notFound(w, "Ürün bulunamadı")
			return
		}
		h.serverError(w, "DeleteItemImagePost", err)
		return
	}

	h.images.Delete(item.Image)
	if err := h.store.MenuItems().SetImage(r.Context(), id, nil); err != nil {
		h.serverError(w, "DeleteItemImagePost", err)
		return
	}
	h.ok(w)
}
