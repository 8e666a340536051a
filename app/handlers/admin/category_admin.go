package admin

import (
	"net/http"

	"github.com/zeylcoffee/qrmenu/app/models"
	"github.com/zeylcoffee/qrmenu/app/repositories"
	"github.com/zeylcoffee/qrmenu/app/utils/allocator"
	"github.com/zeylcoffee/qrmenu/app/utils/form"
)

func (h *AdminHandler) AddCategoryPost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "İstek gövdesi okunamadı.")
		return
	}
	name := body.Get("name")
	if name == "" {
		h.fail(w, http.StatusBadRequest, "Kategori adı zorunludur.")
		return
	}

	categories, err := h.store.Categories().GetAll(r.Context())
	if err != nil {
		h.serverError(w, "AddCategoryPost", err)
		return
	}
	ids := make([]int, len(categories))
	orders := make([]int, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
		orders[i] = c.DisplayOrder
	}

	category := &models.Category{
		ID:           allocator.NextID(ids),
		Name:         name,
		DisplayOrder: allocator.NextOrder(orders),
	}
	if err := h.store.Categories().Create(r.Context(), category); err != nil {
		h.serverError(w, "AddCategoryPost", err)
		return
	}
	h.ok(w)
}

// DeleteCategoryPost removes a category and every item in it. Item images
// are removed from disk so files do not leak.
func (h *AdminHandler) DeleteCategoryPost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "İstek gövdesi okunamadı.")
		return
	}
	id, ok := body.Int("id")
	if !ok {
		h.fail(w, http.StatusBadRequest, "Geçersiz kategori kimliği.")
		return
	}

	items, err := h.store.MenuItems().GetByCategory(r.Context(), id)
	if err != nil {
		h.serverError(w, "DeleteCategoryPost", err)
		return
	}
	for _, item := range items {
		h.images.Delete(item.Image)
	}

	if err := h.store.MenuItems().DeleteByCategory(r.Context(), id); err != nil {
		h.serverError(w, "DeleteCategoryPost", err)
		return
	}
	if err := h.store.Categories().Delete(r.Context(), id); err != nil {
		if err == repositories.ErrNotFound {
			h.notFound(w, "Kategori bulunamadı")
			return
		}
		h.serverError(w, "DeleteCategoryPost", err)
		return
	}
	h.ok(w)
}

// ReorderCategoriesPost swaps the category's display order with its
// neighbor. Reordering past either end is a no-op.
func (h *AdminHandler) ReorderCategoriesPost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "İstek gövdesi okunamadı.")
		return
	}
	id, ok := body.Int("categoryId")
	if !ok {
		h.fail(w, http.StatusBadRequest, "Geçersiz kategori kimliği.")
		return
	}
	direction := body.Get("direction")

	categories, err := h.store.Categories().GetAll(r.Context())
	if err != nil {
		h.serverError(w, "ReorderCategoriesPost", err)
		return
	}

	index := -1
	for i, c := range categories {
		if c.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		h.notFound(w, "Kategori bulunamadı")
		return
	}

	var neighbor int
	switch {
	case direction == "up" && index > 0:
		neighbor = index - 1
	case direction == "down" && index < len(categories)-1:
		neighbor = index + 1
	default:
		// Already at the edge.
		h.ok(w)
		return
	}

	current := categories[index].DisplayOrder
	other := categories[neighbor].DisplayOrder
	if err := h.store.Categories().Update(r.Context(), categories[index].ID,
		repositories.CategoryPatch{DisplayOrder: &other}); err != nil {
		h.serverError(w, "ReorderCategoriesPost", err)
		return
	}
	if err := h.store.Categories().Update(r.Context(), categories[neighbor].ID,
		repositories.CategoryPatch{DisplayOrder: &current}); err != nil {
		h.serverError(w, "ReorderCategoriesPost", err)
		return
	}
	h.ok(w)
}
