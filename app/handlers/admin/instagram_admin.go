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

func (h *AdminHandler) AddInstagramPost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "İstek gövdesi okunamadı.")
		return
	}

	posts, err := h.store.InstagramPosts().GetAll(r.Context())
	if err != nil {
		h.serverError(w, "AddInstagramPost", err)
		return
	}
	ids := make([]int, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}

	post := &models.InstagramPost{
		ID:           allocator.NextID(ids),
		Caption:      body.Get("caption"),
		DisplayOrder: len(posts),
	}
	if err := h.store.InstagramPosts().Create(r.Context(), post); err != nil {
		h.serverError(w, "AddInstagramPost", err)
		return
	}
	h.ok(w)
}

func (h *AdminHandler) UpdateInstagramPost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "İstek gövdesi okunamadı.")
		return
	}
	id, ok := body.Int("id")
	if !ok {
		h.fail(w, http.StatusBadRequest, "Geçersiz gönderi kimliği.")
		return
	}

	var patch repositories.InstagramPostPatch
	if body.Has("caption") {
		caption := body.Get("caption")
		patch.Caption = &caption
	}

	if err := h.store.InstagramPosts().Update(r.Context(), id, patch); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.notFound(w, "Gönderi bulunamadı")
			return
		}
		h.serverError(w, "UpdateInstagramPost", err)
		return
	}
	h.ok(w)
}

func (h *AdminHandler) DeleteInstagramPost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "İstek gövdesi okunamadı.")
		return
	}
	id, ok := body.Int("id")
	if !ok {
		h.fail(w, http.StatusBadRequest, "Geçersiz gönderi kimliği.")
		return
	}

	post, err := h.store.InstagramPosts().GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.notFound(w, "Gönderi bulunamadı")
			return
		}
		h.serverError(w, "DeleteInstagramPost", err)
		return
	}
	h.images.Delete(post.Image)

	if err := h.store.InstagramPosts().Delete(r.Context(), id); err != nil {
		h.serverError(w, "DeleteInstagramPost", err)
		return
	}
	h.ok(w)
}

func (h *AdminHandler) UploadInstagramImagePost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "Resim yüklenemedi.")
		return
	}
	id, ok := body.Int("postId")
	if !ok {
		h.fail(w, http.StatusBadRequest, "Geçersiz gönderi kimliği.")
		return
	}

	post, err := h.store.InstagramPosts().GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.notFound(w, "Gönderi bulunamadı.")
			return
		}
		h.serverError(w, "UploadInstagramImagePost", err)
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
		h.serverError(w, "UploadInstagramImagePost", err)
		return
	}

	h.images.Delete(post.Image)
	if err := h.store.InstagramPosts().SetImage(r.Context(), id, &imagePath); err != nil {
		h.serverError(w, "UploadInstagramImagePost", err)
		return
	}
	h.okWithImage(w, imagePath)
}

func (h *AdminHandler) DeleteInstagramImagePost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "İstek gövdesi okunamadı.")
		return
	}
	// The dashboard sends "postId" for uploads but plain "id" here.
	id, ok := body.Int("postId")
	if !ok {
		id, ok = body.Int("id")
	}
	if !ok {
		h.fail(w, http.StatusBadRequest, "Geçersiz gönderi kimliği.")
		return
	}

	post, err := h.store.InstagramPosts().GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			h.notFound(w, "Gönderi bulunamadı")
			return
		}
		h.serverError(w, "DeleteInstagramImagePost", err)
		return
	}

	h.images.Delete(post.Image)
	if err := h.store.InstagramPosts().SetImage(r.Context(), id, nil); err != nil {
		h.serverError(w, "DeleteInstagramImagePost", err)
		return
	}
	h.ok(w)
}
