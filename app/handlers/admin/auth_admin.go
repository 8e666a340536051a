package admin

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"golang.org/x/crypto/bcrypt"

	"github.com/zeylcoffee/qrmenu/app/helpers"
	"github.com/zeylcoffee/qrmenu/app/utils/form"
)

type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

func (h *AdminHandler) LoginGetHandler(w http.ResponseWriter, r *http.Request) {
	if h.sessionStore.IsAdmin(r) {
		http.Redirect(w, r, "/admin/dashboard", http.StatusFound)
		return
	}
	_ = h.render.HTML(w, http.StatusOK, "admin/login", map[string]interface{}{
		"title":     "Yönetici Girişi",
		"error":     nil,
		"csrfField": csrf.TemplateField(r),
	})
}

func (h *AdminHandler) LoginPostHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("LoginPostHandler: error parsing form: %v", err)
		h.renderLoginError(w, r, "Form işlenirken bir hata oluştu.")
		return
	}

	loginForm := LoginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if err := h.validator.Struct(&loginForm); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		log.Printf("LoginPostHandler: validation failed: %v", helpers.FormatValidationErrors(validationErrors))
		h.renderLoginError(w, r, "Kullanıcı adı veya şifre hatalı!")
		return
	}

	adminRecord, err := h.store.Admin().Get(r.Context())
	if err != nil {
		log.Printf("LoginPostHandler: error loading admin record: %v", err)
		h.renderLoginError(w, r, "Sunucu hatası, lütfen tekrar deneyin.")
		return
	}

	if loginForm.Username != adminRecord.Username ||
		bcrypt.CompareHashAndPassword([]byte(adminRecord.Password), []byte(loginForm.Password)) != nil {
		h.renderLoginError(w, r, "Kullanıcı adı veya şifre hatalı!")
		return
	}

	if err := h.sessionStore.SetAdmin(w, r); err != nil {
		log.Printf("LoginPostHandler: error saving session: %v", err)
		h.renderLoginError(w, r, "Oturum başlatılamadı.")
		return
	}
	http.Redirect(w, r, "/admin/dashboard", http.StatusFound)
}

func (h *AdminHandler) renderLoginError(w http.ResponseWriter, r *http.Request, message string) {
	_ = h.render.HTML(w, http.StatusOK, "admin/login", map[string]interface{}{
		"title":     "Yönetici Girişi",
		"error":     message,
		"csrfField": csrf.TemplateField(r),
	})
}

func (h *AdminHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.Clear(w, r); err != nil {
		log.Printf("LogoutHandler: error clearing session: %v", err)
	}
	http.Redirect(w, r, "/admin/login", http.StatusFound)
}

func (h *AdminHandler) ChangePasswordPost(w http.ResponseWriter, r *http.Request) {
	body, err := form.Parse(r)
	if err != nil {
		h.fail(w, http.StatusBadRequest, "İstek gövdesi okunamadı.")
		return
	}

	currentPassword := body.Get("currentPassword")
	newPassword := body.Get("newPassword")
	if newPassword == "" {
		h.fail(w, http.StatusBadRequest, "Yeni şifre boş olamaz.")
		return
	}

	adminRecord, err := h.store.Admin().Get(r.Context())
	if err != nil {
		h.serverError(w, "ChangePasswordPost", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(adminRecord.Password), []byte(currentPassword)) != nil {
		// Same shape as the original: a 200 with success=false.
		_ = h.render.JSON(w, http.StatusOK, Ack{Success: false, Error: "Mevcut şifre hatalı!"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		h.serverError(w, "ChangePasswordPost", err)
		return
	}
	if err := h.store.Admin().UpdatePassword(r.Context(), string(hash)); err != nil {
		h.serverError(w, "ChangePasswordPost", err)
		return
	}
	h.ok(w)
}
