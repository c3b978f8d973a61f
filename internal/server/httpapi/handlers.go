package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/voicelab/voicelab/internal/server/models"
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type signupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
}

type audioResponse struct {
	Language  string `json:"language"`
	AudioURL  string `json:"audioUrl"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type onboardingRequest struct {
	Theme           string                 `json:"theme"`
	PersonalDetails models.PersonalDetails `json:"personalDetails"`
	ReferralSource  string                 `json:"referralSource"`
	Persona         string                 `json:"persona"`
	PricingPlan     string                 `json:"pricingPlan"`
}

type onboardingResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
	Status  string `json:"status"`
}

func (s *HTTPServer) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "voicelab API is running!"})
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *HTTPServer) getAudioURL(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		writeError(w, http.StatusUnprocessableEntity, "lang query parameter is required")
		return
	}

	sample, err := s.audio.GetByLanguage(r.Context(), lang)
	if err != nil {
		s.logger.Warn(r.Context(), "audio lookup failed", "lang", lang, "error", err.Error())
		writeServiceError(w, err, "Audio URL not found for language: "+lang, "")
		return
	}

	writeJSON(w, http.StatusOK, audioResponse{
		Language:  sample.Language,
		AudioURL:  sample.URL,
		CreatedAt: sample.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: sample.UpdatedAt.UTC().Format(time.RFC3339),
	})
}

func (s *HTTPServer) createOnboardingProfile(w http.ResponseWriter, r *http.Request) {
	var req onboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	profile := &models.OnboardingProfile{
		Theme:           req.Theme,
		PersonalDetails: req.PersonalDetails,
		ReferralSource:  req.ReferralSource,
		Persona:         req.Persona,
		PricingPlan:     req.PricingPlan,
	}

	profile, err := s.onboarding.Create(r.Context(), profile)
	if err != nil {
		s.logger.Warn(r.Context(), "onboarding profile creation failed", "error", err.Error())
		writeServiceError(w, err, "", "Profile already exists")
		return
	}

	s.logger.Info(r.Context(), "onboarding profile created", "profileID", profile.ID)
	writeJSON(w, http.StatusOK, onboardingResponse{
		Message: "Onboarding profile created successfully",
		UserID:  profile.ID,
		Status:  "success",
	})
}

func (s *HTTPServer) getOnboardingProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	profile, err := s.onboarding.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Profile not found", "")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (s *HTTPServer) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	user, err := s.users.Register(r.Context(), req.Email, req.Name, req.Password)
	if err != nil {
		s.logger.Warn(r.Context(), "signup failed", "error", err.Error())
		writeServiceError(w, err, "", "User already exists")
		return
	}

	s.logger.Info(r.Context(), "user registered", "userID", user.ID)
	writeJSON(w, http.StatusOK, signupResponse{
		Message: "User created successfully",
		UserID:  user.ID,
	})
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	result, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err, "", "")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		UserID:      result.User.ID,
		Name:        result.User.Name,
		Email:       result.User.Email,
	})
}

func (s *HTTPServer) me(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	writeJSON(w, http.StatusOK, user)
}
