package rest

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/skillsprout/marketplace-service/internal/config"
	api "github.com/skillsprout/marketplace-service/internal/generated"
	"github.com/skillsprout/marketplace-service/internal/model"
	"github.com/skillsprout/marketplace-service/internal/pkg/tx"
)

func (h *Handler) GetHobbies(w http.ResponseWriter, r *http.Request, params api.GetHobbiesParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetHobbies")

	filter := model.HobbyFilter{}
	if params.Category != nil {
		filter.Category = *params.Category
	}
	if params.Search != nil {
		filter.Search = *params.Search
	}
	if params.Sort != nil {
		filter.Sort = *params.Sort
	}

	hobbies, err := h.repository.GetHobbies(r.Context(), filter)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get hobbies: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get hobbies: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.GetHobbiesResponse{
		Hobbies: toAPIHobbies(*hobbies),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetHobby(w http.ResponseWriter, r *http.Request, hobbyId int64) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetHobby")

	hobby, err := h.repository.GetHobby(r.Context(), hobbyId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get hobby: %v", err))
		h.writeError(w, "hobby not found", http.StatusNotFound)
		return
	}

	reviews, err := h.repository.GetHobbyReviews(r.Context(), hobbyId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get reviews: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get reviews: %v", err), http.StatusInternalServerError)
		return
	}

	apiReviews := make([]api.Review, len(*reviews))
	for i, review := range *reviews {
		apiReviews[i] = api.Review{
			Rating:       review.Rating,
			Comment:      review.Comment,
			AuthorName:   review.AuthorName,
			AuthorAvatar: review.AuthorAvatar,
			CreatedAt:    review.CreatedAt.Format(time.RFC3339),
		}
	}

	var lessons *string
	if len(hobby.Lessons) > 0 {
		curriculum := string(hobby.Lessons)
		lessons = &curriculum
	}

	response := api.GetHobbyResponse{
		Hobby:   toAPIHobby(*hobby),
		Lessons: lessons,
		Reviews: apiReviews,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) CreateHobby(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateHobby")

	var req api.CreateHobbyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	creatorID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get creator ID")
		h.writeError(w, "failed to get creator ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateCreateHobby(&req); err != nil {
		logger.Error(fmt.Sprintf("hobby validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("hobby validation failed: %v", err), http.StatusBadRequest)
		return
	}

	profile, err := h.repository.GetProfile(r.Context(), creatorID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get creator profile: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get creator profile: %v", err), http.StatusInternalServerError)
		return
	}

	if profile.Role != model.RoleTutor {
		logger.Error(fmt.Sprintf("user %s is not a tutor", creatorID))
		h.writeError(w, "only tutors can create listings", http.StatusForbidden)
		return
	}

	hobby := model.Hobby{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageUrl,
		Price:       req.Price,
		Price1on1:   req.Price1on1,
		CreatedBy:   creatorID,
	}

	if req.Lessons != nil {
		hobby.Lessons = []byte(*req.Lessons)
	}

	hobbyID, err := h.repository.CreateHobby(r.Context(), &hobby)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create hobby: %v", err))
		h.writeError(w, fmt.Sprintf("failed to create hobby: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.CreateHobbyResponse{
		Id:     hobbyID,
		Status: model.HobbyStatusPending,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) EnrollHobby(w http.ResponseWriter, r *http.Request, hobbyId int64) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("EnrollHobby")

	var req api.EnrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateEnroll(&req); err != nil {
		logger.Error(fmt.Sprintf("enroll validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("enroll validation failed: %v", err), http.StatusBadRequest)
		return
	}

	hobby, err := h.repository.GetHobby(r.Context(), hobbyId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get hobby: %v", err))
		h.writeError(w, "hobby not found", http.StatusNotFound)
		return
	}

	if hobby.Status != model.HobbyStatusApproved {
		logger.Error(fmt.Sprintf("hobby %d is not approved", hobbyId))
		h.writeError(w, "listing is not open for enrollment", http.StatusForbidden)
		return
	}

	if hobby.CreatedBy == userUUID {
		logger.Error(fmt.Sprintf("user %s attempted to enroll in own hobby %d", userUUID, hobbyId))
		h.writeError(w, "tutors cannot enroll in their own listing", http.StatusForbidden)
		return
	}

	enrolled, err := h.repository.HasActiveEnrollment(r.Context(), userUUID, hobbyId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check enrollment: %v", err))
		h.writeError(w, fmt.Sprintf("failed to check enrollment: %v", err), http.StatusInternalServerError)
		return
	}

	if enrolled {
		logger.Warn(fmt.Sprintf("user %s is already enrolled in hobby %d", userUUID, hobbyId))
		h.writeError(w, "already enrolled in this listing", http.StatusConflict)
		return
	}

	// The coaching price is a surcharge on top of the course price, and the
	// plan includes the course itself.
	amount := hobby.Price
	planName := fmt.Sprintf("Enrollment: %s", hobby.Title)
	if req.Plan == model.PlanCoaching {
		amount = hobby.Price + hobby.Price1on1
		planName = fmt.Sprintf("1-on-1 Coaching (Includes Course): %s", hobby.Title)
	}

	// The student's payment and the tutor's net earning are booked in the
	// same transaction as the enrollment itself.
	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		enrollment := model.Enrollment{
			UserID:          userUUID,
			HobbyID:         hobbyId,
			Status:          model.EnrollmentStatusActive,
			CoachingEnabled: req.Plan == model.PlanCoaching,
		}

		if err := h.repository.CreateEnrollment(ctx, &enrollment); err != nil {
			logger.Error(fmt.Sprintf("failed to create enrollment: %v", err))
			return fmt.Errorf("failed to create enrollment: %v", err)
		}

		payment := model.Transaction{
			ProfileID: userUUID,
			HobbyID:   hobbyId,
			Amount:    amount,
			PlanName:  planName,
			Type:      model.TransactionTypePayment,
		}

		if err := h.repository.CreateTransaction(ctx, &payment); err != nil {
			logger.Error(fmt.Sprintf("failed to record payment: %v", err))
			return fmt.Errorf("failed to record payment: %v", err)
		}

		earning := model.Transaction{
			ProfileID: hobby.CreatedBy,
			HobbyID:   hobbyId,
			Amount:    roundCents(amount * (1 - model.PlatformFee)),
			PlanName:  fmt.Sprintf("Student Payment: %s", planName),
			Type:      model.TransactionTypeEarning,
		}

		if err := h.repository.CreateTransaction(ctx, &earning); err != nil {
			logger.Error(fmt.Sprintf("failed to record earning: %v", err))
			return fmt.Errorf("failed to record earning: %v", err)
		}

		return nil
	})

	if err != nil {
		logger.Error(fmt.Sprintf("failed to complete enrollment transaction: %v", err))
		h.writeError(w, fmt.Sprintf("failed to enroll: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.EnrollResponse{
		AmountCharged: amount,
		PlanName:      planName,
		Status:        model.EnrollmentStatusActive,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request, hobbyId int64) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateReview")

	var req api.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateCreateReview(&req); err != nil {
		logger.Error(fmt.Sprintf("review validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("review validation failed: %v", err), http.StatusBadRequest)
		return
	}

	completed, err := h.repository.HasCompletedEnrollment(r.Context(), userUUID, hobbyId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check enrollment: %v", err))
		h.writeError(w, fmt.Sprintf("failed to check enrollment: %v", err), http.StatusInternalServerError)
		return
	}

	if !completed {
		logger.Error(fmt.Sprintf("user %s has no completed enrollment in hobby %d", userUUID, hobbyId))
		h.writeError(w, "finish the course before leaving a review", http.StatusForbidden)
		return
	}

	review := model.Review{
		UserID:  userUUID,
		HobbyID: hobbyId,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	reviewID, err := h.repository.CreateReview(r.Context(), &review)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create review: %v", err))
		h.writeError(w, fmt.Sprintf("failed to create review: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.CreateReviewResponse{
		Id: reviewID,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetProfile")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	profile, err := h.repository.GetProfile(r.Context(), userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get profile: %v", err))
		h.writeError(w, "profile not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, toAPIProfile(*profile), http.StatusOK)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateProfile")

	var req api.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateUpdateProfile(&req); err != nil {
		logger.Error(fmt.Sprintf("profile validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("profile validation failed: %v", err), http.StatusBadRequest)
		return
	}

	profile := model.Profile{
		ID:        userUUID,
		FullName:  req.FullName,
		Bio:       req.Bio,
		AvatarURL: req.AvatarUrl,
	}

	if err := h.repository.UpdateProfile(r.Context(), &profile); err != nil {
		logger.Error(fmt.Sprintf("failed to update profile: %v", err))
		h.writeError(w, fmt.Sprintf("failed to update profile: %v", err), http.StatusInternalServerError)
		return
	}

	updated, err := h.repository.GetProfile(r.Context(), userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to reload profile: %v", err))
		h.writeError(w, fmt.Sprintf("failed to reload profile: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, toAPIProfile(*updated), http.StatusOK)
}

func (h *Handler) GetEnrollments(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetEnrollments")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	enrollments, err := h.repository.GetEnrollments(r.Context(), userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get enrollments: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get enrollments: %v", err), http.StatusInternalServerError)
		return
	}

	apiEnrollments := make([]api.Enrollment, len(*enrollments))
	for i, enrollment := range *enrollments {
		apiEnrollments[i] = api.Enrollment{
			Id:              enrollment.ID,
			HobbyId:         enrollment.HobbyID,
			HobbyTitle:      enrollment.HobbyTitle,
			HobbyImageUrl:   enrollment.HobbyImageURL,
			TutorName:       enrollment.TutorName,
			Status:          enrollment.Status,
			CoachingEnabled: enrollment.CoachingEnabled,
			CreatedAt:       enrollment.CreatedAt.Format(time.RFC3339),
		}
	}

	response := api.GetEnrollmentsResponse{
		Enrollments: apiEnrollments,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetTutorRoster(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetTutorRoster")

	tutorID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get tutor ID")
		h.writeError(w, "failed to get tutor ID", http.StatusInternalServerError)
		return
	}

	roster, err := h.repository.GetTutorRoster(r.Context(), tutorID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get roster: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get roster: %v", err), http.StatusInternalServerError)
		return
	}

	apiRoster := make([]api.RosterEntry, len(*roster))
	for i, entry := range *roster {
		apiRoster[i] = api.RosterEntry{
			EnrollmentId:    entry.ID,
			HobbyId:         entry.HobbyID,
			HobbyTitle:      entry.HobbyTitle,
			StudentId:       entry.StudentID,
			StudentName:     entry.StudentName,
			StudentAvatar:   entry.StudentAvatar,
			Status:          entry.Status,
			CoachingEnabled: entry.CoachingEnabled,
			CreatedAt:       entry.CreatedAt.Format(time.RFC3339),
		}
	}

	response := api.GetTutorRosterResponse{
		Roster: apiRoster,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GraduateEnrollment(w http.ResponseWriter, r *http.Request, enrollmentId int64) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GraduateEnrollment")

	tutorID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get tutor ID")
		h.writeError(w, "failed to get tutor ID", http.StatusInternalServerError)
		return
	}

	enrollment, err := h.repository.GetEnrollment(r.Context(), enrollmentId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get enrollment: %v", err))
		h.writeError(w, "enrollment not found", http.StatusNotFound)
		return
	}

	if enrollment.TutorID != tutorID {
		logger.Error(fmt.Sprintf("user %s is not the tutor of enrollment %d", tutorID, enrollmentId))
		h.writeError(w, "only the listing owner can graduate a student", http.StatusForbidden)
		return
	}

	graduated, err := h.repository.GraduateEnrollment(r.Context(), enrollmentId, tutorID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to graduate enrollment: %v", err))
		h.writeError(w, fmt.Sprintf("failed to graduate enrollment: %v", err), http.StatusInternalServerError)
		return
	}

	if !graduated {
		logger.Warn(fmt.Sprintf("enrollment %d is not active", enrollmentId))
		h.writeError(w, "enrollment is not active", http.StatusConflict)
		return
	}

	logger.Info(fmt.Sprintf("enrollment %d graduated", enrollmentId))

	response := api.GraduateEnrollmentResponse{
		EnrollmentId: enrollmentId,
		Status:       model.EnrollmentStatusCompleted,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetMyReviews(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMyReviews")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	written, err := h.repository.GetWrittenReviews(r.Context(), userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get written reviews: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get written reviews: %v", err), http.StatusInternalServerError)
		return
	}

	received, err := h.repository.GetReceivedReviews(r.Context(), userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get received reviews: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get received reviews: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.GetMyReviewsResponse{
		Written:  toAPIUserReviews(*written),
		Received: toAPIUserReviews(*received),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetTransactions")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	transactions, err := h.repository.GetTransactions(r.Context(), userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get transactions: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get transactions: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.GetTransactionsResponse{
		Transactions: toAPITransactions(*transactions),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetTutors(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetTutors")

	tutors, err := h.repository.GetTutors(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get tutors: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get tutors: %v", err), http.StatusInternalServerError)
		return
	}

	apiTutors := make([]api.Profile, len(*tutors))
	for i, tutor := range *tutors {
		apiTutors[i] = toAPIProfile(tutor)
	}

	response := api.GetTutorsResponse{
		Tutors: apiTutors,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SubmitApplication")

	var req api.SubmitApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateSubmitApplication(&req); err != nil {
		logger.Error(fmt.Sprintf("application validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("application validation failed: %v", err), http.StatusBadRequest)
		return
	}

	exists, err := h.repository.HasTutorApplication(r.Context(), userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check application: %v", err))
		h.writeError(w, fmt.Sprintf("failed to check application: %v", err), http.StatusInternalServerError)
		return
	}

	if exists {
		logger.Warn(fmt.Sprintf("user %s already has a tutor application", userUUID))
		h.writeError(w, "application already submitted", http.StatusConflict)
		return
	}

	application := model.TutorApplication{
		UserID:        userUUID,
		FullName:      req.FullName,
		Expertise:     req.Expertise,
		Motivation:    req.Motivation,
		CredentialURL: req.CredentialUrl,
	}

	if err := h.repository.CreateTutorApplication(r.Context(), &application); err != nil {
		logger.Error(fmt.Sprintf("failed to create application: %v", err))
		h.writeError(w, fmt.Sprintf("failed to create application: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, map[string]string{"status": model.ApplicationStatusPending}, http.StatusOK)
}

func (h *Handler) UploadFile(w http.ResponseWriter, r *http.Request, bucket string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UploadFile")

	var req api.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateUpload(&req); err != nil {
		logger.Error(fmt.Sprintf("upload validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("upload validation failed: %v", err), http.StatusBadRequest)
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to decode file data: %v", err))
		h.writeError(w, "data must be base64 encoded", http.StatusBadRequest)
		return
	}

	// Uploads are namespaced per user so one account cannot overwrite
	// another's files.
	fileName := fmt.Sprintf("%s/%d_%s", userUUID, time.Now().Unix(), req.FileName)

	publicURL, err := h.storageClient.Upload(r.Context(), bucket, fileName, req.ContentType, data)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to upload file: %v", err))
		h.writeError(w, fmt.Sprintf("failed to upload file: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.UploadResponse{
		PublicUrl: publicURL,
	}

	h.writeJSON(w, response, http.StatusOK)
}

// ----------------------------- mapping -----------------------------

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

func toAPIHobby(hobby model.Hobby) api.Hobby {
	return api.Hobby{
		Id:          hobby.ID,
		Title:       hobby.Title,
		Description: hobby.Description,
		Category:    hobby.Category,
		ImageUrl:    hobby.ImageURL,
		Price:       hobby.Price,
		Price1on1:   hobby.Price1on1,
		Status:      hobby.Status,
		Featured:    hobby.Featured,
		CreatedBy:   hobby.CreatedBy,
		TutorName:   hobby.TutorName,
		CreatedAt:   hobby.CreatedAt.Format(time.RFC3339),
	}
}

func toAPIHobbies(hobbies model.HobbyList) []api.Hobby {
	apiHobbies := make([]api.Hobby, len(hobbies))
	for i, hobby := range hobbies {
		apiHobbies[i] = toAPIHobby(hobby)
	}

	return apiHobbies
}

func toAPIProfile(profile model.Profile) api.Profile {
	return api.Profile{
		Id:        profile.ID,
		FullName:  profile.FullName,
		Bio:       profile.Bio,
		AvatarUrl: profile.AvatarURL,
		Role:      profile.Role,
		CreatedAt: profile.CreatedAt.Format(time.RFC3339),
	}
}

func toAPIUserReviews(reviews model.ReviewList) []api.UserReview {
	apiReviews := make([]api.UserReview, len(reviews))
	for i, review := range reviews {
		apiReviews[i] = api.UserReview{
			HobbyId:      review.HobbyID,
			HobbyTitle:   review.HobbyTitle,
			Rating:       review.Rating,
			Comment:      review.Comment,
			AuthorName:   review.AuthorName,
			AuthorAvatar: review.AuthorAvatar,
			CreatedAt:    review.CreatedAt.Format(time.RFC3339),
		}
	}

	return apiReviews
}

func toAPITransactions(transactions model.TransactionList) []api.Transaction {
	apiTransactions := make([]api.Transaction, len(transactions))
	for i, transaction := range transactions {
		apiTransactions[i] = api.Transaction{
			Id:        transaction.ID,
			HobbyId:   transaction.HobbyID,
			Amount:    transaction.Amount,
			PlanName:  transaction.PlanName,
			Type:      transaction.Type,
			CreatedAt: transaction.CreatedAt.Format(time.RFC3339),
		}
	}

	return apiTransactions
}
