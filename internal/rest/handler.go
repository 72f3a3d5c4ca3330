package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/skillsprout/marketplace-service/internal/client/centrifugo"
	"github.com/skillsprout/marketplace-service/internal/codec"
	"github.com/skillsprout/marketplace-service/internal/config"
	api "github.com/skillsprout/marketplace-service/internal/generated"
	"github.com/skillsprout/marketplace-service/internal/model"
	"github.com/skillsprout/marketplace-service/internal/pkg/tx"
)

type Handler struct {
	repository       DBRepo
	unreadStore      UnreadStore
	centrifugeClient CentrifugeClient
	storageClient    StorageClient
	validator        Validator
	jwtGenerator     JWTGenerator
	adminPIN         string
}

func New(
	repo DBRepo,
	unreadStore UnreadStore,
	centrifugeClient CentrifugeClient,
	storageClient StorageClient,
	validator Validator,
	jwtGenerator JWTGenerator,
	adminPIN string,
) *Handler {
	return &Handler{
		repository:       repo,
		unreadStore:      unreadStore,
		centrifugeClient: centrifugeClient,
		storageClient:    storageClient,
		validator:        validator,
		jwtGenerator:     jwtGenerator,
		adminPIN:         adminPIN,
	}
}

func (h *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetContacts")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	contacts, err := h.repository.GetContacts(r.Context(), userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get contacts: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get contacts: %v", err), http.StatusInternalServerError)
		return
	}

	counterpartIDs := make([]string, len(*contacts))
	for i, contact := range *contacts {
		counterpartIDs[i] = contact.UserID
	}

	counts, err := h.unreadStore.Counts(r.Context(), userUUID, counterpartIDs)
	if err != nil {
		logger.Warn(fmt.Sprintf("failed to read unread counters: %v", err))
		counts = map[string]int64{}
	}

	apiContacts := make([]api.Contact, len(*contacts))
	for i, contact := range *contacts {
		var lastMessageTimestamp *string
		if contact.LastMessageTimestamp != nil {
			timestamp := contact.LastMessageTimestamp.Format(time.RFC3339)
			lastMessageTimestamp = &timestamp
		}

		var lastMessageContent *string
		if contact.LastMessageContent != nil {
			preview := codec.Decode(*contact.LastMessageContent).DisplayText
			lastMessageContent = &preview
		}

		apiContacts[i] = api.Contact{
			UserId:               contact.UserID,
			FullName:             contact.FullName,
			AvatarUrl:            &contact.AvatarURL,
			LastMessageContent:   lastMessageContent,
			LastMessageTimestamp: lastMessageTimestamp,
			UnreadCount:          counts[contact.UserID],
		}
	}

	response := api.GetContactsResponse{
		Contacts: apiContacts,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetConversationMessages(w http.ResponseWriter, r *http.Request, userId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversationMessages")

	requesterID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "failed to get requester id", http.StatusInternalServerError)
		return
	}

	messages, err := h.repository.GetConversationMessages(r.Context(), requesterID, userId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeError(w, fmt.Sprintf("failed to fetch messages: %v", err), http.StatusInternalServerError)
		return
	}

	// Opening a conversation marks it read.
	if err := h.unreadStore.Reset(r.Context(), requesterID, userId); err != nil {
		logger.Warn(fmt.Sprintf("failed to reset unread counter: %v", err))
	}

	apiMessages := make([]api.Message, len(*messages))
	for i, msg := range *messages {
		apiMessages[i] = api.Message{
			Id:         msg.ID.String(),
			SenderId:   msg.SenderID.String(),
			ReceiverId: msg.ReceiverID.String(),
			Content:    msg.Content,
			CreatedAt:  msg.CreatedAt.Format(time.RFC3339),
			Parsed:     toAPIParsed(codec.Decode(msg.Content)),
		}
	}

	response := api.GetConversationMessagesResponse{
		Messages: apiMessages,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) SendConversationMessage(w http.ResponseWriter, r *http.Request, userId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendConversationMessage")

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	receiverID, err := uuid.Parse(userId)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid receiver id: %v", err))
		h.writeError(w, "invalid receiver id", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateSendMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	content := req.Content
	if req.Context != nil {
		content = codec.EncodeContextCard(codec.ContextCard{
			Lesson: req.Context.Lesson,
			Course: req.Context.Course,
			Image:  req.Context.Image,
		}, req.Content)
	}

	message := model.Message{
		ID:         uuid.New(),
		SenderID:   uuid.MustParse(senderID),
		ReceiverID: receiverID,
		Content:    content,
		CreatedAt:  time.Now(),
	}

	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		if err := h.repository.SaveMessage(ctx, &message); err != nil {
			logger.Error(fmt.Sprintf("failed to save message: %v", err))
			return fmt.Errorf("failed to save message: %v", err)
		}

		return nil
	})

	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message transaction: %v", err))
		h.writeError(w, fmt.Sprintf("failed to send message: %v", err), http.StatusInternalServerError)
		return
	}

	h.deliverMessage(r.Context(), logger, message)

	response := api.SendMessageResponse{
		MessageId: message.ID.String(),
		SentAt:    message.CreatedAt.Format(time.RFC3339),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetConnectToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectToken")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(userUUID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate access token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated access token for user %s", userUUID))

	response := api.GetConnectTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetSubscribeToken(w http.ResponseWriter, r *http.Request, userId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetSubscribeToken")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	channel := centrifugo.PairChannel(userUUID, userId)

	token, expiresAt, err := h.jwtGenerator.GenerateSubscribeToken(userUUID, userId, channel)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate subscribe token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated subscribe token for user %s, channel %s", userUUID, channel))

	response := api.GetSubscribeTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Channel:   channel,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetBookingEligibility(w http.ResponseWriter, r *http.Request, userId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetBookingEligibility")

	studentID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get student ID")
		h.writeError(w, "failed to get student ID", http.StatusInternalServerError)
		return
	}

	eligible, err := h.repository.HasCoachingEnrollment(r.Context(), studentID, userId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check booking eligibility: %v", err))
		h.writeError(w, fmt.Sprintf("failed to check booking eligibility: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.GetBookingEligibilityResponse{
		Eligible: eligible,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) RequestAppointment(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RequestAppointment")

	var req api.RequestAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	studentID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get student ID")
		h.writeError(w, "failed to get student ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateRequestAppointment(&req); err != nil {
		logger.Error(fmt.Sprintf("appointment validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("appointment validation failed: %v", err), http.StatusBadRequest)
		return
	}

	// Eligibility is checked again here, not trusted from the client: only
	// students with an active coaching enrollment for this tutor may book.
	eligible, err := h.repository.HasCoachingEnrollment(r.Context(), studentID, req.TutorId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check booking eligibility: %v", err))
		h.writeError(w, fmt.Sprintf("failed to check booking eligibility: %v", err), http.StatusInternalServerError)
		return
	}

	if !eligible {
		logger.Error(fmt.Sprintf("student %s has no coaching enrollment with tutor %s", studentID, req.TutorId))
		h.writeError(w, "coaching enrollment required to book an appointment", http.StatusForbidden)
		return
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to parse scheduled_at: %v", err))
		h.writeError(w, "scheduled_at must be a valid RFC3339 timestamp", http.StatusBadRequest)
		return
	}

	var appointmentID int64
	var message model.Message
	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		appointment := model.Appointment{
			StudentID:   studentID,
			TutorID:     req.TutorId,
			ScheduledAt: scheduledAt,
			Status:      model.AppointmentStatusPending,
		}

		appointmentID, err = h.repository.CreateAppointment(ctx, &appointment)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to create appointment: %v", err))
			return fmt.Errorf("failed to create appointment: %v", err)
		}

		message = model.Message{
			ID:         uuid.New(),
			SenderID:   uuid.MustParse(studentID),
			ReceiverID: uuid.MustParse(req.TutorId),
			Content: codec.EncodeAppointmentRequest(codec.AppointmentRequest{
				ID:     appointmentID,
				Date:   scheduledAt.Format(time.RFC3339),
				Status: model.AppointmentStatusPending,
			}),
			CreatedAt: time.Now(),
		}

		if err := h.repository.SaveMessage(ctx, &message); err != nil {
			logger.Error(fmt.Sprintf("failed to save appointment message: %v", err))
			return fmt.Errorf("failed to save appointment message: %v", err)
		}

		return nil
	})

	if err != nil {
		logger.Error(fmt.Sprintf("failed to complete appointment transaction: %v", err))
		h.writeError(w, fmt.Sprintf("failed to request appointment: %v", err), http.StatusInternalServerError)
		return
	}

	h.deliverMessage(r.Context(), logger, message)

	response := api.AppointmentResponse{
		AppointmentId: appointmentID,
		Status:        model.AppointmentStatusPending,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) AcceptAppointment(w http.ResponseWriter, r *http.Request, appointmentId int64) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AcceptAppointment")

	tutorID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get tutor ID")
		h.writeError(w, "failed to get tutor ID", http.StatusInternalServerError)
		return
	}

	appointment, err := h.repository.GetAppointment(r.Context(), appointmentId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get appointment: %v", err))
		h.writeError(w, "appointment not found", http.StatusNotFound)
		return
	}

	if appointment.TutorID != tutorID {
		logger.Error(fmt.Sprintf("user %s is not the tutor of appointment %d", tutorID, appointmentId))
		h.writeError(w, "only the requested tutor can accept this appointment", http.StatusForbidden)
		return
	}

	meetingLink := "https://meet.google.com/lookup/" + uuid.New().String()

	var message model.Message
	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		accepted, err := h.repository.AcceptAppointment(ctx, appointmentId, tutorID, meetingLink)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to accept appointment: %v", err))
			return fmt.Errorf("failed to accept appointment: %v", err)
		}

		if !accepted {
			return errAlreadyHandled
		}

		message = model.Message{
			ID:         uuid.New(),
			SenderID:   uuid.MustParse(tutorID),
			ReceiverID: uuid.MustParse(appointment.StudentID),
			Content: codec.EncodeAppointmentRequest(codec.AppointmentRequest{
				ID:     appointmentId,
				Date:   appointment.ScheduledAt.Format(time.RFC3339),
				Status: model.AppointmentStatusAccepted,
				Link:   &meetingLink,
			}),
			CreatedAt: time.Now(),
		}

		if err := h.repository.SaveMessage(ctx, &message); err != nil {
			logger.Error(fmt.Sprintf("failed to save confirmation message: %v", err))
			return fmt.Errorf("failed to save confirmation message: %v", err)
		}

		return nil
	})

	if err == errAlreadyHandled {
		logger.Warn(fmt.Sprintf("appointment %d is no longer pending", appointmentId))
		h.writeError(w, "appointment is no longer pending", http.StatusConflict)
		return
	}

	if err != nil {
		logger.Error(fmt.Sprintf("failed to complete accept transaction: %v", err))
		h.writeError(w, fmt.Sprintf("failed to accept appointment: %v", err), http.StatusInternalServerError)
		return
	}

	h.deliverMessage(r.Context(), logger, message)

	response := api.AppointmentResponse{
		AppointmentId: appointmentId,
		Status:        model.AppointmentStatusAccepted,
		MeetingLink:   &meetingLink,
	}

	h.writeJSON(w, response, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

var errAlreadyHandled = fmt.Errorf("appointment is no longer pending")

// deliverMessage fans a stored message out to the realtime channel and bumps
// the receiver's unread counter. Both are best-effort: the message is already
// durable, so delivery failures are logged and swallowed.
func (h *Handler) deliverMessage(ctx context.Context, logger logger_lib.LoggerInterface, message model.Message) {
	channel := centrifugo.PairChannel(message.SenderID.String(), message.ReceiverID.String())
	if err := h.centrifugeClient.Publish(ctx, channel, message); err != nil {
		logger.Error(fmt.Sprintf("failed to publish message to channel: %v", err))
	}

	if err := h.unreadStore.Increment(ctx, message.ReceiverID.String(), message.SenderID.String()); err != nil {
		logger.Warn(fmt.Sprintf("failed to increment unread counter: %v", err))
	}
}

func toAPIParsed(parsed codec.ParsedMessage) api.ParsedContent {
	content := api.ParsedContent{
		Kind:        string(parsed.Kind),
		DisplayText: parsed.DisplayText,
	}

	if parsed.ContextCard != nil {
		content.ContextCard = &api.ParsedContextCard{
			Lesson: parsed.ContextCard.Lesson,
			Course: parsed.ContextCard.Course,
			Image:  parsed.ContextCard.Image,
		}
	}

	if parsed.Appointment != nil {
		content.Appointment = &api.ParsedAppointment{
			Id:     parsed.Appointment.ID,
			Date:   parsed.Appointment.Date,
			Status: parsed.Appointment.Status,
			Link:   parsed.Appointment.Link,
		}
	}

	return content
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
