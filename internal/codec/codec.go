// Package codec implements the in-band encoding that lets structured
// payloads (lesson context cards, appointment requests) travel inside the
// plain-text content column of the messages table. Decoding is best-effort:
// any malformed block degrades to a plain-text message, never an error.
package codec

import (
	"encoding/json"
	"strings"
)

const (
	contextCardOpen  = "[CONTEXT_CARD]"
	contextCardClose = "[/CONTEXT_CARD]"

	appointmentOpen  = "[APPOINTMENT_REQUEST]"
	appointmentClose = "[/APPOINTMENT_REQUEST]"
)

type Kind string

const (
	KindPlain              = Kind("plain")
	KindContextCard        = Kind("context_card")
	KindAppointmentRequest = Kind("appointment_request")
)

// ContextCard references the lesson a student is asking about. Field values
// are embedded as-is; titles must not contain the literal close tag.
type ContextCard struct {
	Lesson string `json:"lesson"`
	Course string `json:"course"`
	Image  string `json:"image"`
}

// AppointmentRequest is the denormalized snapshot of an appointment carried
// in a message. Link is set if and only if Status is "accepted".
type AppointmentRequest struct {
	ID     int64   `json:"id"`
	Date   string  `json:"date"`
	Status string  `json:"status"`
	Link   *string `json:"link"`
}

type ParsedMessage struct {
	Kind        Kind                `json:"kind"`
	DisplayText string              `json:"display_text"`
	ContextCard *ContextCard        `json:"context_card,omitempty"`
	Appointment *AppointmentRequest `json:"appointment,omitempty"`
}

// EncodeContextCard wraps the user's free text with a context block.
func EncodeContextCard(card ContextCard, freeText string) string {
	payload, _ := json.Marshal(card)
	return contextCardOpen + string(payload) + contextCardClose + "\n" + freeText
}

// EncodeAppointmentRequest produces an appointment message. Appointment
// messages carry no user-authored text.
func EncodeAppointmentRequest(req AppointmentRequest) string {
	payload, _ := json.Marshal(req)
	return appointmentOpen + string(payload) + appointmentClose
}

// Decode turns a raw content string into its typed view. The sniff order is
// fixed: context card, then appointment, then a generic JSON object with a
// "text" field, then verbatim plain text. A raw string could coincidentally
// parse as JSON, so the tagged forms must win.
func Decode(raw string) ParsedMessage {
	if msg, ok := decodeContextCard(raw); ok {
		return msg
	}

	if msg, ok := decodeAppointment(raw); ok {
		return msg
	}

	if msg, ok := decodeGenericJSON(raw); ok {
		return msg
	}

	return ParsedMessage{
		Kind:        KindPlain,
		DisplayText: raw,
	}
}

func decodeContextCard(raw string) (ParsedMessage, bool) {
	start := strings.Index(raw, contextCardOpen)
	if start == -1 {
		return ParsedMessage{}, false
	}

	rest := raw[start+len(contextCardOpen):]
	end := strings.Index(rest, contextCardClose)
	if end == -1 {
		return ParsedMessage{}, false
	}

	var card ContextCard
	if err := json.Unmarshal([]byte(strings.TrimSpace(rest[:end])), &card); err != nil {
		return ParsedMessage{}, false
	}

	return ParsedMessage{
		Kind:        KindContextCard,
		DisplayText: strings.TrimSpace(rest[end+len(contextCardClose):]),
		ContextCard: &card,
	}, true
}

func decodeAppointment(raw string) (ParsedMessage, bool) {
	start := strings.Index(raw, appointmentOpen)
	if start == -1 {
		return ParsedMessage{}, false
	}

	rest := raw[start+len(appointmentOpen):]
	end := strings.Index(rest, appointmentClose)
	if end == -1 {
		return ParsedMessage{}, false
	}

	var req AppointmentRequest
	if err := json.Unmarshal([]byte(strings.TrimSpace(rest[:end])), &req); err != nil {
		return ParsedMessage{}, false
	}

	return ParsedMessage{
		Kind:        KindAppointmentRequest,
		Appointment: &req,
	}, true
}

// decodeGenericJSON handles the forward-compatible envelope: a whole-message
// JSON object whose "text" field carries the display text.
func decodeGenericJSON(raw string) (ParsedMessage, bool) {
	var envelope struct {
		Text *string `json:"text"`
	}

	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return ParsedMessage{}, false
	}

	if envelope.Text == nil {
		return ParsedMessage{}, false
	}

	return ParsedMessage{
		Kind:        KindPlain,
		DisplayText: *envelope.Text,
	}, true
}
