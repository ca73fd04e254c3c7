package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dental-store/config"
	"dental-store/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubContactMailer struct {
	notifyErr error
	ackErr    error
	notified  int
	acked     int
}

func (s *stubContactMailer) SendContactNotification(adminEmail string, req models.ContactRequest) error {
	s.notified++
	return s.notifyErr
}

func (s *stubContactMailer) SendContactAck(req models.ContactRequest) error {
	s.acked++
	return s.ackErr
}

func contactRouter(mailer ContactMailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{AdminEmail: "admin@example.com"}

	router := gin.New()
	router.POST("/api/contact", NewContactController(mailer).SubmitContact)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	blob, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(blob))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitContactMissingFields(t *testing.T) {
	router := contactRouter(&stubContactMailer{})

	w := postJSON(router, "/api/contact", models.ContactRequest{
		FullName: "",
		Email:    "a@b.com",
		Message:  "hi",
	})

	assert.Equal(t, 400, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "All fields are required", body["error"])
}

func TestSubmitContactInvalidEmail(t *testing.T) {
	router := contactRouter(&stubContactMailer{})

	w := postJSON(router, "/api/contact", models.ContactRequest{
		FullName: "Jane Doe",
		Email:    "not-an-email",
		Message:  "hi",
	})

	assert.Equal(t, 400, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid email format", body["error"])
}

func TestSubmitContactSendsBothEmails(t *testing.T) {
	mailer := &stubContactMailer{}
	router := contactRouter(mailer)

	w := postJSON(router, "/api/contact", models.ContactRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Message:  "Please send me your catalog",
		Phone:    "555-0100",
	})

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, 1, mailer.notified)
	assert.Equal(t, 1, mailer.acked)
}

func TestSubmitContactMailFailure(t *testing.T) {
	mailer := &stubContactMailer{notifyErr: errors.New("smtp down")}
	router := contactRouter(mailer)

	w := postJSON(router, "/api/contact", models.ContactRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Message:  "hello",
	})

	assert.Equal(t, 500, w.Code)
}

func TestSubmitContactNoMailerConfigured(t *testing.T) {
	router := contactRouter(nil)

	w := postJSON(router, "/api/contact", models.ContactRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Message:  "hello",
	})

	assert.Equal(t, 500, w.Code)
}
