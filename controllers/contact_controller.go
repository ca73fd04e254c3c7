package controllers

import (
	"log"
	"regexp"
	"strings"

	"dental-store/config"
	"dental-store/models"

	"github.com/gin-gonic/gin"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactMailer is the slice of the email service the contact endpoint needs.
type ContactMailer interface {
	SendContactNotification(adminEmail string, req models.ContactRequest) error
	SendContactAck(req models.ContactRequest) error
}

type ContactController struct {
	mailer ContactMailer
}

func NewContactController(mailer ContactMailer) *ContactController {
	return &ContactController{mailer: mailer}
}

// SubmitContact godoc
// @Summary Submit contact form
// @Description Validates the message and sends admin notification plus user acknowledgement emails
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Contact Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/contact [post]
func (ctrl *ContactController) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "All fields are required"})
		return
	}

	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if req.FullName == "" || req.Email == "" || req.Message == "" {
		c.JSON(400, gin.H{"error": "All fields are required"})
		return
	}

	if !emailPattern.MatchString(req.Email) {
		c.JSON(400, gin.H{"error": "Invalid email format"})
		return
	}

	if ctrl.mailer == nil {
		c.JSON(500, gin.H{"error": "Email service unavailable"})
		return
	}

	if err := ctrl.mailer.SendContactNotification(config.AppConfig.AdminEmail, req); err != nil {
		log.Printf("Failed to send contact notification: %v", err)
		c.JSON(500, gin.H{"error": "Failed to send message"})
		return
	}

	if err := ctrl.mailer.SendContactAck(req); err != nil {
		log.Printf("Failed to send contact acknowledgement: %v", err)
		c.JSON(500, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Message sent successfully"})
}
