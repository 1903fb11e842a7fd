package contactControllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rolamaalouf/Mishatote-front/api"
	"github.com/Rolamaalouf/Mishatote-front/mailer"
	"github.com/Rolamaalouf/Mishatote-front/models"
)

type contactInput struct {
	FirstName string `json:"first_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Subject   string `json:"subject" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// POST /contact
//
// The message is stored upstream and mirrored to the transactional
// mailer. Mail delivery is best-effort; a mailer failure never fails the
// submission.
func Submit(client *api.Client, mail *mailer.EmailJS) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in contactInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		msg := models.ContactMessage{
			FirstName: in.FirstName,
			Email:     in.Email,
			Subject:   in.Subject,
			Message:   in.Message,
		}
		if err := client.SubmitContact(c.Request.Context(), msg); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": api.Message(err, "Failed to send your message")})
			return
		}

		if err := mail.Send(c.Request.Context(), map[string]string{
			"first_name": in.FirstName,
			"email":      in.Email,
			"subject":    in.Subject,
			"message":    in.Message,
		}); err != nil {
			log.Printf("⚠️ Contact email failed: %v", err)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Message sent. We'll get back to you soon!"})
	}
}

type subscribeInput struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /subscribe
func Subscribe(mail *mailer.EmailJS) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in subscribeInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A valid email is required"})
			return
		}

		if err := mail.Send(c.Request.Context(), map[string]string{
			"email":   in.Email,
			"subject": "New subscriber",
		}); err != nil {
			log.Printf("⚠️ Subscribe email failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Subscription failed. Please try again."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Subscribed!"})
	}
}
