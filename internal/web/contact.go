package web

import (
	"log"
	"net/http"

	"github.com/Ayush27641/portfolio/internal/contact"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": "Contact Me",
	})
}

// submitContact answers HTMX with a success or error fragment; both are 200
// so the fragment is swapped in.
func (s *Server) submitContact(c *gin.Context) {
	if s.contact == nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "The contact form is currently unavailable.",
		})
		return
	}

	m, err := s.contact.Submit(c.Request.Context(), c.PostForm("fullName"), c.PostForm("email"), c.PostForm("message"))
	if errors.Is(err, contact.ErrNotConfigured) {
		// Stored but not mailed; the admin dashboard still lists it.
		log.Printf("Contact message %s stored without mail delivery", m.ID)
		err = nil
	}
	if err != nil {
		var verr *contact.ValidationError
		if errors.As(err, &verr) {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Please check your " + verr.Field + ": it " + verr.Reason + ".",
			})
			return
		}
		log.Printf("Error sending email: %v", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	log.Printf("Contact message %s received", m.ID)
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
