package web

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const adminCookie = "admin_token"

// NewToken returns a random hex token for admin sessions and IP salts.
func NewToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "generate token")
	}
	return hex.EncodeToString(b), nil
}

func secureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// clientHash is the hashed client IP used in admin log lines.
func (s *Server) clientHash(c *gin.Context) string {
	if s.tracker == nil {
		return "unknown"
	}
	return s.tracker.HashIP(c.ClientIP())
}

func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || !secureEqual(token, s.adminToken) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (s *Server) adminError(c *gin.Context, msg string, err error) {
	log.Printf("%s: %v", msg, err)
	c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
		"error": msg,
	})
}

func (s *Server) setupAdminRoutes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		userOK := secureEqual(c.PostForm("username"), s.admin.Username)
		passOK := secureEqual(c.PostForm("password"), s.admin.Password)
		if !userOK || !passOK {
			log.Printf("Failed admin login attempt from %s", s.clientHash(c))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"error": "Invalid credentials",
			})
			return
		}

		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, s.adminToken, 3600*24, "/admin", "", gin.Mode() == gin.ReleaseMode, true)
		log.Printf("Admin login successful from %s", s.clientHash(c))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		log.Printf("Admin logout from %s", s.clientHash(c))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	admin := r.Group("/admin")
	admin.Use(s.adminAuth())

	admin.GET("/dashboard", func(c *gin.Context) {
		if s.tracker == nil {
			s.adminError(c, "Statistics are not enabled", errors.New("no tracker"))
			return
		}
		stats, err := s.tracker.Stats(c.Request.Context())
		if err != nil {
			s.adminError(c, "Failed to load statistics", err)
			return
		}
		data := gin.H{"stats": stats}
		if s.messages != nil {
			messages, err := s.messages.Recent(c.Request.Context(), 20)
			if err != nil {
				s.adminError(c, "Failed to load messages", err)
				return
			}
			data["messages"] = messages
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", data)
	})

	admin.GET("/api/stats", func(c *gin.Context) {
		if s.tracker == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "statistics are not enabled"})
			return
		}
		stats, err := s.tracker.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	admin.GET("/visitors", func(c *gin.Context) {
		if s.tracker == nil {
			s.adminError(c, "Statistics are not enabled", errors.New("no tracker"))
			return
		}
		visitors, err := s.tracker.RecentVisitors(c.Request.Context(), 200)
		if err != nil {
			s.adminError(c, "Failed to load visitors", err)
			return
		}
		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"visitors": visitors,
		})
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		if s.tracker == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "statistics are not enabled"})
			return
		}
		removed, err := s.tracker.Cleanup(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Privacy cleanup: removed %d visitor records", removed)
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	})

	admin.GET("/export/stats", func(c *gin.Context) {
		if s.tracker == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "statistics are not enabled"})
			return
		}
		stats, err := s.tracker.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		log.Printf("Admin stats exported by %s", s.clientHash(c))
		c.JSON(http.StatusOK, stats)
	})
}
