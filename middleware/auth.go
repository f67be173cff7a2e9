package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	// RunKey is where RunRequired leaves the run id in the gin context.
	RunKey = "run_id"
	// SessionRunKey is the cookie session key holding the run id.
	SessionRunKey = "RunID"
)

// RunRequired lets a request through when it names a run, either with a
// Bearer run token or with the run id kept in the cookie session.
func RunRequired(tokens *RunTokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		if header := c.GetHeader("Authorization"); header != "" {
			runID, err := tokens.ParseBearer(header)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
				return
			}
			c.Set(RunKey, runID)
			c.Next()
			return
		}

		session := sessions.Default(c)
		runID, _ := session.Get(SessionRunKey).(string)
		if runID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized: no run token"})
			return
		}
		c.Set(RunKey, runID)
		c.Next()
	}
}

// RunID returns the run id RunRequired found.
func RunID(c *gin.Context) string {
	return c.GetString(RunKey)
}

// RememberRun stores the run id in the cookie session.
func RememberRun(c *gin.Context, runID string) error {
	session := sessions.Default(c)
	session.Set(SessionRunKey, runID)
	return session.Save()
}

// ForgetRun drops the run id from the cookie session.
func ForgetRun(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(SessionRunKey)
	return session.Save()
}
