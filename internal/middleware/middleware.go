package middleware

import (
	"net/http"
	"strconv"

	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
)

// ActiveProfile resolves which profile a /me request acts on. An explicit
// X-Profile-ID header wins; otherwise the most recently created profile is
// the active one (single-profile-per-device model). The resolved id is
// injected as both the "id" and "user_id" path params so the regular
// handlers serve /me routes unchanged.
func ActiveProfile(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID uint

		if raw := c.GetHeader("X-Profile-ID"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"status":  "error",
					"message": "Invalid profile header",
					"error":   "X-Profile-ID must be a valid positive integer",
				})
				c.Abort()
				return
			}
			userID = uint(id)
		} else {
			profile, err := users.FindCurrent()
			if err != nil {
				c.JSON(http.StatusNotFound, gin.H{
					"status":  "error",
					"message": "No profile exists",
					"error":   "Create a profile before using /me routes",
				})
				c.Abort()
				return
			}
			userID = profile.ID
		}

		value := strconv.FormatUint(uint64(userID), 10)
		c.Set("user_id", userID)
		c.Params = append(c.Params,
			gin.Param{Key: "id", Value: value},
			gin.Param{Key: "user_id", Value: value},
		)
		c.Next()
	}
}
