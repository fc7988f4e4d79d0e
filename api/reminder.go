package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/binayakjoshi/furever-sub000/store"
)

const defaultUpcomingDays = 30

// runReminders triggers one reminder scan outside the cron schedule
func (s *Server) runReminders(c *gin.Context) {
	s.reminder.CheckAndSendReminders()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "reminder check completed",
	})
}

// upcomingVaccinations is the API to list an account's vaccinations coming
// due within the requested number of days
func (s *Server) upcomingVaccinations(c *gin.Context) {
	accountID, err := primitive.ObjectIDFromHex(c.Param("accountID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorMessageInvalidAccountID)
		return
	}

	days := defaultUpcomingDays
	if raw := c.Query("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days < 1 {
			abortWithEncoding(c, http.StatusBadRequest, errorMessageInvalidParameters)
			return
		}
	}

	if _, err := s.mongoStore.GetAccount(accountID); err != nil {
		if err == store.ErrAccountNotFound {
			abortWithEncoding(c, http.StatusNotFound, err.Error())
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorMessageInternalServer, err)
		return
	}

	upcoming, err := s.reminder.GetUpcomingVaccinations(accountID, days)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorMessageInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    upcoming,
	})
}
