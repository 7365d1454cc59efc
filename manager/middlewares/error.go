package middlewares

import (
	"net/http"

	"github.com/VividCortex/mysqlerr"
	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"github.com/looplab/fsm"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/mapstack/atlas/manager/service"
)

type ErrorResponse struct {
	Message     string `json:"message,omitempty"`
	Error       string `json:"errors,omitempty"`
	DocumentURL string `json:"documentation_url,omitempty"`
}

func Error() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		err := c.Errors.Last()
		if err == nil {
			return
		}

		// Gin error handler
		if err, ok := errors.Cause(err.Err).(*gin.Error); ok {
			switch err.Type {
			case gin.ErrorTypeBind:
				c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
					Message: http.StatusText(http.StatusUnprocessableEntity),
					Error:   err.Error(),
				})
				return
			default:
				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: http.StatusText(http.StatusInternalServerError),
				})
				return
			}
		}

		// State conflict handler
		if err, ok := errors.Cause(err.Err).(*service.StateConflictError); ok {
			c.JSON(http.StatusConflict, ErrorResponse{
				Message: http.StatusText(http.StatusConflict),
				Error:   err.Error(),
			})
			return
		}

		// FSM invalid transition handler
		if err, ok := errors.Cause(err.Err).(fsm.InvalidEventError); ok {
			c.JSON(http.StatusConflict, ErrorResponse{
				Message: http.StatusText(http.StatusConflict),
				Error:   err.Error(),
			})
			return
		}

		// MySQL duplicate entry handler
		if err, ok := errors.Cause(err.Err).(*mysql.MySQLError); ok && err.Number == mysqlerr.ER_DUP_ENTRY {
			c.JSON(http.StatusConflict, ErrorResponse{
				Message: http.StatusText(http.StatusConflict),
			})
			return
		}

		// GORM ErrRecordNotFound handler
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Message: http.StatusText(http.StatusNotFound),
			})
			return
		}

		// Unknown error
		c.JSON(http.StatusInternalServerError, nil)
	}
}
