package response

import (
	"net/http"

	"github.com/boyarintsev1/shareit/internal/domain"
	"github.com/gin-gonic/gin"
)

// Success writes a 200 with the payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 with the payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent writes a 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest writes a 400 with an error message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// Paginated writes a 200 page envelope.
func Paginated(c *gin.Context, items interface{}, total int64, page, size int) {
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": total,
		"page":  page,
		"size":  size,
	})
}

// Error maps a domain error to its client-facing status. Not-found and both
// authorization kinds map to 404: the API does not reveal whether a booking
// exists to someone not entitled to see it. Lost optimistic-lock races map
// to 409, every remaining validation kind to 400.
func Error(c *gin.Context, err error) {
	switch domain.KindOf(err) {
	case domain.KindNotFound, domain.KindNotBooker, domain.KindNotOwner:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case domain.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case domain.KindValidation, domain.KindInvalidInterval, domain.KindPastDate,
		domain.KindItemUnavailable, domain.KindAlreadyApproved, domain.KindUnknownState:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
