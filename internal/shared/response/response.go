package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// The wire contract mirrors the original catalog API: single resources
// are returned bare, 404s carry {message}, and validation failures
// carry {message, errors} with a field → messages map.

type ValidationErrorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, gin.H{"message": message})
}

func InternalServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

// ValidationFailed writes a 422 with every violated field reported.
func ValidationFailed(c *gin.Context, errs map[string][]string) {
	message := "The given data was invalid."
	c.JSON(http.StatusUnprocessableEntity, ValidationErrorBody{
		Message: message,
		Errors:  errs,
	})
}

// FieldErrors flattens an ozzo validation result into the wire's
// field → messages map. Non-validation errors yield nil.
func FieldErrors(err error) map[string][]string {
	var verrs validation.Errors
	switch e := err.(type) {
	case validation.Errors:
		verrs = e
	default:
		return nil
	}

	out := make(map[string][]string, len(verrs))
	for field, ferr := range verrs {
		out[field] = append(out[field], ferr.Error())
	}
	return out
}
