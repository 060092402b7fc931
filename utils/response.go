package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StandardResponse is the envelope every handler replies with.
type StandardResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(c *gin.Context, code int, status, message string, data interface{}) {
	c.JSON(code, StandardResponse{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// Success sends a 200 with the success envelope
func Success(c *gin.Context, message string, data interface{}) {
	respond(c, http.StatusOK, "success", message, data)
}

// Created sends a 201 with the success envelope
func Created(c *gin.Context, message string, data interface{}) {
	respond(c, http.StatusCreated, "success", message, data)
}

// Error sends the error envelope with the given status code. A non-nil err
// is carried under data.error for the client to inspect.
func Error(c *gin.Context, statusCode int, message string, err interface{}) {
	var data interface{}
	if err != nil {
		data = gin.H{"error": err}
	}
	respond(c, statusCode, "error", message, data)
}

// BadRequest sends a 400 Bad Request response
func BadRequest(c *gin.Context, message string, err interface{}) {
	Error(c, http.StatusBadRequest, message, err)
}

// Unauthorized sends a 401 Unauthorized response
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message, nil)
}

// NotFound sends a 404 Not Found response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}

// Conflict sends a 409 Conflict response
func Conflict(c *gin.Context, message string, err interface{}) {
	Error(c, http.StatusConflict, message, err)
}

// ValidationError sends a 422 Unprocessable Entity response
func ValidationError(c *gin.Context, message string, err interface{}) {
	Error(c, http.StatusUnprocessableEntity, message, err)
}

// InternalServerError sends a 500 Internal Server Error response
func InternalServerError(c *gin.Context, message string, err interface{}) {
	Error(c, http.StatusInternalServerError, message, err)
}

// AppErrorResponse maps an AppError (or any error) to the matching HTTP
// response. Unknown errors become a 500.
func AppErrorResponse(c *gin.Context, err error) {
	if appErr := GetAppError(err); appErr != nil {
		Error(c, appErr.Code, appErr.Message, nil)
		return
	}
	InternalServerError(c, "Internal server error", nil)
}
