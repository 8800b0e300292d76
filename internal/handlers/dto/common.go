package dto

import (
	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	domainerrors "github.com/cadastrodev/usuarios-backend/internal/domain/errors"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs),
// acrescentando a lista de violações quando a falha é de validação.
type ErrorResponse struct {
	problems.Problem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// NewErrorResponseI18n cria uma resposta de erro RFC 7807 com título e
// detalhe traduzidos
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return ErrorResponse{
		Problem: problems.Problem{
			Type:     baseURL + problemType,
			Title:    T(c, titleKey, params...),
			Status:   status,
			Detail:   T(c, detailKey, params...),
			Instance: c.Request.URL.Path,
		},
	}
}

// RespondProblem escreve a resposta com o media type de problem details.
// O header precisa ser definido antes do JSON; o Gin só preenche
// Content-Type quando ele ainda está vazio.
func RespondProblem(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.JSON(response.Status, response)
}

// ValidationErrorResponseI18n cria uma resposta de erro de validação (400)
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		400,
	)
	response.Errors = validationErrors
	return response
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404
func NotFoundErrorResponseI18n(c *gin.Context, resource string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeNotFound,
		"error.not_found.title",
		"error.not_found.detail",
		404,
		map[string]interface{}{"Resource": resource},
	)
}

// ConflictErrorResponseI18n cria uma resposta de erro 409
func ConflictErrorResponseI18n(c *gin.Context, detailKey string, params ...map[string]interface{}) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeConflict,
		"error.conflict.title",
		detailKey,
		409,
		params...,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500 com detalhe
// genérico; a causa real fica apenas no log
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		500,
	)
}
