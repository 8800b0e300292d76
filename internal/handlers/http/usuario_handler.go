package http

import (
	errs "errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cadastrodev/usuarios-backend/internal/domain/errors"
	"github.com/cadastrodev/usuarios-backend/internal/domain/valueobjects"
	"github.com/cadastrodev/usuarios-backend/internal/handlers/dto"
	"github.com/cadastrodev/usuarios-backend/internal/services"
)

// UsuarioHandler lida com requisições HTTP do recurso /usuarios.
// Toda a tradução de erro de negócio para status HTTP vive aqui; o
// serviço não conhece HTTP.
type UsuarioHandler struct {
	usuarioService *services.UsuarioService
}

// NewUsuarioHandler cria um novo UsuarioHandler
func NewUsuarioHandler(usuarioService *services.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{
		usuarioService: usuarioService,
	}
}

// Listar godoc
// @Summary Lista todos os usuários
// @Tags usuarios
// @Produce json
// @Success 200 {array} dto.UsuarioResponse
// @Router /usuarios [get]
func (h *UsuarioHandler) Listar(c *gin.Context) {
	usuarios, err := h.usuarioService.Listar(c.Request.Context())
	if err != nil {
		dto.RespondProblem(c, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToUsuarioResponses(usuarios))
}

// Obter godoc
// @Summary Busca um usuário por id
// @Tags usuarios
// @Produce json
// @Param id path int true "Id do usuário"
// @Success 200 {object} dto.UsuarioResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /usuarios/{id} [get]
func (h *UsuarioHandler) Obter(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	usuario, err := h.usuarioService.Obter(c.Request.Context(), id)
	if err != nil {
		dto.RespondProblem(c, dto.InternalErrorResponseI18n(c))
		return
	}
	if usuario == nil {
		dto.RespondProblem(c, dto.NotFoundErrorResponseI18n(c, "Usuario"))
		return
	}

	c.JSON(http.StatusOK, dto.ToUsuarioResponse(usuario))
}

// Criar godoc
// @Summary Cria um novo usuário
// @Tags usuarios
// @Accept json
// @Produce json
// @Param usuario body dto.CriarUsuarioRequest true "Dados do usuário"
// @Success 201 {object} dto.UsuarioResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /usuarios [post]
func (h *UsuarioHandler) Criar(c *gin.Context) {
	var req dto.CriarUsuarioRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondProblem(c, dto.ValidationErrorResponseI18n(c, dto.TraduzirErrosValidacao(c, err)))
		return
	}

	usuario, err := h.usuarioService.Criar(c.Request.Context(), req.ToInput())
	if err != nil {
		h.responderErro(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/usuarios/%d", usuario.ID))
	c.JSON(http.StatusCreated, dto.ToUsuarioResponse(usuario))
}

// Atualizar godoc
// @Summary Atualiza um usuário existente
// @Tags usuarios
// @Accept json
// @Produce json
// @Param id path int true "Id do usuário"
// @Param usuario body dto.AtualizarUsuarioRequest true "Dados do usuário"
// @Success 200 {object} dto.UsuarioResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /usuarios/{id} [put]
func (h *UsuarioHandler) Atualizar(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.AtualizarUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondProblem(c, dto.ValidationErrorResponseI18n(c, dto.TraduzirErrosValidacao(c, err)))
		return
	}

	usuario, err := h.usuarioService.Atualizar(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.responderErro(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUsuarioResponse(usuario))
}

// Remover godoc
// @Summary Desativa um usuário (soft delete)
// @Tags usuarios
// @Param id path int true "Id do usuário"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /usuarios/{id} [delete]
func (h *UsuarioHandler) Remover(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	removido, err := h.usuarioService.Remover(c.Request.Context(), id)
	if err != nil {
		dto.RespondProblem(c, dto.InternalErrorResponseI18n(c))
		return
	}
	if !removido {
		dto.RespondProblem(c, dto.NotFoundErrorResponseI18n(c, "Usuario"))
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID lê o id numérico da rota; valor não numérico equivale a uma
// rota que não existe (404), como no contrato original.
func (h *UsuarioHandler) parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		dto.RespondProblem(c, dto.NotFoundErrorResponseI18n(c, "Usuario"))
		return 0, false
	}
	return id, true
}

// responderErro mapeia os erros tipados do serviço para o status HTTP:
// email duplicado 409, não encontrado 404, email malformado 400 e
// qualquer falha de persistência 500 com detalhe genérico.
func (h *UsuarioHandler) responderErro(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errors.ErrEmailJaCadastrado):
		dto.RespondProblem(c, dto.ConflictErrorResponseI18n(c, "error.email_ja_cadastrado"))
	case errs.Is(err, errors.ErrUsuarioNaoEncontrado):
		dto.RespondProblem(c, dto.NotFoundErrorResponseI18n(c, "Usuario"))
	case errs.Is(err, valueobjects.ErrInvalidEmail):
		dto.RespondProblem(c, dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
			{Field: "email", Message: dto.T(c, "validation.email.email"), Tag: "email"},
		}))
	default:
		dto.RespondProblem(c, dto.InternalErrorResponseI18n(c))
	}
}
