package reports

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.POST("/chamada", h.SalvarChamada)
	r.GET("/chamada/verificar", h.VerificarChamada)
	r.GET("/relatorios", h.ListRelatorios)
	r.DELETE("/relatorios/:id", h.DeleteRelatorio)
}

func (h *Handler) SalvarChamada(c *gin.Context) {
	var req CreateChamadaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apiErr(CodeInvalidArgument, "invalid json"))
		return
	}
	res, err := h.svc.SalvarChamada(c.Request.Context(), req)
	if err != nil {
		c.JSON(toHTTPStatus(err), apiErrFrom(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) VerificarChamada(c *gin.Context) {
	rel, err := h.svc.VerificarChamada(c.Request.Context(), c.Query("turma_id"), c.Query("data"))
	if err != nil {
		c.JSON(toHTTPStatus(err), apiErrFrom(err))
		return
	}
	if rel == nil {
		c.JSON(http.StatusOK, gin.H{"encontrada": false})
		return
	}
	c.JSON(http.StatusOK, VerificarResponse{Encontrada: true, RelatorioResponse: *rel})
}

func (h *Handler) ListRelatorios(c *gin.Context) {
	res, err := h.svc.ListRelatorios(c.Request.Context())
	if err != nil {
		c.JSON(toHTTPStatus(err), apiErrFrom(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) DeleteRelatorio(c *gin.Context) {
	res, err := h.svc.DeleteRelatorio(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(toHTTPStatus(err), apiErrFrom(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// ===== helpers =====

type errDTO struct {
	Error struct {
		Code    Code   `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func apiErr(code Code, msg string) errDTO {
	var e errDTO
	e.Error.Code = code
	e.Error.Message = msg
	return e
}

func apiErrFrom(err error) errDTO {
	if api, ok := err.(*APIError); ok {
		return apiErr(api.Code, api.Message)
	}
	return apiErr(CodeInternal, err.Error())
}
