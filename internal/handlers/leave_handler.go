package handlers

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	usecase "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/leave"
)

// anexos acima disso são recusados antes de qualquer processamento
const maxDocumentSize = 10 << 20 // 10 MiB

type LeaveHandler struct {
	submitUC *usecase.SubmitLeaveRequest
	decideUC *usecase.DecideLeaveRequest
	listUC   *usecase.ListLeaveRequests
	docs     *storage.DocumentStore
}

func NewLeaveHandler(
	submitUC *usecase.SubmitLeaveRequest,
	decideUC *usecase.DecideLeaveRequest,
	listUC *usecase.ListLeaveRequests,
	docs *storage.DocumentStore,
) *LeaveHandler {
	return &LeaveHandler{
		submitUC: submitUC,
		decideUC: decideUC,
		listUC:   listUC,
		docs:     docs,
	}
}

// Submit recebe o pedido de folga do médico logado. Multipart porque
// licença médica vem com documento anexado.
//
// POST /api/leaves  (multipart/form-data)
func (h *LeaveHandler) Submit(c *gin.Context) {
	leaveType := c.PostForm("leave_type")
	startDate := c.PostForm("start_date")
	endDate := c.PostForm("end_date")

	if leaveType == "" || startDate == "" || endDate == "" {
		httperr.BadRequest(c, "invalid_request", "leave_type, start_date e end_date são obrigatórios.")
		return
	}

	documentURL := ""

	if file, err := c.FormFile("document"); err == nil {
		if file.Size > maxDocumentSize {
			httperr.BadRequest(c, "document_too_large", "Anexo acima de 10 MB.")
			return
		}

		f, err := file.Open()
		if err != nil {
			httperr.Internal(c, "internal_error", "Falha ao ler o anexo.")
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			httperr.Internal(c, "internal_error", "Falha ao ler o anexo.")
			return
		}

		documentURL, err = h.docs.SaveLeaveDocument(c.Request.Context(), file.Filename, data)
		if err != nil {
			writeBusinessError(c, err)
			return
		}
	}

	lr, err := h.submitUC.Execute(c.Request.Context(), usecase.SubmitLeaveRequestInput{
		ActorUserID: c.GetUint(middleware.ContextUserID),
		DoctorID:    c.GetUint(middleware.ContextProfileID),
		LeaveType:   leaveType,
		StartDate:   startDate,
		EndDate:     endDate,
		DocumentURL: documentURL,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, lr)
}

// ListMine lista os pedidos do médico logado.
//
// GET /api/leaves
func (h *LeaveHandler) ListMine(c *gin.Context) {
	lrs, err := h.listUC.ExecuteForDoctor(
		c.Request.Context(),
		c.GetUint(middleware.ContextProfileID),
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, lrs)
}

// AdminList lista todos os pedidos, para o painel do admin.
//
// GET /api/admin/leaves
func (h *LeaveHandler) AdminList(c *gin.Context) {
	lrs, err := h.listUC.ExecuteAll(c.Request.Context())
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, lrs)
}

// Approve aprova um pedido pendente.
//
// PATCH /api/admin/leaves/:id/approve
func (h *LeaveHandler) Approve(c *gin.Context) {
	h.decide(c, true)
}

// Reject rejeita um pedido pendente.
//
// PATCH /api/admin/leaves/:id/reject
func (h *LeaveHandler) Reject(c *gin.Context) {
	h.decide(c, false)
}

func (h *LeaveHandler) decide(c *gin.Context, approve bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	lr, err := h.decideUC.Execute(
		c.Request.Context(),
		uint(id),
		approve,
		c.GetUint(middleware.ContextUserID),
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, lr)
}
