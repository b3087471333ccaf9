package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/teamhaven/haven/internal/domain"
	"github.com/teamhaven/haven/internal/service"
	"github.com/teamhaven/haven/pkg/httpx"
)

// BackOfficeHandler serves the admin console endpoints. Every route is gated
// on the BACK_OFFICE_ADMIN role by the router.
type BackOfficeHandler struct {
	BackOfficeService *service.BackOfficeService
}

type pendingRegistrationResponse struct {
	ID            int64  `json:"id"`
	LoginID       string `json:"loginId"`
	Name          string `json:"name"`
	PhoneNumber   string `json:"phoneNumber"`
	Role          string `json:"role"`
	InstitutionID *int64 `json:"institutionId,omitempty"`
	Department    string `json:"department"`
	Position      string `json:"position"`
	CreatedAt     string `json:"createdAt"`
}

func toPendingResponse(u domain.User) pendingRegistrationResponse {
	return pendingRegistrationResponse{
		ID:            u.ID,
		LoginID:       u.LoginID,
		Name:          u.Name,
		PhoneNumber:   u.PhoneNumber,
		Role:          string(u.Role),
		InstitutionID: u.InstitutionID,
		Department:    u.Department,
		Position:      u.Position,
		CreatedAt:     u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// HandleListPending godoc
//
//	@Summary		List pending management registrations
//	@Tags			BackOffice
//	@Produce		json
//	@Success		200	{array}	pendingRegistrationResponse
//	@Security		BearerAuth
//	@Router			/v1/bo/registrations [get].
func (h *BackOfficeHandler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pending, err := h.BackOfficeService.ListPendingRegistrations(ctx)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	out := make([]pendingRegistrationResponse, 0, len(pending))
	for _, u := range pending {
		out = append(out, toPendingResponse(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

type managePersonInfoResponse struct {
	User        pendingRegistrationResponse `json:"user"`
	Institution *institutionResponse        `json:"institution,omitempty"`
}

// HandleGetRegistration godoc
//
//	@Summary		Review a management registration
//	@Description	Returns the registrant together with the institution they
//	@Description	claim to belong to.
//	@Tags			BackOffice
//	@Produce		json
//	@Param			id	path	int	true	"user id"
//	@Success		200	{object}	managePersonInfoResponse
//	@Failure		404	{object}	messageResponse
//	@Security		BearerAuth
//	@Router			/v1/bo/registrations/{id} [get].
func (h *BackOfficeHandler) HandleGetRegistration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	u, inst, err := h.BackOfficeService.GetManagePersonInfo(ctx, userID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	resp := managePersonInfoResponse{User: toPendingResponse(u)}
	if inst != nil {
		ir := toInstitutionResponse(*inst)
		resp.Institution = &ir
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleApprove godoc
//
//	@Summary		Approve a management registration
//	@Tags			BackOffice
//	@Produce		json
//	@Param			id	path	int	true	"user id"
//	@Success		200	{object}	messageResponse	"approved"
//	@Failure		404	{object}	messageResponse
//	@Security		BearerAuth
//	@Router			/v1/bo/registrations/{id}/approve [post].
func (h *BackOfficeHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	if err := h.BackOfficeService.Approve(ctx, userID); err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	writeMessage(w, http.StatusOK, "approved")
}

type institutionResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Division    string `json:"division"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

func toInstitutionResponse(inst domain.OfficialInstitution) institutionResponse {
	return institutionResponse{
		ID:          inst.ID,
		Name:        inst.Name,
		Division:    string(inst.Division),
		PhoneNumber: inst.PhoneNumber,
		Address:     inst.Address,
	}
}

type createInstitutionRequest struct {
	Name        string `json:"name"`
	Division    string `json:"division"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// HandleCreateInstitution godoc
//
//	@Summary		Register an official institution
//	@Tags			BackOffice
//	@Accept			json
//	@Produce		json
//	@Param			request	body	createInstitutionRequest	true	"institution"
//	@Success		201	{object}	institutionResponse
//	@Failure		400	{object}	messageResponse
//	@Security		BearerAuth
//	@Router			/v1/bo/institutions [post].
func (h *BackOfficeHandler) HandleCreateInstitution(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createInstitutionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	inst := domain.OfficialInstitution{
		Name:        req.Name,
		Division:    domain.InstitutionDivision(req.Division),
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}
	id, err := h.BackOfficeService.CreateInstitution(ctx, inst)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	inst.ID = id
	httpx.WriteJSON(w, http.StatusCreated, toInstitutionResponse(inst))
}

// HandleListInstitutions godoc
//
//	@Summary		List official institutions
//	@Tags			BackOffice
//	@Produce		json
//	@Success		200	{array}	institutionResponse
//	@Security		BearerAuth
//	@Router			/v1/bo/institutions [get].
func (h *BackOfficeHandler) HandleListInstitutions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.BackOfficeService.ListInstitutions(ctx)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	out := make([]institutionResponse, 0, len(list))
	for _, inst := range list {
		out = append(out, toInstitutionResponse(inst))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
