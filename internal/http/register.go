package http

import (
	"net/http"

	"github.com/teamhaven/haven/internal/domain"
	"github.com/teamhaven/haven/internal/service"
	"github.com/teamhaven/haven/pkg/httpx"
)

// RegisterHandler serves the three sign-up endpoints.
type RegisterHandler struct {
	RegisterService *service.RegisterService
}

type registrationResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type registerEndUserRequest struct {
	LoginID     string `json:"loginId"`
	Password    string `json:"password"`
	Password2   string `json:"password2"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

// HandleRegisterEndUser godoc
//
//	@Summary		Register an end user
//	@Description	Creates an END_USER account. End users can log in immediately.
//	@Tags			Register
//	@Accept			json
//	@Produce		json
//	@Param			request	body	registerEndUserRequest	true	"registration form"
//	@Success		201	{object}	registrationResponse	"registration success"
//	@Failure		400	{object}	messageResponse	"validation failure or duplicate login id"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) HandleRegisterEndUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerEndUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	id, err := h.RegisterService.RegisterEndUser(ctx, service.EndUserRegistration{
		LoginID:     req.LoginID,
		Password:    req.Password,
		Password2:   req.Password2,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, registrationResponse{Message: "registration success", ID: id})
}

type registerManagePersonRequest struct {
	LoginID       string `json:"loginId"`
	Password      string `json:"password"`
	Password2     string `json:"password2"`
	Name          string `json:"name"`
	PhoneNumber   string `json:"phoneNumber"`
	Role          string `json:"role"`
	InstitutionID int64  `json:"institutionId"`
	Department    string `json:"department"`
	Position      string `json:"position"`
}

// HandleRegisterManagePerson godoc
//
//	@Summary		Register a police officer or counselor
//	@Description	Creates a management account tied to an official institution.
//	@Description	The account stays unusable for back-office features until an
//	@Description	administrator approves it.
//	@Tags			Register
//	@Accept			json
//	@Produce		json
//	@Param			request	body	registerManagePersonRequest	true	"registration form"
//	@Success		201	{object}	registrationResponse	"registration success"
//	@Failure		400	{object}	messageResponse	"validation failure or duplicate login id"
//	@Failure		404	{object}	messageResponse	"institution does not exist"
//	@Router			/v1/auth/register/manage-person [post].
func (h *RegisterHandler) HandleRegisterManagePerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerManagePersonRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	role := domain.Role(req.Role)
	switch role {
	case domain.RolePoliceOfficer, domain.RoleCounselor:
	default:
		// Unknown roles on the wire are bad input, not an internal bug.
		writeMessage(w, http.StatusBadRequest, "role must be POLICE_OFFICER or COUNSELOR")
		return
	}

	id, err := h.RegisterService.RegisterManagePerson(ctx, service.ManagePersonRegistration{
		LoginID:       req.LoginID,
		Password:      req.Password,
		Password2:     req.Password2,
		Name:          req.Name,
		PhoneNumber:   req.PhoneNumber,
		Role:          role,
		InstitutionID: req.InstitutionID,
		Department:    req.Department,
		Position:      req.Position,
	})
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, registrationResponse{Message: "registration success", ID: id})
}

type registerAdminRequest struct {
	LoginID     string `json:"loginId"`
	Password    string `json:"password"`
	Password2   string `json:"password2"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Department  string `json:"department"`
	Position    string `json:"position"`
}

// HandleRegisterAdmin godoc
//
//	@Summary		Register a back office administrator
//	@Tags			Register
//	@Accept			json
//	@Produce		json
//	@Param			request	body	registerAdminRequest	true	"registration form"
//	@Success		201	{object}	registrationResponse	"registration success"
//	@Failure		400	{object}	messageResponse	"validation failure or duplicate login id"
//	@Router			/v1/auth/register/admin [post].
func (h *RegisterHandler) HandleRegisterAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerAdminRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadJSON(w)
		return
	}

	id, err := h.RegisterService.RegisterAdmin(ctx, service.AdminRegistration{
		LoginID:     req.LoginID,
		Password:    req.Password,
		Password2:   req.Password2,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Department:  req.Department,
		Position:    req.Position,
	})
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, registrationResponse{Message: "registration success", ID: id})
}
