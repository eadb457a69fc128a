package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/boonewh/pathsix-crm/internal/domain"
	"github.com/boonewh/pathsix-crm/internal/logger"
	"github.com/boonewh/pathsix-crm/internal/middleware"
	"github.com/boonewh/pathsix-crm/internal/repository"
)

// LeadHandler handles lead CRUD HTTP requests.
type LeadHandler struct {
	leadRepo repository.LeadRepository
}

// NewLeadHandler creates a new LeadHandler.
func NewLeadHandler(leadRepo repository.LeadRepository) *LeadHandler {
	return &LeadHandler{leadRepo: leadRepo}
}

// leadRequest is the create/update payload. All fields are optional
// pointers so updates can distinguish absent from empty.
type leadRequest struct {
	Name                *string `json:"name"`
	ContactPerson       *string `json:"contact_person"`
	ContactTitle        *string `json:"contact_title"`
	Email               *string `json:"email"`
	Phone               *string `json:"phone"`
	PhoneLabel          *string `json:"phone_label"`
	SecondaryPhone      *string `json:"secondary_phone"`
	SecondaryPhoneLabel *string `json:"secondary_phone_label"`
	Address             *string `json:"address"`
	City                *string `json:"city"`
	State               *string `json:"state"`
	Zip                 *string `json:"zip"`
	Notes               *string `json:"notes"`
	Type                *string `json:"type"`
	LeadStatus          *string `json:"lead_status"`
}

// List handles GET /api/leads - leads visible to the caller.
func (h *LeadHandler) List(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	leads, err := h.leadRepo.List(c.Request.Context(), identity)
	if err != nil {
		h.serverError(c, identity, "list leads", err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, leads)
}

// ListAll handles GET /api/leads/all - every tenant lead, admins only.
func (h *LeadHandler) ListAll(c *gin.Context) {
	identity, ok := h.requireAdmin(c)
	if !ok {
		return
	}

	leads, err := h.leadRepo.ListAll(c.Request.Context(), identity.TenantID)
	if err != nil {
		h.serverError(c, identity, "list all leads", err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, leads)
}

// Get handles GET /api/leads/:id
func (h *LeadHandler) Get(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	lead, err := h.leadRepo.Get(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		h.serverError(c, identity, "get lead", err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// Create handles POST /api/leads
func (h *LeadHandler) Create(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req leadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Name == nil || *req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	lead := &domain.Lead{
		TenantID:            identity.TenantID,
		Name:                *req.Name,
		ContactPerson:       req.ContactPerson,
		ContactTitle:        req.ContactTitle,
		Email:               req.Email,
		Phone:               req.Phone,
		PhoneLabel:          req.PhoneLabel,
		SecondaryPhone:      req.SecondaryPhone,
		SecondaryPhoneLabel: req.SecondaryPhoneLabel,
		Address:             req.Address,
		City:                req.City,
		State:               req.State,
		Zip:                 req.Zip,
		Notes:               req.Notes,
		Type:                domain.DefaultBusinessType,
		LeadStatus:          domain.DefaultLeadStatus,
		CreatedBy:           identity.UserID,
	}
	if req.Type != nil && *req.Type != "" {
		lead.Type = *req.Type
	}
	if req.LeadStatus != nil && *req.LeadStatus != "" {
		lead.LeadStatus = *req.LeadStatus
	}
	if lead.Phone != nil && lead.PhoneLabel == nil {
		label := domain.DefaultPhoneLabel
		lead.PhoneLabel = &label
	}

	if err := h.leadRepo.Create(c.Request.Context(), lead); err != nil {
		h.serverError(c, identity, "create lead", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": lead.ID})
}

// Update handles PUT /api/leads/:id
func (h *LeadHandler) Update(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req leadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	lead, err := h.leadRepo.Get(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		h.serverError(c, identity, "update lead", err)
		return
	}

	applyLeadUpdate(lead, &req)

	// Status moves through a separate transition set. Entering converted
	// for the first time stamps ConvertedOn.
	if req.LeadStatus != nil && domain.IsLeadStatusTransition(*req.LeadStatus) {
		if *req.LeadStatus == "converted" && lead.LeadStatus != "converted" {
			now := time.Now().UTC()
			lead.ConvertedOn = &now
		}
		lead.LeadStatus = *req.LeadStatus
	}

	userID := identity.UserID
	lead.UpdatedBy = &userID

	if err := h.leadRepo.Update(c.Request.Context(), lead); err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		h.serverError(c, identity, "update lead", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": lead.ID})
}

// Delete handles DELETE /api/leads/:id
func (h *LeadHandler) Delete(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	if err := h.leadRepo.SoftDelete(c.Request.Context(), identity, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		h.serverError(c, identity, "delete lead", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lead soft-deleted successfully"})
}

// Assign handles PUT /api/leads/:id/assign - admins only.
func (h *LeadHandler) Assign(c *gin.Context) {
	identity, ok := h.requireAdmin(c)
	if !ok {
		return
	}

	var req struct {
		AssignedTo *string `json:"assigned_to"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.leadRepo.Assign(c.Request.Context(), identity, c.Param("id"), req.AssignedTo); err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
			return
		}
		h.serverError(c, identity, "assign lead", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lead assigned successfully"})
}

func applyLeadUpdate(lead *domain.Lead, req *leadRequest) {
	if req.Name != nil && *req.Name != "" {
		lead.Name = *req.Name
	}
	if req.ContactPerson != nil {
		lead.ContactPerson = emptyToNil(req.ContactPerson)
	}
	if req.ContactTitle != nil {
		lead.ContactTitle = emptyToNil(req.ContactTitle)
	}
	if req.Email != nil {
		lead.Email = emptyToNil(req.Email)
	}
	if req.Phone != nil {
		lead.Phone = emptyToNil(req.Phone)
	}
	if req.PhoneLabel != nil {
		lead.PhoneLabel = emptyToNil(req.PhoneLabel)
	}
	if req.SecondaryPhone != nil {
		lead.SecondaryPhone = emptyToNil(req.SecondaryPhone)
	}
	if req.SecondaryPhoneLabel != nil {
		lead.SecondaryPhoneLabel = emptyToNil(req.SecondaryPhoneLabel)
	}
	if req.Address != nil {
		lead.Address = emptyToNil(req.Address)
	}
	if req.City != nil {
		lead.City = emptyToNil(req.City)
	}
	if req.State != nil {
		lead.State = emptyToNil(req.State)
	}
	if req.Zip != nil {
		lead.Zip = emptyToNil(req.Zip)
	}
	if req.Notes != nil {
		lead.Notes = emptyToNil(req.Notes)
	}
	if req.Type != nil && *req.Type != "" {
		lead.Type = *req.Type
	}
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func (h *LeadHandler) requireAdmin(c *gin.Context) (domain.Identity, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return domain.Identity{}, false
	}
	if !identity.IsAdmin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
		return domain.Identity{}, false
	}
	return identity, true
}

func (h *LeadHandler) serverError(c *gin.Context, identity domain.Identity, op string, err error) {
	logger.Error(op,
		slog.String("request_id", middleware.GetRequestID(c)),
		slog.String("tenant_id", identity.TenantID),
		slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
