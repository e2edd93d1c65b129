package handler

import (
	"github.com/Gigabyte00/flowpay-dashboard/internal/adapter/http/dto"
	"github.com/Gigabyte00/flowpay-dashboard/internal/adapter/http/middleware"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/domain"
	"github.com/Gigabyte00/flowpay-dashboard/internal/core/ports"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/apperror"
	"github.com/Gigabyte00/flowpay-dashboard/pkg/envelope"

	"github.com/gin-gonic/gin"
)

// VendorHandler handles the vendor directory and onboarding endpoints.
type VendorHandler struct {
	vendorSvc ports.VendorService
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(vendorSvc ports.VendorService) *VendorHandler {
	return &VendorHandler{vendorSvc: vendorSvc}
}

// List handles GET /api/v1/vendors. The directory is reloaded from the
// backend on every list; payable=true narrows to onboarded vendors and q
// applies the text filter.
func (h *VendorHandler) List(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		envelope.Fail(c, apperror.ErrInvalidSession())
		return
	}

	if _, err := h.vendorSvc.Refresh(c.Request.Context(), sess); err != nil {
		envelope.Fail(c, err)
		return
	}

	payableOnly := c.Query("payable") == "true"
	vendors := h.vendorSvc.Vendors(sess, payableOnly, c.Query("q"))

	envelope.OK(c, gin.H{"vendors": vendors})
}

// Create handles POST /api/v1/vendors.
func (h *VendorHandler) Create(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		envelope.Fail(c, apperror.ErrInvalidSession())
		return
	}

	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		envelope.Fail(c, apperror.Validation(err.Error()))
		return
	}

	vendor, onboardingURL, err := h.vendorSvc.CreateVendor(c.Request.Context(), sess, ports.CreateVendorRequest{
		Name:      req.Name,
		Email:     req.Email,
		Category:  domain.VendorCategory(req.Type),
		LegalForm: domain.LegalForm(req.BusinessType),
	})
	if err != nil {
		envelope.Fail(c, err)
		return
	}

	envelope.Created(c, dto.VendorCreatedResponse{
		Vendor:        *vendor,
		OnboardingURL: onboardingURL,
	})
}

// DashboardURL handles POST /api/v1/vendors/:id/dashboard. The URL is
// single-use; it is fetched fresh on every call and never cached.
func (h *VendorHandler) DashboardURL(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		envelope.Fail(c, apperror.ErrInvalidSession())
		return
	}

	url, err := h.vendorSvc.OnboardingDashboardURL(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		envelope.Fail(c, err)
		return
	}

	envelope.OK(c, dto.DashboardURLResponse{URL: url})
}

// Refresh handles POST /api/v1/vendors/:id/refresh, reconciling one
// vendor's onboarding state with the backend.
func (h *VendorHandler) Refresh(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		envelope.Fail(c, apperror.ErrInvalidSession())
		return
	}

	vendor, err := h.vendorSvc.RefreshVendor(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		envelope.Fail(c, err)
		return
	}

	envelope.OK(c, gin.H{"vendor": vendor})
}
