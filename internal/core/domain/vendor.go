package domain

import "time"

// VendorCategory classifies what a vendor is paid for.
type VendorCategory string

const (
	VendorCategoryRent     VendorCategory = "Rent"
	VendorCategoryTuition  VendorCategory = "Tuition"
	VendorCategoryMedical  VendorCategory = "Medical"
	VendorCategoryBusiness VendorCategory = "Business"
	VendorCategoryOther    VendorCategory = "Other"
)

// Known reports whether the category is one of the recognized values.
func (c VendorCategory) Known() bool {
	switch c {
	case VendorCategoryRent, VendorCategoryTuition, VendorCategoryMedical,
		VendorCategoryBusiness, VendorCategoryOther:
		return true
	}
	return false
}

// LegalForm is the legal structure of a vendor's business.
type LegalForm string

const (
	LegalFormIndividual LegalForm = "individual"
	LegalFormCompany    LegalForm = "company"
)

// Known reports whether the legal form is recognized.
func (f LegalForm) Known() bool {
	return f == LegalFormIndividual || f == LegalFormCompany
}

// Vendor is a payment recipient. The external account on the card gateway's
// marketplace side must be fully verified (Onboarded) before the vendor can
// receive funds. TotalPaid and LastPayment are derived by the backend and
// read-only here.
type Vendor struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Email             string         `json:"email"`
	Category          VendorCategory `json:"type"`
	LegalForm         LegalForm      `json:"business_type"`
	ExternalAccountID string         `json:"stripe_account_id,omitempty"`
	Onboarded         bool           `json:"onboarded"`
	TotalPaid         int64          `json:"total_amount"` // minor units
	LastPayment       *time.Time     `json:"last_payment,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
}

// Payable reports whether the vendor may be selected as a payment recipient.
// Only fully verified vendors are payable.
func (v *Vendor) Payable() bool {
	return v.Onboarded
}
