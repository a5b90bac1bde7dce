// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// AccountStatus is the administrative state of a principal.
type AccountStatus string

const (
	StatusActive  AccountStatus = "Active"
	StatusBlocked AccountStatus = "Blocked"
)

// VerificationStatus tracks the KYC review state of a principal.
type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "Unverified"
	VerificationPending    VerificationStatus = "Pending"
	VerificationVerified   VerificationStatus = "Verified"
	VerificationRejected   VerificationStatus = "Rejected"
)

// KYCDocumentType names the identity document a principal uploaded.
type KYCDocumentType string

const (
	KYCDocumentNIN            KYCDocumentType = "NIN"
	KYCDocumentDriversLicense KYCDocumentType = "DriversLicense"
	KYCDocumentPassport       KYCDocumentType = "Passport"
)

// Address is the optional postal address of a principal.
type Address struct {
	Street string `json:"street" yaml:"street"`
	City   string `json:"city" yaml:"city"`
	Zip    string `json:"zip" yaml:"zip"`
}

// KYCDocument holds the uploaded identity document images (base64 payloads).
type KYCDocument struct {
	Type  KYCDocumentType `json:"type" yaml:"type" validate:"oneof=NIN DriversLicense Passport"`
	Front string          `json:"front" yaml:"front" validate:"required"`
	Back  string          `json:"back,omitempty" yaml:"back,omitempty"`
}

// Principal is a registered or signed-in account. It never carries a credential.
type Principal struct {
	FName              string             `json:"fname" yaml:"fname" validate:"required"`
	LName              string             `json:"lname" yaml:"lname" validate:"required"`
	Email              string             `json:"email" yaml:"email" validate:"required,email"`
	Phone              string             `json:"phone" yaml:"phone"`
	Country            string             `json:"country" yaml:"country"`
	State              string             `json:"state" yaml:"state"`
	Role               Role               `json:"role" yaml:"role" validate:"omitempty,oneof=customer dealer superadmin"`
	Status             AccountStatus      `json:"status" yaml:"status" validate:"omitempty,oneof=Active Blocked"`
	Address            *Address           `json:"address" yaml:"address"`
	VerificationStatus VerificationStatus `json:"verificationStatus" yaml:"verificationStatus" validate:"omitempty,oneof=Unverified Pending Verified Rejected"`
	KYCDocument        *KYCDocument       `json:"kycDocument" yaml:"kycDocument"`
}

// StoredPrincipal is the Directory record: a Principal plus its sealed mock credential.
type StoredPrincipal struct {
	Principal `yaml:",inline"`

	Password string `json:"password,omitempty" yaml:"password,omitempty"`
}

// Public returns the principal without its credential.
func (s StoredPrincipal) Public() Principal {
	return s.Principal.Clone()
}

// IsBlocked reports whether the account has been blocked by an administrator.
func (p Principal) IsBlocked() bool {
	return p.Status == StatusBlocked
}

// HasRole reports whether the principal holds any of the given roles.
func (p Principal) HasRole(roles ...Role) bool {
	return Roles(roles).Contains(p.Role)
}

// Clone returns a copy that shares no pointers with p.
func (p Principal) Clone() Principal {
	out := p
	if p.Address != nil {
		addr := *p.Address
		out.Address = &addr
	}
	if p.KYCDocument != nil {
		doc := *p.KYCDocument
		out.KYCDocument = &doc
	}

	return out
}

// Normalize fills every unset optional field from the default template
// (customer, Unverified, Active, no address, no KYC document). Records cached
// by older builds are upgraded the same way.
func (p Principal) Normalize() Principal {
	out := p.Clone()
	if out.Role == "" {
		out.Role = RoleCustomer
	}
	if out.VerificationStatus == "" {
		out.VerificationStatus = VerificationUnverified
	}
	if out.Status == "" {
		out.Status = StatusActive
	}

	return out
}

// PrincipalPatch is a shallow-merge patch: every non-nil field replaces the
// corresponding top-level field wholesale. Nested values (Address, KYCDocument)
// are never merged field by field; callers send the full nested value.
type PrincipalPatch struct {
	FName              *string             `json:"fname,omitempty"`
	LName              *string             `json:"lname,omitempty"`
	Phone              *string             `json:"phone,omitempty"`
	Country            *string             `json:"country,omitempty"`
	State              *string             `json:"state,omitempty"`
	Role               *Role               `json:"role,omitempty" validate:"omitempty,oneof=customer dealer superadmin"`
	Status             *AccountStatus      `json:"status,omitempty" validate:"omitempty,oneof=Active Blocked"`
	Address            *Address            `json:"address,omitempty"`
	VerificationStatus *VerificationStatus `json:"verificationStatus,omitempty" validate:"omitempty,oneof=Unverified Pending Verified Rejected"`
	KYCDocument        *KYCDocument        `json:"kycDocument,omitempty" validate:"omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (pp PrincipalPatch) IsEmpty() bool {
	return pp == PrincipalPatch{}
}

// ApplyTo returns p with the patch merged over it.
func (pp PrincipalPatch) ApplyTo(p Principal) Principal {
	out := p.Clone()
	if pp.FName != nil {
		out.FName = *pp.FName
	}
	if pp.LName != nil {
		out.LName = *pp.LName
	}
	if pp.Phone != nil {
		out.Phone = *pp.Phone
	}
	if pp.Country != nil {
		out.Country = *pp.Country
	}
	if pp.State != nil {
		out.State = *pp.State
	}
	if pp.Role != nil {
		out.Role = *pp.Role
	}
	if pp.Status != nil {
		out.Status = *pp.Status
	}
	if pp.Address != nil {
		addr := *pp.Address
		out.Address = &addr
	}
	if pp.VerificationStatus != nil {
		out.VerificationStatus = *pp.VerificationStatus
	}
	if pp.KYCDocument != nil {
		doc := *pp.KYCDocument
		out.KYCDocument = &doc
	}

	return out
}
