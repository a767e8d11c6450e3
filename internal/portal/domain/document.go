package domain

import "time"

type DocumentType string

const (
	DocTaxIDEIN                DocumentType = "tax_id_ein"
	DocTaxIDSSN                DocumentType = "tax_id_ssn"
	DocPriorYearTaxReturn      DocumentType = "prior_year_tax_return"
	DocBankStatements          DocumentType = "bank_statements"
	DocProfitAndLoss           DocumentType = "profit_and_loss"
	DocBalanceSheet            DocumentType = "balance_sheet"
	DocArticlesOfIncorporation DocumentType = "articles_of_incorporation"
	DocEngagementLetter        DocumentType = "engagement_letter"
	DocOther                   DocumentType = "other"
)

// Known reports whether t is a checklist type or DocOther.
func (t DocumentType) Known() bool {
	if t == DocOther {
		return true
	}
	for _, item := range AdminChecklist {
		if item.Type == t {
			return true
		}
	}
	return false
}

type DocumentStatus string

const (
	DocStatusPending  DocumentStatus = "pending"
	DocStatusUploaded DocumentStatus = "uploaded"
	DocStatusApproved DocumentStatus = "approved"
	DocStatusRejected DocumentStatus = "rejected"
)

// ChecklistItem is one entry of a required-document checklist template.
type ChecklistItem struct {
	Type     DocumentType
	Required bool
}

// AdminChecklist is created for clients added by an admin. Either tax id is
// acceptable so neither is flagged required.
var AdminChecklist = []ChecklistItem{
	{DocTaxIDEIN, false},
	{DocTaxIDSSN, false},
	{DocPriorYearTaxReturn, true},
	{DocBankStatements, true},
	{DocProfitAndLoss, true},
	{DocBalanceSheet, true},
	{DocArticlesOfIncorporation, false},
	{DocEngagementLetter, true},
}

// SignupChecklist is created for clients who redeemed an invite. Both tax ids
// are flagged required on this path.
var SignupChecklist = []ChecklistItem{
	{DocTaxIDEIN, true},
	{DocTaxIDSSN, true},
	{DocPriorYearTaxReturn, true},
	{DocBankStatements, true},
	{DocProfitAndLoss, true},
	{DocBalanceSheet, true},
	{DocArticlesOfIncorporation, false},
	{DocEngagementLetter, true},
}

type RequiredDocument struct {
	ID           string
	ClientID     string
	DocumentType DocumentType
	IsRequired   bool
	Status       DocumentStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Document struct {
	ID           string
	ClientID     string
	DocumentType DocumentType
	FileName     string
	StoragePath  string
	Status       DocumentStatus
	UploadedBy   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Report struct {
	ID          string
	ClientID    string
	Name        string
	Period      string // e.g. "2025-Q3"
	StoragePath string
	UploadedBy  string
	CreatedAt   time.Time
}
