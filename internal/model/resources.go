package model

// ResourceGroup is the container that scopes the lifetime of every other
// resource created during a run. Deleting it cascades to all of them.
type ResourceGroup struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

type WebApp struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Region          string `json:"region"`
	GroupName       string `json:"group_name"`
	PlanID          string `json:"plan_id"`
	DefaultHostName string `json:"default_host_name,omitempty"`
}

type Domain struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	GroupName string `json:"group_name"`
	Privacy   bool   `json:"privacy"`
	AutoRenew bool   `json:"auto_renew"`
}

// Contact is the registrant profile submitted with a domain purchase.
type Contact struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address1   string `json:"address1"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// SSL states for a hostname binding.
const (
	SSLStateNone       = "none"
	SSLStateSNIEnabled = "sni_enabled"
)

// DNS record types for a hostname binding.
const (
	DNSRecordTypeCNAME = "cname"
	DNSRecordTypeA     = "a"
)

type HostNameBinding struct {
	ID         string `json:"id"`
	HostName   string `json:"host_name"`
	AppName    string `json:"app_name"`
	DomainID   string `json:"domain_id"`
	RecordType string `json:"record_type"`
	SSLState   string `json:"ssl_state"`
	Thumbprint string `json:"thumbprint,omitempty"`
}

// Certificate is a self-signed wildcard certificate generated for a run.
// It exists only as a file artifact; the password encrypts the private key.
type Certificate struct {
	DomainName string `json:"domain_name"`
	Path       string `json:"path"`
	Password   string `json:"password"`
	Thumbprint string `json:"thumbprint"`
}

// CleanupResult is the outcome of a resource group deletion. NotFound means
// there was nothing to delete, which callers treat as a successful no-op.
type CleanupResult struct {
	GroupName string `json:"group_name"`
	NotFound  bool   `json:"not_found"`
}
