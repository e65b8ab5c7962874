package activity

import "github.com/edvin/appenv/internal/model"

// CreateResourceGroupParams holds parameters for the CreateResourceGroup activity.
type CreateResourceGroupParams struct {
	Name   string `json:"name"`
	Region string `json:"region"`
}

// CreateWebAppParams holds parameters for the CreateWebApp activity. PlanID
// is empty for the first app of a run; the second app passes the plan the
// provider assigned to the first.
type CreateWebAppParams struct {
	GroupName      string `json:"group_name"`
	Name           string `json:"name"`
	Region         string `json:"region"`
	PlanID         string `json:"plan_id,omitempty"`
	RuntimeVersion string `json:"runtime_version"`
	MinimumTLS     string `json:"minimum_tls,omitempty"`
}

// PurchaseDomainParams holds parameters for the PurchaseDomain activity.
type PurchaseDomainParams struct {
	GroupName  string        `json:"group_name"`
	Name       string        `json:"name"`
	Registrant model.Contact `json:"registrant"`
	Privacy    bool          `json:"privacy"`
	AutoRenew  bool          `json:"auto_renew"`
}

// CreateHostNameBindingParams holds parameters for the CreateHostNameBinding
// activity. Issuing it twice with the same HostName updates the binding.
type CreateHostNameBindingParams struct {
	GroupName  string `json:"group_name"`
	AppName    string `json:"app_name"`
	HostName   string `json:"host_name"`
	DomainID   string `json:"domain_id"`
	RecordType string `json:"record_type"`
	SSLState   string `json:"ssl_state"`
	Thumbprint string `json:"thumbprint,omitempty"`
}

// GenerateSelfSignedCertParams holds parameters for the
// GenerateSelfSignedCert activity.
type GenerateSelfSignedCertParams struct {
	DomainName string `json:"domain_name"`
	OutputPath string `json:"output_path"`
	Password   string `json:"password"`
}
