package azure

import (
	"context"

	"github.com/edvin/appenv/internal/model"
)

// EnsureWebAppParams describes a web app create-or-update. When PlanID is
// empty a new App Service plan is created for the app; otherwise the app is
// placed on the given plan.
type EnsureWebAppParams struct {
	GroupName      string
	Name           string
	Region         string
	PlanID         string
	RuntimeVersion string
	MinimumTLS     string
}

// PurchaseDomainParams describes a domain purchase. Privacy and auto-renew
// are explicit so callers never rely on provider defaults.
type PurchaseDomainParams struct {
	GroupName  string
	Name       string
	Registrant model.Contact
	Privacy    bool
	AutoRenew  bool
}

// EnsureHostNameBindingParams describes a hostname binding create-or-update.
// The call is idempotent per (AppName, HostName); re-issuing with a new
// SSLState upgrades the existing binding in place.
type EnsureHostNameBindingParams struct {
	GroupName  string
	AppName    string
	HostName   string
	DomainID   string
	RecordType string
	SSLState   string
	Thumbprint string
}

// API is the capability set the provisioning workflow consumes. Every call
// blocks until the provider-side operation reaches a terminal state; the
// caller never sees an in-progress resource.
type API interface {
	EnsureResourceGroup(ctx context.Context, name, region string) (model.ResourceGroup, error)
	EnsureWebApp(ctx context.Context, params EnsureWebAppParams) (model.WebApp, error)
	PurchaseDomain(ctx context.Context, params PurchaseDomainParams) (model.Domain, error)
	EnsureHostNameBinding(ctx context.Context, params EnsureHostNameBindingParams) (model.HostNameBinding, error)
	// DeleteResourceGroup cascades to everything inside the group. A group
	// that does not exist is reported via CleanupResult.NotFound, not as an
	// error, so a second delete of the same group is a safe no-op.
	DeleteResourceGroup(ctx context.Context, name string) (model.CleanupResult, error)
}
