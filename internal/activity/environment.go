package activity

import (
	"context"

	"github.com/edvin/appenv/internal/azure"
	"github.com/edvin/appenv/internal/metrics"
	"github.com/edvin/appenv/internal/model"
)

// Environment contains activities for provisioning and tearing down the
// provider-side resources of an environment run. All provider access goes
// through the azure.API facade.
type Environment struct {
	api azure.API
}

// NewEnvironment creates a new Environment activity struct.
func NewEnvironment(api azure.API) *Environment {
	return &Environment{api: api}
}

// CreateResourceGroup creates or updates the resource group that scopes
// every other resource of the run.
func (a *Environment) CreateResourceGroup(ctx context.Context, params CreateResourceGroupParams) (*model.ResourceGroup, error) {
	group, err := a.api.EnsureResourceGroup(ctx, params.Name, params.Region)
	metrics.ObserveProviderCall("create_resource_group", err)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// CreateWebApp creates or updates a web app, creating a plan for it when
// params.PlanID is empty. The returned record carries the plan ID the
// provider assigned so later apps can share it.
func (a *Environment) CreateWebApp(ctx context.Context, params CreateWebAppParams) (*model.WebApp, error) {
	app, err := a.api.EnsureWebApp(ctx, azure.EnsureWebAppParams{
		GroupName:      params.GroupName,
		Name:           params.Name,
		Region:         params.Region,
		PlanID:         params.PlanID,
		RuntimeVersion: params.RuntimeVersion,
		MinimumTLS:     params.MinimumTLS,
	})
	metrics.ObserveProviderCall("create_web_app", err)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// PurchaseDomain buys a domain inside the run's resource group.
func (a *Environment) PurchaseDomain(ctx context.Context, params PurchaseDomainParams) (*model.Domain, error) {
	domain, err := a.api.PurchaseDomain(ctx, azure.PurchaseDomainParams{
		GroupName:  params.GroupName,
		Name:       params.Name,
		Registrant: params.Registrant,
		Privacy:    params.Privacy,
		AutoRenew:  params.AutoRenew,
	})
	metrics.ObserveProviderCall("purchase_domain", err)
	if err != nil {
		return nil, err
	}
	return &domain, nil
}

// CreateHostNameBinding creates or updates a hostname binding on a web app.
func (a *Environment) CreateHostNameBinding(ctx context.Context, params CreateHostNameBindingParams) (*model.HostNameBinding, error) {
	binding, err := a.api.EnsureHostNameBinding(ctx, azure.EnsureHostNameBindingParams{
		GroupName:  params.GroupName,
		AppName:    params.AppName,
		HostName:   params.HostName,
		DomainID:   params.DomainID,
		RecordType: params.RecordType,
		SSLState:   params.SSLState,
		Thumbprint: params.Thumbprint,
	})
	metrics.ObserveProviderCall("create_host_name_binding", err)
	if err != nil {
		return nil, err
	}
	return &binding, nil
}

// DeleteResourceGroup tears down the run's resource group and everything in
// it. A group that no longer exists comes back as NotFound with no error.
func (a *Environment) DeleteResourceGroup(ctx context.Context, name string) (*model.CleanupResult, error) {
	result, err := a.api.DeleteResourceGroup(ctx, name)
	metrics.ObserveProviderCall("delete_resource_group", err)
	if err != nil {
		metrics.CleanupRuns.WithLabelValues(model.CleanupFailed).Inc()
		return nil, err
	}
	if result.NotFound {
		metrics.CleanupRuns.WithLabelValues(model.CleanupSkipped).Inc()
	} else {
		metrics.CleanupRuns.WithLabelValues(model.CleanupPerformed).Inc()
	}
	return &result, nil
}
