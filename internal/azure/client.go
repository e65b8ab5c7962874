package azure

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/appservice/armappservice/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/edvin/appenv/internal/config"
	"github.com/edvin/appenv/internal/model"
)

// Client implements API against the Azure Resource Manager. Long-running
// operations are polled to completion before returning, so every method is
// synchronous from the caller's perspective.
type Client struct {
	groups  *armresources.ResourceGroupsClient
	plans   *armappservice.PlansClient
	sites   *armappservice.WebAppsClient
	domains *armappservice.DomainsClient
}

var _ API = (*Client)(nil)

// NewClient authenticates with the service principal from cfg and builds the
// management clients. No network call is made here; bad credentials surface
// on the first operation.
func NewClient(cfg *config.Config) (*Client, error) {
	cred, err := azidentity.NewClientSecretCredential(cfg.TenantID, cfg.ClientID, cfg.ClientSecret, nil)
	if err != nil {
		return nil, fmt.Errorf("build credential: %w", err)
	}

	groups, err := armresources.NewResourceGroupsClient(cfg.SubscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("resource groups client: %w", err)
	}
	plans, err := armappservice.NewPlansClient(cfg.SubscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("plans client: %w", err)
	}
	sites, err := armappservice.NewWebAppsClient(cfg.SubscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("web apps client: %w", err)
	}
	domains, err := armappservice.NewDomainsClient(cfg.SubscriptionID, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("domains client: %w", err)
	}

	return &Client{
		groups:  groups,
		plans:   plans,
		sites:   sites,
		domains: domains,
	}, nil
}

func (c *Client) EnsureResourceGroup(ctx context.Context, name, region string) (model.ResourceGroup, error) {
	resp, err := c.groups.CreateOrUpdate(ctx, name, armresources.ResourceGroup{
		Location: to.Ptr(region),
	}, nil)
	if err != nil {
		return model.ResourceGroup{}, fmt.Errorf("create resource group %q: %w", name, err)
	}

	return model.ResourceGroup{
		ID:     deref(resp.ID),
		Name:   deref(resp.Name),
		Region: deref(resp.Location),
	}, nil
}

func (c *Client) EnsureWebApp(ctx context.Context, params EnsureWebAppParams) (model.WebApp, error) {
	planID := params.PlanID
	if planID == "" {
		created, err := c.ensurePlan(ctx, params.GroupName, params.Name+"-plan", params.Region)
		if err != nil {
			return model.WebApp{}, err
		}
		planID = created
	}

	siteConfig := &armappservice.SiteConfig{
		NetFrameworkVersion: to.Ptr(params.RuntimeVersion),
	}
	if params.MinimumTLS != "" {
		siteConfig.MinTLSVersion = to.Ptr(armappservice.SupportedTLSVersions(params.MinimumTLS))
	}

	poller, err := c.sites.BeginCreateOrUpdate(ctx, params.GroupName, params.Name, armappservice.Site{
		Location: to.Ptr(params.Region),
		Properties: &armappservice.SiteProperties{
			ServerFarmID: to.Ptr(planID),
			SiteConfig:   siteConfig,
		},
	}, nil)
	var resp armappservice.WebAppsClientCreateOrUpdateResponse
	if err == nil {
		resp, err = poller.PollUntilDone(ctx, nil)
	}
	if err != nil {
		return model.WebApp{}, fmt.Errorf("create web app %q: %w", params.Name, err)
	}

	app := model.WebApp{
		ID:        deref(resp.ID),
		Name:      deref(resp.Name),
		Region:    deref(resp.Location),
		GroupName: params.GroupName,
		PlanID:    planID,
	}
	if resp.Properties != nil {
		if resp.Properties.ServerFarmID != nil {
			app.PlanID = *resp.Properties.ServerFarmID
		}
		app.DefaultHostName = deref(resp.Properties.DefaultHostName)
	}
	return app, nil
}

// ensurePlan creates (or updates) a Basic B1 App Service plan and returns its
// resource ID.
func (c *Client) ensurePlan(ctx context.Context, groupName, name, region string) (string, error) {
	poller, err := c.plans.BeginCreateOrUpdate(ctx, groupName, name, armappservice.Plan{
		Location: to.Ptr(region),
		SKU: &armappservice.SKUDescription{
			Name:     to.Ptr("B1"),
			Tier:     to.Ptr("Basic"),
			Capacity: to.Ptr(int32(1)),
		},
		Properties: &armappservice.PlanProperties{},
	}, nil)
	var resp armappservice.PlansClientCreateOrUpdateResponse
	if err == nil {
		resp, err = poller.PollUntilDone(ctx, nil)
	}
	if err != nil {
		return "", fmt.Errorf("create app service plan %q: %w", name, err)
	}
	return deref(resp.ID), nil
}

func (c *Client) PurchaseDomain(ctx context.Context, params PurchaseDomainParams) (model.Domain, error) {
	contact := &armappservice.Contact{
		NameFirst: to.Ptr(params.Registrant.FirstName),
		NameLast:  to.Ptr(params.Registrant.LastName),
		Email:     to.Ptr(params.Registrant.Email),
		Phone:     to.Ptr(params.Registrant.Phone),
		AddressMailing: &armappservice.Address{
			Address1:   to.Ptr(params.Registrant.Address1),
			City:       to.Ptr(params.Registrant.City),
			State:      to.Ptr(params.Registrant.State),
			Country:    to.Ptr(params.Registrant.Country),
			PostalCode: to.Ptr(params.Registrant.PostalCode),
		},
	}

	poller, err := c.domains.BeginCreateOrUpdate(ctx, params.GroupName, params.Name, armappservice.Domain{
		// Domains are a global resource regardless of the group's region.
		Location: to.Ptr("global"),
		Properties: &armappservice.DomainProperties{
			ContactAdmin:      contact,
			ContactBilling:    contact,
			ContactRegistrant: contact,
			ContactTech:       contact,
			Privacy:           to.Ptr(params.Privacy),
			AutoRenew:         to.Ptr(params.AutoRenew),
			DNSType:           to.Ptr(armappservice.DNSTypeAzureDNS),
			Consent: &armappservice.DomainPurchaseConsent{
				AgreementKeys: []*string{to.Ptr("DNRA")},
				AgreedBy:      to.Ptr(params.Registrant.Email),
				AgreedAt:      to.Ptr(time.Now().UTC()),
			},
		},
	}, nil)
	var resp armappservice.DomainsClientCreateOrUpdateResponse
	if err == nil {
		resp, err = poller.PollUntilDone(ctx, nil)
	}
	if err != nil {
		return model.Domain{}, fmt.Errorf("purchase domain %q: %w", params.Name, err)
	}

	return model.Domain{
		ID:        deref(resp.ID),
		Name:      deref(resp.Name),
		GroupName: params.GroupName,
		Privacy:   params.Privacy,
		AutoRenew: params.AutoRenew,
	}, nil
}

func (c *Client) EnsureHostNameBinding(ctx context.Context, params EnsureHostNameBindingParams) (model.HostNameBinding, error) {
	props := &armappservice.HostNameBindingProperties{
		SiteName:                    to.Ptr(params.AppName),
		DomainID:                    to.Ptr(params.DomainID),
		AzureResourceName:           to.Ptr(params.AppName),
		AzureResourceType:           to.Ptr(armappservice.AzureResourceTypeWebsite),
		HostNameType:                to.Ptr(armappservice.HostNameTypeVerified),
		CustomHostNameDNSRecordType: to.Ptr(recordType(params.RecordType)),
	}
	if params.SSLState == model.SSLStateSNIEnabled {
		props.SSLState = to.Ptr(armappservice.SSLStateSniEnabled)
		props.Thumbprint = to.Ptr(params.Thumbprint)
	} else {
		props.SSLState = to.Ptr(armappservice.SSLStateDisabled)
	}

	resp, err := c.sites.CreateOrUpdateHostNameBinding(ctx, params.GroupName, params.AppName, params.HostName,
		armappservice.HostNameBinding{Properties: props}, nil)
	if err != nil {
		return model.HostNameBinding{}, fmt.Errorf("bind host name %q to %q: %w", params.HostName, params.AppName, err)
	}

	return model.HostNameBinding{
		ID:         deref(resp.ID),
		HostName:   params.HostName,
		AppName:    params.AppName,
		DomainID:   params.DomainID,
		RecordType: params.RecordType,
		SSLState:   params.SSLState,
		Thumbprint: params.Thumbprint,
	}, nil
}

func (c *Client) DeleteResourceGroup(ctx context.Context, name string) (model.CleanupResult, error) {
	poller, err := c.groups.BeginDelete(ctx, name, nil)
	if err == nil {
		_, err = poller.PollUntilDone(ctx, nil)
	}
	if err != nil {
		if isNotFound(err) {
			return model.CleanupResult{GroupName: name, NotFound: true}, nil
		}
		return model.CleanupResult{}, fmt.Errorf("delete resource group %q: %w", name, err)
	}
	return model.CleanupResult{GroupName: name}, nil
}

func recordType(t string) armappservice.CustomHostNameDNSRecordType {
	if t == model.DNSRecordTypeA {
		return armappservice.CustomHostNameDNSRecordTypeA
	}
	return armappservice.CustomHostNameDNSRecordTypeCName
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
