package workflow

import (
	"path"

	"go.temporal.io/sdk/workflow"

	"github.com/edvin/appenv/internal/activity"
	"github.com/edvin/appenv/internal/model"
	"github.com/edvin/appenv/internal/platform"
)

// ProvisionEnvironmentParams configures one environment run.
type ProvisionEnvironmentParams struct {
	// NamePrefix seeds every generated resource name.
	NamePrefix string `json:"name_prefix"`
	Region     string `json:"region"`
	// DomainSuffix is appended to the generated domain label, e.g. ".com".
	DomainSuffix string        `json:"domain_suffix"`
	Registrant   model.Contact `json:"registrant"`
	// CertDir is the directory the certificate bundle is written into.
	CertDir        string `json:"cert_dir"`
	RuntimeVersion string `json:"runtime_version"`
	MinimumTLS     string `json:"minimum_tls"`
}

func (p ProvisionEnvironmentParams) withDefaults() ProvisionEnvironmentParams {
	if p.NamePrefix == "" {
		p.NamePrefix = "appenv"
	}
	if p.Region == "" {
		p.Region = "westus"
	}
	if p.DomainSuffix == "" {
		p.DomainSuffix = ".com"
	}
	if p.CertDir == "" {
		p.CertDir = "/tmp"
	}
	if p.RuntimeVersion == "" {
		p.RuntimeVersion = "v4.8"
	}
	if p.MinimumTLS == "" {
		p.MinimumTLS = "1.2"
	}
	if p.Registrant == (model.Contact{}) {
		p.Registrant = model.Contact{
			FirstName:  "Jon",
			LastName:   "Doe",
			Email:      "jondoe@contoso.com",
			Phone:      "1.4258828080",
			Address1:   "123 West 42nd Street",
			City:       "Seattle",
			State:      "WA",
			Country:    "US",
			PostalCode: "98101",
		}
	}
	return p
}

// runSeed is the random material for a run, produced once inside a
// SideEffect so names and the certificate password are stable across
// workflow replays.
type runSeed struct {
	ID           string              `json:"id"`
	Names        model.ResourceNames `json:"names"`
	CertPassword string              `json:"cert_password"`
}

// ProvisionEnvironmentWorkflow provisions a complete web-app environment:
// a resource group, two web apps sharing one App Service plan, a purchased
// domain, a self-signed wildcard certificate, and hostname bindings linking
// the domain to both apps. Whatever happens during provisioning, the cleanup
// phase runs exactly once and deletes the resource group, which cascades to
// every resource created under it.
func ProvisionEnvironmentWorkflow(ctx workflow.Context, params ProvisionEnvironmentParams) (*model.EnvironmentReport, error) {
	ctx = workflow.WithActivityOptions(ctx, defaultActivityOptions())
	logger := workflow.GetLogger(ctx)
	params = params.withDefaults()

	var seed runSeed
	encodedSeed := workflow.SideEffect(ctx, func(workflow.Context) interface{} {
		return runSeed{
			ID: platform.NewID(),
			Names: model.ResourceNames{
				ResourceGroup: platform.NewName("rg-" + params.NamePrefix + "-"),
				App1:          platform.NewName(params.NamePrefix + "-web1-"),
				App2:          platform.NewName(params.NamePrefix + "-web2-"),
				Domain:        platform.NewNameN(params.NamePrefix, 8) + params.DomainSuffix,
			},
			CertPassword: platform.NewPassword(16),
		}
	})
	if err := encodedSeed.Get(&seed); err != nil {
		return nil, err
	}

	run := &model.EnvironmentRun{
		ID:           seed.ID,
		Region:       params.Region,
		Names:        seed.Names,
		CertPassword: seed.CertPassword,
		Phase:        model.PhaseInit,
	}

	logger.Info("starting environment run",
		"run_id", run.ID,
		"group", run.Names.ResourceGroup,
		"domain", run.Names.Domain)

	provisionErr := provision(ctx, run, params)
	if provisionErr != nil {
		logger.Error("provisioning aborted",
			"run_id", run.ID,
			"phase", run.Phase,
			"error", provisionErr)
	}

	// Cleanup phase. Entered exactly once on every exit path from the
	// provisioning sequence; failures here are reported, never raised.
	report := &model.EnvironmentReport{
		RunID: run.ID,
		Phase: run.Phase,
		Names: run.Names,
	}
	cleanup(ctx, run, report)

	return report, provisionErr
}

// provision walks the run through each provisioning step, recording every
// handle later steps depend on. It returns on the first failed step; the
// caller is responsible for cleanup.
func provision(ctx workflow.Context, run *model.EnvironmentRun, params ProvisionEnvironmentParams) error {
	// The resource group scopes everything else; nothing may be created
	// before it exists.
	var group model.ResourceGroup
	err := workflow.ExecuteActivity(ctx, "CreateResourceGroup", activity.CreateResourceGroupParams{
		Name:   run.Names.ResourceGroup,
		Region: run.Region,
	}).Get(ctx, &group)
	if err != nil {
		return err
	}
	run.Group = &group
	run.Phase = model.PhaseGroupCreated

	// First web app. The provider assigns the plan; both apps share it.
	var app1 model.WebApp
	err = workflow.ExecuteActivity(ctx, "CreateWebApp", activity.CreateWebAppParams{
		GroupName:      group.Name,
		Name:           run.Names.App1,
		Region:         run.Region,
		RuntimeVersion: params.RuntimeVersion,
		MinimumTLS:     params.MinimumTLS,
	}).Get(ctx, &app1)
	if err != nil {
		return err
	}
	run.App1 = &app1
	run.Phase = model.PhaseApp1Created

	// Second web app on the same plan. Co-locating both apps on one plan is
	// deliberate, so the plan ID is taken from app1, never generated anew.
	var app2 model.WebApp
	err = workflow.ExecuteActivity(ctx, "CreateWebApp", activity.CreateWebAppParams{
		GroupName:      group.Name,
		Name:           run.Names.App2,
		Region:         run.Region,
		PlanID:         app1.PlanID,
		RuntimeVersion: params.RuntimeVersion,
		MinimumTLS:     params.MinimumTLS,
	}).Get(ctx, &app2)
	if err != nil {
		return err
	}
	run.App2 = &app2
	run.Phase = model.PhaseApp2Created

	// Purchase the domain. The environment is disposable, so auto-renew
	// stays off; privacy is always on.
	var domain model.Domain
	err = workflow.ExecuteActivity(ctx, "PurchaseDomain", activity.PurchaseDomainParams{
		GroupName:  group.Name,
		Name:       run.Names.Domain,
		Registrant: params.Registrant,
		Privacy:    true,
		AutoRenew:  false,
	}).Get(ctx, &domain)
	if err != nil {
		return err
	}
	run.Domain = &domain
	run.Phase = model.PhaseDomainPurchased

	// Plain CNAME binding for app1, no TLS yet.
	host1 := run.Names.App1 + "." + domain.Name
	var binding1 model.HostNameBinding
	err = workflow.ExecuteActivity(ctx, "CreateHostNameBinding", activity.CreateHostNameBindingParams{
		GroupName:  group.Name,
		AppName:    app1.Name,
		HostName:   host1,
		DomainID:   domain.ID,
		RecordType: model.DNSRecordTypeCNAME,
		SSLState:   model.SSLStateNone,
	}).Get(ctx, &binding1)
	if err != nil {
		return err
	}
	run.Binding1 = &binding1
	run.Phase = model.PhaseBinding1Created

	// Wildcard certificate for the domain, encrypted with the per-run
	// password generated at workflow start.
	var cert model.Certificate
	err = workflow.ExecuteActivity(ctx, "GenerateSelfSignedCert", activity.GenerateSelfSignedCertParams{
		DomainName: domain.Name,
		OutputPath: path.Join(params.CertDir, domain.Name+".pem"),
		Password:   run.CertPassword,
	}).Get(ctx, &cert)
	if err != nil {
		return err
	}
	run.Certificate = &cert
	run.Phase = model.PhaseCertificateGenerated

	// Upgrade app1's binding to SNI in place: same host name, now with the
	// certificate thumbprint. Each binding call's result is captured
	// distinctly.
	var upgraded model.HostNameBinding
	err = workflow.ExecuteActivity(ctx, "CreateHostNameBinding", activity.CreateHostNameBindingParams{
		GroupName:  group.Name,
		AppName:    app1.Name,
		HostName:   host1,
		DomainID:   domain.ID,
		RecordType: model.DNSRecordTypeCNAME,
		SSLState:   model.SSLStateSNIEnabled,
		Thumbprint: cert.Thumbprint,
	}).Get(ctx, &upgraded)
	if err != nil {
		return err
	}
	run.Binding1 = &upgraded
	run.Phase = model.PhaseBinding1Upgraded

	// App2 goes straight to an SNI binding; it never serves the custom
	// host name unencrypted.
	var binding2 model.HostNameBinding
	err = workflow.ExecuteActivity(ctx, "CreateHostNameBinding", activity.CreateHostNameBindingParams{
		GroupName:  group.Name,
		AppName:    app2.Name,
		HostName:   run.Names.App2 + "." + domain.Name,
		DomainID:   domain.ID,
		RecordType: model.DNSRecordTypeCNAME,
		SSLState:   model.SSLStateSNIEnabled,
		Thumbprint: cert.Thumbprint,
	}).Get(ctx, &binding2)
	if err != nil {
		return err
	}
	run.Binding2 = &binding2
	run.Phase = model.PhaseBinding2Upgraded

	run.Phase = model.PhaseDone
	return nil
}

// cleanup deletes the run's resource group, which cascades to every resource
// created during provisioning. If the group was never created there is
// nothing to delete and no provider call is made. Errors are recorded on the
// report and logged, never returned: a failed cleanup must not mask the
// provisioning outcome.
func cleanup(ctx workflow.Context, run *model.EnvironmentRun, report *model.EnvironmentReport) {
	logger := workflow.GetLogger(ctx)

	if run.Group == nil {
		logger.Info("nothing to clean up, resource group was never created", "run_id", run.ID)
		report.Cleanup = model.CleanupSkipped
		return
	}

	var result model.CleanupResult
	err := workflow.ExecuteActivity(ctx, "DeleteResourceGroup", run.Group.Name).Get(ctx, &result)
	switch {
	case err != nil:
		logger.Error("cleanup failed, resource group needs manual deletion",
			"run_id", run.ID,
			"group", run.Group.Name,
			"error", err)
		report.Cleanup = model.CleanupFailed
		report.CleanupError = err.Error()
	case result.NotFound:
		logger.Info("nothing to clean up, resource group already gone",
			"run_id", run.ID,
			"group", run.Group.Name)
		report.Cleanup = model.CleanupSkipped
	default:
		logger.Info("resource group deleted",
			"run_id", run.ID,
			"group", run.Group.Name)
		report.Cleanup = model.CleanupPerformed
	}
}
