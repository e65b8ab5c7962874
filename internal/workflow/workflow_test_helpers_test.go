package workflow

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/testsuite"

	"github.com/edvin/appenv/internal/activity"
	"github.com/edvin/appenv/internal/model"
)

// registerActivities registers activity structs with the test workflow
// environment so that parameter and return types can be deserialized
// correctly by the Temporal test framework. All activities are mocked via
// OnActivity; the framework only needs the type information.
func registerActivities(env *testsuite.TestWorkflowEnvironment) {
	env.RegisterActivity(&activity.Environment{})
	env.RegisterActivity(&activity.Certificate{})
}

// echoGroup returns a resource group built from the request, so tests can
// follow whatever names the workflow generated.
func echoGroup(_ context.Context, p activity.CreateResourceGroupParams) (*model.ResourceGroup, error) {
	return &model.ResourceGroup{
		ID:     "/subscriptions/sub/resourceGroups/" + p.Name,
		Name:   p.Name,
		Region: p.Region,
	}, nil
}

// echoWebApp answers a web app create. An empty PlanID gets a plan derived
// from the app name, making accidental re-creation of the plan by the second
// app visible in assertions.
func echoWebApp(_ context.Context, p activity.CreateWebAppParams) (*model.WebApp, error) {
	planID := p.PlanID
	if planID == "" {
		planID = "plan-" + p.Name
	}
	return &model.WebApp{
		ID:        "/subscriptions/sub/sites/" + p.Name,
		Name:      p.Name,
		Region:    p.Region,
		GroupName: p.GroupName,
		PlanID:    planID,
	}, nil
}

func echoDomain(_ context.Context, p activity.PurchaseDomainParams) (*model.Domain, error) {
	return &model.Domain{
		ID:        "/subscriptions/sub/domains/" + p.Name,
		Name:      p.Name,
		GroupName: p.GroupName,
		Privacy:   p.Privacy,
		AutoRenew: p.AutoRenew,
	}, nil
}

func echoBinding(_ context.Context, p activity.CreateHostNameBindingParams) (*model.HostNameBinding, error) {
	return &model.HostNameBinding{
		ID:         fmt.Sprintf("/subscriptions/sub/sites/%s/hostNameBindings/%s", p.AppName, p.HostName),
		HostName:   p.HostName,
		AppName:    p.AppName,
		DomainID:   p.DomainID,
		RecordType: p.RecordType,
		SSLState:   p.SSLState,
		Thumbprint: p.Thumbprint,
	}, nil
}

func echoCertificate(_ context.Context, p activity.GenerateSelfSignedCertParams) (*model.Certificate, error) {
	return &model.Certificate{
		DomainName: p.DomainName,
		Path:       p.OutputPath,
		Password:   p.Password,
		Thumbprint: "AB12CD34EF56AB12CD34EF56AB12CD34EF56AB12",
	}, nil
}
