package activity

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/edvin/appenv/internal/azure"
	"github.com/edvin/appenv/internal/model"
)

// --- Mock provider API ---

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) EnsureResourceGroup(ctx context.Context, name, region string) (model.ResourceGroup, error) {
	args := m.Called(ctx, name, region)
	return args.Get(0).(model.ResourceGroup), args.Error(1)
}

func (m *mockAPI) EnsureWebApp(ctx context.Context, params azure.EnsureWebAppParams) (model.WebApp, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.WebApp), args.Error(1)
}

func (m *mockAPI) PurchaseDomain(ctx context.Context, params azure.PurchaseDomainParams) (model.Domain, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Domain), args.Error(1)
}

func (m *mockAPI) EnsureHostNameBinding(ctx context.Context, params azure.EnsureHostNameBindingParams) (model.HostNameBinding, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.HostNameBinding), args.Error(1)
}

func (m *mockAPI) DeleteResourceGroup(ctx context.Context, name string) (model.CleanupResult, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.CleanupResult), args.Error(1)
}

func TestCreateResourceGroup(t *testing.T) {
	api := new(mockAPI)
	api.On("EnsureResourceGroup", mock.Anything, "rg-abc", "westus").
		Return(model.ResourceGroup{ID: "/subscriptions/s/resourceGroups/rg-abc", Name: "rg-abc", Region: "westus"}, nil)

	env := NewEnvironment(api)
	group, err := env.CreateResourceGroup(context.Background(), CreateResourceGroupParams{Name: "rg-abc", Region: "westus"})
	require.NoError(t, err)
	assert.Equal(t, "rg-abc", group.Name)
	api.AssertExpectations(t)
}

func TestCreateWebApp_PassesPlanIDThrough(t *testing.T) {
	api := new(mockAPI)
	api.On("EnsureWebApp", mock.Anything, mock.MatchedBy(func(p azure.EnsureWebAppParams) bool {
		return p.Name == "app2" && p.PlanID == "plan-1"
	})).Return(model.WebApp{Name: "app2", PlanID: "plan-1"}, nil)

	env := NewEnvironment(api)
	app, err := env.CreateWebApp(context.Background(), CreateWebAppParams{
		GroupName: "rg-abc",
		Name:      "app2",
		Region:    "westus",
		PlanID:    "plan-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "plan-1", app.PlanID)
	api.AssertExpectations(t)
}

func TestPurchaseDomain_Error(t *testing.T) {
	api := new(mockAPI)
	api.On("PurchaseDomain", mock.Anything, mock.Anything).
		Return(model.Domain{}, fmt.Errorf("purchase rejected"))

	env := NewEnvironment(api)
	_, err := env.PurchaseDomain(context.Background(), PurchaseDomainParams{GroupName: "rg-abc", Name: "example.com"})
	assert.ErrorContains(t, err, "purchase rejected")
	api.AssertExpectations(t)
}

func TestCreateHostNameBinding_SNI(t *testing.T) {
	api := new(mockAPI)
	api.On("EnsureHostNameBinding", mock.Anything, mock.MatchedBy(func(p azure.EnsureHostNameBindingParams) bool {
		return p.SSLState == model.SSLStateSNIEnabled && p.Thumbprint == "AABB"
	})).Return(model.HostNameBinding{HostName: "app1.example.com", SSLState: model.SSLStateSNIEnabled, Thumbprint: "AABB"}, nil)

	env := NewEnvironment(api)
	binding, err := env.CreateHostNameBinding(context.Background(), CreateHostNameBindingParams{
		GroupName:  "rg-abc",
		AppName:    "app1",
		HostName:   "app1.example.com",
		DomainID:   "dom-1",
		RecordType: model.DNSRecordTypeCNAME,
		SSLState:   model.SSLStateSNIEnabled,
		Thumbprint: "AABB",
	})
	require.NoError(t, err)
	assert.Equal(t, model.SSLStateSNIEnabled, binding.SSLState)
	api.AssertExpectations(t)
}

func TestDeleteResourceGroup_NotFoundIsNotAnError(t *testing.T) {
	api := new(mockAPI)
	api.On("DeleteResourceGroup", mock.Anything, "rg-gone").
		Return(model.CleanupResult{GroupName: "rg-gone", NotFound: true}, nil)

	env := NewEnvironment(api)
	result, err := env.DeleteResourceGroup(context.Background(), "rg-gone")
	require.NoError(t, err)
	assert.True(t, result.NotFound)
	api.AssertExpectations(t)
}
