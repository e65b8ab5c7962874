package model

// Phases of an environment provisioning run, in order. A run only ever moves
// forward; the phase recorded on failure is the last one that completed.
const (
	PhaseInit                 = "init"
	PhaseGroupCreated         = "group_created"
	PhaseApp1Created          = "app1_created"
	PhaseApp2Created          = "app2_created"
	PhaseDomainPurchased      = "domain_purchased"
	PhaseBinding1Created      = "binding1_created"
	PhaseCertificateGenerated = "certificate_generated"
	PhaseBinding1Upgraded     = "binding1_upgraded"
	PhaseBinding2Upgraded     = "binding2_upgraded"
	PhaseDone                 = "done"
)

// ResourceNames holds the collision-resistant names generated once at the
// start of a run, before any provider call is made.
type ResourceNames struct {
	ResourceGroup string `json:"resource_group"`
	App1          string `json:"app1"`
	App2          string `json:"app2"`
	Domain        string `json:"domain"`
}

// EnvironmentRun is the workflow state record. It is owned exclusively by the
// single workflow execution and threaded through each provisioning step;
// every step fills in the handles later steps depend on.
type EnvironmentRun struct {
	ID           string           `json:"id"`
	Region       string           `json:"region"`
	Names        ResourceNames    `json:"names"`
	CertPassword string           `json:"cert_password"`
	Phase        string           `json:"phase"`
	Group        *ResourceGroup   `json:"group,omitempty"`
	App1         *WebApp          `json:"app1,omitempty"`
	App2         *WebApp          `json:"app2,omitempty"`
	Domain       *Domain          `json:"domain,omitempty"`
	Certificate  *Certificate     `json:"certificate,omitempty"`
	Binding1     *HostNameBinding `json:"binding1,omitempty"`
	Binding2     *HostNameBinding `json:"binding2,omitempty"`
}

// Cleanup outcomes reported at the end of a run.
const (
	CleanupPerformed = "performed"
	CleanupSkipped   = "skipped_nothing_to_delete"
	CleanupFailed    = "failed"
)

// EnvironmentReport is the workflow result: how far provisioning got and how
// cleanup went. CleanupError is informational; cleanup failures never fail
// the workflow on their own.
type EnvironmentReport struct {
	RunID        string        `json:"run_id"`
	Phase        string        `json:"phase"`
	Names        ResourceNames `json:"names"`
	Cleanup      string        `json:"cleanup"`
	CleanupError string        `json:"cleanup_error,omitempty"`
}
