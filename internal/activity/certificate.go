package activity

import (
	"context"

	"go.temporal.io/sdk/temporal"

	"github.com/edvin/appenv/internal/model"
	"github.com/edvin/appenv/internal/selfcert"
)

// Certificate contains activities for generating the run's TLS material.
type Certificate struct{}

// NewCertificate creates a new Certificate activity struct.
func NewCertificate() *Certificate {
	return &Certificate{}
}

// GenerateSelfSignedCert writes a self-signed wildcard certificate bundle
// for the domain and returns its file handle and thumbprint. Generation is
// local and deterministic in its failure modes, so errors are non-retryable.
func (a *Certificate) GenerateSelfSignedCert(ctx context.Context, params GenerateSelfSignedCertParams) (*model.Certificate, error) {
	bundle, err := selfcert.Generate(params.DomainName, params.OutputPath, params.Password)
	if err != nil {
		return nil, temporal.NewNonRetryableApplicationError("generate certificate", "CERT_ERROR", err)
	}

	return &model.Certificate{
		DomainName: params.DomainName,
		Path:       bundle.Path,
		Password:   params.Password,
		Thumbprint: bundle.Thumbprint,
	}, nil
}
