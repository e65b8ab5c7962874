// Package selfcert generates self-signed wildcard certificates for the
// environment's purchased domain. The output is a single PEM bundle whose
// private key is encrypted under a per-run password.
package selfcert

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/hex"
	"encoding/pem"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"
)

// Bundle describes a generated certificate on disk.
type Bundle struct {
	Path string
	// Thumbprint is the uppercase hex SHA-1 of the DER certificate, the form
	// the management plane expects on SNI bindings.
	Thumbprint string
	NotAfter   time.Time
}

const validity = 365 * 24 * time.Hour

// Generate writes a self-signed wildcard certificate for domain to path.
// The subject covers *.domain and the apex. The bundle holds the certificate
// followed by the private key, encrypted with password.
func Generate(domain, path, password string) (Bundle, error) {
	if domain == "" {
		return Bundle{}, fmt.Errorf("domain must not be empty")
	}
	wildcard := "*." + strings.TrimPrefix(domain, "*.")
	apex := strings.TrimPrefix(domain, "*.")

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return Bundle{}, fmt.Errorf("generate key: %w", err)
	}

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return Bundle{}, fmt.Errorf("generate serial: %w", err)
	}

	now := time.Now()
	template := x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{CommonName: wildcard},
		DNSNames:              []string{wildcard, apex},
		NotBefore:             now.Add(-5 * time.Minute),
		NotAfter:              now.Add(validity),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
	}

	certDER, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		return Bundle{}, fmt.Errorf("create certificate: %w", err)
	}

	// Legacy PEM encryption keeps the bundle importable by the cert upload
	// tooling, which does not speak encrypted PKCS#8.
	keyDER := x509.MarshalPKCS1PrivateKey(key)
	keyBlock, err := x509.EncryptPEMBlock(rand.Reader, "RSA PRIVATE KEY", keyDER, []byte(password), x509.PEMCipherAES256)
	if err != nil {
		return Bundle{}, fmt.Errorf("encrypt key: %w", err)
	}

	var bundle []byte
	bundle = append(bundle, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certDER})...)
	bundle = append(bundle, pem.EncodeToMemory(keyBlock)...)

	if err := os.WriteFile(path, bundle, 0o600); err != nil {
		return Bundle{}, fmt.Errorf("write bundle: %w", err)
	}

	sum := sha1.Sum(certDER)
	return Bundle{
		Path:       path,
		Thumbprint: strings.ToUpper(hex.EncodeToString(sum[:])),
		NotAfter:   template.NotAfter,
	}, nil
}
