package selfcert

import (
	"crypto/sha1"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.pem")

	bundle, err := Generate("example-env.com", path, "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, path, bundle.Path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	certBlock, rest := pem.Decode(data)
	require.NotNil(t, certBlock)
	require.Equal(t, "CERTIFICATE", certBlock.Type)

	cert, err := x509.ParseCertificate(certBlock.Bytes)
	require.NoError(t, err)
	assert.Equal(t, "*.example-env.com", cert.Subject.CommonName)
	assert.ElementsMatch(t, []string{"*.example-env.com", "example-env.com"}, cert.DNSNames)
	assert.True(t, cert.NotAfter.After(time.Now().Add(300*24*time.Hour)))

	sum := sha1.Sum(certBlock.Bytes)
	assert.Equal(t, strings.ToUpper(hex.EncodeToString(sum[:])), bundle.Thumbprint)

	keyBlock, _ := pem.Decode(rest)
	require.NotNil(t, keyBlock)
	require.Equal(t, "RSA PRIVATE KEY", keyBlock.Type)
	require.True(t, x509.IsEncryptedPEMBlock(keyBlock))

	keyDER, err := x509.DecryptPEMBlock(keyBlock, []byte("hunter2hunter2"))
	require.NoError(t, err)
	_, err = x509.ParsePKCS1PrivateKey(keyDER)
	assert.NoError(t, err)

	_, err = x509.DecryptPEMBlock(keyBlock, []byte("wrong-password"))
	assert.Error(t, err)
}

func TestGenerate_EmptyDomain(t *testing.T) {
	_, err := Generate("", filepath.Join(t.TempDir(), "bundle.pem"), "pw")
	assert.Error(t, err)
}

func TestGenerate_UnwritablePath(t *testing.T) {
	_, err := Generate("example-env.com", filepath.Join(t.TempDir(), "missing", "bundle.pem"), "pw")
	assert.Error(t, err)
}
