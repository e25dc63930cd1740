// Ruthwik | 2026
// signer.go

package upload

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"

	"github.com/ruthwik2/storefront-admin/internal/config"
)

// Signer produces the short-lived signatures a browser needs to upload
// images directly to the hosting provider. The API secret never leaves
// the server; clients only ever see the derived signature.
type Signer struct {
	config config.CloudinaryConfig
}

func NewSigner(cfg config.CloudinaryConfig) *Signer {
	return &Signer{config: cfg}
}

func (s *Signer) Configured() bool {
	return s.config.CloudName != "" &&
		s.config.APIKey != "" &&
		s.config.APISecret != ""
}

type Signature struct {
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
	CloudName string `json:"cloudName"`
	APIKey    string `json:"apiKey"`
	Folder    string `json:"folder"`
}

func (s *Signer) Sign() (*Signature, error) {
	if !s.Configured() {
		return nil, fmt.Errorf("cloudinary credentials are not configured")
	}

	timestamp := time.Now().Unix()

	params := url.Values{}
	params.Set("timestamp", strconv.FormatInt(timestamp, 10))
	params.Set("folder", s.config.Folder)

	signature, err := api.SignParameters(params, s.config.APISecret)
	if err != nil {
		return nil, fmt.Errorf("sign upload parameters: %w", err)
	}

	return &Signature{
		Timestamp: timestamp,
		Signature: signature,
		CloudName: s.config.CloudName,
		APIKey:    s.config.APIKey,
		Folder:    s.config.Folder,
	}, nil
}
