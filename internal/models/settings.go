package models

import "encoding/json"

// WhatsAppConfig holds the optional messaging gateway configuration.
type WhatsAppConfig struct {
	APIKey     string `json:"apiKey,omitempty"`
	GatewayURL string `json:"gatewayUrl,omitempty"`
}

// MasterSettings is the process-wide configuration singleton carried inside
// the snapshot. Late-fee rules and the receipt template are opaque to the
// ledger core; they are stored and replicated verbatim.
type MasterSettings struct {
	// MastersPasswordHash is the shared admin secret. Not a security
	// boundary; it gates destructive settings screens only.
	MastersPasswordHash string `json:"mastersPasswordHash"`

	LateFeeRules          json.RawMessage `json:"lateFeeRules,omitempty"`
	ReceiptTemplateConfig json.RawMessage `json:"receiptTemplateConfig,omitempty"`

	// AppURL is the externally reachable application URL, used to build
	// absolute self-service links.
	AppURL string `json:"appUrl,omitempty"`

	WhatsAppConfig WhatsAppConfig `json:"whatsappConfig"`
}
