package model

// WhatsAppGroup identifies a customer group messages are shared to.
type WhatsAppGroup struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Settings is the singleton shop configuration. It is created lazily with
// defaults and fully overwritten on save.
type Settings struct {
	BusinessName string          `json:"businessName" yaml:"businessName"`
	Phone        string          `json:"phone" yaml:"phone"`
	Address      string          `json:"address" yaml:"address"`
	UPIID        string          `json:"upiId" yaml:"upiId"`
	PhonePeUPI   string          `json:"phonePeUpi" yaml:"phonePeUpi"`
	GPayUPI      string          `json:"gpayUpi" yaml:"gpayUpi"`
	QRCodeImage  string          `json:"qrCodeImage,omitempty" yaml:"qrCodeImage,omitempty"` // data URL
	Groups       []WhatsAppGroup `json:"groups" yaml:"groups"`
}

// WithDefaults fills absent fields so records written by older schema
// versions load without surprises. Strings default to empty and Groups to an
// empty (non-nil) slice, identically whether the field was missing or
// explicitly zero.
func (s Settings) WithDefaults() Settings {
	if s.Groups == nil {
		s.Groups = []WhatsAppGroup{}
	}
	return s
}
