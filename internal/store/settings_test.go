package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apnidukan/dukan/internal/model"
)

func TestSettings_LazyDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	settings := s.Settings(context.Background())
	require.Equal(t, "", settings.BusinessName)
	require.NotNil(t, settings.Groups)
	require.Empty(t, settings.Groups)
}

func TestSettings_RoundTripDefaultsIdentically(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// A record saved with explicit zero values must load exactly like the
	// lazily defaulted one.
	fromEmpty := s.Settings(ctx)
	require.NoError(t, s.SaveSettings(ctx, model.Settings{}))
	fromSaved := s.Settings(ctx)

	require.Equal(t, fromEmpty, fromSaved)
}

func TestSaveSettings_FullOverwrite(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSettings(ctx, model.Settings{
		BusinessName: "Apni Dukan",
		UPIID:        "apnidukan@upi",
		Groups:       []model.WhatsAppGroup{{ID: "g1", Name: "Tower B"}},
	}))
	require.NoError(t, s.SaveSettings(ctx, model.Settings{
		BusinessName: "Apni Dukan",
	}))

	settings := s.Settings(ctx)
	require.Equal(t, "", settings.UPIID, "save replaces the whole record")
	require.Empty(t, settings.Groups)
}

func TestSettings_OlderSchemaShapeTolerated(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// A document written before groups and UPI fields existed.
	require.NoError(t, s.kv.Set(ctx, keySettings,
		`{"businessName":"Apni Dukan","phone":"98765"}`))

	settings := s.Settings(ctx)
	require.Equal(t, "Apni Dukan", settings.BusinessName)
	require.NotNil(t, settings.Groups)
}
