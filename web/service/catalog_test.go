package service

import (
	"testing"

	"github.com/evolvo-uz/evolvo/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestCatalogService(t *testing.T) {
	setup(t)
	defer teardown()

	svc := CatalogService{}

	entry := &model.Service{
		TitleUz:   "AI chatbot joriy etish",
		TitleEn:   "AI chatbot implementation",
		Category:  "automation",
		PriceFrom: 5_000_000,
		Active:    boolPtr(true),
	}
	require.NoError(t, svc.AddService(entry))
	require.NotZero(t, entry.Id)

	got, err := svc.GetService(entry.Id)
	require.NoError(t, err)
	assert.Equal(t, "AI chatbot implementation", got.TitleEn)

	// Inactive entries stay out of the public listing.
	hidden := &model.Service{TitleUz: "Yashirin", TitleEn: "Hidden", Active: boolPtr(false)}
	require.NoError(t, svc.AddService(hidden))

	active, err := svc.GetActiveServices()
	require.NoError(t, err)
	assert.Len(t, active, 1)

	all, err := svc.GetAllServices()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got.Featured = true
	require.NoError(t, svc.UpdateService(got))
	updated, err := svc.GetService(entry.Id)
	require.NoError(t, err)
	assert.True(t, updated.Featured)

	require.NoError(t, svc.DeleteService(entry.Id))
	_, err = svc.GetService(entry.Id)
	assert.Error(t, err)
}

func TestCatalogServiceVisibility(t *testing.T) {
	setup(t)
	defer teardown()

	svc := CatalogService{}

	// A draft created inactive must stay inactive after the round trip.
	draft := &model.Service{TitleUz: "Qoralama", TitleEn: "Draft", Active: boolPtr(false)}
	require.NoError(t, svc.AddService(draft))

	stored, err := svc.GetService(draft.Id)
	require.NoError(t, err)
	assert.False(t, stored.IsActive(), "service created inactive must stay inactive")

	active, err := svc.GetActiveServices()
	require.NoError(t, err)
	assert.Empty(t, active)

	// Omitting the flag on create means visible.
	defaulted := &model.Service{TitleUz: "Odatiy", TitleEn: "Defaulted"}
	require.NoError(t, svc.AddService(defaulted))
	stored, err = svc.GetService(defaulted.Id)
	require.NoError(t, err)
	assert.True(t, stored.IsActive())

	// Omitting the flag on update keeps the stored visibility.
	draft.TitleEn = "Draft v2"
	draft.Active = nil
	require.NoError(t, svc.UpdateService(draft))
	stored, err = svc.GetService(draft.Id)
	require.NoError(t, err)
	assert.Equal(t, "Draft v2", stored.TitleEn)
	assert.False(t, stored.IsActive(), "update without the flag must not re-activate")
}
