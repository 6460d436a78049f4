package app

import (
	"testing"

	"firearm-inventory/internal/config"
	"firearm-inventory/internal/logger"
	"firearm-inventory/internal/models"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	application, err := NewApplication(a, config.Default(), logger.NewNop())
	require.NoError(t, err)
	return application
}

func TestNewApplicationWiresView(t *testing.T) {
	application := newTestApplication(t)

	assert.Equal(t, config.AppName, application.window.Title())
	assert.Equal(t, "Total Inventory: 0", application.View().StatusBar().TotalText())
	assert.NotNil(t, application.window.MainMenu())

	require.NoError(t, application.Controller().AddFirearm(models.FormState{
		Kind: "Rifle", Manufacturer: "Ruger", Model: "10/22",
	}))
	assert.Equal(t, "Total Inventory: 1", application.View().StatusBar().TotalText())
}

func TestNewApplicationRejectsBadConfig(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	cfg := config.Default()
	cfg.LogLevel = "shout"
	_, err := NewApplication(a, cfg, logger.NewNop())
	assert.Error(t, err)
}

func TestCloseWithRecordsAsksFirst(t *testing.T) {
	application := newTestApplication(t)
	require.NoError(t, application.Controller().AddFirearm(models.FormState{
		Kind: "Handgun", Manufacturer: "Glock", Model: "19",
	}))

	application.requestClose()

	assert.NotNil(t, application.window.Canvas().Overlays().Top(), "confirmation shown")
}
