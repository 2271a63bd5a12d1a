package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationID(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))

	ctx, id := WithCorrelationID(context.Background())
	require.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
}

func TestForContextFiltersFieldsInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	base, hook := test.NewNullLogger()
	original := L
	L = &logger{entry: logrus.NewEntry(base)}
	t.Cleanup(func() { L = original })

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).WithFields(Fields{
		"campaign_id": 42,
		"payload":     "grande demais",
		"status_code": 200,
	}).Info("teste")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, id, entry.Data[correlationIDField])
	assert.Equal(t, 42, entry.Data["campaign_id"])
	assert.Equal(t, 200, entry.Data["status_code"])
	assert.NotContains(t, entry.Data, "payload")
}

func TestForContextKeepsAllFieldsInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	base, hook := test.NewNullLogger()
	original := L
	L = &logger{entry: logrus.NewEntry(base)}
	t.Cleanup(func() { L = original })

	ForContext(context.Background()).WithField("payload", "x").Info("teste")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "x", entry.Data["payload"])
	assert.NotContains(t, entry.Data, correlationIDField)
}
