package toolcall

import (
	"context"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosk404/taskmind/internal/gateway/pkg/errno"
	"github.com/kiosk404/taskmind/pkg/utils/json"
)

func noopHandler(_ context.Context, _ map[string]any) *Result {
	return OK(nil)
}

func testDefinition(name string) *Definition {
	return &Definition{
		Name:        name,
		Description: "test tool " + name,
		Params: map[string]*schema.ParameterInfo{
			IdentityParam: {Type: schema.String, Desc: "caller identity", Required: true},
			"title":       {Type: schema.String, Desc: "a title", Required: true},
		},
		Handler: noopHandler,
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(testDefinition("add_task")))
	assert.Equal(t, 1, r.Len())

	def, ok := r.Lookup("add_task")
	require.True(t, ok)
	assert.Equal(t, "add_task", def.Name)

	_, ok = r.Lookup("no_such_tool")
	assert.False(t, ok)
}

func TestRegistryRejectsInvalidNames(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"", "AddTask", "add-task", "1task", "add task", "add_Task"} {
		err := r.Register(testDefinition(name))
		require.Error(t, err, "name %q should be rejected", name)
		assert.ErrorIs(t, err, errno.ErrInvalidToolName)
	}
	assert.Equal(t, 0, r.Len())
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(testDefinition("add_task")))
	err := r.Register(testDefinition("add_task"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errno.ErrInvalidToolName)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryRejectsNilHandler(t *testing.T) {
	r := NewRegistry()

	def := testDefinition("add_task")
	def.Handler = nil
	err := r.Register(def)
	require.Error(t, err)
}

func TestRegistryCatalogOrder(t *testing.T) {
	r := NewRegistry()

	names := []string{"add_task", "list_tasks", "update_task", "complete_task", "delete_task"}
	for _, name := range names {
		require.NoError(t, r.Register(testDefinition(name)))
	}

	catalog := r.Catalog()
	require.Len(t, catalog, len(names))
	for i, name := range names {
		assert.Equal(t, name, catalog[i].Name)
		assert.NotEmpty(t, catalog[i].Description)
	}
}

func TestToolInfosStripIdentityParam(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(testDefinition("add_task")))

	infos := r.ToolInfos()
	require.Len(t, infos, 1)
	assert.Equal(t, "add_task", infos[0].Name)

	js, err := infos[0].ParamsOneOf.ToJSONSchema()
	require.NoError(t, err)
	rendered, err := json.MarshalString(js)
	require.NoError(t, err)
	assert.NotContains(t, rendered, IdentityParam, "identity parameter must not be visible to the model")
	assert.Contains(t, rendered, `"title"`)
}
