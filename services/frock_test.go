package services

import (
	"net/url"
	"testing"

	"github.com/dmleach/frock/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// probe records whether Execute ran.
type probe struct {
	executed int
	bound    bool
}

func (p *probe) Execute() { p.executed++ }

type sinkMock struct{ mock.Mock }

func (m *sinkMock) Debug(msg string, meta map[string]string) { m.Called(msg, meta) }

func TestProcessRequest_ExtractsPath(t *testing.T) {
	tests := []struct {
		name    string
		req     any
		ok      bool
		wantVal string
	}{
		{"request", models.Request{"path": "user/list"}, true, "user/list"},
		{"string-map", map[string]string{"path": "a/b"}, true, "a/b"},
		{"url-values", url.Values{"path": {"x"}}, true, "x"},
		{"empty-string-value", models.Request{"path": ""}, true, ""},
		{"int-value", map[string]any{"path": 5}, true, "5"},
		{"missing-key", models.Request{"other": "x"}, false, ""},
		{"nil-value", map[string]any{"path": nil}, false, ""},
		{"not-a-map", "path=x", false, ""},
		{"nil", nil, false, ""},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			f := NewFrock(models.Request{"path": "stale"})
			assert.Equal(t, tc.ok, f.ProcessRequest(tc.req))
			got, ok := f.Path()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.wantVal, got)
		})
	}
}

func TestNewFrock_ProcessesRequest(t *testing.T) {
	f := NewFrock(map[string]any{"path": "hello/world"})
	p, ok := f.Path()
	assert.True(t, ok)
	assert.Equal(t, "hello/world", p)

	f = NewFrock(nil)
	_, ok = f.Path()
	assert.False(t, ok)
	assert.Equal(t, "path", f.PathKey())
}

func TestGetClassName_PathResolution(t *testing.T) {
	ns := map[models.Role]string{models.RoleController: `App\controller`}

	f := NewFrock(models.Request{"path": "user/list"}, WithNamespaces(ns))
	name, ok := f.GetClassName(models.RoleController, "")
	require.True(t, ok)
	assert.Equal(t, `App\controller\user\List`, name) // stored path, only last segment capitalized

	name, _ = f.GetClassName(models.RoleController, "about")
	assert.Equal(t, `App\controller\About`, name) // explicit path wins

	f = NewFrock(nil, WithNamespaces(ns))
	name, _ = f.GetClassName(models.RoleController, "")
	assert.Equal(t, `App\controller\Hello`, name) // default path

	f = NewFrock(models.Request{"path": ""}, WithNamespaces(ns), WithDefaultPath("home"))
	name, _ = f.GetClassName(models.RoleController, "")
	assert.Equal(t, `App\controller\Home`, name) // empty extracted path falls back to default
}

func TestGetClassName_PerRoleNamespaces(t *testing.T) {
	f := NewFrock(models.Request{"path": "hello"}, WithNamespaces(map[models.Role]string{
		models.RoleController: `App\controller`,
		models.RoleModel:      `App\model`,
		models.RoleView:       `App\view`,
	}))

	for role, want := range map[models.Role]string{
		models.RoleController: `App\controller\Hello`,
		models.RoleModel:      `App\model\Hello`,
		models.RoleView:       `App\view\Hello`,
	} {
		got, ok := f.GetClassName(role, "")
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestGetClassName_UnknownRole(t *testing.T) {
	f := NewFrock(models.Request{"path": "x"})
	name, ok := f.GetClassName("service", "x")
	assert.False(t, ok)
	assert.Empty(t, name)
}

func TestSetPathKey(t *testing.T) {
	f := NewFrock(nil)

	assert.True(t, f.SetPathKey(42))
	assert.Equal(t, 42, f.PathKey())
	assert.True(t, f.ProcessRequest(map[int]any{42: "from-int"}))
	p, _ := f.Path()
	assert.Equal(t, "from-int", p)

	assert.True(t, f.ProcessRequest(url.Values{"42": {"from-query"}})) // numeric key matches string form
	p, _ = f.Path()
	assert.Equal(t, "from-query", p)

	assert.True(t, f.SetPathKey(int64(7)))
	assert.Equal(t, 7, f.PathKey())

	for _, bad := range []any{3.14, []string{}, nil, true, map[string]string{}} {
		assert.False(t, f.SetPathKey(bad), "%#v", bad)
		assert.Equal(t, 7, f.PathKey())
	}

	assert.True(t, f.SetPathKey("route"))
	assert.Equal(t, "route", f.PathKey())
}

func TestSetClassNamespace(t *testing.T) {
	f := NewFrock(nil)
	assert.True(t, f.SetClassNamespace(models.RoleView, `App\view`))
	ns, ok := f.ClassNamespace(models.RoleView)
	assert.True(t, ok)
	assert.Equal(t, `App\view`, ns)

	assert.False(t, f.SetClassNamespace("service", `App\service`))
	_, ok = f.ClassNamespace("service")
	assert.False(t, ok)
}

func TestSetDefaultPath(t *testing.T) {
	f := NewFrock(nil)
	assert.Equal(t, "hello", f.DefaultPath())
	assert.False(t, f.SetDefaultPath(""))
	assert.True(t, f.SetDefaultPath("index"))
	assert.Equal(t, "index", f.DefaultPath())
}

func TestInstantiateClass(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(`App\controller\Hello`, func() Class { return &probe{} })

	f := NewFrock(nil, WithRegistry(reg), WithNamespaces(map[models.Role]string{models.RoleController: `App\controller`}))

	obj, err := f.InstantiateClass(models.RoleController, "")
	require.NoError(t, err)
	assert.IsType(t, &probe{}, obj)

	other, err := f.InstantiateClass(models.RoleController, "hello")
	require.NoError(t, err)
	assert.NotSame(t, obj, other) // fresh instance per call

	_, err = f.InstantiateClass(models.RoleController, "missing")
	assert.EqualError(t, err, `Class not found: App\controller\Missing`)
	assert.True(t, IsClassNotFound(err))

	_, err = f.InstantiateClass("service", "hello")
	assert.ErrorIs(t, err, ErrUnknownRole)
	assert.False(t, IsClassNotFound(err))
}

func TestInstantiateClass_NilFactoryResult(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister("Hello", func() Class { return nil })

	f := NewFrock(nil, WithRegistry(reg))
	_, err := f.InstantiateClass(models.RoleModel, "")
	assert.ErrorIs(t, err, ErrInvalidClass)
}

func TestExecutePath(t *testing.T) {
	p := &probe{}
	reg := NewRegistry()
	reg.MustRegister(`user\List`, func() Class { return p })

	f := NewFrock(models.Request{"path": "user/list"}, WithRegistry(reg))
	require.NoError(t, f.ExecutePath(models.RoleController, ""))
	assert.Equal(t, 1, p.executed)

	err := f.ExecutePath(models.RoleController, "nope")
	assert.True(t, IsClassNotFound(err))
	assert.Equal(t, 1, p.executed)
}

func TestExecutePathWith_BindsBeforeExecute(t *testing.T) {
	p := &probe{}
	reg := NewRegistry()
	reg.MustRegister("Hello", func() Class { return p })

	f := NewFrock(nil, WithRegistry(reg))
	err := f.ExecutePathWith(models.RoleView, "", func(c Class) {
		assert.Equal(t, 0, c.(*probe).executed)
		c.(*probe).bound = true
	})
	require.NoError(t, err)
	assert.True(t, p.bound)
	assert.Equal(t, 1, p.executed)
}

func TestDebugLog_DisabledStaysEmpty(t *testing.T) {
	f := NewFrock(models.Request{"path": "x"})
	f.ProcessRequest(nil)
	f.GetClassName(models.RoleController, "")
	f.SetPathKey(1)
	f.SetClassNamespace(models.RoleModel, "m")
	_, _ = f.InstantiateClass(models.RoleController, "")
	_ = f.ExecutePath(models.RoleController, "")
	f.Path()
	f.PathKey()
	assert.Empty(t, f.DebugLog())
}

func TestDebugLog_OneEntryPerCall(t *testing.T) {
	f := NewFrock(models.Request{"path": "x"}, WithDebug(true))
	require.Equal(t, []string{`NewFrock(models.Request{"path":"x"})`}, f.DebugLog())

	f.GetClassName(models.RoleController, "user/list")
	_, _ = f.InstantiateClass(models.RoleController, "")
	_ = f.ExecutePath(models.RoleView, "a")
	f.SetPathKey(42)
	f.PathKey()

	assert.Equal(t, []string{
		`NewFrock(models.Request{"path":"x"})`,
		`GetClassName("controller", "user/list")`,
		`InstantiateClass("controller", "")`,
		`ExecutePath("view", "a")`,
		`SetPathKey(42)`,
		`PathKey()`,
	}, f.DebugLog())
}

func TestDebugLog_ForwardsToSink(t *testing.T) {
	sink := new(sinkMock)
	meta := map[string]string{"request_id": "r1"}
	sink.On("Debug", "NewFrock(<nil>)", meta).Once()
	sink.On("Debug", `SetClassNamespace("model", "App")`, meta).Once()

	f := NewFrock(nil, WithDebug(true), WithDebugSink(sink, meta))
	f.SetClassNamespace(models.RoleModel, "App")

	sink.AssertExpectations(t)
	assert.Len(t, f.DebugLog(), 2)
}

func TestDebugLog_SinkUnusedWhenDisabled(t *testing.T) {
	sink := new(sinkMock)
	f := NewFrock(nil, WithDebugSink(sink, nil))
	f.Path()
	sink.AssertNotCalled(t, "Debug", mock.Anything, mock.Anything)
}
