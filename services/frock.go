// Front-controller dispatcher: request -> path -> class name -> instance -> Execute().

package services

import (
	"fmt"
	"math"

	"github.com/dmleach/frock/core"
	"github.com/dmleach/frock/global"
	"github.com/dmleach/frock/models"
)

// Frock extracts a path from one request and turns it into a running class.
// It is not safe for concurrent use; build one per request (see DispatchService).
type Frock struct {
	pathKey     any    // string or int
	path        string // value extracted from the last processed request
	hasPath     bool
	defaultPath string
	namespaces  map[models.Role]string
	registry    *Registry
	debug       bool
	log         DebugLog
}

// Option configures a Frock before its request is processed.
type Option func(*Frock)

// WithRegistry sets the registry classes are instantiated from.
func WithRegistry(r *Registry) Option {
	return func(f *Frock) {
		if r != nil {
			f.registry = r
		}
	}
}

// WithPathKey sets the request key holding the path. Invalid key types are ignored.
func WithPathKey(key any) Option {
	return func(f *Frock) { f.setPathKey(key) }
}

// WithDefaultPath sets the path used when nothing else provides one.
func WithDefaultPath(path string) Option {
	return func(f *Frock) {
		if path != "" {
			f.defaultPath = path
		}
	}
}

// WithNamespaces sets namespace prefixes; unknown roles are ignored.
func WithNamespaces(ns map[models.Role]string) Option {
	return func(f *Frock) {
		for role, prefix := range ns {
			f.setClassNamespace(role, prefix)
		}
	}
}

// WithDebug turns trace recording on or off.
func WithDebug(on bool) Option {
	return func(f *Frock) { f.debug = on }
}

// WithDebugSink forwards every trace line to sink, tagged with meta.
func WithDebugSink(sink DebugSink, meta map[string]string) Option {
	return func(f *Frock) {
		f.log.sink = sink
		f.log.meta = meta
	}
}

// NewFrock builds a dispatcher and extracts the path from request.
// request must be passed explicitly; nil yields an absent path.
func NewFrock(request any, opts ...Option) *Frock {
	f := &Frock{
		pathKey:     global.DefaultPathKey,
		defaultPath: global.DefaultPath,
		namespaces: map[models.Role]string{
			models.RoleController: "",
			models.RoleModel:      "",
			models.RoleView:       "",
		},
		registry: NewRegistry(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.trace("NewFrock", request)
	f.processRequest(request)
	return f
}

// ProcessRequest stores the path found under the path key of request.
// It returns false, leaving the path absent, when request is not a mapping,
// lacks the key, or holds nil under it.
func (f *Frock) ProcessRequest(request any) bool {
	f.trace("ProcessRequest", request)
	return f.processRequest(request)
}

func (f *Frock) processRequest(request any) bool {
	f.path, f.hasPath = "", false

	req, ok := models.AsRequest(request)
	if !ok {
		return false
	}
	v, ok := req.Lookup(f.pathKey)
	if !ok || v == nil {
		return false
	}
	switch s := v.(type) {
	case string:
		f.path = s
	case []byte:
		f.path = string(s)
	default:
		f.path = fmt.Sprint(s)
	}
	f.hasPath = true
	return true
}

// GetClassName derives the class name for role. An empty path falls back to the
// extracted path, then to the default path. ok is false for an unknown role.
func (f *Frock) GetClassName(role models.Role, path string) (string, bool) {
	f.trace("GetClassName", role, path)
	return f.className(role, path)
}

func (f *Frock) className(role models.Role, path string) (string, bool) {
	prefix, ok := f.namespaces[role]
	if !ok {
		return "", false
	}
	return core.ClassName(prefix, f.effectivePath(path)), true
}

func (f *Frock) effectivePath(path string) string {
	switch {
	case path != "":
		return path
	case f.hasPath && f.path != "":
		return f.path
	default:
		return f.defaultPath
	}
}

// InstantiateClass builds a fresh instance of the class path resolves to.
func (f *Frock) InstantiateClass(role models.Role, path string) (Class, error) {
	f.trace("InstantiateClass", role, path)
	return f.instantiate(role, path)
}

func (f *Frock) instantiate(role models.Role, path string) (Class, error) {
	name, ok := f.className(role, path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, string(role))
	}
	factory, ok := f.registry.Lookup(name)
	if !ok {
		return nil, &ClassNotFoundError{ClassName: name}
	}
	obj := factory()
	if obj == nil {
		return nil, fmt.Errorf("%w: factory for %s returned nil", ErrInvalidClass, name)
	}
	return obj, nil
}

// ExecutePath instantiates the class for role/path and runs it.
func (f *Frock) ExecutePath(role models.Role, path string) error {
	f.trace("ExecutePath", role, path)
	return f.execute(role, path, nil)
}

// ExecutePathWith is ExecutePath with a hook that sees the instance before Execute.
func (f *Frock) ExecutePathWith(role models.Role, path string, bind func(Class)) error {
	f.trace("ExecutePathWith", role, path)
	return f.execute(role, path, bind)
}

func (f *Frock) execute(role models.Role, path string, bind func(Class)) error {
	obj, err := f.instantiate(role, path)
	if err != nil {
		return err
	}
	if bind != nil {
		bind(obj)
	}
	obj.Execute()
	return nil
}

// SetPathKey accepts string or integer keys; anything else is rejected unchanged.
func (f *Frock) SetPathKey(key any) bool {
	f.trace("SetPathKey", key)
	return f.setPathKey(key)
}

func (f *Frock) setPathKey(key any) bool {
	k, ok := normalizeKey(key)
	if ok {
		f.pathKey = k
	}
	return ok
}

// normalizeKey folds every integer kind into int.
func normalizeKey(key any) (any, bool) {
	switch k := key.(type) {
	case string:
		return k, true
	case int:
		return k, true
	case int8:
		return int(k), true
	case int16:
		return int(k), true
	case int32:
		return int(k), true
	case int64:
		if k < math.MinInt || k > math.MaxInt {
			return nil, false
		}
		return int(k), true
	case uint8:
		return int(k), true
	case uint16:
		return int(k), true
	case uint32:
		if uint64(k) > math.MaxInt {
			return nil, false
		}
		return int(k), true
	case uint:
		if uint64(k) > math.MaxInt {
			return nil, false
		}
		return int(k), true
	case uint64:
		if k > math.MaxInt {
			return nil, false
		}
		return int(k), true
	}
	return nil, false
}

// SetClassNamespace sets the prefix for a known role.
func (f *Frock) SetClassNamespace(role models.Role, namespace string) bool {
	f.trace("SetClassNamespace", role, namespace)
	return f.setClassNamespace(role, namespace)
}

func (f *Frock) setClassNamespace(role models.Role, namespace string) bool {
	if _, ok := f.namespaces[role]; !ok {
		return false
	}
	f.namespaces[role] = namespace
	return true
}

// ClassNamespace returns the prefix configured for role.
func (f *Frock) ClassNamespace(role models.Role) (string, bool) {
	f.trace("ClassNamespace", role)
	ns, ok := f.namespaces[role]
	return ns, ok
}

// SetDefaultPath changes the fallback path. Empty paths are rejected.
func (f *Frock) SetDefaultPath(path string) bool {
	f.trace("SetDefaultPath", path)
	if path == "" {
		return false
	}
	f.defaultPath = path
	return true
}

// DefaultPath returns the fallback path.
func (f *Frock) DefaultPath() string {
	f.trace("DefaultPath")
	return f.defaultPath
}

// Path returns the path extracted from the last processed request.
func (f *Frock) Path() (string, bool) {
	f.trace("Path")
	return f.path, f.hasPath
}

// PathKey returns the request key the path is read from.
func (f *Frock) PathKey() any {
	f.trace("PathKey")
	return f.pathKey
}

// DebugLog returns the recorded trace lines. It does not record itself.
func (f *Frock) DebugLog() []string {
	return f.log.Entries()
}

func (f *Frock) trace(op string, args ...any) {
	if !f.debug {
		return
	}
	f.log.append(formatCall(op, args...))
}
