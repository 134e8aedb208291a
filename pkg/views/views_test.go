package views_test

import (
	"errors"
	"testing"

	"github.com/JaimeStill/mirofish/pkg/views"
)

var testDefs = []views.Def{
	{Name: "Home", Path: "/", Template: "home.html", Title: "Home", Bundle: "app"},
	{Name: "Process", Path: "/process/:projectId", Template: "process.html", Title: "Process", Bundle: "app", Props: true},
	{Name: "Simulation", Path: "/simulation/:simulationId", Template: "simulation.html", Title: "Simulation", Bundle: "app", Props: true},
}

func newTestTable(t *testing.T) *views.Table {
	t.Helper()
	table, err := views.New(testDefs...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return table
}

func TestNew(t *testing.T) {
	table := newTestTable(t)

	if table.Len() != len(testDefs) {
		t.Errorf("Len() = %d, want %d", table.Len(), len(testDefs))
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		defs []views.Def
		want error
	}{
		{
			name: "duplicate name",
			defs: []views.Def{
				{Name: "Home", Path: "/"},
				{Name: "Home", Path: "/other"},
			},
			want: views.ErrDuplicateName,
		},
		{
			name: "duplicate path",
			defs: []views.Def{
				{Name: "A", Path: "/about"},
				{Name: "B", Path: "/about"},
			},
			want: views.ErrDuplicatePath,
		},
		{
			name: "duplicate path with renamed parameter",
			defs: []views.Def{
				{Name: "A", Path: "/process/:projectId"},
				{Name: "B", Path: "/process/:id"},
			},
			want: views.ErrDuplicatePath,
		},
		{
			name: "duplicate path with trailing slash",
			defs: []views.Def{
				{Name: "A", Path: "/about"},
				{Name: "B", Path: "/about/"},
			},
			want: views.ErrDuplicatePath,
		},
		{
			name: "duplicate path differing in case",
			defs: []views.Def{
				{Name: "A", Path: "/about"},
				{Name: "B", Path: "/About"},
			},
			want: views.ErrDuplicatePath,
		},
		{
			name: "empty name",
			defs: []views.Def{{Path: "/"}},
			want: views.ErrEmptyName,
		},
		{
			name: "missing leading slash",
			defs: []views.Def{{Name: "A", Path: "about"}},
			want: views.ErrInvalidPattern,
		},
		{
			name: "empty parameter name",
			defs: []views.Def{{Name: "A", Path: "/process/:"}},
			want: views.ErrInvalidPattern,
		},
		{
			name: "invalid parameter name",
			defs: []views.Def{{Name: "A", Path: "/process/:1id"}},
			want: views.ErrInvalidPattern,
		},
		{
			name: "repeated parameter",
			defs: []views.Def{{Name: "A", Path: "/a/:id/b/:id"}},
			want: views.ErrInvalidPattern,
		},
		{
			name: "empty segment",
			defs: []views.Def{{Name: "A", Path: "/a//b"}},
			want: views.ErrInvalidPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := views.New(tt.defs...)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustNew() with duplicate names did not panic")
		}
	}()

	views.MustNew(views.Def{Name: "A", Path: "/"}, views.Def{Name: "A", Path: "/b"})
}

func TestResolve(t *testing.T) {
	table := newTestTable(t)

	tests := []struct {
		path      string
		wantName  string
		wantProps map[string]string
	}{
		{"/", "Home", nil},
		{"", "Home", nil},
		{"/process/proj_123", "Process", map[string]string{"projectId": "proj_123"}},
		{"/process/proj_123/", "Process", map[string]string{"projectId": "proj_123"}},
		{"/simulation/sim_42", "Simulation", map[string]string{"simulationId": "sim_42"}},
		{"/simulation/sim_42?tab=report", "Simulation", map[string]string{"simulationId": "sim_42"}},
		{"/process/a%20b", "Process", map[string]string{"projectId": "a b"}},
		{"/process/a%2Fb", "Process", map[string]string{"projectId": "a/b"}},
		{"/process/a%2F", "Process", map[string]string{"projectId": "a/"}},
		{"/Process/Proj_123", "Process", map[string]string{"projectId": "Proj_123"}},
		{"/SIMULATION/sim_42", "Simulation", map[string]string{"simulationId": "sim_42"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			m, ok := table.Resolve(tt.path)
			if !ok {
				t.Fatalf("Resolve(%q) did not match", tt.path)
			}

			if m.Def.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", m.Def.Name, tt.wantName)
			}

			if len(m.Props) != len(tt.wantProps) {
				t.Fatalf("Props = %v, want %v", m.Props, tt.wantProps)
			}
			for k, v := range tt.wantProps {
				if m.Props[k] != v {
					t.Errorf("Props[%q] = %q, want %q", k, m.Props[k], v)
				}
			}
		})
	}
}

func TestResolve_NoMatch(t *testing.T) {
	table := newTestTable(t)

	paths := []string{
		"/process",
		"/process/",
		"/process//",
		"/process/abc/extra",
		"/simulation",
		"/unknown",
		"//",
		"relative/path",
		"/process/%zz",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			if m, ok := table.Resolve(path); ok {
				t.Errorf("Resolve(%q) matched %q, want no match", path, m.Def.Name)
			}
		})
	}
}

func TestResolve_ParamsWithoutProps(t *testing.T) {
	table := views.MustNew(
		views.Def{Name: "Report", Path: "/report/:reportId"},
	)

	m, ok := table.Resolve("/report/r1")
	if !ok {
		t.Fatal("Resolve() did not match")
	}

	if m.Params["reportId"] != "r1" {
		t.Errorf("Params[reportId] = %q, want %q", m.Params["reportId"], "r1")
	}

	if m.Props != nil {
		t.Errorf("Props = %v, want nil when Def.Props is false", m.Props)
	}
}

func TestResolve_StaticOutranksParam(t *testing.T) {
	table := views.MustNew(
		views.Def{Name: "Process", Path: "/process/:projectId", Props: true},
		views.Def{Name: "NewProcess", Path: "/process/new"},
	)

	m, ok := table.Resolve("/process/new")
	if !ok {
		t.Fatal("Resolve() did not match")
	}
	if m.Def.Name != "NewProcess" {
		t.Errorf("Name = %q, want %q", m.Def.Name, "NewProcess")
	}

	m, ok = table.Resolve("/process/p1")
	if !ok {
		t.Fatal("Resolve() did not match")
	}
	if m.Def.Name != "Process" {
		t.Errorf("Name = %q, want %q", m.Def.Name, "Process")
	}
}

func TestResolve_PropsAreCopies(t *testing.T) {
	table := newTestTable(t)

	m, _ := table.Resolve("/process/p1")
	m.Props["projectId"] = "mutated"

	if m.Params["projectId"] != "p1" {
		t.Errorf("Params[projectId] = %q, want %q", m.Params["projectId"], "p1")
	}

	again, _ := table.Resolve("/process/p1")
	if again.Props["projectId"] != "p1" {
		t.Errorf("second Resolve Props[projectId] = %q, want %q", again.Props["projectId"], "p1")
	}
}

func TestResolve_StaticOutranksParamIgnoringCase(t *testing.T) {
	table := views.MustNew(
		views.Def{Name: "Process", Path: "/process/:projectId", Props: true},
		views.Def{Name: "NewProcess", Path: "/process/new"},
	)

	m, ok := table.Resolve("/Process/NEW")
	if !ok {
		t.Fatal("Resolve() did not match")
	}
	if m.Def.Name != "NewProcess" {
		t.Errorf("Name = %q, want %q", m.Def.Name, "NewProcess")
	}
}

func TestLookup(t *testing.T) {
	table := newTestTable(t)

	d, ok := table.Lookup("Simulation")
	if !ok {
		t.Fatal("Lookup(Simulation) not found")
	}
	if d.Path != "/simulation/:simulationId" {
		t.Errorf("Path = %q, want %q", d.Path, "/simulation/:simulationId")
	}

	if _, ok := table.Lookup("Missing"); ok {
		t.Error("Lookup(Missing) should not be found")
	}
}

func TestURL(t *testing.T) {
	table := newTestTable(t)

	tests := []struct {
		name   string
		route  string
		params map[string]string
		want   string
	}{
		{"root", "Home", nil, "/"},
		{"process", "Process", map[string]string{"projectId": "p1"}, "/process/p1"},
		{"escaped", "Simulation", map[string]string{"simulationId": "a b/c"}, "/simulation/a%20b%2Fc"},
		{"escaped trailing slash", "Process", map[string]string{"projectId": "a/"}, "/process/a%2F"},
		{"extra params ignored", "Home", map[string]string{"x": "y"}, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.URL(tt.route, tt.params)
			if err != nil {
				t.Fatalf("URL() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("URL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestURL_RoundTrip(t *testing.T) {
	table := newTestTable(t)

	path, err := table.URL("Simulation", map[string]string{"simulationId": "sim 1/2"})
	if err != nil {
		t.Fatalf("URL() error = %v", err)
	}

	m, ok := table.Resolve(path)
	if !ok {
		t.Fatalf("Resolve(%q) did not match", path)
	}
	if m.Props["simulationId"] != "sim 1/2" {
		t.Errorf("Props[simulationId] = %q, want %q", m.Props["simulationId"], "sim 1/2")
	}
}

func TestURL_Errors(t *testing.T) {
	table := newTestTable(t)

	if _, err := table.URL("Missing", nil); !errors.Is(err, views.ErrUnknownRoute) {
		t.Errorf("URL(Missing) error = %v, want %v", err, views.ErrUnknownRoute)
	}

	if _, err := table.URL("Process", nil); !errors.Is(err, views.ErrMissingParam) {
		t.Errorf("URL(Process) error = %v, want %v", err, views.ErrMissingParam)
	}

	if _, err := table.URL("Process", map[string]string{"projectId": ""}); !errors.Is(err, views.ErrMissingParam) {
		t.Errorf("URL(Process, empty) error = %v, want %v", err, views.ErrMissingParam)
	}
}

func TestDefs_ReturnsCopy(t *testing.T) {
	table := newTestTable(t)

	defs := table.Defs()
	defs[0].Name = "Mutated"

	if table.Defs()[0].Name != "Home" {
		t.Error("Defs() should return a copy")
	}
}

func TestNew_DoesNotAliasInput(t *testing.T) {
	defs := []views.Def{{Name: "Home", Path: "/"}}
	table := views.MustNew(defs...)

	defs[0].Name = "Mutated"

	if _, ok := table.Lookup("Home"); !ok {
		t.Error("table should not observe changes to the input slice")
	}
}

func TestDef_Params(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"/", nil},
		{"/process/:projectId", []string{"projectId"}},
		{"/a/:x/b/:y", []string{"x", "y"}},
		{"invalid", nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := views.Def{Path: tt.path}.Params()
			if len(got) != len(tt.want) {
				t.Fatalf("Params() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Params()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
