package routes_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/mirofish/pkg/routes"
)

func write(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func TestRegister_NestedGroups(t *testing.T) {
	group := routes.Group{
		Prefix: "/routes",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: write("list")},
		},
		Children: []routes.Group{
			{
				Prefix: "/resolve",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: write("resolve")},
				},
			},
		},
	}

	mux := http.NewServeMux()
	routes.Register(mux, group)

	tests := []struct {
		path string
		want string
	}{
		{"/routes", "list"},
		{"/routes/resolve", "resolve"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			body, _ := io.ReadAll(resp.Body)
			if string(body) != tt.want {
				t.Errorf("body = %q, want %q", string(body), tt.want)
			}
		})
	}
}

func TestGroup_Patterns(t *testing.T) {
	group := routes.Group{
		Prefix: "/a",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/x", Handler: write("")},
		},
		Children: []routes.Group{
			{Prefix: "/b", Routes: []routes.Route{{Method: "POST", Pattern: "", Handler: write("")}}},
		},
	}

	got := group.Patterns()
	want := []string{"GET /a/x", "POST /a/b"}

	if len(got) != len(want) {
		t.Fatalf("Patterns() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Patterns()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
