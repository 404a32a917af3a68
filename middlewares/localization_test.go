package middlewares_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize"
	"github.com/dmitrymomot/localize/middlewares"
)

func TestLocalization(t *testing.T) {
	t.Parallel()

	t.Run("stores the table in the request context", func(t *testing.T) {
		t.Parallel()
		loc := localize.FromMap(map[string]string{"Greeting": "Hello"})

		var gotLoc localize.Localization
		var gotOK bool
		handler := middlewares.Localization(loc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotLoc, gotOK = middlewares.FromRequest(r)
		}))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		handler.ServeHTTP(httptest.NewRecorder(), r)

		require.True(t, gotOK)
		require.Equal(t, "Hello", gotLoc.Get("greeting"))
	})

	t.Run("serves the same table to every request", func(t *testing.T) {
		t.Parallel()
		loc := localize.FromMap(map[string]string{"Greeting": "Hello"})

		var greetings []string
		handler := middlewares.Localization(loc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loc, _ := middlewares.FromRequest(r)
			greetings = append(greetings, loc.Get("Greeting"))
		}))

		for i := 0; i < 3; i++ {
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		}
		require.Equal(t, []string{"Hello", "Hello", "Hello"}, greetings)
	})
}

func TestLocalizationSelector(t *testing.T) {
	t.Parallel()

	t.Run("selects the table per request", func(t *testing.T) {
		t.Parallel()
		tables := map[string]localize.Localization{
			"en": localize.FromMap(map[string]string{"Greeting": "Hello"}),
			"fr": localize.FromMap(map[string]string{"Greeting": "Bonjour"}),
		}
		mw := middlewares.LocalizationSelector(func(r *http.Request) localize.Localization {
			if loc, ok := tables[r.URL.Query().Get("lang")]; ok {
				return loc
			}
			return tables["en"]
		})

		var gotGreeting string
		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loc, _ := middlewares.FromRequest(r)
			gotGreeting = loc.Get("Greeting")
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?lang=fr", nil))
		require.Equal(t, "Bonjour", gotGreeting)

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?lang=xx", nil))
		require.Equal(t, "Hello", gotGreeting)
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trips through NewContext", func(t *testing.T) {
		t.Parallel()
		loc := localize.FromMap(map[string]string{"Greeting": "Hello"})
		ctx := middlewares.NewContext(context.Background(), loc)

		got, ok := middlewares.FromContext(ctx)
		require.True(t, ok)
		require.Equal(t, "Hello", got.Get("Greeting"))
	})

	t.Run("returns an empty table without the middleware", func(t *testing.T) {
		t.Parallel()
		got, ok := middlewares.FromContext(context.Background())
		require.False(t, ok)
		require.Equal(t, 0, got.Len())
		require.Equal(t, "[Greeting]", got.Get("Greeting"))
	})
}

func TestFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("returns an empty table without the middleware", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		got, ok := middlewares.FromRequest(r)
		require.False(t, ok)
		require.Equal(t, "[Greeting]", got.Get("Greeting"))
	})
}
