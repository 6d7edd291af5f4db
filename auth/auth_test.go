package auth

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type errSource struct{}

func (errSource) Cookies(_ context.Context) (map[string]string, error) {
	return nil, errors.New("store locked")
}

func TestStaticSource(t *testing.T) {
	ctx := context.Background()

	src := NewStaticSource(map[string]string{"li_at": "tok"})
	got, err := src.Cookies(ctx)
	if err != nil {
		t.Fatalf("Cookies() error: %v", err)
	}
	if diff := cmp.Diff(map[string]string{"li_at": "tok"}, got); diff != "" {
		t.Errorf("Cookies() mismatch (-want +got):\n%s", diff)
	}

	// Returned map is a copy; mutating it must not leak back.
	got["li_at"] = "changed"
	again, _ := src.Cookies(ctx)
	if again["li_at"] != "tok" {
		t.Error("static source leaked its internal map")
	}

	empty, err := NewStaticSource(nil).Cookies(ctx)
	if err != nil || empty != nil {
		t.Errorf("empty static source = %v, %v, want nil, nil", empty, err)
	}
}

func TestEnvSource(t *testing.T) {
	ctx := context.Background()

	t.Setenv("LINKEDIN_LI_AT", "tok")
	t.Setenv("LINKEDIN_JSESSIONID", "sess")
	t.Setenv("LINKEDIN_LIDC", "")
	t.Setenv("LINKEDIN_BCOOKIE", "")

	got, err := EnvSource{}.Cookies(ctx)
	if err != nil {
		t.Fatalf("Cookies() error: %v", err)
	}
	want := map[string]string{"li_at": "tok", "JSESSIONID": "sess"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Cookies() mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvSourceUnset(t *testing.T) {
	for _, v := range EnvVarNames() {
		t.Setenv(v, "")
	}
	got, err := EnvSource{}.Cookies(context.Background())
	if err != nil || got != nil {
		t.Errorf("Cookies() = %v, %v, want nil, nil with no env vars", got, err)
	}
}

func TestEnvVarNames(t *testing.T) {
	want := []string{"LINKEDIN_BCOOKIE", "LINKEDIN_JSESSIONID", "LINKEDIN_LIDC", "LINKEDIN_LI_AT"}
	if diff := cmp.Diff(want, EnvVarNames()); diff != "" {
		t.Errorf("EnvVarNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestChainSources(t *testing.T) {
	ctx := context.Background()
	want := map[string]string{"li_at": "first"}

	t.Run("first non-empty source wins", func(t *testing.T) {
		got, err := ChainSources(ctx,
			NewStaticSource(nil),
			NewStaticSource(want),
			NewStaticSource(map[string]string{"li_at": "second"}),
		)
		if err != nil {
			t.Fatalf("ChainSources() error: %v", err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ChainSources() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("all empty", func(t *testing.T) {
		got, err := ChainSources(ctx, NewStaticSource(nil), NewStaticSource(nil))
		if err != nil || got != nil {
			t.Errorf("ChainSources() = %v, %v, want nil, nil", got, err)
		}
	})

	t.Run("source error stops the chain", func(t *testing.T) {
		if _, err := ChainSources(ctx, errSource{}, NewStaticSource(want)); err == nil {
			t.Error("ChainSources() = nil error, want the source error")
		}
	})
}

func TestNewCookieJar(t *testing.T) {
	jar, err := NewCookieJar(map[string]string{"li_at": "tok", "empty": ""})
	if err != nil {
		t.Fatalf("NewCookieJar() error: %v", err)
	}

	u, _ := url.Parse("https://www." + Domain + "/feed/")
	cookies := jar.Cookies(u)
	if len(cookies) != 1 {
		t.Fatalf("jar.Cookies() = %v, want only the non-empty cookie", cookies)
	}
	if cookies[0].Name != "li_at" || cookies[0].Value != "tok" {
		t.Errorf("cookie = %+v", cookies[0])
	}
}
